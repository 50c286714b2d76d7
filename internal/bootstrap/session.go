// Package bootstrap wires configuration, logging, persistence and the
// terminal host into a running dockyard session.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	logMaxSizeMB   = 10
	logMaxBackups  = 3
	logBufferLines = 500
	logTimeFormat  = "15:04:05"
)

// Session owns the log destinations of one run. The terminal is taken by
// the UI, so logs go to a session file and to an in-memory buffer that the
// log panel tails.
type Session struct {
	ID      string
	LogPath string
	Buffer  *logging.LogBuffer
	Logger  zerolog.Logger

	file *logging.FileWriter
}

// StartSession opens the session log and returns a context carrying its
// logger. Session logs older than the configured age are pruned.
func StartSession(ctx context.Context, cfg *config.Config) (*Session, context.Context, error) {
	id := logging.GenerateSessionID()

	path := cfg.Logging.File
	if path == "" {
		dir, err := config.GetLogDir()
		if err != nil {
			return nil, ctx, fmt.Errorf("resolve log dir: %w", err)
		}
		path = filepath.Join(dir, logging.SessionFilename(id))
	}

	file, err := logging.NewFileWriter(path, logMaxSizeMB, logMaxBackups)
	if err != nil {
		return nil, ctx, fmt.Errorf("open session log: %w", err)
	}

	buffer := logging.NewLogBuffer(logBufferLines)
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		TimeFormat: logTimeFormat,
		Output:     zerolog.MultiLevelWriter(file, buffer),
	}).With().Str("session_id", id).Logger()

	s := &Session{
		ID:      id,
		LogPath: path,
		Buffer:  buffer,
		Logger:  logger,
		file:    file,
	}
	ctx = logging.WithContext(ctx, logger)

	removed, err := logging.PruneSessionLogs(filepath.Dir(path), cfg.Logging.MaxAge, time.Now())
	switch {
	case err != nil:
		logger.Warn().Err(err).Msg("failed to prune session logs")
	case removed > 0:
		logger.Debug().Int("removed", removed).Msg("pruned old session logs")
	}

	logger.Info().Str("log_path", path).Msg("session started")
	return s, ctx, nil
}

// Close flushes and closes the session log.
func (s *Session) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	s.Logger.Info().Msg("session ended")
	return s.file.Close()
}
