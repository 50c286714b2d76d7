package logging

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	sessionPrefix = "session_"
	sessionSuffix = ".log"
	sessionLayout = "20060102_150405"
)

// GenerateSessionID creates a unique session identifier.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
func GenerateSessionID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format(sessionLayout) + "_" + hex.EncodeToString(random)
}

// SessionFilename generates the log filename for a session ID.
// Example: "20251217_205106_a7b3" -> "session_20251217_205106_a7b3.log"
func SessionFilename(sessionID string) string {
	return sessionPrefix + sessionID + sessionSuffix
}

// ParseSessionFilename extracts the session ID from a log filename.
func ParseSessionFilename(filename string) (sessionID string, ok bool) {
	if !strings.HasPrefix(filename, sessionPrefix) || !strings.HasSuffix(filename, sessionSuffix) {
		return "", false
	}
	sessionID = strings.TrimSuffix(strings.TrimPrefix(filename, sessionPrefix), sessionSuffix)
	if sessionID == "" {
		return "", false
	}
	return sessionID, true
}

// sessionStart parses the timestamp part of a session ID.
func sessionStart(sessionID string) (time.Time, bool) {
	if len(sessionID) < len(sessionLayout) {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(sessionLayout, sessionID[:len(sessionLayout)], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PruneSessionLogs removes session logs in dir started more than maxAgeDays
// before now, along with their rotated copies. It returns how many files
// were removed. maxAgeDays <= 0 keeps everything.
func PruneSessionLogs(dir string, maxAgeDays int, now time.Time) (int, error) {
	if maxAgeDays <= 0 {
		return 0, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := now.AddDate(0, 0, -maxAgeDays)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// Rotated copies carry a timestamp suffix after ".log".
		base := name
		if idx := strings.Index(name, sessionSuffix); idx >= 0 {
			base = name[:idx+len(sessionSuffix)]
		}
		sessionID, ok := ParseSessionFilename(base)
		if !ok {
			continue
		}
		started, ok := sessionStart(sessionID)
		if !ok || !started.Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err == nil {
			removed++
		}
	}
	return removed, nil
}
