package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogBuffer_KeepsMostRecentLines(t *testing.T) {
	b := NewLogBuffer(3)

	_, err := b.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	_, err = b.Write([]byte("thr"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, b.Lines(0))

	_, err = b.Write([]byte("ee\nfour\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"two", "three", "four"}, b.Lines(0))
	assert.Equal(t, []string{"three", "four"}, b.Lines(2))
	assert.Equal(t, 3, b.Len())
}

func TestLogBuffer_OnWrite(t *testing.T) {
	b := NewLogBuffer(10)
	calls := 0
	b.OnWrite(func() { calls++ })

	_, _ = b.Write([]byte("partial"))
	assert.Equal(t, 0, calls)
	_, _ = b.Write([]byte(" line\n"))
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"partial line"}, b.Lines(1))
}

func TestLogBuffer_AsLoggerOutput(t *testing.T) {
	b := NewLogBuffer(10)
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: b})

	logger.Info().Str("pane_id", "p1").Msg("pane added")

	lines := b.Lines(0)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"pane_id":"p1"`)
	assert.Contains(t, lines[0], `"message":"pane added"`)
}

func TestSessionFilename_RoundTrip(t *testing.T) {
	id := GenerateSessionID()
	name := SessionFilename(id)

	parsed, ok := ParseSessionFilename(name)
	require.True(t, ok)
	assert.Equal(t, id, parsed)

	_, ok = ParseSessionFilename("dockyard.log")
	assert.False(t, ok)
	_, ok = ParseSessionFilename("session_.log")
	assert.False(t, ok)
}

func TestPruneSessionLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.Local)

	old := SessionFilename("20260501_080000_aaaa")
	recent := SessionFilename("20260519_080000_bbbb")
	files := []string{old, old + ".2026-05-01-09-00-00.000", recent, "notes.txt"}
	for _, name := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}

	removed, err := PruneSessionLogs(dir, 7, now)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	assert.NoFileExists(t, filepath.Join(dir, old))
	assert.FileExists(t, filepath.Join(dir, recent))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestPruneSessionLogs_MissingDir(t *testing.T) {
	removed, err := PruneSessionLogs(filepath.Join(t.TempDir(), "nope"), 7, time.Now())
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestStartupTrace(t *testing.T) {
	var out bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &out})

	st := NewStartupTrace("debug")
	require.True(t, st.Enabled())
	st.Mark("config_loaded")
	st.SetLogger(&logger)
	st.Mark("first_frame")
	st.Finish()
	st.Mark("ignored")

	names := make([]string, 0)
	for _, m := range st.Milestones() {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"process_start", "config_loaded", "first_frame"}, names)
	assert.Contains(t, out.String(), "startup_trace: config_loaded")
	assert.Contains(t, out.String(), "startup_trace: first frame")
}

func TestStartupTrace_DisabledAtInfo(t *testing.T) {
	st := NewStartupTrace("info")
	st.Mark("config_loaded")

	assert.False(t, st.Enabled())
	assert.Empty(t, st.Milestones())
}

func TestLogPanic_Repanics(t *testing.T) {
	var out bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &out})
	ctx := WithContext(context.Background(), logger)

	assert.PanicsWithValue(t, "boom", func() {
		defer LogPanic(ctx)
		panic("boom")
	})
	assert.Contains(t, out.String(), `"panic":"boom"`)
}
