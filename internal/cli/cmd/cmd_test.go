package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
	repomocks "github.com/bnema/dockyard/internal/domain/repository/mocks"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

func newTestApp(t *testing.T) (*cli.App, *repomocks.MockLayoutRepository) {
	t.Helper()
	repo := repomocks.NewMockLayoutRepository(t)
	cfg := config.DefaultConfig()
	return &cli.App{
		Config:  cfg,
		Theme:   styles.NewTheme(cfg),
		Layouts: usecase.NewManageLayoutsUseCase(repo),
	}, repo
}

func writeLog(t *testing.T, dir, id, content string) string {
	t.Helper()
	path := filepath.Join(dir, logging.SessionFilename(id))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestListSessionLogs_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "20251217_205106_a7b3", "one\n")
	writeLog(t, dir, "20251218_090000_bbbb", "two\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	logs, err := listSessionLogs(dir)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "20251218_090000_bbbb", logs[0].SessionID)
	assert.Equal(t, "bbbb", logs[0].ShortID)
	assert.Equal(t, "a7b3", logs[1].ShortID)
}

func TestListSessionLogs_MissingDir(t *testing.T) {
	logs, err := listSessionLogs(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestFindSessionLog(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "20251217_205106_a7b3", "one\n")
	writeLog(t, dir, "20251217_215106_cccc", "two\n")

	l, err := findSessionLog(dir, "a7b3")
	require.NoError(t, err)
	assert.Equal(t, "20251217_205106_a7b3", l.SessionID)

	l, err = findSessionLog(dir, "2151")
	require.NoError(t, err)
	assert.Equal(t, "cccc", l.ShortID)

	_, err = findSessionLog(dir, "20251217")
	assert.ErrorContains(t, err, "2 sessions match")

	_, err = findSessionLog(dir, "zzzz")
	assert.ErrorContains(t, err, "no session matching")
}

func TestTailLines(t *testing.T) {
	lines, err := tailLines(strings.NewReader("a\nb\nc\nd\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d"}, lines)

	lines, err = tailLines(strings.NewReader("a\n"), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, lines)

	lines, err = tailLines(strings.NewReader("a\n"), 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestOutputSessionLogs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, outputSessionLogs(&buf, nil))
	assert.Contains(t, buf.String(), "No session logs found.")

	buf.Reset()
	require.NoError(t, outputSessionLogs(&buf, []sessionLog{
		{SessionID: "20251217_205106_a7b3", ShortID: "a7b3", Size: 2048, ModTime: time.Now()},
	}))
	assert.Contains(t, buf.String(), "SESSION ID")
	assert.Contains(t, buf.String(), "a7b3")
	assert.Contains(t, buf.String(), "2.0 KiB")
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KiB", formatSize(1536))
	assert.Equal(t, "3.0 MiB", formatSize(3*1024*1024))
}

func TestRunLayoutsList_JSON(t *testing.T) {
	app, repo := newTestApp(t)
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.EXPECT().List(mock.Anything).Return([]entity.LayoutInfo{
		{Name: "work", PaneCount: 2, ItemCount: 5, UpdatedAt: updated},
	}, nil).Once()

	layoutsJSON = true
	t.Cleanup(func() { layoutsJSON = false })

	var buf bytes.Buffer
	require.NoError(t, runLayoutsList(app, &buf))

	var out []layoutJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, layoutJSON{Name: "work", Panes: 2, Items: 5, UpdatedAt: "2026-01-02T03:04:05Z"}, out[0])
}

func TestRunLayoutsList_Styled(t *testing.T) {
	app, repo := newTestApp(t)
	repo.EXPECT().List(mock.Anything).Return(nil, nil).Once()

	var buf bytes.Buffer
	require.NoError(t, runLayoutsList(app, &buf))
	assert.Contains(t, buf.String(), "No saved layouts found.")
}

func TestRunLayoutsDelete(t *testing.T) {
	app, repo := newTestApp(t)
	repo.EXPECT().Delete(mock.Anything, "work").Return(nil).Once()

	layoutsYes = true
	t.Cleanup(func() { layoutsYes = false })

	var buf bytes.Buffer
	require.NoError(t, runLayoutsDelete(app, &buf, "work"))
	assert.Contains(t, buf.String(), "deleted")
}

func TestRunLayoutsDelete_Declined(t *testing.T) {
	app, _ := newTestApp(t)
	prev := confirmDelete
	confirmDelete = func(*styles.Theme, string) (bool, error) { return false, nil }
	t.Cleanup(func() { confirmDelete = prev })

	var buf bytes.Buffer
	require.NoError(t, runLayoutsDelete(app, &buf, "work"))
	assert.Contains(t, buf.String(), "Canceled.")
}

func TestRunLayoutsDelete_Error(t *testing.T) {
	app, repo := newTestApp(t)
	repo.EXPECT().Delete(mock.Anything, "work").Return(errors.New("disk full")).Once()

	layoutsYes = true
	t.Cleanup(func() { layoutsYes = false })

	var buf bytes.Buffer
	err := runLayoutsDelete(app, &buf, "work")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "disk full")
}

func TestRunConfigShow(t *testing.T) {
	app, _ := newTestApp(t)

	var buf bytes.Buffer
	require.NoError(t, runConfigShow(app, &buf))
	assert.Contains(t, buf.String(), "[layout]")
	assert.Contains(t, buf.String(), "drag_split_margin")
}

func TestRunConfigPath_FallsBackToDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	app, _ := newTestApp(t)

	var buf bytes.Buffer
	require.NoError(t, runConfigPath(app, &buf))
	assert.Equal(t, filepath.Join(dir, "dockyard", "config.toml"), strings.TrimSpace(buf.String()))
}

func TestCommandsRequireApp(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, runLayoutsList(nil, &buf))
	assert.Error(t, runLayoutsDelete(nil, &buf, "x"))
	assert.Error(t, runConfigShow(nil, &buf))
	assert.Error(t, runConfigStatus(nil, &buf))
	assert.Error(t, runConfigPath(nil, &buf))
}
