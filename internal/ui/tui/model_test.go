package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	repomocks "github.com/bnema/dockyard/internal/domain/repository/mocks"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/content"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/item/itemtest"
	"github.com/bnema/dockyard/internal/ui/mainloop"
	"github.com/bnema/dockyard/internal/ui/pane"
	"github.com/bnema/dockyard/internal/ui/theme"
	"github.com/bnema/dockyard/internal/ui/workspace"
)

const (
	screenWidth  = 80
	screenHeight = 25
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func counterIDs(prefix string) entity.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

type fixture struct {
	ctx    context.Context
	root   string
	ws     *workspace.Workspace
	panels content.Panels
	model  *Model
}

// newFixture lays out an 80x25 screen: the left dock spans columns 0-29,
// the center pane columns 30-79, the status bar row 24.
func newFixture(t *testing.T, opts ...func(*Options)) *fixture {
	t.Helper()
	ctx := testCtx()
	root := t.TempDir()
	for _, name := range []string{"a.go", "b.go"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("package "+name[:1]+"\n"), 0o644))
	}

	cfg := config.DefaultConfig()
	ids := counterIDs("id")
	ws := workspace.New(ctx, workspace.Options{
		ID:           "ws",
		Loop:         mainloop.New(),
		Focus:        focus.NewManager(),
		IDGenerator:  ids,
		Settings:     SettingsFromConfig(cfg),
		PathItemKind: content.KindFile,
	})
	content.RegisterItemKinds(ctx, ws, ids)
	buffer := logging.NewLogBuffer(50)
	panels := content.AddPanels(ctx, ws, ids, PanelOptionsFromConfig(cfg, root, buffer))

	o := Options{
		Workspace: ws,
		Panels:    panels,
		Styles:    theme.NewStyles(theme.PaletteFromConfig(&cfg.Theme)),
		Keymap:    NewKeymap(ctx, cfg.Keybindings),
		Log:       buffer,
	}
	for _, opt := range opts {
		opt(&o)
	}

	f := &fixture{ctx: ctx, root: root, ws: ws, panels: panels, model: New(ctx, o)}
	f.send(tea.WindowSizeMsg{Width: screenWidth, Height: screenHeight})
	return f
}

func (f *fixture) send(msg tea.Msg) tea.Cmd {
	_, cmd := f.model.Update(msg)
	return cmd
}

func (f *fixture) path(name string) string {
	return filepath.Join(f.root, name)
}

func (f *fixture) openBoth() {
	p := f.ws.ActivePane()
	f.ws.OpenPaths(f.ctx, p, []string{f.path("a.go"), f.path("b.go")}, 0)
	f.send(wakeMsg{})
}

func (f *fixture) mouse(action tea.MouseAction, x, y int) {
	f.send(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func TestUpdate_WakeRunsPostedCallbacks(t *testing.T) {
	f := newFixture(t)
	ran := make(chan struct{})

	f.ws.Loop().Post(func() { close(ran) })

	msg := waitForWake(f.ws.Loop())()
	require.IsType(t, wakeMsg{}, msg)
	cmd := f.send(msg)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("posted callback did not run")
	}
	assert.NotNil(t, cmd, "wake must re-arm")
}

func TestView_RendersDocksPanesAndStatus(t *testing.T) {
	f := newFixture(t)
	f.openBoth()

	view := f.model.View()
	lines := strings.Split(view, "\n")

	require.Len(t, lines, screenHeight)
	assert.Contains(t, view, "a.go")
	assert.Contains(t, view, "b.go")
	assert.Contains(t, view, "project")
	assert.Contains(t, lines[screenHeight-1], "1 pane(s) · Ln 1")
}

func TestUpdate_BlurDeactivatesWorkspace(t *testing.T) {
	f := newFixture(t)
	p := f.ws.ActivePane()
	fake := itemtest.New(f.ws.Focus(), "fake", "fake")
	p.AddItem(f.ctx, fake, false, false, nil)

	f.send(tea.BlurMsg{})

	assert.Equal(t, 1, fake.WorkspaceDeactivatedCount)
}

func TestKeys_SplitAndCloseThroughKeymap(t *testing.T) {
	f := newFixture(t)
	f.openBoth()

	f.send(altKey('l'))
	require.Len(t, f.ws.Panes(), 2)
	active := f.ws.ActivePane()
	require.NotNil(t, active.ActiveItem(), "split clones the active item")
	assert.Equal(t, f.path("b.go"), active.ActiveItem().Data())

	f.send(tea.KeyMsg{Type: tea.KeyCtrlW})
	require.Eventually(t, func() bool {
		f.send(wakeMsg{})
		return len(f.ws.Panes()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestKeys_ActivateItemByNumber(t *testing.T) {
	f := newFixture(t)
	f.openBoth()

	f.send(altKey('1'))

	assert.Equal(t, 0, f.ws.ActivePane().ActiveItemIndex())
}

func TestMouse_TabDragToEdgeSplitsPane(t *testing.T) {
	f := newFixture(t)
	f.openBoth()
	source := f.ws.ActivePane()

	// tab "a.go" spans columns 32-37 of the tab bar row.
	f.mouse(tea.MouseActionPress, 33, 1)
	f.mouse(tea.MouseActionMotion, 77, 12)

	assert.Equal(t, entity.SplitRight, source.DragSplitDirection())
	assert.Contains(t, f.model.View(), "dragging a.go")

	f.mouse(tea.MouseActionRelease, 77, 12)

	require.Len(t, f.ws.Panes(), 2)
	assert.Equal(t, []string{f.path("b.go")}, itemData(source))
	target := f.ws.ActivePane()
	require.NotEqual(t, source, target)
	assert.Equal(t, []string{f.path("a.go")}, itemData(target))
	assert.Equal(t, entity.SplitDirection(""), source.DragSplitDirection())
}

func TestMouse_TabClickWithoutMotionOnlyActivates(t *testing.T) {
	f := newFixture(t)
	f.openBoth()

	f.mouse(tea.MouseActionPress, 33, 1)
	f.mouse(tea.MouseActionRelease, 33, 1)

	require.Len(t, f.ws.Panes(), 1)
	assert.Equal(t, 0, f.ws.ActivePane().ActiveItemIndex())
}

func TestMouse_DockHandleDragAndDoubleClick(t *testing.T) {
	f := newFixture(t)
	now := time.Unix(100, 0)
	f.model.now = func() time.Time { return now }
	left := f.ws.Dock(dock.PositionLeft)

	f.mouse(tea.MouseActionPress, 29, 5)
	f.mouse(tea.MouseActionMotion, 40, 5)
	f.mouse(tea.MouseActionRelease, 40, 5)
	assert.InDelta(t, 41, left.Snapshot().Size, 0.001)

	f.mouse(tea.MouseActionPress, 40, 5)
	f.mouse(tea.MouseActionRelease, 40, 5)
	f.mouse(tea.MouseActionPress, 40, 5)
	assert.InDelta(t, 30, left.Snapshot().Size, 0.001)
}

func TestMouse_DividerDragSetsRatio(t *testing.T) {
	f := newFixture(t)
	f.send(altKey('l'))
	require.Len(t, f.ws.Panes(), 2)

	f.mouse(tea.MouseActionPress, 55, 10)
	f.mouse(tea.MouseActionMotion, 60, 10)
	f.mouse(tea.MouseActionRelease, 60, 10)

	assert.InDelta(t, 0.6, f.ws.Center().Root().Ratio, 0.001)
}

func TestProjectPanel_ClickAndOpen(t *testing.T) {
	f := newFixture(t)

	// first entry row of the left dock body
	f.mouse(tea.MouseActionPress, 5, 2)
	f.mouse(tea.MouseActionRelease, 5, 2)
	require.True(t, f.panels.Project.FocusHandle().ContainsFocused())

	f.send(tea.KeyMsg{Type: tea.KeyDown})
	f.send(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{f.path("b.go")}, itemData(f.ws.ActivePane()))
}

func TestProjectPanel_DragSelectionOntoPane(t *testing.T) {
	f := newFixture(t)

	f.mouse(tea.MouseActionPress, 5, 2)
	f.mouse(tea.MouseActionMotion, 50, 12)
	f.mouse(tea.MouseActionRelease, 50, 12)

	require.Len(t, f.ws.Panes(), 1)
	assert.Equal(t, []string{f.path("a.go")}, itemData(f.ws.ActivePane()))
}

func TestMouse_WheelScrollsTabsAndContent(t *testing.T) {
	f := newFixture(t)
	f.openBoth()
	p := f.ws.ActivePane()

	f.send(tea.MouseMsg{X: 40, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 1, p.ScrollOffset())

	scrollable, ok := f.model.activeScrollable()
	require.True(t, ok)
	f.send(tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 0, scrollable.ScrollOffset())
}

func TestSaveLayout(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(s *entity.LayoutState) bool {
			return s.Name == usecase.DefaultLayoutName && s.CountItems() == 2
		})).
		Return(nil).
		Once()

	f := newFixture(t, func(o *Options) { o.Saver = usecase.NewManageLayoutsUseCase(repo) })
	f.openBoth()

	cmd := f.send(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	f.send(cmd())

	assert.Equal(t, "layout default saved", f.model.status)
}

func TestSaveLayout_Disabled(t *testing.T) {
	f := newFixture(t)

	cmd := f.send(tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Nil(t, cmd)
	assert.Equal(t, "layouts are not persisted", f.model.status)
}

func TestQuit(t *testing.T) {
	f := newFixture(t)

	cmd := f.send(tea.KeyMsg{Type: tea.KeyCtrlQ})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, f.model.View())
}

func TestApplyConfig(t *testing.T) {
	f := newFixture(t)
	cfg := config.DefaultConfig()
	cfg.Layout.CanSplit = false
	cfg.Keybindings = map[string][]string{"pane::splitdown": {"alt+x"}}

	f.model.ApplyConfig(cfg)

	assert.False(t, f.ws.Settings().CanSplit)
	action, _, ok := f.model.keymap.Lookup(altKey('x'))
	require.True(t, ok)
	assert.Equal(t, string(pane.ActionSplitDown), action)
}

func itemData(p *pane.Pane) []string {
	var out []string
	for _, it := range p.Items() {
		out = append(out, it.Data())
	}
	return out
}
