package workspace

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/bnema/dockyard/internal/ui/item/itemtest"
	"github.com/bnema/dockyard/internal/ui/mainloop"
	"github.com/bnema/dockyard/internal/ui/pane"
)

type fixture struct {
	ctx    context.Context
	loop   *mainloop.Loop
	fm     *focus.Manager
	ws     *Workspace
	events []Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{ctx: testCtx(), loop: mainloop.New(), fm: focus.NewManager()}
	f.ws = New(f.ctx, Options{
		ID:           "ws",
		Loop:         f.loop,
		Focus:        f.fm,
		IDGenerator:  counterIDs("id"),
		Settings:     DefaultSettings(),
		PathItemKind: "file",
	})
	f.ws.RegisterItemKind("file", func(_ context.Context, fm *focus.Manager, id entity.ItemID, data string) (item.Item, error) {
		it := itemtest.NewOfKind(fm, string(id), "file", data)
		it.Singleton = true
		return it, nil
	})
	f.ws.Events().Subscribe(func(ev Event) { f.events = append(f.events, ev) })
	return f
}

func (f *fixture) settle(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, f.loop.RunUntilIdle(ctx))
}

// add appends fake items to p without moving focus.
func (f *fixture) add(p *pane.Pane, ids ...string) []*itemtest.Item {
	out := make([]*itemtest.Item, len(ids))
	for i, id := range ids {
		out[i] = itemtest.New(f.fm, id, id)
		dest := p.Len()
		p.AddItem(f.ctx, out[i], false, false, &dest)
	}
	return out
}

func (f *fixture) open(p *pane.Pane, paths ...string) {
	f.ws.OpenPaths(f.ctx, p, paths, p.Len())
}

func (f *fixture) panel(name string, position dock.Position, size float64) *dock.PanelBase {
	base := dock.NewPanelBase(dock.PanelConfig{
		ID:          entity.PanelID(name),
		Name:        name,
		Position:    position,
		DefaultSize: size,
	}, f.fm.NewHandle(nil))
	panel := &base
	f.ws.Dock(position).AddPanel(f.ctx, panel)
	return panel
}

func (f *fixture) kinds() []EventKind {
	var out []EventKind
	for _, ev := range f.events {
		out = append(out, ev.Kind)
	}
	return out
}

func itemIDs(p *pane.Pane) []string {
	var out []string
	for _, it := range p.Items() {
		out = append(out, string(it.ItemID()))
	}
	return out
}

func TestNew_SingleFocusedPane(t *testing.T) {
	f := newFixture(t)

	require.Len(t, f.ws.Panes(), 1)
	p := f.ws.ActivePane()
	assert.True(t, p.HasFocus())
	assert.True(t, f.ws.Center().Root().IsLeaf())
	for _, pos := range dock.Positions {
		assert.False(t, f.ws.Dock(pos).IsOpen(), pos.String())
	}
	assert.False(t, f.ws.IsZoomed())
}

func TestSplit_ClonesActiveItem(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	items := f.add(p1, "A")
	items[0].Cloneable = true

	p1.Split(f.ctx, entity.SplitRight)

	require.Len(t, f.ws.Panes(), 2)
	p2 := f.ws.ActivePane()
	assert.NotSame(t, p1, p2)
	assert.Equal(t, []string{"A-clone"}, itemIDs(p2))
	assert.Equal(t, []string{"A"}, itemIDs(p1))
	assert.Equal(t, []*pane.Pane{p1, p2}, f.ws.Center().Panes())
	assert.Equal(t, 2, f.ws.Registry().Len())
	assert.Contains(t, f.kinds(), EventPaneAdded)
	assert.Contains(t, f.kinds(), EventActivePaneChanged)
}

func TestSplit_WithoutCloneStillSplits(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")

	p1.Split(f.ctx, entity.SplitDown)

	require.Len(t, f.ws.Panes(), 2)
	p2 := f.ws.ActivePane()
	assert.Equal(t, 0, p2.Len())
	assert.Equal(t, []*pane.Pane{p1, p2}, f.ws.Center().Panes())
	assert.Equal(t, entity.AxisVertical, f.ws.Center().Root().Axis)
}

func TestSplit_DisabledBySettings(t *testing.T) {
	f := newFixture(t)
	settings := DefaultSettings()
	settings.CanSplit = false
	f.ws.ApplySettings(f.ctx, settings)

	f.ws.ActivePane().Split(f.ctx, entity.SplitRight)

	assert.Len(t, f.ws.Panes(), 1)
}

func TestCloseLastItem_RemovesPane(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")
	p2 := f.ws.SplitPane(f.ctx, p1, entity.SplitRight)
	require.NotNil(t, p2)
	b := f.add(p2, "B")[0]

	task := p2.CloseItemByID(f.ctx, "B")
	require.NotNil(t, task)
	f.settle(t)

	assert.Equal(t, []*pane.Pane{p1}, f.ws.Panes())
	assert.Same(t, p1, f.ws.ActivePane())
	assert.True(t, f.ws.Center().Root().IsLeaf())
	assert.True(t, p2.Released())
	assert.True(t, b.IsReleased())
	_, owned := f.ws.Registry().PaneFor("B")
	assert.False(t, owned)
	assert.Contains(t, f.kinds(), EventPaneRemoved)
}

func TestCloseLastItem_KeepsLastPane(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")

	p1.CloseItemByID(f.ctx, "A")
	f.settle(t)

	assert.Equal(t, []*pane.Pane{p1}, f.ws.Panes())
	assert.Equal(t, 0, p1.Len())
	assert.False(t, p1.Released())
	assert.NotContains(t, f.kinds(), EventPaneRemoved)
}

func TestRegistry_RelaysItemEvents(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	items := f.add(p1, "A", "B")

	var titles int
	p1.Events().Subscribe(func(ev pane.Event) {
		if ev.Kind == pane.EventChangeItemTitle {
			titles++
		}
	})
	items[1].Emit(item.Event{Kind: item.UpdateTab})
	assert.Equal(t, 1, titles)

	items[0].Emit(item.Event{Kind: item.CloseItem})
	f.settle(t)
	assert.Equal(t, []string{"B"}, itemIDs(p1))
	assert.True(t, items[0].IsReleased())
	assert.Equal(t, 1, f.ws.Registry().Len())
}

func TestRegistry_CloseInBackgroundPaneKeepsFocus(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")
	p2 := f.ws.SplitPane(f.ctx, p1, entity.SplitRight)
	require.NotNil(t, p2)
	items := f.add(p2, "C", "D")
	p1.Focus()
	require.Same(t, p1, f.ws.ActivePane())
	require.Equal(t, 1, p2.ActiveItemIndex())

	items[1].Emit(item.Event{Kind: item.CloseItem})
	f.settle(t)

	assert.Equal(t, []string{"C"}, itemIDs(p2))
	assert.Equal(t, 0, p2.ActiveItemIndex())
	assert.Same(t, p1, f.ws.ActivePane())
	assert.True(t, p1.HasFocus())
	assert.False(t, p2.HasFocus())
}

func TestRegistry_FollowsMovedItems(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	items := f.add(p1, "A", "B")
	p2 := f.ws.SplitPane(f.ctx, p1, entity.SplitRight)
	f.add(p2, "C")

	f.ws.MoveItem(f.ctx, p1, p2, "A", 0)

	owner, ok := f.ws.Registry().PaneFor("A")
	require.True(t, ok)
	assert.Same(t, p2, owner)

	items[0].Emit(item.Event{Kind: item.CloseItem})
	f.settle(t)
	assert.Equal(t, []string{"C"}, itemIDs(p2))
	assert.Equal(t, []string{"B"}, itemIDs(p1))
}

func TestMoveItem_BetweenPanes(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A", "B")
	p2 := f.ws.SplitPane(f.ctx, p1, entity.SplitRight)
	f.add(p2, "C")

	f.ws.MoveItem(f.ctx, p1, p2, "A", 0)

	assert.Equal(t, []string{"B"}, itemIDs(p1))
	assert.Equal(t, []string{"A", "C"}, itemIDs(p2))
	assert.Equal(t, 0, p2.ActiveItemIndex())
	assert.Same(t, p2, f.ws.ActivePane())
	assert.True(t, p2.ActiveItem().FocusHandle().IsFocused())
}

func TestMoveItem_EmptiedSourceIsRemoved(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")
	p2 := f.ws.SplitPane(f.ctx, p1, entity.SplitRight)

	f.ws.MoveItem(f.ctx, p1, p2, "A", 0)
	f.settle(t)

	assert.Equal(t, []*pane.Pane{p2}, f.ws.Panes())
	assert.True(t, p1.Released())
	assert.Equal(t, []string{"A"}, itemIDs(p2))
	assert.Same(t, p2, FirstPane(f.ws.Center().Root()))
}

func TestMoveItem_WithinPane(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A", "B", "C")

	f.ws.MoveItem(f.ctx, p1, p1, "A", 2)

	assert.Equal(t, []string{"B", "C", "A"}, itemIDs(p1))
	assert.Equal(t, 2, p1.ActiveItemIndex())
	assert.Len(t, f.ws.Panes(), 1)
}

func TestOpenPaths(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()

	f.open(p1, "/tmp/a.txt", "/tmp/b.txt")

	require.Equal(t, 2, p1.Len())
	for i, want := range []string{"/tmp/a.txt", "/tmp/b.txt"} {
		it, _ := p1.ItemAt(i)
		assert.Equal(t, "file", it.Kind())
		assert.Equal(t, want, it.Data())
	}
	assert.Equal(t, 1, p1.ActiveItemIndex())
	assert.Equal(t, 2, f.ws.Registry().Len())
}

func TestOpenPaths_ReusesSingletonInPane(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.open(p1, "/a.go", "/b.go")
	p1.ActivateItem(f.ctx, 0, false, false)

	f.open(p1, "/b.go", "/c.go")

	var data []string
	for _, it := range p1.Items() {
		data = append(data, it.Data())
	}
	assert.Equal(t, []string{"/a.go", "/b.go", "/c.go"}, data)
	assert.Equal(t, 2, p1.ActiveItemIndex())
	assert.Equal(t, 3, f.ws.Registry().Len())

	f.open(p1, "/a.go")
	assert.Equal(t, 3, p1.Len())
	assert.Equal(t, 0, p1.ActiveItemIndex())
}

func TestOpenPaths_SingletonOpensAgainInOtherPane(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.open(p1, "/a.go")
	p2 := f.ws.SplitPane(f.ctx, p1, entity.SplitRight)
	require.NotNil(t, p2)

	f.open(p2, "/a.go")

	assert.Equal(t, 1, p1.Len())
	assert.Equal(t, 1, p2.Len())
	assert.Equal(t, 2, f.ws.Registry().Len())
}

func TestDeactivated_NotifiesActiveItemOfEachPane(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	first := f.add(p1, "A", "B")
	p2 := f.ws.SplitPane(f.ctx, p1, entity.SplitRight)
	second := f.add(p2, "C")

	f.ws.Deactivated(f.ctx)

	assert.Equal(t, 0, first[0].WorkspaceDeactivatedCount)
	assert.Equal(t, 1, first[1].WorkspaceDeactivatedCount)
	assert.Equal(t, 1, second[0].WorkspaceDeactivatedCount)
}

func TestBuildItem_UnknownKind(t *testing.T) {
	f := newFixture(t)

	_, err := f.ws.BuildItem(f.ctx, "ghost", "")
	assert.ErrorIs(t, err, ErrUnknownItemKind)
}

func TestZoom_ToggleActivePane(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")

	p1.ToggleZoom(f.ctx)
	zoomed, ok := f.ws.ZoomedPane()
	require.True(t, ok)
	assert.Same(t, p1, zoomed)
	assert.True(t, p1.IsZoomed())
	assert.Contains(t, f.kinds(), EventZoomChanged)

	p1.ToggleZoom(f.ctx)
	assert.False(t, f.ws.IsZoomed())
	assert.False(t, p1.IsZoomed())
}

func TestZoom_EmptyPaneCannotZoom(t *testing.T) {
	f := newFixture(t)

	f.ws.ActivePane().ToggleZoom(f.ctx)

	assert.False(t, f.ws.IsZoomed())
}

func TestZoom_ActivatingAnotherPaneZoomsOut(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")
	p1.ToggleZoom(f.ctx)
	require.True(t, f.ws.IsZoomed())

	f.ws.SplitPane(f.ctx, p1, entity.SplitRight)

	assert.False(t, f.ws.IsZoomed())
	assert.False(t, p1.IsZoomed())
}

func TestZoom_RemovingZoomedPaneClearsZoom(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")
	p2 := f.ws.SplitPane(f.ctx, p1, entity.SplitRight)
	f.add(p2, "B")
	p2.ToggleZoom(f.ctx)
	require.True(t, f.ws.IsZoomed())

	p2.RemoveItem(f.ctx, 0, true)
	f.settle(t)

	assert.False(t, f.ws.IsZoomed())
	assert.Same(t, p1, f.ws.ActivePane())
	assert.Equal(t, []*pane.Pane{p1}, f.ws.Panes())
}

func TestZoom_PanelReplacesPaneZoom(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")
	panel := f.panel("project", dock.PositionLeft, 30)
	p1.ToggleZoom(f.ctx)

	panel.Emit(dock.PanelZoomIn)

	_, paneZoomed := f.ws.ZoomedPane()
	assert.False(t, paneZoomed)
	assert.False(t, p1.IsZoomed())
	zoomed, pos, ok := f.ws.ZoomedPanel()
	require.True(t, ok)
	assert.Equal(t, entity.PanelID("project"), zoomed.PanelID())
	assert.Equal(t, dock.PositionLeft, pos)

	f.ws.ZoomOut(f.ctx)
	assert.False(t, f.ws.IsZoomed())
	assert.False(t, panel.IsZoomed())
}

func TestToggleDock_MovesFocus(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	panel := f.panel("project", dock.PositionLeft, 30)

	f.ws.ToggleDock(f.ctx, dock.PositionLeft)
	assert.True(t, f.ws.Dock(dock.PositionLeft).IsOpen())
	assert.True(t, panel.FocusHandle().IsFocused())
	assert.True(t, panel.IsActive())

	f.ws.ToggleDock(f.ctx, dock.PositionLeft)
	assert.False(t, f.ws.Dock(dock.PositionLeft).IsOpen())
	assert.True(t, p1.HasFocus())
}

func TestToggleDock_EmptyDockOnlyFlipsState(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()

	f.ws.ToggleDock(f.ctx, dock.PositionBottom)

	assert.True(t, f.ws.Dock(dock.PositionBottom).IsOpen())
	assert.True(t, p1.HasFocus())
}

func TestMovePanel(t *testing.T) {
	f := newFixture(t)
	panel := f.panel("project", dock.PositionLeft, 30)
	f.ws.ToggleDock(f.ctx, dock.PositionLeft)

	require.True(t, f.ws.MovePanel(f.ctx, "project", dock.PositionRight))

	assert.Equal(t, 0, f.ws.Dock(dock.PositionLeft).PanelsLen())
	assert.False(t, f.ws.Dock(dock.PositionLeft).IsOpen())
	right := f.ws.Dock(dock.PositionRight)
	assert.True(t, right.IsOpen())
	assert.Equal(t, dock.PositionRight, panel.Position())
	assert.False(t, f.ws.MovePanel(f.ctx, "ghost", dock.PositionRight))
}

func TestLayout_DocksCarveCenter(t *testing.T) {
	f := newFixture(t)
	f.panel("project", dock.PositionLeft, 20)
	f.panel("terminal", dock.PositionBottom, 10)
	f.ws.Dock(dock.PositionLeft).SetOpen(f.ctx, true)
	f.ws.Dock(dock.PositionBottom).SetOpen(f.ctx, true)

	layout := f.ws.Layout(entity.NewRect(0, 0, 100, 40))

	assert.Equal(t, entity.NewRect(0, 0, 20, 40), layout.Docks[dock.PositionLeft])
	assert.Equal(t, entity.NewRect(20, 30, 80, 10), layout.Docks[dock.PositionBottom])
	_, hasRight := layout.Docks[dock.PositionRight]
	assert.False(t, hasRight)
	assert.Equal(t, entity.NewRect(20, 0, 80, 30), layout.Center)
	require.Len(t, layout.Panes, 1)
	assert.Equal(t, layout.Center, layout.Panes[0].Bounds)
}

func TestLayout_ZoomedPaneFillsArea(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")
	f.panel("project", dock.PositionLeft, 20)
	f.ws.Dock(dock.PositionLeft).SetOpen(f.ctx, true)
	p1.ToggleZoom(f.ctx)

	area := entity.NewRect(0, 0, 100, 40)
	layout := f.ws.Layout(area)

	assert.Same(t, p1, layout.ZoomedPane)
	require.Len(t, layout.Panes, 1)
	assert.Equal(t, area, layout.Panes[0].Bounds)
	assert.Empty(t, layout.Docks)
}

func TestActivatePaneInDirection(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	p2 := f.ws.SplitPane(f.ctx, p1, entity.SplitRight)
	f.ws.Layout(entity.NewRect(0, 0, 100, 40))

	assert.True(t, f.ws.ActivatePaneInDirection(f.ctx, entity.SplitLeft))
	assert.Same(t, p1, f.ws.ActivePane())
	assert.False(t, f.ws.ActivatePaneInDirection(f.ctx, entity.SplitUp))
	assert.True(t, f.ws.ActivatePaneInDirection(f.ctx, entity.SplitRight))
	assert.Same(t, p2, f.ws.ActivePane())
}

func TestResizeActivePane(t *testing.T) {
	f := newFixture(t)
	f.ws.SplitPane(f.ctx, f.ws.ActivePane(), entity.SplitRight)
	root := f.ws.Center().Root()

	require.NoError(t, f.ws.ResizeActivePane(f.ctx, entity.SplitLeft))
	assert.InDelta(t, 0.45, root.Ratio, 1e-9)
	assert.ErrorIs(t, f.ws.ResizeActivePane(f.ctx, entity.SplitUp), ErrNothingToResize)

	require.NoError(t, f.ws.SetSplitRatio(f.ctx, root.ID, 0.01))
	assert.InDelta(t, 0.1, root.Ratio, 1e-9)
}

func TestDispatch(t *testing.T) {
	f := newFixture(t)
	f.panel("project", dock.PositionLeft, 20)

	assert.True(t, f.ws.Dispatch(f.ctx, string(ActionToggleLeftDock), 0))
	assert.True(t, f.ws.Dock(dock.PositionLeft).IsOpen())

	assert.True(t, f.ws.Dispatch(f.ctx, string(pane.ActionSplitRight), 0))
	assert.Len(t, f.ws.Panes(), 2)

	assert.True(t, f.ws.Dispatch(f.ctx, string(ActionCloseAllDocks), 0))
	assert.False(t, f.ws.Dock(dock.PositionLeft).IsOpen())

	assert.False(t, f.ws.Dispatch(f.ctx, "workspace::Nope", 0))
	assert.True(t, IsKnownAction("pane::ToggleZoom"))
	assert.False(t, IsKnownAction("editor::Nope"))
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.open(p1, "/a.go", "/b.go")
	p1.ActivateItem(f.ctx, 0, false, false)
	p2 := f.ws.SplitPane(f.ctx, p1, entity.SplitRight)
	f.open(p2, "/c.go")
	require.NoError(t, f.ws.SetSplitRatio(f.ctx, f.ws.Center().Root().ID, 0.3))
	panel := f.panel("project", dock.PositionLeft, 30)
	size := 25.0
	panel.SetSize(&size)
	f.ws.ToggleDock(f.ctx, dock.PositionLeft)
	p2.Focus()

	state := f.ws.Snapshot("default")
	assert.Equal(t, 2, state.CountPanes())
	assert.Equal(t, 3, state.CountItems())
	assert.Equal(t, p2.ID(), state.ActivePaneID)

	g := newFixture(t)
	restored := g.panel("project", dock.PositionLeft, 30)
	require.NoError(t, g.ws.Restore(g.ctx, state))

	panes := g.ws.Center().Panes()
	require.Len(t, panes, 2)
	assert.Equal(t, p1.ID(), panes[0].ID())
	assert.Equal(t, p2.ID(), panes[1].ID())
	assert.InDelta(t, 0.3, g.ws.Center().Root().Ratio, 1e-9)
	assert.Equal(t, 0, panes[0].ActiveItemIndex())

	var data []string
	for _, it := range panes[0].Items() {
		data = append(data, it.Data())
	}
	assert.Equal(t, []string{"/a.go", "/b.go"}, data)
	assert.Same(t, panes[1], g.ws.ActivePane())

	assert.True(t, g.ws.Dock(dock.PositionLeft).IsOpen())
	require.NotNil(t, restored.CustomSize())
	assert.InDelta(t, 25, *restored.CustomSize(), 1e-9)
	assert.Equal(t, 3, g.ws.Registry().Len())
}

func TestRestore_SkipsUnknownKinds(t *testing.T) {
	f := newFixture(t)
	state := &entity.LayoutState{
		Version: entity.LayoutStateVersion,
		Name:    "broken",
		Center: &entity.PaneGroupSnapshot{
			ID: "p",
			Pane: &entity.PaneSnapshot{
				ID: "p",
				Items: []entity.ItemSnapshot{
					{Kind: "ghost", Title: "gone"},
					{Kind: "file", Data: "/kept.go"},
				},
				ActiveIndex: 1,
			},
		},
	}

	require.NoError(t, f.ws.Restore(f.ctx, state))

	p := f.ws.ActivePane()
	assert.Equal(t, entity.PaneID("p"), p.ID())
	require.Equal(t, 1, p.Len())
	assert.Equal(t, "/kept.go", p.ActiveItem().Data())
}

func TestRestore_CollapsesDuplicateSingletons(t *testing.T) {
	f := newFixture(t)
	state := &entity.LayoutState{
		Version: entity.LayoutStateVersion,
		Name:    "dupes",
		Center: &entity.PaneGroupSnapshot{
			ID: "p",
			Pane: &entity.PaneSnapshot{
				ID: "p",
				Items: []entity.ItemSnapshot{
					{Kind: "file", Data: "/a.go"},
					{Kind: "file", Data: "/b.go"},
					{Kind: "file", Data: "/a.go"},
				},
			},
		},
	}

	require.NoError(t, f.ws.Restore(f.ctx, state))

	p := f.ws.ActivePane()
	require.Equal(t, 2, p.Len())
	assert.Equal(t, 2, f.ws.Registry().Len())
}

func TestRestore_InvalidStateKeepsLayout(t *testing.T) {
	f := newFixture(t)
	p1 := f.ws.ActivePane()
	f.add(p1, "A")

	tests := map[string]*entity.LayoutState{
		"nil":    nil,
		"center": {Version: 1},
		"future": {Version: entity.LayoutStateVersion + 1, Center: &entity.PaneGroupSnapshot{Pane: &entity.PaneSnapshot{ID: "x"}}},
		"split": {Version: 1, Center: &entity.PaneGroupSnapshot{
			ID:       "s",
			Children: []*entity.PaneGroupSnapshot{{Pane: &entity.PaneSnapshot{ID: "x"}}},
		}},
		"duplicate": {Version: 1, Center: &entity.PaneGroupSnapshot{
			ID: "s",
			Children: []*entity.PaneGroupSnapshot{
				{Pane: &entity.PaneSnapshot{ID: "x"}},
				{Pane: &entity.PaneSnapshot{ID: "x"}},
			},
		}},
	}
	for name, state := range tests {
		t.Run(name, func(t *testing.T) {
			err := f.ws.Restore(f.ctx, state)
			assert.ErrorIs(t, err, ErrInvalidLayout)
			assert.Equal(t, []*pane.Pane{p1}, f.ws.Panes())
			assert.Equal(t, []string{"A"}, itemIDs(p1))
		})
	}
}
