package dock_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/dock/mocks"
	"github.com/bnema/dockyard/internal/ui/focus"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type testPanel struct {
	dock.PanelBase
	activations []bool
}

func (p *testPanel) SetActive(ctx context.Context, active bool) {
	p.PanelBase.SetActive(ctx, active)
	p.activations = append(p.activations, active)
}

func newPanel(fm *focus.Manager, name string, startsOpen bool) *testPanel {
	return &testPanel{PanelBase: dock.NewPanelBase(dock.PanelConfig{
		ID:          entity.PanelID(name),
		Name:        name,
		Position:    dock.PositionLeft,
		DefaultSize: 30,
		StartsOpen:  startsOpen,
	}, fm.NewHandle(nil))}
}

func newDock(t *testing.T, host dock.Host) (*dock.Dock, *focus.Manager) {
	t.Helper()
	fm := focus.NewManager()
	d := dock.New(testCtx(), dock.PositionLeft, dock.Options{Focus: fm, Host: host, Resizeable: true})
	return d, fm
}

func TestAddPanel_StartsOpen(t *testing.T) {
	ctx := testCtx()
	d, fm := newDock(t, nil)
	a := newPanel(fm, "a", false)
	b := newPanel(fm, "b", true)

	d.AddPanel(ctx, a)
	assert.False(t, d.IsOpen())

	d.AddPanel(ctx, b)

	assert.True(t, d.IsOpen())
	assert.Equal(t, 1, d.ActivePanelIndex())
	visible, ok := d.VisiblePanel()
	require.True(t, ok)
	assert.Equal(t, entity.PanelID("b"), visible.PanelID())
	assert.Equal(t, []bool{false}, a.activations)
	assert.Equal(t, []bool{true, true}, b.activations)
}

func TestRemovePanel(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		remove     string
		wantActive int
		wantOpen   bool
	}{
		{"remove active closes dock", 1, "b", 0, false},
		{"remove before active decrements", 2, "a", 1, true},
		{"remove after active keeps index", 0, "c", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testCtx()
			d, fm := newDock(t, nil)
			for _, name := range []string{"a", "b", "c"} {
				d.AddPanel(ctx, newPanel(fm, name, false))
			}
			d.ActivatePanel(ctx, tt.active)
			d.SetOpen(ctx, true)

			removed, ok := d.RemovePanel(ctx, entity.PanelID(tt.remove))

			require.True(t, ok)
			assert.Equal(t, entity.PanelID(tt.remove), removed.PanelID())
			assert.Equal(t, 2, d.PanelsLen())
			assert.Equal(t, tt.wantActive, d.ActivePanelIndex())
			assert.Equal(t, tt.wantOpen, d.IsOpen())
		})
	}
}

func TestRemovePanel_DropsSubscriptions(t *testing.T) {
	ctx := testCtx()
	d, fm := newDock(t, nil)
	a := newPanel(fm, "a", false)
	d.AddPanel(ctx, a)
	d.AddPanel(ctx, newPanel(fm, "b", false))

	_, ok := d.RemovePanel(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, 0, a.Events().Len())

	before := d.Changes().Count()
	a.Emit(dock.PanelActivate)
	a.SetZoomed(true)
	assert.Equal(t, before, d.Changes().Count())
	assert.False(t, d.IsOpen())

	_, ok = d.RemovePanel(ctx, "missing")
	assert.False(t, ok)
}

func TestActivatePanel_TogglesActiveFlags(t *testing.T) {
	ctx := testCtx()
	d, fm := newDock(t, nil)
	a := newPanel(fm, "a", false)
	b := newPanel(fm, "b", false)
	d.AddPanel(ctx, a)
	d.AddPanel(ctx, b)

	d.ActivatePanel(ctx, 1)
	d.ActivatePanel(ctx, 7)

	assert.Equal(t, 1, d.ActivePanelIndex())
	assert.Equal(t, []bool{false}, a.activations)
	assert.Equal(t, []bool{true}, b.activations)
}

func TestSetOpen_PropagatesToActivePanel(t *testing.T) {
	ctx := testCtx()
	d, fm := newDock(t, nil)
	a := newPanel(fm, "a", false)
	d.AddPanel(ctx, a)

	d.SetOpen(ctx, true)
	d.SetOpen(ctx, true)
	d.ToggleOpen(ctx)

	assert.False(t, d.IsOpen())
	assert.Equal(t, []bool{true, false}, a.activations)
	_, ok := d.VisiblePanel()
	assert.False(t, ok)
}

func TestPanelEvents_ActivateAndClose(t *testing.T) {
	ctx := testCtx()
	d, fm := newDock(t, nil)
	a := newPanel(fm, "a", false)
	b := newPanel(fm, "b", false)
	d.AddPanel(ctx, a)
	d.AddPanel(ctx, b)

	b.Emit(dock.PanelActivate)

	assert.True(t, d.IsOpen())
	assert.Equal(t, 1, d.ActivePanelIndex())
	assert.True(t, b.FocusHandle().IsFocused())

	// Closing a hidden panel does nothing.
	a.Emit(dock.PanelClose)
	assert.True(t, d.IsOpen())

	b.Emit(dock.PanelClose)
	assert.False(t, d.IsOpen())
}

func TestPanelEvents_Zoom(t *testing.T) {
	ctx := testCtx()
	host := mocks.NewMockHost(t)
	d, fm := newDock(t, host)
	a := newPanel(fm, "a", false)
	b := newPanel(fm, "b", false)
	d.AddPanel(ctx, a)
	d.AddPanel(ctx, b)
	b.SetZoomed(true)

	host.EXPECT().SetZoomed(mock.Anything, dock.Panel(a), dock.PositionLeft).Once()

	a.Emit(dock.PanelZoomIn)

	assert.True(t, a.IsZoomed())
	assert.False(t, b.IsZoomed())
	assert.True(t, a.FocusHandle().IsFocused())

	host.EXPECT().ZoomedPosition().Return(dock.PositionLeft, true).Once()
	host.EXPECT().ClearZoomed(mock.Anything).Once()

	a.Emit(dock.PanelZoomOut)
	assert.False(t, a.IsZoomed())
}

func TestPanelEvents_ZoomOutOtherDockKeepsWorkspaceZoom(t *testing.T) {
	ctx := testCtx()
	host := mocks.NewMockHost(t)
	d, fm := newDock(t, host)
	a := newPanel(fm, "a", false)
	d.AddPanel(ctx, a)
	a.SetZoomed(true)

	host.EXPECT().ZoomedPosition().Return(dock.PositionBottom, true).Once()

	a.Emit(dock.PanelZoomOut)

	assert.False(t, a.IsZoomed())
	host.AssertNotCalled(t, "ClearZoomed", mock.Anything)
}

func TestResizeActivePanel(t *testing.T) {
	ctx := testCtx()
	d, fm := newDock(t, nil)
	a := newPanel(fm, "a", true)
	d.AddPanel(ctx, a)

	size := 2.0
	d.ResizeActivePanel(ctx, &size)
	assert.Equal(t, float64(dock.DefaultResizeHandleSize), a.Size())

	size = 41.6
	d.ResizeActivePanel(ctx, &size)
	assert.Equal(t, 42.0, a.Size())

	d.HandleDoubleClick(ctx)
	assert.Equal(t, 30.0, a.Size())
}

func TestHandleDrag(t *testing.T) {
	area := entity.NewRect(0, 0, 200, 50)
	tests := []struct {
		position dock.Position
		cursor   entity.Point
		want     float64
	}{
		{dock.PositionLeft, entity.Point{X: 40, Y: 10}, 40},
		{dock.PositionRight, entity.Point{X: 150, Y: 10}, 50},
		{dock.PositionBottom, entity.Point{X: 10, Y: 30}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.position.String(), func(t *testing.T) {
			ctx := testCtx()
			fm := focus.NewManager()
			d := dock.New(ctx, tt.position, dock.Options{Focus: fm, Resizeable: true})
			p := newPanel(fm, "p", true)
			d.AddPanel(ctx, p)

			d.HandleDrag(ctx, area, tt.cursor)

			assert.Equal(t, tt.want, p.Size())
		})
	}
}

func TestDockFocusForwardsToActivePanel(t *testing.T) {
	ctx := testCtx()
	d, fm := newDock(t, nil)
	a := newPanel(fm, "a", true)
	d.AddPanel(ctx, a)

	d.FocusHandle().Focus()

	assert.True(t, a.FocusHandle().IsFocused())
	assert.True(t, d.Snapshot().Focused)
}

func TestSnapshot(t *testing.T) {
	ctx := testCtx()
	fm := focus.NewManager()
	d := dock.New(ctx, dock.PositionBottom, dock.Options{Focus: fm})
	a := newPanel(fm, "terminal", false)
	d.AddPanel(ctx, a)

	s := d.Snapshot()
	assert.False(t, s.Visible)
	assert.Equal(t, dock.SideTop, s.Border)
	assert.Equal(t, entity.AxisVertical, s.Axis)

	d.SetOpen(ctx, true)
	s = d.Snapshot()
	assert.True(t, s.Visible)
	assert.Equal(t, 30.0, s.Size)
	require.Len(t, s.Tabs, 1)
	assert.True(t, s.Tabs[0].Active)
}

func TestPosition(t *testing.T) {
	assert.Equal(t, entity.AxisHorizontal, dock.PositionLeft.Axis())
	assert.Equal(t, entity.AxisHorizontal, dock.PositionRight.Axis())
	assert.Equal(t, entity.AxisVertical, dock.PositionBottom.Axis())
	assert.Equal(t, dock.SideRight, dock.PositionLeft.BorderSide())
	assert.Equal(t, dock.SideLeft, dock.PositionRight.BorderSide())

	data, err := json.Marshal(map[string]dock.Position{"p": dock.PositionRight})
	require.NoError(t, err)
	assert.JSONEq(t, `{"p":"right"}`, string(data))

	var p dock.Position
	require.NoError(t, json.Unmarshal([]byte(`"bottom"`), &p))
	assert.Equal(t, dock.PositionBottom, p)
	assert.Error(t, json.Unmarshal([]byte(`"top"`), &p))
}
