package workspace

import (
	"context"
	"errors"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/pane"
)

// Action names a workspace command bound to keys.
type Action string

const (
	ActionToggleLeftDock     Action = "workspace::ToggleLeftDock"
	ActionToggleBottomDock   Action = "workspace::ToggleBottomDock"
	ActionToggleRightDock    Action = "workspace::ToggleRightDock"
	ActionCloseAllDocks      Action = "workspace::CloseAllDocks"
	ActionActivatePaneLeft   Action = "workspace::ActivatePaneLeft"
	ActionActivatePaneRight  Action = "workspace::ActivatePaneRight"
	ActionActivatePaneUp     Action = "workspace::ActivatePaneUp"
	ActionActivatePaneDown   Action = "workspace::ActivatePaneDown"
	ActionResizePaneLeft     Action = "workspace::ResizePaneLeft"
	ActionResizePaneRight    Action = "workspace::ResizePaneRight"
	ActionResizePaneUp       Action = "workspace::ResizePaneUp"
	ActionResizePaneDown     Action = "workspace::ResizePaneDown"
	ActionZoomOut            Action = "workspace::ZoomOut"
	ActionFocusActivePane    Action = "workspace::FocusActivePane"
	ActionToggleZoomedPanel  Action = "workspace::ToggleZoomedPanel"
	ActionFocusNextDockPanel Action = "workspace::ActivateNextDockPanel"
)

// Actions lists every workspace action, in menu order.
var Actions = []Action{
	ActionToggleLeftDock,
	ActionToggleBottomDock,
	ActionToggleRightDock,
	ActionCloseAllDocks,
	ActionActivatePaneLeft,
	ActionActivatePaneRight,
	ActionActivatePaneUp,
	ActionActivatePaneDown,
	ActionResizePaneLeft,
	ActionResizePaneRight,
	ActionResizePaneUp,
	ActionResizePaneDown,
	ActionZoomOut,
	ActionFocusActivePane,
	ActionToggleZoomedPanel,
	ActionFocusNextDockPanel,
}

// IsKnownAction reports whether name is a workspace or pane action.
func IsKnownAction(name string) bool {
	for _, a := range Actions {
		if string(a) == name {
			return true
		}
	}
	for _, a := range pane.Actions {
		if string(a) == name {
			return true
		}
	}
	return false
}

// Dispatch runs a workspace action. pane::* actions are forwarded to the
// active pane. It returns false for unknown actions.
func (w *Workspace) Dispatch(ctx context.Context, name string, index int) bool {
	if strings.HasPrefix(name, "pane::") {
		return w.activePane.Dispatch(ctx, pane.Action(name), index)
	}
	logging.FromContext(ctx).Debug().Str("action", name).Msg("workspace action")

	switch Action(name) {
	case ActionToggleLeftDock:
		w.ToggleDock(ctx, dock.PositionLeft)
	case ActionToggleBottomDock:
		w.ToggleDock(ctx, dock.PositionBottom)
	case ActionToggleRightDock:
		w.ToggleDock(ctx, dock.PositionRight)
	case ActionCloseAllDocks:
		w.CloseAllDocks(ctx)
	case ActionActivatePaneLeft:
		w.ActivatePaneInDirection(ctx, entity.SplitLeft)
	case ActionActivatePaneRight:
		w.ActivatePaneInDirection(ctx, entity.SplitRight)
	case ActionActivatePaneUp:
		w.ActivatePaneInDirection(ctx, entity.SplitUp)
	case ActionActivatePaneDown:
		w.ActivatePaneInDirection(ctx, entity.SplitDown)
	case ActionResizePaneLeft:
		w.resizeQuietly(ctx, entity.SplitLeft)
	case ActionResizePaneRight:
		w.resizeQuietly(ctx, entity.SplitRight)
	case ActionResizePaneUp:
		w.resizeQuietly(ctx, entity.SplitUp)
	case ActionResizePaneDown:
		w.resizeQuietly(ctx, entity.SplitDown)
	case ActionZoomOut:
		w.ZoomOut(ctx)
	case ActionFocusActivePane:
		w.activePane.Focus()
	case ActionToggleZoomedPanel:
		w.toggleZoomedPanel()
	case ActionFocusNextDockPanel:
		w.activateNextDockPanel(ctx)
	default:
		return false
	}
	return true
}

func (w *Workspace) resizeQuietly(ctx context.Context, direction entity.SplitDirection) {
	if err := w.ResizeActivePane(ctx, direction); err != nil && !errors.Is(err, ErrNothingToResize) {
		logging.FromContext(ctx).Warn().Err(err).Msg("resize failed")
	}
}

// toggleZoomedPanel zooms the panel holding focus, or zooms out when it is
// already zoomed.
func (w *Workspace) toggleZoomedPanel() {
	for _, pos := range dock.Positions {
		panel, ok := w.docks[pos].VisiblePanel()
		if !ok || !panel.FocusHandle().ContainsFocused() {
			continue
		}
		if panel.IsZoomed() {
			panel.Events().Emit(dock.PanelZoomOut)
		} else {
			panel.Events().Emit(dock.PanelZoomIn)
		}
		return
	}
}

// activateNextDockPanel cycles the active panel of the focused dock.
func (w *Workspace) activateNextDockPanel(ctx context.Context) {
	for _, pos := range dock.Positions {
		d := w.docks[pos]
		if !d.IsOpen() || !d.FocusHandle().ContainsFocused() || d.PanelsLen() == 0 {
			continue
		}
		d.ActivatePanel(ctx, (d.ActivePanelIndex()+1)%d.PanelsLen())
		return
	}
}
