package pane

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// Action names a pane command bound to keys.
type Action string

const (
	ActionActivateItem         Action = "pane::ActivateItem"
	ActionActivatePrevItem     Action = "pane::ActivatePrevItem"
	ActionActivateNextItem     Action = "pane::ActivateNextItem"
	ActionActivateLastItem     Action = "pane::ActivateLastItem"
	ActionCloseActiveItem      Action = "pane::CloseActiveItem"
	ActionCloseInactiveItems   Action = "pane::CloseInactiveItems"
	ActionCloseAllItems        Action = "pane::CloseAllItems"
	ActionCloseItemsToTheLeft  Action = "pane::CloseItemsToTheLeft"
	ActionCloseItemsToTheRight Action = "pane::CloseItemsToTheRight"
	ActionSplitLeft            Action = "pane::SplitLeft"
	ActionSplitUp              Action = "pane::SplitUp"
	ActionSplitRight           Action = "pane::SplitRight"
	ActionSplitDown            Action = "pane::SplitDown"
	ActionToggleZoom           Action = "pane::ToggleZoom"
)

// Actions lists every pane action, in menu order.
var Actions = []Action{
	ActionActivateItem,
	ActionActivatePrevItem,
	ActionActivateNextItem,
	ActionActivateLastItem,
	ActionCloseActiveItem,
	ActionCloseInactiveItems,
	ActionCloseAllItems,
	ActionCloseItemsToTheLeft,
	ActionCloseItemsToTheRight,
	ActionSplitLeft,
	ActionSplitUp,
	ActionSplitRight,
	ActionSplitDown,
	ActionToggleZoom,
}

// Dispatch runs action. index is only used by ActionActivateItem. It
// returns false for actions the pane does not handle. Close actions run in
// the background; their task is detached.
func (p *Pane) Dispatch(ctx context.Context, action Action, index int) bool {
	logging.FromContext(p.logger(ctx)).Debug().Str("action", string(action)).Msg("pane action")

	switch action {
	case ActionActivateItem:
		p.ActivateItem(ctx, index, true, true)
	case ActionActivatePrevItem:
		p.ActivatePrevItem(ctx, true)
	case ActionActivateNextItem:
		p.ActivateNextItem(ctx, true)
	case ActionActivateLastItem:
		p.ActivateLastItem(ctx, true)
	case ActionCloseActiveItem:
		detach(p.CloseActiveItem(ctx))
	case ActionCloseInactiveItems:
		detach(p.CloseInactiveItems(ctx))
	case ActionCloseAllItems:
		detach(p.CloseAllItems(ctx))
	case ActionCloseItemsToTheLeft:
		detach(p.CloseItemsToTheLeft(ctx))
	case ActionCloseItemsToTheRight:
		detach(p.CloseItemsToTheRight(ctx))
	case ActionSplitLeft:
		p.Split(ctx, entity.SplitLeft)
	case ActionSplitUp:
		p.Split(ctx, entity.SplitUp)
	case ActionSplitRight:
		p.Split(ctx, entity.SplitRight)
	case ActionSplitDown:
		p.Split(ctx, entity.SplitDown)
	case ActionToggleZoom:
		p.ToggleZoom(ctx)
	default:
		return false
	}
	return true
}
