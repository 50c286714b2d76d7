package pane

import (
	"context"

	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/item"
)

// AddItem inserts it at destination, or right after the active item when
// destination is nil, then activates it. An item already in the pane is
// moved instead of duplicated. Moving an item onto its own position changes
// nothing and emits no AddItem.
func (p *Pane) AddItem(ctx context.Context, it item.Item, activatePane, focusItem bool, destination *int) {
	if p.released || it == nil {
		return
	}
	log := logging.FromContext(p.logger(ctx))

	insertion := p.activeIndex + 1
	if destination != nil {
		insertion = max(*destination, 0)
	}
	insertion = min(insertion, len(p.items))

	it.FocusHandle().SetParent(p.handle)

	if existing := p.IndexForItemID(it.ItemID()); existing >= 0 {
		if !p.moveExisting(existing, insertion, destination == nil) {
			log.Debug().
				Str("item_id", string(it.ItemID())).
				Int("index", existing).
				Msg("item already at destination")
			if existing != p.activeIndex {
				p.ActivateItem(ctx, existing, activatePane, focusItem)
			} else if focusItem {
				p.FocusActiveItem()
			}
			return
		}
		insertion = p.IndexForItemID(it.ItemID())
		p.notify()
	} else {
		p.items = append(p.items, nil)
		copy(p.items[insertion+1:], p.items[insertion:])
		p.items[insertion] = it
		if insertion <= p.activeIndex && len(p.items) > 1 {
			p.activeIndex++
		}
	}

	log.Debug().
		Str("item_id", string(it.ItemID())).
		Int("index", insertion).
		Int("len", len(p.items)).
		Msg("item added")

	p.ActivateItem(ctx, insertion, activatePane, focusItem)
	p.notify()
	p.emit(Event{Kind: EventAddItem, Item: it})
}

// moveExisting relocates the item at existing so that it ends at insertion.
// It returns false when the item would land where it already is.
func (p *Pane) moveExisting(existing, insertion int, keepActive bool) bool {
	isActive := existing == p.activeIndex
	if isActive && keepActive {
		return false
	}
	// Position after removal.
	target := min(insertion, len(p.items)-1)
	if target == existing {
		return false
	}

	moved := p.items[existing]
	p.items = append(p.items[:existing], p.items[existing+1:]...)
	if existing < p.activeIndex {
		p.activeIndex--
	}

	p.items = append(p.items, nil)
	copy(p.items[target+1:], p.items[target:])
	p.items[target] = moved

	switch {
	case isActive:
		p.activeIndex = target
	case target <= p.activeIndex:
		p.activeIndex++
	}
	return true
}

// RemoveItem removes the item at index. When it was active, its left
// neighbor (or the new first item) becomes active.
func (p *Pane) RemoveItem(ctx context.Context, index int, activatePane bool) {
	if p.released || index < 0 || index >= len(p.items) {
		return
	}
	log := logging.FromContext(p.logger(ctx))

	focusPane := false
	if index == p.activeIndex {
		toActivate := max(min(index, len(p.items))-1, 0)
		shouldActivate := activatePane || p.HasFocus()
		if len(p.items) == 1 && shouldActivate {
			focusPane = true
		} else {
			p.ActivateItem(ctx, toActivate, shouldActivate, shouldActivate)
		}
	}

	removed := p.items[index]
	p.items = append(p.items[:index], p.items[index+1:]...)
	delete(p.lastFocused, removed.ItemID())
	if focusPane {
		// The pane is empty now, so focus stays on the pane itself.
		p.Focus()
	}

	log.Debug().
		Str("item_id", string(removed.ItemID())).
		Int("index", index).
		Int("len", len(p.items)).
		Msg("item removed")
	p.emit(Event{Kind: EventRemoveItem, ItemID: removed.ItemID()})

	if len(p.items) == 0 {
		removed.Deactivated(ctx)
		p.emit(Event{Kind: EventRemove})
		if p.zoomed {
			p.zoomed = false
			p.emit(Event{Kind: EventZoomOut})
		}
	}

	if index < p.activeIndex {
		p.activeIndex--
	}
	if p.activeIndex >= len(p.items) {
		p.activeIndex = max(len(p.items)-1, 0)
	}
	p.notify()
}

// ActivateItem makes the item at index active. Out of range is a no-op.
func (p *Pane) ActivateItem(ctx context.Context, index int, activatePane, focusItem bool) {
	if p.released || index < 0 || index >= len(p.items) {
		return
	}
	prev := p.activeIndex
	p.activeIndex = index
	if prev != index {
		if prevItem, ok := p.ItemAt(prev); ok {
			prevItem.Deactivated(ctx)
		}
	}

	logging.FromContext(p.logger(ctx)).Debug().
		Int("index", index).
		Bool("activate_pane", activatePane).
		Msg("item activated")

	p.emit(Event{Kind: EventActivateItem, Local: activatePane})
	if focusItem {
		p.FocusActiveItem()
	}
	p.autoscroll = true
	p.notify()
}

// ActivatePrevItem activates the item left of the active one, wrapping around.
func (p *Pane) ActivatePrevItem(ctx context.Context, activatePane bool) {
	if len(p.items) == 0 {
		return
	}
	index := len(p.items) - 1
	if p.activeIndex > 0 {
		index = p.activeIndex - 1
	}
	p.ActivateItem(ctx, index, activatePane, activatePane)
}

// ActivateNextItem activates the item right of the active one, wrapping around.
func (p *Pane) ActivateNextItem(ctx context.Context, activatePane bool) {
	if len(p.items) == 0 {
		return
	}
	index := 0
	if p.activeIndex+1 < len(p.items) {
		index = p.activeIndex + 1
	}
	p.ActivateItem(ctx, index, activatePane, activatePane)
}

// ActivateLastItem activates the rightmost item.
func (p *Pane) ActivateLastItem(ctx context.Context, focusItem bool) {
	p.ActivateItem(ctx, len(p.items)-1, focusItem, focusItem)
}

// ItemTitleChanged re-renders the tab strip after an item updated its tab.
func (p *Pane) ItemTitleChanged() {
	if p.released {
		return
	}
	p.emit(Event{Kind: EventChangeItemTitle})
	p.notify()
}
