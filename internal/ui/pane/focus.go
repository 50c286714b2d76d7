package pane

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// Focus focuses the pane itself. Focus then moves on to the active item.
func (p *Pane) Focus() {
	p.handle.Focus()
}

// FocusActiveItem focuses the active item, if any.
func (p *Pane) FocusActiveItem() {
	if active := p.ActiveItem(); active != nil {
		active.FocusHandle().Focus()
	}
}

// PixelPositionOfCursor is the cursor position of the active item.
func (p *Pane) PixelPositionOfCursor() (entity.Point, bool) {
	if active := p.ActiveItem(); active != nil {
		return active.PixelPositionOfCursor()
	}
	return entity.Point{}, false
}

// HasFocus reports whether focus is on the pane or inside one of its items.
func (p *Pane) HasFocus() bool {
	if p.handle.ContainsFocused() {
		return true
	}
	active := p.ActiveItem()
	return active != nil && active.FocusHandle().ContainsFocused()
}

// WasFocused reports whether the pane held focus last time it changed.
func (p *Pane) WasFocused() bool {
	return p.wasFocused
}

func (p *Pane) focusIn(ctx context.Context) {
	if !p.wasFocused {
		p.wasFocused = true
		logging.FromContext(p.logger(ctx)).Debug().Msg("pane focused")
		p.emit(Event{Kind: EventFocus})
		p.notify()
	}

	active := p.ActiveItem()
	if active == nil {
		return
	}
	if p.handle.IsFocused() {
		// Focused directly: hand focus to whatever was focused inside the item.
		if weak, ok := p.lastFocused[active.ItemID()]; ok {
			if h, ok := weak.Upgrade(); ok {
				h.Focus()
				return
			}
		}
		active.FocusHandle().Focus()
		return
	}
	if focused := p.fm.Focused(); focused != nil {
		p.lastFocused[active.ItemID()] = focused.Weak()
	}
}

func (p *Pane) focusOut(ctx context.Context) {
	if !p.wasFocused {
		return
	}
	p.wasFocused = false
	logging.FromContext(p.logger(ctx)).Debug().Msg("pane blurred")
	p.notify()
}

// Split asks the workspace to split this pane in direction.
func (p *Pane) Split(ctx context.Context, direction entity.SplitDirection) {
	if !p.canSplit || !direction.Valid() {
		return
	}
	logging.FromContext(p.logger(ctx)).Debug().Str("direction", string(direction)).Msg("split requested")
	p.emit(Event{Kind: EventSplit, Direction: direction})
}

// SetZoomed records whether the workspace shows this pane zoomed.
func (p *Pane) SetZoomed(zoomed bool) {
	if p.zoomed == zoomed {
		return
	}
	p.zoomed = zoomed
	p.notify()
}

// ToggleZoom asks the workspace to zoom in or out. An empty pane cannot zoom.
func (p *Pane) ToggleZoom(ctx context.Context) {
	if p.zoomed {
		p.emit(Event{Kind: EventZoomOut})
		return
	}
	if len(p.items) == 0 {
		return
	}
	if !p.handle.ContainsFocused() {
		p.Focus()
	}
	logging.FromContext(p.logger(ctx)).Debug().Msg("zoom requested")
	p.emit(Event{Kind: EventZoomIn})
}
