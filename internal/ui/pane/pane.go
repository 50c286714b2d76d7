// Package pane implements the tabbed item container that sits in each leaf
// of the workspace split tree.
package pane

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/event"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/bnema/dockyard/internal/ui/mainloop"
)

// DefaultDragSplitMargin is the fraction of the shorter pane side that
// counts as an edge band while dragging a tab.
const DefaultDragSplitMargin = 0.33

// EventKind enumerates pane events.
type EventKind int

const (
	EventAddItem EventKind = iota
	EventActivateItem
	EventRemove
	EventRemoveItem
	EventSplit
	EventChangeItemTitle
	EventFocus
	EventZoomIn
	EventZoomOut
)

var eventNames = map[EventKind]string{
	EventAddItem:         "add_item",
	EventActivateItem:    "activate_item",
	EventRemove:          "remove",
	EventRemoveItem:      "remove_item",
	EventSplit:           "split",
	EventChangeItemTitle: "change_item_title",
	EventFocus:           "focus",
	EventZoomIn:          "zoom_in",
	EventZoomOut:         "zoom_out",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is emitted on Pane.Events. Only the fields relevant to Kind are set.
type Event struct {
	Kind      EventKind
	Item      item.Item             // EventAddItem
	ItemID    entity.ItemID         // EventRemoveItem
	Local     bool                  // EventActivateItem
	Direction entity.SplitDirection // EventSplit
}

// Host is the workspace as seen by a pane. The pane never owns it.
type Host interface {
	// Post defers fn to the main loop, after the current dispatch.
	Post(fn func())
	SplitPane(ctx context.Context, from *Pane, direction entity.SplitDirection) *Pane
	MoveItem(ctx context.Context, from, to *Pane, itemID entity.ItemID, index int)
	OpenPaths(ctx context.Context, to *Pane, paths []string, index int)
	// ItemClosed is told about an item closed by the pane; it owns disposal.
	ItemClosed(ctx context.Context, it item.Item)
	WorkspaceID() entity.WorkspaceID
}

// DropResult tells HandleDrop whether a custom handler consumed the drop.
type DropResult int

const (
	DropContinue DropResult = iota
	DropHandled
)

// CustomDropHandler runs before the default drop behavior.
type CustomDropHandler func(ctx context.Context, p *Pane, payload any) DropResult

// Options configures a new pane.
type Options struct {
	Loop  *mainloop.Loop
	Focus *focus.Manager
	Host  Host

	CanSplit        bool
	DragSplitMargin float64

	// CanDrop filters drag payloads. Nil accepts everything.
	CanDrop func(payload any) bool

	// ShowTabBar decides whether the tab strip is drawn. Nil always shows it.
	ShowTabBar func(p *Pane) bool
}

// Pane holds an ordered list of items, one of which is active.
type Pane struct {
	id     entity.PaneID
	loop   *mainloop.Loop
	fm     *focus.Manager
	host   Host
	handle *focus.Handle

	items       []item.Item
	activeIndex int
	zoomed      bool
	wasFocused  bool
	lastFocused map[entity.ItemID]focus.WeakHandle

	dragSplitDirection entity.SplitDirection
	dragSplitMargin    float64
	canDrop            func(payload any) bool
	customDrop         CustomDropHandler
	canSplit           bool
	showTabBar         func(p *Pane) bool

	scrollOffset int
	autoscroll   bool

	events   event.Emitter[Event]
	changes  event.Observers
	subs     []*event.Subscription
	released bool
}

// New creates an empty pane.
func New(ctx context.Context, id entity.PaneID, opts Options) *Pane {
	margin := opts.DragSplitMargin
	if margin <= 0 {
		margin = DefaultDragSplitMargin
	}
	p := &Pane{
		id:              id,
		loop:            opts.Loop,
		fm:              opts.Focus,
		host:            opts.Host,
		handle:          opts.Focus.NewHandle(nil),
		lastFocused:     make(map[entity.ItemID]focus.WeakHandle),
		dragSplitMargin: margin,
		canDrop:         opts.CanDrop,
		canSplit:        opts.CanSplit,
		showTabBar:      opts.ShowTabBar,
	}
	p.subs = append(p.subs,
		p.fm.OnFocusIn(p.handle, func() { p.focusIn(ctx) }),
		p.fm.OnFocusOut(p.handle, func() { p.focusOut(ctx) }),
	)
	logging.FromContext(ctx).Debug().Str("pane_id", string(id)).Msg("pane created")
	return p
}

func (p *Pane) ID() entity.PaneID {
	return p.id
}

func (p *Pane) FocusHandle() *focus.Handle {
	return p.handle
}

func (p *Pane) Events() *event.Emitter[Event] {
	return &p.events
}

func (p *Pane) Changes() *event.Observers {
	return &p.changes
}

func (p *Pane) Len() int {
	return len(p.items)
}

func (p *Pane) ActiveItemIndex() int {
	return p.activeIndex
}

func (p *Pane) IsZoomed() bool {
	return p.zoomed
}

func (p *Pane) CanSplit() bool {
	return p.canSplit
}

func (p *Pane) Released() bool {
	return p.released
}

func (p *Pane) DragSplitDirection() entity.SplitDirection {
	return p.dragSplitDirection
}

// Items returns a copy of the item list.
func (p *Pane) Items() []item.Item {
	out := make([]item.Item, len(p.items))
	copy(out, p.items)
	return out
}

// ItemAt returns the item at index.
func (p *Pane) ItemAt(index int) (item.Item, bool) {
	if index < 0 || index >= len(p.items) {
		return nil, false
	}
	return p.items[index], true
}

// ActiveItem returns the active item, or nil for an empty pane.
func (p *Pane) ActiveItem() item.Item {
	it, _ := p.ItemAt(p.activeIndex)
	return it
}

// IndexForItemID returns the position of the item, or -1.
func (p *Pane) IndexForItemID(id entity.ItemID) int {
	for i, it := range p.items {
		if it.ItemID() == id {
			return i
		}
	}
	return -1
}

// ItemForID returns the item with id.
func (p *Pane) ItemForID(id entity.ItemID) (item.Item, bool) {
	return p.ItemAt(p.IndexForItemID(id))
}

// SetCanSplit toggles whether Split and drag-to-split are honored.
func (p *Pane) SetCanSplit(canSplit bool) {
	p.canSplit = canSplit
	if !canSplit {
		p.dragSplitDirection = ""
	}
	p.notify()
}

// SetCanDrop replaces the drag payload filter.
func (p *Pane) SetCanDrop(fn func(payload any) bool) {
	p.canDrop = fn
}

// SetCustomDropHandler installs a handler consulted before the default drop.
func (p *Pane) SetCustomDropHandler(fn CustomDropHandler) {
	p.customDrop = fn
}

// SetShowTabBar replaces the tab bar visibility predicate.
func (p *Pane) SetShowTabBar(fn func(p *Pane) bool) {
	p.showTabBar = fn
	p.notify()
}

// Update runs fn unless the pane was released. Asynchronous steps go through
// it so that a dropped pane ends them quietly.
func (p *Pane) Update(fn func(p *Pane)) error {
	if p.released {
		return mainloop.ErrReleased
	}
	fn(p)
	return nil
}

// Release drops the pane and every item still in it.
func (p *Pane) Release(ctx context.Context) {
	if p.released {
		return
	}
	for _, sub := range p.subs {
		sub.Unsubscribe()
	}
	p.subs = nil
	for _, it := range p.items {
		it.Release()
	}
	p.items = nil
	p.handle.Release()
	p.released = true
	logging.FromContext(ctx).Debug().Str("pane_id", string(p.id)).Msg("pane released")
}

func (p *Pane) emit(ev Event) {
	p.events.Emit(ev)
}

func (p *Pane) notify() {
	p.changes.Notify()
}

func (p *Pane) logger(ctx context.Context) context.Context {
	return logging.WithPaneID(ctx, string(p.id))
}
