// Package item defines the tabbed content hosted by panes.
package item

import (
	"context"
	"reflect"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/event"
	"github.com/bnema/dockyard/internal/ui/focus"
)

// EventKind enumerates the notifications an item sends to its pane.
type EventKind int

const (
	// CloseItem asks the owning pane to close the item.
	CloseItem EventKind = iota
	// UpdateTab means the tab label or description changed.
	UpdateTab
	// Edit reports a content edit. Panes ignore it.
	Edit
)

func (k EventKind) String() string {
	switch k {
	case CloseItem:
		return "close_item"
	case UpdateTab:
		return "update_tab"
	case Edit:
		return "edit"
	default:
		return "unknown"
	}
}

// Event is emitted on Item.Events.
type Event struct {
	Kind EventKind
}

// TabContentParams controls how a tab label is produced.
type TabContentParams struct {
	// Detail is the disambiguation level chosen by the pane, nil for none.
	Detail   *int
	Selected bool
}

// DetailLevel returns the detail or 0.
func (p TabContentParams) DetailLevel() int {
	if p.Detail == nil {
		return 0
	}
	return *p.Detail
}

// Item is the type-erased handle a pane holds. Two handles are the same item
// when their ItemID match.
type Item interface {
	ItemID() entity.ItemID
	// Kind is the persistent name used to rebuild the item from a snapshot.
	Kind() string
	// Data is the kind-specific payload stored in snapshots.
	Data() string

	FocusHandle() *focus.Handle
	Events() *event.Emitter[Event]

	TabContent(params TabContentParams) string
	TabTooltip() (string, bool)
	TabDescription(detail int) (string, bool)

	Deactivated(ctx context.Context)
	WorkspaceDeactivated(ctx context.Context)

	IsSingleton() bool
	CloneOnSplit(ctx context.Context, workspace entity.WorkspaceID) (Item, bool)
	ActAsType(kind reflect.Type) (any, bool)
	PixelPositionOfCursor() (entity.Point, bool)

	// Render draws the item body for a width x height cell area.
	Render(width, height int) string

	Release()
	IsReleased() bool
}

// Downcast returns the concrete item when it is a T.
func Downcast[T any](it Item) (T, bool) {
	v, ok := it.(T)
	return v, ok
}

// ActAs returns a T view of the item: the item itself when it already is a T,
// otherwise whatever the item exposes through ActAsType.
func ActAs[T any](it Item) (T, bool) {
	var zero T
	if it == nil {
		return zero, false
	}
	if v, ok := it.(T); ok {
		return v, true
	}
	v, ok := it.ActAsType(reflect.TypeFor[T]())
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	return typed, ok
}

// DraggedTabContent renders the label shown under the cursor while dragging.
func DraggedTabContent(it Item, params TabContentParams) string {
	params.Selected = true
	return it.TabContent(params)
}

// Weak refers to an item without keeping it usable after release.
type Weak struct {
	item Item
}

// Downgrade returns a weak reference to it.
func Downgrade(it Item) Weak {
	return Weak{item: it}
}

// Upgrade returns the item while it has not been released.
func (w Weak) Upgrade() (Item, bool) {
	if w.item == nil || w.item.IsReleased() {
		return nil, false
	}
	return w.item, true
}

// ID returns the referenced item's id, even after release.
func (w Weak) ID() entity.ItemID {
	if w.item == nil {
		return ""
	}
	return w.item.ItemID()
}
