package item

import (
	"context"
	"reflect"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/event"
	"github.com/bnema/dockyard/internal/ui/focus"
)

// Base carries identity and the default behavior of every optional item
// capability. Concrete items embed it and override what they need.
type Base struct {
	id       entity.ItemID
	kind     string
	handle   *focus.Handle
	events   event.Emitter[Event]
	released bool
}

// NewBase creates the shared part of an item.
func NewBase(id entity.ItemID, kind string, handle *focus.Handle) Base {
	return Base{id: id, kind: kind, handle: handle}
}

func (b *Base) ItemID() entity.ItemID {
	return b.id
}

func (b *Base) Kind() string {
	return b.kind
}

func (b *Base) Data() string {
	return ""
}

func (b *Base) FocusHandle() *focus.Handle {
	return b.handle
}

func (b *Base) Events() *event.Emitter[Event] {
	return &b.events
}

func (b *Base) IsSingleton() bool {
	return false
}

func (b *Base) Render(int, int) string {
	return ""
}

// TabContent returns an empty label.
func (b *Base) TabContent(TabContentParams) string {
	return ""
}

func (b *Base) TabTooltip() (string, bool) {
	return "", false
}

// TabDescription returns no description, which opts the item out of
// disambiguation.
func (b *Base) TabDescription(int) (string, bool) {
	return "", false
}

func (b *Base) Deactivated(context.Context) {}

func (b *Base) WorkspaceDeactivated(context.Context) {}

// CloneOnSplit returns false: items are not duplicated into new panes.
func (b *Base) CloneOnSplit(context.Context, entity.WorkspaceID) (Item, bool) {
	return nil, false
}

// ActAsType exposes no other views. ActAs already covers the identity case.
func (b *Base) ActAsType(reflect.Type) (any, bool) {
	return nil, false
}

// PixelPositionOfCursor reports no cursor.
func (b *Base) PixelPositionOfCursor() (entity.Point, bool) {
	return entity.Point{}, false
}

// Emit sends ev to the owning pane.
func (b *Base) Emit(ev Event) {
	b.events.Emit(ev)
}

// Release marks the item dropped and releases its focus handle.
func (b *Base) Release() {
	if b.released {
		return
	}
	b.released = true
	b.handle.Release()
}

func (b *Base) IsReleased() bool {
	return b.released
}

