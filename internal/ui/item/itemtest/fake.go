// Package itemtest provides a configurable item for layout tests.
package itemtest

import (
	"context"
	"fmt"
	"reflect"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/item"
)

// Item is a fake item whose behavior is driven by its exported fields.
type Item struct {
	item.Base

	Title string
	// Payload is returned by Data.
	Payload string
	// Descriptions[d] is the tab description at detail d. Levels past the end
	// repeat the last entry.
	Descriptions []string
	Singleton    bool
	Cloneable    bool
	// Cursor is reported by PixelPositionOfCursor when set.
	Cursor *entity.Point

	DeactivatedCount          int
	WorkspaceDeactivatedCount int
	Views                     map[reflect.Type]any
}

// New creates a fake item with a fresh focus handle.
func New(fm *focus.Manager, id, title string) *Item {
	return &Item{
		Base:  item.NewBase(entity.ItemID(id), "fake", fm.NewHandle(nil)),
		Title: title,
	}
}

// NewOfKind creates a fake item of kind whose title and payload are data.
func NewOfKind(fm *focus.Manager, id, kind, data string) *Item {
	return &Item{
		Base:    item.NewBase(entity.ItemID(id), kind, fm.NewHandle(nil)),
		Title:   data,
		Payload: data,
	}
}

func (i *Item) Data() string {
	return i.Payload
}

func (i *Item) TabContent(params item.TabContentParams) string {
	label := i.Title
	if desc, ok := i.TabDescription(params.DetailLevel()); ok && params.Detail != nil {
		label = fmt.Sprintf("%s - %s", i.Title, desc)
	}
	if params.Selected {
		return "*" + label
	}
	return label
}

func (i *Item) TabTooltip() (string, bool) {
	return "tooltip: " + i.Title, true
}

func (i *Item) TabDescription(detail int) (string, bool) {
	if len(i.Descriptions) == 0 {
		return "", false
	}
	if detail >= len(i.Descriptions) {
		detail = len(i.Descriptions) - 1
	}
	return i.Descriptions[detail], true
}

func (i *Item) Deactivated(context.Context) {
	i.DeactivatedCount++
}

func (i *Item) WorkspaceDeactivated(context.Context) {
	i.WorkspaceDeactivatedCount++
}

func (i *Item) PixelPositionOfCursor() (entity.Point, bool) {
	if i.Cursor == nil {
		return entity.Point{}, false
	}
	return *i.Cursor, true
}

func (i *Item) IsSingleton() bool {
	return i.Singleton
}

func (i *Item) CloneOnSplit(_ context.Context, _ entity.WorkspaceID) (item.Item, bool) {
	if !i.Cloneable {
		return nil, false
	}
	clone := &Item{
		Base:  item.NewBase(i.ItemID()+"-clone", i.Kind(), i.FocusHandle().Manager().NewHandle(nil)),
		Title: i.Title,
	}
	return clone, true
}

func (i *Item) ActAsType(kind reflect.Type) (any, bool) {
	v, ok := i.Views[kind]
	return v, ok
}

func (i *Item) Render(int, int) string {
	return i.Title
}

