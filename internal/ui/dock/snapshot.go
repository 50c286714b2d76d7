package dock

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// PanelTab describes a panel button in the dock's status strip.
type PanelTab struct {
	Name   string
	Icon   string
	Active bool
}

// Snapshot is the read-only view of a dock used by the render pass.
type Snapshot struct {
	Position   Position
	Visible    bool
	Size       float64
	Axis       entity.Axis
	Border     Side
	HandleEdge Side
	Resizeable bool
	Panel      Panel
	Zoomed     bool
	Focused    bool
	Tabs       []PanelTab
}

// Snapshot captures the dock state for one frame.
func (d *Dock) Snapshot() Snapshot {
	s := Snapshot{
		Position:   d.position,
		Axis:       d.position.Axis(),
		Border:     d.position.BorderSide(),
		HandleEdge: d.position.BorderSide(),
		Resizeable: d.resizeable,
		Focused:    d.handle.ContainsFocused(),
	}
	for i, e := range d.entries {
		s.Tabs = append(s.Tabs, PanelTab{
			Name:   e.panel.PersistentName(),
			Icon:   e.panel.Icon(),
			Active: d.open && i == d.activeIndex,
		})
	}
	if panel, ok := d.VisiblePanel(); ok {
		s.Visible = true
		s.Panel = panel
		s.Size = panel.Size()
		s.Zoomed = panel.IsZoomed()
	}
	return s
}

// DraggedDock is the payload of a dock resize handle being dragged.
type DraggedDock struct {
	Position Position
}

// SizeForCursor converts a cursor position into the panel size for a dock
// attached to area.
func (dd DraggedDock) SizeForCursor(area entity.Rect, cursor entity.Point) float64 {
	switch dd.Position {
	case PositionLeft:
		return cursor.X - area.Left()
	case PositionRight:
		return area.Right() - cursor.X
	default:
		return area.Bottom() - cursor.Y
	}
}

// HandleDrag resizes the active panel to follow the dragged handle.
func (d *Dock) HandleDrag(ctx context.Context, area entity.Rect, cursor entity.Point) {
	if !d.resizeable {
		return
	}
	size := DraggedDock{Position: d.position}.SizeForCursor(area, cursor)
	d.ResizeActivePanel(ctx, &size)
}

// HandleDoubleClick resets the active panel to its default size.
func (d *Dock) HandleDoubleClick(ctx context.Context) {
	d.ResizeActivePanel(ctx, nil)
}
