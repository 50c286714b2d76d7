package workspace

import (
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/pane"
)

// Layout is the geometry of one frame.
type Layout struct {
	Area     entity.Rect
	Center   entity.Rect
	Docks    map[dock.Position]entity.Rect
	Panes    []PaneBounds
	Dividers []Divider

	ZoomedPane  *pane.Pane
	ZoomedPanel dock.Panel
}

// Layout computes the frame geometry for area and remembers it for
// directional navigation.
func (w *Workspace) Layout(area entity.Rect) Layout {
	w.lastArea = area
	out := Layout{Area: area, Docks: make(map[dock.Position]entity.Rect)}

	if p, ok := w.ZoomedPane(); ok {
		out.ZoomedPane = p
		out.Center = area
		out.Panes = []PaneBounds{{Pane: p, Bounds: area}}
		return out
	}
	if panel, pos, ok := w.ZoomedPanel(); ok {
		out.ZoomedPanel = panel
		out.Docks[pos] = area
		return out
	}

	center, docks := w.dockRects(area)
	out.Center = center
	out.Docks = docks
	out.Panes = w.center.Bounds(center)
	out.Dividers = w.center.Dividers(center)
	return out
}

func (w *Workspace) centerArea(area entity.Rect) entity.Rect {
	center, _ := w.dockRects(area)
	return center
}

// dockRects carves the open docks out of area. Side docks take the full
// height; the bottom dock sits between them.
func (w *Workspace) dockRects(area entity.Rect) (entity.Rect, map[dock.Position]entity.Rect) {
	docks := make(map[dock.Position]entity.Rect)
	left, right, top, bottom := area.Left(), area.Right(), area.Top(), area.Bottom()
	height := area.Size.Height

	if size, ok := w.visibleDockSize(dock.PositionLeft); ok {
		size = min(size, right-left)
		docks[dock.PositionLeft] = entity.NewRect(left, top, size, height)
		left += size
	}
	if size, ok := w.visibleDockSize(dock.PositionRight); ok {
		size = min(size, right-left)
		docks[dock.PositionRight] = entity.NewRect(right-size, top, size, height)
		right -= size
	}
	if size, ok := w.visibleDockSize(dock.PositionBottom); ok {
		size = min(size, bottom-top)
		docks[dock.PositionBottom] = entity.NewRect(left, bottom-size, right-left, size)
		bottom -= size
	}
	return entity.NewRect(left, top, right-left, bottom-top), docks
}

func (w *Workspace) visibleDockSize(position dock.Position) (float64, bool) {
	d, ok := w.docks[position]
	if !ok {
		return 0, false
	}
	panel, ok := d.VisiblePanel()
	if !ok {
		return 0, false
	}
	return max(panel.Size(), 0), true
}
