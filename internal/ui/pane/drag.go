package pane

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/item"
)

// DraggedTab is the payload of a tab being dragged.
type DraggedTab struct {
	Pane     *Pane
	Item     item.Item
	Index    int
	Detail   int
	IsActive bool
}

// Label is what the drag preview shows.
func (d DraggedTab) Label() string {
	detail := d.Detail
	return item.DraggedTabContent(d.Item, item.TabContentParams{Detail: &detail})
}

// DraggedSelection is the payload of file entries dragged from a panel.
type DraggedSelection struct {
	Active string
	Marked []string
}

// Paths returns the entries to open: the marked ones when the active entry
// is part of the marking, the active one otherwise.
func (d DraggedSelection) Paths() []string {
	for _, m := range d.Marked {
		if m == d.Active {
			out := make([]string, len(d.Marked))
			copy(out, d.Marked)
			return out
		}
	}
	return []string{d.Active}
}

// HandleDragMove updates the pending split direction from the cursor
// position over the pane body.
func (p *Pane) HandleDragMove(bounds entity.Rect, cursor entity.Point) {
	if !p.canSplit {
		return
	}
	direction := splitDirectionAt(bounds, cursor, p.dragSplitMargin)
	if direction != p.dragSplitDirection {
		p.dragSplitDirection = direction
		p.notify()
	}
}

// splitDirectionAt returns the edge whose band contains cursor, or "" for
// the interior. The nearest edge wins; ties resolve Up, Right, Down, Left.
func splitDirectionAt(bounds entity.Rect, cursor entity.Point, margin float64) entity.SplitDirection {
	if !bounds.Contains(cursor) {
		return ""
	}
	rel := bounds.Relative(cursor)
	w, h := bounds.Size.Width, bounds.Size.Height
	band := min(w, h) * margin

	distances := map[entity.SplitDirection]float64{
		entity.SplitUp:    rel.Y,
		entity.SplitRight: w - rel.X,
		entity.SplitDown:  h - rel.Y,
		entity.SplitLeft:  rel.X,
	}
	var best entity.SplitDirection
	bestDist := band
	for _, dir := range entity.SplitDirections {
		if d := distances[dir]; d < bestDist {
			best, bestDist = dir, d
		}
	}
	return best
}

// ClearDragSplit forgets the pending split, e.g. when the drag leaves the pane.
func (p *Pane) ClearDragSplit() {
	if p.dragSplitDirection != "" {
		p.dragSplitDirection = ""
		p.notify()
	}
}

// CanDrop reports whether payload may be dropped here.
func (p *Pane) CanDrop(payload any) bool {
	if p.canDrop == nil {
		return true
	}
	return p.canDrop(payload)
}

// HandleTabDrop drops a dragged tab at index, splitting first when a split
// direction is pending.
func (p *Pane) HandleTabDrop(ctx context.Context, dragged DraggedTab, index int) {
	p.HandleDrop(ctx, dragged, index)
}

// HandleDrop dispatches a drop of any supported payload.
func (p *Pane) HandleDrop(ctx context.Context, payload any, index int) {
	if p.released {
		return
	}
	direction := p.dragSplitDirection
	p.dragSplitDirection = ""
	p.notify()

	if !p.CanDrop(payload) {
		return
	}
	if p.customDrop != nil && p.customDrop(ctx, p, payload) == DropHandled {
		return
	}

	log := logging.FromContext(p.logger(ctx))
	host := p.host
	to := p

	switch dragged := payload.(type) {
	case DraggedTab:
		if dragged.Item == nil || dragged.Pane == nil {
			return
		}
		itemID := dragged.Item.ItemID()
		from := dragged.Pane
		log.Debug().
			Str("item_id", string(itemID)).
			Str("from", string(from.ID())).
			Str("direction", string(direction)).
			Int("index", index).
			Msg("tab dropped")
		host.Post(func() {
			target := to
			if direction != "" {
				if split := host.SplitPane(ctx, to, direction); split != nil {
					target = split
				}
			}
			host.MoveItem(ctx, from, target, itemID, index)
		})
	case DraggedSelection:
		paths := dragged.Paths()
		log.Debug().Int("paths", len(paths)).Str("direction", string(direction)).Msg("selection dropped")
		host.Post(func() {
			target := to
			if direction != "" {
				if split := host.SplitPane(ctx, to, direction); split != nil {
					target = split
				}
			}
			host.OpenPaths(ctx, target, paths, index)
		})
	default:
		log.Debug().Msgf("unsupported drop payload %T", payload)
	}
}

// DropOverlay returns the highlighted drop area inside bounds: the half on
// the pending split side, or the whole pane.
func (p *Pane) DropOverlay(bounds entity.Rect) entity.Rect {
	switch p.dragSplitDirection {
	case entity.SplitUp:
		top, _ := bounds.SplitAt(entity.AxisVertical, 0.5)
		return top
	case entity.SplitDown:
		_, bottom := bounds.SplitAt(entity.AxisVertical, 0.5)
		return bottom
	case entity.SplitLeft:
		left, _ := bounds.SplitAt(entity.AxisHorizontal, 0.5)
		return left
	case entity.SplitRight:
		_, right := bounds.SplitAt(entity.AxisHorizontal, 0.5)
		return right
	default:
		return bounds
	}
}
