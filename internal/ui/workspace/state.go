package workspace

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/event"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/bnema/dockyard/internal/ui/pane"
)

// ErrInvalidLayout is returned when a snapshot cannot be restored.
var ErrInvalidLayout = errors.New("invalid layout snapshot")

type customSizer interface {
	CustomSize() *float64
}

// Snapshot captures the current layout under name.
func (w *Workspace) Snapshot(name string) *entity.LayoutState {
	state := &entity.LayoutState{
		Version:      entity.LayoutStateVersion,
		Name:         name,
		WorkspaceID:  w.id,
		Center:       snapshotNode(w.center.Root()),
		ActivePaneID: w.activePane.ID(),
		SavedAt:      time.Now().UTC(),
	}

	for _, pos := range dock.Positions {
		d := w.docks[pos]
		ds := entity.DockSnapshot{
			Position:    pos.String(),
			Open:        d.IsOpen(),
			ActiveIndex: d.ActivePanelIndex(),
		}
		for _, panel := range d.Panels() {
			ps := entity.PanelSnapshot{Name: panel.PersistentName(), Zoomed: panel.IsZoomed()}
			if sizer, ok := panel.(customSizer); ok {
				if size := sizer.CustomSize(); size != nil {
					v := *size
					ps.Size = &v
				}
			}
			ds.Panels = append(ds.Panels, ps)
		}
		state.Docks = append(state.Docks, ds)
	}
	return state
}

func snapshotNode(n *Node) *entity.PaneGroupSnapshot {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		p := n.Pane
		ps := &entity.PaneSnapshot{
			ID:          p.ID(),
			ActiveIndex: p.ActiveItemIndex(),
			Zoomed:      p.IsZoomed(),
			Items:       make([]entity.ItemSnapshot, 0, p.Len()),
		}
		for _, it := range p.Items() {
			ps.Items = append(ps.Items, entity.ItemSnapshot{
				Kind:  it.Kind(),
				Title: it.TabContent(item.TabContentParams{}),
				Data:  it.Data(),
			})
		}
		return &entity.PaneGroupSnapshot{ID: n.ID, Pane: ps}
	}
	out := &entity.PaneGroupSnapshot{ID: n.ID, Axis: n.Axis, Ratio: n.Ratio}
	for _, child := range n.Children {
		out.Children = append(out.Children, snapshotNode(child))
	}
	return out
}

// Restore replaces the center tree and dock state with state. Items whose
// kind has no factory are skipped. A malformed state leaves the current
// layout untouched.
func (w *Workspace) Restore(ctx context.Context, state *entity.LayoutState) error {
	if err := validateState(state); err != nil {
		return err
	}
	ctx = logging.WithLayout(ctx, state.Name)
	log := logging.FromContext(ctx)

	w.ZoomOut(ctx)
	for _, p := range w.panes {
		for _, sub := range w.paneSubs[p] {
			sub.Unsubscribe()
		}
		for _, it := range p.Items() {
			w.registry.Released(it.ItemID())
		}
		p.Release(ctx)
	}
	w.panes = nil
	w.paneSubs = make(map[*pane.Pane][]*event.Subscription)
	w.activePane = nil

	var zoomed *pane.Pane
	root := w.buildNode(ctx, state.Center, nil, &zoomed)
	w.center = &PaneGroup{root: root, idGen: w.idGen}

	active, ok := w.PaneByID(state.ActivePaneID)
	if zoomed != nil {
		active, ok = zoomed, true
	}
	if !ok {
		active = FirstPane(root)
	}
	w.activePane = active
	active.Focus()
	if zoomed != nil {
		w.zoomPane(ctx, zoomed)
	}

	w.restoreDocks(ctx, state.Docks)

	log.Info().
		Int("panes", len(w.panes)).
		Int("items", w.registry.Len()).
		Msg("layout restored")
	w.notify()
	return nil
}

func validateState(state *entity.LayoutState) error {
	if state == nil {
		return fmt.Errorf("%w: nil state", ErrInvalidLayout)
	}
	if state.Version > entity.LayoutStateVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidLayout, state.Version)
	}
	if state.Center == nil {
		return fmt.Errorf("%w: missing center", ErrInvalidLayout)
	}
	return validateNode(state.Center, make(map[entity.PaneID]bool))
}

func validateNode(snap *entity.PaneGroupSnapshot, seen map[entity.PaneID]bool) error {
	if snap == nil {
		return fmt.Errorf("%w: empty node", ErrInvalidLayout)
	}
	if snap.Pane != nil {
		if len(snap.Children) != 0 {
			return fmt.Errorf("%w: node %s has a pane and children", ErrInvalidLayout, snap.ID)
		}
		if snap.Pane.ID != "" && seen[snap.Pane.ID] {
			return fmt.Errorf("%w: duplicate pane %s", ErrInvalidLayout, snap.Pane.ID)
		}
		seen[snap.Pane.ID] = true
		return nil
	}
	if len(snap.Children) != 2 {
		return fmt.Errorf("%w: split %s has %d children", ErrInvalidLayout, snap.ID, len(snap.Children))
	}
	for _, child := range snap.Children {
		if err := validateNode(child, seen); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workspace) buildNode(ctx context.Context, snap *entity.PaneGroupSnapshot, parent *Node, zoomed **pane.Pane) *Node {
	if snap.Pane != nil {
		p := w.restorePane(ctx, snap.Pane)
		if snap.Pane.Zoomed && *zoomed == nil {
			*zoomed = p
		}
		id := snap.ID
		if id == "" {
			id = string(p.ID())
		}
		return &Node{ID: id, Pane: p, Parent: parent}
	}

	ratio := snap.Ratio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}
	id := snap.ID
	if id == "" {
		id = w.idGen()
	}
	node := &Node{ID: id, Parent: parent, Axis: snap.Axis, Ratio: ratio}
	for _, childSnap := range snap.Children {
		node.Children = append(node.Children, w.buildNode(ctx, childSnap, node, zoomed))
	}
	return node
}

func (w *Workspace) restorePane(ctx context.Context, snap *entity.PaneSnapshot) *pane.Pane {
	id := snap.ID
	if id == "" {
		id = entity.PaneID(w.idGen())
	}
	p := w.addPaneWithID(ctx, id)

	for _, is := range snap.Items {
		dest := p.Len()
		if !w.openItem(ctx, p, is.Kind, is.Data, &dest, false) {
			logging.FromContext(ctx).Debug().Str("title", is.Title).Msg("skipped item")
		}
	}
	if p.Len() > 0 {
		p.ActivateItem(ctx, min(max(snap.ActiveIndex, 0), p.Len()-1), false, false)
	}
	return p
}

func (w *Workspace) restoreDocks(ctx context.Context, docks []entity.DockSnapshot) {
	log := logging.FromContext(ctx)
	var zoomed dock.Panel
	for _, ds := range docks {
		pos, err := dock.ParsePosition(ds.Position)
		if err != nil {
			log.Warn().Err(err).Msg("skipping dock")
			continue
		}
		d := w.docks[pos]
		for _, ps := range ds.Panels {
			panel, ok := w.findPanelByName(ps.Name)
			if !ok {
				log.Debug().Str("panel", ps.Name).Msg("panel not available")
				continue
			}
			if panel.Position() != pos {
				w.MovePanel(ctx, panel.PanelID(), pos)
			}
			panel.SetSize(ps.Size)
			if ps.Zoomed {
				zoomed = panel
			}
		}
		if ds.ActiveIndex >= 0 && ds.ActiveIndex < d.PanelsLen() {
			d.ActivatePanel(ctx, ds.ActiveIndex)
		}
		d.SetOpen(ctx, ds.Open && d.PanelsLen() > 0)
	}
	if zoomed != nil && !w.IsZoomed() {
		zoomed.Events().Emit(dock.PanelZoomIn)
	}
}

func (w *Workspace) findPanelByName(name string) (dock.Panel, bool) {
	for _, pos := range dock.Positions {
		if panel, _, ok := w.docks[pos].PanelByName(name); ok {
			return panel, true
		}
	}
	return nil, false
}
