package workspace

import (
	"context"

	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/pane"
)

// IsZoomed reports whether a pane or a panel is zoomed.
func (w *Workspace) IsZoomed() bool {
	return w.zoomedPane != nil || w.zoomedPanel != nil
}

// ZoomedPane returns the zoomed pane, if any.
func (w *Workspace) ZoomedPane() (*pane.Pane, bool) {
	if w.zoomedPane == nil || w.zoomedPane.Released() {
		return nil, false
	}
	return w.zoomedPane, true
}

// ZoomedPanel returns the zoomed dock panel and its dock position.
func (w *Workspace) ZoomedPanel() (dock.Panel, dock.Position, bool) {
	if w.zoomedPanel == nil || w.zoomedPosition == nil {
		return nil, 0, false
	}
	return w.zoomedPanel, *w.zoomedPosition, true
}

// SetZoomed implements dock.Host: panel becomes the only zoomed element.
func (w *Workspace) SetZoomed(ctx context.Context, panel dock.Panel, position dock.Position) {
	if w.zoomedPane != nil {
		w.zoomedPane.SetZoomed(false)
		w.zoomedPane = nil
	}
	for pos, d := range w.docks {
		if pos != position {
			d.ZoomOut()
		}
	}
	w.zoomedPanel = panel
	w.zoomedPosition = &position
	logging.FromContext(ctx).Debug().
		Str("panel", panel.PersistentName()).
		Str("dock", position.String()).
		Msg("panel zoomed")
	w.emitZoomChanged()
}

// ZoomedPosition implements dock.Host.
func (w *Workspace) ZoomedPosition() (dock.Position, bool) {
	if w.zoomedPosition == nil {
		return 0, false
	}
	return *w.zoomedPosition, true
}

// ClearZoomed implements dock.Host.
func (w *Workspace) ClearZoomed(ctx context.Context) {
	if !w.IsZoomed() {
		return
	}
	w.zoomedPane = nil
	w.zoomedPanel = nil
	w.zoomedPosition = nil
	logging.FromContext(ctx).Debug().Msg("zoom cleared")
	w.emitZoomChanged()
}

func (w *Workspace) zoomPane(ctx context.Context, p *pane.Pane) {
	if p != w.activePane {
		return
	}
	for _, other := range w.panes {
		if other != p {
			other.SetZoomed(false)
		}
	}
	for _, d := range w.docks {
		d.ZoomOut()
	}
	p.SetZoomed(true)
	w.zoomedPane = p
	w.zoomedPanel = nil
	w.zoomedPosition = nil
	logging.FromContext(ctx).Debug().Str("pane_id", string(p.ID())).Msg("pane zoomed")
	w.emitZoomChanged()
}

func (w *Workspace) unzoomPane(ctx context.Context, p *pane.Pane) {
	p.SetZoomed(false)
	if w.zoomedPane == p {
		w.ClearZoomed(ctx)
	}
}

// ZoomOut unzooms every pane and panel.
func (w *Workspace) ZoomOut(ctx context.Context) {
	for _, p := range w.panes {
		p.SetZoomed(false)
	}
	for _, d := range w.docks {
		d.ZoomOut()
	}
	w.ClearZoomed(ctx)
}

func (w *Workspace) emitZoomChanged() {
	w.events.Emit(Event{Kind: EventZoomChanged})
	w.notify()
}
