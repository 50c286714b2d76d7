// Package dock implements the collapsible panel containers attached to the
// left, right and bottom edges of the workspace.
package dock

import (
	"context"
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/event"
	"github.com/bnema/dockyard/internal/ui/focus"
)

// DefaultResizeHandleSize is the smallest size a panel can be dragged to.
const DefaultResizeHandleSize = 6

//go:generate mockery --name=Host --output=mocks --outpkg=mocks --filename=mock_host.go --with-expecter

// Host is the workspace as seen by a dock. The dock never owns it.
type Host interface {
	// SetZoomed records panel as the workspace zoom target.
	SetZoomed(ctx context.Context, panel Panel, position Position)
	// ZoomedPosition returns the dock position holding the zoomed panel.
	ZoomedPosition() (Position, bool)
	// ClearZoomed forgets the zoom target.
	ClearZoomed(ctx context.Context)
}

// Options configures a dock.
type Options struct {
	Focus *focus.Manager
	Host  Host

	ResizeHandleSize float64
	// LayoutUnit is the granularity sizes are rounded to.
	LayoutUnit float64
	Resizeable bool
}

type panelEntry struct {
	panel   Panel
	changes *event.Subscription
	events  *event.Subscription
}

// Dock holds panels for one edge. At most one panel is visible.
type Dock struct {
	position    Position
	entries     []panelEntry
	open        bool
	activeIndex int
	resizeable  bool
	handleSize  float64
	unit        float64

	fm      *focus.Manager
	handle  *focus.Handle
	host    Host
	changes event.Observers
	subs    []*event.Subscription
}

// New creates a closed, empty dock.
func New(ctx context.Context, position Position, opts Options) *Dock {
	handleSize := opts.ResizeHandleSize
	if handleSize <= 0 {
		handleSize = DefaultResizeHandleSize
	}
	unit := opts.LayoutUnit
	if unit <= 0 {
		unit = 1
	}
	d := &Dock{
		position:   position,
		resizeable: opts.Resizeable,
		handleSize: handleSize,
		unit:       unit,
		fm:         opts.Focus,
		handle:     opts.Focus.NewHandle(nil),
		host:       opts.Host,
	}
	d.subs = append(d.subs, d.fm.OnFocus(d.handle, d.focusActivePanel))
	logging.FromContext(ctx).Debug().Str("dock", position.String()).Msg("dock created")
	return d
}

func (d *Dock) Position() Position {
	return d.position
}

func (d *Dock) IsOpen() bool {
	return d.open
}

func (d *Dock) PanelsLen() int {
	return len(d.entries)
}

func (d *Dock) ActivePanelIndex() int {
	return d.activeIndex
}

func (d *Dock) FocusHandle() *focus.Handle {
	return d.handle
}

func (d *Dock) Changes() *event.Observers {
	return &d.changes
}

func (d *Dock) Resizeable() bool {
	return d.resizeable
}

// Panels returns the panels in tab order.
func (d *Dock) Panels() []Panel {
	out := make([]Panel, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.panel
	}
	return out
}

// ActivePanel returns the active panel, open or not.
func (d *Dock) ActivePanel() (Panel, bool) {
	if d.activeIndex < 0 || d.activeIndex >= len(d.entries) {
		return nil, false
	}
	return d.entries[d.activeIndex].panel, true
}

// VisiblePanel returns the active panel when the dock is open.
func (d *Dock) VisiblePanel() (Panel, bool) {
	if !d.open {
		return nil, false
	}
	return d.ActivePanel()
}

// PanelIndexOf returns the index of the panel with id, or -1.
func (d *Dock) PanelIndexOf(id entity.PanelID) int {
	for i, e := range d.entries {
		if e.panel.PanelID() == id {
			return i
		}
	}
	return -1
}

// PanelByID finds a panel by id.
func (d *Dock) PanelByID(id entity.PanelID) (Panel, bool) {
	if ix := d.PanelIndexOf(id); ix >= 0 {
		return d.entries[ix].panel, true
	}
	return nil, false
}

// PanelByName finds a panel by persistent name.
func (d *Dock) PanelByName(name string) (Panel, int, bool) {
	for i, e := range d.entries {
		if e.panel.PersistentName() == name {
			return e.panel, i, true
		}
	}
	return nil, -1, false
}

// AddPanel appends panel and opens it when it starts open.
func (d *Dock) AddPanel(ctx context.Context, panel Panel) {
	ctx = logging.WithDock(ctx, d.position.String())
	panel.FocusHandle().SetParent(d.handle)
	entry := panelEntry{
		panel:   panel,
		changes: panel.Changes().Observe(d.notify),
		events: panel.Events().Subscribe(func(ev PanelEvent) {
			d.handlePanelEvent(ctx, panel, ev)
		}),
	}
	d.entries = append(d.entries, entry)

	logging.FromContext(ctx).Debug().
		Str("panel", panel.PersistentName()).
		Int("index", len(d.entries)-1).
		Msg("panel added")

	if panel.StartsOpen() {
		d.ActivatePanel(ctx, len(d.entries)-1)
		d.SetOpen(ctx, true)
	}
	d.notify()
}

func (d *Dock) handlePanelEvent(ctx context.Context, panel Panel, ev PanelEvent) {
	log := logging.FromContext(ctx)
	log.Debug().Str("panel", panel.PersistentName()).Str("event", ev.String()).Msg("panel event")

	switch ev {
	case PanelZoomIn:
		d.SetPanelZoomed(panel.PanelID(), true)
		if !panel.FocusHandle().ContainsFocused() {
			panel.FocusHandle().Focus()
		}
		if d.host != nil {
			d.host.SetZoomed(ctx, panel, d.position)
		}
	case PanelZoomOut:
		d.SetPanelZoomed(panel.PanelID(), false)
		if d.host != nil {
			if pos, ok := d.host.ZoomedPosition(); ok && pos == d.position {
				d.host.ClearZoomed(ctx)
			}
		}
	case PanelActivate:
		if ix := d.PanelIndexOf(panel.PanelID()); ix >= 0 {
			d.SetOpen(ctx, true)
			d.ActivatePanel(ctx, ix)
			panel.FocusHandle().Focus()
		}
	case PanelClose:
		if visible, ok := d.VisiblePanel(); ok && visible.PanelID() == panel.PanelID() {
			d.SetOpen(ctx, false)
		}
	}
}

// RemovePanel drops the panel with id. Removing the active panel closes the
// dock and makes the first panel active.
func (d *Dock) RemovePanel(ctx context.Context, id entity.PanelID) (Panel, bool) {
	ix := d.PanelIndexOf(id)
	if ix < 0 {
		return nil, false
	}
	entry := d.entries[ix]

	switch {
	case ix == d.activeIndex:
		if d.open {
			entry.panel.SetActive(ctx, false)
		}
		d.activeIndex = 0
		d.open = false
	case ix < d.activeIndex:
		d.activeIndex--
	}

	d.entries = append(d.entries[:ix], d.entries[ix+1:]...)
	entry.changes.Unsubscribe()
	entry.events.Unsubscribe()

	logging.FromContext(logging.WithDock(ctx, d.position.String())).Debug().
		Str("panel", entry.panel.PersistentName()).
		Int("index", ix).
		Msg("panel removed")
	d.notify()
	return entry.panel, true
}

// ActivatePanel makes the panel at index the active one.
func (d *Dock) ActivatePanel(ctx context.Context, index int) {
	if index < 0 || index >= len(d.entries) || index == d.activeIndex {
		return
	}
	if prev, ok := d.ActivePanel(); ok {
		prev.SetActive(ctx, false)
	}
	d.activeIndex = index
	d.entries[index].panel.SetActive(ctx, true)
	d.notify()
}

// SetOpen shows or hides the dock.
func (d *Dock) SetOpen(ctx context.Context, open bool) {
	if d.open == open {
		return
	}
	d.open = open
	if active, ok := d.ActivePanel(); ok {
		active.SetActive(ctx, open)
	}
	logging.FromContext(logging.WithDock(ctx, d.position.String())).Debug().Bool("open", open).Msg("dock toggled")
	d.notify()
}

// ToggleOpen flips the open state.
func (d *Dock) ToggleOpen(ctx context.Context) {
	d.SetOpen(ctx, !d.open)
}

// SetPanelZoomed zooms or unzooms the panel with id. Zooming one panel
// unzooms its siblings.
func (d *Dock) SetPanelZoomed(id entity.PanelID, zoomed bool) {
	for _, e := range d.entries {
		if e.panel.PanelID() == id {
			if e.panel.IsZoomed() != zoomed {
				e.panel.SetZoomed(zoomed)
			}
		} else if zoomed && e.panel.IsZoomed() {
			e.panel.SetZoomed(false)
		}
	}
	d.notify()
}

// ZoomOut unzooms every panel.
func (d *Dock) ZoomOut() {
	for _, e := range d.entries {
		if e.panel.IsZoomed() {
			e.panel.SetZoomed(false)
		}
	}
	d.notify()
}

// ZoomedPanel returns the zoomed panel, if any.
func (d *Dock) ZoomedPanel() (Panel, bool) {
	for _, e := range d.entries {
		if e.panel.IsZoomed() {
			return e.panel, true
		}
	}
	return nil, false
}

// ResizeActivePanel sets the active panel size, clamped to the handle size
// and rounded to the layout unit. Nil restores the default size.
func (d *Dock) ResizeActivePanel(ctx context.Context, size *float64) {
	active, ok := d.ActivePanel()
	if !ok {
		return
	}
	if size == nil {
		active.SetSize(nil)
	} else {
		v := math.Round(max(*size, d.handleSize)/d.unit) * d.unit
		active.SetSize(&v)
	}
	logging.FromContext(logging.WithDock(ctx, d.position.String())).Debug().
		Float64("size", active.Size()).
		Msg("panel resized")
	d.notify()
}

func (d *Dock) focusActivePanel() {
	if active, ok := d.ActivePanel(); ok {
		active.FocusHandle().Focus()
	}
}

// Release drops the dock subscriptions.
func (d *Dock) Release() {
	for _, e := range d.entries {
		e.changes.Unsubscribe()
		e.events.Unsubscribe()
	}
	for _, s := range d.subs {
		s.Unsubscribe()
	}
	d.subs = nil
	d.handle.Release()
}

func (d *Dock) notify() {
	d.changes.Notify()
}
