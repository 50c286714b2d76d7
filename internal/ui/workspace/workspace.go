// Package workspace ties panes, docks and items together: it owns the
// center split tree, the three docks, item ownership and zoom state.
package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/event"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/bnema/dockyard/internal/ui/mainloop"
	"github.com/bnema/dockyard/internal/ui/pane"
)

// ErrUnknownItemKind is returned when no factory is registered for a kind.
var ErrUnknownItemKind = errors.New("unknown item kind")

// EventKind enumerates workspace events.
type EventKind int

const (
	EventZoomChanged EventKind = iota
	EventActivePaneChanged
	EventPaneAdded
	EventPaneRemoved
)

// Event is emitted on Workspace.Events.
type Event struct {
	Kind EventKind
	Pane *pane.Pane
}

// Settings are the user-tunable layout parameters.
type Settings struct {
	CanSplit          bool
	ShowTabBar        bool
	DragSplitMargin   float64
	MinPanePercent    float64
	ResizeStepPercent float64
	ResizeHandleSize  float64
	LayoutUnit        float64
}

// DefaultSettings returns the built-in layout parameters.
func DefaultSettings() Settings {
	return Settings{
		CanSplit:          true,
		ShowTabBar:        true,
		DragSplitMargin:   pane.DefaultDragSplitMargin,
		MinPanePercent:    10,
		ResizeStepPercent: 5,
		ResizeHandleSize:  dock.DefaultResizeHandleSize,
		LayoutUnit:        1,
	}
}

// ItemFactory builds an item of one kind from its snapshot payload.
type ItemFactory func(ctx context.Context, fm *focus.Manager, id entity.ItemID, data string) (item.Item, error)

// Options configures a workspace.
type Options struct {
	ID          entity.WorkspaceID
	Loop        *mainloop.Loop
	Focus       *focus.Manager
	IDGenerator entity.IDGenerator
	Settings    Settings
	// PathItemKind is the item kind built for dropped file paths.
	PathItemKind string
}

// Workspace is the root of the layout.
type Workspace struct {
	ctx      context.Context
	id       entity.WorkspaceID
	loop     *mainloop.Loop
	fm       *focus.Manager
	idGen    entity.IDGenerator
	settings Settings

	center     *PaneGroup
	panes      []*pane.Pane
	paneSubs   map[*pane.Pane][]*event.Subscription
	activePane *pane.Pane
	docks      map[dock.Position]*dock.Dock
	registry   *Registry

	kinds        map[string]ItemFactory
	pathItemKind string

	zoomedPane     *pane.Pane
	zoomedPanel    dock.Panel
	zoomedPosition *dock.Position

	events  event.Emitter[Event]
	changes event.Observers

	// lastArea is the area of the most recent Layout call.
	lastArea entity.Rect
}

// New creates a workspace with one empty pane and three closed docks.
func New(ctx context.Context, opts Options) *Workspace {
	ctx = logging.WithComponent(ctx, "workspace")
	w := &Workspace{
		ctx:          ctx,
		id:           opts.ID,
		loop:         opts.Loop,
		fm:           opts.Focus,
		idGen:        opts.IDGenerator,
		settings:     opts.Settings,
		paneSubs:     make(map[*pane.Pane][]*event.Subscription),
		docks:        make(map[dock.Position]*dock.Dock),
		registry:     NewRegistry(),
		kinds:        make(map[string]ItemFactory),
		pathItemKind: opts.PathItemKind,
	}

	for _, pos := range dock.Positions {
		d := dock.New(ctx, pos, dock.Options{
			Focus:            w.fm,
			Host:             w,
			ResizeHandleSize: w.settings.ResizeHandleSize,
			LayoutUnit:       w.settings.LayoutUnit,
			Resizeable:       true,
		})
		d.Changes().Observe(w.notify)
		w.docks[pos] = d
	}

	first := w.addPane(ctx)
	w.center = NewPaneGroup(first, w.idGen)
	w.activePane = first

	logging.FromContext(ctx).Info().Str("workspace_id", string(w.id)).Msg("workspace created")
	return w
}

func (w *Workspace) ID() entity.WorkspaceID {
	return w.id
}

// WorkspaceID implements pane.Host.
func (w *Workspace) WorkspaceID() entity.WorkspaceID {
	return w.id
}

func (w *Workspace) Center() *PaneGroup {
	return w.center
}

func (w *Workspace) ActivePane() *pane.Pane {
	return w.activePane
}

func (w *Workspace) Registry() *Registry {
	return w.registry
}

func (w *Workspace) Focus() *focus.Manager {
	return w.fm
}

func (w *Workspace) Loop() *mainloop.Loop {
	return w.loop
}

func (w *Workspace) Settings() Settings {
	return w.settings
}

func (w *Workspace) Events() *event.Emitter[Event] {
	return &w.events
}

func (w *Workspace) Changes() *event.Observers {
	return &w.changes
}

// Dock returns the dock at position.
func (w *Workspace) Dock(position dock.Position) *dock.Dock {
	return w.docks[position]
}

// Panes returns every pane in creation order.
func (w *Workspace) Panes() []*pane.Pane {
	out := make([]*pane.Pane, len(w.panes))
	copy(out, w.panes)
	return out
}

// PaneByID finds a live pane.
func (w *Workspace) PaneByID(id entity.PaneID) (*pane.Pane, bool) {
	for _, p := range w.panes {
		if p.ID() == id {
			return p, true
		}
	}
	return nil, false
}

// RegisterItemKind installs the factory used to rebuild items of kind.
func (w *Workspace) RegisterItemKind(kind string, factory ItemFactory) {
	w.kinds[kind] = factory
}

// BuildItem creates an item of kind with a fresh id.
func (w *Workspace) BuildItem(ctx context.Context, kind, data string) (item.Item, error) {
	factory, ok := w.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownItemKind, kind)
	}
	it, err := factory(ctx, w.fm, entity.ItemID(w.idGen()), data)
	if err != nil {
		return nil, fmt.Errorf("build %s item: %w", kind, err)
	}
	return it, nil
}

// Post implements pane.Host.
func (w *Workspace) Post(fn func()) {
	w.loop.Post(fn)
}

// ApplySettings updates layout parameters on every live pane.
func (w *Workspace) ApplySettings(ctx context.Context, settings Settings) {
	w.settings = settings
	for _, p := range w.panes {
		p.SetCanSplit(settings.CanSplit)
	}
	logging.FromContext(ctx).Info().
		Bool("can_split", settings.CanSplit).
		Bool("show_tab_bar", settings.ShowTabBar).
		Msg("layout settings applied")
	w.notify()
}

func (w *Workspace) addPane(ctx context.Context) *pane.Pane {
	return w.addPaneWithID(ctx, entity.PaneID(w.idGen()))
}

func (w *Workspace) addPaneWithID(ctx context.Context, id entity.PaneID) *pane.Pane {
	p := pane.New(ctx, id, pane.Options{
		Loop:            w.loop,
		Focus:           w.fm,
		Host:            w,
		CanSplit:        w.settings.CanSplit,
		DragSplitMargin: w.settings.DragSplitMargin,
		ShowTabBar:      func(*pane.Pane) bool { return w.settings.ShowTabBar },
	})
	w.attachPane(ctx, p)
	p.Focus()
	return p
}

func (w *Workspace) attachPane(ctx context.Context, p *pane.Pane) {
	w.paneSubs[p] = []*event.Subscription{
		p.Events().Subscribe(func(ev pane.Event) { w.handlePaneEvent(ctx, p, ev) }),
		p.Changes().Observe(w.notify),
	}
	w.panes = append(w.panes, p)
	w.events.Emit(Event{Kind: EventPaneAdded, Pane: p})
}

func (w *Workspace) handlePaneEvent(ctx context.Context, p *pane.Pane, ev pane.Event) {
	switch ev.Kind {
	case pane.EventAddItem:
		w.registry.AddedToPane(ctx, ev.Item, p)
	case pane.EventRemove:
		w.removePane(ctx, p)
	case pane.EventSplit:
		w.splitAndClone(ctx, p, ev.Direction)
	case pane.EventFocus:
		w.setActivePane(ctx, p)
	case pane.EventZoomIn:
		w.zoomPane(ctx, p)
	case pane.EventZoomOut:
		w.unzoomPane(ctx, p)
	}
	w.notify()
}

func (w *Workspace) setActivePane(ctx context.Context, p *pane.Pane) {
	if w.activePane == p {
		return
	}
	w.activePane = p
	if w.zoomedPane != nil && w.zoomedPane != p {
		w.ZoomOut(ctx)
	}
	logging.FromContext(ctx).Debug().Str("pane_id", string(p.ID())).Msg("active pane changed")
	w.events.Emit(Event{Kind: EventActivePaneChanged, Pane: p})
}

// removePane drops an emptied pane. The last pane always stays.
func (w *Workspace) removePane(ctx context.Context, p *pane.Pane) {
	log := logging.FromContext(ctx)
	if err := w.center.Remove(ctx, p); err != nil {
		if errors.Is(err, ErrLastPane) {
			log.Debug().Str("pane_id", string(p.ID())).Msg("keeping last pane")
			return
		}
		log.Warn().Err(err).Msg("failed to remove pane")
		return
	}

	hadFocus := p.HasFocus()
	for i, candidate := range w.panes {
		if candidate == p {
			w.panes = append(w.panes[:i], w.panes[i+1:]...)
			break
		}
	}
	if w.activePane == p || hadFocus {
		next := w.panes[len(w.panes)-1]
		w.setActivePane(ctx, next)
		next.Focus()
	}

	w.events.Emit(Event{Kind: EventPaneRemoved, Pane: p})
	// Released after the current dispatch so that events still in flight
	// (ZoomOut after Remove) reach the workspace.
	w.loop.Post(func() {
		for _, sub := range w.paneSubs[p] {
			sub.Unsubscribe()
		}
		delete(w.paneSubs, p)
		p.Release(ctx)
	})
}

// SplitPane creates a new pane next to from and focuses it.
func (w *Workspace) SplitPane(ctx context.Context, from *pane.Pane, direction entity.SplitDirection) *pane.Pane {
	newPane := w.addPane(ctx)
	if err := w.center.Split(ctx, from, newPane, direction); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("split failed")
		w.detachPane(ctx, newPane)
		return nil
	}
	w.notify()
	return newPane
}

func (w *Workspace) detachPane(ctx context.Context, p *pane.Pane) {
	for i, candidate := range w.panes {
		if candidate == p {
			w.panes = append(w.panes[:i], w.panes[i+1:]...)
			break
		}
	}
	for _, sub := range w.paneSubs[p] {
		sub.Unsubscribe()
	}
	delete(w.paneSubs, p)
	if w.activePane == p {
		w.activePane = FirstPane(w.center.Root())
		w.activePane.Focus()
	}
	p.Release(ctx)
}

// splitAndClone splits p and moves a clone of its active item, when the
// item supports it, into the new pane.
func (w *Workspace) splitAndClone(ctx context.Context, p *pane.Pane, direction entity.SplitDirection) {
	newPane := w.SplitPane(ctx, p, direction)
	if newPane == nil {
		return
	}
	active := p.ActiveItem()
	if active == nil {
		return
	}
	if clone, ok := active.CloneOnSplit(ctx, w.id); ok {
		newPane.AddItem(ctx, clone, true, true, nil)
	}
}

// MoveItem moves an item between panes, or within one pane, and focuses it.
func (w *Workspace) MoveItem(ctx context.Context, from, to *pane.Pane, itemID entity.ItemID, index int) {
	ix := from.IndexForItemID(itemID)
	it, ok := from.ItemAt(ix)
	if !ok {
		logging.FromContext(ctx).Debug().Str("item_id", string(itemID)).Msg("moved item no longer in source pane")
		return
	}
	if to.Released() {
		return
	}
	if from != to {
		from.RemoveItem(ctx, ix, false)
	}
	to.AddItem(ctx, it, true, true, &index)
}

// OpenPaths builds one item per path and adds them to `to` starting at
// index. A path already shown in `to` by a singleton item is activated
// there instead of opened twice.
func (w *Workspace) OpenPaths(ctx context.Context, to *pane.Pane, paths []string, index int) {
	dest := index
	for _, path := range paths {
		if w.openItem(ctx, to, w.pathItemKind, path, &dest, true) {
			dest++
		}
	}
}

// openItem adds an item of kind built from data to p at dest. It returns
// false when nothing was added: the kind failed to build, or a singleton
// with the same kind and data was already in p and got activated.
func (w *Workspace) openItem(ctx context.Context, p *pane.Pane, kind, data string, dest *int, activate bool) bool {
	log := logging.FromContext(ctx)
	if index, ok := singletonIndex(p, kind, data); ok {
		log.Debug().Str("kind", kind).Str("data", data).Int("index", index).Msg("reusing open item")
		if activate {
			p.ActivateItem(ctx, index, true, true)
		}
		return false
	}
	it, err := w.BuildItem(ctx, kind, data)
	if err != nil {
		log.Warn().Err(err).Str("kind", kind).Str("data", data).Msg("failed to open item")
		return false
	}
	p.AddItem(ctx, it, activate, activate, dest)
	return true
}

// singletonIndex finds a singleton item of kind showing data in p.
func singletonIndex(p *pane.Pane, kind, data string) (int, bool) {
	for i, it := range p.Items() {
		if it.IsSingleton() && it.Kind() == kind && it.Data() == data {
			return i, true
		}
	}
	return -1, false
}

// Deactivated tells the active item of every pane that the workspace lost
// focus, for example when the terminal window is left.
func (w *Workspace) Deactivated(ctx context.Context) {
	for _, p := range w.panes {
		if active := p.ActiveItem(); active != nil {
			active.WorkspaceDeactivated(ctx)
		}
	}
	logging.FromContext(ctx).Debug().Int("panes", len(w.panes)).Msg("workspace deactivated")
}

// ItemClosed implements pane.Host: a closed item is disposed of.
func (w *Workspace) ItemClosed(ctx context.Context, it item.Item) {
	w.registry.Released(it.ItemID())
	it.Release()
	logging.FromContext(ctx).Debug().Str("item_id", string(it.ItemID())).Msg("item closed")
}

// AddItemToActivePane adds it to the active pane and activates it.
func (w *Workspace) AddItemToActivePane(ctx context.Context, it item.Item, destination *int, focusItem bool) {
	w.activePane.AddItem(ctx, it, true, focusItem, destination)
}

// ActivatePaneInDirection focuses the nearest pane in direction, using the
// last laid out geometry.
func (w *Workspace) ActivatePaneInDirection(ctx context.Context, direction entity.SplitDirection) bool {
	bounds := w.center.Bounds(w.centerArea(w.lastArea))
	rects := make([]entity.PaneRect, 0, len(bounds))
	for _, b := range bounds {
		rects = append(rects, entity.PaneRectFrom(b.Pane.ID(), b.Bounds))
	}
	targetID, ok := focus.NavigateGeometric(ctx, w.activePane.ID(), rects, direction)
	if !ok {
		return false
	}
	target, ok := w.PaneByID(targetID)
	if !ok {
		return false
	}
	target.Focus()
	return true
}

// ResizeActivePane moves the divider next to the active pane.
func (w *Workspace) ResizeActivePane(ctx context.Context, direction entity.SplitDirection) error {
	if err := w.center.Resize(ctx, w.activePane, direction, w.settings.ResizeStepPercent, w.settings.MinPanePercent); err != nil {
		return err
	}
	w.notify()
	return nil
}

// SetSplitRatio sets a divider position from a drag.
func (w *Workspace) SetSplitRatio(ctx context.Context, nodeID string, ratio float64) error {
	if err := w.center.SetRatio(ctx, nodeID, ratio, w.settings.MinPanePercent); err != nil {
		return err
	}
	w.notify()
	return nil
}

// ToggleDock opens or closes the dock at position. Opening focuses its
// active panel; closing a focused dock returns focus to the active pane.
func (w *Workspace) ToggleDock(ctx context.Context, position dock.Position) {
	d := w.docks[position]
	otherIsZoomed := w.IsZoomed() && (w.zoomedPosition == nil || *w.zoomedPosition != position)
	wasVisible := d.IsOpen() && !otherIsZoomed
	d.SetOpen(ctx, !wasVisible)

	active, ok := d.ActivePanel()
	if !ok {
		return
	}
	if wasVisible {
		if active.FocusHandle().ContainsFocused() {
			w.activePane.Focus()
		}
		return
	}
	if otherIsZoomed {
		w.ZoomOut(ctx)
	}
	active.FocusHandle().Focus()
}

// CloseAllDocks closes every dock.
func (w *Workspace) CloseAllDocks(ctx context.Context) {
	for _, pos := range dock.Positions {
		w.docks[pos].SetOpen(ctx, false)
	}
	w.activePane.Focus()
}

// MovePanel moves a panel to another dock.
func (w *Workspace) MovePanel(ctx context.Context, id entity.PanelID, to dock.Position) bool {
	for _, pos := range dock.Positions {
		d := w.docks[pos]
		if d.PanelIndexOf(id) < 0 {
			continue
		}
		if pos == to {
			return true
		}
		panel, _ := d.PanelByID(id)
		if !panel.CanPosition(to) {
			return false
		}
		wasOpen := d.IsOpen() && d.ActivePanelIndex() == d.PanelIndexOf(id)
		d.RemovePanel(ctx, id)
		panel.SetPosition(ctx, to)
		target := w.docks[to]
		target.AddPanel(ctx, panel)
		if wasOpen {
			target.ActivatePanel(ctx, target.PanelIndexOf(id))
			target.SetOpen(ctx, true)
		}
		return true
	}
	return false
}

// Release drops every pane and dock.
func (w *Workspace) Release(ctx context.Context) {
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
	for _, d := range w.docks {
		d.Release()
	}
}

func (w *Workspace) notify() {
	w.changes.Notify()
}
