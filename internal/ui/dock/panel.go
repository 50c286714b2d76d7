package dock

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/event"
	"github.com/bnema/dockyard/internal/ui/focus"
)

// PanelEvent is emitted by a panel to its dock.
type PanelEvent int

const (
	PanelZoomIn PanelEvent = iota
	PanelZoomOut
	PanelActivate
	PanelClose
)

func (e PanelEvent) String() string {
	switch e {
	case PanelZoomIn:
		return "zoom_in"
	case PanelZoomOut:
		return "zoom_out"
	case PanelActivate:
		return "activate"
	case PanelClose:
		return "close"
	default:
		return "unknown"
	}
}

// Panel is a view hosted in a dock.
type Panel interface {
	PanelID() entity.PanelID
	// PersistentName identifies the panel kind in saved layouts.
	PersistentName() string
	Position() Position
	CanPosition(position Position) bool
	SetPosition(ctx context.Context, position Position)
	// Size along the dock axis, in layout units.
	Size() float64
	// SetSize overrides the size. Nil restores the default.
	SetSize(size *float64)
	SetActive(ctx context.Context, active bool)
	Icon() string
	IsZoomed() bool
	SetZoomed(zoomed bool)
	StartsOpen() bool
	FocusHandle() *focus.Handle
	Events() *event.Emitter[PanelEvent]
	Changes() *event.Observers
	Render(width, height int) string
}

// PanelBase implements the bookkeeping shared by panels.
type PanelBase struct {
	id          entity.PanelID
	name        string
	position    Position
	defaultSize float64
	size        *float64
	active      bool
	zoomed      bool
	startsOpen  bool
	icon        string
	handle      *focus.Handle
	events      event.Emitter[PanelEvent]
	changes     event.Observers
}

// PanelConfig holds the immutable settings of a panel.
type PanelConfig struct {
	ID          entity.PanelID
	Name        string
	Icon        string
	Position    Position
	DefaultSize float64
	StartsOpen  bool
}

// NewPanelBase creates the shared part of a panel.
func NewPanelBase(cfg PanelConfig, handle *focus.Handle) PanelBase {
	return PanelBase{
		id:          cfg.ID,
		name:        cfg.Name,
		icon:        cfg.Icon,
		position:    cfg.Position,
		defaultSize: cfg.DefaultSize,
		startsOpen:  cfg.StartsOpen,
		handle:      handle,
	}
}

func (b *PanelBase) PanelID() entity.PanelID {
	return b.id
}

func (b *PanelBase) PersistentName() string {
	return b.name
}

func (b *PanelBase) Position() Position {
	return b.position
}

// CanPosition accepts every position.
func (b *PanelBase) CanPosition(Position) bool {
	return true
}

func (b *PanelBase) SetPosition(_ context.Context, position Position) {
	if b.position == position {
		return
	}
	b.position = position
	b.changes.Notify()
}

func (b *PanelBase) Size() float64 {
	if b.size != nil {
		return *b.size
	}
	return b.defaultSize
}

// CustomSize returns the size override, if any.
func (b *PanelBase) CustomSize() *float64 {
	return b.size
}

func (b *PanelBase) SetSize(size *float64) {
	if size == nil {
		b.size = nil
	} else {
		v := *size
		b.size = &v
	}
	b.changes.Notify()
}

func (b *PanelBase) SetActive(_ context.Context, active bool) {
	b.active = active
}

// IsActive reports whether the dock shows this panel.
func (b *PanelBase) IsActive() bool {
	return b.active
}

func (b *PanelBase) Icon() string {
	return b.icon
}

func (b *PanelBase) IsZoomed() bool {
	return b.zoomed
}

func (b *PanelBase) SetZoomed(zoomed bool) {
	if b.zoomed == zoomed {
		return
	}
	b.zoomed = zoomed
	b.changes.Notify()
}

func (b *PanelBase) StartsOpen() bool {
	return b.startsOpen
}

func (b *PanelBase) FocusHandle() *focus.Handle {
	return b.handle
}

func (b *PanelBase) Events() *event.Emitter[PanelEvent] {
	return &b.events
}

func (b *PanelBase) Changes() *event.Observers {
	return &b.changes
}

// Emit sends ev to the dock.
func (b *PanelBase) Emit(ev PanelEvent) {
	b.events.Emit(ev)
}

func (b *PanelBase) Render(int, int) string {
	return ""
}
