package workspace

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/event"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/bnema/dockyard/internal/ui/pane"
)

// Registry maps every live item to the pane that owns it and relays item
// events to that pane.
type Registry struct {
	owners map[entity.ItemID]*pane.Pane
	subs   map[entity.ItemID]*event.Subscription
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		owners: make(map[entity.ItemID]*pane.Pane),
		subs:   make(map[entity.ItemID]*event.Subscription),
	}
}

// AddedToPane records p as the owner of it. The item's events are
// subscribed to on first registration only.
func (r *Registry) AddedToPane(ctx context.Context, it item.Item, p *pane.Pane) {
	id := it.ItemID()
	r.owners[id] = p
	if _, ok := r.subs[id]; ok {
		return
	}

	ctx = logging.WithItemID(ctx, string(id))
	r.subs[id] = it.Events().Subscribe(func(ev item.Event) {
		owner, ok := r.owners[id]
		if !ok {
			return
		}
		switch ev.Kind {
		case item.CloseItem:
			if task := owner.CloseItemByID(ctx, id); task != nil {
				task.DetachAndLogErr()
			}
		case item.UpdateTab:
			owner.ItemTitleChanged()
		}
	})
	logging.FromContext(ctx).Debug().Str("pane_id", string(p.ID())).Msg("item registered")
}

// Released forgets an item that was disposed of.
func (r *Registry) Released(id entity.ItemID) {
	delete(r.owners, id)
	if sub, ok := r.subs[id]; ok {
		sub.Unsubscribe()
		delete(r.subs, id)
	}
}

// PaneFor returns the owning pane of id.
func (r *Registry) PaneFor(id entity.ItemID) (*pane.Pane, bool) {
	p, ok := r.owners[id]
	return p, ok
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	return len(r.owners)
}
