package pane

import (
	"context"
	"errors"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/bnema/dockyard/internal/ui/mainloop"
)

// CloseItems closes every item matching pred. Matching items are captured
// now and removed one per main-loop step, looked up by id, so the batch
// tolerates items that moved or disappeared in between.
func (p *Pane) CloseItems(ctx context.Context, pred func(item.Item) bool) *mainloop.Task {
	var ids []entity.ItemID
	for _, it := range p.items {
		if pred(it) {
			ids = append(ids, it.ItemID())
		}
	}
	ctx = p.logger(ctx)
	logging.FromContext(ctx).Debug().Int("count", len(ids)).Msg("closing items")

	return p.loop.Spawn(ctx, func(ctx context.Context, cx *mainloop.AsyncContext) error {
		log := logging.FromContext(ctx)
		for _, id := range ids {
			var stepErr error
			if err := cx.Update(func() {
				stepErr = p.Update(func(p *Pane) {
					p.closeItemStep(ctx, id)
				})
			}); err != nil {
				return err
			}
			if errors.Is(stepErr, mainloop.ErrReleased) {
				log.Debug().Msg("pane released while closing items")
				return nil
			}
			if stepErr != nil {
				log.Warn().Err(stepErr).Str("item_id", string(id)).Msg("failed to close item")
			}
		}
		return nil
	})
}

func (p *Pane) closeItemStep(ctx context.Context, id entity.ItemID) {
	index := p.IndexForItemID(id)
	if index < 0 {
		return
	}
	closed := p.items[index]
	p.RemoveItem(ctx, index, false)
	if p.host != nil {
		p.host.ItemClosed(ctx, closed)
	} else {
		closed.Release()
	}
}

// CloseItemByID closes one item.
func (p *Pane) CloseItemByID(ctx context.Context, id entity.ItemID) *mainloop.Task {
	if len(p.items) == 0 {
		return nil
	}
	return p.CloseItems(ctx, func(it item.Item) bool { return it.ItemID() == id })
}

// CloseActiveItem closes the active item.
func (p *Pane) CloseActiveItem(ctx context.Context) *mainloop.Task {
	active := p.ActiveItem()
	if active == nil {
		return nil
	}
	return p.CloseItemByID(ctx, active.ItemID())
}

// CloseInactiveItems closes everything but the active item.
func (p *Pane) CloseInactiveItems(ctx context.Context) *mainloop.Task {
	active := p.ActiveItem()
	if active == nil {
		return nil
	}
	activeID := active.ItemID()
	return p.CloseItems(ctx, func(it item.Item) bool { return it.ItemID() != activeID })
}

// CloseAllItems empties the pane.
func (p *Pane) CloseAllItems(ctx context.Context) *mainloop.Task {
	if len(p.items) == 0 {
		return nil
	}
	return p.CloseItems(ctx, func(item.Item) bool { return true })
}

// CloseItemsToTheLeft closes the items left of the active one.
func (p *Pane) CloseItemsToTheLeft(ctx context.Context) *mainloop.Task {
	active := p.ActiveItem()
	if active == nil {
		return nil
	}
	return p.CloseItemsToTheLeftByID(ctx, active.ItemID())
}

// CloseItemsToTheLeftByID closes the items left of id.
func (p *Pane) CloseItemsToTheLeftByID(ctx context.Context, id entity.ItemID) *mainloop.Task {
	if len(p.items) == 0 {
		return nil
	}
	toClose := make(map[entity.ItemID]bool)
	for _, it := range p.items {
		if it.ItemID() == id {
			break
		}
		toClose[it.ItemID()] = true
	}
	return p.CloseItems(ctx, func(it item.Item) bool { return toClose[it.ItemID()] })
}

// CloseItemsToTheRight closes the items right of the active one.
func (p *Pane) CloseItemsToTheRight(ctx context.Context) *mainloop.Task {
	active := p.ActiveItem()
	if active == nil {
		return nil
	}
	return p.CloseItemsToTheRightByID(ctx, active.ItemID())
}

// CloseItemsToTheRightByID closes the items right of id.
func (p *Pane) CloseItemsToTheRightByID(ctx context.Context, id entity.ItemID) *mainloop.Task {
	if len(p.items) == 0 {
		return nil
	}
	toClose := make(map[entity.ItemID]bool)
	for i := len(p.items) - 1; i >= 0; i-- {
		if p.items[i].ItemID() == id {
			break
		}
		toClose[p.items[i].ItemID()] = true
	}
	return p.CloseItems(ctx, func(it item.Item) bool { return toClose[it.ItemID()] })
}

func detach(t *mainloop.Task) {
	if t != nil {
		t.DetachAndLogErr()
	}
}
