package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
)

// LazyLayoutRepository opens the database on first use, so a session that
// neither restores nor saves a layout never pays for the WASM compilation and
// migrations.
type LazyLayoutRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutRepository creates a lazy-loading layout repository.
func NewLazyLayoutRepository(provider port.DatabaseProvider) repository.LayoutRepository {
	return &LazyLayoutRepository{provider: provider}
}

func (r *LazyLayoutRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutRepository(db)
	})
	return r.initErr
}

func (r *LazyLayoutRepository) Save(ctx context.Context, state *entity.LayoutState) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, state)
}

func (r *LazyLayoutRepository) Get(ctx context.Context, name string) (*entity.LayoutState, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, name)
}

func (r *LazyLayoutRepository) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyLayoutRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}
