package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/domain/validation"
	"github.com/bnema/dockyard/internal/logging"
)

// DefaultLayoutName is used when no name is given.
const DefaultLayoutName = "default"

// ErrInvalidLayoutName is returned for names the store would not accept.
var ErrInvalidLayoutName = errors.New("invalid layout name")

// ManageLayoutsUseCase saves, restores, lists and deletes named layouts.
type ManageLayoutsUseCase struct {
	layoutRepo repository.LayoutRepository
	now        func() time.Time
}

// NewManageLayoutsUseCase creates a new layouts use case.
func NewManageLayoutsUseCase(layoutRepo repository.LayoutRepository) *ManageLayoutsUseCase {
	return &ManageLayoutsUseCase{
		layoutRepo: layoutRepo,
		now:        time.Now,
	}
}

func resolveLayoutName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultLayoutName, nil
	}
	if errs := validation.ValidateLayoutName(name); len(errs) > 0 {
		return "", fmt.Errorf("%w: %s", ErrInvalidLayoutName, strings.Join(errs, "; "))
	}
	return name, nil
}

// Save snapshots host and stores it under name.
func (uc *ManageLayoutsUseCase) Save(ctx context.Context, host port.LayoutHost, name string) (*entity.LayoutState, error) {
	name, err := resolveLayoutName(name)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithLayout(ctx, name)
	log := logging.FromContext(ctx)

	state := host.Snapshot(name)
	if state == nil {
		return nil, fmt.Errorf("layout %q: empty snapshot", name)
	}
	state.SavedAt = uc.now().UTC()

	if err := uc.layoutRepo.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save layout: %w", err)
	}

	log.Info().
		Int("panes", state.CountPanes()).
		Int("items", state.CountItems()).
		Msg("layout saved")
	return state, nil
}

// Restore loads the layout stored under name into host. found is false,
// with a nil error, when nothing is stored under name.
func (uc *ManageLayoutsUseCase) Restore(ctx context.Context, host port.LayoutHost, name string) (found bool, err error) {
	name, err = resolveLayoutName(name)
	if err != nil {
		return false, err
	}
	ctx = logging.WithLayout(ctx, name)
	log := logging.FromContext(ctx)

	state, err := uc.layoutRepo.Get(ctx, name)
	if errors.Is(err, repository.ErrLayoutNotFound) {
		log.Debug().Msg("no saved layout to restore")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load layout: %w", err)
	}

	if err := host.Restore(ctx, state); err != nil {
		return true, fmt.Errorf("failed to restore layout: %w", err)
	}
	return true, nil
}

// List returns the stored layouts, most recent first.
func (uc *ManageLayoutsUseCase) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	layouts, err := uc.layoutRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	return layouts, nil
}

// Delete removes the layout stored under name.
func (uc *ManageLayoutsUseCase) Delete(ctx context.Context, name string) error {
	name, err := resolveLayoutName(name)
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Debug().Str("layout", name).Msg("deleting layout")

	if err := uc.layoutRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("failed to delete layout: %w", err)
	}
	return nil
}
