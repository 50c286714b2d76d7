// Package repository declares the persistence interfaces of the domain.
package repository

import (
	"context"
	"errors"

	"github.com/bnema/dockyard/internal/domain/entity"
)

//go:generate mockery --name=LayoutRepository --output=mocks --outpkg=mocks --filename=mock_layout_repository.go --with-expecter

// ErrLayoutNotFound is returned when no layout is stored under a name.
var ErrLayoutNotFound = errors.New("layout not found")

// LayoutRepository persists named layout snapshots.
type LayoutRepository interface {
	// Save inserts or replaces the layout stored under state.Name.
	Save(ctx context.Context, state *entity.LayoutState) error

	// Get returns the layout stored under name, or ErrLayoutNotFound.
	Get(ctx context.Context, name string) (*entity.LayoutState, error)

	// List returns summaries of every stored layout, most recent first.
	List(ctx context.Context) ([]entity.LayoutInfo, error)

	// Delete removes the layout stored under name, or returns ErrLayoutNotFound.
	Delete(ctx context.Context, name string) error
}
