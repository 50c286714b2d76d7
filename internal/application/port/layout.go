package port

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

//go:generate mockgen -source=layout.go -destination=mocks/mock_layout.go -package=mocks

// LayoutHost is the live layout that snapshots are taken from and restored
// into. The workspace implements it.
type LayoutHost interface {
	// Snapshot captures the current layout under name.
	Snapshot(name string) *entity.LayoutState

	// Restore replaces the current layout with state. The current layout is
	// left untouched when state is rejected.
	Restore(ctx context.Context, state *entity.LayoutState) error
}
