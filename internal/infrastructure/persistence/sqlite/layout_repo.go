package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	upsertLayoutQuery = `
INSERT INTO layouts (name, state_json, version, pane_count, item_count, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    state_json = excluded.state_json,
    version = excluded.version,
    pane_count = excluded.pane_count,
    item_count = excluded.item_count,
    updated_at = excluded.updated_at`

	getLayoutQuery = `SELECT state_json FROM layouts WHERE name = ?`

	listLayoutsQuery = `
SELECT name, pane_count, item_count, updated_at
FROM layouts
ORDER BY updated_at DESC, name ASC`

	deleteLayoutQuery = `DELETE FROM layouts WHERE name = ?`
)

type layoutRepo struct {
	db *sql.DB
}

// NewLayoutRepository creates a layout repository backed by db.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db}
}

// Save inserts or replaces the layout stored under state.Name.
func (r *layoutRepo) Save(ctx context.Context, state *entity.LayoutState) error {
	log := logging.FromContext(ctx)
	if state == nil {
		return errors.New("layout state cannot be nil")
	}
	if state.Name == "" {
		return errors.New("layout name cannot be empty")
	}

	stateJSON, err := json.Marshal(state)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal layout state")
		return err
	}

	savedAt := state.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	log.Debug().
		Str("layout", state.Name).
		Int("pane_count", state.CountPanes()).
		Int("item_count", state.CountItems()).
		Msg("saving layout")

	_, err = r.db.ExecContext(ctx, upsertLayoutQuery,
		state.Name,
		string(stateJSON),
		int64(state.Version),
		int64(state.CountPanes()),
		int64(state.CountItems()),
		savedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save layout %q: %w", state.Name, err)
	}
	return nil
}

// Get returns the layout stored under name.
func (r *layoutRepo) Get(ctx context.Context, name string) (*entity.LayoutState, error) {
	var stateJSON string
	err := r.db.QueryRowContext(ctx, getLayoutQuery, name).Scan(&stateJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", repository.ErrLayoutNotFound, name)
		}
		return nil, err
	}

	var state entity.LayoutState
	if err := json.Unmarshal([]byte(stateJSON), &state); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("layout", name).
			Msg("failed to unmarshal layout state")
		return nil, fmt.Errorf("decode layout %q: %w", name, err)
	}
	return &state, nil
}

// List returns summaries of every stored layout, most recent first.
func (r *layoutRepo) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutsQuery)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var layouts []entity.LayoutInfo
	for rows.Next() {
		var (
			info      entity.LayoutInfo
			paneCount int64
			itemCount int64
			updatedAt int64
		)
		if err := rows.Scan(&info.Name, &paneCount, &itemCount, &updatedAt); err != nil {
			return nil, err
		}
		info.PaneCount = int(paneCount)
		info.ItemCount = int(itemCount)
		info.UpdatedAt = time.UnixMilli(updatedAt)
		layouts = append(layouts, info)
	}
	return layouts, rows.Err()
}

// Delete removes the layout stored under name.
func (r *layoutRepo) Delete(ctx context.Context, name string) error {
	logging.FromContext(ctx).Debug().Str("layout", name).Msg("deleting layout")

	result, err := r.db.ExecContext(ctx, deleteLayoutQuery, name)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", repository.ErrLayoutNotFound, name)
	}
	return nil
}
