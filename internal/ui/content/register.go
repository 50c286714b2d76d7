package content

import (
	"context"
	"errors"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/cache"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/bnema/dockyard/internal/ui/workspace"
)

// Placement is where a panel starts out.
type Placement struct {
	DefaultSize float64
	StartsOpen  bool
}

// PanelOptions configures the built-in panels.
type PanelOptions struct {
	// Root is the directory listed by the project panel.
	Root   string
	Log    *logging.LogBuffer
	Left   Placement
	Right  Placement
	Bottom Placement
}

// Panels are the built-in panels once added.
type Panels struct {
	Project *ProjectPanel
	Outline *OutlinePanel
	Log     *LogPanel
}

// RegisterItemKinds installs the file kind on w. newID names clones. Files
// opened more than once, by drops or restored layouts, are read once while
// they stay within the cached line budget.
func RegisterItemKinds(ctx context.Context, w *workspace.Workspace, newID entity.IDGenerator) {
	log := logging.FromContext(logging.WithComponent(ctx, "content"))
	files := cache.NewLRU(fileCacheLines,
		cache.WithCost[fileKey](func(lines []string) int { return len(lines) }),
		cache.WithOnEvict(func(key fileKey, lines []string) {
			log.Debug().Str("path", key.path).Int("lines", len(lines)).Msg("file evicted from cache")
		}),
	)
	w.RegisterItemKind(KindFile, func(_ context.Context, fm *focus.Manager, id entity.ItemID, data string) (item.Item, error) {
		if data == "" {
			return nil, errors.New("file item needs a path")
		}
		return newFileItem(fm, id, data, newID, files), nil
	})
}

// AddPanels creates the project panel in the left dock, the outline in the
// right dock and the log in the bottom dock.
func AddPanels(ctx context.Context, w *workspace.Workspace, newID entity.IDGenerator, opts PanelOptions) Panels {
	fm := w.Focus()
	config := func(position dock.Position, placement Placement) dock.PanelConfig {
		return dock.PanelConfig{
			ID:          entity.PanelID(newID()),
			Position:    position,
			DefaultSize: placement.DefaultSize,
			StartsOpen:  placement.StartsOpen,
		}
	}

	panels := Panels{
		Project: NewProjectPanel(ctx, fm, config(dock.PositionLeft, opts.Left), opts.Root),
		Outline: NewOutlinePanel(fm, config(dock.PositionRight, opts.Right), func() item.Item {
			if p := w.ActivePane(); p != nil {
				return p.ActiveItem()
			}
			return nil
		}),
		Log: NewLogPanel(fm, config(dock.PositionBottom, opts.Bottom), opts.Log),
	}

	w.Dock(dock.PositionLeft).AddPanel(ctx, panels.Project)
	w.Dock(dock.PositionRight).AddPanel(ctx, panels.Outline)
	w.Dock(dock.PositionBottom).AddPanel(ctx, panels.Log)
	return panels
}
