package tui

import (
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/content"
	"github.com/bnema/dockyard/internal/ui/workspace"
)

// SettingsFromConfig converts the layout section of cfg.
func SettingsFromConfig(cfg *config.Config) workspace.Settings {
	s := workspace.DefaultSettings()
	if cfg == nil {
		return s
	}
	l := cfg.Layout
	s.CanSplit = l.CanSplit
	s.ShowTabBar = l.ShowTabBar
	s.DragSplitMargin = l.DragSplitMargin
	s.MinPanePercent = l.MinPanePercent
	s.ResizeStepPercent = l.ResizeStepPercent
	s.ResizeHandleSize = l.ResizeHandleSize
	s.LayoutUnit = l.LayoutUnit
	return s
}

// PanelOptionsFromConfig converts the docks section of cfg.
func PanelOptionsFromConfig(cfg *config.Config, root string, buffer *logging.LogBuffer) content.PanelOptions {
	placement := func(d config.DockConfig) content.Placement {
		return content.Placement{DefaultSize: d.DefaultSize, StartsOpen: d.StartsOpen}
	}
	return content.PanelOptions{
		Root:   root,
		Log:    buffer,
		Left:   placement(cfg.Docks.Left),
		Right:  placement(cfg.Docks.Right),
		Bottom: placement(cfg.Docks.Bottom),
	}
}
