// Package theme turns the configured colors into lipgloss styles for the
// terminal renderer.
package theme

import (
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background   string // Main background color
	Text         string // Primary text color
	Muted        string // Inactive tabs, dock strips
	Accent       string // Active tab, focused dock strip
	Border       string // Pane frames and dividers
	ActiveBorder string // Frame of the focused pane
	DropOverlay  string // Highlighted drop area while dragging
}

// DefaultPalette returns the built-in dark palette.
func DefaultPalette() Palette {
	return PaletteFromConfig(&config.DefaultConfig().Theme)
}

// PaletteFromConfig creates a Palette from config values, filling missing
// values with the defaults.
func PaletteFromConfig(cfg *config.ThemeConfig) Palette {
	defaults := config.DefaultConfig().Theme
	if cfg == nil {
		cfg = &defaults
	}
	return Palette{
		Background:   Coalesce(cfg.Background, defaults.Background),
		Text:         Coalesce(cfg.Text, defaults.Text),
		Muted:        Coalesce(cfg.Muted, defaults.Muted),
		Accent:       Coalesce(cfg.Accent, defaults.Accent),
		Border:       Coalesce(cfg.Border, defaults.Border),
		ActiveBorder: Coalesce(cfg.ActiveBorder, defaults.ActiveBorder),
		DropOverlay:  Coalesce(cfg.DropOverlay, defaults.DropOverlay),
	}
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
