package styles

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// ConfigStatus is what `config status` reports.
type ConfigStatus struct {
	ConfigFile      string
	DatabaseFile    string
	SchemaVersion   int64
	LogDir          string
	SavedLayouts    int
	DatabaseMissing bool
}

// RenderStatus renders the config, database and log locations.
func (r *ConfigRenderer) RenderStatus(s ConfigStatus) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	db := pathStyle.Render(s.DatabaseFile)
	if s.DatabaseMissing {
		db += r.theme.Subtle.Render(" (created on first save)")
	} else {
		db += fmt.Sprintf(" %s %s",
			r.theme.BadgeMuted.Render(fmt.Sprintf("schema v%d", s.SchemaVersion)),
			r.theme.BadgeMuted.Render(fmt.Sprintf("%d layouts", s.SavedLayouts)),
		)
	}

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Database %s\n  %s Logs %s\n",
		iconStyle.Render(IconConfig), pathStyle.Render(s.ConfigFile),
		iconStyle.Render(IconDatabase), db,
		iconStyle.Render(IconLogs), pathStyle.Render(s.LogDir),
	)
}

// RenderSchemaWritten renders the success message after writing the schema.
func (r *ConfigRenderer) RenderSchemaWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
