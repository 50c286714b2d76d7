package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of one frame.
type Styles struct {
	Palette Palette

	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
	ZoomedPane  lipgloss.Style

	TabBar    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	// SelectedTab is the active tab of the focused pane.
	SelectedTab lipgloss.Style

	Dock        lipgloss.Style
	FocusedDock lipgloss.Style
	DockTab     lipgloss.Style
	ActiveDock  lipgloss.Style

	Divider     lipgloss.Style
	DropOverlay lipgloss.Style
	Empty       lipgloss.Style
	StatusBar   lipgloss.Style
}

// NewStyles builds the styles for p.
func NewStyles(p Palette) Styles {
	border := lipgloss.Color(p.Border)
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)

	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(border).
		Foreground(text)

	return Styles{
		Palette: p,

		Pane:        frame,
		FocusedPane: frame.BorderForeground(lipgloss.Color(p.ActiveBorder)),
		ZoomedPane:  frame.Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color(p.ActiveBorder)),

		TabBar:      lipgloss.NewStyle().Foreground(muted),
		Tab:         lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Foreground(text).Padding(0, 1),
		SelectedTab: lipgloss.NewStyle().Foreground(accent).Bold(true).Padding(0, 1),

		Dock:        frame,
		FocusedDock: frame.BorderForeground(accent),
		DockTab:     lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		ActiveDock:  lipgloss.NewStyle().Foreground(accent).Padding(0, 1),

		Divider:     lipgloss.NewStyle().Foreground(border),
		DropOverlay: lipgloss.NewStyle().Background(lipgloss.Color(p.DropOverlay)),
		Empty:       lipgloss.NewStyle().Foreground(muted).Italic(true),
		StatusBar:   lipgloss.NewStyle().Foreground(muted),
	}
}
