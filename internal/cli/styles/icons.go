// Package styles provides reusable lipgloss-based CLI output.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher

	IconCheck    = "" // check
	IconX        = "" // x
	IconInfo     = "" // info
	IconConfig   = "" // config
	IconDatabase = "" // database
	IconLogs     = "" // file-text
	IconTrash    = "" // trash

	// Layouts
	IconLayout = "" // columns
	IconPane   = "" // window
	IconTab    = "" // table
	IconClock  = "" // clock
)
