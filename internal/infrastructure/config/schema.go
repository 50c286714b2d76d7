// Package config loads, validates and watches the dockyard configuration.
package config

// Config represents the complete configuration for dockyard.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Layout   LayoutConfig   `mapstructure:"layout" yaml:"layout" toml:"layout" json:"layout"`
	Docks    DocksConfig    `mapstructure:"docks" yaml:"docks" toml:"docks" json:"docks"`
	Theme    ThemeConfig    `mapstructure:"theme" yaml:"theme" toml:"theme" json:"theme"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	// Keybindings maps an action ("pane::SplitRight") to the keys that trigger it.
	Keybindings map[string][]string `mapstructure:"keybindings" yaml:"keybindings" toml:"keybindings" json:"keybindings"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is console or json.
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// File receives the logs. Empty writes to the state directory.
	File string `mapstructure:"file" yaml:"file" toml:"file" json:"file,omitempty"`
	// MaxAge is the number of days log files are kept.
	MaxAge int `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
}

// LayoutConfig controls panes and splits.
type LayoutConfig struct {
	// DragSplitMargin is the share of the smaller pane side that counts as a
	// split zone while dragging a tab.
	DragSplitMargin float64 `mapstructure:"drag_split_margin" yaml:"drag_split_margin" toml:"drag_split_margin" json:"drag_split_margin" jsonschema:"minimum=0,maximum=0.5"`
	// ResizeHandleSize is the minimum size of a dock, in cells.
	ResizeHandleSize float64 `mapstructure:"resize_handle_size" yaml:"resize_handle_size" toml:"resize_handle_size" json:"resize_handle_size" jsonschema:"minimum=1"`
	// LayoutUnit is the grid dock sizes are rounded to.
	LayoutUnit        float64 `mapstructure:"layout_unit" yaml:"layout_unit" toml:"layout_unit" json:"layout_unit" jsonschema:"minimum=1"`
	CanSplit          bool    `mapstructure:"can_split" yaml:"can_split" toml:"can_split" json:"can_split"`
	MinPanePercent    float64 `mapstructure:"min_pane_percent" yaml:"min_pane_percent" toml:"min_pane_percent" json:"min_pane_percent" jsonschema:"minimum=1,maximum=45"`
	ResizeStepPercent float64 `mapstructure:"resize_step_percent" yaml:"resize_step_percent" toml:"resize_step_percent" json:"resize_step_percent" jsonschema:"minimum=1,maximum=50"`
	ShowTabBar        bool    `mapstructure:"show_tab_bar" yaml:"show_tab_bar" toml:"show_tab_bar" json:"show_tab_bar"`
	// RestoreOnStartup loads the layout named "default" when no layout is given.
	RestoreOnStartup bool `mapstructure:"restore_on_startup" yaml:"restore_on_startup" toml:"restore_on_startup" json:"restore_on_startup"`
	// SaveOnExit stores the current layout as "default" on exit.
	SaveOnExit bool `mapstructure:"save_on_exit" yaml:"save_on_exit" toml:"save_on_exit" json:"save_on_exit"`
}

// DocksConfig holds one entry per dock position.
type DocksConfig struct {
	Left   DockConfig `mapstructure:"left" yaml:"left" toml:"left" json:"left"`
	Right  DockConfig `mapstructure:"right" yaml:"right" toml:"right" json:"right"`
	Bottom DockConfig `mapstructure:"bottom" yaml:"bottom" toml:"bottom" json:"bottom"`
}

// DockConfig configures the panels of one dock.
type DockConfig struct {
	// DefaultSize is the panel size in cells before the user resizes it.
	DefaultSize float64 `mapstructure:"default_size" yaml:"default_size" toml:"default_size" json:"default_size" jsonschema:"minimum=1"`
	StartsOpen  bool    `mapstructure:"starts_open" yaml:"starts_open" toml:"starts_open" json:"starts_open"`
}

// ThemeConfig holds the terminal colors.
type ThemeConfig struct {
	Background   string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Text         string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted        string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent       string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border       string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
	ActiveBorder string `mapstructure:"active_border" yaml:"active_border" toml:"active_border" json:"active_border"`
	DropOverlay  string `mapstructure:"drop_overlay" yaml:"drop_overlay" toml:"drop_overlay" json:"drop_overlay"`
}

// Palette returns the theme colors keyed by their config name.
func (t ThemeConfig) Palette() map[string]string {
	return map[string]string{
		"background":    t.Background,
		"text":          t.Text,
		"muted":         t.Muted,
		"accent":        t.Accent,
		"border":        t.Border,
		"active_border": t.ActiveBorder,
		"drop_overlay":  t.DropOverlay,
	}
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path of the SQLite file. Empty uses the data directory.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path,omitempty"`
}
