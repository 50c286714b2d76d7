package config

// Default configuration constants
const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxLogAgeDays = 7 // days

	defaultDragSplitMargin   = 0.33
	defaultResizeHandleSize  = 6.0
	defaultLayoutUnit        = 1.0
	defaultMinPanePercent    = 10.0
	defaultResizeStepPercent = 5.0

	defaultSideDockSize   = 30.0 // cells
	defaultBottomDockSize = 12.0 // cells
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
			MaxAge: defaultMaxLogAgeDays,
		},
		Layout: LayoutConfig{
			DragSplitMargin:   defaultDragSplitMargin,
			ResizeHandleSize:  defaultResizeHandleSize,
			LayoutUnit:        defaultLayoutUnit,
			CanSplit:          true,
			MinPanePercent:    defaultMinPanePercent,
			ResizeStepPercent: defaultResizeStepPercent,
			ShowTabBar:        true,
			RestoreOnStartup:  true,
			SaveOnExit:        true,
		},
		Docks: DocksConfig{
			Left:   DockConfig{DefaultSize: defaultSideDockSize, StartsOpen: true},
			Right:  DockConfig{DefaultSize: defaultSideDockSize},
			Bottom: DockConfig{DefaultSize: defaultBottomDockSize},
		},
		Theme: ThemeConfig{
			Background:   "#1e1e2e",
			Text:         "#cdd6f4",
			Muted:        "#6c7086",
			Accent:       "#89b4fa",
			Border:       "#45475a",
			ActiveBorder: "#89b4fa",
			DropOverlay:  "#313244",
		},
		Keybindings: DefaultKeybindings(),
	}
}

// DefaultKeybindings returns the built-in key map.
func DefaultKeybindings() map[string][]string {
	return map[string][]string{
		"pane::ActivatePrevItem":           {"ctrl+pgup", "["},
		"pane::ActivateNextItem":           {"ctrl+pgdown", "]"},
		"pane::ActivateLastItem":           {"alt+0"},
		"pane::CloseActiveItem":            {"ctrl+w"},
		"pane::CloseInactiveItems":         {"alt+w"},
		"pane::CloseAllItems":              {"alt+W"},
		"pane::SplitLeft":                  {"alt+h"},
		"pane::SplitRight":                 {"alt+l"},
		"pane::SplitUp":                    {"alt+k"},
		"pane::SplitDown":                  {"alt+j"},
		"pane::ToggleZoom":                 {"alt+z"},
		"workspace::ToggleLeftDock":        {"ctrl+b"},
		"workspace::ToggleBottomDock":      {"ctrl+j"},
		"workspace::ToggleRightDock":       {"ctrl+r"},
		"workspace::CloseAllDocks":         {"alt+d"},
		"workspace::ActivatePaneLeft":      {"ctrl+left"},
		"workspace::ActivatePaneRight":     {"ctrl+right"},
		"workspace::ActivatePaneUp":        {"ctrl+up"},
		"workspace::ActivatePaneDown":      {"ctrl+down"},
		"workspace::ResizePaneLeft":        {"alt+left"},
		"workspace::ResizePaneRight":       {"alt+right"},
		"workspace::ResizePaneUp":          {"alt+up"},
		"workspace::ResizePaneDown":        {"alt+down"},
		"workspace::ZoomOut":               {"esc"},
		"workspace::FocusActivePane":       {"alt+p"},
		"workspace::ToggleZoomedPanel":     {"alt+Z"},
		"workspace::ActivateNextDockPanel": {"alt+n"},
		"app::SaveLayout":                  {"ctrl+s"},
		"app::Quit":                        {"ctrl+q"},
	}
}
