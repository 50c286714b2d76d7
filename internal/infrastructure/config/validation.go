package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/dockyard/internal/domain/validation"
)

// validateConfig collects every problem instead of stopping at the first.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateDocks(config)...)
	validationErrors = append(validationErrors, validation.ValidatePaletteHex("theme", config.Theme.Palette())...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of: trace, debug, info, warn, error")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	layout := config.Layout
	if layout.DragSplitMargin <= 0 || layout.DragSplitMargin > 0.5 {
		validationErrors = append(validationErrors, "layout.drag_split_margin must be in (0, 0.5]")
	}
	if layout.ResizeHandleSize < 1 {
		validationErrors = append(validationErrors, "layout.resize_handle_size must be at least 1")
	}
	if layout.MinPanePercent < 1 || layout.MinPanePercent > 45 {
		validationErrors = append(validationErrors, "layout.min_pane_percent must be between 1 and 45")
	}
	if layout.ResizeStepPercent < 1 || layout.ResizeStepPercent > 50 {
		validationErrors = append(validationErrors, "layout.resize_step_percent must be between 1 and 50")
	}
	return validationErrors
}

func validateDocks(config *Config) []string {
	var validationErrors []string
	docks := map[string]DockConfig{
		"left":   config.Docks.Left,
		"right":  config.Docks.Right,
		"bottom": config.Docks.Bottom,
	}
	for _, name := range []string{"left", "right", "bottom"} {
		if docks[name].DefaultSize < config.Layout.ResizeHandleSize {
			validationErrors = append(validationErrors,
				fmt.Sprintf("docks.%s.default_size must be at least layout.resize_handle_size", name))
		}
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	actions := make([]string, 0, len(config.Keybindings))
	for action := range config.Keybindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	var validationErrors []string
	owners := make(map[string]string)
	for _, action := range actions {
		validationErrors = append(validationErrors, validation.ValidateActionName(action)...)
		for _, key := range config.Keybindings[action] {
			if errs := validation.ValidateKeyBinding(key); len(errs) > 0 {
				validationErrors = append(validationErrors, errs...)
				continue
			}
			if owner, taken := owners[key]; taken {
				validationErrors = append(validationErrors,
					fmt.Sprintf("key %q is bound to both %s and %s", key, owner, action))
				continue
			}
			owners[key] = action
		}
	}
	return validationErrors
}
