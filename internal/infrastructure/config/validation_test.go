package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "log level",
			mutate: func(c *Config) { c.Logging.Level = "verbose" },
			want:   "logging.level",
		},
		{
			name:   "drag margin",
			mutate: func(c *Config) { c.Layout.DragSplitMargin = 0 },
			want:   "layout.drag_split_margin",
		},
		{
			name:   "min pane percent",
			mutate: func(c *Config) { c.Layout.MinPanePercent = 60 },
			want:   "layout.min_pane_percent",
		},
		{
			name:   "dock smaller than handle",
			mutate: func(c *Config) { c.Docks.Right.DefaultSize = 2 },
			want:   "docks.right.default_size",
		},
		{
			name:   "theme color",
			mutate: func(c *Config) { c.Theme.Border = "grey" },
			want:   "theme.border",
		},
		{
			name:   "bad action",
			mutate: func(c *Config) { c.Keybindings["SplitRight"] = []string{"f5"} },
			want:   "namespace::Action",
		},
		{
			name:   "bad key",
			mutate: func(c *Config) { c.Keybindings["pane::SplitUp"] = []string{"hyper+k"} },
			want:   "unknown modifier",
		},
		{
			name:   "duplicate key",
			mutate: func(c *Config) { c.Keybindings["pane::SplitUp"] = []string{"ctrl+w"} },
			want:   `key "ctrl+w" is bound to both`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Layout.ResizeStepPercent = 0

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "layout.resize_step_percent")
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	assert.Contains(t, string(data), `"drag_split_margin"`)
	assert.Contains(t, string(data), `"Dockyard Configuration"`)
}
