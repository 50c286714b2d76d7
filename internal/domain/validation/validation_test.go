package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePaletteHex(t *testing.T) {
	errs := ValidatePaletteHex("theme", map[string]string{
		"accent": "#112233",
		"border": "red",
		"text":   "#12345",
	})

	assert.Equal(t, []string{
		"theme.border must be a hex color like #RRGGBB",
		"theme.text must be a hex color like #RRGGBB",
	}, errs)
}

func TestValidateKeyBinding(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"ctrl+w", true},
		{"alt+shift+left", true},
		{"]", true},
		{"+", true},
		{"", false},
		{"ctrl +w", false},
		{"super+w", false},
		{"ctrl+", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			errs := ValidateKeyBinding(tt.key)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}

func TestValidateActionName(t *testing.T) {
	assert.Empty(t, ValidateActionName("pane::SplitRight"))
	assert.Empty(t, ValidateActionName("workspace::ToggleLeftDock"))
	assert.NotEmpty(t, ValidateActionName("SplitRight"))
	assert.NotEmpty(t, ValidateActionName("pane::"))
}

func TestValidateLayoutName(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"simple", "default", true},
		{"spaces inside", "code review", true},
		{"empty", "", false},
		{"blank", "   ", false},
		{"slash", "a/b", false},
		{"backslash", `a\b`, false},
		{"control", "a\x00b", false},
		{"too long", strings.Repeat("x", 65), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLayoutName(tt.value)
			if tt.ok {
				assert.Empty(t, errs)
			} else {
				assert.NotEmpty(t, errs)
			}
		})
	}
}
