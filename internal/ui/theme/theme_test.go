package theme

import (
	"testing"

	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

func TestPaletteFromConfig_FillsMissing(t *testing.T) {
	cfg := &config.ThemeConfig{Accent: "#ff0000"}

	p := PaletteFromConfig(cfg)

	defaults := config.DefaultConfig().Theme
	assert.Equal(t, "#ff0000", p.Accent)
	assert.Equal(t, defaults.Border, p.Border)
	assert.Equal(t, defaults.DropOverlay, p.DropOverlay)
}

func TestPaletteFromConfig_Nil(t *testing.T) {
	assert.Equal(t, DefaultPalette(), PaletteFromConfig(nil))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, "", Coalesce("", ""))
}

func TestNewStyles_FramesHaveBorders(t *testing.T) {
	s := NewStyles(DefaultPalette())

	assert.Equal(t, 2, s.Pane.GetHorizontalFrameSize())
	assert.Equal(t, 2, s.FocusedPane.GetVerticalFrameSize())
	assert.Equal(t, DefaultPalette(), s.Palette)
}
