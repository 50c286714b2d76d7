package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		if match := sectionHeaderRE.FindStringSubmatch(line); match != nil {
			sections = append(sections, match[2])
		}
	}
	return sections
}

func TestWriteConfigOrdered_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	require.NoError(t, WriteConfigOrdered(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	sections := sectionHeaders(string(content))
	assert.IsIncreasing(t, sections)
	assert.Contains(t, sections, "docks.left")
	assert.Contains(t, sections, "keybindings")

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, cfg.Layout, decoded.Layout)
	assert.Equal(t, cfg.Docks, decoded.Docks)
	assert.Equal(t, cfg.Keybindings["pane::SplitRight"], decoded.Keybindings["pane::SplitRight"])
}

func TestSortTOMLSections(t *testing.T) {
	input := `top = 1

[theme]
accent = '#000000'

[layout]
can_split = true

  [docks.left]
  default_size = 30.0

[docks]
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{"docks", "docks.left", "layout", "theme"}, sectionHeaders(result))
	assert.True(t, strings.HasPrefix(result, "top = 1\n"))
	assert.True(t, strings.HasSuffix(result, "\n"))
	assert.False(t, strings.HasSuffix(result, "\n\n"))
}

func TestEncodeTOML_Nil(t *testing.T) {
	_, err := EncodeTOML(nil)
	assert.Error(t, err)
}
