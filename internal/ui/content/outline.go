package content

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/charmbracelet/x/ansi"
)

// PanelOutline is the persistent name of the outline panel.
const PanelOutline = "outline"

var outlineRE = regexp.MustCompile(`^\s*(func|type|class|def|fn|struct|interface|enum|impl|const|var)\b`)

// OutlineEntry is a declaration found in the active file.
type OutlineEntry struct {
	Line int
	Text string
}

// OutlinePanel shows the declarations of the active file.
type OutlinePanel struct {
	dock.PanelBase

	activeItem func() item.Item
}

var _ dock.Panel = (*OutlinePanel)(nil)

// NewOutlinePanel follows whatever activeItem returns at render time.
func NewOutlinePanel(fm *focus.Manager, cfg dock.PanelConfig, activeItem func() item.Item) *OutlinePanel {
	cfg.Name = PanelOutline
	if cfg.Icon == "" {
		cfg.Icon = "outline"
	}
	return &OutlinePanel{
		PanelBase:  dock.NewPanelBase(cfg, fm.NewHandle(nil)),
		activeItem: activeItem,
	}
}

// Entries returns the declarations of the active file item.
func (o *OutlinePanel) Entries() []OutlineEntry {
	file, ok := item.Downcast[*FileItem](o.activeItem())
	if !ok || file == nil {
		return nil
	}
	return Outline(file.Lines())
}

// Outline extracts declaration lines.
func Outline(lines []string) []OutlineEntry {
	var out []OutlineEntry
	for i, line := range lines {
		if outlineRE.MatchString(line) {
			out = append(out, OutlineEntry{Line: i + 1, Text: strings.TrimSpace(line)})
		}
	}
	return out
}

func (o *OutlinePanel) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	entries := o.Entries()
	if len(entries) == 0 {
		return ansi.Truncate("no outline", width, "…")
	}

	var b strings.Builder
	for row, entry := range entries {
		if row >= height {
			break
		}
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(ansi.Truncate(fmt.Sprintf("%4d %s", entry.Line, entry.Text), width, "…"))
	}
	return b.String()
}
