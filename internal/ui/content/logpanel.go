package content

import (
	"strings"

	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/focus"
	"github.com/charmbracelet/x/ansi"
)

// PanelLog is the persistent name of the log panel.
const PanelLog = "log"

// LogPanel tails the in-memory log buffer.
type LogPanel struct {
	dock.PanelBase

	buffer *logging.LogBuffer
}

var _ dock.Panel = (*LogPanel)(nil)

func NewLogPanel(fm *focus.Manager, cfg dock.PanelConfig, buffer *logging.LogBuffer) *LogPanel {
	cfg.Name = PanelLog
	if cfg.Icon == "" {
		cfg.Icon = "log"
	}
	return &LogPanel{
		PanelBase: dock.NewPanelBase(cfg, fm.NewHandle(nil)),
		buffer:    buffer,
	}
}

func (l *LogPanel) Render(width, height int) string {
	if width <= 0 || height <= 0 || l.buffer == nil {
		return ""
	}
	lines := l.buffer.Lines(height)
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "…")
	}
	return strings.Join(lines, "\n")
}
