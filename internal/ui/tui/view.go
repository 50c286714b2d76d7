package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/pane"
	"github.com/bnema/dockyard/internal/ui/theme"
)

// block is a rendered region whose lines are exactly W cells wide.
type block struct {
	cellRect
	lines []string
}

// fitLines pads or truncates s into exactly h lines of w cells.
func fitLines(s string, w, h int) []string {
	out := make([]string, h)
	lines := strings.Split(s, "\n")
	for i := range out {
		line := ""
		if i < len(lines) {
			line = ansi.Truncate(lines[i], w, "")
		}
		if pad := w - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		out[i] = line
	}
	return out
}

// compose stitches non overlapping blocks into a width x height screen.
func compose(width, height int, blocks []block) string {
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].X < blocks[j].X })

	var b strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		cursor := 0
		for _, bl := range blocks {
			if y < bl.Y || y >= bl.Y+bl.H || bl.X < cursor {
				continue
			}
			if gap := bl.X - cursor; gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			b.WriteString(bl.lines[y-bl.Y])
			cursor = bl.X + bl.W
		}
		if cursor < width {
			b.WriteString(strings.Repeat(" ", width-cursor))
		}
	}
	return b.String()
}

// bordered draws inner inside a border of style and returns c.W x c.H lines.
func bordered(style lipgloss.Style, c cellRect, inner []string) []string {
	if c.W < 2 || c.H < 2 {
		return fitLines("", c.W, c.H)
	}
	body := style.
		Width(c.W - 2).
		Height(c.H - 2).
		MaxWidth(c.W).
		MaxHeight(c.H).
		Render(strings.Join(inner, "\n"))
	return fitLines(body, c.W, c.H)
}

func renderPane(styles theme.Styles, pf paneFrame, dragging bool) block {
	snap := pf.pane.Snapshot()
	inner := pf.bounds.inset()

	var lines []string
	if !pf.tabBar.empty() {
		lines = append(lines, renderTabBar(styles, pf, snap))
	}

	var body []string
	if snap.ActiveItem == nil {
		body = fitLines(styles.Empty.Render("empty pane"), pf.body.W, pf.body.H)
	} else {
		body = fitLines(snap.ActiveItem.Render(pf.body.W, pf.body.H), pf.body.W, pf.body.H)
	}
	if dragging {
		body = overlay(styles, body, pf.body, toCells(pf.pane.DropOverlay(pf.body.rect())))
	}
	lines = append(lines, body...)

	style := styles.Pane
	switch {
	case snap.Zoomed:
		style = styles.ZoomedPane
	case snap.Focused:
		style = styles.FocusedPane
	}
	return block{cellRect: pf.bounds, lines: bordered(style, pf.bounds, fitLines(strings.Join(lines, "\n"), inner.W, inner.H))}
}

func renderTabBar(styles theme.Styles, pf paneFrame, snap pane.Snapshot) string {
	var b strings.Builder
	if pf.moreBefore {
		b.WriteString("‹")
	} else {
		b.WriteString(" ")
	}
	for _, hit := range pf.tabs {
		style := styles.Tab
		if snap.Tabs[hit.index].Active {
			style = styles.ActiveTab
			if snap.Focused {
				style = styles.SelectedTab
			}
		}
		b.WriteString(style.Render(hit.label))
	}
	line := fitLines(b.String(), pf.tabBar.W-scrollMarker, 1)[0]
	if pf.moreAfter {
		return line + "›"
	}
	return line + " "
}

// overlay paints the drop target area over body.
func overlay(styles theme.Styles, body []string, area, target cellRect) []string {
	x0 := max(target.X-area.X, 0)
	x1 := min(target.X+target.W-area.X, area.W)
	y0 := max(target.Y-area.Y, 0)
	y1 := min(target.Y+target.H-area.Y, len(body))
	if x1 <= x0 {
		return body
	}
	out := make([]string, len(body))
	copy(out, body)
	for y := y0; y < y1; y++ {
		line := body[y]
		mid := ansi.Strip(ansi.Cut(line, x0, x1))
		out[y] = ansi.Cut(line, 0, x0) + styles.DropOverlay.Render(mid) + ansi.Cut(line, x1, area.W)
	}
	return out
}

func renderDock(styles theme.Styles, df dockFrame) block {
	snap := df.dock.Snapshot()
	inner := df.bounds.inset()

	var lines []string
	if !df.tabBar.empty() {
		var b strings.Builder
		for _, hit := range df.tabs {
			style := styles.DockTab
			if snap.Tabs[hit.index].Active {
				style = styles.ActiveDock
			}
			b.WriteString(style.Render(hit.label))
		}
		lines = append(lines, b.String())
	}
	if snap.Panel != nil {
		lines = append(lines, fitLines(snap.Panel.Render(df.body.W, df.body.H), df.body.W, df.body.H)...)
	}

	style := styles.Dock
	if snap.Focused {
		style = styles.FocusedDock
	}
	return block{cellRect: df.bounds, lines: bordered(style, df.bounds, fitLines(strings.Join(lines, "\n"), inner.W, inner.H))}
}

func (m *Model) statusLine() string {
	left := fmt.Sprintf(" %d pane(s)", len(m.ws.Panes()))
	if pos, ok := m.ws.ActivePane().PixelPositionOfCursor(); ok {
		left += fmt.Sprintf(" · Ln %d", int(pos.Y)+1)
	}
	if it := m.ws.ActivePane().ActiveItem(); it != nil {
		if tooltip, ok := it.TabTooltip(); ok {
			left += " · " + tooltip
		}
	}
	if _, ok := m.ws.ZoomedPane(); ok {
		left += " · zoomed"
	}

	right := m.status
	if m.drag.kind == dragTab || m.drag.kind == dragSelection {
		right = "dragging " + m.drag.label
	}
	left = ansi.Truncate(left, max(m.frame.status.W-ansi.StringWidth(right)-2, 0), "…")
	gap := m.frame.status.W - ansi.StringWidth(left) - ansi.StringWidth(right) - 1
	line := left + strings.Repeat(" ", max(gap, 1)) + right + " "
	return m.styles.StatusBar.Render(fitLines(line, m.frame.status.W, 1)[0])
}

// View renders the last laid out frame.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 || m.height <= 0 {
		return "starting…"
	}

	dragging := m.drag.kind == dragTab || m.drag.kind == dragSelection
	blocks := make([]block, 0, len(m.frame.panes)+len(m.frame.docks)+1)
	for _, pf := range m.frame.panes {
		blocks = append(blocks, renderPane(m.styles, pf, dragging && pf.pane == m.drag.over))
	}
	for _, df := range m.frame.docks {
		blocks = append(blocks, renderDock(m.styles, df))
	}
	blocks = append(blocks, block{cellRect: m.frame.status, lines: []string{m.statusLine()}})
	return compose(m.width, m.height, blocks)
}

// dockLabel names a dock in status messages.
func dockLabel(position dock.Position) string {
	return position.String() + " dock"
}
