package tui

import (
	"math"

	"github.com/charmbracelet/x/ansi"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/pane"
	"github.com/bnema/dockyard/internal/ui/workspace"
)

const (
	maxTabWidth  = 24
	scrollMarker = 1
)

// cellRect is a rectangle of terminal cells.
type cellRect struct {
	X, Y, W, H int
}

func toCells(r entity.Rect) cellRect {
	x := int(math.Round(r.Left()))
	y := int(math.Round(r.Top()))
	return cellRect{
		X: x,
		Y: y,
		W: max(int(math.Round(r.Right()))-x, 0),
		H: max(int(math.Round(r.Bottom()))-y, 0),
	}
}

func (c cellRect) rect() entity.Rect {
	return entity.NewRect(float64(c.X), float64(c.Y), float64(c.W), float64(c.H))
}

func (c cellRect) contains(x, y int) bool {
	return x >= c.X && x < c.X+c.W && y >= c.Y && y < c.Y+c.H
}

func (c cellRect) empty() bool {
	return c.W <= 0 || c.H <= 0
}

// inset removes the border.
func (c cellRect) inset() cellRect {
	return cellRect{X: c.X + 1, Y: c.Y + 1, W: max(c.W-2, 0), H: max(c.H-2, 0)}
}

// tabHit is the column range of one tab, in absolute cells.
type tabHit struct {
	index  int
	x0, x1 int
	label  string
}

type paneFrame struct {
	pane   *pane.Pane
	bounds cellRect
	tabBar cellRect
	body   cellRect
	tabs   []tabHit
	// more reports tabs hidden before and after the strip.
	moreBefore, moreAfter bool
}

// tabIndexAt returns the insertion index for a drop at column x of the tab
// bar: the hovered tab, or the end of the strip.
func (f paneFrame) tabIndexAt(x int) int {
	for _, t := range f.tabs {
		if x >= t.x0 && x < t.x1 {
			return t.index
		}
	}
	return f.pane.Len()
}

type dockFrame struct {
	position dock.Position
	dock     *dock.Dock
	bounds   cellRect
	handle   cellRect
	tabBar   cellRect
	body     cellRect
	tabs     []tabHit
}

type dividerFrame struct {
	divider workspace.Divider
	hit     cellRect
}

// frame is the hit geometry of the last laid out frame.
type frame struct {
	area     cellRect
	layout   workspace.Layout
	panes    []paneFrame
	docks    []dockFrame
	dividers []dividerFrame
	status   cellRect
}

func (f *frame) paneAt(x, y int) (paneFrame, bool) {
	for _, pf := range f.panes {
		if pf.bounds.contains(x, y) {
			return pf, true
		}
	}
	return paneFrame{}, false
}

func (f *frame) paneFrame(p *pane.Pane) (paneFrame, bool) {
	for _, pf := range f.panes {
		if pf.pane == p {
			return pf, true
		}
	}
	return paneFrame{}, false
}

func (f *frame) dockAt(x, y int) (dockFrame, bool) {
	for _, df := range f.docks {
		if df.bounds.contains(x, y) {
			return df, true
		}
	}
	return dockFrame{}, false
}

// layoutFrame computes the geometry of one frame over width x height cells.
// The last row is the status bar.
func layoutFrame(w *workspace.Workspace, width, height int) frame {
	area := cellRect{W: max(width, 0), H: max(height-1, 0)}
	f := frame{area: area, status: cellRect{Y: area.H, W: area.W, H: 1}}
	f.layout = w.Layout(area.rect())

	for _, pb := range f.layout.Panes {
		f.panes = append(f.panes, layoutPane(pb.Pane, toCells(pb.Bounds)))
	}
	for _, pos := range dock.Positions {
		r, ok := f.layout.Docks[pos]
		if !ok {
			continue
		}
		f.docks = append(f.docks, layoutDock(w.Dock(pos), toCells(r), f.layout.ZoomedPanel == nil))
	}
	for _, d := range f.layout.Dividers {
		f.dividers = append(f.dividers, dividerFrame{divider: d, hit: dividerHit(d)})
	}
	return f
}

// dividerHit covers the two border cells that meet at the divider.
func dividerHit(d workspace.Divider) cellRect {
	parent := toCells(d.Parent)
	offset := int(math.Round(d.Offset))
	if d.Axis == entity.AxisVertical {
		return cellRect{X: parent.X, Y: offset - 1, W: parent.W, H: 2}
	}
	return cellRect{X: offset - 1, Y: parent.Y, W: 2, H: parent.H}
}

func layoutPane(p *pane.Pane, bounds cellRect) paneFrame {
	pf := paneFrame{pane: p, bounds: bounds, body: bounds.inset()}
	if !p.ShouldShowTabBar() || pf.body.H < 2 {
		return pf
	}
	pf.tabBar = cellRect{X: pf.body.X, Y: pf.body.Y, W: pf.body.W, H: 1}
	pf.body.Y++
	pf.body.H--

	snap := p.Snapshot()
	visible := fittingTabs(snap.Tabs, snap.ScrollOffset, pf.tabBar.W)
	offset := p.AutoscrollTabs(max(visible, 1))
	pf.tabs, pf.moreAfter = placeTabs(snap.Tabs, offset, pf.tabBar)
	pf.moreBefore = offset > 0
	return pf
}

func tabLabel(label string) string {
	return ansi.Truncate(label, maxTabWidth, "…")
}

func tabWidth(label string) int {
	// one cell of padding on each side
	return ansi.StringWidth(tabLabel(label)) + 2
}

// fittingTabs counts the tabs that fit in width starting at offset.
func fittingTabs(tabs []pane.Tab, offset, width int) int {
	width -= 2 * scrollMarker
	n := 0
	for i := max(offset, 0); i < len(tabs); i++ {
		width -= tabWidth(tabs[i].Label)
		if width < 0 {
			break
		}
		n++
	}
	return n
}

func placeTabs(tabs []pane.Tab, offset int, bar cellRect) ([]tabHit, bool) {
	var hits []tabHit
	x := bar.X + scrollMarker
	limit := bar.X + bar.W - scrollMarker
	for i := max(offset, 0); i < len(tabs); i++ {
		w := tabWidth(tabs[i].Label)
		if x+w > limit {
			return hits, true
		}
		hits = append(hits, tabHit{index: i, x0: x, x1: x + w, label: tabLabel(tabs[i].Label)})
		x += w
	}
	return hits, false
}

func layoutDock(d *dock.Dock, bounds cellRect, resizable bool) dockFrame {
	df := dockFrame{position: d.Position(), dock: d, bounds: bounds, body: bounds.inset()}
	if resizable && d.Resizeable() {
		switch d.Position() {
		case dock.PositionLeft:
			df.handle = cellRect{X: bounds.X + bounds.W - 1, Y: bounds.Y, W: 1, H: bounds.H}
		case dock.PositionRight:
			df.handle = cellRect{X: bounds.X, Y: bounds.Y, W: 1, H: bounds.H}
		default:
			df.handle = cellRect{X: bounds.X, Y: bounds.Y, W: bounds.W, H: 1}
		}
	}
	if df.body.H < 2 {
		return df
	}
	df.tabBar = cellRect{X: df.body.X, Y: df.body.Y, W: df.body.W, H: 1}
	df.body.Y++
	df.body.H--

	x := df.tabBar.X
	for i, tab := range d.Snapshot().Tabs {
		w := tabWidth(tab.Name)
		if x+w > df.tabBar.X+df.tabBar.W {
			break
		}
		df.tabs = append(df.tabs, tabHit{index: i, x0: x, x1: x + w, label: tabLabel(tab.Name)})
		x += w
	}
	return df
}
