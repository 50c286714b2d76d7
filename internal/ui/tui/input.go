package tui

import (
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/content"
	"github.com/bnema/dockyard/internal/ui/dock"
	"github.com/bnema/dockyard/internal/ui/item"
	"github.com/bnema/dockyard/internal/ui/pane"
	"github.com/bnema/dockyard/internal/ui/workspace"
)

const (
	doubleClickThreshold = 400 * time.Millisecond
	wheelStep            = 3
)

var errFrozenLayout = errors.New("snapshot cannot be restored into")

type dragKind int

const (
	dragNone dragKind = iota
	dragTab
	dragSelection
	dragDock
	dragDivider
)

type dragState struct {
	kind    dragKind
	payload any
	label   string
	// started is set by the first motion after the press.
	started bool
	over    *pane.Pane
	dock    dock.Position
	divider workspace.Divider
}

type click struct {
	at   time.Time
	x, y int
}

// cellPoint is the center of a cell in layout coordinates.
func cellPoint(x, y int) entity.Point {
	return entity.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.projectFocused() && m.handleProjectKey(msg) {
		return nil
	}

	action, index, ok := m.keymap.Lookup(msg)
	if !ok {
		m.scrollActiveItem(msg)
		return nil
	}
	switch action {
	case ActionQuit:
		return m.quit()
	case ActionSaveLayout:
		return m.saveLayout()
	}
	if !m.ws.Dispatch(m.ctx, action, index) {
		logging.FromContext(m.ctx).Debug().Str("action", action).Msg("action not handled")
	}
	return nil
}

func (m *Model) projectFocused() bool {
	p := m.panels.Project
	return p != nil && p.FocusHandle().ContainsFocused()
}

func (m *Model) handleProjectKey(msg tea.KeyMsg) bool {
	p := m.panels.Project
	switch {
	case key.Matches(msg, m.panelKeys.Up):
		p.MoveCursor(-1)
	case key.Matches(msg, m.panelKeys.Down):
		p.MoveCursor(1)
	case key.Matches(msg, m.panelKeys.Mark):
		p.ToggleMark()
	case key.Matches(msg, m.panelKeys.Open):
		m.openProjectSelection()
	default:
		return false
	}
	return true
}

// openProjectSelection opens the marked entries, or the one under the
// cursor, at the end of the active pane.
func (m *Model) openProjectSelection() {
	p := m.panels.Project
	sel, ok := p.Selection()
	if !ok {
		return
	}
	target := m.ws.ActivePane()
	m.ws.OpenPaths(m.ctx, target, sel.Paths(), target.Len())
	p.ClearMarks()
}

func (m *Model) activeScrollable() (content.Scrollable, bool) {
	active := m.ws.ActivePane()
	if !active.HasFocus() {
		return nil, false
	}
	return item.ActAs[content.Scrollable](active.ActiveItem())
}

func (m *Model) scrollActiveItem(msg tea.KeyMsg) {
	s, ok := m.activeScrollable()
	if !ok {
		return
	}
	page := 1
	if pf, ok := m.frame.paneFrame(m.ws.ActivePane()); ok {
		page = max(pf.body.H-1, 1)
	}
	switch {
	case key.Matches(msg, m.scrollKeys.Up):
		s.ScrollBy(-1)
	case key.Matches(msg, m.scrollKeys.Down):
		s.ScrollBy(1)
	case key.Matches(msg, m.scrollKeys.PageUp):
		s.ScrollBy(-page)
	case key.Matches(msg, m.scrollKeys.PageDown):
		s.ScrollBy(page)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.press(msg.X, msg.Y)
		case tea.MouseButtonWheelUp:
			m.wheel(msg.X, msg.Y, -wheelStep)
		case tea.MouseButtonWheelDown:
			m.wheel(msg.X, msg.Y, wheelStep)
		}
	case tea.MouseActionMotion:
		m.motion(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.release(msg.X, msg.Y)
	}
}

func (m *Model) isDoubleClick(x, y int) bool {
	now := m.now()
	prev := m.lastClick
	m.lastClick = click{at: now, x: x, y: y}
	if prev.at.IsZero() || prev.x != x || prev.y != y {
		return false
	}
	if now.Sub(prev.at) > doubleClickThreshold {
		return false
	}
	m.lastClick = click{}
	return true
}

func (m *Model) press(x, y int) {
	double := m.isDoubleClick(x, y)
	m.drag = dragState{}

	for _, df := range m.frame.docks {
		if !df.handle.contains(x, y) {
			continue
		}
		if double {
			df.dock.HandleDoubleClick(m.ctx)
			m.status = dockLabel(df.position) + " reset"
			return
		}
		m.drag = dragState{kind: dragDock, dock: df.position}
		return
	}
	for _, dv := range m.frame.dividers {
		if dv.hit.contains(x, y) {
			m.drag = dragState{kind: dragDivider, divider: dv.divider}
			return
		}
	}
	if df, ok := m.frame.dockAt(x, y); ok {
		m.pressDock(df, x, y, double)
		return
	}
	if pf, ok := m.frame.paneAt(x, y); ok {
		m.pressPane(pf, x, y)
	}
}

func (m *Model) pressDock(df dockFrame, x, y int, double bool) {
	if df.tabBar.contains(x, y) {
		for _, hit := range df.tabs {
			if x >= hit.x0 && x < hit.x1 {
				df.dock.ActivatePanel(m.ctx, hit.index)
				break
			}
		}
	}
	panel, ok := df.dock.VisiblePanel()
	if !ok {
		return
	}
	panel.FocusHandle().Focus()

	project := m.panels.Project
	if project == nil || panel != dock.Panel(project) || !df.body.contains(x, y) {
		return
	}
	ix, ok := project.EntryAtRow(y - df.body.Y)
	if !ok {
		return
	}
	project.SetCursor(ix)
	if double {
		m.openProjectSelection()
		return
	}
	if sel, ok := project.Selection(); ok {
		m.drag = dragState{kind: dragSelection, payload: sel, label: selectionLabel(sel)}
	}
}

func selectionLabel(sel pane.DraggedSelection) string {
	paths := sel.Paths()
	if len(paths) == 1 {
		return paths[0]
	}
	return strconv.Itoa(len(paths)) + " files"
}

func (m *Model) pressPane(pf paneFrame, x, y int) {
	if !pf.tabBar.contains(x, y) {
		pf.pane.Focus()
		return
	}
	for _, hit := range pf.tabs {
		if x < hit.x0 || x >= hit.x1 {
			continue
		}
		it, ok := pf.pane.ItemAt(hit.index)
		if !ok {
			return
		}
		snap := pf.pane.Snapshot()
		dragged := pane.DraggedTab{
			Pane:     pf.pane,
			Item:     it,
			Index:    hit.index,
			Detail:   snap.Tabs[hit.index].Detail,
			IsActive: hit.index == snap.ActiveIndex,
		}
		pf.pane.ActivateItem(m.ctx, hit.index, true, true)
		m.drag = dragState{kind: dragTab, payload: dragged, label: dragged.Label()}
		return
	}
	pf.pane.Focus()
}

func (m *Model) motion(x, y int) {
	switch m.drag.kind {
	case dragDock:
		m.ws.Dock(m.drag.dock).HandleDrag(m.ctx, m.frame.layout.Area, cellPoint(x, y))
	case dragDivider:
		m.dragDivider(x, y)
	case dragTab, dragSelection:
		m.drag.started = true
		m.hover(x, y)
	}
}

func (m *Model) dragDivider(x, y int) {
	d := m.drag.divider
	var ratio float64
	if d.Axis == entity.AxisVertical {
		if d.Parent.Size.Height <= 0 {
			return
		}
		ratio = (float64(y) - d.Parent.Top()) / d.Parent.Size.Height
	} else {
		if d.Parent.Size.Width <= 0 {
			return
		}
		ratio = (float64(x) - d.Parent.Left()) / d.Parent.Size.Width
	}
	if err := m.ws.SetSplitRatio(m.ctx, d.NodeID, ratio); err != nil {
		logging.FromContext(m.ctx).Debug().Err(err).Str("node_id", d.NodeID).Msg("divider drag ignored")
	}
}

// hover tracks the pane under a dragged payload and its pending split.
func (m *Model) hover(x, y int) {
	pf, ok := m.frame.paneAt(x, y)
	if m.drag.over != nil && (!ok || pf.pane != m.drag.over) {
		m.drag.over.ClearDragSplit()
		m.drag.over = nil
	}
	if !ok {
		return
	}
	m.drag.over = pf.pane
	if pf.body.contains(x, y) {
		pf.pane.HandleDragMove(pf.body.rect(), cellPoint(x, y))
	} else {
		pf.pane.ClearDragSplit()
	}
}

func (m *Model) release(x, y int) {
	d := m.drag
	m.drag = dragState{}
	if d.kind != dragTab && d.kind != dragSelection {
		return
	}
	if !d.started {
		return
	}

	pf, ok := m.frame.paneAt(x, y)
	if !ok {
		if d.over != nil {
			d.over.ClearDragSplit()
		}
		return
	}
	index := pf.pane.Len()
	if pf.tabBar.contains(x, y) {
		index = pf.tabIndexAt(x)
	}
	pf.pane.HandleDrop(m.ctx, d.payload, index)
	if d.kind == dragSelection && m.panels.Project != nil {
		m.panels.Project.ClearMarks()
	}
}

func (m *Model) wheel(x, y, delta int) {
	if df, ok := m.frame.dockAt(x, y); ok {
		panel, visible := df.dock.VisiblePanel()
		if project := m.panels.Project; visible && project != nil && panel == dock.Panel(project) {
			project.MoveCursor(delta)
		}
		return
	}
	pf, ok := m.frame.paneAt(x, y)
	if !ok {
		return
	}
	if pf.tabBar.contains(x, y) {
		step := 1
		if delta < 0 {
			step = -1
		}
		pf.pane.SetScrollOffset(pf.pane.ScrollOffset() + step)
		return
	}
	if s, ok := item.ActAs[content.Scrollable](pf.pane.ActiveItem()); ok {
		s.ScrollBy(delta)
	}
}
