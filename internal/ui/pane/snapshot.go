package pane

import (
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/ui/item"
)

// Key contexts used to scope key bindings.
const (
	KeyContextPane      = "Pane"
	KeyContextEmptyPane = "EmptyPane"
)

// Tab is one entry of the rendered tab strip.
type Tab struct {
	ItemID     entity.ItemID
	Label      string
	Tooltip    string
	HasTooltip bool
	Detail     int
	Active     bool
}

// Snapshot is the read-only view of a pane used by the render pass.
type Snapshot struct {
	PaneID             entity.PaneID
	Tabs               []Tab
	ActiveIndex        int
	ActiveItem         item.Item
	ShowTabBar         bool
	Zoomed             bool
	Focused            bool
	DragSplitDirection entity.SplitDirection
	ScrollOffset       int
	KeyContext         []string
}

// Snapshot captures the pane state for one frame.
func (p *Pane) Snapshot() Snapshot {
	details := TabDetails(p.items)
	tabs := make([]Tab, len(p.items))
	for i, it := range p.items {
		detail := details[i]
		active := i == p.activeIndex
		tooltip, hasTooltip := it.TabTooltip()
		tabs[i] = Tab{
			ItemID:     it.ItemID(),
			Label:      it.TabContent(item.TabContentParams{Detail: &detail, Selected: active}),
			Tooltip:    tooltip,
			HasTooltip: hasTooltip,
			Detail:     detail,
			Active:     active,
		}
	}

	return Snapshot{
		PaneID:             p.id,
		Tabs:               tabs,
		ActiveIndex:        p.activeIndex,
		ActiveItem:         p.ActiveItem(),
		ShowTabBar:         p.ShouldShowTabBar(),
		Zoomed:             p.zoomed,
		Focused:            p.HasFocus(),
		DragSplitDirection: p.dragSplitDirection,
		ScrollOffset:       p.scrollOffset,
		KeyContext:         p.KeyContext(),
	}
}

// KeyContext returns the key contexts active for this pane.
func (p *Pane) KeyContext() []string {
	if len(p.items) == 0 {
		return []string{KeyContextPane, KeyContextEmptyPane}
	}
	return []string{KeyContextPane}
}

// ShouldShowTabBar consults the visibility predicate.
func (p *Pane) ShouldShowTabBar() bool {
	if p.showTabBar == nil {
		return true
	}
	return p.showTabBar(p)
}

// ScrollOffset is the index of the first visible tab.
func (p *Pane) ScrollOffset() int {
	return p.scrollOffset
}

// SetScrollOffset scrolls the tab strip.
func (p *Pane) SetScrollOffset(offset int) {
	p.scrollOffset = max(min(offset, len(p.items)-1), 0)
}

// AutoscrollTabs keeps the active tab inside a window of visible tabs after
// an activation. It returns the resulting offset.
func (p *Pane) AutoscrollTabs(visible int) int {
	if !p.autoscroll || visible <= 0 {
		return p.scrollOffset
	}
	p.autoscroll = false
	switch {
	case p.activeIndex < p.scrollOffset:
		p.scrollOffset = p.activeIndex
	case p.activeIndex >= p.scrollOffset+visible:
		p.scrollOffset = p.activeIndex - visible + 1
	}
	return p.scrollOffset
}
