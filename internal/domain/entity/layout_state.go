package entity

import "time"

// LayoutStateVersion is the current schema version for layout snapshots.
// Increment when making breaking changes to the serialization format.
const LayoutStateVersion = 1

// LayoutState is a complete snapshot of a workspace layout: the center pane
// tree and the three docks. It is serialized to JSON and stored in the database.
type LayoutState struct {
	Version      int                `json:"version"`
	Name         string             `json:"name"`
	WorkspaceID  WorkspaceID        `json:"workspace_id"`
	Center       *PaneGroupSnapshot `json:"center"`
	ActivePaneID PaneID             `json:"active_pane_id"`
	Docks        []DockSnapshot     `json:"docks"`
	SavedAt      time.Time          `json:"saved_at"`
}

// PaneGroupSnapshot captures a node of the center split tree.
type PaneGroupSnapshot struct {
	ID       string               `json:"id"`
	Pane     *PaneSnapshot        `json:"pane,omitempty"`     // Non-nil for leaf nodes
	Children []*PaneGroupSnapshot `json:"children,omitempty"` // Two entries for split nodes
	Axis     Axis                 `json:"axis"`
	Ratio    float64              `json:"ratio"`
}

// PaneSnapshot captures the tab strip of one pane.
type PaneSnapshot struct {
	ID          PaneID         `json:"id"`
	Items       []ItemSnapshot `json:"items"`
	ActiveIndex int            `json:"active_index"`
	Zoomed      bool           `json:"zoomed"`
}

// ItemSnapshot is enough to rebuild an item through its kind's factory.
type ItemSnapshot struct {
	Kind  string `json:"kind"`
	Title string `json:"title"`
	Data  string `json:"data,omitempty"`
}

// DockSnapshot captures a dock and its panels.
type DockSnapshot struct {
	Position    string          `json:"position"`
	Open        bool            `json:"open"`
	ActiveIndex int             `json:"active_index"`
	Panels      []PanelSnapshot `json:"panels"`
}

// PanelSnapshot captures a panel by its persistent name.
type PanelSnapshot struct {
	Name   string   `json:"name"`
	Size   *float64 `json:"size,omitempty"`
	Zoomed bool     `json:"zoomed"`
}

// Walk traverses the tree calling fn for each node. Returns early if fn returns false.
func (n *PaneGroupSnapshot) Walk(fn func(*PaneGroupSnapshot) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// IsLeaf returns true if this node holds a pane.
func (n *PaneGroupSnapshot) IsLeaf() bool {
	return n != nil && n.Pane != nil && len(n.Children) == 0
}

// CountPanes returns the number of panes in the snapshot's center tree.
func (s *LayoutState) CountPanes() int {
	if s == nil {
		return 0
	}
	count := 0
	s.Center.Walk(func(node *PaneGroupSnapshot) bool {
		if node.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// CountItems returns the number of items across all panes.
func (s *LayoutState) CountItems() int {
	if s == nil {
		return 0
	}
	count := 0
	s.Center.Walk(func(node *PaneGroupSnapshot) bool {
		if node.Pane != nil {
			count += len(node.Pane.Items)
		}
		return true
	})
	return count
}

// Dock returns the snapshot of the dock at position, if present.
func (s *LayoutState) Dock(position string) (DockSnapshot, bool) {
	if s == nil {
		return DockSnapshot{}, false
	}
	for _, d := range s.Docks {
		if d.Position == position {
			return d, true
		}
	}
	return DockSnapshot{}, false
}

// LayoutInfo is the summary row listed by the layouts command.
type LayoutInfo struct {
	Name      string
	PaneCount int
	ItemCount int
	UpdatedAt time.Time
}
