package workspace

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/pane"
)

var (
	// ErrLastPane is returned when removing the only pane of the center.
	ErrLastPane = errors.New("cannot remove the last pane")
	// ErrPaneNotFound is returned for panes that are not in the group.
	ErrPaneNotFound = errors.New("pane not found")
	// ErrNothingToResize is returned when no split can absorb a resize.
	ErrNothingToResize = errors.New("nothing to resize")
)

const splitRatioRoundFactor = 100.0

// Node is a node of the center split tree. Leaves hold a pane, split nodes
// hold exactly two children.
type Node struct {
	ID       string
	Pane     *pane.Pane
	Parent   *Node
	Children []*Node
	Axis     entity.Axis
	Ratio    float64 // Share of the first child (left/top)
}

// IsLeaf reports whether the node holds a pane.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Pane != nil && len(n.Children) == 0
}

// Walk traverses the subtree in order. Returns early if fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
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

// PaneGroup is the binary split tree of the workspace center.
type PaneGroup struct {
	root  *Node
	idGen entity.IDGenerator
}

// NewPaneGroup creates a group holding a single pane.
func NewPaneGroup(p *pane.Pane, idGen entity.IDGenerator) *PaneGroup {
	return &PaneGroup{
		root:  &Node{ID: string(p.ID()), Pane: p},
		idGen: idGen,
	}
}

// Root returns the tree root.
func (g *PaneGroup) Root() *Node {
	return g.root
}

func (g *PaneGroup) find(p *pane.Pane) *Node {
	var found *Node
	g.root.Walk(func(n *Node) bool {
		if n.IsLeaf() && n.Pane == p {
			found = n
			return false
		}
		return true
	})
	return found
}

// Contains reports whether p is a leaf of the group.
func (g *PaneGroup) Contains(p *pane.Pane) bool {
	return g.find(p) != nil
}

// Panes returns the panes in layout order (left to right, top to bottom).
func (g *PaneGroup) Panes() []*pane.Pane {
	var out []*pane.Pane
	g.root.Walk(func(n *Node) bool {
		if n.IsLeaf() {
			out = append(out, n.Pane)
		}
		return true
	})
	return out
}

// Split places newPane next to target. Left and Up put the new pane first.
func (g *PaneGroup) Split(ctx context.Context, target, newPane *pane.Pane, direction entity.SplitDirection) error {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("direction", string(direction)).
		Str("target_id", string(target.ID())).
		Msg("splitting pane")

	if !direction.Valid() {
		return fmt.Errorf("invalid split direction %q", direction)
	}
	targetNode := g.find(target)
	if targetNode == nil {
		return fmt.Errorf("split %s: %w", target.ID(), ErrPaneNotFound)
	}

	newNode := &Node{ID: string(newPane.ID()), Pane: newPane}
	parentNode := &Node{
		ID:       g.idGen(),
		Axis:     direction.Axis(),
		Ratio:    0.5,
		Children: make([]*Node, 2),
	}
	if direction.IncreasesCoordinates() {
		parentNode.Children[0] = targetNode
		parentNode.Children[1] = newNode
	} else {
		parentNode.Children[0] = newNode
		parentNode.Children[1] = targetNode
	}

	newNode.Parent = parentNode
	oldParent := targetNode.Parent
	targetNode.Parent = parentNode

	if oldParent == nil {
		g.root = parentNode
	} else {
		for i, child := range oldParent.Children {
			if child == targetNode {
				oldParent.Children[i] = parentNode
				break
			}
		}
		parentNode.Parent = oldParent
	}

	log.Info().
		Str("new_pane_id", string(newPane.ID())).
		Str("parent_id", parentNode.ID).
		Str("direction", string(direction)).
		Msg("pane split completed")
	return nil
}

// Remove takes p out of the tree and promotes its sibling.
func (g *PaneGroup) Remove(ctx context.Context, p *pane.Pane) error {
	log := logging.FromContext(ctx)
	node := g.find(p)
	if node == nil {
		return fmt.Errorf("remove %s: %w", p.ID(), ErrPaneNotFound)
	}
	parent := node.Parent
	if parent == nil {
		return ErrLastPane
	}

	var sibling *Node
	for _, child := range parent.Children {
		if child != node {
			sibling = child
			break
		}
	}
	if sibling == nil {
		return fmt.Errorf("no sibling found for pane %s", p.ID())
	}

	grandparent := parent.Parent
	if grandparent == nil {
		g.root = sibling
		sibling.Parent = nil
	} else {
		for i, child := range grandparent.Children {
			if child == parent {
				grandparent.Children[i] = sibling
				break
			}
		}
		sibling.Parent = grandparent
	}

	log.Info().
		Str("closed_pane_id", string(p.ID())).
		Str("promoted_sibling_id", sibling.ID).
		Msg("pane removed, sibling promoted")
	return nil
}

// FirstPane returns the first leaf under n.
func FirstPane(n *Node) *pane.Pane {
	var out *pane.Pane
	n.Walk(func(node *Node) bool {
		if node.IsLeaf() {
			out = node.Pane
			return false
		}
		return true
	})
	return out
}

// SetRatio sets the first-child share of split node nodeID, clamped so
// that neither side drops under minPanePercent.
func (g *PaneGroup) SetRatio(ctx context.Context, nodeID string, ratio, minPanePercent float64) error {
	var splitNode *Node
	g.root.Walk(func(n *Node) bool {
		if n.ID == nodeID {
			splitNode = n
			return false
		}
		return true
	})
	if splitNode == nil || splitNode.IsLeaf() {
		return fmt.Errorf("split node not found: %s", nodeID)
	}

	minRatio := minPanePercent / 100.0
	oldRatio := splitNode.Ratio
	splitNode.Ratio = roundSplitRatio(clampFloat64(ratio, minRatio, 1.0-minRatio))

	logging.FromContext(ctx).Debug().
		Str("split_node_id", nodeID).
		Float64("old_ratio", oldRatio).
		Float64("new_ratio", splitNode.Ratio).
		Msg("split ratio set")
	return nil
}

// Resize moves the nearest divider on direction's axis around p by
// stepPercent. Right and Down move the divider towards the end.
func (g *PaneGroup) Resize(ctx context.Context, p *pane.Pane, direction entity.SplitDirection, stepPercent, minPanePercent float64) error {
	node := g.find(p)
	if node == nil {
		return fmt.Errorf("resize %s: %w", p.ID(), ErrPaneNotFound)
	}
	splitNode := findNearestSplitForAxis(node, direction.Axis())
	if splitNode == nil {
		return ErrNothingToResize
	}

	delta := math.Abs(stepPercent) / 100.0
	if !direction.IncreasesCoordinates() {
		delta = -delta
	}
	minRatio := minPanePercent / 100.0
	oldRatio := splitNode.Ratio
	splitNode.Ratio = roundSplitRatio(clampFloat64(splitNode.Ratio+delta, minRatio, 1.0-minRatio))

	logging.FromContext(ctx).Debug().
		Str("direction", string(direction)).
		Float64("old_ratio", oldRatio).
		Float64("new_ratio", splitNode.Ratio).
		Msg("pane resized")
	return nil
}

func findNearestSplitForAxis(node *Node, axis entity.Axis) *Node {
	for current := node; current != nil && current.Parent != nil; current = current.Parent {
		if current.Parent.Axis == axis {
			return current.Parent
		}
	}
	return nil
}

func roundSplitRatio(ratio float64) float64 {
	return math.Round(ratio*splitRatioRoundFactor) / splitRatioRoundFactor
}

func clampFloat64(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// PaneBounds pairs a pane with its rectangle.
type PaneBounds struct {
	Pane   *pane.Pane
	Bounds entity.Rect
}

// Divider is the draggable boundary between the two children of a split.
type Divider struct {
	NodeID string
	Axis   entity.Axis
	// Bounds of the parent split node.
	Parent entity.Rect
	// Offset of the divider along Axis, in absolute coordinates.
	Offset float64
}

// Bounds lays the tree out inside area.
func (g *PaneGroup) Bounds(area entity.Rect) []PaneBounds {
	var out []PaneBounds
	layoutNode(g.root, area, func(n *Node, r entity.Rect) {
		if n.IsLeaf() {
			out = append(out, PaneBounds{Pane: n.Pane, Bounds: r})
		}
	})
	return out
}

// Dividers returns every split divider inside area.
func (g *PaneGroup) Dividers(area entity.Rect) []Divider {
	var out []Divider
	layoutNode(g.root, area, func(n *Node, r entity.Rect) {
		if n.IsLeaf() {
			return
		}
		first, _ := r.SplitAt(n.Axis, n.Ratio)
		offset := first.Right()
		if n.Axis == entity.AxisVertical {
			offset = first.Bottom()
		}
		out = append(out, Divider{NodeID: n.ID, Axis: n.Axis, Parent: r, Offset: offset})
	})
	return out
}

func layoutNode(n *Node, r entity.Rect, visit func(*Node, entity.Rect)) {
	if n == nil {
		return
	}
	visit(n, r)
	if len(n.Children) != 2 {
		return
	}
	first, second := r.SplitAt(n.Axis, n.Ratio)
	layoutNode(n.Children[0], first, visit)
	layoutNode(n.Children[1], second, visit)
}
