package entity

import "math"

// Point is a position in layout units (terminal cells for the TUI host).
type Point struct {
	X, Y float64
}

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Origin Point
	Size   Size
}

// NewRect builds a rectangle from its origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

func (r Rect) Left() float64   { return r.Origin.X }
func (r Rect) Top() float64    { return r.Origin.Y }
func (r Rect) Right() float64  { return r.Origin.X + r.Size.Width }
func (r Rect) Bottom() float64 { return r.Origin.Y + r.Size.Height }

// Contains reports whether p lies inside r (right/bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// Relative converts p to coordinates relative to r's origin.
func (r Rect) Relative(p Point) Point {
	return Point{X: p.X - r.Origin.X, Y: p.Y - r.Origin.Y}
}

// SplitAt divides r along axis, giving the first part ratio of the space.
func (r Rect) SplitAt(axis Axis, ratio float64) (Rect, Rect) {
	if axis == AxisHorizontal {
		first := math.Round(r.Size.Width * ratio)
		return NewRect(r.Origin.X, r.Origin.Y, first, r.Size.Height),
			NewRect(r.Origin.X+first, r.Origin.Y, r.Size.Width-first, r.Size.Height)
	}
	first := math.Round(r.Size.Height * ratio)
	return NewRect(r.Origin.X, r.Origin.Y, r.Size.Width, first),
		NewRect(r.Origin.X, r.Origin.Y+first, r.Size.Width, r.Size.Height-first)
}

// PaneRect represents a pane's screen position and size.
// Used for geometric navigation to find adjacent panes by position.
type PaneRect struct {
	PaneID PaneID
	X, Y   int // Top-left position relative to the center area
	W, H   int // Width and height
}

// PaneRectFrom rounds a float rectangle to cells.
func PaneRectFrom(id PaneID, r Rect) PaneRect {
	return PaneRect{
		PaneID: id,
		X:      int(math.Round(r.Origin.X)),
		Y:      int(math.Round(r.Origin.Y)),
		W:      int(math.Round(r.Size.Width)),
		H:      int(math.Round(r.Size.Height)),
	}
}

// Center returns the center point of the rectangle.
func (r PaneRect) Center() (cx, cy int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// OverlapsVertically reports whether the two rectangles share rows.
func (r PaneRect) OverlapsVertically(o PaneRect) bool {
	return r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// OverlapsHorizontally reports whether the two rectangles share columns.
func (r PaneRect) OverlapsHorizontally(o PaneRect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W
}
