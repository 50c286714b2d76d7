package entity

// Axis is the main axis of a layout container.
type Axis int

const (
	AxisHorizontal Axis = iota // children laid out left to right
	AxisVertical               // children laid out top to bottom
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Invert returns the perpendicular axis.
func (a Axis) Invert() Axis {
	if a == AxisVertical {
		return AxisHorizontal
	}
	return AxisVertical
}

// SplitDirection indicates on which side of a pane a new pane appears.
type SplitDirection string

const (
	SplitUp    SplitDirection = "up"
	SplitRight SplitDirection = "right"
	SplitDown  SplitDirection = "down"
	SplitLeft  SplitDirection = "left"
)

// SplitDirections lists every direction in tie-break order.
var SplitDirections = []SplitDirection{SplitUp, SplitRight, SplitDown, SplitLeft}

// Axis returns the axis along which the split divides space.
func (d SplitDirection) Axis() Axis {
	switch d {
	case SplitUp, SplitDown:
		return AxisVertical
	default:
		return AxisHorizontal
	}
}

// IncreasesCoordinates reports whether the new pane goes after the existing
// one (right or below).
func (d SplitDirection) IncreasesCoordinates() bool {
	return d == SplitRight || d == SplitDown
}

// Valid reports whether d is one of the four directions.
func (d SplitDirection) Valid() bool {
	switch d {
	case SplitUp, SplitRight, SplitDown, SplitLeft:
		return true
	}
	return false
}
