package dock

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Position is the window edge a dock is attached to.
type Position int

const (
	PositionLeft Position = iota
	PositionBottom
	PositionRight
)

// Positions lists every dock position.
var Positions = []Position{PositionLeft, PositionBottom, PositionRight}

func (p Position) String() string {
	switch p {
	case PositionLeft:
		return "left"
	case PositionBottom:
		return "bottom"
	case PositionRight:
		return "right"
	default:
		return fmt.Sprintf("position(%d)", int(p))
	}
}

// ParsePosition parses a lowercase position name.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return PositionLeft, nil
	case "bottom":
		return PositionBottom, nil
	case "right":
		return PositionRight, nil
	default:
		return 0, fmt.Errorf("invalid dock position %q", s)
	}
}

// Axis is the axis along which the dock's size is measured.
func (p Position) Axis() entity.Axis {
	if p == PositionBottom {
		return entity.AxisVertical
	}
	return entity.AxisHorizontal
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	switch p {
	case PositionLeft, PositionBottom, PositionRight:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("invalid dock position %d", int(p))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	parsed, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Side is an edge of a rectangle.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

func (s Side) String() string {
	return [...]string{"top", "right", "bottom", "left"}[s]
}

// BorderSide is the edge facing the center: where the border and the
// resize handle go.
func (p Position) BorderSide() Side {
	switch p {
	case PositionLeft:
		return SideRight
	case PositionRight:
		return SideLeft
	default:
		return SideTop
	}
}
