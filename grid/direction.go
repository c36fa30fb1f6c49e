package grid

import "fmt"

// Direction is one of the four orthogonal headings, clockwise from Up.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every heading in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Offset returns the (dRow, dCol) unit step for d.
func (d Direction) Offset() (int, int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	panic(fmt.Sprintf("grid: invalid direction %d", d))
}

// TurnRight rotates d a quarter turn clockwise.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// TurnLeft rotates d a quarter turn counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// String returns the arrow glyph for d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}
