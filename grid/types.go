package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and lookups.
// Every structural error wraps ErrMalformedGrid so callers can test for the
// whole family with a single errors.Is.
var (
	// ErrMalformedGrid is the umbrella error for inconsistent grid input.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: input grid must have at least one row and one column", ErrMalformedGrid)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedGrid)
	// ErrSymbolNotFound indicates a required marker cell is missing.
	ErrSymbolNotFound = fmt.Errorf("%w: required symbol not found", ErrMalformedGrid)
	// ErrBadConnectivity indicates an Options.Conn outside ConnGrid, Conn4 and Conn8.
	ErrBadConnectivity = errors.New("grid: unknown connectivity")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
// The zero value, ConnGrid, means "whatever the Grid was built with".
type Connectivity int

const (
	// ConnGrid defers to the connectivity stored in the Grid.
	ConnGrid Connectivity = iota
	// Conn4 uses 4-directional connectivity: Up, Right, Down, Left.
	Conn4
	// Conn8 uses 8-directional connectivity, clockwise from Up.
	Conn8
)

// String returns "grid", "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case ConnGrid:
		return "grid"
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	}

	return fmt.Sprintf("Connectivity(%d)", int(c))
}

// Point is a (row, col) coordinate. It is comparable and usable as a map key.
type Point struct {
	Row, Col int
}

// Add returns p shifted by (dr, dc).
func (p Point) Add(dr, dc int) Point {
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Neighbor is an in-bounds adjacent cell paired with its symbol.
type Neighbor struct {
	Point
	Symbol byte
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Conn is the connectivity used by Neighbors when asked for ConnGrid.
	// ConnGrid here means Conn4.
	Conn Connectivity
}

// DefaultOptions returns Options with Conn=Conn4.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}

// Grid is an immutable dense 2D array of byte symbols.
// The zero Grid is invalid; build one with New or FromLines.
type Grid struct {
	width, height int
	conn          Connectivity
	cells         []byte
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Conn returns the connectivity the grid was built with (Conn4 or Conn8).
func (g *Grid) Conn() Connectivity { return g.conn }
