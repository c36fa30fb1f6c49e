package grid

import (
	"fmt"
	"strings"
)

// offsets4 and offsets8 hold (dRow, dCol) pairs in the documented neighbor order.
var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// New constructs a Grid from a non-empty, rectangular set of rows.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows is empty or the first row has no columns,
// ErrNonRectangular if any row length differs, ErrBadConnectivity for an
// unknown opts.Conn.
// Algorithmic complexity: O(W×H) time and memory.
func New(rows [][]byte, opts Options) (*Grid, error) {
	conn := opts.Conn
	switch conn {
	case ConnGrid:
		conn = Conn4
	case Conn4, Conn8:
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadConnectivity, int(conn))
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
	}
	// Deep copy into a single row-major buffer
	cells := make([]byte, 0, w*h)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid{
		width:  w,
		height: h,
		conn:   conn,
		cells:  cells,
	}, nil
}

// FromLines builds a Grid from text lines. Trailing carriage returns are
// stripped so CRLF input behaves like LF input.
func FromLines(lines []string, opts Options) (*Grid, error) {
	rows := make([][]byte, len(lines))
	for i, line := range lines {
		rows[i] = []byte(strings.TrimRight(line, "\r"))
	}

	return New(rows, opts)
}

// Validate reports ErrMalformedGrid when g is nil or was not built by New,
// such as the zero Grid.
func (g *Grid) Validate() error {
	if g == nil || g.width <= 0 || g.height <= 0 {
		return ErrEmptyGrid
	}
	if len(g.cells) != g.width*g.height {
		return fmt.Errorf("%w: %d×%d grid backed by %d cells", ErrNonRectangular, g.height, g.width, len(g.cells))
	}

	return nil
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Cell returns the symbol at (row, col), or ok=false outside the grid.
// Complexity: O(1).
func (g *Grid) Cell(row, col int) (byte, bool) {
	if !g.InBounds(row, col) {
		return 0, false
	}

	return g.cells[g.Index(Point{Row: row, Col: col})], true
}

// At is Cell for a Point.
func (g *Grid) At(p Point) (byte, bool) {
	return g.Cell(p.Row, p.Col)
}

// Index maps p to a row-major index: Row*Width() + Col.
// The caller must ensure p is in bounds.
func (g *Grid) Index(p Point) int {
	return p.Row*g.width + p.Col
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{Row: idx / g.width, Col: idx % g.width}
}

// Neighbors returns the in-bounds cells adjacent to p under conn, in the
// fixed order documented on the package. ConnGrid uses g.Conn().
// Complexity: O(d), d = 4 or 8.
func (g *Grid) Neighbors(p Point, conn Connectivity) []Neighbor {
	if conn == ConnGrid {
		conn = g.conn
	}
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	out := make([]Neighbor, 0, len(offsets))
	for _, d := range offsets {
		q := p.Add(d[0], d[1])
		if sym, ok := g.At(q); ok {
			out = append(out, Neighbor{Point: q, Symbol: sym})
		}
	}

	return out
}

// Step moves one cell from p in direction d.
// Returns ok=false if the destination is outside the grid.
func (g *Grid) Step(p Point, d Direction) (Neighbor, bool) {
	dr, dc := d.Offset()
	q := p.Add(dr, dc)
	sym, ok := g.At(q)
	if !ok {
		return Neighbor{}, false
	}

	return Neighbor{Point: q, Symbol: sym}, true
}

// Find returns the first cell holding sym in row-major order.
// Returns ErrSymbolNotFound if no cell matches.
func (g *Grid) Find(sym byte) (Point, error) {
	for i, c := range g.cells {
		if c == sym {
			return g.Coordinate(i), nil
		}
	}

	return Point{}, fmt.Errorf("%w: %q", ErrSymbolNotFound, sym)
}

// FindAll returns every cell holding sym in row-major order.
func (g *Grid) FindAll(sym byte) []Point {
	return g.FindFunc(func(_ Point, c byte) bool { return c == sym })
}

// FindFunc returns every cell for which pred holds, in row-major order.
func (g *Grid) FindFunc(pred func(p Point, sym byte) bool) []Point {
	var out []Point
	for i, c := range g.cells {
		p := g.Coordinate(i)
		if pred(p, c) {
			out = append(out, p)
		}
	}

	return out
}

// Count returns how many cells hold sym.
func (g *Grid) Count(sym byte) int {
	n := 0
	for _, c := range g.cells {
		if c == sym {
			n++
		}
	}

	return n
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for r := 0; r < g.height; r++ {
		sb.Write(g.cells[r*g.width : (r+1)*g.width])
		sb.WriteByte('\n')
	}

	return sb.String()
}
