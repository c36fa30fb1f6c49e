package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// digitSpace walks 4-connected cells; entering a digit cell costs its value,
// entering '.' costs 1 and '#' is a wall.
type digitSpace struct {
	start, goal grid.Point
}

func (d digitSpace) InitialStates() []search.Seed[grid.Point] {
	return []search.Seed[grid.Point]{{State: d.start}}
}

func (d digitSpace) Transitions(p grid.Point, g *grid.Grid) []search.Edge[grid.Point] {
	var out []search.Edge[grid.Point]
	for _, n := range g.Neighbors(p, grid.Conn4) {
		if c, ok := cellCost(n.Symbol); ok {
			out = append(out, search.Edge[grid.Point]{To: n.Point, Cost: c})
		}
	}

	return out
}

func (d digitSpace) IsGoal(p grid.Point) bool { return p == d.goal }

func cellCost(sym byte) (int64, bool) {
	switch {
	case sym == '#':
		return 0, false
	case sym >= '0' && sym <= '9':
		return int64(sym - '0'), true
	default:
		return 1, true
	}
}

// funcSpace builds a StateSpace from closures.
type funcSpace[S comparable] struct {
	seeds []search.Seed[S]
	next  func(s S, g *grid.Grid) []search.Edge[S]
	goal  func(s S) bool
	score func(s S) int64
}

func (f funcSpace[S]) InitialStates() []search.Seed[S] { return f.seeds }

func (f funcSpace[S]) Transitions(s S, g *grid.Grid) []search.Edge[S] { return f.next(s, g) }

func (f funcSpace[S]) IsGoal(s S) bool { return f.goal != nil && f.goal(s) }

// scoredSpace adds Scorer to funcSpace.
type scoredSpace[S comparable] struct{ funcSpace[S] }

func (s scoredSpace[S]) Score(st S) int64 { return s.score(st) }

func mustGrid(t testing.TB, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromLines(lines, grid.DefaultOptions())
	require.NoError(t, err)

	return g
}

// randomDigitGrid returns an h×w grid of digits with roughly one wall in six.
func randomDigitGrid(t testing.TB, rng *rand.Rand, h, w int) *grid.Grid {
	t.Helper()
	rows := make([][]byte, h)
	for r := range rows {
		rows[r] = make([]byte, w)
		for c := range rows[r] {
			if rng.Intn(6) == 0 {
				rows[r][c] = '#'
			} else {
				rows[r][c] = byte('0' + rng.Intn(10))
			}
		}
	}
	rows[0][0] = '0'
	rows[h-1][w-1] = '0'
	g, err := grid.New(rows, grid.DefaultOptions())
	require.NoError(t, err)

	return g
}

// bruteForce enumerates every simple path from start to goal and returns the
// cheapest cost, or ok=false when the goal is unreachable.
func bruteForce(g *grid.Grid, start, goal grid.Point) (best int64, ok bool) {
	seen := map[grid.Point]bool{start: true}
	var walk func(p grid.Point, cost int64)
	walk = func(p grid.Point, cost int64) {
		if p == goal {
			if !ok || cost < best {
				best, ok = cost, true
			}
			return
		}
		for _, n := range g.Neighbors(p, grid.Conn4) {
			c, passable := cellCost(n.Symbol)
			if !passable || seen[n.Point] {
				continue
			}
			seen[n.Point] = true
			walk(n.Point, cost+c)
			seen[n.Point] = false
		}
	}
	walk(start, 0)

	return best, ok
}
