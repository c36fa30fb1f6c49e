package aggregate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
	"github.com/katalvlaran/gridsearch/space"
)

func mustGrid(t testing.TB, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromLines(lines, grid.DefaultOptions())
	require.NoError(t, err)

	return g
}

// corridorSpaces returns one walk per start column, all heading for column 0.
func corridorSpaces(t testing.TB, g *grid.Grid, cols ...int) []search.StateSpace[grid.Point] {
	t.Helper()
	out := make([]search.StateSpace[grid.Point], len(cols))
	for i, c := range cols {
		w, err := space.NewWalk(g, space.WalkConfig{
			Starts: []grid.Point{{Col: c}},
			Goals:  []grid.Point{{Col: 0}},
			Walls:  "#",
		})
		require.NoError(t, err)
		out[i] = w
	}

	return out
}
