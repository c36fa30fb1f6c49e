package space_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
)

func mustGrid(t testing.TB, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromLines(lines, grid.DefaultOptions())
	require.NoError(t, err)

	return g
}
