package space_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
	"github.com/katalvlaran/gridsearch/space"
)

// TestWalk_OpenCorner: corner to opposite corner of an open 3×3 grid costs 4.
func TestWalk_OpenCorner(t *testing.T) {
	g := mustGrid(t, "...", "...", "...")
	w, err := space.NewWalk(g, space.WalkConfig{
		Starts: []grid.Point{{Row: 0, Col: 0}},
		Goals:  []grid.Point{{Row: 2, Col: 2}},
	})
	require.NoError(t, err)

	cost, err := search.FindFirstGoal[grid.Point](w, g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cost)
}

func TestWalk_GoalSymbolsAndWalls(t *testing.T) {
	g := mustGrid(t,
		"..#H",
		"..#.",
		"....",
	)
	w, err := space.NewWalk(g, space.WalkConfig{
		Starts:      []grid.Point{{}},
		GoalSymbols: "H",
		Walls:       "#",
	})
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{Row: 0, Col: 3}}, w.Goals(g))

	cost, err := search.FindFirstGoal[grid.Point](w, g)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cost)
}

func TestWalk_Errors(t *testing.T) {
	g := mustGrid(t, ".#")
	_, err := space.NewWalk(g, space.WalkConfig{})
	assert.ErrorIs(t, err, space.ErrBadConfig)

	_, err = space.NewWalk(g, space.WalkConfig{Starts: []grid.Point{{Row: 3}}})
	assert.ErrorIs(t, err, space.ErrBadConfig)

	_, err = space.NewWalk(g, space.WalkConfig{Starts: []grid.Point{{Col: 1}}, Walls: "#"})
	assert.ErrorIs(t, err, space.ErrBadConfig)

	_, err = space.NewWalk(&grid.Grid{}, space.WalkConfig{Starts: []grid.Point{{}}})
	assert.ErrorIs(t, err, grid.ErrMalformedGrid)
}

// TestWalk_InheritsGridConn: an unset Conn follows the grid, an explicit one overrides it.
func TestWalk_InheritsGridConn(t *testing.T) {
	g, err := grid.FromLines([]string{"...", "...", "..."}, grid.Options{Conn: grid.Conn8})
	require.NoError(t, err)
	corner := []grid.Point{{Row: 2, Col: 2}}

	diag, err := space.NewWalk(g, space.WalkConfig{Starts: []grid.Point{{}}, Goals: corner})
	require.NoError(t, err)
	cost, err := search.FindFirstGoal[grid.Point](diag, g)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cost)

	ortho, err := space.NewWalk(g, space.WalkConfig{Starts: []grid.Point{{}}, Goals: corner, Conn: grid.Conn4})
	require.NoError(t, err)
	cost, err = search.FindFirstGoal[grid.Point](ortho, g)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cost)
}

func TestWalk_PerSource(t *testing.T) {
	g := mustGrid(t, ".....")
	w, err := space.NewWalk(g, space.WalkConfig{
		Starts: []grid.Point{{Col: 0}, {Col: 3}},
		Goals:  []grid.Point{{Col: 4}},
	})
	require.NoError(t, err)

	// together the nearer source wins
	cost, err := search.FindFirstGoal[grid.Point](w, g)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cost)

	var costs []int64
	for _, sub := range w.PerSource() {
		require.Len(t, sub.InitialStates(), 1)
		c, err := search.FindFirstGoal[grid.Point](sub, g)
		require.NoError(t, err)
		costs = append(costs, c)
	}
	assert.Equal(t, []int64{4, 1}, costs)
}
