package aggregate_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/aggregate"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
	"github.com/katalvlaran/gridsearch/space"
)

// TestMinOverSources: five starts costing 7, 3, 9, 3 and 11 reduce to 3.
func TestMinOverSources(t *testing.T) {
	g := mustGrid(t, "............")
	spaces := corridorSpaces(t, g, 7, 3, 9, 3, 11)
	ctx := context.Background()

	v, err := aggregate.MinOverSources(ctx, spaces, g, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	v, err = aggregate.Reduce(ctx, spaces, g, aggregate.Max, &aggregate.Options{Workers: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(11), v)

	v, err = aggregate.Reduce(ctx, spaces, g, aggregate.Sum, &aggregate.Options{Workers: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(33), v)
}

// TestReduce_WorkerCountIrrelevant: the answer is the same for any pool size.
func TestReduce_WorkerCountIrrelevant(t *testing.T) {
	g := mustGrid(t, "....................")
	spaces := corridorSpaces(t, g, 19, 4, 12, 8, 15, 6, 17, 9)
	for _, workers := range []int{1, 2, 3, 8, 32} {
		v, err := aggregate.MinOverSources(context.Background(), spaces, g, &aggregate.Options{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, int64(4), v, "workers=%d", workers)
	}
}

// TestReduce_FirstErrorWins: an unreachable source fails the whole reduction.
func TestReduce_FirstErrorWins(t *testing.T) {
	g := mustGrid(t, "...#...")
	spaces := corridorSpaces(t, g, 2, 5, 1)

	_, err := aggregate.MinOverSources(context.Background(), spaces, g, nil)
	require.ErrorIs(t, err, search.ErrUnreachableGoal)
	assert.Contains(t, err.Error(), "run 1")
}

// TestParallel_SkipsAfterFailure: with one worker, a failing first run stops
// the remaining runs from starting.
func TestParallel_SkipsAfterFailure(t *testing.T) {
	var calls atomic.Int32
	_, err := aggregate.Parallel(context.Background(), 10, func(_ context.Context, i int) (int64, error) {
		calls.Add(1)
		if i == 0 {
			return 0, search.ErrUnreachableGoal
		}
		return int64(i), nil
	}, aggregate.Min, &aggregate.Options{Workers: 1})

	require.ErrorIs(t, err, search.ErrUnreachableGoal)
	assert.Equal(t, int32(1), calls.Load())
}

func TestParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := aggregate.Parallel(ctx, 3, func(context.Context, int) (int64, error) {
		return 1, nil
	}, aggregate.Sum, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParallel_Errors(t *testing.T) {
	ok := func(context.Context, int) (int64, error) { return 1, nil }
	ctx := context.Background()

	_, err := aggregate.Parallel(ctx, 0, ok, aggregate.Min, nil)
	assert.ErrorIs(t, err, aggregate.ErrNoRuns)

	_, err = aggregate.Parallel(ctx, 2, ok, aggregate.Reducer(9), nil)
	assert.ErrorIs(t, err, aggregate.ErrBadReducer)

	_, err = aggregate.Parallel(ctx, 2, func(context.Context, int) (int64, error) {
		return math.MaxInt64, nil
	}, aggregate.Sum, nil)
	assert.ErrorIs(t, err, search.ErrCostOverflow)

	_, err = aggregate.Parallel(ctx, 1, func(context.Context, int) (int64, error) {
		return math.MaxInt64, nil
	}, aggregate.Min, &aggregate.Options{Transform: aggregate.Double})
	assert.ErrorIs(t, err, search.ErrCostOverflow)
}

// TestSingle_RoundTrip walks to the herb and back.
func TestSingle_RoundTrip(t *testing.T) {
	g := mustGrid(t,
		"#.###",
		"#...#",
		"###H#",
	)
	w, err := space.NewWalk(g, space.WalkConfig{
		Starts:      []grid.Point{{Row: 0, Col: 1}},
		GoalSymbols: "H",
		Walls:       "#",
	})
	require.NoError(t, err)

	v, err := aggregate.Single[grid.Point](context.Background(), w, g, &aggregate.Options{Transform: aggregate.Double})
	require.NoError(t, err)
	assert.Equal(t, int64(8), v)

	v, err = aggregate.Single[grid.Point](context.Background(), w, g, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)
}

// TestOverTargets: water enters at both ends of a channel and spreads to the palms.
func TestOverTargets(t *testing.T) {
	g := mustGrid(t, ".P..P...P.")
	w, err := space.NewWalk(g, space.WalkConfig{
		Starts: []grid.Point{{Col: 0}, {Col: 9}},
		Walls:  "#",
	})
	require.NoError(t, err)
	palms := g.FindAll('P')
	ctx := context.Background()

	v, err := aggregate.TimeUntilAll[grid.Point](ctx, w, g, palms, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)

	v, err = aggregate.SumOverTargets[grid.Point](ctx, w, g, palms, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6), v)

	v, err = aggregate.OverTargets[grid.Point](ctx, w, g, palms, aggregate.Min, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestOverTargets_Errors(t *testing.T) {
	g := mustGrid(t, "..#P")
	w, err := space.NewWalk(g, space.WalkConfig{Starts: []grid.Point{{}}, Walls: "#"})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = aggregate.SumOverTargets[grid.Point](ctx, w, g, g.FindAll('P'), nil)
	assert.ErrorIs(t, err, search.ErrUnreachableGoal)

	_, err = aggregate.SumOverTargets[grid.Point](ctx, w, g, nil, nil)
	assert.ErrorIs(t, err, aggregate.ErrNoRuns)

	_, err = aggregate.OverTargets[grid.Point](ctx, w, g, []grid.Point{{}}, aggregate.Reducer(-1), nil)
	assert.ErrorIs(t, err, aggregate.ErrBadReducer)
}

// TestBestPlantingSpot: for every open cell, the total time for water poured
// there to reach all palms; the best cell wins.
func TestBestPlantingSpot(t *testing.T) {
	g := mustGrid(t, "P..P.P")
	palms := g.FindAll('P')
	cells := g.FindAll('.')
	ctx := context.Background()

	v, err := aggregate.Parallel(ctx, len(cells), func(ctx context.Context, i int) (int64, error) {
		w, err := space.NewWalk(g, space.WalkConfig{Starts: []grid.Point{cells[i]}, Walls: "#"})
		if err != nil {
			return 0, err
		}
		return aggregate.SumOverTargets[grid.Point](ctx, w, g, palms, nil)
	}, aggregate.Min, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(6), v)
}

// TestTargetsWhere picks augmented states by position.
func TestTargetsWhere(t *testing.T) {
	g := mustGrid(t, "S..E")
	cfg := space.DefaultBudgetConfig()
	cfg.Initial = 5
	sp, err := space.NewBudget(g, cfg)
	require.NoError(t, err)

	dist, err := search.FullDistanceMap[space.BudgetState](sp, g)
	require.NoError(t, err)
	end := grid.Point{Col: 3}
	targets := aggregate.TargetsWhere(dist, func(s space.BudgetState) bool { return s.Pos == end })
	require.NotEmpty(t, targets)

	v, err := aggregate.OverTargets[space.BudgetState](context.Background(), sp, g, targets, aggregate.Min, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
}

func TestReducer(t *testing.T) {
	assert.Equal(t, "min", aggregate.Min.String())
	assert.Equal(t, "max", aggregate.Max.String())
	assert.Equal(t, "sum", aggregate.Sum.String())
	assert.Equal(t, "Reducer(7)", aggregate.Reducer(7).String())

	v, err := aggregate.Min.Fold([]int64{7, 3, 9, 3, 11})
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = aggregate.Max.Fold(nil)
	assert.ErrorIs(t, err, aggregate.ErrNoRuns)

	_, err = aggregate.Sum.Combine(math.MaxInt64, 1)
	assert.ErrorIs(t, err, search.ErrCostOverflow)

	_, err = aggregate.Reducer(7).Combine(1, 2)
	assert.ErrorIs(t, err, aggregate.ErrBadReducer)

	v, err = aggregate.Double(21)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}
