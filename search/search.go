package search

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/grid"
)

// ctxCheckMask controls how often the run loop polls its context (every 1024 pops).
const ctxCheckMask = 1023

// Run executes a uniform-cost search of sp over g in the given mode.
//
// Returns:
//
//   - FindFirstGoal:   Result.Cost/Goal of the first finalized goal state,
//     or ErrUnreachableGoal if the frontier empties first.
//   - FullDistanceMap: Result.Distances with every reachable state.
//   - BestScore:       Result.Best/BestState, the highest Scorer.Score among
//     finalized states.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxCost).
//  2. sp must be non-nil (ErrNilSpace).
//  3. g must be non-nil (ErrNilGrid) and consistent (grid.ErrMalformedGrid).
//  4. mode must be known (ErrBadMode); BestScore needs a Scorer (ErrNoScorer).
//  5. sp must have at least one seed (ErrNoInitialStates), none negative (ErrNegativeCost).
//
// During the run a negative transition cost fails with ErrNegativeCost and
// cost arithmetic beyond int64 fails with *CostOverflowError.
//
// Complexity:
//
//   - Time:  O((V + E) log E) over reached states V and generated edges E.
//   - Space: O(V + E) for the distance labels and the lazy frontier.
func Run[S comparable](sp StateSpace[S], g *grid.Grid, mode Mode, opts ...Option[S]) (*Result[S], error) {
	cfg := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	res, err := run(sp, g, mode, cfg)

	var stats Stats
	if res != nil {
		stats = res.Stats
	}
	if cfg.OnDone != nil {
		cfg.OnDone(Report{Mode: mode, Stats: stats, Err: err, Elapsed: time.Since(start)})
	}
	if cfg.Logger != nil {
		entry := cfg.Logger.WithFields(logrus.Fields{
			"mode":      mode.String(),
			"pushed":    stats.Pushed,
			"finalized": stats.Finalized,
			"stale":     stats.Stale,
			"pruned":    stats.Pruned,
			"elapsed":   time.Since(start),
		})
		if err != nil {
			entry.WithError(err).Debug("search: run failed")
		} else {
			entry.Debug("search: run finished")
		}
	}
	if err != nil {
		return nil, err
	}

	return res, nil
}

// FindFirstGoal runs in FindFirstGoal mode and returns only the goal cost.
func FindFirstGoal[S comparable](sp StateSpace[S], g *grid.Grid, opts ...Option[S]) (int64, error) {
	res, err := Run(sp, g, ModeFindFirstGoal, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// FullDistanceMap runs to exhaustion and returns the distance of every reached state.
func FullDistanceMap[S comparable](sp StateSpace[S], g *grid.Grid, opts ...Option[S]) (DistanceMap[S], error) {
	res, err := Run(sp, g, ModeFullDistanceMap, opts...)
	if err != nil {
		return nil, err
	}

	return res.Distances, nil
}

// run validates inputs and drives a runner. Split from Run so the OnDone and
// logging epilogue sees every failure, validation included.
func run[S comparable](sp StateSpace[S], g *grid.Grid, mode Mode, cfg Options[S]) (*Result[S], error) {
	if cfg.err != nil {
		return nil, cfg.err
	}
	if sp == nil {
		return nil, ErrNilSpace
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	var scorer Scorer[S]
	switch mode {
	case ModeFindFirstGoal, ModeFullDistanceMap:
	case ModeBestScore:
		s, ok := sp.(Scorer[S])
		if !ok {
			return nil, ErrNoScorer
		}
		scorer = s
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(mode))
	}

	seeds := sp.InitialStates()
	if len(seeds) == 0 {
		return nil, ErrNoInitialStates
	}
	for _, sd := range seeds {
		if sd.Cost < 0 {
			return nil, fmt.Errorf("%w: seed %v cost=%d", ErrNegativeCost, sd.State, sd.Cost)
		}
	}

	r := &runner[S]{
		sp:     sp,
		g:      g,
		mode:   mode,
		cfg:    cfg,
		scorer: scorer,
		labels: make(map[S]label),
		pq:     NewFrontier[S](cfg.TieBreak),
		best:   math.MinInt64,
	}
	if cfg.ReturnPath {
		r.prev = make(map[S]S)
	}
	r.init(seeds)

	return r.process()
}

// label is the per-state bookkeeping: best tentative cost and whether it is final.
type label struct {
	cost  int64
	final bool
}

// runner holds the mutable state for a single search execution.
// It is owned by one goroutine and discarded when Run returns.
type runner[S comparable] struct {
	sp     StateSpace[S]
	g      *grid.Grid
	mode   Mode
	cfg    Options[S]
	scorer Scorer[S]

	labels map[S]label
	prev   map[S]S
	pq     *Frontier[S]
	stats  Stats

	best      int64
	bestState S
	hasBest   bool
}

// init pushes every seed, keeping the cheapest copy of duplicated seeds.
func (r *runner[S]) init(seeds []Seed[S]) {
	for _, sd := range seeds {
		if sd.Cost > r.cfg.MaxCost {
			continue
		}
		if l, ok := r.labels[sd.State]; ok && l.cost <= sd.Cost {
			continue
		}
		if r.discard(sd.State, sd.Cost) {
			r.stats.Pruned++
			continue
		}
		r.labels[sd.State] = label{cost: sd.Cost}
		r.push(sd.State, sd.Cost)
	}
}

// process is the core loop. It repeatedly extracts the minimum-cost entry,
// finalizes it and relaxes its transitions.
//
// Loop termination conditions:
//
//   - FindFirstGoal: a goal state is finalized, or the frontier empties (ErrUnreachableGoal).
//   - FullDistanceMap, BestScore: the frontier empties.
//   - The context is cancelled (ctx.Err()).
func (r *runner[S]) process() (*Result[S], error) {
	for r.pq.Len() > 0 {
		if r.stats.Popped&ctxCheckMask == 0 {
			select {
			case <-r.cfg.Ctx.Done():
				return r.result(), r.cfg.Ctx.Err()
			default:
			}
		}

		s, cost := r.pq.Pop()
		r.stats.Popped++

		// Skip stale entries: finalized already, or superseded by a cheaper push.
		l := r.labels[s]
		if l.final || cost > l.cost {
			r.stats.Stale++
			continue
		}
		// The incumbent may have improved since this entry was pushed.
		if r.discard(s, cost) {
			r.stats.Pruned++
			continue
		}

		l.final = true
		r.labels[s] = l
		r.stats.Finalized++
		if r.cfg.OnFinalize != nil {
			r.cfg.OnFinalize(s, cost)
		}

		switch r.mode {
		case ModeFindFirstGoal:
			if r.sp.IsGoal(s) {
				res := r.result()
				res.Cost = cost
				res.Goal = s

				return res, nil
			}
		case ModeBestScore:
			if sc := r.scorer.Score(s); !r.hasBest || sc > r.best {
				r.best, r.bestState, r.hasBest = sc, s, true
			}
		}

		if err := r.relax(s, cost); err != nil {
			return r.result(), err
		}
	}

	switch r.mode {
	case ModeFindFirstGoal:
		return r.result(), ErrUnreachableGoal
	case ModeBestScore:
		if !r.hasBest {
			return r.result(), ErrUnreachableGoal
		}
		res := r.result()
		res.Best, res.BestState = r.best, r.bestState

		return res, nil
	}

	return r.result(), nil
}

// relax examines every transition out of s and pushes strictly improving ones.
// Assumes s was finalized at cost before calling relax.
func (r *runner[S]) relax(s S, cost int64) error {
	for _, e := range r.sp.Transitions(s, r.g) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, s, e.To, e.Cost)
		}
		next, err := AddCost(cost, e.Cost)
		if err != nil {
			oe := err.(*CostOverflowError)
			oe.State = s

			return oe
		}
		if next > r.cfg.MaxCost {
			continue
		}
		// Only a strictly shorter path is worth a new frontier entry.
		if l, ok := r.labels[e.To]; ok && (l.final || l.cost <= next) {
			continue
		}
		if r.discard(e.To, next) {
			r.stats.Pruned++
			continue
		}
		r.labels[e.To] = label{cost: next}
		if r.prev != nil {
			r.prev[e.To] = s
		}
		r.push(e.To, next)
	}

	return nil
}

func (r *runner[S]) push(s S, cost int64) {
	r.pq.Push(s, cost)
	r.stats.Pushed++
	if r.cfg.OnPush != nil {
		r.cfg.OnPush(s, cost)
	}
}

// discard consults the pruning policy with the mode's best-known answer.
func (r *runner[S]) discard(s S, cost int64) bool {
	if r.cfg.Pruning == nil {
		return false
	}
	best := r.cfg.Incumbent
	if r.mode == ModeBestScore {
		best = r.best
	}

	return r.cfg.Pruning.ShouldDiscard(s, cost, best)
}

// result snapshots the finalized distances and counters.
func (r *runner[S]) result() *Result[S] {
	dist := make(DistanceMap[S], r.stats.Finalized)
	for s, l := range r.labels {
		if l.final {
			dist[s] = l.cost
		}
	}

	return &Result[S]{
		Mode:      r.mode,
		Distances: dist,
		Prev:      r.prev,
		Stats:     r.stats,
	}
}
