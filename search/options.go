package search

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Options configures one run of the search driver.
//
// Ctx        – cancellation; checked every 1024 pops.
// Pruning    – optional PruningPolicy consulted on push and on pop.
// Incumbent  – best-known answer handed to Pruning outside BestScore mode.
//
//	Default math.MaxInt64 (nothing known).
//
// ReturnPath – record predecessors so Result.PathTo works.
// TieBreak   – optional strict ordering among equal-cost entries; insertion
//
//	order decides what TieBreak leaves equal.
//
// MaxCost    – entries whose tentative cost exceeds this are never pushed.
//
//	Must be ≥ 0. Default math.MaxInt64 (no cap).
//
// Logger     – receives one Debug entry per run; nil disables logging.
type Options[S comparable] struct {
	Ctx        context.Context
	Pruning    PruningPolicy[S]
	Incumbent  int64
	ReturnPath bool
	TieBreak   func(a, b S) bool
	MaxCost    int64
	Logger     logrus.FieldLogger

	// OnPush is called whenever an entry enters the frontier.
	OnPush func(s S, cost int64)
	// OnFinalize is called when a state's distance becomes final.
	OnFinalize func(s S, cost int64)
	// OnDone is called once when the run returns, successfully or not.
	OnDone func(Report)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a run.
type Option[S comparable] func(*Options[S])

// DefaultOptions returns Options with sensible defaults:
//   - context.Background()
//   - no pruning, Incumbent = math.MaxInt64
//   - no path recording, insertion-order tie-break
//   - MaxCost = math.MaxInt64
//   - no logger and no hooks
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Ctx:       context.Background(),
		Incumbent: math.MaxInt64,
		MaxCost:   math.MaxInt64,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *Options[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithPruning installs a pruning policy.
func WithPruning[S comparable](p PruningPolicy[S]) Option[S] {
	return func(o *Options[S]) {
		o.Pruning = p
	}
}

// WithIncumbent seeds the best-known answer passed to the pruning policy in
// FindFirstGoal and FullDistanceMap modes. The value must be achievable
// (for example the cost of a solution found earlier), otherwise a sound
// policy may discard the optimum.
func WithIncumbent[S comparable](best int64) Option[S] {
	return func(o *Options[S]) {
		o.Incumbent = best
	}
}

// WithReturnPath enables predecessor recording for Result.PathTo.
func WithReturnPath[S comparable]() Option[S] {
	return func(o *Options[S]) {
		o.ReturnPath = true
	}
}

// WithTieBreak orders equal-cost frontier entries by less before falling
// back to insertion order. less must be a strict weak ordering.
func WithTieBreak[S comparable](less func(a, b S) bool) Option[S] {
	return func(o *Options[S]) {
		o.TieBreak = less
	}
}

// WithMaxCost stops exploring beyond the given cumulative cost.
//
//	limit ≥ 0: entries costing more than limit are skipped
//	limit < 0: invalid option → ErrBadMaxCost
func WithMaxCost[S comparable](limit int64) Option[S] {
	return func(o *Options[S]) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxCost, limit)
			return
		}
		o.MaxCost = limit
	}
}

// WithLogger routes the per-run summary to l at Debug level.
func WithLogger[S comparable](l logrus.FieldLogger) Option[S] {
	return func(o *Options[S]) {
		o.Logger = l
	}
}

// WithOnPush registers a callback for every frontier push.
func WithOnPush[S comparable](fn func(s S, cost int64)) Option[S] {
	return func(o *Options[S]) {
		o.OnPush = fn
	}
}

// WithOnFinalize registers a callback for every finalized state.
func WithOnFinalize[S comparable](fn func(s S, cost int64)) Option[S] {
	return func(o *Options[S]) {
		o.OnFinalize = fn
	}
}

// WithOnDone registers a callback receiving the run Report.
// Multiple WithOnDone options are chained in order.
func WithOnDone[S comparable](fn func(Report)) Option[S] {
	return func(o *Options[S]) {
		if fn == nil {
			return
		}
		prev := o.OnDone
		if prev == nil {
			o.OnDone = fn
			return
		}
		o.OnDone = func(r Report) {
			prev(r)
			fn(r)
		}
	}
}
