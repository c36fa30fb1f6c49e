package aggregate

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Single runs one FindFirstGoal search and returns its cost, passed through
// opts.Transform when set.
func Single[S comparable](ctx context.Context, sp search.StateSpace[S], g *grid.Grid, opts *Options, searchOpts ...search.Option[S]) (int64, error) {
	o := resolve(opts)
	ctx, span := o.Tracer.Start(ctx, "aggregate.Single", trace.WithAttributes(
		attribute.Int("aggregate.runs", 1),
	))
	defer span.End()

	cost, err := search.FindFirstGoal(sp, g, withContext(ctx, searchOpts)...)

	return finish(span, o, "single", cost, err)
}

// Reduce runs FindFirstGoal once per state space in parallel and reduces the
// costs with r. The spaces share g read-only; each run owns its frontier.
func Reduce[S comparable](ctx context.Context, spaces []search.StateSpace[S], g *grid.Grid, r Reducer, opts *Options, searchOpts ...search.Option[S]) (int64, error) {
	o := resolve(opts)
	ctx, span := o.Tracer.Start(ctx, "aggregate.Reduce", trace.WithAttributes(
		attribute.Int("aggregate.runs", len(spaces)),
		attribute.String("aggregate.reducer", r.String()),
	))
	defer span.End()

	v, err := parallel(ctx, len(spaces), func(ctx context.Context, i int) (int64, error) {
		return search.FindFirstGoal(spaces[i], g, withContext(ctx, searchOpts)...)
	}, r, o)

	return finish(span, o, "reduce", v, err)
}

// MinOverSources is Reduce with Min: the cheapest of many independent starts.
func MinOverSources[S comparable](ctx context.Context, spaces []search.StateSpace[S], g *grid.Grid, opts *Options, searchOpts ...search.Option[S]) (int64, error) {
	return Reduce(ctx, spaces, g, Min, opts, searchOpts...)
}

// OverTargets runs one FullDistanceMap search from sp and reduces the
// distances of targets with r. A target the search never reached fails with
// search.ErrUnreachableGoal.
func OverTargets[S comparable](ctx context.Context, sp search.StateSpace[S], g *grid.Grid, targets []S, r Reducer, opts *Options, searchOpts ...search.Option[S]) (int64, error) {
	o := resolve(opts)
	ctx, span := o.Tracer.Start(ctx, "aggregate.OverTargets", trace.WithAttributes(
		attribute.Int("aggregate.runs", 1),
		attribute.Int("aggregate.targets", len(targets)),
		attribute.String("aggregate.reducer", r.String()),
	))
	defer span.End()

	v, err := overTargets(ctx, sp, g, targets, r, searchOpts)

	return finish(span, o, "over_targets", v, err)
}

func overTargets[S comparable](ctx context.Context, sp search.StateSpace[S], g *grid.Grid, targets []S, r Reducer, searchOpts []search.Option[S]) (int64, error) {
	if !r.valid() {
		return 0, ErrBadReducer
	}
	if len(targets) == 0 {
		return 0, ErrNoRuns
	}
	dist, err := search.FullDistanceMap(sp, g, withContext(ctx, searchOpts)...)
	if err != nil {
		return 0, err
	}
	vals := make([]int64, len(targets))
	for i, t := range targets {
		if vals[i], err = dist.Lookup(t); err != nil {
			return 0, err
		}
	}

	return r.Fold(vals)
}

// SumOverTargets adds the distances from sp to every target.
func SumOverTargets[S comparable](ctx context.Context, sp search.StateSpace[S], g *grid.Grid, targets []S, opts *Options, searchOpts ...search.Option[S]) (int64, error) {
	return OverTargets(ctx, sp, g, targets, Sum, opts, searchOpts...)
}

// TimeUntilAll returns the distance of the farthest target: the moment a
// wave spreading from every seed of sp has reached all of them.
func TimeUntilAll[S comparable](ctx context.Context, sp search.StateSpace[S], g *grid.Grid, targets []S, opts *Options, searchOpts ...search.Option[S]) (int64, error) {
	return OverTargets(ctx, sp, g, targets, Max, opts, searchOpts...)
}

// TargetsWhere returns the states of dist satisfying pred, in no particular
// order. Useful when targets are augmented states known only by position.
func TargetsWhere[S comparable](dist search.DistanceMap[S], pred func(S) bool) []S {
	var out []S
	for s := range dist {
		if pred(s) {
			out = append(out, s)
		}
	}

	return out
}

// withContext appends the run context so it overrides any caller context.
func withContext[S comparable](ctx context.Context, opts []search.Option[S]) []search.Option[S] {
	out := make([]search.Option[S], 0, len(opts)+1)
	out = append(out, opts...)

	return append(out, search.WithContext[S](ctx))
}
