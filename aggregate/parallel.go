package aggregate

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// RunFunc computes the result of run i.
type RunFunc func(ctx context.Context, i int) (int64, error)

// Parallel executes n independent runs on a pool of opts.Workers goroutines
// and reduces their results with r.
//
// The first failing run cancels the context handed to the others, runs not
// yet started are skipped, and that first error is returned wrapped with its
// run index. Partial results are never reduced.
func Parallel(ctx context.Context, n int, fn RunFunc, r Reducer, opts *Options) (int64, error) {
	o := resolve(opts)
	ctx, span := o.Tracer.Start(ctx, "aggregate.Parallel", trace.WithAttributes(
		attribute.Int("aggregate.runs", n),
		attribute.String("aggregate.reducer", r.String()),
	))
	defer span.End()

	v, err := parallel(ctx, n, fn, r, o)

	return finish(span, o, "parallel", v, err)
}

// parallel is Parallel without the span, shared by the other aggregations.
func parallel(ctx context.Context, n int, fn RunFunc, r Reducer, o Options) (int64, error) {
	if !r.valid() {
		return 0, fmt.Errorf("%w: %d", ErrBadReducer, int(r))
	}
	if n <= 0 {
		return 0, ErrNoRuns
	}

	results := make([]int64, n)
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := fn(gctx, i)
			if err != nil {
				if o.Logger != nil {
					o.Logger.WithField("run", i).WithError(err).Warn("aggregate: run failed")
				}

				return fmt.Errorf("aggregate: run %d: %w", i, err)
			}
			results[i] = v

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	return r.Fold(results)
}

// finish applies the transform, annotates the span and logs the outcome.
func finish(span trace.Span, o Options, name string, v int64, err error) (int64, error) {
	if err == nil && o.Transform != nil {
		v, err = o.Transform(v)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, name+" failed")

		return 0, err
	}
	span.SetAttributes(attribute.Int64("aggregate.result", v))
	span.SetStatus(codes.Ok, name+" complete")
	if o.Logger != nil {
		o.Logger.WithFields(logrus.Fields{
			"aggregation": name,
			"result":      v,
		}).Debug("aggregate: done")
	}

	return v, nil
}
