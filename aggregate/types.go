package aggregate

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridsearch/search"
)

// tracerName identifies spans opened by this package.
const tracerName = "github.com/katalvlaran/gridsearch/aggregate"

var (
	// ErrNoRuns is returned when there is nothing to reduce: no state spaces,
	// no targets, or n == 0.
	ErrNoRuns = errors.New("aggregate: nothing to reduce")

	// ErrBadReducer is returned for a Reducer outside Min, Max and Sum.
	ErrBadReducer = errors.New("aggregate: unknown reducer")
)

// Options configures every aggregation. A nil *Options means defaults.
//   - Workers: maximum concurrent runs (default runtime.NumCPU()).
//   - Logger: receives one Warn per failed run and a Debug summary; nil disables logging.
//   - Tracer: opens one span per call (default the global otel tracer).
//   - Transform: applied to the reduced value, e.g. Double for a round trip.
type Options struct {
	Workers   int
	Logger    logrus.FieldLogger
	Tracer    trace.Tracer
	Transform func(int64) (int64, error)
}

// DefaultOptions returns Options with NumCPU workers and the global tracer.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
		Tracer:  otel.Tracer(tracerName),
	}
}

// resolve fills unset fields of opts with defaults.
func resolve(opts *Options) Options {
	o := DefaultOptions()
	if opts == nil {
		return o
	}
	if opts.Workers > 0 {
		o.Workers = opts.Workers
	}
	if opts.Tracer != nil {
		o.Tracer = opts.Tracer
	}
	o.Logger = opts.Logger
	o.Transform = opts.Transform

	return o
}

// Reducer combines per-run results. Every reducer is commutative and
// associative, so the order runs finish in never changes the answer.
type Reducer int

const (
	// Min keeps the smallest value.
	Min Reducer = iota
	// Max keeps the largest value ("time until all targets are reached").
	Max
	// Sum adds values, failing on overflow.
	Sum
)

// String returns "min", "max" or "sum".
func (r Reducer) String() string {
	switch r {
	case Min:
		return "min"
	case Max:
		return "max"
	case Sum:
		return "sum"
	}

	return fmt.Sprintf("Reducer(%d)", int(r))
}

// Combine folds v into acc.
func (r Reducer) Combine(acc, v int64) (int64, error) {
	switch r {
	case Min:
		return min(acc, v), nil
	case Max:
		return max(acc, v), nil
	case Sum:
		return search.AddCost(acc, v)
	}

	return 0, fmt.Errorf("%w: %d", ErrBadReducer, int(r))
}

// Fold reduces vals left to right. Returns ErrNoRuns for an empty slice.
func (r Reducer) Fold(vals []int64) (int64, error) {
	if len(vals) == 0 {
		return 0, ErrNoRuns
	}
	acc := vals[0]
	for _, v := range vals[1:] {
		var err error
		if acc, err = r.Combine(acc, v); err != nil {
			return 0, err
		}
	}

	return acc, nil
}

func (r Reducer) valid() bool {
	return r == Min || r == Max || r == Sum
}

// Double returns 2v, for a round trip over a symmetric path.
func Double(v int64) (int64, error) {
	return search.MulCost(v, 2)
}
