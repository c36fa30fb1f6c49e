// Package aggregate composes search runs into a single answer.
//
// Policies:
//
//   - Single:          one FindFirstGoal run, optionally transformed (Double
//     for a there-and-back trip).
//   - Reduce:          one FindFirstGoal run per state space, executed on a
//     worker pool and reduced with Min, Max or Sum. MinOverSources is the
//     minimum-over-many-sources case.
//   - OverTargets:     one FullDistanceMap run, then the distances of a fixed
//     set of targets reduced: SumOverTargets adds them, TimeUntilAll takes the
//     farthest.
//   - Parallel:        the pool itself, for compositions of the above such as
//     "the best start cell by total arrival time".
//
// Runs share the grid and the state spaces read-only; every run owns its
// frontier and distance map, so no locking is involved. Results are
// collected by run index and reduced in index order; since every Reducer is
// commutative and associative the answer does not depend on scheduling.
//
// Errors: the first failing run cancels the others and is returned wrapped
// with its index; it is never hidden behind partial successes. ErrNoRuns
// signals an empty input, ErrBadReducer an unknown reducer, and Sum and
// Double overflow as search.ErrCostOverflow.
//
// Observability: each exported call opens one OpenTelemetry span named
// "aggregate.<Func>" carrying the run count, reducer and result, and records
// errors on it. Failed runs are logged at Warn through Options.Logger.
package aggregate
