package search

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors returned by the search driver.
var (
	// ErrNilSpace indicates that a nil StateSpace was passed to Run.
	ErrNilSpace = errors.New("search: state space is nil")

	// ErrNilGrid indicates that a nil *grid.Grid was passed to Run.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNoInitialStates indicates that the state space produced no seeds.
	ErrNoInitialStates = errors.New("search: state space has no initial states")

	// ErrUnreachableGoal indicates the frontier was exhausted without
	// satisfying the goal predicate.
	ErrUnreachableGoal = errors.New("search: goal unreachable")

	// ErrNegativeCost indicates a seed or transition carried a negative cost.
	ErrNegativeCost = errors.New("search: negative cost encountered")

	// ErrCostOverflow indicates cumulative cost arithmetic left the int64 range.
	// Returned errors are *CostOverflowError values matching this sentinel.
	ErrCostOverflow = errors.New("search: cost overflow")

	// ErrNoScorer indicates BestScore mode was requested for a state space
	// that does not implement Scorer.
	ErrNoScorer = errors.New("search: BestScore mode requires a Scorer")

	// ErrBadMode indicates an unknown Mode value.
	ErrBadMode = errors.New("search: unknown mode")

	// ErrBadMaxCost indicates WithMaxCost received a negative limit.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")
)

// Mode selects when the driver stops and what it reports.
type Mode int

const (
	// ModeFindFirstGoal stops at the first finalized goal state and reports its cost.
	ModeFindFirstGoal Mode = iota

	// ModeFullDistanceMap runs until the frontier is exhausted and reports every
	// finalized distance.
	ModeFullDistanceMap

	// ModeBestScore runs until the frontier is exhausted and reports the highest
	// Scorer.Score over all finalized states.
	ModeBestScore
)

// String returns the mode name used in logs and metric labels.
func (m Mode) String() string {
	switch m {
	case ModeFindFirstGoal:
		return "find_first_goal"
	case ModeFullDistanceMap:
		return "full_distance_map"
	case ModeBestScore:
		return "best_score"
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// Seed is an initial state and the cost it starts with.
type Seed[S comparable] struct {
	State S
	Cost  int64
}

// Edge is one implicit transition: the next state and the non-negative cost
// of reaching it.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// StateSpace defines the searchable graph over states of type S.
//
// Implementations must be pure: Transitions depends only on its arguments,
// so one StateSpace value can be shared by concurrent runs.
type StateSpace[S comparable] interface {
	// InitialStates returns one or more seeds.
	InitialStates() []Seed[S]
	// Transitions returns the successors of s with non-negative edge costs.
	Transitions(s S, g *grid.Grid) []Edge[S]
	// IsGoal reports whether s satisfies the goal predicate.
	IsGoal(s S) bool
}

// Scorer is implemented by state spaces searched in BestScore mode.
// Higher scores are better.
type Scorer[S comparable] interface {
	Score(s S) int64
}

// DistanceMap maps each finalized state to its minimal cumulative cost.
type DistanceMap[S comparable] map[S]int64

// Lookup returns the distance of s, or ErrUnreachableGoal if s was never finalized.
func (d DistanceMap[S]) Lookup(s S) (int64, error) {
	c, ok := d[s]
	if !ok {
		return 0, fmt.Errorf("%w: state %v not reached", ErrUnreachableGoal, s)
	}

	return c, nil
}

// Stats counts frontier activity for one run.
type Stats struct {
	Pushed    int // entries pushed onto the frontier
	Popped    int // entries popped from the frontier
	Stale     int // popped entries discarded as already finalized or superseded
	Finalized int // states whose distance became final
	Pruned    int // entries dropped by the pruning policy
}

// Result holds the outcome of a single run.
type Result[S comparable] struct {
	Mode Mode

	// Cost and Goal are set in FindFirstGoal mode.
	Cost int64
	Goal S

	// Best and BestState are set in BestScore mode.
	Best      int64
	BestState S

	// Distances holds every state finalized before the run stopped.
	Distances DistanceMap[S]

	// Prev maps each reached state to its predecessor; nil unless WithReturnPath.
	Prev map[S]S

	Stats Stats
}

// PathTo reconstructs the state sequence from a seed to dest.
// Requires WithReturnPath; returns ErrUnreachableGoal if dest was not finalized.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Distances[dest]; !ok {
		return nil, fmt.Errorf("%w: no path to %v", ErrUnreachableGoal, dest)
	}
	if r.Prev == nil {
		return nil, errors.New("search: path requested without WithReturnPath")
	}
	path := []S{dest}
	for cur := dest; ; {
		p, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get seed → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Report summarizes a finished run for WithOnDone hooks.
type Report struct {
	Mode    Mode
	Stats   Stats
	Err     error
	Elapsed time.Duration
}

// CostOverflowError reports cost arithmetic that would leave the int64 range.
type CostOverflowError struct {
	Op    string // "+" or "*"
	A, B  int64
	State any // state being expanded, if known
}

func (e *CostOverflowError) Error() string {
	if e.State != nil {
		return fmt.Sprintf("search: cost overflow: %d %s %d at state %v", e.A, e.Op, e.B, e.State)
	}

	return fmt.Sprintf("search: cost overflow: %d %s %d", e.A, e.Op, e.B)
}

// Is makes errors.Is(err, ErrCostOverflow) match.
func (e *CostOverflowError) Is(target error) bool {
	return target == ErrCostOverflow
}

// AddCost returns a+b for non-negative operands, or a *CostOverflowError.
func AddCost(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, &CostOverflowError{Op: "+", A: a, B: b}
	}

	return a + b, nil
}

// MulCost returns a*b for non-negative operands, or a *CostOverflowError.
func MulCost(a, b int64) (int64, error) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, &CostOverflowError{Op: "*", A: a, B: b}
	}

	return a * b, nil
}
