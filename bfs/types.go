// Package bfs provides tunable options and error definitions
// for breadth-first search over a search.StateSpace.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilSpace is returned if a nil state space is passed.
	ErrNilSpace = errors.New("bfs: state space is nil")

	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("bfs: grid is nil")

	// ErrNoInitialStates is returned when the state space has no seeds.
	ErrNoInitialStates = errors.New("bfs: state space has no initial states")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option[S comparable] func(*BFSOptions[S])

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions[S comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a state is enqueued, before visiting.
	// Receives the state and its depth from the nearest seed.
	OnEnqueue func(s S, depth int)

	// OnDequeue is called immediately before visiting a state.
	OnDequeue func(s S, depth int)

	// OnVisit is called when visiting a state. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s S, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip transitions by returning false.
	// Called for each transition curr→next.
	FilterNeighbor func(curr, next S) bool

	// StopAtGoal ends the walk at the first visited goal state.
	StopAtGoal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all transitions allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - full exploration (StopAtGoal == false)
func DefaultOptions[S comparable]() BFSOptions[S] {
	return BFSOptions[S]{
		Ctx:            context.Background(),
		OnEnqueue:      func(S, int) {},
		OnDequeue:      func(S, int) {},
		OnVisit:        func(S, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ S) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable](ctx context.Context) Option[S] {
	return func(o *BFSOptions[S]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[S comparable](fn func(s S, depth int)) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[S comparable](fn func(s S, depth int) error) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[S comparable](d int) Option[S] {
	return func(o *BFSOptions[S]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips transitions when fn returns false.
func WithFilterNeighbor[S comparable](fn func(curr, next S) bool) Option[S] {
	return func(o *BFSOptions[S]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithStopAtGoal ends the walk at the first goal state visited.
func WithStopAtGoal[S comparable]() Option[S] {
	return func(o *BFSOptions[S]) {
		o.StopAtGoal = true
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: states visited, in visit sequence.
//   - Depth: map from state to its distance (in steps) from the nearest seed.
//   - Parent: map from state to its predecessor in the BFS tree.
//   - Goal/Found: the goal state that stopped the walk under StopAtGoal.
type Result[S comparable] struct {
	Order  []S
	Depth  map[S]int
	Parent map[S]S
	Goal   S
	Found  bool
}

// PathTo reconstructs the path from a seed to dest.
// Returns an error if dest was not reached.
func (r *Result[S]) PathTo(dest S) ([]S, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []S{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get seed → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
