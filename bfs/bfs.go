// Package bfs provides breadth-first search over a search.StateSpace,
// returning unweighted step counts, parent links, and visit order.
//
// BFS explores states in increasing step count from the seeds, with
// optional hooks, depth limiting, and transition filtering. Edge costs are
// ignored: every transition is one step.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	space   search.StateSpace[S]
	grid    *grid.Grid
	opts    BFSOptions[S]
	ctx     context.Context
	queue   []queueItem[S]
	visited map[S]bool
	res     *Result[S]
}

// errStop ends the loop early without surfacing an error.
type errStop struct{}

func (errStop) Error() string { return "bfs: stop" }

// BFS runs breadth-first search over sp on g starting from every seed at
// depth 0 (seed costs are ignored), applying any number of functional Options.
// Returns ErrNilSpace, ErrNilGrid or ErrNoInitialStates for invalid input,
// grid.ErrMalformedGrid for an inconsistent grid, ErrOptionViolation for bad
// options, or any user-supplied hook error.
func BFS[S comparable](sp search.StateSpace[S], g *grid.Grid, opts ...Option[S]) (*Result[S], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	seeds := sp.InitialStates()
	if len(seeds) == 0 {
		return nil, ErrNoInitialStates
	}

	w := &walker[S]{
		space:   sp,
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[S]bool),
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}

	// Seed queue with every initial state (no parent)
	for _, sd := range seeds {
		if !w.visited[sd.State] {
			w.enqueue(sd.State, 0, nil)
		}
	}
	// Main loop
	if err := w.loop(); err != nil {
		if _, ok := err.(errStop); !ok {
			return nil, err
		}
	}

	return w.res, nil
}

// enqueue marks s visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker[S]) enqueue(s S, d int, parent *S) {
	w.visited[s] = true
	w.res.Depth[s] = d
	if parent != nil {
		w.res.Parent[s] = *parent
	}
	w.opts.OnEnqueue(s, d)
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, error, goal, or cancellation.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.state, item.depth)

	return item
}

// visit records the state in Order, calls OnVisit and checks the goal.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.state)
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
	}
	if w.opts.StopAtGoal && w.space.IsGoal(item.state) {
		w.res.Goal, w.res.Found = item.state, true

		return errStop{}
	}

	return nil
}

// enqueueNeighbors expands the transitions of item, applies filtering and
// MaxDepth, and enqueues each unseen successor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, e := range w.space.Transitions(item.state, w.grid) {
		if !w.opts.FilterNeighbor(item.state, e.To) {
			continue
		}
		// first time seen?
		if !w.visited[e.To] {
			w.enqueue(e.To, nextDepth, &item.state)
		}
	}
}
