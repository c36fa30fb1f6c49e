// Package bfs provides a breadth-first search over a search.StateSpace,
// returning unweighted step counts, parent links, and visit order.
//
// What
//
//   - Explore states in non-decreasing step count from every seed of the space.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from state → steps from the nearest seed
//   - Parent: map from state → its predecessor in the BFS tree
//   - Goal/Found: the goal that ended the walk under WithStopAtGoal
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a state is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual transitions via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Reachability pre-passes (which markers can be collected at all) in O(V + E).
//   - Unit-cost layering, the special case of search.FullDistanceMap where
//     every edge weighs one. Transition costs reported by the space are ignored.
//
// Determinism
//
//	Transitions are enqueued in the order the StateSpace yields them, and
//	grid.Grid.Neighbors uses a fixed direction order, so the visit sequence
//	is fully reproducible.
//
// Complexity (V = reached states, E = generated transitions)
//
//   - Time:   O(V + E)   (each state and transition seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS[grid.Point](sp, g,
//	    bfs.WithContext[grid.Point](ctx),
//	    bfs.WithMaxDepth[grid.Point](3),
//	    bfs.WithStopAtGoal[grid.Point](),
//	)
//
// Errors
//
//   - ErrNilSpace             if the state space is nil.
//   - ErrNilGrid              if the grid pointer is nil.
//   - grid.ErrMalformedGrid   if the grid is inconsistent.
//   - ErrNoInitialStates      if the space yields no seeds.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//   - ctx.Err() when the context is cancelled.
//
// Thread Safety
//
//	BFS holds no shared state; concurrent calls over the same grid and a pure
//	StateSpace are safe.
package bfs
