// Package search provides a generic uniform-cost (Dijkstra) search over
// implicit state spaces laid on a grid.Grid, with breadth-first search as
// the unit-cost special case.
//
// Overview:
//
//   - A StateSpace[S] supplies seeds, a pure transition function yielding
//     (next state, non-negative cost) edges, and a goal predicate.
//   - States are any comparable Go value: a grid.Point, or a struct adding a
//     direction, a collected-marker bitmask, a checkpoint ordinal or a
//     resource counter. Auxiliary fields must be bounded so the space is finite.
//   - Run drives a lazy-decrease-key frontier until the mode's stop condition.
//
// Modes:
//
//   - FindFirstGoal:   stop at the first finalized goal; its cost is optimal
//     because every edge is non-negative.
//   - FullDistanceMap: run to exhaustion and return every finalized distance.
//     With unit edges this equals a breadth-first search.
//   - BestScore:       run to exhaustion maximizing Scorer.Score; pair with a
//     ScoreBound pruning policy to cut hopeless branches.
//
// Determinism:
//
//	Entries of equal cost pop in WithTieBreak order when given, then in
//	insertion order. Transitions are pure, so the pop sequence and every
//	reported value are reproducible across runs. The optimal cost itself
//	never depends on the tie-break.
//
// Pruning:
//
//	A PruningPolicy is consulted before an entry is pushed and again when it
//	is popped. Policies must be sound: discarding may only change Stats,
//	never the answer.
//
// Error handling (sentinel errors):
//
//   - ErrNilSpace, ErrNilGrid, ErrNoInitialStates: invalid inputs.
//   - grid.ErrMalformedGrid: the grid is inconsistent.
//   - ErrUnreachableGoal: the frontier emptied without a goal. Never reported
//     as a zero or sentinel cost.
//   - ErrNegativeCost: a seed or edge cost below zero.
//   - ErrCostOverflow (*CostOverflowError): cumulative cost beyond int64.
//   - ErrNoScorer, ErrBadMode, ErrBadMaxCost: invalid configuration.
//
// Thread safety:
//
//	The frontier and distance labels belong to the call to Run and are never
//	shared. A Grid and a pure StateSpace may be shared by concurrent runs.
//
// Complexity:
//
//   - Time:  O((V + E) log E), V reached states, E generated edges.
//   - Space: O(V + E) under lazy decrease-key.
package search
