// Package space provides ready-made search.StateSpace variants over a
// grid.Grid. Each variant is a different state type and transition rule; the
// driver in package search is shared by all of them.
//
//   - Walk:        plain unit-cost movement between non-wall cells.
//   - Levels:      cells carry a level on a cycle; a move costs the step plus
//     the shorter way around the cycle, CyclicDiff(a, b, Modulus).
//   - Collect:     the state carries a bitmask of collected markers; the goal
//     is the start cell with every reachable marker collected.
//   - Checkpoints: the state carries the last checkpoint ordinal; checkpoint k
//     can only be entered right after checkpoint k-1.
//   - Budget:      the state carries a resource counter changed by each cell;
//     moves that would overdraw it are not generated.
//   - Glider:      an unconstrained score (altitude) under a move limit, for
//     search.ModeBestScore with the admissible Bound policy.
//
// Constructors validate the configuration against the grid once, so the
// spaces themselves are immutable and safe to share between concurrent runs.
// Missing start or goal cells surface as grid.ErrSymbolNotFound, bad settings
// as ErrBadConfig.
//
// Collect needs to know its target before searching: NewCollect runs a
// breadth-first flood fill (ReachableMarkers) from the start and drops walled
// off markers from the target. Without that pass an unreachable marker would
// make the goal impossible and the search would exhaust the whole space.
package space
