// Package grid treats a rectangular 2D block of byte symbols as the immutable
// world model for state-space searches.
//
// What:
//
//   - Grid wraps a rectangular set of rows, deep-copied into a dense row-major store.
//   - Bounds-checked access by (row, col) or Point; out-of-bounds reads report ok=false.
//   - Neighbor enumeration under Conn4 or Conn8 in a fixed, documented order;
//     ConnGrid picks the connectivity the Grid was built with.
//   - A closed Direction vocabulary (Up, Right, Down, Left) with turns and offsets.
//   - Symbol lookups (Find, FindAll, FindFunc, Count) used by state spaces to
//     locate start, goal, marker and checkpoint cells.
//
// Why:
//
//   - Search drivers share one Grid across parallel runs. Nothing mutates it
//     after New returns, so no synchronization is needed.
//   - A deterministic neighbor order keeps equal-cost tie-breaking reproducible.
//
// Neighbor order:
//
//   - Conn4: Up, Right, Down, Left.
//   - Conn8: Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft.
//
// Complexity:
//
//   - New/FromLines: O(W×H) time and memory.
//   - Cell/At/InBounds/Step: O(1).
//   - Neighbors: O(d), d = 4 or 8.
//   - Find/FindAll/FindFunc/Count: O(W×H).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every structural problem below.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrSymbolNotFound: a required symbol (start, goal, ...) is absent.
package grid
