// Package gridsearch is an in-memory engine for shortest-path and best-score
// questions over 2-D character grids whose search state is richer than a
// position.
//
// What is in the box?
//
//	A small, dependency-light toolkit that brings together:
//		• grid/     : immutable byte grid, points, Conn4/Conn8, headings
//		• search/   : generic uniform-cost driver over StateSpace[S]
//		• bfs/      : unit-step breadth-first walker over the same spaces
//		• space/    : ready-made state spaces (levels, markers, checkpoints,
//		               budgets, glider)
//		• aggregate/: parallel reductions: min over sources, sum/max over targets
//		• metrics/  : Prometheus collector fed by the driver
//
// Why a state space?
//
//	The same Dijkstra loop answers "reach E", "collect every herb and come
//	back", "visit A, B, C in order without reversing" and "maximize altitude
//	in 100 moves". Only the state type and its transition function change.
//
// Quick example:
//
//	g, _ := grid.FromLines([]string{"S.#", "..E"}, grid.DefaultOptions())
//	sp, _ := space.NewWalk(g, space.WalkConfig{
//		Starts:      g.FindAll('S'),
//		GoalSymbols: "E",
//		Walls:       "#",
//	})
//	cost, err := search.FindFirstGoal[grid.Point](sp, g)
//	// cost == 3
//
// See examples/ for runnable programs.
package gridsearch
