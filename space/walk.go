package space

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// WalkConfig describes plain unit-cost movement.
type WalkConfig struct {
	// Starts are the seed cells, all at cost 0.
	Starts []grid.Point
	// Goals are explicit goal cells.
	Goals []grid.Point
	// GoalSymbols marks every cell holding one of these symbols as a goal.
	GoalSymbols string
	// Walls lists impassable symbols.
	Walls string
	// Conn is the move connectivity; the zero value uses the grid's own.
	Conn grid.Connectivity
}

// Walk moves between non-wall neighbors at cost 1 per step.
type Walk struct {
	cfg   WalkConfig
	goals map[grid.Point]bool
}

var _ search.StateSpace[grid.Point] = (*Walk)(nil)

// NewWalk resolves goal symbols against g and checks every start cell.
// Returns ErrBadConfig when there is no start or a start is outside g or on a wall.
func NewWalk(g *grid.Grid, cfg WalkConfig) (*Walk, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Starts) == 0 {
		return nil, fmt.Errorf("%w: walk has no start cell", ErrBadConfig)
	}
	for _, p := range cfg.Starts {
		sym, ok := g.At(p)
		if !ok {
			return nil, fmt.Errorf("%w: start %v outside %d×%d grid", ErrBadConfig, p, g.Height(), g.Width())
		}
		if isWall(sym, cfg.Walls) {
			return nil, fmt.Errorf("%w: start %v is a wall %q", ErrBadConfig, p, sym)
		}
	}
	goals := make(map[grid.Point]bool, len(cfg.Goals))
	for _, p := range cfg.Goals {
		goals[p] = true
	}
	if cfg.GoalSymbols != "" {
		for _, p := range g.FindFunc(func(_ grid.Point, sym byte) bool {
			return strings.IndexByte(cfg.GoalSymbols, sym) >= 0
		}) {
			goals[p] = true
		}
	}

	return &Walk{cfg: cfg, goals: goals}, nil
}

// InitialStates returns every start cell at cost 0.
func (w *Walk) InitialStates() []search.Seed[grid.Point] {
	out := make([]search.Seed[grid.Point], len(w.cfg.Starts))
	for i, p := range w.cfg.Starts {
		out[i] = search.Seed[grid.Point]{State: p}
	}

	return out
}

// Transitions yields every non-wall neighbor of p at cost 1.
func (w *Walk) Transitions(p grid.Point, g *grid.Grid) []search.Edge[grid.Point] {
	nbs := g.Neighbors(p, w.cfg.Conn)
	out := make([]search.Edge[grid.Point], 0, len(nbs))
	for _, n := range nbs {
		if !isWall(n.Symbol, w.cfg.Walls) {
			out = append(out, search.Edge[grid.Point]{To: n.Point, Cost: 1})
		}
	}

	return out
}

// IsGoal reports whether p is one of the goal cells.
func (w *Walk) IsGoal(p grid.Point) bool { return w.goals[p] }

// Goals returns the resolved goal cells in row-major order.
func (w *Walk) Goals(g *grid.Grid) []grid.Point {
	return g.FindFunc(func(p grid.Point, _ byte) bool { return w.goals[p] })
}

// PerSource splits w into one single-start space per start cell, for
// aggregations that run every source independently.
func (w *Walk) PerSource() []*Walk {
	out := make([]*Walk, len(w.cfg.Starts))
	for i, p := range w.cfg.Starts {
		cfg := w.cfg
		cfg.Starts = []grid.Point{p}
		out[i] = &Walk{cfg: cfg, goals: w.goals}
	}

	return out
}

func isWall(sym byte, walls string) bool {
	return strings.IndexByte(walls, sym) >= 0
}
