package space

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// LevelsConfig describes movement across cells carrying a cyclic level.
type LevelsConfig struct {
	// Start and Goal are the symbols of the seed and goal cells. Every cell
	// holding Start is a seed.
	Start, Goal byte
	// Walls lists impassable symbols.
	Walls string
	// Modulus is the cycle length of the level scale (10 for digits 0-9).
	Modulus int
	// StepCost is paid on every move in addition to the level difference.
	StepCost int64
	// Conn is the move connectivity; the zero value uses the grid's own.
	Conn grid.Connectivity
}

// DefaultLevelsConfig returns S→E over digit levels 0-9 on a cycle of ten,
// one unit per step, 4-connected, with '#' walls.
func DefaultLevelsConfig() LevelsConfig {
	return LevelsConfig{
		Start:    'S',
		Goal:     'E',
		Walls:    "#",
		Modulus:  10,
		StepCost: 1,
	}
}

// Levels is the symmetric-difference movement space: a move from level a to
// level b costs StepCost + min(|a-b|, Modulus-|a-b|).
type Levels struct {
	cfg    LevelsConfig
	starts []grid.Point
	goals  map[grid.Point]bool
}

var _ search.StateSpace[grid.Point] = (*Levels)(nil)

// NewLevels locates every start and goal cell of g.
// Missing start or goal cells fail with grid.ErrSymbolNotFound; a walkable
// cell whose level is not below Modulus fails with ErrBadConfig.
func NewLevels(g *grid.Grid, cfg LevelsConfig) (*Levels, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if cfg.Modulus < 1 {
		return nil, fmt.Errorf("%w: modulus %d", ErrBadConfig, cfg.Modulus)
	}
	if cfg.StepCost < 0 {
		return nil, fmt.Errorf("%w: step cost %d", ErrBadConfig, cfg.StepCost)
	}
	if _, err := g.Find(cfg.Start); err != nil {
		return nil, err
	}
	if _, err := g.Find(cfg.Goal); err != nil {
		return nil, err
	}
	l := &Levels{cfg: cfg, starts: g.FindAll(cfg.Start), goals: make(map[grid.Point]bool)}
	for _, p := range g.FindAll(cfg.Goal) {
		l.goals[p] = true
	}
	off := g.FindFunc(func(_ grid.Point, sym byte) bool {
		lvl, ok := l.Level(sym)
		return ok && lvl >= cfg.Modulus
	})
	if len(off) > 0 {
		sym, _ := g.At(off[0])
		return nil, fmt.Errorf("%w: level %q at %v outside modulus %d", ErrBadConfig, sym, off[0], cfg.Modulus)
	}

	return l, nil
}

// Level returns the level encoded by sym. Digits are their value, the start
// and goal symbols are level 0, anything else is not walkable.
func (l *Levels) Level(sym byte) (int, bool) {
	switch {
	case isWall(sym, l.cfg.Walls):
		return 0, false
	case sym >= '0' && sym <= '9':
		return int(sym - '0'), true
	case sym == l.cfg.Start || sym == l.cfg.Goal:
		return 0, true
	}

	return 0, false
}

// InitialStates returns every start cell at cost 0.
func (l *Levels) InitialStates() []search.Seed[grid.Point] {
	out := make([]search.Seed[grid.Point], len(l.starts))
	for i, p := range l.starts {
		out[i] = search.Seed[grid.Point]{State: p}
	}

	return out
}

// Transitions yields every walkable neighbor with its step and climb cost.
func (l *Levels) Transitions(p grid.Point, g *grid.Grid) []search.Edge[grid.Point] {
	sym, _ := g.At(p)
	from, ok := l.Level(sym)
	if !ok {
		return nil
	}
	nbs := g.Neighbors(p, l.cfg.Conn)
	out := make([]search.Edge[grid.Point], 0, len(nbs))
	for _, n := range nbs {
		to, ok := l.Level(n.Symbol)
		if !ok {
			continue
		}
		climb := int64(CyclicDiff(from, to, l.cfg.Modulus))
		out = append(out, search.Edge[grid.Point]{To: n.Point, Cost: l.cfg.StepCost + climb})
	}

	return out
}

// IsGoal reports whether p holds the goal symbol.
func (l *Levels) IsGoal(p grid.Point) bool { return l.goals[p] }

// Starts returns the seed cells in row-major order.
func (l *Levels) Starts() []grid.Point { return l.starts }

// PerSource splits l into one single-start space per start cell.
func (l *Levels) PerSource() []*Levels {
	out := make([]*Levels, len(l.starts))
	for i, p := range l.starts {
		out[i] = &Levels{cfg: l.cfg, starts: []grid.Point{p}, goals: l.goals}
	}

	return out
}
