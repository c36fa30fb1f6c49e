package space

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// GliderConfig describes a timed glide scoring final altitude.
type GliderConfig struct {
	// Start is the symbol of the launch cell.
	Start byte
	// Walls lists impassable symbols.
	Walls string
	// TimeLimit is the number of moves available.
	TimeLimit int64
	// Altitude is the starting altitude.
	Altitude int64
	// Delta is the altitude change on entering a cell by symbol;
	// DefaultDelta covers symbols missing from the map.
	Delta        map[byte]int64
	DefaultDelta int64
	// Directions are the launch headings; empty means all four.
	Directions []grid.Direction
}

// DefaultGliderConfig launches from 'S' at altitude 1000 with 100 moves;
// '+' lifts by one, '-' sinks by two, anything else sinks by one.
func DefaultGliderConfig() GliderConfig {
	return GliderConfig{
		Start:        'S',
		Walls:        "#",
		TimeLimit:    100,
		Altitude:     1000,
		Delta:        map[byte]int64{'+': 1, '-': -2},
		DefaultDelta: -1,
	}
}

// GliderState is a position, heading, moves left and current altitude.
type GliderState struct {
	Pos      grid.Point
	Dir      grid.Direction
	TimeLeft int64
	Altitude int64
}

// Glider moves straight, left or right, never back, at cost 1 per move until
// the time runs out. Altitude is unconstrained and is the score maximized in
// search.ModeBestScore runs; TimeLeft bounds the space.
type Glider struct {
	cfg   GliderConfig
	start grid.Point
	dirs  []grid.Direction
}

var (
	_ search.StateSpace[GliderState] = (*Glider)(nil)
	_ search.Scorer[GliderState]     = (*Glider)(nil)
)

// NewGlider locates the launch cell.
func NewGlider(g *grid.Grid, cfg GliderConfig) (*Glider, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if cfg.TimeLimit < 0 {
		return nil, fmt.Errorf("%w: time limit %d", ErrBadConfig, cfg.TimeLimit)
	}
	start, err := g.Find(cfg.Start)
	if err != nil {
		return nil, err
	}
	dirs := cfg.Directions
	if len(dirs) == 0 {
		dirs = grid.Directions[:]
	}

	return &Glider{cfg: cfg, start: start, dirs: dirs}, nil
}

// InitialStates launches once per allowed heading.
func (gl *Glider) InitialStates() []search.Seed[GliderState] {
	out := make([]search.Seed[GliderState], len(gl.dirs))
	for i, d := range gl.dirs {
		out[i] = search.Seed[GliderState]{State: GliderState{
			Pos:      gl.start,
			Dir:      d,
			TimeLeft: gl.cfg.TimeLimit,
			Altitude: gl.cfg.Altitude,
		}}
	}

	return out
}

// Transitions yields the straight, left and right moves while time remains.
func (gl *Glider) Transitions(s GliderState, g *grid.Grid) []search.Edge[GliderState] {
	if s.TimeLeft <= 0 {
		return nil
	}
	out := make([]search.Edge[GliderState], 0, 3)
	for _, d := range [3]grid.Direction{s.Dir, s.Dir.TurnLeft(), s.Dir.TurnRight()} {
		n, ok := g.Step(s.Pos, d)
		if !ok || isWall(n.Symbol, gl.cfg.Walls) {
			continue
		}
		out = append(out, search.Edge[GliderState]{
			To: GliderState{
				Pos:      n.Point,
				Dir:      d,
				TimeLeft: s.TimeLeft - 1,
				Altitude: s.Altitude + gl.delta(n.Symbol),
			},
			Cost: 1,
		})
	}

	return out
}

func (gl *Glider) delta(sym byte) int64 {
	if v, ok := gl.cfg.Delta[sym]; ok {
		return v
	}

	return gl.cfg.DefaultDelta
}

// IsGoal is always false: a glide is scored, not finished.
func (gl *Glider) IsGoal(GliderState) bool { return false }

// Score returns the altitude of s.
func (gl *Glider) Score(s GliderState) int64 { return s.Altitude }

// MaxGain returns the largest altitude gain of a single move, at least 0.
func (gl *Glider) MaxGain() int64 {
	gain := max(int64(0), gl.cfg.DefaultDelta)
	for _, v := range gl.cfg.Delta {
		gain = max(gain, v)
	}

	return gain
}

// Bound returns the admissible pruning policy for BestScore runs: no glide
// can end above Altitude + TimeLeft*MaxGain.
func (gl *Glider) Bound() search.PruningPolicy[GliderState] {
	return search.ScoreBound(func(s GliderState) (int64, int64) {
		return s.Altitude, s.TimeLeft
	}, gl.MaxGain())
}
