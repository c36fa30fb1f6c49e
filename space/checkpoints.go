package space

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// CheckpointsConfig describes a route that must pass ordered checkpoints.
type CheckpointsConfig struct {
	// Start is the symbol of the single start cell.
	Start byte
	// Goal is the symbol of the finish cells; 0 means "back at the start".
	Goal byte
	// Checkpoints lists the checkpoint symbols in the order they must be
	// entered: Checkpoints[k-1] is checkpoint k.
	Checkpoints string
	// Walls lists impassable symbols.
	Walls string
	// CellCost is the cost of entering a cell by symbol; DefaultCost covers
	// symbols missing from the map.
	CellCost    map[byte]int64
	DefaultCost int64
	// Directions are the headings the route may start with; empty means all four.
	Directions []grid.Direction
	// NoReverse forbids turning back: each move goes straight, left or right.
	NoReverse bool
}

// DefaultCheckpointsConfig returns a loop from 'S' back to 'S' through A, B
// and C, one unit per step, free to turn in any direction.
func DefaultCheckpointsConfig() CheckpointsConfig {
	return CheckpointsConfig{
		Start:       'S',
		Checkpoints: "ABC",
		Walls:       "#",
		DefaultCost: 1,
	}
}

// CheckpointState is a position, the heading of the last move, and the
// ordinal of the last checkpoint satisfied.
type CheckpointState struct {
	Pos  grid.Point
	Dir  grid.Direction
	Last uint8
}

// Checkpoints is the ordered-checkpoint gating space. Entering the k-th
// checkpoint (1-based) is legal only when Last == k-1; other cells leave Last unchanged, so Last
// never decreases along a path.
type Checkpoints struct {
	cfg   CheckpointsConfig
	start grid.Point
	goals map[grid.Point]bool
	dirs  []grid.Direction
}

var _ search.StateSpace[CheckpointState] = (*Checkpoints)(nil)

// NewCheckpoints locates the start and goal cells and validates the costs.
func NewCheckpoints(g *grid.Grid, cfg CheckpointsConfig) (*Checkpoints, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(cfg.Checkpoints) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: %d checkpoints", ErrBadConfig, len(cfg.Checkpoints))
	}
	for i := 0; i < len(cfg.Checkpoints); i++ {
		if strings.IndexByte(cfg.Checkpoints[i+1:], cfg.Checkpoints[i]) >= 0 {
			return nil, fmt.Errorf("%w: duplicate checkpoint %q", ErrBadConfig, cfg.Checkpoints[i])
		}
	}
	if cfg.DefaultCost < 0 {
		return nil, fmt.Errorf("%w: default cost %d", ErrBadConfig, cfg.DefaultCost)
	}
	for sym, c := range cfg.CellCost {
		if c < 0 {
			return nil, fmt.Errorf("%w: cost %d for %q", ErrBadConfig, c, sym)
		}
	}
	start, err := g.Find(cfg.Start)
	if err != nil {
		return nil, err
	}
	goals := map[grid.Point]bool{start: true}
	if cfg.Goal != 0 {
		if _, err := g.Find(cfg.Goal); err != nil {
			return nil, err
		}
		goals = make(map[grid.Point]bool)
		for _, p := range g.FindAll(cfg.Goal) {
			goals[p] = true
		}
	}
	dirs := cfg.Directions
	if len(dirs) == 0 {
		dirs = grid.Directions[:]
	}

	return &Checkpoints{cfg: cfg, start: start, goals: goals, dirs: dirs}, nil
}

// InitialStates returns the start cell once per allowed starting heading.
func (c *Checkpoints) InitialStates() []search.Seed[CheckpointState] {
	out := make([]search.Seed[CheckpointState], len(c.dirs))
	for i, d := range c.dirs {
		out[i] = search.Seed[CheckpointState]{State: CheckpointState{Pos: c.start, Dir: d}}
	}

	return out
}

// Transitions yields the legal moves out of s with the cost of the entered cell.
func (c *Checkpoints) Transitions(s CheckpointState, g *grid.Grid) []search.Edge[CheckpointState] {
	var headings []grid.Direction
	if c.cfg.NoReverse {
		headings = []grid.Direction{s.Dir, s.Dir.TurnLeft(), s.Dir.TurnRight()}
	} else {
		headings = grid.Directions[:]
	}
	out := make([]search.Edge[CheckpointState], 0, len(headings))
	for _, d := range headings {
		n, ok := g.Step(s.Pos, d)
		if !ok || isWall(n.Symbol, c.cfg.Walls) {
			continue
		}
		last := s.Last
		if k := strings.IndexByte(c.cfg.Checkpoints, n.Symbol); k >= 0 {
			// checkpoint k+1 is only open right after checkpoint k
			if int(s.Last) != k {
				continue
			}
			last = uint8(k + 1)
		}
		out = append(out, search.Edge[CheckpointState]{
			To:   CheckpointState{Pos: n.Point, Dir: d, Last: last},
			Cost: c.cost(n.Symbol),
		})
	}

	return out
}

func (c *Checkpoints) cost(sym byte) int64 {
	if v, ok := c.cfg.CellCost[sym]; ok {
		return v
	}

	return c.cfg.DefaultCost
}

// IsGoal reports whether s stands on a goal cell with every checkpoint passed.
func (c *Checkpoints) IsGoal(s CheckpointState) bool {
	return int(s.Last) == len(c.cfg.Checkpoints) && c.goals[s.Pos]
}
