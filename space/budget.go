package space

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// BudgetConfig describes movement limited by a depleting resource.
type BudgetConfig struct {
	// Start and Goal are the symbols of the seed and goal cells.
	Start, Goal byte
	// Walls lists impassable symbols.
	Walls string
	// Initial is the resource held at the start.
	Initial int64
	// Capacity caps the resource; 0 means Initial.
	Capacity int64
	// Delta is the resource change on entering a cell by symbol;
	// DefaultDelta covers symbols missing from the map.
	Delta        map[byte]int64
	DefaultDelta int64
	// StepCost is the search cost of every move.
	StepCost int64
	Conn     grid.Connectivity
}

// DefaultBudgetConfig spends one unit of resource and one unit of cost per
// step from 'S' to 'E'. Initial must still be set.
func DefaultBudgetConfig() BudgetConfig {
	return BudgetConfig{
		Start:        'S',
		Goal:         'E',
		Walls:        "#",
		DefaultDelta: -1,
		StepCost:     1,
	}
}

// BudgetState is a position plus the resource left.
type BudgetState struct {
	Pos       grid.Point
	Remaining int64
}

// Budget is the budgeted movement space. A move that would leave Remaining
// below zero is not generated; Remaining is clamped at Capacity, which keeps
// the state space finite.
type Budget struct {
	cfg   BudgetConfig
	start grid.Point
	goals map[grid.Point]bool
}

var _ search.StateSpace[BudgetState] = (*Budget)(nil)

// NewBudget locates the start and goal cells and validates the resource bounds.
func NewBudget(g *grid.Grid, cfg BudgetConfig) (*Budget, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if cfg.Capacity == 0 {
		cfg.Capacity = cfg.Initial
	}
	switch {
	case cfg.Initial < 0:
		return nil, fmt.Errorf("%w: initial budget %d", ErrBadConfig, cfg.Initial)
	case cfg.Capacity < cfg.Initial:
		return nil, fmt.Errorf("%w: capacity %d below initial budget %d", ErrBadConfig, cfg.Capacity, cfg.Initial)
	case cfg.StepCost < 0:
		return nil, fmt.Errorf("%w: step cost %d", ErrBadConfig, cfg.StepCost)
	}
	start, err := g.Find(cfg.Start)
	if err != nil {
		return nil, err
	}
	if _, err := g.Find(cfg.Goal); err != nil {
		return nil, err
	}
	goals := make(map[grid.Point]bool)
	for _, p := range g.FindAll(cfg.Goal) {
		goals[p] = true
	}

	return &Budget{cfg: cfg, start: start, goals: goals}, nil
}

// InitialStates returns the start cell holding the initial budget.
func (b *Budget) InitialStates() []search.Seed[BudgetState] {
	return []search.Seed[BudgetState]{{State: BudgetState{Pos: b.start, Remaining: b.cfg.Initial}}}
}

// Transitions yields every affordable move out of s.
func (b *Budget) Transitions(s BudgetState, g *grid.Grid) []search.Edge[BudgetState] {
	nbs := g.Neighbors(s.Pos, b.cfg.Conn)
	out := make([]search.Edge[BudgetState], 0, len(nbs))
	for _, n := range nbs {
		if isWall(n.Symbol, b.cfg.Walls) {
			continue
		}
		left, err := search.AddCost(s.Remaining, b.delta(n.Symbol))
		if err != nil || left < 0 {
			continue
		}
		out = append(out, search.Edge[BudgetState]{
			To:   BudgetState{Pos: n.Point, Remaining: min(left, b.cfg.Capacity)},
			Cost: b.cfg.StepCost,
		})
	}

	return out
}

func (b *Budget) delta(sym byte) int64 {
	if v, ok := b.cfg.Delta[sym]; ok {
		return v
	}

	return b.cfg.DefaultDelta
}

// IsGoal reports whether s stands on a goal cell, whatever its budget.
func (b *Budget) IsGoal(s BudgetState) bool { return b.goals[s.Pos] }
