package space

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// maxMarkers is the width of the collected-marker mask.
const maxMarkers = 64

// CollectConfig describes a collect-everything-and-return walk.
type CollectConfig struct {
	// Start is the cell the walk leaves from and must return to.
	Start grid.Point
	// Markers lists the collectible symbols; Markers[i] sets bit i.
	Markers string
	// Walls lists impassable symbols.
	Walls string
	Conn  grid.Connectivity
}

// DefaultCollectConfig uses upper-case letters as markers and treats '#'
// and '~' as impassable.
func DefaultCollectConfig(start grid.Point) CollectConfig {
	return CollectConfig{
		Start:   start,
		Markers: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		Walls:   "#~",
	}
}

// CollectState is a position plus the set of markers picked up so far.
type CollectState struct {
	Pos  grid.Point
	Mask uint64
}

// Collect is the bitmask-augmented movement space. Entering a marker cell
// sets its bit; the goal is the start cell with every reachable marker set.
type Collect struct {
	cfg    CollectConfig
	target uint64
	seed   uint64
}

var _ search.StateSpace[CollectState] = (*Collect)(nil)

// NewCollect validates cfg and fixes the target mask with ReachableMarkers.
// Markers walled off from the start are left out of the target, so the goal
// stays satisfiable.
func NewCollect(g *grid.Grid, cfg CollectConfig) (*Collect, error) {
	target, err := ReachableMarkers(g, cfg)
	if err != nil {
		return nil, err
	}

	sym, _ := g.At(cfg.Start)

	return &Collect{cfg: cfg, target: target, seed: markerBit(cfg.Markers, sym)}, nil
}

// ReachableMarkers flood-fills from cfg.Start and returns the mask of every
// marker symbol seen.
func ReachableMarkers(g *grid.Grid, cfg CollectConfig) (uint64, error) {
	if err := validateMarkers(cfg); err != nil {
		return 0, err
	}
	walk, err := NewWalk(g, WalkConfig{Starts: []grid.Point{cfg.Start}, Walls: cfg.Walls, Conn: cfg.Conn})
	if err != nil {
		return 0, err
	}
	res, err := bfs.BFS[grid.Point](walk, g)
	if err != nil {
		return 0, err
	}
	var mask uint64
	for _, p := range res.Order {
		sym, _ := g.At(p)
		mask |= markerBit(cfg.Markers, sym)
	}

	return mask, nil
}

func validateMarkers(cfg CollectConfig) error {
	if len(cfg.Markers) > maxMarkers {
		return fmt.Errorf("%w: %d markers exceed the %d-bit mask", ErrBadConfig, len(cfg.Markers), maxMarkers)
	}
	for i := 0; i < len(cfg.Markers); i++ {
		m := cfg.Markers[i]
		if strings.IndexByte(cfg.Markers[i+1:], m) >= 0 {
			return fmt.Errorf("%w: duplicate marker %q", ErrBadConfig, m)
		}
		if isWall(m, cfg.Walls) {
			return fmt.Errorf("%w: marker %q is also a wall", ErrBadConfig, m)
		}
	}

	return nil
}

func markerBit(markers string, sym byte) uint64 {
	if i := strings.IndexByte(markers, sym); i >= 0 {
		return 1 << uint(i)
	}

	return 0
}

// Target returns the mask of markers the walk must collect.
func (c *Collect) Target() uint64 { return c.target }

// Remaining returns how many target markers s still lacks.
func (c *Collect) Remaining(s CollectState) int {
	return bits.OnesCount64(c.target &^ s.Mask)
}

// InitialStates returns the start cell, holding its own marker if any.
func (c *Collect) InitialStates() []search.Seed[CollectState] {
	return []search.Seed[CollectState]{{State: CollectState{Pos: c.cfg.Start, Mask: c.seed}}}
}

// Transitions yields every non-wall neighbor at cost 1, collecting its marker.
func (c *Collect) Transitions(s CollectState, g *grid.Grid) []search.Edge[CollectState] {
	nbs := g.Neighbors(s.Pos, c.cfg.Conn)
	out := make([]search.Edge[CollectState], 0, len(nbs))
	for _, n := range nbs {
		if isWall(n.Symbol, c.cfg.Walls) {
			continue
		}
		out = append(out, search.Edge[CollectState]{
			To:   CollectState{Pos: n.Point, Mask: s.Mask | markerBit(c.cfg.Markers, n.Symbol)},
			Cost: 1,
		})
	}

	return out
}

// IsGoal reports whether s is back at the start with the target collected.
func (c *Collect) IsGoal(s CollectState) bool {
	return s.Pos == c.cfg.Start && s.Mask&c.target == c.target
}
