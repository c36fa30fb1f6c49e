package aggregate_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridsearch/aggregate"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
	"github.com/katalvlaran/gridsearch/space"
)

// ExampleMinOverSources runs one search per start cell and keeps the cheapest.
func ExampleMinOverSources() {
	g, _ := grid.FromLines([]string{
		"S1234",
		"####5",
		"S876E",
	}, grid.DefaultOptions())

	levels, err := space.NewLevels(g, space.DefaultLevelsConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	var spaces []search.StateSpace[grid.Point]
	for _, sp := range levels.PerSource() {
		spaces = append(spaces, sp)
	}

	best, err := aggregate.MinOverSources(context.Background(), spaces, g, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("best:", best)
	// Output:
	// best: 12
}

// ExampleTimeUntilAll floods a channel from both ends.
func ExampleTimeUntilAll() {
	g, _ := grid.FromLines([]string{
		".P#P.",
		"...P.",
	}, grid.DefaultOptions())

	water, _ := space.NewWalk(g, space.WalkConfig{
		Starts: []grid.Point{{Row: 0, Col: 0}, {Row: 0, Col: 4}},
		Walls:  "#",
	})
	minutes, err := aggregate.TimeUntilAll[grid.Point](context.Background(), water, g, g.FindAll('P'), nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("all palms watered after", minutes)
	// Output:
	// all palms watered after 2
}
