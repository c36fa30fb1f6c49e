package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// ExampleGrid_Neighbors shows the fixed neighbor order on a 3×3 grid.
// Under Conn4 the order is Up, Right, Down, Left; cells outside the grid
// are skipped.
func ExampleGrid_Neighbors() {
	g, err := grid.FromLines([]string{
		"#.#",
		".S.",
		"#E#",
	}, grid.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start, _ := g.Find('S')
	for _, n := range g.Neighbors(start, grid.Conn4) {
		fmt.Printf("%v %c\n", n.Point, n.Symbol)
	}

	// Output:
	// (0,1) .
	// (1,2) .
	// (2,1) E
	// (1,0) .
}
