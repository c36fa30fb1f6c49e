package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// BenchmarkFindFirstGoal measures a corner-to-corner search on a 200×200
// random digit grid.
// Complexity: O((V+E) log E)
func BenchmarkFindFirstGoal(b *testing.B) {
	const n = 200
	g := randomDigitGrid(b, rand.New(rand.NewSource(42)), n, n)
	sp := digitSpace{start: grid.Point{}, goal: grid.Point{Row: n - 1, Col: n - 1}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.FindFirstGoal[grid.Point](sp, g)
	}
}

// BenchmarkFullDistanceMap measures exhaustive exploration of the same grid.
func BenchmarkFullDistanceMap(b *testing.B) {
	const n = 200
	g := randomDigitGrid(b, rand.New(rand.NewSource(42)), n, n)
	sp := digitSpace{start: grid.Point{}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.FullDistanceMap[grid.Point](sp, g)
	}
}
