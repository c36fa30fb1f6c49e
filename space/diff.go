package space

import "golang.org/x/exp/constraints"

// AbsDiff returns |a-b|.
func AbsDiff[T constraints.Signed](a, b T) T {
	if a > b {
		return a - b
	}

	return b - a
}

// CyclicDiff returns the shorter way around a cycle of length m between a
// and b: min(d, m-d) with d = |a-b| mod m. m must be positive.
func CyclicDiff[T constraints.Signed](a, b, m T) T {
	d := AbsDiff(a, b) % m

	return min(d, m-d)
}
