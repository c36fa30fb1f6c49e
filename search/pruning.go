package search

// PruningPolicy decides whether a frontier entry can be dropped.
//
// best is the best-known answer: the running maximum score in BestScore
// mode, the incumbent cost (WithIncumbent) otherwise. A policy is sound only
// if no continuation of (s, cost) can produce an answer better than best;
// a sound policy changes exploration counts, never the final answer.
type PruningPolicy[S comparable] interface {
	ShouldDiscard(s S, cost int64, best int64) bool
}

// PruneFunc adapts an ordinary function to PruningPolicy.
type PruneFunc[S comparable] func(s S, cost int64, best int64) bool

// ShouldDiscard calls f.
func (f PruneFunc[S]) ShouldDiscard(s S, cost int64, best int64) bool {
	return f(s, cost, best)
}

// CostCeiling discards entries whose cost already exceeds the incumbent.
// Sound for the minimizing modes because edge costs are non-negative, so a
// continuation never costs less than its prefix.
func CostCeiling[S comparable]() PruningPolicy[S] {
	return PruneFunc[S](func(_ S, cost int64, best int64) bool {
		return cost > best
	})
}

// ScoreBound discards entries in BestScore mode whose optimistic score
// cannot beat best. budget reports the current score and the resource left
// (for example remaining time); every unit of resource can add at most gain
// to the score, so score + remaining*gain is an admissible upper bound.
func ScoreBound[S comparable](budget func(s S) (score, remaining int64), gain int64) PruningPolicy[S] {
	return PruneFunc[S](func(s S, _ int64, best int64) bool {
		score, remaining := budget(s)
		extra, err := MulCost(remaining, gain)
		if err != nil {
			return false
		}
		bound, err := AddCost(score, extra)
		if err != nil {
			return false
		}

		return bound <= best
	})
}
