package search

import "container/heap"

// entry is a (state, tentative cost) pair waiting in the frontier.
// seq is the insertion counter used as the final tie-break.
type entry[S comparable] struct {
	state S
	cost  int64
	seq   uint64
}

// Frontier is a min-priority queue of states ordered by tentative cost.
//
// Equal costs are ordered by the optional less function, then by insertion
// order, so pop order is fully deterministic. Stale entries for the same
// state may coexist ("lazy decrease-key"); the driver discards them on pop.
type Frontier[S comparable] struct {
	h   entryHeap[S]
	seq uint64
}

// NewFrontier returns an empty frontier. less may be nil.
func NewFrontier[S comparable](less func(a, b S) bool) *Frontier[S] {
	f := &Frontier[S]{h: entryHeap[S]{less: less}}
	heap.Init(&f.h)

	return f
}

// Len returns the number of queued entries, stale ones included.
func (f *Frontier[S]) Len() int { return f.h.Len() }

// Push queues s at cost.
func (f *Frontier[S]) Push(s S, cost int64) {
	heap.Push(&f.h, entry[S]{state: s, cost: cost, seq: f.seq})
	f.seq++
}

// Pop removes and returns the minimum entry. The frontier must be non-empty.
func (f *Frontier[S]) Pop() (S, int64) {
	e := heap.Pop(&f.h).(entry[S])

	return e.state, e.cost
}

// entryHeap implements heap.Interface ordered by (cost, less, seq).
type entryHeap[S comparable] struct {
	items []entry[S]
	less  func(a, b S) bool
}

func (h entryHeap[S]) Len() int { return len(h.items) }

func (h entryHeap[S]) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if h.less != nil {
		if h.less(a.state, b.state) {
			return true
		}
		if h.less(b.state, a.state) {
			return false
		}
	}

	return a.seq < b.seq
}

func (h entryHeap[S]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *entryHeap[S]) Push(x any) { h.items = append(h.items, x.(entry[S])) }

func (h *entryHeap[S]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}
