// Package algo implements the weighted A* search core: the indexed heap,
// state table, generic environment contract, the concrete lattice
// environment, and the planner control loop built on top of them.
package algo

import "math"

// InvalidIndex marks a SearchNode as not currently resident in any heap.
const InvalidIndex = -1

// SearchNode is the per-state record spec.md §3 describes: a lattice value,
// its best-known path cost, a parent back-pointer, and the node's current
// heap slot. A node is owned by the StateTable that interned it and is
// borrowed by at most one AStarPlanner search at a time.
type SearchNode[T any] struct {
	Value  T
	G      float64
	Parent *SearchNode[T]
	Slot   int
	Closed bool
}

// NewSearchNode builds a fresh node for value with g = +Inf (unreached) and
// no heap residency, matching the StateTable's insertion default.
func NewSearchNode[T any](value T) *SearchNode[T] {
	return &SearchNode[T]{
		Value: value,
		G:     math.Inf(1),
		Slot:  InvalidIndex,
	}
}

// InHeap reports whether the node currently occupies a valid heap slot.
func (n *SearchNode[T]) InHeap() bool {
	return n.Slot != InvalidIndex
}

// Reset restores a node to its pre-search state: unreached, no parent, not
// closed, not in a heap. Called when a planner clears its scratch state on
// entry to a new plan() call; the node's identity and Value are untouched so
// the StateTable's interning survives across plans.
func (n *SearchNode[T]) Reset() {
	n.G = math.Inf(1)
	n.Parent = nil
	n.Closed = false
	n.Slot = InvalidIndex
}
