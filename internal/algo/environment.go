package algo

import "github.com/elektrokombinacija/mp3d/internal/core"

// Environment is the generic state-graph contract spec.md §4.3 names: state
// interning, the validity predicate, successor/cost hooks, and the
// lattice/world conversion pair. AStarPlanner is generic over this
// interface; Environment3D is the one concrete implementation this core
// ships.
type Environment[T any] interface {
	// StateValid is a pure predicate over a lattice value; implementations
	// may cache the result.
	StateValid(value T) bool

	// AddState interns value, returning the canonical node for it.
	AddState(value T) *SearchNode[T]

	// Successors fills the neighbor and edge-cost of node's candidate
	// successors. It may create and intern new nodes but MUST NOT mutate
	// the g or parent of any node, including node itself.
	Successors(node *SearchNode[T]) (neighbors []*SearchNode[T], costs []float64)

	// Cost returns the edge cost between two adjacent lattice states; ok is
	// false when there is no edge.
	Cost(u, v T) (cost float64, ok bool)

	// WorldToPlanner and PlannerToWorld convert between world-space
	// transforms and this environment's lattice value type. The pair forms
	// a bijection up to rounding (spec.md §4.4).
	WorldToPlanner(world core.Transform3D) T
	PlannerToWorld(value T) core.Transform3D

	// HashFunction returns the hash used to key this environment's state
	// tables, for callers that build their own StateTable instances.
	HashFunction() func(T) int64
}
