package algo

import (
	"github.com/elektrokombinacija/mp3d/internal/core"
)

// Heuristic is the estimate(&T, &T) -> f64 contract spec.md §9's
// re-architecture guidance calls for: a stateless interface so the two
// built-ins can be zero-sized values, and so AStarPlanner stays generic
// over its lattice value type rather than fixed to core.LatticePose.
type Heuristic[T any] interface {
	Estimate(from, to T) float64
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc[T any] func(from, to T) float64

// Estimate calls f.
func (f HeuristicFunc[T]) Estimate(from, to T) float64 {
	return f(from, to)
}

// latticeToWorld is the narrow lattice-to-world conversion EuclideanHeuristic
// needs; Environment3D satisfies it.
type latticeToWorld interface {
	PlannerToWorld(core.LatticePose) core.Transform3D
}

// EuclideanHeuristic returns the straight-line distance between two lattice
// poses' world positions. Admissible when edge cost upper-bounds Euclidean
// distance, which it does not on this lattice once rotation is involved
// (rotations add cost with no positional movement) — still a useful guide,
// per spec.md §4.6.
func EuclideanHeuristic(env latticeToWorld) Heuristic[core.LatticePose] {
	return HeuristicFunc[core.LatticePose](func(from, to core.LatticePose) float64 {
		a := env.PlannerToWorld(from).Position
		b := env.PlannerToWorld(to).Position
		return float64(a.Sub(b).Length())
	})
}

// ManhattanHeuristic sums the componentwise absolute differences on all six
// lattice components. Admissible: it is the exact edge-cost formula
// Environment3D.Cost implements, so it never overestimates the cost to goal.
func ManhattanHeuristic() Heuristic[core.LatticePose] {
	return HeuristicFunc[core.LatticePose](func(from, to core.LatticePose) float64 {
		return float64(from.ManhattanDistance(to))
	})
}
