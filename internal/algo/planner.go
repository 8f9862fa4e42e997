package algo

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/elektrokombinacija/mp3d/internal/core"
)

// AStarPlanner is the weighted-A* control loop spec.md §4.5 describes: open
// and closed set management, relaxation, path reconstruction, and
// cooperative cancellation. It is generic over its environment's lattice
// value type, per the Design Notes' "Environment polymorphism" guidance.
type AStarPlanner[T any] struct {
	env       Environment[T]
	heuristic Heuristic[T]

	weight float64
	delay  time.Duration

	stop atomic.Bool

	observer Observer

	closed          map[*SearchNode[T]]bool
	exploredStates  []T
	stateExpansions int
	lastSearchMicro int64

	logger *log.Logger
}

// SetLogger installs a diagnostics sink for the "invalid endpoint" and
// "no path" outcomes spec.md §7 names, plus a summary line after every
// search (state-expansion count and elapsed time, matching
// original_source/MPAStarPlanner.h's post-search log). A nil logger (the
// default) disables all output.
func (p *AStarPlanner[T]) SetLogger(logger *log.Logger) {
	p.logger = logger
}

// NewAStarPlanner builds a planner with weight 1 (optimal, given an
// admissible heuristic) and no per-expansion delay.
func NewAStarPlanner[T any](env Environment[T], heuristic Heuristic[T]) *AStarPlanner[T] {
	return &AStarPlanner[T]{
		env:       env,
		heuristic: heuristic,
		weight:    1,
		observer:  NopObserver{},
		closed:    make(map[*SearchNode[T]]bool),
	}
}

// SetWeight sets the heuristic inflation factor w >= 1. Weighted A* with
// w > 1 sacrifices optimality for speed: the returned path cost is bounded
// by w times optimal.
func (p *AStarPlanner[T]) SetWeight(w float64) {
	if w < 1 {
		w = 1
	}
	p.weight = w
}

// SetDelay sets an optional per-expansion delay, intended to let a host UI
// render intermediate state. A zero delay (the default) disables it.
func (p *AStarPlanner[T]) SetDelay(d time.Duration) {
	p.delay = d
}

// SetObserver installs a per-expansion observer, a host-driven callback
// invoked on every expansion in addition to the SetDelay sleep.
func (p *AStarPlanner[T]) SetObserver(obs Observer) {
	if obs == nil {
		obs = NopObserver{}
	}
	p.observer = obs
}

// Stop sets the cooperative cancellation flag. An in-flight expansion runs
// to completion; the flag is observed at the top of the next loop
// iteration.
func (p *AStarPlanner[T]) Stop() {
	p.stop.Store(true)
}

// ExploredStates returns the lattice values expanded during the most recent
// Plan call, in expansion order.
func (p *AStarPlanner[T]) ExploredStates() []T {
	return p.exploredStates
}

// StateExpansions returns the number of nodes expanded during the most
// recent Plan call.
func (p *AStarPlanner[T]) StateExpansions() int {
	return p.stateExpansions
}

// LastSearchDuration returns the wall-clock duration of the most recent
// Plan call's search loop.
func (p *AStarPlanner[T]) LastSearchDuration() time.Duration {
	return time.Duration(p.lastSearchMicro) * time.Microsecond
}

// Plan runs one weighted-A* search from startWorld to goalWorld, per
// spec.md §4.5's plan() procedure. It returns the reconstructed world-space
// path and true on success; on failure (invalid endpoint, exhausted OPEN,
// or cancellation) it returns nil, false without mutating any output.
func (p *AStarPlanner[T]) Plan(startWorld, goalWorld core.Transform3D) ([]core.Transform3D, bool) {
	startLattice := p.env.WorldToPlanner(startWorld)
	goalLattice := p.env.WorldToPlanner(goalWorld)

	if !p.env.StateValid(startLattice) || !p.env.StateValid(goalLattice) {
		if p.logger != nil {
			p.logger.Printf("invalid endpoint: start=%+v goal=%+v", startLattice, goalLattice)
		}
		return nil, false
	}

	startNode := p.env.AddState(startLattice)
	goalNode := p.env.AddState(goalLattice)

	p.closed = make(map[*SearchNode[T]]bool)
	p.exploredStates = nil
	p.stateExpansions = 0
	p.stop.Store(false)

	timer := startTimer()
	found := p.aStarSearch(startNode, goalNode)
	p.lastSearchMicro = timer.elapsedMicro()

	if p.logger != nil {
		p.logger.Printf("search done: found=%v expansions=%d elapsed=%s",
			found, p.stateExpansions, p.LastSearchDuration())
	}

	if !found {
		if p.logger != nil && !p.stop.Load() {
			p.logger.Printf("no path: start=%+v goal=%+v", startLattice, goalLattice)
		}
		return nil, false
	}

	path := p.reconstructPath(startNode, goalNode)

	goalWorldLattice := p.env.PlannerToWorld(goalNode.Value)
	if !transformApproxEqual(goalWorldLattice, goalWorld) {
		path = append(path, goalWorld)
	}

	return path, true
}

func latticeEqual[T any](a, b T) bool {
	eq, ok := any(a).(interface{ Equal(T) bool })
	if !ok {
		return false
	}
	return eq.Equal(b)
}

func transformApproxEqual(a, b core.Transform3D) bool {
	const eps = 1e-4
	d := a.Position.Sub(b.Position)
	ra, rb := a.Rotation.Normalize(), b.Rotation.Normalize()
	dot := ra.X*rb.X + ra.Y*rb.Y + ra.Z*rb.Z + ra.W*rb.W
	if dot < 0 {
		dot = -dot
	}
	return d.Dot(d) < eps*eps && dot > 1-eps
}

// aStarSearch is spec.md §4.5's a_star_search(start, goal): pop, goal-check
// by lattice equality, expand, relax successors.
func (p *AStarPlanner[T]) aStarSearch(start, goal *SearchNode[T]) bool {
	open := NewIndexedHeap[T]()
	// Nodes left sitting in OPEN when this search ends (goal found,
	// cancelled, or exhausted) still carry a slot index into this search's
	// heap array; release it so a later search on the same interned node
	// doesn't mistake it for membership in its own, unrelated heap.
	defer func() {
		for _, item := range open.data {
			item.node.Slot = InvalidIndex
		}
	}()

	start.Reset()
	start.G = 0
	open.Push(start, p.weight*p.heuristic.Estimate(start.Value, goal.Value))

	for open.Size() > 0 {
		if p.stop.Load() {
			return false
		}

		s, _, ok := open.Pop()
		if !ok {
			return false
		}

		if latticeEqual(s.Value, goal.Value) {
			return true
		}

		s.Closed = true
		p.closed[s] = true

		if !p.env.StateValid(s.Value) {
			continue
		}

		p.exploredStates = append(p.exploredStates, s.Value)
		p.stateExpansions++
		p.observer.OnExpand(p.env.PlannerToWorld(s.Value))
		if p.observer.ShouldPause() {
			p.observer.WaitForStep()
		}
		if p.delay > 0 {
			time.Sleep(p.delay)
		}

		neighbors, _ := p.env.Successors(s)
		for _, succ := range neighbors {
			if p.closed[succ] {
				continue
			}

			wasInHeap := succ.InHeap()
			if !wasInHeap {
				succ.G = math.Inf(1)
				succ.Parent = nil
			}

			cost, hasEdge := p.env.Cost(s.Value, succ.Value)
			if !hasEdge {
				cost = math.Inf(1)
			}
			if cost < 0 || math.IsNaN(cost) {
				panic("algo: negative or NaN edge cost")
			}

			improved := s.G+cost < succ.G
			if improved {
				succ.G = s.G + cost
				succ.Parent = s
			}

			key := succ.G + p.weight*p.heuristic.Estimate(succ.Value, goal.Value)
			if math.IsNaN(key) {
				panic("algo: NaN heap key")
			}
			if !wasInHeap {
				// A successor never before seen in OPEN is always inserted,
				// per original_source/MPAStarPlanner.h: insertion is
				// unconditional on first sight, independent of whether the
				// g-update above improved anything.
				open.Push(succ, key)
			} else if improved {
				open.DecreaseKey(succ, key)
			}
		}
	}

	return false
}

// reconstructPath walks parent pointers from goal back to start, reverses,
// and converts each lattice value to world space.
func (p *AStarPlanner[T]) reconstructPath(start, goal *SearchNode[T]) []core.Transform3D {
	var lattice []T
	for n := goal; n != nil; n = n.Parent {
		lattice = append(lattice, n.Value)
		if n == start {
			break
		}
	}

	path := make([]core.Transform3D, len(lattice))
	for i, v := range lattice {
		path[len(lattice)-1-i] = p.env.PlannerToWorld(v)
	}
	return path
}
