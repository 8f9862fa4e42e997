package algo

import (
	"log"

	"github.com/dhconnelly/rtreego"

	"github.com/elektrokombinacija/mp3d/internal/core"
)

const statsTableCapacity = 1 << 14

// obstacleSpatial adapts a placed obstacle Model to rtreego.Spatial for the
// broad-phase index. rtreego appears only transitively in the retrieved
// pack, but is the natural broad-phase partner to a per-obstacle AABB scan
// once the obstacle count grows past a handful.
type obstacleSpatial struct {
	model     core.Model
	transform core.Transform3D
	bounds    core.AABox
}

func (o *obstacleSpatial) Bounds() *rtreego.Rect {
	size := o.bounds.Max.Sub(o.bounds.Min)
	lengths := []float64{
		nonDegenerate(size.X),
		nonDegenerate(size.Y),
		nonDegenerate(size.Z),
	}
	rect, err := rtreego.NewRect(
		rtreego.Point{float64(o.bounds.Min.X), float64(o.bounds.Min.Y), float64(o.bounds.Min.Z)},
		lengths,
	)
	if err != nil {
		// Degenerate (zero-volume) obstacle bounds; fall back to a rect
		// just large enough for rtreego's positive-length requirement.
		rect, _ = rtreego.NewRect(
			rtreego.Point{float64(o.bounds.Min.X), float64(o.bounds.Min.Y), float64(o.bounds.Min.Z)},
			[]float64{1e-6, 1e-6, 1e-6},
		)
	}
	return rect
}

func nonDegenerate(v float32) float64 {
	if v <= 0 {
		return 1e-6
	}
	return float64(v)
}

// Environment3D is the concrete lattice environment spec.md §4.4 describes:
// lattice/world conversion, the per-active-model action set, and collision
// and bounds validity over an origin-and-size region.
type Environment3D struct {
	origin core.Vec3
	size   core.Vec3

	stepSize         float32
	rotationStepSize float32
	numRotations     int64

	boundingBox core.AABox

	activeModel core.Model
	collisionFn core.CollisionFunc

	obstacles []*obstacleSpatial
	index     *rtreego.Rtree

	visited *StateTable[core.LatticePose]
	invalid *StateTable[core.LatticePose]

	actionSet []Action6D

	logger *log.Logger
}

// SetLogger installs a diagnostics sink for invalid-state and validation
// messages. A nil logger (the default) disables all output, matching the
// teacher's own zero-third-party-logging-dependency stance — see DESIGN.md.
func (e *Environment3D) SetLogger(logger *log.Logger) {
	e.logger = logger
}

// NewEnvironment3D builds an environment over the box centered at origin
// with the given full extent (size), using the default AABB collision
// predicate (core.AABBCollides).
func NewEnvironment3D(origin, size core.Vec3) *Environment3D {
	e := &Environment3D{
		origin:           origin,
		size:             size,
		stepSize:         1,
		rotationStepSize: 1,
		collisionFn:      core.AABBCollides,
		index:            rtreego.NewTree(3, 5, 20),
	}
	e.recomputeBoundingBox()
	e.recomputeNumRotations()
	e.resetTables()
	return e
}

// recomputeBoundingBox follows original_source/MPEnvironment3D.cpp's
// updateBoundingBox: halfSize = size * 0.5, min = origin - halfSize,
// max = origin + halfSize. spec.md §4.4's boundingBox formula matches this
// exactly; size is the full extent of the region, not a half-extent.
func (e *Environment3D) recomputeBoundingBox() {
	half := e.size.Scale(0.5)
	e.boundingBox = core.NewAABox(e.origin.Sub(half), e.origin.Add(half))
}

func (e *Environment3D) recomputeNumRotations() {
	if e.rotationStepSize <= 0 {
		e.numRotations = 1
		return
	}
	n := int64(2 * pi / e.rotationStepSize)
	if n < 1 {
		n = 1
	}
	e.numRotations = n
}

func (e *Environment3D) resetTables() {
	hashFn := func(v core.LatticePose) int64 { return v.Hash() }
	eqFn := func(a, b core.LatticePose) bool { return a.Equal(b) }
	e.visited = NewStateTable[core.LatticePose](statsTableCapacity, hashFn, eqFn)
	e.invalid = NewStateTable[core.LatticePose](statsTableCapacity, hashFn, eqFn)
}

const pi = 3.14159265358979323846

// SetOrigin updates the region origin and recomputes the bounding box.
func (e *Environment3D) SetOrigin(origin core.Vec3) {
	e.origin = origin
	e.recomputeBoundingBox()
}

// SetSize updates the region's full extent and recomputes the bounding box.
func (e *Environment3D) SetSize(size core.Vec3) {
	e.size = size
	e.recomputeBoundingBox()
}

// SetStepSize sets the world length represented by one lattice unit.
func (e *Environment3D) SetStepSize(stepSize float32) {
	e.stepSize = stepSize
	e.actionSet = nil
}

// SetRotationStepSize sets the radians-per-rotation-index granularity and
// recomputes numRotations = floor(2*pi / rotationStepSize).
func (e *Environment3D) SetRotationStepSize(rotationStepSize float32) {
	e.rotationStepSize = rotationStepSize
	e.recomputeNumRotations()
	e.actionSet = nil
}

// SetActiveObject sets the model whose poses the search explores, and
// invalidates the cached action set so it is rebuilt on next successor
// request, per spec.md §3's "rebuilt on active-object change" lifecycle.
func (e *Environment3D) SetActiveObject(model core.Model) {
	e.activeModel = model
	e.actionSet = nil
}

// SetCollisionFunc overrides the default AABB-overlap collision predicate.
func (e *Environment3D) SetCollisionFunc(fn core.CollisionFunc) {
	e.collisionFn = fn
}

// AddObstacle places model at transform and inserts it into the broad-phase
// index.
func (e *Environment3D) AddObstacle(model core.Model, transform core.Transform3D) {
	o := &obstacleSpatial{
		model:     model,
		transform: transform,
		bounds:    core.WorldBounds(model, transform),
	}
	e.obstacles = append(e.obstacles, o)
	e.index.Insert(o)
}

// ObstacleCount returns the number of obstacles currently indexed.
func (e *Environment3D) ObstacleCount() int {
	return len(e.obstacles)
}

// BoundingBox returns the environment's current axis-aligned region.
func (e *Environment3D) BoundingBox() core.AABox {
	return e.boundingBox
}

// WorldToPlanner converts a world transform to its lattice value, per
// spec.md §4.4: position divided by stepSize and rounded; rotation
// extracted as RPY from the quaternion passed in (not a freshly zeroed
// one — see core.Quaternion.PitchYawRoll's doc comment for the bug this
// fixes) and each angle mapped to a lattice index modulo numRotations.
func (e *Environment3D) WorldToPlanner(world core.Transform3D) core.LatticePose {
	x := core.RoundToInt(world.Position.X / e.stepSize)
	y := core.RoundToInt(world.Position.Y / e.stepSize)
	z := core.RoundToInt(world.Position.Z / e.stepSize)

	pitch, yaw, roll := world.Rotation.Normalize().PitchYawRoll()
	pitchIdx := e.angleToIndex(pitch)
	yawIdx := e.angleToIndex(yaw)
	rollIdx := e.angleToIndex(roll)

	return core.LatticePose{
		X: x, Y: y, Z: z,
		PitchIdx: pitchIdx, YawIdx: yawIdx, RollIdx: rollIdx,
	}
}

func (e *Environment3D) angleToIndex(angle float32) int64 {
	idx := core.RoundToInt(angle/e.rotationStepSize) + e.numRotations
	return wrapIndex(idx, e.numRotations)
}

// PlannerToWorld converts a lattice value back to a world transform: integer
// indices times stepSize/rotationStepSize, reconstructing a unit quaternion
// from the resulting RPY triple.
func (e *Environment3D) PlannerToWorld(v core.LatticePose) core.Transform3D {
	pos := core.Vec3{
		X: float32(v.X) * e.stepSize,
		Y: float32(v.Y) * e.stepSize,
		Z: float32(v.Z) * e.stepSize,
	}
	pitch := float32(v.PitchIdx) * e.rotationStepSize
	yaw := float32(v.YawIdx) * e.rotationStepSize
	roll := float32(v.RollIdx) * e.rotationStepSize

	return core.Transform3D{
		Position: pos,
		Scale:    core.Vec3{X: 1, Y: 1, Z: 1},
		Rotation: core.FromPitchYawRoll(pitch, yaw, roll),
	}
}

// HashFunction returns the lattice hash this environment's StateTables key
// by.
func (e *Environment3D) HashFunction() func(core.LatticePose) int64 {
	return func(v core.LatticePose) int64 { return v.Hash() }
}

// AddState interns value into the visited table, returning the canonical
// node.
func (e *Environment3D) AddState(value core.LatticePose) *SearchNode[core.LatticePose] {
	return e.visited.Add(value)
}

// StateValid implements spec.md §4.4: the generic gate (trivially true at
// this concrete level — Environment3D has no abstraction layer above it to
// gate on) AND is_valid(planner_to_world(value)). Invalid lattice values are
// interned into the invalid-states table for diagnostics; this has no
// effect on any node's g or parent.
func (e *Environment3D) StateValid(value core.LatticePose) bool {
	if _, seen := e.invalid.Get(value); seen {
		return false
	}
	world := e.PlannerToWorld(value)
	if !e.IsValidForModel(world, e.activeModel) {
		e.invalid.Add(value)
		if e.logger != nil {
			e.logger.Printf("state invalid: lattice=%+v world=%+v", value, world)
		}
		return false
	}
	return true
}

// IsValidForModel is the "what if this pose were occupied by a different
// model" primitive original_source/MPEnvironment3D.cpp's isValidForModel
// and inBoundsForModel take an explicit model for, rather than only the
// active object. StateValid is implemented in terms of it with
// model = the active model; nothing in this core currently calls it with
// any other model, but the seam survives because nothing about the bounds
// or collision check is specific to "the currently active" model.
func (e *Environment3D) IsValidForModel(world core.Transform3D, model core.Model) bool {
	if model == nil {
		return false
	}
	for _, p := range model.ExtremePoints() {
		if !e.boundingBox.Contains(world.TransformVec3(p)) {
			return false
		}
	}

	modelBounds := core.WorldBounds(model, world)
	rect, err := rtreego.NewRect(
		rtreego.Point{float64(modelBounds.Min.X), float64(modelBounds.Min.Y), float64(modelBounds.Min.Z)},
		[]float64{
			nonDegenerate(modelBounds.Max.X - modelBounds.Min.X),
			nonDegenerate(modelBounds.Max.Y - modelBounds.Min.Y),
			nonDegenerate(modelBounds.Max.Z - modelBounds.Min.Z),
		},
	)
	if err != nil {
		return true
	}
	for _, hit := range e.index.SearchIntersect(rect) {
		o := hit.(*obstacleSpatial)
		if e.collisionFn(model, world, o.model, o.transform) {
			return false
		}
	}
	return true
}

// Successors implements spec.md §4.4's action-set-driven successor
// generation. It does not filter by validity — the planner filters at
// expansion time, preserving the invariant that the StateTable observes
// every reachable lattice state.
func (e *Environment3D) Successors(node *SearchNode[core.LatticePose]) ([]*SearchNode[core.LatticePose], []float64) {
	e.ensureActionSet()

	current := node.Value
	currentWorldRotation := core.FromPitchYawRoll(
		float32(current.PitchIdx)*e.rotationStepSize,
		float32(current.YawIdx)*e.rotationStepSize,
		float32(current.RollIdx)*e.rotationStepSize,
	)

	neighbors := make([]*SearchNode[core.LatticePose], 0, len(e.actionSet))
	costs := make([]float64, 0, len(e.actionSet))

	for _, action := range e.actionSet {
		worldDelta := action.DeltaTranslation.Scale(e.stepSize)
		rotatedWorldDelta := currentWorldRotation.RotateVec3(worldDelta)

		dx := core.RoundToInt(rotatedWorldDelta.X / e.stepSize)
		dy := core.RoundToInt(rotatedWorldDelta.Y / e.stepSize)
		dz := core.RoundToInt(rotatedWorldDelta.Z / e.stepSize)

		candidate := current.AddTranslation(dx, dy, dz)
		candidate = candidate.AddRotation(
			action.DeltaRotation.Pitch,
			action.DeltaRotation.Yaw,
			action.DeltaRotation.Roll,
			e.numRotations,
		)

		neighborNode := e.visited.Add(candidate)
		neighbors = append(neighbors, neighborNode)
		costs = append(costs, action.Cost)
	}

	return neighbors, costs
}

func (e *Environment3D) ensureActionSet() {
	if e.actionSet != nil {
		return
	}
	e.actionSet = BuildActionSet(e.numRotations)
}

// Cost implements spec.md §4.4's edge-cost formula: the discrete L1 distance
// on the combined six-component lattice. Always reports an edge.
func (e *Environment3D) Cost(u, v core.LatticePose) (float64, bool) {
	return float64(u.ManhattanDistance(v)), true
}
