package core

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Model is the narrow mesh contract the planner core consumes from its
// geometry collaborator, per spec.md §1: a mesh extremes API returning the
// six axis extremal points of a model's mesh. Asset loading and full
// mesh/model construction are out of this core's scope; Model is the seam a
// real loader would implement.
type Model interface {
	// ExtremePoints returns the six axis-extremal points of the model's
	// mesh in local (unscaled, unrotated, untranslated) space.
	ExtremePoints() [6]Vec3

	// LocalBounds returns the model's local-space axis-aligned bounding
	// box, used by WorldBounds for the box-overlap collision test in
	// AABBCollides.
	LocalBounds() AABox
}

// CollisionFunc is the mesh_collides(modelA, transformA, modelB, transformB)
// predicate spec.md §1 names as an external collaborator.
type CollisionFunc func(a Model, ta Transform3D, b Model, tb Transform3D) bool

// WorldBounds transforms m's local bounds by t into world space by
// transforming all eight corners of the local box and taking their extent.
// This is the same operation §4.4's extreme-point bounds check performs,
// generalized to a full box rather than six discrete points.
func WorldBounds(m Model, t Transform3D) AABox {
	b := m.LocalBounds()
	corners := [8]Vec3{
		{b.Min.X, b.Min.Y, b.Min.Z}, {b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z}, {b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z}, {b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z}, {b.Max.X, b.Max.Y, b.Max.Z},
	}
	world := t.TransformVec3(corners[0])
	box := AABox{Min: world, Max: world}
	for _, c := range corners[1:] {
		w := t.TransformVec3(c)
		box.Min = box.Min.Min(w)
		box.Max = box.Max.Max(w)
	}
	return box
}

// AABBCollides is the default CollisionFunc: two models collide at their
// given poses when their world-transformed bounding boxes overlap. This
// stands in for true mesh-mesh collision (out of scope per spec.md §1,
// "model/mesh construction" is an external collaborator) with the same
// broad-phase box test Environment3D's obstacle index uses, applied exactly
// rather than as a prune.
func AABBCollides(a Model, ta Transform3D, b Model, tb Transform3D) bool {
	return WorldBounds(a, ta).Overlaps(WorldBounds(b, tb))
}

// BoxModel is a canonical axis-aligned box Model, backed by sdfx's Box3D
// primitive and its BoundingBox query (the same pair of calls
// chazu-lignin's pkg/kernel/sdfx wraps for its CAD kernel's box primitive).
// It is the "unit-cube active model" spec.md §8's end-to-end scenarios use.
type BoxModel struct {
	halfExtents Vec3
	box         sdf.SDF3
}

// NewBoxModel builds a BoxModel centered on the origin with the given full
// extents (width, height, depth).
func NewBoxModel(extents Vec3) (*BoxModel, error) {
	s, err := sdf.Box3D(v3.Vec{X: float64(extents.X), Y: float64(extents.Y), Z: float64(extents.Z)}, 0)
	if err != nil {
		return nil, fmt.Errorf("core: build box model: %w", err)
	}
	return &BoxModel{halfExtents: extents.Scale(0.5), box: s}, nil
}

// NewBoxModelMust builds a BoxModel like NewBoxModel but panics on error,
// for callers (tests, fixed-geometry obstacle setup) that know extents are
// valid at compile time.
func NewBoxModelMust(extents Vec3) *BoxModel {
	m, err := NewBoxModel(extents)
	if err != nil {
		panic(err)
	}
	return m
}

// NewUnitCubeModel builds the 1x1x1 box model used throughout spec.md §8's
// end-to-end scenario table.
func NewUnitCubeModel() *BoxModel {
	m, err := NewBoxModel(Vec3{X: 1, Y: 1, Z: 1})
	if err != nil {
		// sdf.Box3D only errors on a non-positive extent, which never
		// happens for a literal unit cube.
		panic(err)
	}
	return m
}

// ExtremePoints returns the six face-center points of the box's bounding
// box, derived from sdfx's BoundingBox() query.
func (m *BoxModel) ExtremePoints() [6]Vec3 {
	bb := m.box.BoundingBox()
	min := Vec3{X: float32(bb.Min.X), Y: float32(bb.Min.Y), Z: float32(bb.Min.Z)}
	max := Vec3{X: float32(bb.Max.X), Y: float32(bb.Max.Y), Z: float32(bb.Max.Z)}
	mid := min.Add(max).Scale(0.5)
	return [6]Vec3{
		{X: min.X, Y: mid.Y, Z: mid.Z}, {X: max.X, Y: mid.Y, Z: mid.Z},
		{X: mid.X, Y: min.Y, Z: mid.Z}, {X: mid.X, Y: max.Y, Z: mid.Z},
		{X: mid.X, Y: mid.Y, Z: min.Z}, {X: mid.X, Y: mid.Y, Z: max.Z},
	}
}

// LocalBounds returns the box's local-space AABox.
func (m *BoxModel) LocalBounds() AABox {
	bb := m.box.BoundingBox()
	return AABox{
		Min: Vec3{X: float32(bb.Min.X), Y: float32(bb.Min.Y), Z: float32(bb.Min.Z)},
		Max: Vec3{X: float32(bb.Max.X), Y: float32(bb.Max.Y), Z: float32(bb.Max.Z)},
	}
}

// HalfExtents returns the box's half-width, half-height, half-depth.
func (m *BoxModel) HalfExtents() Vec3 {
	return m.halfExtents
}
