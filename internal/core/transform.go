package core

// Transform3D is a world-space pose: position, scale, and rotation, per
// spec.md's Data Model. This is the public type the planner's external
// interface (spec.md §6) is expressed in.
type Transform3D struct {
	Position Vec3
	Scale    Vec3
	Rotation Quaternion
}

// IdentityTransform is the identity pose with unit scale.
var IdentityTransform = Transform3D{
	Scale:    Vec3{X: 1, Y: 1, Z: 1},
	Rotation: QuaternionIdentity,
}

// TransformVec3 applies T's rotation then translation to a local-space
// point (scale is applied to the point first, matching the original's
// transformVec3 semantics for mesh extreme points expressed relative to an
// unscaled unit mesh).
func (t Transform3D) TransformVec3(p Vec3) Vec3 {
	scaled := Vec3{p.X * t.Scale.X, p.Y * t.Scale.Y, p.Z * t.Scale.Z}
	return t.Rotation.RotateVec3(scaled).Add(t.Position)
}
