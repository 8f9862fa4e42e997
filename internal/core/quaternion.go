package core

import "math"

// Quaternion is (x, y, z, w), reused in two roles per spec.md's Data Model:
// a unit quaternion representing an SO(3) rotation in world space, or a
// packed triple of integer lattice rotation indices (pitch, yaw, roll, 0) in
// planner space. LatticePose is the type that actually carries the integer
// triple once a value crosses into planner space; Quaternion stays the
// world-space rotation type.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionIdentity is the no-rotation quaternion.
var QuaternionIdentity = Quaternion{W: 1}

// FromAxisAngle builds a unit quaternion rotating by angle radians about
// axis (assumed normalized).
func FromAxisAngle(axis Vec3, angle float32) Quaternion {
	half := angle / 2
	s := float32(math.Sin(float64(half)))
	c := float32(math.Cos(float64(half)))
	return Quaternion{X: axis.X * s, Y: axis.Y * s, Z: axis.Z * s, W: c}
}

// Multiply returns the Hamilton product q*r (apply r first, then q).
func (q Quaternion) Multiply(r Quaternion) Quaternion {
	return Quaternion{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the conjugate (inverse, for unit quaternions) of q.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Normalize returns q scaled to unit length, or identity if q is near zero.
func (q Quaternion) Normalize() Quaternion {
	n := float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
	if n < 1e-6 {
		return QuaternionIdentity
	}
	inv := 1 / n
	return Quaternion{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// RotateVec3 rotates v by unit quaternion q: q * (v, 0) * q^-1, restricted to
// the vector part.
func (q Quaternion) RotateVec3(v Vec3) Vec3 {
	vq := Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: 0}
	r := q.Multiply(vq).Multiply(q.Conjugate())
	return Vec3{r.X, r.Y, r.Z}
}

// FromPitchYawRoll composes a world rotation from three axis angles: pitch
// about X, yaw about Y, roll about Z, applied pitch first (matches
// original_source/MPEnvironment3D.cpp's plannerToWorld composition order:
// roll * yaw * pitch).
func FromPitchYawRoll(pitch, yaw, roll float32) Quaternion {
	qPitch := FromAxisAngle(Vec3{X: 1}, pitch)
	qYaw := FromAxisAngle(Vec3{Y: 1}, yaw)
	qRoll := FromAxisAngle(Vec3{Z: 1}, roll)
	return qRoll.Multiply(qYaw).Multiply(qPitch)
}

// PitchYawRoll extracts the (pitch, yaw, roll) axis angles from q, inverting
// FromPitchYawRoll. This is the fix for the bug flagged in spec.md's Design
// Notes: the original reads the angles off a freshly zero-valued quaternion
// instead of the one passed in. At yaw = ±pi/2 (gimbal lock) pitch and roll
// act about the same axis; the combined angle is returned as pitch and roll
// is 0.
func (q Quaternion) PitchYawRoll() (pitch, yaw, roll float32) {
	x, y, z, w := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)

	sinYaw := 2 * (w*y - z*x)
	sinYaw = math.Max(-1, math.Min(1, sinYaw))
	if math.Abs(sinYaw) > 1-1e-6 {
		return float32(2 * math.Atan2(x, w)), float32(math.Copysign(math.Pi/2, sinYaw)), 0
	}

	pitch = float32(math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y)))
	yaw = float32(math.Asin(sinYaw))

	roll = float32(math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z)))
	return pitch, yaw, roll
}
