// Package core defines the domain model for the 3D rigid-body motion planner:
// vectors, quaternions, world/lattice transforms, bounding boxes, and the
// narrow Model/collision contract the planner consumes from its geometry
// collaborators.
package core

import "math"

// Vec3 is a 3D vector of 32-bit floats, per spec.md's Data Model.
type Vec3 struct {
	X, Y, Z float32
}

// Vec3Zero is the zero vector.
var Vec3Zero = Vec3{}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float32) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Length returns the Euclidean norm of a.
func (a Vec3) Length() float32 {
	return float32(math.Sqrt(float64(a.Dot(a))))
}

// Min returns the componentwise minimum of a and b.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z)}
}

// Max returns the componentwise maximum of a and b.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z)}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// RoundToInt rounds a float32 to the nearest integer, ties away from zero.
func RoundToInt(v float32) int64 {
	return int64(math.Round(float64(v)))
}
