package algo

import "github.com/elektrokombinacija/mp3d/internal/core"

// RotationDelta is the lattice-space rotation component of an action:
// signed index deltas on pitch, yaw and roll, added mod numRotations.
type RotationDelta struct {
	Pitch, Yaw, Roll int64
}

// Action6D is the lattice-frame action primitive spec.md §3 defines:
// (Δtranslation_lattice, Δrotation_lattice, cost). Actions live entirely in
// lattice units; Environment3D builds them with BuildActionSet, directly in
// lattice units. No world-frame action set is converted, and the actions do
// not depend on the active model.
type Action6D struct {
	DeltaTranslation core.Vec3
	DeltaRotation    RotationDelta
	Cost             float64
}

// BuildActionSet returns the default action set: one lattice-unit step
// along each of ±X, ±Y, ±Z, and, when rotation granularity is non-trivial
// (numRotations > 1), one lattice-index step of rotation about each of
// ±pitch, ±yaw, ±roll. This is deterministic given (stepSize,
// rotationStepSize, numRotations) as spec.md §8's testable property 6
// requires; it does not vary with the active model's geometry, since no
// per-model action catalogue exists anywhere in this core's inputs — the
// active model only contributes its extreme points and collision geometry.
// The set is still rebuilt whenever the active model changes, matching
// Environment3D's caching policy, even though its content would not differ.
func BuildActionSet(numRotations int64) []Action6D {
	actions := make([]Action6D, 0, 12)

	translations := [6]core.Vec3{
		{X: 1}, {X: -1},
		{Y: 1}, {Y: -1},
		{Z: 1}, {Z: -1},
	}
	for _, d := range translations {
		actions = append(actions, Action6D{DeltaTranslation: d, Cost: 1})
	}

	if numRotations > 1 {
		rotations := [6]RotationDelta{
			{Pitch: 1}, {Pitch: -1},
			{Yaw: 1}, {Yaw: -1},
			{Roll: 1}, {Roll: -1},
		}
		for _, r := range rotations {
			actions = append(actions, Action6D{DeltaRotation: r, Cost: 1})
		}
	}

	return actions
}
