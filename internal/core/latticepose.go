package core

// Lattice hash primes, per spec.md §6: transform3D_hash.
const (
	latticePrimeX     = 73856093
	latticePrimeY     = 19349663
	latticePrimeZ     = 83492791
	latticePrimePitch = 3331333
	latticePrimeYaw   = 393919
	latticePrimeRoll  = 39916801
)

// LatticePose is the integer-indexed planner-space value spec.md's Data
// Model describes: six integer lattice coordinates
// (x, y, z, pitch_idx, yaw_idx, roll_idx). The position components are
// signed (a region centered on the world origin has negative cells); the
// rotation indices are kept in [0, numRotations). Equality is componentwise
// integer equality; this is the only type StateTable, IndexedHeap, and
// SearchNode key by.
type LatticePose struct {
	X, Y, Z                   int64
	PitchIdx, YawIdx, RollIdx int64
}

// Equal reports componentwise integer equality.
func (p LatticePose) Equal(q LatticePose) bool {
	return p == q
}

// Hash computes the XOR-of-products hash spec.md §6 defines.
func (p LatticePose) Hash() int64 {
	return (p.X * latticePrimeX) ^
		(p.Y * latticePrimeY) ^
		(p.Z * latticePrimeZ) ^
		(p.PitchIdx * latticePrimePitch) ^
		(p.YawIdx * latticePrimeYaw) ^
		(p.RollIdx * latticePrimeRoll)
}

// AddTranslation returns p with (dx, dy, dz) added to the position
// components, rotation indices unchanged.
func (p LatticePose) AddTranslation(dx, dy, dz int64) LatticePose {
	p.X += dx
	p.Y += dy
	p.Z += dz
	return p
}

// AddRotation returns p with (dPitch, dYaw, dRoll) added to the rotation
// indices, each reduced modulo numRotations (spec.md §4.4 step 6).
func (p LatticePose) AddRotation(dPitch, dYaw, dRoll, numRotations int64) LatticePose {
	p.PitchIdx = wrapIndex(p.PitchIdx+dPitch, numRotations)
	p.YawIdx = wrapIndex(p.YawIdx+dYaw, numRotations)
	p.RollIdx = wrapIndex(p.RollIdx+dRoll, numRotations)
	return p
}

// wrapIndex reduces v modulo n into [0, n), per spec.md §4.4's
// "(round(angle / rotationStepSize) + numRotations) mod numRotations".
// Degenerates to 0 when n <= 1 (spec.md §8's boundary case: numRotations=1
// collapses all rotation components to pure translation).
func wrapIndex(v, n int64) int64 {
	if n <= 1 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// ManhattanDistance returns the discrete L1 distance between p and q on all
// six lattice components, matching the edge-cost formula in spec.md §4.4.
func (p LatticePose) ManhattanDistance(q LatticePose) int64 {
	return absInt64(p.X-q.X) + absInt64(p.Y-q.Y) + absInt64(p.Z-q.Z) +
		absInt64(p.PitchIdx-q.PitchIdx) + absInt64(p.YawIdx-q.YawIdx) + absInt64(p.RollIdx-q.RollIdx)
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
