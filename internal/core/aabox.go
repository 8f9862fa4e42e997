package core

// AABox is an axis-aligned bounding box, min/max inclusive.
type AABox struct {
	Min, Max Vec3
}

// NewAABox builds an AABox from two corners, normalizing min/max per axis.
func NewAABox(a, b Vec3) AABox {
	return AABox{Min: a.Min(b), Max: a.Max(b)}
}

// Contains reports whether p lies within b, using closed intervals on every
// axis (spec.md §8: boundary states are inclusive).
func (b AABox) Contains(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Overlaps reports whether b and other intersect, closed intervals on every
// axis. Used as the broad-phase obstacle test backing core.Model collision.
func (b AABox) Overlaps(other AABox) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// Union returns the smallest AABox containing both b and other.
func (b AABox) Union(other AABox) AABox {
	return AABox{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}
