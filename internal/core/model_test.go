package core

import "testing"

func TestUnitCubeExtremePoints(t *testing.T) {
	m := NewUnitCubeModel()
	pts := m.ExtremePoints()

	var minX, maxX float32 = 1, -1
	for _, p := range pts {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
	}
	if !almostEqual(minX, -0.5, 1e-4) || !almostEqual(maxX, 0.5, 1e-4) {
		t.Errorf("unit cube extreme X range = [%v, %v], want [-0.5, 0.5]", minX, maxX)
	}
}

func TestAABBCollidesOverlapping(t *testing.T) {
	a := NewUnitCubeModel()
	b := NewUnitCubeModel()

	ta := IdentityTransform
	tb := IdentityTransform
	tb.Position = Vec3{X: 0.5}

	if !AABBCollides(a, ta, b, tb) {
		t.Errorf("expected overlapping unit cubes to collide")
	}
}

func TestAABBCollidesSeparated(t *testing.T) {
	a := NewUnitCubeModel()
	b := NewUnitCubeModel()

	ta := IdentityTransform
	tb := IdentityTransform
	tb.Position = Vec3{X: 10}

	if AABBCollides(a, ta, b, tb) {
		t.Errorf("expected distant unit cubes not to collide")
	}
}

func TestWorldBoundsTranslates(t *testing.T) {
	m := NewUnitCubeModel()
	tr := IdentityTransform
	tr.Position = Vec3{X: 5, Y: 0, Z: 0}

	b := WorldBounds(m, tr)
	if !almostEqual(b.Min.X, 4.5, 1e-4) || !almostEqual(b.Max.X, 5.5, 1e-4) {
		t.Errorf("WorldBounds X = [%v, %v], want [4.5, 5.5]", b.Min.X, b.Max.X)
	}
}
