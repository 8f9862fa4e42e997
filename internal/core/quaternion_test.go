package core

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func TestRotateVec3Identity(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	got := QuaternionIdentity.RotateVec3(v)
	if !almostEqual(got.X, v.X, 1e-5) || !almostEqual(got.Y, v.Y, 1e-5) || !almostEqual(got.Z, v.Z, 1e-5) {
		t.Errorf("identity rotation changed vector: got %+v, want %+v", got, v)
	}
}

func TestRotateVec3QuarterTurnAboutZ(t *testing.T) {
	q := FromAxisAngle(Vec3{Z: 1}, float32(math.Pi/2))
	got := q.RotateVec3(Vec3{X: 1})
	want := Vec3{Y: 1}
	if !almostEqual(got.X, want.X, 1e-4) || !almostEqual(got.Y, want.Y, 1e-4) || !almostEqual(got.Z, want.Z, 1e-4) {
		t.Errorf("RotateVec3 = %+v, want %+v", got, want)
	}
}

func TestPitchYawRollRoundTrip(t *testing.T) {
	tests := []struct {
		pitch, yaw, roll float32
	}{
		{0, 0, 0},
		{float32(math.Pi / 2), 0, 0},
		{0, float32(math.Pi / 4), 0},
		{0.3, 0.4, 0.5},
	}

	for _, tt := range tests {
		q := FromPitchYawRoll(tt.pitch, tt.yaw, tt.roll)
		p, y, r := q.PitchYawRoll()
		if !almostEqual(p, tt.pitch, 1e-3) || !almostEqual(y, tt.yaw, 1e-3) || !almostEqual(r, tt.roll, 1e-3) {
			t.Errorf("PitchYawRoll(FromPitchYawRoll(%v,%v,%v)) = (%v,%v,%v)",
				tt.pitch, tt.yaw, tt.roll, p, y, r)
		}
	}
}

func TestNormalizeZeroIsIdentity(t *testing.T) {
	q := Quaternion{}.Normalize()
	if q != QuaternionIdentity {
		t.Errorf("Normalize of zero quaternion = %+v, want identity", q)
	}
}
