package core

import "testing"

func TestVec3AddSub(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: 4, Y: -1, Z: 0.5}

	sum := a.Add(b)
	if sum != (Vec3{X: 5, Y: 1, Z: 3.5}) {
		t.Errorf("Add = %+v, want {5 1 3.5}", sum)
	}

	diff := a.Sub(b)
	if diff != (Vec3{X: -3, Y: 3, Z: 2.5}) {
		t.Errorf("Sub = %+v, want {-3 3 2.5}", diff)
	}
}

func TestVec3MinMax(t *testing.T) {
	a := Vec3{X: 1, Y: -2, Z: 5}
	b := Vec3{X: -1, Y: 2, Z: 5}

	min := a.Min(b)
	if min != (Vec3{X: -1, Y: -2, Z: 5}) {
		t.Errorf("Min = %+v, want {-1 -2 5}", min)
	}

	max := a.Max(b)
	if max != (Vec3{X: 1, Y: 2, Z: 5}) {
		t.Errorf("Max = %+v, want {1 2 5}", max)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 0}
	if got := v.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
}

func TestRoundToInt(t *testing.T) {
	tests := []struct {
		in   float32
		want int64
	}{
		{0.4, 0},
		{0.5, 1},
		{-0.5, -1},
		{2.5, 3},
		{-2.5, -3},
	}
	for _, tt := range tests {
		if got := RoundToInt(tt.in); got != tt.want {
			t.Errorf("RoundToInt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
