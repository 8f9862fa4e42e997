package core

import "testing"

func TestLatticePoseEqual(t *testing.T) {
	a := LatticePose{X: 1, Y: 2, Z: 3, PitchIdx: 1, YawIdx: 2, RollIdx: 3}
	b := a
	c := a
	c.X = 9

	if !a.Equal(b) {
		t.Errorf("expected %+v to equal %+v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %+v to not equal %+v", a, c)
	}
}

func TestLatticePoseHashDistinguishesComponents(t *testing.T) {
	base := LatticePose{X: 1, Y: 2, Z: 3, PitchIdx: 0, YawIdx: 1, RollIdx: 2}
	variants := []LatticePose{
		{X: 2, Y: 2, Z: 3, PitchIdx: 0, YawIdx: 1, RollIdx: 2},
		{X: 1, Y: 3, Z: 3, PitchIdx: 0, YawIdx: 1, RollIdx: 2},
		{X: 1, Y: 2, Z: 4, PitchIdx: 0, YawIdx: 1, RollIdx: 2},
		{X: 1, Y: 2, Z: 3, PitchIdx: 1, YawIdx: 1, RollIdx: 2},
		{X: 1, Y: 2, Z: 3, PitchIdx: 0, YawIdx: 2, RollIdx: 2},
		{X: 1, Y: 2, Z: 3, PitchIdx: 0, YawIdx: 1, RollIdx: 3},
	}
	baseHash := base.Hash()
	for _, v := range variants {
		if v.Hash() == baseHash {
			t.Errorf("expected %+v to hash differently from %+v", v, base)
		}
	}
}

func TestAddRotationWraps(t *testing.T) {
	p := LatticePose{PitchIdx: 3, YawIdx: 0, RollIdx: 1}
	got := p.AddRotation(1, -1, 2, 4)
	want := LatticePose{PitchIdx: 0, YawIdx: 3, RollIdx: 3}
	if !got.Equal(want) {
		t.Errorf("AddRotation = %+v, want %+v", got, want)
	}
}

func TestAddRotationDegenerateSingleRotation(t *testing.T) {
	p := LatticePose{PitchIdx: 0, YawIdx: 0, RollIdx: 0}
	got := p.AddRotation(5, -3, 7, 1)
	want := LatticePose{}
	if !got.Equal(want) {
		t.Errorf("AddRotation with numRotations=1 = %+v, want all-zero", got)
	}
}

func TestManhattanDistance(t *testing.T) {
	a := LatticePose{X: 0, Y: 0, Z: 0}
	b := LatticePose{X: 2, Y: -3, Z: 1, PitchIdx: 1}
	if got := a.ManhattanDistance(b); got != 7 {
		t.Errorf("ManhattanDistance = %v, want 7", got)
	}
}

func TestAddTranslation(t *testing.T) {
	p := LatticePose{X: 1, Y: 1, Z: 1}
	got := p.AddTranslation(2, -1, 0)
	want := LatticePose{X: 3, Y: 0, Z: 1}
	if !got.Equal(want) {
		t.Errorf("AddTranslation = %+v, want %+v", got, want)
	}
}
