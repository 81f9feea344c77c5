package core

import "testing"

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-0.5, 4, 0}

	sum := a.Add(b)
	if sum != (Vec3{0.5, 6, 3}) {
		t.Errorf("Add() = %v, expected {0.5 6 3}", sum)
	}

	diff := a.Sub(b)
	if diff != (Vec3{1.5, -2, 3}) {
		t.Errorf("Sub() = %v, expected {1.5 -2 3}", diff)
	}

	scaled := a.Scale(2)
	if scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Scale(2) = %v, expected {2 4 6}", scaled)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
}

func TestAbsF(t *testing.T) {
	if AbsF(-2.5) != 2.5 {
		t.Error("AbsF(-2.5) should be 2.5")
	}
	if AbsF(2.5) != 2.5 {
		t.Error("AbsF(2.5) should be 2.5")
	}
}
