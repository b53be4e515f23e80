package core

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)

	if got := p.Add(Pt(1, -1)); got != Pt(4, 3) {
		t.Errorf("Add() = %v, expected (4,3)", got)
	}
	if got := p.Sub(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("Sub() = %v, expected (2,3)", got)
	}
	if got := p.Manhattan(Pt(0, 0)); got != 7 {
		t.Errorf("Manhattan() = %d, expected 7", got)
	}
}

func TestNear(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected bool
	}{
		{"same cell", Vec{2, 2}, Vec{2, 2}, true},
		{"inside tolerance", Vec{2, 2}, Vec{2.4, 1.6}, true},
		{"exactly half a cell", Vec{2, 2}, Vec{2.5, 2}, false},
		{"one axis far", Vec{2, 2}, Vec{2.1, 3}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Near(tc.a, tc.b, 0.5); got != tc.expected {
				t.Errorf("Near() = %v, expected %v", got, tc.expected)
			}
			if got := Near(tc.b, tc.a, 0.5); got != tc.expected {
				t.Errorf("Near() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLerpAndRound(t *testing.T) {
	v := Lerp(Vec{0, 0}, Vec{1, 0}, 0.75)
	if v.X != 0.75 || v.Y != 0 {
		t.Errorf("Lerp() = %v, expected (0.75, 0)", v)
	}
	if v.Round() != Pt(1, 0) {
		t.Errorf("Round() = %v, expected (1,0)", v.Round())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
}

func TestHSVHueCoversWheel(t *testing.T) {
	seen := map[Color]bool{}
	for deg := -30.0; deg < 400; deg += 15 {
		seen[HSVHue(deg)] = true
	}
	if len(seen) < 6 {
		t.Errorf("HSVHue should produce a spread of colors, got %d", len(seen))
	}
}
