package core

import (
	"math"
	"testing"
)

func TestRectOverlapsX(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 50, 10, 10), true},
		{"apart", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
		{"fractional", NewRect(0, 0, 10, 10), NewRect(9.5, 0, 10, 10), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.OverlapsX(tc.b); got != tc.want {
				t.Errorf("OverlapsX() = %v, expected %v", got, tc.want)
			}
			if got := tc.b.OverlapsX(tc.a); got != tc.want {
				t.Errorf("OverlapsX() (reversed) = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRectInset(t *testing.T) {
	r := NewRect(50, 150, 34, 26).Inset(5)

	want := NewRect(55, 155, 24, 16)
	if r != want {
		t.Errorf("Inset(5) = %+v, expected %+v", r, want)
	}
	if r.Right() != 79 || r.Bottom() != 171 {
		t.Errorf("edges = (%v, %v), expected (79, 171)", r.Right(), r.Bottom())
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

func TestRadiansDegrees(t *testing.T) {
	if got := Radians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("Radians(180) = %v, expected pi", got)
	}
	if got := Degrees(Radians(-25)); math.Abs(got+25) > 1e-9 {
		t.Errorf("Degrees(Radians(-25)) = %v, expected -25", got)
	}
}
