package vmath

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestNormalizeZeroSafe(t *testing.T) {
	n := Normalize(Vec2{})
	if n.X != 0 || n.Y != 0 {
		t.Errorf("Expected zero vector, got %v", n)
	}

	n = Normalize(V(3, 4))
	if math.Abs(n.X-0.6) > eps || math.Abs(n.Y-0.8) > eps {
		t.Errorf("Expected (0.6, 0.8), got %v", n)
	}
}

func TestClampMagnitude(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		max  float64
		want float64
	}{
		{"below limit", V(1, 0), 5, 1},
		{"above limit", V(30, 40), 5, 5},
		{"zero", Vec2{}, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Magnitude(ClampMagnitude(tt.in, tt.max))
			if math.Abs(got-tt.want) > eps {
				t.Errorf("Expected magnitude %f, got %f", tt.want, got)
			}
		})
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, -math.Pi},
		{1.5 * math.Pi, -0.5 * math.Pi},
		{-1.5 * math.Pi, 0.5 * math.Pi},
		{5 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		got := WrapAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapAngle(%f): expected %f, got %f", tt.in, tt.want, got)
		}
	}
}

func TestSweptAngleAcrossBranchCut(t *testing.T) {
	center := Vec2{}
	// Just above and just below the negative X axis: atan2 jumps by ~2π, true sweep is small
	prev := V(-10, 0.1)
	next := V(-10, -0.1)
	got := SweptAngle(prev, next, center)
	if got <= 0 || got > 0.1 {
		t.Errorf("Expected small positive sweep across branch cut, got %f", got)
	}

	got = SweptAngle(next, prev, center)
	if got >= 0 || got < -0.1 {
		t.Errorf("Expected small negative sweep across branch cut, got %f", got)
	}
}

func TestPerpendicular(t *testing.T) {
	p := Perpendicular(V(1, 0))
	if p.X != 0 || p.Y != 1 {
		t.Errorf("Expected (0,1), got %v", p)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(V(1, 2)) {
		t.Error("Expected finite vector")
	}
	if IsFinite(V(math.NaN(), 0)) {
		t.Error("Expected NaN vector to be non-finite")
	}
	if IsFinite(V(0, math.Inf(1))) {
		t.Error("Expected Inf vector to be non-finite")
	}
}
