package vmath

import "math"

// TwoPi is one full revolution in radians
const TwoPi = 2 * math.Pi

// AngleAround returns the polar angle of p about center in (-π, π]
func AngleAround(p, center Vec2) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

// WrapAngle folds an angle into [-π, π]
// Inputs already inside the interval are returned unchanged, including ±π
func WrapAngle(a float64) float64 {
	if a >= -math.Pi && a <= math.Pi {
		return a
	}
	a = math.Mod(a+math.Pi, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	return a - math.Pi
}

// AngleDelta returns the shortest signed rotation from one angle to another
func AngleDelta(from, to float64) float64 {
	return WrapAngle(to - from)
}

// SweptAngle returns the signed shortest-path angle a point sweeps about center moving from prev to next
func SweptAngle(prev, next, center Vec2) float64 {
	return AngleDelta(AngleAround(prev, center), AngleAround(next, center))
}
