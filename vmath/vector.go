package vmath

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is the world-space vector used for positions, velocities and accelerations
type Vec2 = r2.Vec

// V returns a Vec2 from components
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Normalize returns unit vector, zero-safe
// r2.Unit yields NaN components for the zero vector, physics code needs a zero result instead
func Normalize(v Vec2) Vec2 {
	mag := math.Hypot(v.X, v.Y)
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / mag, Y: v.Y / mag}
}

// Magnitude returns Euclidean length
func Magnitude(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// MagnitudeSq returns squared length without sqrt
func MagnitudeSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(v Vec2, maxMag float64) Vec2 {
	mag := Magnitude(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return r2.Scale(maxMag/mag, v)
}

// Perpendicular returns vector rotated 90° counter-clockwise
func Perpendicular(v Vec2) Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Lerp interpolates between a and b, t in [0,1]
func Lerp(a, b Vec2, t float64) Vec2 {
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}

// IsFinite reports whether both components are finite numbers
func IsFinite(v Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
