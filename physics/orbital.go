package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/vmath"
)

// OrbitalSpeed returns tangential speed for a circular orbit of radius r around mass
// v = sqrt(G*M / r)
func OrbitalSpeed(mass, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return math.Sqrt(parameter.G * mass / r)
}

// EscapeSpeed returns the minimum speed that escapes mass from radius r without friction
func EscapeSpeed(mass, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return math.Sqrt(2 * parameter.G * mass / r)
}

// OrbitalPeriod returns the period of a circular orbit of radius r
func OrbitalPeriod(mass, r float64) float64 {
	if mass <= 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi * math.Sqrt(r*r*r/(parameter.G*mass))
}

// OrbitalInsert returns velocity vector for circular orbit insertion
// rel: position relative to the well center
// clockwise: orbit direction in a Y-up frame
func OrbitalInsert(rel vmath.Vec2, mass float64, clockwise bool) vmath.Vec2 {
	r := vmath.Magnitude(rel)
	if r == 0 {
		return vmath.Vec2{}
	}

	// Tangent is perpendicular to radius
	tangent := vmath.Perpendicular(vmath.Normalize(rel))
	if clockwise {
		tangent = r2.Scale(-1, tangent)
	}

	return r2.Scale(OrbitalSpeed(mass, r), tangent)
}
