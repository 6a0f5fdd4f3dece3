package physics

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravwell/vmath"
)

// FrictionFactor returns the per-tick velocity multiplier for a friction percentage
// percent is the fraction of speed removed per second, factor never goes negative
func FrictionFactor(percent, dt float64) float64 {
	f := 1 - percent/100*dt
	if f < 0 {
		return 0
	}
	return f
}

// Integrate performs one semi-implicit Euler step with friction
// v = (v + a*dt) * friction; p = p + v*dt
func Integrate(pos, vel, acc vmath.Vec2, frictionPercent, dt float64) (newPos, newVel vmath.Vec2) {
	newVel = r2.Add(vel, r2.Scale(dt, acc))
	newVel = r2.Scale(FrictionFactor(frictionPercent, dt), newVel)
	newPos = r2.Add(pos, r2.Scale(dt, newVel))
	return newPos, newVel
}
