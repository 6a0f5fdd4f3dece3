package projectile

import (
	"math"

	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/physics"
	"github.com/lixenwraith/gravwell/vmath"
)

// Launch describes a shot as delivered by the input collaborator
type Launch struct {
	Position        vmath.Vec2
	Velocity        vmath.Vec2
	Radius          float64
	Mass            float64
	FrictionPercent float64
}

// Environment is what a projectile reads from the world during a tick
type Environment struct {
	Field       *physics.Field
	MaxDistance float64
}

// Projectile is a launched body simulated under gravity and friction
type Projectile struct {
	ID uint64

	Position        vmath.Vec2
	Velocity        vmath.Vec2
	Radius          float64
	Mass            float64
	FrictionPercent float64

	// FlightTime is seconds since launch, advanced only while Active
	FlightTime float64
	// SweptAngle is the signed cumulative angle traveled around the well, radians
	SweptAngle float64
	State      Lifecycle

	// BaseScore is recorded at launch for per-shot scoring
	BaseScore float64

	// LastAccel holds the individual pulls of the latest tick, central pull first
	// Diagnostic only
	LastAccel []vmath.Vec2

	distance float64
}

// New creates an Active projectile from a launch event
func New(l Launch) *Projectile {
	return &Projectile{
		Position:        l.Position,
		Velocity:        l.Velocity,
		Radius:          l.Radius,
		Mass:            l.Mass,
		FrictionPercent: l.FrictionPercent,
		State:           Active,
	}
}

// Update advances the projectile by one fixed tick
// Order is a hard contract: crash before movement, orbit before escape
// Returns the resulting state and whether this tick changed it
func (p *Projectile) Update(dt float64, env Environment) (Lifecycle, bool) {
	if p.State != Active {
		return p.State, false
	}

	p.FlightTime += dt

	well := env.Field.Well()
	dist := vmath.Distance(p.Position, well.Center)
	p.distance = dist

	// Degenerate state (NaN launch vector) cannot be classified geometrically
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		return p.transition(Escaped)
	}

	// Zero distance always falls inside this test, so no direction is normalized from a zero vector
	if dist <= well.Radius+p.Radius || dist == 0 {
		return p.transition(Crashed)
	}

	acc, comps := env.Field.Acceleration(p.Position)
	p.LastAccel = comps

	prev := p.Position
	p.Position, p.Velocity = physics.Integrate(p.Position, p.Velocity, acc, p.FrictionPercent, dt)

	p.SweptAngle += vmath.SweptAngle(prev, p.Position, well.Center)
	if math.Abs(p.SweptAngle) >= parameter.OrbitSweep {
		return p.transition(Orbited)
	}

	if dist > env.MaxDistance {
		return p.transition(Escaped)
	}

	return Active, false
}

func (p *Projectile) transition(to Lifecycle) (Lifecycle, bool) {
	p.State = to
	return to, true
}

// Active reports whether the projectile is still in flight
func (p *Projectile) Active() bool {
	return p.State == Active
}

// Distance returns the distance to the well measured at the start of the latest tick
func (p *Projectile) Distance() float64 {
	return p.distance
}

// Speed returns the current velocity magnitude
func (p *Projectile) Speed() float64 {
	return vmath.Magnitude(p.Velocity)
}

// PointMass returns the projectile as a mutual gravity source
func (p *Projectile) PointMass() physics.PointMass {
	return physics.PointMass{Pos: p.Position, M: p.Mass}
}
