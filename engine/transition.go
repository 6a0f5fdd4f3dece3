package engine

import (
	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/vmath"
)

// Transition reports a projectile leaving the Active state
type Transition struct {
	// Tick is the simulation tick that produced the transition
	Tick       uint64
	ID         uint64
	From       projectile.Lifecycle
	To         projectile.Lifecycle
	Position   vmath.Vec2
	Distance   float64
	FlightTime float64
	Mass       float64
	// Points awarded by the scoring policy for this transition
	Points float64
}

func newTransition(tick uint64, p *projectile.Projectile, from projectile.Lifecycle, points float64) Transition {
	return Transition{
		Tick:       tick,
		ID:         p.ID,
		From:       from,
		To:         p.State,
		Position:   p.Position,
		Distance:   p.Distance(),
		FlightTime: p.FlightTime,
		Mass:       p.Mass,
		Points:     points,
	}
}
