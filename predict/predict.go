// Package predict forecasts the path of an unlaunched projectile for the aiming preview
package predict

import (
	"math"

	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/physics"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/vmath"
)

// Params bounds a prediction run
type Params struct {
	MaxSteps int
	Dt       float64
}

// DefaultParams returns the preview bounds used by the live simulation
func DefaultParams() Params {
	return Params{
		MaxSteps: parameter.PredictMaxSteps,
		Dt:       parameter.PredictDt,
	}
}

// End is the reason a prediction stopped
type End uint8

const (
	// EndSteps means the step cap was reached with the body still in flight
	EndSteps End = iota
	EndCrash
	EndEscape
)

func (e End) String() string {
	switch e {
	case EndCrash:
		return "crash"
	case EndEscape:
		return "escape"
	default:
		return "steps"
	}
}

// Path is the predicted sequence of positions, excluding the start point
type Path struct {
	Points []vmath.Vec2
	End    End
}

// Len returns the number of predicted points
func (p Path) Len() int {
	return len(p.Points)
}

// Distances returns the distance of every point to center
func (p Path) Distances(center vmath.Vec2) []float64 {
	out := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		out[i] = vmath.Distance(pt, center)
	}
	return out
}

// Predict runs the single-body integrator forward from start without touching live state
// The body is hypothetical: projectile radius and friction come from s, mutual pulls are ignored
// Crash and escape are tested before each step with the same thresholds as a live projectile
func Predict(start, vel vmath.Vec2, s settings.Settings, arena physics.Arena, p Params) Path {
	if p.MaxSteps <= 0 {
		return Path{End: EndSteps}
	}

	well := s.Well(arena.Center)
	crashAt := well.Radius + s.ProjectileRadius
	points := make([]vmath.Vec2, 0, p.MaxSteps)

	pos := start
	for i := 0; i < p.MaxSteps; i++ {
		dist := vmath.Distance(pos, well.Center)
		if dist <= crashAt || dist == 0 {
			return Path{Points: points, End: EndCrash}
		}
		if dist > arena.MaxDistance || math.IsNaN(dist) {
			return Path{Points: points, End: EndEscape}
		}

		acc := physics.CentralPull(pos, well)
		pos, vel = physics.Integrate(pos, vel, acc, s.FrictionPercent, p.Dt)
		points = append(points, pos)
	}

	return Path{Points: points, End: EndSteps}
}
