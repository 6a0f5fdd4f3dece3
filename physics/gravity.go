package physics

import (
	"math"

	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/vmath"
)

// Well is the central gravitating body
type Well struct {
	Center vmath.Vec2
	Radius float64
	Mass   float64
}

// Arena is the play volume around the well
// Bodies farther than MaxDistance from Center are classified as escaped
type Arena struct {
	Center      vmath.Vec2
	MaxDistance float64
}

// PointMass is a frozen body position used as a mutual gravity source
// Implements barneshut.Particle2
type PointMass struct {
	Pos vmath.Vec2
	M   float64
}

func (p PointMass) Coord2() r2.Vec { return p.Pos }
func (p PointMass) Mass() float64  { return p.M }

// FieldConfig selects the gravity model variant
// Mutual disabled is single-body mode; Theta 0 is the exact pairwise sum, Theta > 0 the Barnes-Hut approximation
type FieldConfig struct {
	Mutual bool
	Theta  float64
}

// Field is the gravity field of one tick: the well plus a snapshot of mutual sources
// Built once per tick so every body reads the same committed positions
type Field struct {
	well  Well
	theta float64
	plane *barneshut.Plane
}

// NewField builds the field for a tick
// bodies is ignored in single-body mode
func NewField(well Well, bodies []PointMass, cfg FieldConfig) *Field {
	f := &Field{well: well}
	if !cfg.Mutual || len(bodies) == 0 {
		return f
	}

	particles := make([]barneshut.Particle2, len(bodies))
	for i, b := range bodies {
		particles[i] = b
	}

	f.plane = &barneshut.Plane{Particles: particles}
	if cfg.Theta > 0 {
		f.theta = math.Min(cfg.Theta, parameter.BarnesHutThetaMax)
		if err := f.plane.Reset(); err != nil {
			// Coincident bodies cannot be partitioned into a quadtree, fall back to the direct sum
			f.plane = &barneshut.Plane{Particles: particles}
			f.theta = 0
		}
	}
	return f
}

// Well returns the field's central body
func (f *Field) Well() Well {
	return f.well
}

// Acceleration returns the net acceleration at pos and the individual pulls that compose it
// components[0] is always the central pull; mutual pulls follow in source order, zero pulls omitted
func (f *Field) Acceleration(pos vmath.Vec2) (net vmath.Vec2, components []vmath.Vec2) {
	central := CentralPull(pos, f.well)
	components = append(components, central)
	if f.plane == nil {
		return central, components
	}

	subject := PointMass{Pos: pos}
	mutual := f.plane.ForceOn(subject, f.theta, func(_, src barneshut.Particle2, _, m2 float64, v r2.Vec) r2.Vec {
		// Single-particle tree leaves report a mass-scaled center, so v is only used for aggregates
		if src != nil {
			v, m2 = r2.Sub(src.Coord2(), pos), src.Mass()
		}
		a := pull(v, m2)
		if a.X != 0 || a.Y != 0 {
			components = append(components, a)
		}
		return a
	})

	return r2.Add(central, mutual), components
}

// Acceleration is the one-shot form of Field.Acceleration for a single subject
func Acceleration(subject vmath.Vec2, well Well, others []PointMass, cfg FieldConfig) vmath.Vec2 {
	net, _ := NewField(well, others, cfg).Acceleration(subject)
	return net
}

// CentralPull returns the well's inverse-square acceleration at pos
// Callers guarantee pos is outside the well; the center itself yields zero
func CentralPull(pos vmath.Vec2, well Well) vmath.Vec2 {
	return pull(r2.Sub(well.Center, pos), well.Mass)
}

// MutualPull returns the acceleration at pos toward another body, zero at zero separation
func MutualPull(pos vmath.Vec2, other PointMass) vmath.Vec2 {
	return pull(r2.Sub(other.Pos, pos), other.M)
}

// pull returns G*m/d² along d, zero when d is zero
func pull(d vmath.Vec2, m float64) vmath.Vec2 {
	distSq := d.X*d.X + d.Y*d.Y
	if distSq == 0 {
		return vmath.Vec2{}
	}
	dist := math.Sqrt(distSq)
	mag := parameter.G * m / distSq
	return vmath.Vec2{X: d.X / dist * mag, Y: d.Y / dist * mag}
}
