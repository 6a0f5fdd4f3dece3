package settings

import (
	"github.com/lixenwraith/gravwell/physics"
	"github.com/lixenwraith/gravwell/vmath"
)

// Settings holds the tunable physical parameters shared by every component
// All fields stay within their declared ranges; mutation goes through Set/Adjust/Clamp
type Settings struct {
	WellRadius        float64
	WellDensity       float64
	ProjectileRadius  float64
	ProjectileDensity float64
	DragScale         float64
	FrictionPercent   float64
}

// Default returns the stock settings
func Default() Settings {
	return Settings{
		WellRadius:        30,
		WellDensity:       10,
		ProjectileRadius:  5,
		ProjectileDensity: 1,
		DragScale:         20,
		FrictionPercent:   0,
	}
}

// WellMass returns density × radius² of the central well
func (s Settings) WellMass() float64 {
	return physics.Mass(s.WellRadius, s.WellDensity)
}

// ProjectileMass returns density × radius² of a newly launched projectile
func (s Settings) ProjectileMass() float64 {
	return physics.Mass(s.ProjectileRadius, s.ProjectileDensity)
}

// Well returns the central body centered at center
func (s Settings) Well(center vmath.Vec2) physics.Well {
	return physics.Well{
		Center: center,
		Radius: s.WellRadius,
		Mass:   s.WellMass(),
	}
}

// Clamp returns a copy with every field forced into its range
func (s Settings) Clamp() Settings {
	for _, f := range Fields() {
		s.Set(f, s.Get(f))
	}
	return s
}

// Get returns the value of field f
func (s *Settings) Get(f Field) float64 {
	spec, ok := lookup(f)
	if !ok {
		return 0
	}
	return *spec.ref(s)
}

// Set stores v into field f, clamped to the field range
// Returns the stored value
func (s *Settings) Set(f Field, v float64) float64 {
	spec, ok := lookup(f)
	if !ok {
		return 0
	}
	clamped := spec.rng.Clamp(v)
	*spec.ref(s) = clamped
	return clamped
}

// Adjust adds delta to field f, clamped to the field range
func (s *Settings) Adjust(f Field, delta float64) float64 {
	return s.Set(f, s.Get(f)+delta)
}

// Step moves field f by one unit in the direction of sign (settings menu increment)
func (s *Settings) Step(f Field, sign int) float64 {
	switch {
	case sign > 0:
		return s.Adjust(f, 1)
	case sign < 0:
		return s.Adjust(f, -1)
	}
	return s.Get(f)
}

// MassBounds returns the smallest and largest mass a range-clamped disc of the given kind can have
func MassBounds(radius, density Field) (lo, hi float64) {
	r, d := radius.Range(), density.Range()
	return physics.Mass(r.Min, d.Min), physics.Mass(r.Max, d.Max)
}

// WellMassBounds returns the well mass extremes over all legal settings
func WellMassBounds() (lo, hi float64) {
	return MassBounds(WellRadius, WellDensity)
}

// ProjectileMassBounds returns the projectile mass extremes over all legal settings
func ProjectileMassBounds() (lo, hi float64) {
	return MassBounds(ProjectileRadius, ProjectileDensity)
}
