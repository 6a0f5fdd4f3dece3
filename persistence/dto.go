package persistence

import (
	"fmt"
	"math"

	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/vmath"
)

// SettingsRecord is the serializable settings table keyed by field key
// Unknown keys are ignored on load; missing keys inherit the caller's settings
type SettingsRecord map[string]float64

// ProjectileRecord is a serializable live projectile
// Pointer fields distinguish absent from zero
type ProjectileRecord struct {
	Position        *[2]float64 `toml:"position,omitempty" msgpack:"position,omitempty"`
	Velocity        *[2]float64 `toml:"velocity,omitempty" msgpack:"velocity,omitempty"`
	Radius          *float64    `toml:"radius,omitempty" msgpack:"radius,omitempty"`
	Mass            *float64    `toml:"mass,omitempty" msgpack:"mass,omitempty"`
	FrictionPercent *float64    `toml:"friction_percent,omitempty" msgpack:"friction_percent,omitempty"`
	FlightTime      *float64    `toml:"flight_time,omitempty" msgpack:"flight_time,omitempty"`
	BaseScore       *float64    `toml:"base_score,omitempty" msgpack:"base_score,omitempty"`
}

// SaveRecord is the serializable simulation state
type SaveRecord struct {
	Settings    SettingsRecord     `toml:"settings,omitempty" msgpack:"settings,omitempty"`
	Score       float64            `toml:"score" msgpack:"score"`
	Projectiles []ProjectileRecord `toml:"projectiles" msgpack:"projectiles"`
}

// State is the persisted subset of a simulation
type State struct {
	Settings    settings.Settings
	Projectiles []*projectile.Projectile
	Score       float64
}

// Capture copies the persisted state out of a simulation
func Capture(sim *engine.Simulation) State {
	live := sim.Projectiles()
	st := State{
		Settings:    sim.Settings(),
		Score:       sim.Score(),
		Projectiles: make([]*projectile.Projectile, len(live)),
	}
	for i, p := range live {
		cp := *p
		cp.LastAccel = nil
		st.Projectiles[i] = &cp
	}
	return st
}

// ApplyTo restores the state into a simulation
func (s State) ApplyTo(sim *engine.Simulation) {
	sim.Restore(s.Settings, s.Projectiles, s.Score)
}

// FromSettings converts settings to a record through the field table
func FromSettings(s settings.Settings) SettingsRecord {
	rec := make(SettingsRecord, len(settings.Fields()))
	for _, f := range settings.Fields() {
		rec[f.Key()] = s.Get(f)
	}
	return rec
}

// ToSettings overlays the record onto base and clamps every field
// Out-of-range values are clamped, never rejected
func (rec SettingsRecord) ToSettings(base settings.Settings) settings.Settings {
	s := base
	for _, f := range settings.Fields() {
		if v, ok := rec[f.Key()]; ok {
			s.Set(f, v)
		}
	}
	return s.Clamp()
}

// Serialize converts a state into a save record
// Swept angle and lifecycle are not persisted
func Serialize(st State) SaveRecord {
	rec := SaveRecord{
		Settings:    FromSettings(st.Settings),
		Score:       st.Score,
		Projectiles: make([]ProjectileRecord, 0, len(st.Projectiles)),
	}
	for _, p := range st.Projectiles {
		if p == nil || !p.Active() {
			continue
		}
		rec.Projectiles = append(rec.Projectiles, ProjectileRecord{
			Position:        &[2]float64{p.Position.X, p.Position.Y},
			Velocity:        &[2]float64{p.Velocity.X, p.Velocity.Y},
			Radius:          ptr(p.Radius),
			Mass:            ptr(p.Mass),
			FrictionPercent: ptr(p.FrictionPercent),
			FlightTime:      ptr(p.FlightTime),
			BaseScore:       ptr(p.BaseScore),
		})
	}
	return rec
}

// Deserialize reconstructs a state from a record
// base supplies settings absent from the record; projectile mass and friction absent
// from a projectile inherit the loaded settings
// Every projectile comes back Active with zero swept angle
func Deserialize(rec SaveRecord, base settings.Settings) (State, error) {
	st := State{Settings: rec.Settings.ToSettings(base)}

	if math.IsNaN(rec.Score) || math.IsInf(rec.Score, 0) || rec.Score < 0 {
		return State{}, invalid("score", rec.Score)
	}
	st.Score = rec.Score

	st.Projectiles = make([]*projectile.Projectile, 0, len(rec.Projectiles))
	for i, pr := range rec.Projectiles {
		p, err := pr.toProjectile(fmt.Sprintf("projectiles[%d]", i), st.Settings)
		if err != nil {
			return State{}, err
		}
		st.Projectiles = append(st.Projectiles, p)
	}
	return st, nil
}

func (pr ProjectileRecord) toProjectile(prefix string, s settings.Settings) (*projectile.Projectile, error) {
	field := func(name string) string { return prefix + "." + name }

	if pr.Position == nil {
		return nil, missing(field("position"))
	}
	if pr.Velocity == nil {
		return nil, missing(field("velocity"))
	}
	if pr.Radius == nil {
		return nil, missing(field("radius"))
	}

	pos := vmath.V(pr.Position[0], pr.Position[1])
	if !vmath.IsFinite(pos) {
		return nil, invalid(field("position"), *pr.Position)
	}
	vel := vmath.V(pr.Velocity[0], pr.Velocity[1])
	if !vmath.IsFinite(vel) {
		return nil, invalid(field("velocity"), *pr.Velocity)
	}
	if !positive(*pr.Radius) {
		return nil, invalid(field("radius"), *pr.Radius)
	}

	mass := s.ProjectileMass()
	if pr.Mass != nil {
		if !positive(*pr.Mass) {
			return nil, invalid(field("mass"), *pr.Mass)
		}
		mass = *pr.Mass
	}

	friction := s.FrictionPercent
	if pr.FrictionPercent != nil {
		friction = settings.FrictionPercent.Range().Clamp(*pr.FrictionPercent)
	}

	p := projectile.New(projectile.Launch{
		Position:        pos,
		Velocity:        vel,
		Radius:          *pr.Radius,
		Mass:            mass,
		FrictionPercent: friction,
	})
	if pr.FlightTime != nil {
		if !nonNegative(*pr.FlightTime) {
			return nil, invalid(field("flight_time"), *pr.FlightTime)
		}
		p.FlightTime = *pr.FlightTime
	}
	if pr.BaseScore != nil {
		if !nonNegative(*pr.BaseScore) {
			return nil, invalid(field("base_score"), *pr.BaseScore)
		}
		p.BaseScore = *pr.BaseScore
	}
	return p, nil
}

func ptr(v float64) *float64 { return &v }

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
