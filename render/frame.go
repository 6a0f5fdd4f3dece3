package render

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/predict"
	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/scoring"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/vmath"
)

// Sprite is the drawable state of one live projectile
type Sprite struct {
	ID       uint64
	Position vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64
	Color    RGB
	// Accel holds one indicator vector per gravity pull, scaled for display
	Accel []vmath.Vec2
	// Head and Tail are velocity-aligned marker points, set when head/tail display is on
	Head, Tail vmath.Vec2
}

// WellSprite is the drawable state of the central well
type WellSprite struct {
	Center vmath.Vec2
	Radius float64
	Color  RGB
}

// Stats is the HUD summary line
type Stats struct {
	Count        int
	OldestFlight float64
	Score        int
	PlayTime     time.Duration
	Mode         scoring.Mode
	Mutual       bool
}

// Info describes the selected projectile
type Info struct {
	ID        uint64
	Position  vmath.Vec2
	Distance  float64
	Speed     float64
	Age       float64
	Mass      float64
	Friction  float64
	Swept     float64
	Lifecycle projectile.Lifecycle
}

// Frame is the per-frame payload for the output collaborator
type Frame struct {
	Well        WellSprite
	Projectiles []Sprite
	// Path is the aiming preview, empty when not aiming
	Path     []vmath.Vec2
	Paused   bool
	View     engine.View
	Stats    Stats
	Selected *Info
}

// BuildFrame snapshots the simulation for drawing
// selected is the projectile ID to describe, zero for none
func BuildFrame(sim *engine.Simulation, path predict.Path, selected uint64) Frame {
	view := sim.View()
	well := sim.Well()

	wellLo, wellHi := settings.WellMassBounds()
	projLo, projHi := settings.ProjectileMassBounds()

	f := Frame{
		Well: WellSprite{
			Center: well.Center,
			Radius: well.Radius,
			Color:  MassColor(well.Mass, wellLo, wellHi),
		},
		Path:   path.Points,
		Paused: sim.Paused(),
		View:   view,
		Stats: Stats{
			Count:    len(sim.Projectiles()),
			Score:    int(sim.Score()),
			PlayTime: sim.PlayTime(),
			Mode:     sim.ScoringMode(),
			Mutual:   sim.Config().Field.Mutual,
		},
	}
	if oldest := sim.Oldest(); oldest != nil {
		f.Stats.OldestFlight = oldest.FlightTime
	}

	f.Projectiles = make([]Sprite, 0, len(sim.Projectiles()))
	for _, p := range sim.Projectiles() {
		sp := Sprite{
			ID:       p.ID,
			Position: p.Position,
			Velocity: p.Velocity,
			Radius:   p.Radius,
			Color:    MassColor(p.Mass, projLo, projHi),
		}
		if view.ShowIndicators {
			sp.Accel = make([]vmath.Vec2, len(p.LastAccel))
			for i, a := range p.LastAccel {
				sp.Accel[i] = Indicator(a)
			}
		}
		if view.ShowHeadTail {
			sp.Head, sp.Tail = HeadTail(p.Position, p.Velocity, p.Radius)
		}
		f.Projectiles = append(f.Projectiles, sp)

		if p.ID == selected {
			f.Selected = Describe(p, well.Center)
		}
	}
	return f
}

// Indicator scales an acceleration into a display vector of bounded length
func Indicator(a vmath.Vec2) vmath.Vec2 {
	return vmath.ClampMagnitude(r2.Scale(parameter.AccelIndicatorScale, a), parameter.AccelIndicatorMax)
}

// HeadTail returns marker points ahead of and behind pos along vel
// A stationary body has both markers at its center
func HeadTail(pos, vel vmath.Vec2, radius float64) (head, tail vmath.Vec2) {
	dir := vmath.Normalize(vel)
	head = r2.Add(pos, r2.Scale(radius*parameter.HeadScale, dir))
	tail = r2.Sub(pos, r2.Scale(radius*parameter.TailScale, dir))
	return head, tail
}

// Describe returns the info panel for p
func Describe(p *projectile.Projectile, center vmath.Vec2) *Info {
	return &Info{
		ID:        p.ID,
		Position:  p.Position,
		Distance:  vmath.Distance(p.Position, center),
		Speed:     p.Speed(),
		Age:       p.FlightTime,
		Mass:      p.Mass,
		Friction:  p.FrictionPercent,
		Swept:     math.Abs(p.SweptAngle) / parameter.OrbitSweep,
		Lifecycle: p.State,
	}
}
