package scoring

import (
	"fmt"
	"math"

	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/vmath"
)

// Mode selects how flight outcomes turn into points
type Mode uint8

const (
	// Continuous accrues points per second survived past the threshold
	Continuous Mode = iota
	// PerShot awards points once, when a shot reaches a terminal state
	PerShot
	modeCount
)

var modeNames = [modeCount]string{
	Continuous: "continuous",
	PerShot:    "per-shot",
}

func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return "unknown"
}

// Next returns the following mode, wrapping around
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// ParseMode resolves a mode name
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown scoring mode %q", s)
}

// Policy converts projectile flight into score deltas
// Returned deltas are never negative
type Policy interface {
	Mode() Mode
	// OnLaunch records launch-time data on the projectile
	OnLaunch(p *projectile.Projectile, center vmath.Vec2)
	// OnTick returns the points earned by the still-active projectiles this tick
	OnTick(dt float64, active []*projectile.Projectile) float64
	// OnTransition returns the points earned by p entering state to
	OnTransition(p *projectile.Projectile, to projectile.Lifecycle) float64
}

// New returns the policy for mode, Continuous for unknown values
func New(mode Mode) Policy {
	if mode == PerShot {
		return perShot{}
	}
	return continuous{}
}

// BaseScore is the launch distance to the well, rounded
func BaseScore(launch, center vmath.Vec2) float64 {
	return math.Round(vmath.Distance(launch, center))
}

type continuous struct{}

func (continuous) Mode() Mode { return Continuous }

func (continuous) OnLaunch(p *projectile.Projectile, center vmath.Vec2) {
	p.BaseScore = BaseScore(p.Position, center)
}

func (continuous) OnTick(dt float64, active []*projectile.Projectile) float64 {
	var delta float64
	for _, p := range active {
		if p.Active() && p.FlightTime > parameter.ScoreSurvivalThreshold {
			delta += dt * parameter.ScorePointsPerSecond
		}
	}
	return delta
}

func (continuous) OnTransition(*projectile.Projectile, projectile.Lifecycle) float64 {
	return 0
}

type perShot struct{}

func (perShot) Mode() Mode { return PerShot }

func (perShot) OnLaunch(p *projectile.Projectile, center vmath.Vec2) {
	p.BaseScore = BaseScore(p.Position, center)
}

func (perShot) OnTick(float64, []*projectile.Projectile) float64 {
	return 0
}

func (perShot) OnTransition(p *projectile.Projectile, to projectile.Lifecycle) float64 {
	bonus := math.Floor(p.FlightTime)
	switch to {
	case projectile.Orbited:
		return p.BaseScore*parameter.ScoreOrbitMultiplier + bonus
	case projectile.Crashed, projectile.Escaped:
		return bonus
	}
	return 0
}
