package engine

import (
	"math"

	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/physics"
	"github.com/lixenwraith/gravwell/scoring"
	"github.com/lixenwraith/gravwell/vmath"
)

// Config is the runtime wiring of a simulation, independent of the tunable settings
type Config struct {
	// Center is the well position in world units
	Center vmath.Vec2
	// MaxDistance from Center beyond which a projectile escapes
	MaxDistance float64
	Field       physics.FieldConfig
	Scoring     scoring.Mode
	// Dt is the fixed tick length in seconds
	Dt float64
	// Clock feeds session play time, nil uses the system clock
	Clock TimeProvider
}

// DefaultConfig centers the well in a play area of width×height world units
func DefaultConfig(width, height float64) Config {
	return Config{
		Center:      vmath.V(width/2, height/2),
		MaxDistance: parameter.EscapeDistanceFactor * math.Max(width, height),
		Field:       physics.FieldConfig{Theta: parameter.BarnesHutThetaDefault},
		Scoring:     scoring.Continuous,
		Dt:          parameter.TickDt,
	}
}

// Arena returns the play volume described by the config
func (c Config) Arena() physics.Arena {
	return physics.Arena{Center: c.Center, MaxDistance: c.MaxDistance}
}

func (c Config) normalized() Config {
	if c.Dt <= 0 || math.IsNaN(c.Dt) {
		c.Dt = parameter.TickDt
	}
	if c.Field.Theta < 0 || math.IsNaN(c.Field.Theta) {
		c.Field.Theta = 0
	}
	return c
}
