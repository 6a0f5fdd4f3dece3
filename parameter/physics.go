package parameter

import "math"

// Gravity model
const (
	// G is the gravitational constant of the toy universe, dimensionless
	G = 1.0
)

// Fixed simulation tick
const (
	TickRate = 60
	TickDt   = 1.0 / TickRate
)

// Trajectory preview
const (
	PredictMaxSteps = 200
	PredictDt       = TickDt
)

// Lifecycle classification
const (
	// OrbitSweep is the swept angle magnitude that completes an orbit
	OrbitSweep = 2 * math.Pi

	// EscapeDistanceFactor scales the play-area span into the escape bound
	EscapeDistanceFactor = 1.5
)

// Mutual gravity
const (
	// BarnesHutThetaDefault of zero selects the exact pairwise sum
	BarnesHutThetaDefault = 0.0
	BarnesHutThetaMax     = 2.0
)
