package parameter

// Scoring
const (
	// ScoreSurvivalThreshold is the flight time after which continuous play accrues points
	ScoreSurvivalThreshold = 20.0
	// ScorePointsPerSecond accrued per active projectile past the threshold
	ScorePointsPerSecond = 1.0
	// ScoreOrbitMultiplier applied to the launch base score on orbit completion
	ScoreOrbitMultiplier = 2.0
)

// Drag-to-velocity mapping
const (
	// DragScaleDivisor converts settings drag scale into a velocity multiplier
	DragScaleDivisor = 10.0
	// PracticeDragFactor is the fixed multiplier of the single-shot practice variant
	PracticeDragFactor = 2.0
)

// Camera
const (
	ZoomMin     = 0.2
	ZoomMax     = 3.0
	ZoomStep    = 0.1
	ZoomDefault = 1.0
)

// World units per terminal cell at zoom 1
const (
	CellWorldWidth  = 8.0
	CellWorldHeight = 16.0
)

// Render overlays
const (
	// AccelIndicatorScale converts acceleration magnitude into indicator length
	AccelIndicatorScale = 50.0
	AccelIndicatorMax   = 100.0
	// HeadScale and TailScale are multiples of the projectile radius
	HeadScale = 5.0
	TailScale = 3.0
)
