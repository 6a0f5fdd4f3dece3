package settings

import "math"

// Field identifies one tunable settings parameter
type Field uint8

const (
	WellRadius Field = iota
	WellDensity
	ProjectileRadius
	ProjectileDensity
	DragScale
	FrictionPercent
	fieldCount
)

// Range is an inclusive numeric interval
type Range struct {
	Min, Max float64
}

// Clamp forces v into the range
// NaN maps to Min so the result is always a legal value and Clamp stays idempotent
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies within the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// fieldSpec binds a field tag to its persisted key, display label, range and storage
type fieldSpec struct {
	key   string
	label string
	env   string
	rng   Range
	ref   func(*Settings) *float64
}

var fieldTable = [fieldCount]fieldSpec{
	WellRadius: {
		key: "well_radius", label: "Well Radius", env: "WELL_RADIUS",
		rng: Range{10, 200},
		ref: func(s *Settings) *float64 { return &s.WellRadius },
	},
	WellDensity: {
		key: "well_density", label: "Well Density", env: "WELL_DENSITY",
		rng: Range{1, 100},
		ref: func(s *Settings) *float64 { return &s.WellDensity },
	},
	ProjectileRadius: {
		key: "projectile_radius", label: "Projectile Radius", env: "PROJECTILE_RADIUS",
		rng: Range{2, 20},
		ref: func(s *Settings) *float64 { return &s.ProjectileRadius },
	},
	ProjectileDensity: {
		key: "projectile_density", label: "Projectile Density", env: "PROJECTILE_DENSITY",
		rng: Range{1, 50},
		ref: func(s *Settings) *float64 { return &s.ProjectileDensity },
	},
	DragScale: {
		key: "drag_scale", label: "Drag Scale", env: "DRAG_SCALE",
		rng: Range{1, 100},
		ref: func(s *Settings) *float64 { return &s.DragScale },
	},
	FrictionPercent: {
		key: "friction_percent", label: "Friction", env: "FRICTION_PERCENT",
		rng: Range{0, 100},
		ref: func(s *Settings) *float64 { return &s.FrictionPercent },
	},
}

func lookup(f Field) (fieldSpec, bool) {
	if f >= fieldCount {
		return fieldSpec{}, false
	}
	return fieldTable[f], true
}

// Fields returns every field in menu order
func Fields() []Field {
	fs := make([]Field, fieldCount)
	for i := range fs {
		fs[i] = Field(i)
	}
	return fs
}

// Key returns the persisted record key
func (f Field) Key() string {
	spec, _ := lookup(f)
	return spec.key
}

// Label returns the human-readable name
func (f Field) Label() string {
	spec, _ := lookup(f)
	return spec.label
}

// EnvSuffix returns the environment variable suffix used by config overrides
func (f Field) EnvSuffix() string {
	spec, _ := lookup(f)
	return spec.env
}

// Range returns the legal interval
func (f Field) Range() Range {
	spec, _ := lookup(f)
	return spec.rng
}

func (f Field) String() string {
	if f >= fieldCount {
		return "unknown"
	}
	return f.Key()
}

// ParseField resolves a persisted key to its field
func ParseField(key string) (Field, bool) {
	for i, spec := range fieldTable {
		if spec.key == key {
			return Field(i), true
		}
	}
	return 0, false
}
