package input

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/vmath"
)

// DragMapping converts a pointer drag gesture into a launch velocity
// Slingshot convention: the shot flies opposite to the drag direction
type DragMapping interface {
	Name() string
	Velocity(start, end vmath.Vec2, s settings.Settings) vmath.Vec2
}

// ScaledDrag multiplies the drag vector by settings drag scale / 10
type ScaledDrag struct{}

func (ScaledDrag) Name() string { return "scaled" }

func (ScaledDrag) Velocity(start, end vmath.Vec2, s settings.Settings) vmath.Vec2 {
	return r2.Scale(s.DragScale/parameter.DragScaleDivisor, r2.Sub(start, end))
}

// FixedDrag multiplies the drag vector by a constant factor, ignoring settings
type FixedDrag struct {
	Factor float64
}

// NewFixedDrag returns the practice-mode mapping
func NewFixedDrag() FixedDrag {
	return FixedDrag{Factor: parameter.PracticeDragFactor}
}

func (FixedDrag) Name() string { return "fixed" }

func (f FixedDrag) Velocity(start, end vmath.Vec2, _ settings.Settings) vmath.Vec2 {
	return r2.Scale(f.Factor, r2.Sub(start, end))
}

// ParseDragMapping resolves a mapping by name
func ParseDragMapping(name string) (DragMapping, error) {
	switch name {
	case "scaled", "":
		return ScaledDrag{}, nil
	case "fixed":
		return NewFixedDrag(), nil
	}
	return nil, fmt.Errorf("unknown drag mapping %q", name)
}

// NextDragMapping cycles between the scaled and fixed mappings
func NextDragMapping(m DragMapping) DragMapping {
	if _, ok := m.(ScaledDrag); ok {
		return NewFixedDrag()
	}
	return ScaledDrag{}
}

// LaunchFromDrag builds a launch event at the drag start using the current settings
func LaunchFromDrag(start, end vmath.Vec2, s settings.Settings, m DragMapping) engine.LaunchEvent {
	return engine.LaunchEvent{
		Position:        start,
		Velocity:        m.Velocity(start, end, s),
		Radius:          s.ProjectileRadius,
		Mass:            s.ProjectileMass(),
		FrictionPercent: s.FrictionPercent,
	}
}

// Drag tracks a press-move-release gesture in world coordinates
type Drag struct {
	active bool
	start  vmath.Vec2
	end    vmath.Vec2
}

// Begin starts a gesture at p, discarding any unfinished one
func (d *Drag) Begin(p vmath.Vec2) {
	d.active = true
	d.start = p
	d.end = p
}

// Move updates the current pointer position; ignored when idle
func (d *Drag) Move(p vmath.Vec2) {
	if d.active {
		d.end = p
	}
}

// Release ends the gesture at p and returns its endpoints
// ok is false when no gesture was in progress
func (d *Drag) Release(p vmath.Vec2) (start, end vmath.Vec2, ok bool) {
	if !d.active {
		return vmath.Vec2{}, vmath.Vec2{}, false
	}
	d.active = false
	d.end = p
	return d.start, d.end, true
}

// Cancel drops the gesture without launching
func (d *Drag) Cancel() {
	d.active = false
}

// Active reports whether a gesture is being aimed
func (d *Drag) Active() bool {
	return d.active
}

// Points returns the current gesture endpoints
func (d *Drag) Points() (start, end vmath.Vec2) {
	return d.start, d.end
}
