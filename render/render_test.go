package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/predict"
	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/vmath"
)

func TestMassColorRamp(t *testing.T) {
	if got := MassColor(4, 4, 20000); got != RGBWhite {
		t.Errorf("Expected white at min, got %+v", got)
	}
	if got := MassColor(20000, 4, 20000); got != (RGB{255, 0, 0}) {
		t.Errorf("Expected red at max, got %+v", got)
	}
	if got := MassColor(1e9, 4, 20000); got != (RGB{255, 0, 0}) {
		t.Errorf("Expected saturation above max, got %+v", got)
	}
	if got := MassColor(math.NaN(), 4, 20000); got != RGBWhite {
		t.Errorf("Expected white for NaN, got %+v", got)
	}
	if got := MassColor(5, 5, 5); got != RGBWhite {
		t.Errorf("Expected white for empty range, got %+v", got)
	}

	mid := MassColor(10002, 4, 20000)
	if mid.R != 255 || mid.G != mid.B || mid.G == 0 || mid.G == 255 {
		t.Errorf("Expected pink midpoint, got %+v", mid)
	}
}

func TestStateColor(t *testing.T) {
	if StateColor(RGBWhite, projectile.Active) != RGBWhite {
		t.Error("Expected active color untouched")
	}
	if StateColor(RGBWhite, projectile.Crashed) == RGBWhite {
		t.Error("Expected crash tint")
	}
}

func TestCameraZoomBounds(t *testing.T) {
	c := NewCamera(vmath.Vec2{}, 80, 24)
	for i := 0; i < 50; i++ {
		c.ZoomIn()
	}
	if math.Abs(c.Zoom-parameter.ZoomMax) > 1e-9 {
		t.Errorf("Expected zoom capped at %v, got %v", parameter.ZoomMax, c.Zoom)
	}
	for i := 0; i < 50; i++ {
		c.ZoomOut()
	}
	if math.Abs(c.Zoom-parameter.ZoomMin) > 1e-9 {
		t.Errorf("Expected zoom floored at %v, got %v", parameter.ZoomMin, c.Zoom)
	}

	c.SetZoom(1.04)
	if math.Abs(c.Zoom-1.0) > 1e-9 {
		t.Errorf("Expected snap to 1.0, got %v", c.Zoom)
	}
	c.SetZoom(math.NaN())
	if c.Zoom != parameter.ZoomDefault {
		t.Errorf("Expected default zoom for NaN, got %v", c.Zoom)
	}
}

func TestCameraMapping(t *testing.T) {
	c := NewCamera(vmath.V(500, 500), 80, 24)

	x, y := c.ToScreen(vmath.V(500, 500))
	if x != 40 || y != 12 {
		t.Errorf("Expected center at (40,12), got (%d,%d)", x, y)
	}

	for _, cell := range [][2]int{{0, 0}, {40, 12}, {79, 23}} {
		w := c.ToWorld(cell[0], cell[1])
		gx, gy := c.ToScreen(w)
		if gx != cell[0] || gy != cell[1] {
			t.Errorf("Expected round trip %v, got (%d,%d)", cell, gx, gy)
		}
	}

	c.SetZoom(2)
	x, _ = c.ToScreen(vmath.V(516, 500))
	if x != 44 {
		t.Errorf("Expected 4 cells at zoom 2, got %d", x)
	}
	if c.Visible(-1, 0) || !c.Visible(79, 23) || c.Visible(80, 0) {
		t.Error("Unexpected visibility result")
	}
}

func TestIndicatorAndHeadTail(t *testing.T) {
	if got := vmath.Magnitude(Indicator(vmath.V(1000, 0))); math.Abs(got-parameter.AccelIndicatorMax) > 1e-9 {
		t.Errorf("Expected clamped indicator, got %v", got)
	}
	if got := Indicator(vmath.V(0.1, 0)); math.Abs(got.X-0.1*parameter.AccelIndicatorScale) > 1e-9 {
		t.Errorf("Expected scaled indicator, got %v", got)
	}

	head, tail := HeadTail(vmath.V(10, 10), vmath.V(0, 3), 2)
	if head != vmath.V(10, 20) || tail != vmath.V(10, 4) {
		t.Errorf("Expected head (10,20) tail (10,4), got %v %v", head, tail)
	}
	head, tail = HeadTail(vmath.V(10, 10), vmath.Vec2{}, 2)
	if head != vmath.V(10, 10) || tail != vmath.V(10, 10) {
		t.Errorf("Expected stationary markers at center, got %v %v", head, tail)
	}
}

func TestBuildFrame(t *testing.T) {
	sim := engine.New(settings.Default(), engine.DefaultConfig(1000, 1000))
	a := sim.Launch(sim.NewLaunch(vmath.V(800, 500), vmath.V(0, 5)))
	sim.Launch(sim.NewLaunch(vmath.V(200, 500), vmath.V(0, -5)))
	sim.Tick()

	path := sim.Predict(vmath.V(500, 200), vmath.V(5, 0))
	f := BuildFrame(sim, path, a.ID)

	if len(f.Projectiles) != 2 || f.Stats.Count != 2 {
		t.Fatalf("Expected 2 sprites, got %d", len(f.Projectiles))
	}
	if len(f.Path) != path.Len() {
		t.Errorf("Expected path of %d points, got %d", path.Len(), len(f.Path))
	}
	if f.Well.Center != vmath.V(500, 500) || f.Well.Radius != 30 {
		t.Errorf("Unexpected well sprite %+v", f.Well)
	}
	if len(f.Projectiles[0].Accel) != 1 {
		t.Errorf("Expected indicator per pull, got %d", len(f.Projectiles[0].Accel))
	}
	if f.Selected == nil || f.Selected.ID != a.ID || math.Abs(f.Selected.Distance-vmath.Distance(a.Position, vmath.V(500, 500))) > 1e-9 {
		t.Errorf("Expected selected info for %d, got %+v", a.ID, f.Selected)
	}
	if f.Stats.OldestFlight != parameter.TickDt {
		t.Errorf("Expected oldest flight one tick, got %v", f.Stats.OldestFlight)
	}

	sim.Apply(engine.CmdToggleIndicators)
	sim.Apply(engine.CmdToggleHeadTail)
	f = BuildFrame(sim, predict.Path{}, 0)
	if f.Projectiles[0].Accel != nil || f.Selected != nil {
		t.Error("Expected indicators hidden and no selection")
	}
	if f.Projectiles[0].Head == f.Projectiles[0].Position {
		t.Error("Expected head marker ahead of moving projectile")
	}
}
