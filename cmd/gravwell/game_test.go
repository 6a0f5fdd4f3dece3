package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/gravwell/config"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/input"
	"github.com/lixenwraith/gravwell/persistence"
	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/vmath"
)

func newTestSim() *engine.Simulation {
	return engine.New(settings.Default(), engine.DefaultConfig(800, 600))
}

func TestNextSelection(t *testing.T) {
	live := []*projectile.Projectile{{ID: 3}, {ID: 7}, {ID: 9}}
	tests := []struct {
		current uint64
		want    uint64
	}{
		{0, 3},
		{3, 7},
		{9, 3},
		{42, 3},
	}
	for _, tt := range tests {
		if got := nextSelection(live, tt.current); got != tt.want {
			t.Errorf("nextSelection(%d): expected %d, got %d", tt.current, tt.want, got)
		}
	}
	if got := nextSelection(nil, 3); got != 0 {
		t.Errorf("Expected 0 with no projectiles, got %d", got)
	}
}

func TestNearest(t *testing.T) {
	live := []*projectile.Projectile{
		{ID: 1, Position: vmath.V(0, 0)},
		{ID: 2, Position: vmath.V(100, 0)},
	}
	if got := nearest(live, vmath.V(80, 10)); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
	if got := nearest(nil, vmath.V(0, 0)); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
}

func TestOrbitShotFallsBackAboveWell(t *testing.T) {
	sim := newTestSim()
	well := sim.Well()

	ev := orbitShot(sim, well.Center)
	wantY := well.Center.Y - orbitShotFactor*well.Radius
	if ev.Position.X != well.Center.X || ev.Position.Y != wantY {
		t.Errorf("Expected launch above the well at y=%v, got %v", wantY, ev.Position)
	}
	if ev.Radius != sim.Settings().ProjectileRadius {
		t.Errorf("Expected settings radius, got %v", ev.Radius)
	}
}

func TestOrbitShotCompletesOrbit(t *testing.T) {
	sim := newTestSim()
	well := sim.Well()
	sim.Launch(orbitShot(sim, vmath.V(well.Center.X+150, well.Center.Y)))

	var got []engine.Transition
	for i := 0; i < 60*200 && len(got) == 0; i++ {
		got = sim.Tick()
	}
	if len(got) != 1 || got[0].To != projectile.Orbited {
		t.Fatalf("Expected one orbit transition, got %+v", got)
	}
}

func TestMenuStep(t *testing.T) {
	sim := newTestSim()
	fields := settings.Fields()

	row := menuStep(sim, 0, input.IntentMenuUp)
	if row != len(fields)-1 {
		t.Errorf("Expected wrap to last row, got %d", row)
	}
	row = menuStep(sim, row, input.IntentMenuDown)
	if row != 0 {
		t.Errorf("Expected wrap to first row, got %d", row)
	}

	before := sim.Settings().WellRadius
	menuStep(sim, 0, input.IntentIncrease)
	if got := sim.Settings().WellRadius; math.Abs(got-before-1) > 1e-9 {
		t.Errorf("Expected well radius %v, got %v", before+1, got)
	}
	menuStep(sim, 0, input.IntentDecrease)
	menuStep(sim, 0, input.IntentDecrease)
	if got := sim.Settings().WellRadius; math.Abs(got-before+1) > 1e-9 {
		t.Errorf("Expected well radius %v, got %v", before-1, got)
	}
}

func TestLoadFailureResetsToConfiguredSettings(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.SaveDir = dir
	cfg.Settings.WellRadius = 40

	if err := os.WriteFile(filepath.Join(dir, cfg.SaveName+".toml"), []byte("[[projectiles]]\nradius = 5.0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	sim := newTestSim()
	sim.UpdateSettings(func(s *settings.Settings) { s.WellRadius = 90 })
	p := sim.Launch(sim.NewLaunch(vmath.V(100, 100), vmath.V(1, 0)))

	g := &game{cfg: cfg, sim: sim, saves: persistence.NewManager(dir, nil), selected: p.ID}
	g.load()

	if len(sim.Projectiles()) != 0 {
		t.Errorf("Expected empty live set after failed load, got %d", len(sim.Projectiles()))
	}
	if sim.Settings() != cfg.Settings {
		t.Errorf("Expected configured settings %+v, got %+v", cfg.Settings, sim.Settings())
	}
	if g.selected != 0 {
		t.Errorf("Expected selection cleared, got %d", g.selected)
	}
	if g.notice != "load failed: projectiles[0].position" {
		t.Errorf("Expected notice naming the field, got %q", g.notice)
	}
}
