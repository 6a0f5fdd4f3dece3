package persistence

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/vmath"
)

func sampleSim() *engine.Simulation {
	s := settings.Default()
	s.FrictionPercent = 2.5
	s.DragScale = 37
	sim := engine.New(s, engine.DefaultConfig(1000, 1000))
	sim.Launch(sim.NewLaunch(vmath.V(800, 500), vmath.V(0.1, 5.3)))
	sim.Launch(sim.NewLaunch(vmath.V(500, 123.456), vmath.V(-4.75, 0)))
	for i := 0; i < 90; i++ {
		sim.Tick()
	}
	return sim
}

func assertStateEqual(t *testing.T, want, got State) {
	t.Helper()
	if want.Settings != got.Settings {
		t.Errorf("Expected settings %+v, got %+v", want.Settings, got.Settings)
	}
	if want.Score != got.Score {
		t.Errorf("Expected score %v, got %v", want.Score, got.Score)
	}
	if len(want.Projectiles) != len(got.Projectiles) {
		t.Fatalf("Expected %d projectiles, got %d", len(want.Projectiles), len(got.Projectiles))
	}
	for i := range want.Projectiles {
		w, g := want.Projectiles[i], got.Projectiles[i]
		if w.Position != g.Position || w.Velocity != g.Velocity || w.Radius != g.Radius ||
			w.Mass != g.Mass || w.FrictionPercent != g.FrictionPercent || w.FlightTime != g.FlightTime {
			t.Errorf("Projectile %d: expected %+v, got %+v", i, w, g)
		}
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	want := Capture(sampleSim())
	got, err := Deserialize(Serialize(want), settings.Default())
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	assertStateEqual(t, want, got)
}

func TestManagerRoundTrip(t *testing.T) {
	for _, codec := range []Codec{TOMLCodec{}, MsgpackCodec{}} {
		t.Run(codec.Format(), func(t *testing.T) {
			m := NewManager(t.TempDir(), codec)
			sim := sampleSim()
			want := Capture(sim)

			if err := m.Save("slot", want); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			if !m.Exists("slot") {
				t.Fatal("Expected save file to exist")
			}

			got, err := m.Load("slot", settings.Default())
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			assertStateEqual(t, want, got)
		})
	}
}

func TestRestoreResetsOrbitProgress(t *testing.T) {
	sim := sampleSim()
	st := Capture(sim)
	for _, p := range st.Projectiles {
		p.SweptAngle = 4
	}

	loaded, err := Deserialize(Serialize(st), settings.Default())
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	target := engine.New(settings.Default(), engine.DefaultConfig(1000, 1000))
	loaded.ApplyTo(target)

	for _, p := range target.Projectiles() {
		if !p.Active() || p.SweptAngle != 0 {
			t.Errorf("Expected active projectile with zero sweep, got %s %v", p.State, p.SweptAngle)
		}
	}
	if target.Settings() != sim.Settings() || target.Score() != sim.Score() {
		t.Errorf("Expected settings and score restored")
	}
}

func TestCaptureIsolatesLiveState(t *testing.T) {
	sim := sampleSim()
	st := Capture(sim)
	st.Projectiles[0].Position = vmath.V(-1, -1)
	if sim.Projectiles()[0].Position == vmath.V(-1, -1) {
		t.Error("Expected capture to copy projectiles")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaultsAndUnknownFields(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hand.toml", `
score = 12.5
comment = "edited by hand"

[settings]
well_radius = 500.0
well_density = 2.0
projectile_radius = 3.0
gv_radius = 5.0

[[projectiles]]
position = [100.0, 0.0]
velocity = [0.0, 3.0]
radius = 4.0
color = "red"
`)

	base := settings.Default()
	base.FrictionPercent = 9
	st, err := NewManager(dir, nil).Load("hand", base)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if st.Settings.WellRadius != 200 {
		t.Errorf("Expected clamped well radius 200, got %v", st.Settings.WellRadius)
	}
	if st.Settings.FrictionPercent != 9 || st.Settings.DragScale != base.DragScale {
		t.Errorf("Expected missing settings inherited from base, got %+v", st.Settings)
	}
	if st.Score != 12.5 || len(st.Projectiles) != 1 {
		t.Fatalf("Expected score 12.5 and one projectile, got %v and %d", st.Score, len(st.Projectiles))
	}

	p := st.Projectiles[0]
	// projectile_radius 3, density 1 from base
	if p.Mass != 9 {
		t.Errorf("Expected mass inherited from loaded settings (9), got %v", p.Mass)
	}
	if p.FrictionPercent != 9 || p.FlightTime != 0 || p.BaseScore != 0 {
		t.Errorf("Expected defaults for absent fields, got %+v", p)
	}
	if p.Radius != 4 {
		t.Errorf("Expected stored radius 4, got %v", p.Radius)
	}
}

func TestLoadErrorNamesField(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
		cause   error
	}{
		{
			name: "missing position",
			content: `
[[projectiles]]
position = [1.0, 1.0]
velocity = [0.0, 0.0]
radius = 2.0

[[projectiles]]
velocity = [0.0, 0.0]
radius = 2.0
`,
			field: "projectiles[1].position",
			cause: ErrMissing,
		},
		{
			name: "missing radius",
			content: `
[[projectiles]]
position = [1.0, 1.0]
velocity = [0.0, 0.0]
`,
			field: "projectiles[0].radius",
			cause: ErrMissing,
		},
		{
			name: "negative mass",
			content: `
[[projectiles]]
position = [1.0, 1.0]
velocity = [0.0, 0.0]
radius = 2.0
mass = -4.0
`,
			field: "projectiles[0].mass",
			cause: ErrInvalid,
		},
		{
			name:    "negative score",
			content: "score = -1.0\n",
			field:   "score",
			cause:   ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "bad.toml", tt.content)

			_, err := NewManager(dir, nil).Load("bad", settings.Default())
			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("Expected LoadError, got %v", err)
			}
			if le.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, le.Field)
			}
			if errors.Cause(err) != tt.cause {
				t.Errorf("Expected cause %v, got %v", tt.cause, errors.Cause(err))
			}
			if le.Path == "" {
				t.Error("Expected path on LoadError")
			}
		})
	}
}

func TestLoadMalformedOrMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "junk.toml", "[[projectiles]\nposition = ")
	m := NewManager(dir, nil)

	for _, name := range []string{"junk", "absent"} {
		_, err := m.Load(name, settings.Default())
		var le *LoadError
		if !errors.As(err, &le) {
			t.Errorf("%s: expected LoadError, got %v", name, err)
		}
	}
}

func TestLoadTypeMismatchNamesField(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "typed.toml", "[settings]\nwell_radius = \"big\"\n")
	m := NewManager(dir, nil)

	_, err := m.Load("typed", settings.Default())
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("Expected LoadError, got %v", err)
	}
	if le.Field != "settings.well_radius" {
		t.Errorf("Expected field settings.well_radius, got %q", le.Field)
	}
	if le.Path != m.FilePath("typed") {
		t.Errorf("Expected path %s, got %s", m.FilePath("typed"), le.Path)
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.toml", "[[projectiles]]\nvelocity = [1.0, 2.0]\nradius = 5.0\n")
	m := NewManager(dir, nil)

	base := settings.Default()
	base.WellRadius = 44

	for _, name := range []string{"broken", "absent"} {
		st, err := m.LoadOrDefault(name, base)
		if err == nil {
			t.Errorf("%s: expected error", name)
		}
		if st.Settings != base || len(st.Projectiles) != 0 || st.Score != 0 {
			t.Errorf("%s: expected base settings and empty set, got %+v", name, st)
		}
	}

	sim := sampleSim()
	if err := m.Save("good", Capture(sim)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	st, err := m.LoadOrDefault("good", base)
	if err != nil {
		t.Fatalf("Expected clean load, got %v", err)
	}
	if len(st.Projectiles) != len(sim.Projectiles()) {
		t.Errorf("Expected %d projectiles, got %d", len(sim.Projectiles()), len(st.Projectiles))
	}
}

func TestSaveErrorOnUnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blocker", "not a directory")

	m := NewManager(filepath.Join(dir, "blocker", "saves"), nil)
	sim := sampleSim()
	before := Capture(sim)

	err := m.Save("slot", before)
	var se *SaveError
	if !errors.As(err, &se) {
		t.Fatalf("Expected SaveError, got %v", err)
	}
	if se.Path != m.FilePath("slot") {
		t.Errorf("Expected path %q, got %q", m.FilePath("slot"), se.Path)
	}
	assertStateEqual(t, before, Capture(sim))
}

func TestSettingsFile(t *testing.T) {
	m := NewManager(t.TempDir(), MsgpackCodec{})
	s := settings.Default()
	s.WellDensity = 42
	s.FrictionPercent = 1.5

	if err := m.SaveSettings("prefs", s); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}
	got, err := m.LoadSettings("prefs", settings.Default())
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if got != s {
		t.Errorf("Expected %+v, got %+v", s, got)
	}

	base := settings.Default()
	got, err = m.LoadSettings("missing", base)
	if err == nil || got != base {
		t.Errorf("Expected error and base settings, got %v %+v", err, got)
	}
}

func TestCodecFor(t *testing.T) {
	for _, name := range []string{"toml", "msgpack", ""} {
		if _, err := CodecFor(name); err != nil {
			t.Errorf("CodecFor(%q): unexpected error %v", name, err)
		}
	}
	if _, err := CodecFor("yaml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestFilePaths(t *testing.T) {
	m := NewManager("/tmp/gw", TOMLCodec{})
	if got := m.FilePath("a"); got != filepath.Join("/tmp/gw", "a.toml") {
		t.Errorf("Unexpected path %q", got)
	}
	if got := m.SettingsPath("a"); got != filepath.Join("/tmp/gw", "a.settings.toml") {
		t.Errorf("Unexpected settings path %q", got)
	}
}
