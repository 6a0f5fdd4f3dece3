package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/vmath"
)

func TestScaledDrag(t *testing.T) {
	s := settings.Default()
	v := ScaledDrag{}.Velocity(vmath.V(100, 100), vmath.V(90, 120), s)
	// (10, -20) * 20/10
	if v != vmath.V(20, -40) {
		t.Errorf("Expected (20,-40), got %v", v)
	}
}

func TestFixedDragIgnoresSettings(t *testing.T) {
	s := settings.Default()
	s.DragScale = 100
	v := NewFixedDrag().Velocity(vmath.V(0, 0), vmath.V(3, -4), s)
	if v != vmath.V(-6, 8) {
		t.Errorf("Expected (-6,8), got %v", v)
	}
}

func TestParseDragMapping(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"scaled", "scaled", false},
		{"", "scaled", false},
		{"fixed", "fixed", false},
		{"rubber", "", true},
	}
	for _, tt := range tests {
		m, err := ParseDragMapping(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDragMapping(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if err == nil && m.Name() != tt.want {
			t.Errorf("ParseDragMapping(%q): expected %s, got %s", tt.in, tt.want, m.Name())
		}
	}
	if NextDragMapping(ScaledDrag{}).Name() != "fixed" || NextDragMapping(NewFixedDrag()).Name() != "scaled" {
		t.Error("Expected drag mappings to cycle")
	}
}

func TestLaunchFromDrag(t *testing.T) {
	s := settings.Default()
	s.FrictionPercent = 4
	ev := LaunchFromDrag(vmath.V(10, 10), vmath.V(0, 10), s, ScaledDrag{})

	if ev.Position != vmath.V(10, 10) || ev.Velocity != vmath.V(20, 0) {
		t.Errorf("Expected launch at (10,10) with (20,0), got %+v", ev)
	}
	if ev.Radius != 5 || ev.Mass != 25 || ev.FrictionPercent != 4 {
		t.Errorf("Expected settings-derived body, got %+v", ev)
	}
}

func TestDragGesture(t *testing.T) {
	var d Drag
	if _, _, ok := d.Release(vmath.V(1, 1)); ok {
		t.Error("Expected release without press to fail")
	}

	d.Move(vmath.V(5, 5))
	if d.Active() {
		t.Error("Expected move to be ignored while idle")
	}

	d.Begin(vmath.V(1, 2))
	d.Move(vmath.V(3, 4))
	if s, e := d.Points(); s != vmath.V(1, 2) || e != vmath.V(3, 4) {
		t.Errorf("Expected (1,2)->(3,4), got %v->%v", s, e)
	}
	s, e, ok := d.Release(vmath.V(6, 8))
	if !ok || s != vmath.V(1, 2) || e != vmath.V(6, 8) {
		t.Errorf("Expected release (1,2)->(6,8), got %v->%v ok=%v", s, e, ok)
	}
	if d.Active() {
		t.Error("Expected gesture to end on release")
	}

	d.Begin(vmath.V(0, 0))
	d.Cancel()
	if _, _, ok := d.Release(vmath.V(1, 1)); ok {
		t.Error("Expected cancelled gesture not to release")
	}
}

func TestKeyLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentPause},
		{tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModNone), IntentOrbitShot},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), IntentIncrease},
		{tcell.NewEventKey(tcell.KeyRune, 'Z', tcell.ModNone), IntentNone},
	}
	for _, tt := range tests {
		if got := kt.Lookup(tt.ev); got != tt.want {
			t.Errorf("Expected intent %d, got %d", tt.want, got)
		}
	}
}

func TestIntentCommands(t *testing.T) {
	if cmd, ok := IntentPause.Command(); !ok || cmd != engine.CmdTogglePause {
		t.Errorf("Expected pause command, got %v ok=%v", cmd, ok)
	}
	if cmd, ok := IntentToggleMutual.Command(); !ok || cmd != engine.CmdToggleMutual {
		t.Errorf("Expected mutual command, got %v ok=%v", cmd, ok)
	}
	if _, ok := IntentSave.Command(); ok {
		t.Error("Expected save to stay in the front-end")
	}
}

func TestLoadKeyConfigAndMerge(t *testing.T) {
	data := []byte(`
[keys]
x = "pause"
p = "none"
space = "orbit_shot"

[special]
F1 = "settings_menu"
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	kt := MergeKeyTable(DefaultKeyTable(), override)
	if kt.Runes['x'] != IntentPause {
		t.Errorf("Expected x bound to pause, got %d", kt.Runes['x'])
	}
	if _, ok := kt.Runes['p']; ok {
		t.Error("Expected p unbound")
	}
	if kt.Runes[' '] != IntentOrbitShot {
		t.Errorf("Expected space bound to orbit shot, got %d", kt.Runes[' '])
	}
	if kt.SpecialKeys[tcell.KeyF1] != IntentSettingsMenu {
		t.Errorf("Expected F1 bound to settings menu, got %d", kt.SpecialKeys[tcell.KeyF1])
	}

	if DefaultKeyTable().Runes['p'] != IntentPause {
		t.Error("Expected merge not to mutate the base table")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []string{
		`[keys]
x = "warp_drive"`,
		`[keys]
xy = "pause"`,
		`[special]
hyper = "pause"`,
		`[keys`,
	}
	for _, data := range tests {
		if _, err := LoadKeyConfig([]byte(data)); err == nil {
			t.Errorf("Expected error for %q", data)
		}
	}
}
