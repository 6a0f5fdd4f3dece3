package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravwell/audio"
	"github.com/lixenwraith/gravwell/config"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/input"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/persistence"
	"github.com/lixenwraith/gravwell/physics"
	"github.com/lixenwraith/gravwell/predict"
	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/render"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/status"
	"github.com/lixenwraith/gravwell/vmath"
)

const (
	noticeDuration = 2 * time.Second
	flashDuration  = 600 * time.Millisecond
	// orbitShotFactor places the default orbit shot this many well radii out
	orbitShotFactor = 4.0
)

// flash marks where a projectile left play
type flash struct {
	pos   vmath.Vec2
	state projectile.Lifecycle
	until time.Time
}

type game struct {
	screen tcell.Screen
	cfg    config.Config

	sim    *engine.Simulation
	cam    *render.Camera
	keys   *input.KeyTable
	drag   input.Drag
	method input.DragMapping
	saves  *persistence.Manager
	reg    *status.Registry
	player *audio.CuePlayer

	cursor   vmath.Vec2
	buttons  tcell.ButtonMask
	selected uint64

	menu      bool
	menuField int

	notice      string
	noticeUntil time.Time
	flashes     []flash

	quit bool
}

func newGame(cfg config.Config) (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	codec, err := persistence.CodecFor(cfg.SaveFormat)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	method, err := input.ParseDragMapping(cfg.Drag)
	if err != nil {
		screen.Fini()
		return nil, err
	}

	// The play area is the screen at default zoom
	w, h := screen.Size()
	ecfg := engine.DefaultConfig(float64(w)*parameter.CellWorldWidth, float64(h)*parameter.CellWorldHeight)
	ecfg.Field = physics.FieldConfig{Mutual: cfg.Mutual, Theta: cfg.Theta}
	ecfg.Scoring = cfg.Scoring

	g := &game{
		screen: screen,
		cfg:    cfg,
		cam:    render.NewCamera(ecfg.Center, w, h),
		keys:   loadKeys(cfg.Keymap),
		method: method,
		saves:  persistence.NewManager(cfg.SaveDir, codec),
		reg:    status.NewRegistry(),
		player: audio.NewCuePlayer(),
		cursor: ecfg.Center,
	}

	st := cfg.Settings
	if loaded, err := g.saves.LoadSettings(cfg.SaveName, st); err == nil {
		st = loaded
	} else if !errors.Is(err, fs.ErrNotExist) {
		log.Printf("settings load failed, using defaults: %v", err)
	}

	g.sim = engine.New(st, ecfg)
	g.sim.OnTransition(g.onTransition)

	if cfg.Audio {
		if err := g.player.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	if g.saves.Exists(cfg.SaveName) {
		g.load()
	}
	return g, nil
}

// loadKeys merges an optional keymap file over the default bindings
func loadKeys(path string) *input.KeyTable {
	keys := input.DefaultKeyTable()
	if path == "" {
		return keys
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("keymap %s: %v", path, err)
		return keys
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		log.Printf("keymap %s: %v", path, err)
		return keys
	}
	return input.MergeKeyTable(keys, override)
}

func (g *game) run() {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / parameter.TickRate)
	defer ticker.Stop()

	for !g.quit {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			g.handleEvent(ev)
		case <-ticker.C:
			g.sim.Tick()
			g.reg.Sample(g.sim)
			g.draw(time.Now())
		}
	}
}

// cleanup saves the session and releases the terminal and audio device
func (g *game) cleanup() {
	g.save()
	g.player.Cleanup()
	g.screen.Fini()
}

func (g *game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.cam.Resize(ev.Size())
		g.screen.Sync()
	case *tcell.EventKey:
		g.handleIntent(g.keys.Lookup(ev))
	case *tcell.EventMouse:
		g.handleMouse(ev)
	}
}

func (g *game) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := g.cam.ToWorld(x, y)
	g.cursor = p

	btn := ev.Buttons()
	down := btn&tcell.Button1 != 0
	wasDown := g.buttons&tcell.Button1 != 0
	g.buttons = btn

	switch {
	case down && !wasDown:
		g.drag.Begin(p)
	case down:
		g.drag.Move(p)
	case wasDown:
		if start, end, ok := g.drag.Release(p); ok && start != end {
			g.launch(input.LaunchFromDrag(start, end, g.sim.Settings(), g.method))
		}
	}

	if btn&tcell.Button2 != 0 || btn&tcell.Button3 != 0 {
		g.selected = nearest(g.sim.Projectiles(), p)
	}
	if btn&tcell.WheelUp != 0 {
		g.cam.ZoomIn()
	}
	if btn&tcell.WheelDown != 0 {
		g.cam.ZoomOut()
	}
}

func (g *game) handleIntent(intent input.IntentType) {
	if intent == input.IntentNone {
		return
	}

	if cmd, ok := intent.Command(); ok {
		g.sim.Apply(cmd)
		if cmd == engine.CmdNewGame {
			g.selected = 0
			g.flashes = g.flashes[:0]
		}
		g.setNotice(cmd.String())
		log.Printf("command %s", cmd)
		return
	}

	switch intent {
	case input.IntentQuit:
		g.quit = true
	case input.IntentEscape:
		switch {
		case g.drag.Active():
			g.drag.Cancel()
		case g.menu:
			g.menu = false
		default:
			g.selected = 0
		}
	case input.IntentToggleMute:
		if g.player.ToggleMute() {
			g.setNotice("muted")
		} else {
			g.setNotice("sound on")
		}
	case input.IntentCycleDrag:
		g.method = input.NextDragMapping(g.method)
		g.setNotice("drag: " + g.method.Name())
	case input.IntentOrbitShot:
		g.launch(orbitShot(g.sim, g.cursor))
	case input.IntentSelectNext:
		g.selected = nextSelection(g.sim.Projectiles(), g.selected)
	case input.IntentZoomIn:
		g.setNotice(fmt.Sprintf("zoom %.1f", g.cam.ZoomIn()))
	case input.IntentZoomOut:
		g.setNotice(fmt.Sprintf("zoom %.1f", g.cam.ZoomOut()))
	case input.IntentSave:
		g.save()
	case input.IntentLoad:
		g.load()
	case input.IntentSettingsMenu:
		g.menu = !g.menu
	case input.IntentMenuUp, input.IntentMenuDown, input.IntentIncrease, input.IntentDecrease:
		if g.menu {
			g.menuField = menuStep(g.sim, g.menuField, intent)
		}
	}
}

// menuStep applies a settings menu intent and returns the new cursor row
func menuStep(sim *engine.Simulation, row int, intent input.IntentType) int {
	fields := settings.Fields()
	switch intent {
	case input.IntentMenuUp:
		row = (row + len(fields) - 1) % len(fields)
	case input.IntentMenuDown:
		row = (row + 1) % len(fields)
	case input.IntentIncrease:
		sim.UpdateSettings(func(s *settings.Settings) { s.Step(fields[row], 1) })
	case input.IntentDecrease:
		sim.UpdateSettings(func(s *settings.Settings) { s.Step(fields[row], -1) })
	}
	return row
}

func (g *game) launch(ev engine.LaunchEvent) {
	p := g.sim.Launch(ev)
	g.reg.ObserveLaunch()
	g.player.Play(audio.CueLaunch)
	log.Printf("launch #%d at %.1f,%.1f v=%.1f,%.1f", p.ID, ev.Position.X, ev.Position.Y, ev.Velocity.X, ev.Velocity.Y)
}

func (g *game) onTransition(tr engine.Transition) {
	g.reg.Observe(tr)
	g.player.Play(audio.CueFor(tr.To))
	g.flashes = append(g.flashes, flash{pos: tr.Position, state: tr.To, until: time.Now().Add(flashDuration)})
	if tr.ID == g.selected {
		g.selected = 0
	}
	log.Printf("projectile #%d %s after %.2fs at distance %.1f (+%.0f)", tr.ID, tr.To, tr.FlightTime, tr.Distance, tr.Points)
}

func (g *game) save() {
	st := persistence.Capture(g.sim)
	if err := g.saves.Save(g.cfg.SaveName, st); err != nil {
		log.Printf("save failed: %v", err)
		g.setNotice("save failed")
		return
	}
	if err := g.saves.SaveSettings(g.cfg.SaveName, st.Settings); err != nil {
		log.Printf("settings save failed: %v", err)
	}
	g.setNotice("saved " + g.saves.FilePath(g.cfg.SaveName))
}

// load replaces the session with the saved one
// A bad or missing save resets to the configured settings with no projectiles
func (g *game) load() {
	st, err := g.saves.LoadOrDefault(g.cfg.SaveName, g.cfg.Settings)
	st.ApplyTo(g.sim)
	g.selected = 0
	if err != nil {
		var le *persistence.LoadError
		if errors.As(err, &le) && le.Field != "" {
			g.setNotice("load failed: " + le.Field)
		} else {
			g.setNotice("load failed")
		}
		log.Printf("load failed, reset to defaults: %v", err)
		return
	}
	g.setNotice(fmt.Sprintf("loaded %d projectiles", len(st.Projectiles)))
}

func (g *game) setNotice(msg string) {
	g.notice = msg
	g.noticeUntil = time.Now().Add(noticeDuration)
}

// preview returns the predicted path of the shot being aimed
func (g *game) preview() predict.Path {
	if !g.drag.Active() {
		return predict.Path{}
	}
	start, end := g.drag.Points()
	ev := input.LaunchFromDrag(start, end, g.sim.Settings(), g.method)
	return g.sim.Predict(ev.Position, ev.Velocity)
}

// orbitShot builds a circular-orbit launch from at, or from above the well when at is too close
func orbitShot(sim *engine.Simulation, at vmath.Vec2) engine.LaunchEvent {
	well := sim.Well()
	st := sim.Settings()

	rel := r2.Sub(at, well.Center)
	if vmath.Magnitude(rel) <= well.Radius+st.ProjectileRadius || !vmath.IsFinite(rel) {
		rel = vmath.V(0, -orbitShotFactor*well.Radius)
	}
	return sim.NewLaunch(r2.Add(well.Center, rel), physics.OrbitalInsert(rel, well.Mass, false))
}

// nextSelection cycles through live projectiles in launch order, wrapping to the first
func nextSelection(live []*projectile.Projectile, current uint64) uint64 {
	if len(live) == 0 {
		return 0
	}
	for i, p := range live {
		if p.ID == current {
			return live[(i+1)%len(live)].ID
		}
	}
	return live[0].ID
}

// nearest returns the ID of the live projectile closest to p
func nearest(live []*projectile.Projectile, p vmath.Vec2) uint64 {
	var id uint64
	best := -1.0
	for _, pr := range live {
		d := vmath.Distance(pr.Position, p)
		if best < 0 || d < best {
			best, id = d, pr.ID
		}
	}
	return id
}
