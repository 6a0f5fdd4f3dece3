package engine

import (
	"time"

	"github.com/lixenwraith/gravwell/physics"
	"github.com/lixenwraith/gravwell/predict"
	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/scoring"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/vmath"
)

// LaunchEvent is a shot delivered by the input collaborator
type LaunchEvent = projectile.Launch

// Simulation owns the settings, every live projectile and the cumulative score
// Single writer: all mutation happens on the caller's loop between ticks
type Simulation struct {
	settings settings.Settings
	cfg      Config
	policy   scoring.Policy
	clock    *PausableClock

	projectiles []*projectile.Projectile
	score       float64
	nextID      uint64
	tick        uint64

	paused bool
	view   View

	hooks []func(Transition)
}

// New creates an empty simulation; s is clamped
func New(s settings.Settings, cfg Config) *Simulation {
	cfg = cfg.normalized()
	return &Simulation{
		settings: s.Clamp(),
		cfg:      cfg,
		policy:   scoring.New(cfg.Scoring),
		clock:    NewPausableClock(cfg.Clock),
		view:     View{ShowIndicators: true},
	}
}

// ===== Accessors =====

func (s *Simulation) Settings() settings.Settings { return s.settings }
func (s *Simulation) Config() Config               { return s.cfg }
func (s *Simulation) Score() float64               { return s.score }
func (s *Simulation) Paused() bool                 { return s.paused }
func (s *Simulation) View() View                   { return s.view }
func (s *Simulation) TickCount() uint64            { return s.tick }
func (s *Simulation) ScoringMode() scoring.Mode    { return s.policy.Mode() }
func (s *Simulation) PlayTime() time.Duration      { return s.clock.Elapsed() }

// Projectiles returns the live set in launch order
// The slice is owned by the simulation and valid until the next mutation
func (s *Simulation) Projectiles() []*projectile.Projectile {
	return s.projectiles
}

// Well returns the central body under the current settings
func (s *Simulation) Well() physics.Well {
	return s.settings.Well(s.cfg.Center)
}

// Arena returns the play volume
func (s *Simulation) Arena() physics.Arena {
	return s.cfg.Arena()
}

// Oldest returns the live projectile with the longest flight time, nil if none
func (s *Simulation) Oldest() *projectile.Projectile {
	var oldest *projectile.Projectile
	for _, p := range s.projectiles {
		if oldest == nil || p.FlightTime > oldest.FlightTime {
			oldest = p
		}
	}
	return oldest
}

// Find returns the live projectile with id, nil if gone
func (s *Simulation) Find(id uint64) *projectile.Projectile {
	for _, p := range s.projectiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ===== Mutation =====

// SetSettings replaces the tunable settings, clamped
// Live projectiles keep their launch radius, mass and friction
func (s *Simulation) SetSettings(st settings.Settings) {
	s.settings = st.Clamp()
}

// UpdateSettings applies fn to a copy of the settings and stores the clamped result
func (s *Simulation) UpdateSettings(fn func(*settings.Settings)) settings.Settings {
	st := s.settings
	fn(&st)
	s.SetSettings(st)
	return s.settings
}

// SetFieldConfig switches gravity model variant without touching other state
func (s *Simulation) SetFieldConfig(fc physics.FieldConfig) {
	s.cfg.Field = fc
	s.cfg = s.cfg.normalized()
}

// SetScoring switches scoring mode; accrued score is kept
func (s *Simulation) SetScoring(mode scoring.Mode) {
	s.cfg.Scoring = mode
	s.policy = scoring.New(mode)
}

// OnTransition registers a hook called for every transition after the tick commits
func (s *Simulation) OnTransition(fn func(Transition)) {
	if fn != nil {
		s.hooks = append(s.hooks, fn)
	}
}

// Launch appends a new Active projectile; accepted while paused
func (s *Simulation) Launch(ev LaunchEvent) *projectile.Projectile {
	p := projectile.New(ev)
	s.nextID++
	p.ID = s.nextID
	s.policy.OnLaunch(p, s.cfg.Center)
	s.projectiles = append(s.projectiles, p)
	return p
}

// NewLaunch builds a launch event from the current settings
func (s *Simulation) NewLaunch(pos, vel vmath.Vec2) LaunchEvent {
	return LaunchEvent{
		Position:        pos,
		Velocity:        vel,
		Radius:          s.settings.ProjectileRadius,
		Mass:            s.settings.ProjectileMass(),
		FrictionPercent: s.settings.FrictionPercent,
	}
}

// Predict forecasts the preview path of a shot from pos with vel
func (s *Simulation) Predict(pos, vel vmath.Vec2) predict.Path {
	return predict.Predict(pos, vel, s.settings, s.Arena(), predict.DefaultParams())
}

// Tick advances every live projectile by one fixed step
// Mutual pulls read a snapshot of positions committed by the previous tick
// Terminal projectiles are removed before returning; no-op while paused
func (s *Simulation) Tick() []Transition {
	if s.paused {
		return nil
	}
	s.tick++

	var bodies []physics.PointMass
	if s.cfg.Field.Mutual {
		bodies = make([]physics.PointMass, 0, len(s.projectiles))
		for _, p := range s.projectiles {
			if p.Active() {
				bodies = append(bodies, p.PointMass())
			}
		}
	}
	env := projectile.Environment{
		Field:       physics.NewField(s.Well(), bodies, s.cfg.Field),
		MaxDistance: s.cfg.MaxDistance,
	}

	var transitions []Transition
	for _, p := range s.projectiles {
		from := p.State
		to, changed := p.Update(s.cfg.Dt, env)
		if !changed {
			continue
		}
		points := s.policy.OnTransition(p, to)
		s.score += points
		transitions = append(transitions, newTransition(s.tick, p, from, points))
	}

	live := s.projectiles[:0]
	for _, p := range s.projectiles {
		if p.Active() {
			live = append(live, p)
		}
	}
	clear(s.projectiles[len(live):])
	s.projectiles = live

	s.score += s.policy.OnTick(s.cfg.Dt, s.projectiles)

	for _, tr := range transitions {
		for _, fn := range s.hooks {
			fn(tr)
		}
	}
	return transitions
}

// Apply executes a boundary command
func (s *Simulation) Apply(cmd Command) {
	switch cmd {
	case CmdTogglePause:
		s.SetPaused(!s.paused)
	case CmdToggleIndicators:
		s.view.ShowIndicators = !s.view.ShowIndicators
	case CmdToggleHeadTail:
		s.view.ShowHeadTail = !s.view.ShowHeadTail
	case CmdNewGame:
		s.NewGame()
	case CmdCycleScoring:
		s.SetScoring(s.policy.Mode().Next())
	case CmdToggleMutual:
		fc := s.cfg.Field
		fc.Mutual = !fc.Mutual
		s.SetFieldConfig(fc)
	}
}

// SetPaused sets the pause flag; a paused simulation ignores Tick
func (s *Simulation) SetPaused(paused bool) {
	s.paused = paused
	if paused {
		s.clock.Pause()
	} else {
		s.clock.Resume()
	}
}

// NewGame drops every projectile and resets the score
func (s *Simulation) NewGame() {
	clear(s.projectiles)
	s.projectiles = s.projectiles[:0]
	s.score = 0
	s.tick = 0
	s.clock.Reset()
}

// Restore replaces settings, projectiles and score with a loaded state
// Projectiles are re-identified and forced Active with orbit progress cleared
func (s *Simulation) Restore(st settings.Settings, projectiles []*projectile.Projectile, score float64) {
	s.NewGame()
	s.SetSettings(st)
	for _, p := range projectiles {
		if p == nil {
			continue
		}
		s.nextID++
		p.ID = s.nextID
		p.State = projectile.Active
		p.SweptAngle = 0
		p.LastAccel = nil
		s.projectiles = append(s.projectiles, p)
	}
	if score > 0 {
		s.score = score
	}
}
