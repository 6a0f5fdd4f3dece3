package main

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/physics"
	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/status"
	"github.com/lixenwraith/gravwell/vmath"
)

// sprayOptions shapes a batch of random launches around the well
type sprayOptions struct {
	Count int
	// MinFactor and MaxFactor bound the launch radius in well radii
	MinFactor, MaxFactor float64
	// Jitter scales the circular insertion speed by 1±Jitter
	Jitter float64
}

func defaultSpray(n int) sprayOptions {
	return sprayOptions{Count: n, MinFactor: 2, MaxFactor: 10, Jitter: 0.4}
}

// spray builds n seeded launches with velocities near circular insertion
func spray(sim *engine.Simulation, rnd *rand.Rand, opt sprayOptions) []engine.LaunchEvent {
	well := sim.Well()
	arena := sim.Arena()
	maxR := math.Min(opt.MaxFactor*well.Radius, arena.MaxDistance*0.9)
	minR := math.Min(opt.MinFactor*well.Radius, maxR)

	events := make([]engine.LaunchEvent, 0, opt.Count)
	for n := 0; n < opt.Count; n++ {
		angle := rnd.Float64() * vmath.TwoPi
		r := minR + rnd.Float64()*(maxR-minR)
		rel := vmath.V(r*math.Cos(angle), r*math.Sin(angle))

		vel := physics.OrbitalInsert(rel, well.Mass, rnd.Intn(2) == 0)
		vel = r2.Scale(1+opt.Jitter*(2*rnd.Float64()-1), vel)

		events = append(events, sim.NewLaunch(r2.Add(well.Center, rel), vel))
	}
	return events
}

// result summarizes a batch run
type result struct {
	Ticks    uint64
	Score    float64
	Launched int
	Ended    map[projectile.Lifecycle]int
	Live     int

	// Sampled once per sampleEvery ticks
	ScoreHist []float64
	LiveHist  []float64
}

// run advances sim for ticks steps, feeding reg and sampling histories
// pace is called once per tick and may block to slow the run down
func run(sim *engine.Simulation, reg *status.Registry, ticks, sampleEvery int, pace func()) result {
	if sampleEvery <= 0 {
		sampleEvery = 1
	}
	res := result{
		Launched: len(sim.Projectiles()),
		Ended:    make(map[projectile.Lifecycle]int),
	}

	for i := 0; i < ticks; i++ {
		for _, tr := range sim.Tick() {
			res.Ended[tr.To]++
		}
		reg.Sample(sim)
		if i%sampleEvery == 0 {
			res.ScoreHist = append(res.ScoreHist, sim.Score())
			res.LiveHist = append(res.LiveHist, float64(len(sim.Projectiles())))
		}
		if pace != nil {
			pace()
		}
		if len(sim.Projectiles()) == 0 {
			break
		}
	}

	res.Ticks = sim.TickCount()
	res.Score = sim.Score()
	res.Live = len(sim.Projectiles())
	return res
}
