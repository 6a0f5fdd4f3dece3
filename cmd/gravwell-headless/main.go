package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/gravwell/config"
	"github.com/lixenwraith/gravwell/engine"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/persistence"
	"github.com/lixenwraith/gravwell/physics"
	"github.com/lixenwraith/gravwell/projectile"
	"github.com/lixenwraith/gravwell/scoring"
	"github.com/lixenwraith/gravwell/settings"
	"github.com/lixenwraith/gravwell/status"
)

var (
	envFlag      = flag.String("env", "", "Path to .env file (default .env when present)")
	ticksFlag    = flag.Int("ticks", 60*parameter.TickRate, "Ticks to simulate")
	shotsFlag    = flag.Int("shots", 20, "Random launches when no save is loaded")
	seedFlag     = flag.Uint64("seed", 1, "Seed for random launches")
	loadFlag     = flag.String("load", "", "Save slot to load instead of random launches")
	saveFlag     = flag.String("save", "", "Save slot to write the final state to")
	widthFlag    = flag.Float64("width", 800, "Play area width in world units")
	heightFlag   = flag.Float64("height", 600, "Play area height in world units")
	mutualFlag   = flag.Bool("mutual", false, "Enable projectile-projectile gravity")
	thetaFlag    = flag.Float64("theta", 0, "Barnes-Hut opening angle, 0 is exact")
	scoringFlag  = flag.String("scoring", "", "Scoring mode: continuous, per-shot")
	metricsFlag  = flag.String("metrics", "", "Serve Prometheus metrics on this address")
	realtimeFlag = flag.Bool("realtime", false, "Pace ticks at the live tick rate")
	plotFlag     = flag.Bool("plot", true, "Print score and distance plots")
)

func main() {
	log.SetPrefix("gravwell: ")
	log.SetFlags(0)
	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := applyFlags(&cfg); err != nil {
		log.Fatalf("flags: %v", err)
	}

	ecfg := engine.DefaultConfig(*widthFlag, *heightFlag)
	ecfg.Field = physics.FieldConfig{Mutual: cfg.Mutual, Theta: cfg.Theta}
	ecfg.Scoring = cfg.Scoring
	sim := engine.New(cfg.Settings, ecfg)

	reg := status.NewRegistry()
	sim.OnTransition(reg.Observe)

	if cfg.MetricsAddr != "" {
		serveMetrics(cfg.MetricsAddr, reg)
	}

	codec, err := persistence.CodecFor(cfg.SaveFormat)
	if err != nil {
		log.Fatalf("save format: %v", err)
	}
	saves := persistence.NewManager(cfg.SaveDir, codec)

	if *loadFlag != "" {
		loadSave(sim, saves, *loadFlag, cfg.Settings)
	} else {
		rnd := rand.New(rand.NewSource(*seedFlag))
		for _, ev := range spray(sim, rnd, defaultSpray(*shotsFlag)) {
			sim.Launch(ev)
			reg.ObserveLaunch()
		}
	}

	// Reference forecast of the first shot, plotted as distance over steps
	var distances []float64
	if live := sim.Projectiles(); len(live) > 0 {
		first := live[0]
		distances = sim.Predict(first.Position, first.Velocity).Distances(sim.Well().Center)
	}

	var pace func()
	if *realtimeFlag {
		ticker := time.NewTicker(time.Second / parameter.TickRate)
		defer ticker.Stop()
		pace = func() { <-ticker.C }
	}

	res := run(sim, reg, *ticksFlag, parameter.TickRate, pace)
	report(os.Stdout, res, sim.ScoringMode())

	if *plotFlag {
		if len(res.ScoreHist) > 1 {
			fmt.Println(asciigraph.Plot(res.ScoreHist, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("score per second")))
			fmt.Println()
		}
		if len(res.LiveHist) > 1 {
			fmt.Println(asciigraph.Plot(res.LiveHist, asciigraph.Height(6), asciigraph.Width(60), asciigraph.Caption("live projectiles")))
			fmt.Println()
		}
		if len(distances) > 1 {
			fmt.Println(asciigraph.Plot(distances, asciigraph.Height(8), asciigraph.Width(60), asciigraph.Caption("first shot forecast distance")))
		}
	}

	if *saveFlag != "" {
		if err := saves.Save(*saveFlag, persistence.Capture(sim)); err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf("saved %s", saves.FilePath(*saveFlag))
	}
}

// loadSave restores a save slot into sim
// A bad or missing save leaves sim on base settings with no projectiles
func loadSave(sim *engine.Simulation, saves *persistence.Manager, name string, base settings.Settings) int {
	st, err := saves.LoadOrDefault(name, base)
	st.ApplyTo(sim)
	if err != nil {
		var le *persistence.LoadError
		if errors.As(err, &le) && le.Field != "" {
			log.Printf("load %s failed at %s, using defaults: %v", name, le.Field, err)
		} else {
			log.Printf("load %s failed, using defaults: %v", name, err)
		}
		return 0
	}
	log.Printf("loaded %d projectiles from %s", len(st.Projectiles), saves.FilePath(name))
	return len(st.Projectiles)
}

func applyFlags(cfg *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mutual":
			cfg.Mutual = *mutualFlag
		case "theta":
			cfg.Theta = *thetaFlag
		case "scoring":
			if cfg.Scoring, err = scoring.ParseMode(*scoringFlag); err != nil {
				return
			}
		case "metrics":
			cfg.MetricsAddr = *metricsFlag
		}
	})
	if err != nil {
		return err
	}
	return cfg.Validate()
}

func serveMetrics(addr string, reg *status.Registry) {
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(status.NewCollector(reg))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

	go func() {
		log.Printf("metrics listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics server: %v", err)
		}
	}()
}

func report(w io.Writer, res result, mode scoring.Mode) {
	fmt.Fprintf(w, "ticks     %d (%.1fs)\n", res.Ticks, float64(res.Ticks)*parameter.TickDt)
	fmt.Fprintf(w, "launched  %d\n", res.Launched)
	for _, state := range []projectile.Lifecycle{projectile.Crashed, projectile.Escaped, projectile.Orbited} {
		fmt.Fprintf(w, "%-9s %d\n", state, res.Ended[state])
	}
	fmt.Fprintf(w, "live      %d\n", res.Live)
	fmt.Fprintf(w, "score     %d (%s)\n\n", int(res.Score), mode)
}
