package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/gravwell/config"
	"github.com/lixenwraith/gravwell/scoring"
)

var (
	envFlag     = flag.String("env", "", "Path to .env file (default .env when present)")
	debugFlag   = flag.Bool("debug", false, "Write debug log to logs/gravwell.log")
	muteFlag    = flag.Bool("mute", false, "Start without audio")
	mutualFlag  = flag.Bool("mutual", false, "Enable projectile-projectile gravity")
	thetaFlag   = flag.Float64("theta", 0, "Barnes-Hut opening angle for mutual gravity, 0 is exact")
	scoringFlag = flag.String("scoring", "", "Scoring mode: continuous, per-shot")
	dragFlag    = flag.String("drag", "", "Drag mapping: scaled, fixed")
	formatFlag  = flag.String("format", "", "Save format: toml, msgpack")
	saveFlag    = flag.String("save", "", "Save slot name")
	keymapFlag  = flag.String("keymap", "", "TOML keymap override file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg, err = applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	g, err := newGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			g.screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRAVWELL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	g.run()
	g.cleanup()
	log.Printf("exit: score %d after %d ticks", int(g.sim.Score()), g.sim.TickCount())
}

// applyFlags overlays explicitly set flags onto cfg
func applyFlags(cfg config.Config) (config.Config, error) {
	var err error
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "mute":
			cfg.Audio = !*muteFlag
		case "mutual":
			cfg.Mutual = *mutualFlag
		case "theta":
			cfg.Theta = *thetaFlag
		case "scoring":
			cfg.Scoring, err = scoring.ParseMode(*scoringFlag)
		case "drag":
			cfg.Drag = *dragFlag
		case "format":
			cfg.SaveFormat = *formatFlag
		case "save":
			cfg.SaveName = *saveFlag
		case "keymap":
			cfg.Keymap = *keymapFlag
		}
	})
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
