// Package config resolves runtime wiring from defaults, an optional .env file and the environment
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/gravwell/input"
	"github.com/lixenwraith/gravwell/parameter"
	"github.com/lixenwraith/gravwell/persistence"
	"github.com/lixenwraith/gravwell/scoring"
	"github.com/lixenwraith/gravwell/settings"
)

// EnvPrefix prefixes every recognised environment variable
const EnvPrefix = "GRAVWELL_"

// DefaultEnvFile is read when Load is given no explicit file
const DefaultEnvFile = ".env"

// Config is the runtime wiring shared by the binaries
type Config struct {
	SaveDir    string
	SaveName   string
	SaveFormat string

	Scoring scoring.Mode
	Mutual  bool
	Theta   float64
	Drag    string

	Audio       bool
	Debug       bool
	MetricsAddr string
	Keymap      string

	// Settings are the initial tunable settings, overridable per field
	Settings settings.Settings
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		SaveDir:    "saves",
		SaveName:   "gravwell",
		SaveFormat: "toml",
		Scoring:    scoring.Continuous,
		Theta:      parameter.BarnesHutThetaDefault,
		Drag:       "scaled",
		Audio:      true,
		Settings:   settings.Default(),
	}
}

// Load resolves configuration from envFile and the process environment
// The process environment wins over the file; a missing default file is not an error
func Load(envFile string) (Config, error) {
	explicit := envFile != ""
	if !explicit {
		envFile = DefaultEnvFile
	}

	fileVars, err := godotenv.Read(envFile)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
		fileVars = nil
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}
	return Resolve(Default(), lookup)
}

// Resolve overlays variables from lookup onto base
func Resolve(base Config, lookup func(string) (string, bool)) (Config, error) {
	c := base
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("SAVE_DIR"); ok {
		c.SaveDir = v
	}
	if v, ok := get("SAVE_NAME"); ok {
		c.SaveName = v
	}
	if v, ok := get("SAVE_FORMAT"); ok {
		c.SaveFormat = v
	}
	if v, ok := get("SCORING"); ok {
		mode, err := scoring.ParseMode(v)
		if err != nil {
			return Config{}, fmt.Errorf("%sSCORING: %w", EnvPrefix, err)
		}
		c.Scoring = mode
	}
	if v, ok := get("DRAG"); ok {
		c.Drag = v
	}
	if v, ok := get("METRICS_ADDR"); ok {
		c.MetricsAddr = v
	}
	if v, ok := get("KEYMAP"); ok {
		c.Keymap = v
	}

	for name, dst := range map[string]*bool{"MUTUAL": &c.Mutual, "AUDIO": &c.Audio, "DEBUG": &c.Debug} {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
			}
			*dst = b
		}
	}

	if v, ok := get("THETA"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%sTHETA: %w", EnvPrefix, err)
		}
		c.Theta = f
	}

	for _, f := range settings.Fields() {
		v, ok := get(f.EnvSuffix())
		if !ok {
			continue
		}
		val, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s%s: %w", EnvPrefix, f.EnvSuffix(), err)
		}
		c.Settings.Set(f, val)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that name other components
func (c Config) Validate() error {
	if _, err := persistence.CodecFor(c.SaveFormat); err != nil {
		return fmt.Errorf("save format: %w", err)
	}
	if _, err := input.ParseDragMapping(c.Drag); err != nil {
		return fmt.Errorf("drag: %w", err)
	}
	if c.Theta < 0 || c.Theta > parameter.BarnesHutThetaMax {
		return fmt.Errorf("theta %v outside [0, %v]", c.Theta, parameter.BarnesHutThetaMax)
	}
	if c.SaveName == "" {
		return errors.New("save name is empty")
	}
	return nil
}
