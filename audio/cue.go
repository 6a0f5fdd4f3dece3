package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/gravwell/projectile"
)

// Cue identifies a simulation sound
type Cue uint8

const (
	CueNone Cue = iota
	CueLaunch
	CueCrash
	CueEscape
	CueOrbit
)

// CueFor returns the cue announcing a lifecycle state
func CueFor(state projectile.Lifecycle) Cue {
	switch state {
	case projectile.Crashed:
		return CueCrash
	case projectile.Escaped:
		return CueEscape
	case projectile.Orbited:
		return CueOrbit
	}
	return CueNone
}

// cueDuration is the audible length of each cue
var cueDuration = map[Cue]time.Duration{
	CueLaunch: 120 * time.Millisecond,
	CueCrash:  300 * time.Millisecond,
	CueEscape: 400 * time.Millisecond,
	CueOrbit:  450 * time.Millisecond,
}

// Streamer returns a finite streamer for c, nil for CueNone
func (c Cue) Streamer(sr beep.SampleRate) beep.Streamer {
	d, ok := cueDuration[c]
	if !ok {
		return nil
	}
	n := sr.N(d)

	var gen beep.Streamer
	switch c {
	case CueLaunch:
		gen = NewSweepGenerator(sr, 220, 440, n, 0.15)
	case CueCrash:
		gen = NewThudGenerator(sr)
	case CueEscape:
		gen = NewSweepGenerator(sr, 660, 110, n, 0.12)
	case CueOrbit:
		gen = NewChimeGenerator(sr, 523.25)
	}
	return beep.Take(n, gen)
}
