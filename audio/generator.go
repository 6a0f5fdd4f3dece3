package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// SweepGenerator glides a sine tone between two frequencies over a fixed length
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	amp      float64
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep from one frequency to another over length samples
func NewSweepGenerator(sr beep.SampleRate, from, to float64, length int, amp float64) *SweepGenerator {
	if length < 1 {
		length = 1
	}
	return &SweepGenerator{sr: sr, from: from, to: to, length: length, amp: amp}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1)
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the glide click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := math.Sin(math.Pi * progress)
		sample := g.amp * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ThudGenerator generates a noisy low impact
type ThudGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewThudGenerator creates an impact generator with a fixed noise seed
func NewThudGenerator(sr beep.SampleRate) *ThudGenerator {
	return &ThudGenerator{sr: sr, seed: 0x2545f491}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 12)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		rumble := 0.4 * math.Sin(2*math.Pi*55*t)

		sample := envelope * (0.2*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}

// ChimeGenerator generates a bell-like tone with a fifth overtone
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime at the given fundamental
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	attack := g.sr.N(5 * time.Millisecond)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-t * 5)
		if g.pos < attack {
			envelope *= float64(g.pos) / float64(attack)
		}

		sample := 0.2 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.08 * math.Sin(2*math.Pi*g.freq*1.5*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
