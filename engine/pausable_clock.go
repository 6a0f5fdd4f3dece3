package engine

import (
	"sync"
	"time"
)

// PausableClock measures session play time, excluding paused spans
// Simulation time itself advances only by fixed ticks; this clock feeds the HUD
type PausableClock struct {
	mu sync.RWMutex

	provider TimeProvider
	start    time.Time

	paused     bool
	pauseStart time.Time
	pausedFor  time.Duration
}

// NewPausableClock creates a running clock reading from provider
// A nil provider uses the system clock
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider: provider,
		start:    provider.Now(),
	}
}

// Elapsed returns play time since the last reset
func (c *PausableClock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	end := c.provider.Now()
	if c.paused {
		end = c.pauseStart
	}
	return end.Sub(c.start) - c.pausedFor
}

// Pause freezes the clock; no-op if already paused
func (c *PausableClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

// Resume continues the clock; no-op if running
func (c *PausableClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.paused {
		return
	}
	c.pausedFor += c.provider.Now().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

// IsPaused returns current pause state
func (c *PausableClock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// PausedTotal returns cumulative pause time, including an ongoing pause
func (c *PausableClock) PausedTotal() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	total := c.pausedFor
	if c.paused {
		total += c.provider.Now().Sub(c.pauseStart)
	}
	return total
}

// Reset restarts play time from zero, keeping the pause state
func (c *PausableClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.provider.Now()
	c.start = now
	c.pausedFor = 0
	if c.paused {
		c.pauseStart = now
	}
}
