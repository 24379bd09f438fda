package engine

import (
	"time"
)

// FrameClock converts successive frame timestamps into elapsed seconds
// Pausing freezes the clock; the first frame after resume reports zero
type FrameClock struct {
	provider TimeProvider
	maxDelta time.Duration

	last    time.Time
	started bool
	paused  bool
}

// NewFrameClock creates a frame clock; maxDelta caps a single step after a stall (0 disables)
func NewFrameClock(provider TimeProvider, maxDelta time.Duration) *FrameClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &FrameClock{
		provider: provider,
		maxDelta: maxDelta,
	}
}

// Now returns the provider time
func (c *FrameClock) Now() time.Time {
	return c.provider.Now()
}

// Tick returns seconds elapsed since the previous tick
func (c *FrameClock) Tick() float64 {
	now := c.provider.Now()
	if !c.started || c.paused {
		c.last = now
		c.started = true
		return 0
	}

	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	return delta.Seconds()
}

// Pause stops elapsed time accumulation
func (c *FrameClock) Pause() {
	c.paused = true
}

// Resume continues accumulation from the next tick
func (c *FrameClock) Resume() {
	if c.paused {
		c.paused = false
		c.last = c.provider.Now()
	}
}

// IsPaused returns current pause state
func (c *FrameClock) IsPaused() bool {
	return c.paused
}
