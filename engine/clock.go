package engine

import (
	"sync"
	"time"
)

// Clock yields game time as elapsed duration since start, frozen while paused
// Ticks consume Clock.Now as their "now" argument
type Clock struct {
	mu sync.RWMutex

	provider TimeProvider
	start    time.Time

	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewClock starts a clock on the given provider, nil selects the system clock
func NewClock(provider TimeProvider) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Clock{
		provider: provider,
		start:    provider.Now(),
	}
}

// Now returns game time elapsed since the clock started, minus time spent paused
func (c *Clock) Now() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ref := c.provider.Now()
	if c.paused {
		ref = c.pauseStart
	}
	return ref.Sub(c.start) - c.totalPaused
}

// Pause stops game time advancement, no-op when already paused
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

// Resume continues game time advancement, no-op when running
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused {
		return
	}
	c.totalPaused += c.provider.Now().Sub(c.pauseStart)
	c.paused = false
	c.pauseStart = time.Time{}
}

// Toggle flips pause state and reports the new state
func (c *Clock) Toggle() bool {
	if c.IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

func (c *Clock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// TotalPauseDuration returns cumulative pause time, including an ongoing pause
func (c *Clock) TotalPauseDuration() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := c.totalPaused
	if c.paused {
		total += c.provider.Now().Sub(c.pauseStart)
	}
	return total
}
