package core

import "time"

// SimClock is a monotonic clock that only advances when the simulation ticks.
// Timed effects are measured against it, so a paused run freezes every timer.
type SimClock struct {
	now   time.Duration
	frame time.Duration
}

// NewSimClock creates a clock advancing by one frame of the given tick rate.
func NewSimClock(tickRate int) *SimClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &SimClock{frame: time.Second / time.Duration(tickRate)}
}

// Now returns the simulated time since the last reset.
func (c *SimClock) Now() time.Duration {
	return c.now
}

// Frame returns the duration of one tick.
func (c *SimClock) Frame() time.Duration {
	return c.frame
}

// Advance moves the clock forward by one frame.
func (c *SimClock) Advance() {
	c.now += c.frame
}

// Reset rewinds the clock to zero.
func (c *SimClock) Reset() {
	c.now = 0
}
