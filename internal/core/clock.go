package core

import "time"

// MaxStep is the largest dt handed to a simulation step, in seconds.
// Larger gaps (stalls, a suspended terminal) are cut down to this.
const MaxStep = 1.0 / 30.0

// Clock converts frame callback timestamps into clamped step durations.
type Clock struct {
	last    time.Time
	started bool
	maxStep float64
}

// NewClock creates a clock with the default MaxStep.
func NewClock() *Clock {
	return &Clock{maxStep: MaxStep}
}

// Tick records a frame timestamp and returns dt in seconds, clamped to [0, MaxStep].
// The first tick after creation or Reset returns 0.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampF(dt, 0, c.maxStep)
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() {
	c.started = false
}
