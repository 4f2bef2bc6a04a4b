package fight

import "time"

// Clock supplies monotonically increasing timestamps to a tick driver.
type Clock interface {
	Now() time.Duration
}

// SystemClock reports wall time elapsed since it was created.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock starts a clock at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// Now returns the monotonic time since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// StepClock is a synthetic clock that advances by a fixed step on every Now
// call. Headless runs use it to simulate real time at any speed.
type StepClock struct {
	now  time.Duration
	step time.Duration
}

// NewStepClock creates a step clock starting at zero.
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{step: step}
}

// Now advances the clock by one step and returns the new time.
func (c *StepClock) Now() time.Duration {
	c.now += c.step
	return c.now
}

// Peek returns the current time without advancing.
func (c *StepClock) Peek() time.Duration {
	return c.now
}

// TickInterval converts a tick rate to the duration between ticks.
func TickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// PausableClock wraps a Clock and stops time while paused, so a resumed
// match continues where it left off.
type PausableClock struct {
	base     Clock
	offset   time.Duration
	pausedAt time.Duration
	paused   bool
}

// NewPausableClock wraps base.
func NewPausableClock(base Clock) *PausableClock {
	return &PausableClock{base: base}
}

// Now returns base time minus the total time spent paused.
func (c *PausableClock) Now() time.Duration {
	if c.paused {
		return c.pausedAt - c.offset
	}
	return c.base.Now() - c.offset
}

// Pause freezes the clock. Pausing twice is a no-op.
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.pausedAt = c.base.Now()
	c.paused = true
}

// Resume unfreezes the clock.
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.offset += c.base.Now() - c.pausedAt
	c.paused = false
}

// Paused reports whether the clock is frozen.
func (c *PausableClock) Paused() bool {
	return c.paused
}
