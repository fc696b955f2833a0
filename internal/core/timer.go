package core

import "time"

// Clock supplies the current time to the main loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// TickClock is a logical clock advanced by a fixed step per tick. ebiten runs
// several Updates back to back per frame, so the wall clock cannot tell them
// apart; the tick clock measures ebiten's logical time instead.
type TickClock struct {
	now  time.Time
	step time.Duration
}

// NewTickClock returns a clock starting at start that advances by step on
// every Tick.
func NewTickClock(start time.Time, step time.Duration) *TickClock {
	return &TickClock{now: start, step: step}
}

// NewTickClockTPS returns a tick clock for tps ticks per second.
func NewTickClockTPS(tps int) *TickClock {
	if tps <= 0 {
		tps = 60
	}
	return NewTickClock(time.Now(), time.Second/time.Duration(tps))
}

// Tick advances the clock by one step.
func (c *TickClock) Tick() { c.now = c.now.Add(c.step) }

// Now returns the current logical time.
func (c *TickClock) Now() time.Time { return c.now }

// Cadence gates an action so that it fires at most once per interval. The
// gate is reset to the observed time whenever it fires, so missed intervals
// are not caught up.
type Cadence struct {
	interval time.Duration
	last     time.Time
	fired    bool
}

// NewCadence constructs a Cadence for the given interval. A non-positive
// interval fires on every check.
func NewCadence(interval time.Duration) *Cadence {
	if interval < 0 {
		interval = 0
	}
	return &Cadence{interval: interval}
}

// Due reports whether the interval has elapsed since the last firing and, if
// so, records now as the new reference point. The first check always fires.
func (c *Cadence) Due(now time.Time) bool {
	if c.fired && now.Sub(c.last) < c.interval {
		return false
	}
	c.last = now
	c.fired = true
	return true
}
