// Package timer provides the frame-driven countdown used for cooldowns,
// attack delays and short-lived visual effects.
package timer

// Countdown counts down from a duration in seconds. The zero value is expired.
type Countdown struct {
	Duration  float64
	Remaining float64
}

// New returns a countdown with the given duration that starts expired.
func New(duration float64) Countdown {
	return Countdown{Duration: duration}
}

// Started returns a countdown with the given duration that is already running.
func Started(duration float64) Countdown {
	return Countdown{Duration: duration, Remaining: duration}
}

// Reset restarts the countdown from its full duration.
func (c *Countdown) Reset() {
	c.Remaining = c.Duration
}

// ResetTo restarts the countdown with a new duration.
func (c *Countdown) ResetTo(duration float64) {
	c.Duration = duration
	c.Remaining = duration
}

// Stop expires the countdown immediately.
func (c *Countdown) Stop() {
	c.Remaining = 0
}

// Tick advances the countdown by dt seconds. Remaining never goes below zero.
// It reports whether the countdown expired during this tick.
func (c *Countdown) Tick(dt float64) bool {
	if c.Remaining <= 0 {
		return false
	}
	c.Remaining -= dt
	if c.Remaining <= 0 {
		c.Remaining = 0
		return true
	}
	return false
}

// Expired reports whether no time remains.
func (c Countdown) Expired() bool {
	return c.Remaining <= 0
}

// Active reports whether the countdown is still running.
func (c Countdown) Active() bool {
	return c.Remaining > 0
}

// Fraction returns remaining/duration in [0, 1]; 0 when expired or unset.
func (c Countdown) Fraction() float64 {
	if c.Duration <= 0 || c.Remaining <= 0 {
		return 0
	}
	f := c.Remaining / c.Duration
	if f > 1 {
		return 1
	}
	return f
}
