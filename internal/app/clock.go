package app

import "time"

// RevealClock paces the reveal of precomputed rows at a steady rate.
type RevealClock struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewRevealClock constructs a clock targeting the given rows per second.
func NewRevealClock(rps int) *RevealClock {
	if rps <= 0 {
		rps = 30
	}
	c := &RevealClock{}
	c.SetRPS(rps)
	c.accumulator = c.step
	return c
}

// SetRPS changes the reveal rate. It is safe to call from the main loop.
func (c *RevealClock) SetRPS(rps int) {
	if rps <= 0 {
		rps = 30
	}
	c.step = time.Second / time.Duration(rps)
}

// ShouldReveal reports whether the next row should become visible.
func (c *RevealClock) ShouldReveal() bool {
	now := time.Now()
	if c.last.IsZero() {
		c.last = now
	}
	delta := now.Sub(c.last)
	c.last = now
	c.accumulator += delta
	if c.accumulator >= c.step {
		c.accumulator -= c.step
		return true
	}
	return false
}
