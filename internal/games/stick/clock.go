package stick

import "time"

// Clock turns host frame timestamps into elapsed milliseconds.
// The first frame after a reset only sets the baseline.
type Clock struct {
	last    time.Time
	started bool
}

// Advance returns the milliseconds since the previous frame, or 0 for the
// first frame and for timestamps that go backwards.
func (c *Clock) Advance(now time.Time) float64 {
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}
	return float64(elapsed) / float64(time.Millisecond)
}

// Reset forgets the baseline.
func (c *Clock) Reset() {
	c.started = false
	c.last = time.Time{}
}
