package common

import "time"

// Clock turns wall-clock time between frames into a delta in seconds.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock creates a clock. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	c := &Clock{now: now}
	c.Reset()
	return c
}

// Tick returns the seconds elapsed since the previous Tick or Reset.
func (c *Clock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}

// Reset makes the next Tick measure from now. Call it after the game was
// hidden or paused so the first frame back does not see the whole gap.
func (c *Clock) Reset() {
	c.last = c.now()
}
