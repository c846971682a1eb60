package game

import "time"

// FrameClock measures the time between frames for loops whose library
// does not hand out a frame delta.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

func NewFrameClock(now func() time.Time) *FrameClock {
	return &FrameClock{now: now, last: now()}
}

// Tick returns the seconds since the previous Tick (or construction).
func (c *FrameClock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}
