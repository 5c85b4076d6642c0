package timer

import (
	"math"
	"time"
)

// Clock is a monotonic simulation clock sampled once per frame.
type Clock struct {
	// elapsed is in seconds; Now rounds it to the nearest nanosecond.
	elapsed float64
	dt      float64
	frame   uint64
}

// Advance moves the clock forward by dt seconds. Negative steps are ignored.
func (c *Clock) Advance(dt float64) {
	if c == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	c.dt = dt
	c.elapsed += dt
	c.frame++
}

// Now returns the elapsed simulation time.
func (c *Clock) Now() time.Duration {
	if c == nil {
		return 0
	}
	return time.Duration(math.Round(c.elapsed * float64(time.Second)))
}

// DT returns the length of the current frame in seconds.
func (c *Clock) DT() float64 {
	if c == nil {
		return 0
	}
	return c.dt
}

// Frame returns the number of frames advanced so far.
func (c *Clock) Frame() uint64 {
	if c == nil {
		return 0
	}
	return c.frame
}
