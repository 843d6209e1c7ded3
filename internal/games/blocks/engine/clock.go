package engine

import "time"

// Clock is a monotonic time source in seconds.
type Clock interface {
	Now() float64
}

// ManualClock is advanced explicitly. The game drives it from its tick count
// so simulations stay deterministic.
type ManualClock struct {
	now float64
}

// Now implements Clock.
func (c *ManualClock) Now() float64 { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d.Seconds()
}

// Set jumps the clock to t seconds.
func (c *ManualClock) Set(t float64) { c.now = t }

// MonotonicClock reports seconds since it was created.
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero.
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now implements Clock.
func (c *MonotonicClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
