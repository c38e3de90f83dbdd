package session

import "time"

// Clock is a monotonic time source.
type Clock interface {
	// Now returns the time in seconds since an arbitrary fixed point.
	Now() float64
}

// SystemClock is a Clock backed by the monotonic reading of the system clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a SystemClock that starts at zero.
func NewSystemClock() SystemClock {
	return SystemClock{start: time.Now()}
}

// Now ...
func (c SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
