package port

import "time"

// Scheduler runs work on a later iteration of the host main loop.
type Scheduler interface {
	// Post queues fn to run on the next main loop tick.
	Post(fn func())
}

// Clock provides the current time. Tests substitute a manual clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
