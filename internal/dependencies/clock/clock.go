// Package clock abstracts time for deterministic tests. Controllers stamp
// created_at/updated_at through it instead of calling time.Now directly.
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock
type SystemClock struct{}

// New creates a SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
