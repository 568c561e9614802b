package mocks

import (
	"time"

	"github.com/hexforge/catan-go/internal/dependencies/clock"
)

// MockClock is a Clock frozen at CurrentTime. Tests read the field
// directly to assert on created_at/updated_at stamps.
type MockClock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock returns a clock frozen at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the frozen time.
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the frozen time forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
