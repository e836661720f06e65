package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/battleship-go2/internal/dependencies/clock"
)

// MockClock is a Clock whose time only moves when told to. It is safe for
// the concurrent match operations the web and websocket tests drive.
type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
	// Step is added after every call to Now when non-zero
	Step time.Duration
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// Now returns the mocked current time, then advances by Step
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.currentTime
	c.currentTime = c.currentTime.Add(c.Step)
	return now
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}
