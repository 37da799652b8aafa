package testutil

import (
	"sync"

	"github.com/roach88/binarytime/internal/binarytime"
)

// DeterministicClock is a binarytime.Clock for tests. Each call to Now
// returns the current instant and then advances it by the step.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type DeterministicClock struct {
	mu    sync.Mutex
	start binarytime.Timestamp
	now   binarytime.Timestamp
	step  binarytime.Duration
}

// NewDeterministicClock creates a clock that starts at start and advances
// by step on every read. A zero step gives a frozen clock.
func NewDeterministicClock(start binarytime.Timestamp, step binarytime.Duration) *DeterministicClock {
	return &DeterministicClock{start: start, now: start, step: step}
}

// Now returns the current instant and advances the clock.
func (c *DeterministicClock) Now() binarytime.Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Current returns the instant the next Now call will return.
func (c *DeterministicClock) Current() binarytime.Timestamp {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Reset moves the clock back to its start.
func (c *DeterministicClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.start
}
