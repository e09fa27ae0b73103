package mock

import (
	"sync"
	"time"
)

// Clock is a controllable clock for integration tests. It satisfies the
// application layer's clock interface, so scenarios can pin "now" and make
// period-relative analytics deterministic.
type Clock struct {
	mu    sync.Mutex
	fixed time.Time
}

// NewClock returns a clock that follows the real time until pinned.
func NewClock() *Clock {
	return &Clock{}
}

// Set pins the clock to the given instant.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fixed = t
}

// Reset unpins the clock so Now follows real time again.
func (c *Clock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fixed = time.Time{}
}

// Now returns the pinned instant, or the real time if unpinned.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fixed.IsZero() {
		return time.Now().UTC()
	}
	return c.fixed
}
