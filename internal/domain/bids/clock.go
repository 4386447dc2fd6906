package bids

import (
	"sync/atomic"
	"time"
)

// DefaultMaxClockLead bounds how far a MonotonicClock may run ahead of the
// wall clock.
const DefaultMaxClockLead = time.Second

// MonotonicClock hands out non-decreasing millisecond timestamps. When several
// bids are created within the same millisecond each one is pushed one
// millisecond past the previous, so the earlier-created bid carries the
// earlier timestamp. The push never takes the clock more than maxLead past the
// wall clock. Past that point timestamps repeat and equal-time ties fall to the
// bid id, which is a time-ordered UUIDv7.
type MonotonicClock struct {
	last    atomic.Int64
	now     func() time.Time
	maxLead time.Duration
}

// NewMonotonicClock returns a clock backed by time.Now
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{now: time.Now, maxLead: DefaultMaxClockLead}
}

// Now returns the next timestamp, truncated to milliseconds, in UTC
func (c *MonotonicClock) Now() time.Time {
	for {
		last := c.last.Load()
		wall := c.now().UnixMilli()
		next := wall
		if next <= last {
			next = min(last+1, wall+c.maxLead.Milliseconds())
			next = max(next, last)
		}
		if c.last.CompareAndSwap(last, next) {
			return time.UnixMilli(next).UTC()
		}
	}
}
