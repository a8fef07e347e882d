package timex

import (
	"sync"
	"time"
)

// Clock issues logical timestamps in UTC epoch milliseconds. Values never go
// backwards on one device, even if the wall clock does.
type Clock struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockFunc returns a Clock reading wall time from now.
func NewClockFunc(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Next returns a timestamp strictly greater than floor and than every value
// previously returned by c.
func (c *Clock) Next(floor int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UTC().UnixMilli()
	if ts <= c.last {
		ts = c.last + 1
	}
	if ts <= floor {
		ts = floor + 1
	}
	c.last = ts
	return ts
}
