package minimap

import "time"

// TimeCache memoizes a value for a fixed interval. It is not safe for
// concurrent use; the tracker that owns it refreshes from one goroutine.
type TimeCache[T any] struct {
	ttl   time.Duration
	load  func() T
	value T
	at    time.Time
	ok    bool
}

func NewTimeCache[T any](ttl time.Duration, load func() T) *TimeCache[T] {
	return &TimeCache[T]{ttl: ttl, load: load}
}

// Value returns the cached value, reloading it when the cache is empty or
// older than the TTL at now.
func (c *TimeCache[T]) Value(now time.Time) T {
	if !c.ok || now.Sub(c.at) >= c.ttl || now.Before(c.at) {
		c.value = c.load()
		c.at = now
		c.ok = true
	}
	return c.value
}

// Invalidate forces the next Value call to reload.
func (c *TimeCache[T]) Invalidate() {
	c.ok = false
}
