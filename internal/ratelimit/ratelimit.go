// Package ratelimit provides the two small rate limiters every
// high-frequency input handler in the UI goes through: Throttle for
// "at most once per interval" work (scroll snapshots) and Debouncer for
// "only the last call in a burst" work (resize re-layout, file-watch
// reload coalescing).
package ratelimit

import (
	"sync"
	"time"
)

// Throttle returns a function that invokes fn on the leading edge, then
// drops further calls until interval has elapsed. There is no trailing
// invocation; the next event after the window fires immediately.
func Throttle(interval time.Duration, fn func()) func() {
	var mu sync.Mutex
	var last time.Time
	return func() {
		mu.Lock()
		now := time.Now()
		if now.Sub(last) < interval {
			mu.Unlock()
			return
		}
		last = now
		mu.Unlock()
		fn()
	}
}

// Debouncer invokes fn once delay has passed without another Call. A call
// inside the window implicitly cancels the pending invocation; there is no
// explicit cancellation token.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	fn    func()
	timer *time.Timer
}

// NewDebouncer creates a debouncer around fn
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Call schedules fn after the delay, replacing any pending invocation
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fn)
}

// Stop cancels any pending invocation. Used on shutdown only.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
