package session

import (
	"sync"
	"time"
)

// debouncer coalesces bursts of triggers into one callback per quiet window.
// Each Trigger restarts the wait; the callback fires once the triggers stop
// for the configured interval. Flush fires immediately and cancels any
// pending wait.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	fn       func()
}

func newDebouncer(interval time.Duration, fn func()) *debouncer {
	return &debouncer{interval: interval, fn: fn}
}

// Trigger schedules the callback after the quiet interval, replacing any
// pending schedule.
func (d *debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fn)
}

// Flush cancels any pending schedule and runs the callback now.
func (d *debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	d.fn()
}

// Stop cancels any pending schedule without running the callback.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
