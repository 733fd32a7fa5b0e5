// File: internal/watcher/debouncer.go
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is used when a Debouncer is created with a zero duration.
const DefaultDebounce = 250 * time.Millisecond

// Debouncer collapses a burst of triggers into one callback, run once the burst has been
// quiet for the configured duration.
type Debouncer struct {
	duration time.Duration

	mu    sync.Mutex
	timer *time.Timer
	// seq identifies the newest trigger; stale timers that already fired check it and bail.
	seq uint64
}

// NewDebouncer creates a Debouncer. A non-positive duration selects DefaultDebounce.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDebounce
	}
	return &Debouncer{duration: duration}
}

// Trigger (re)schedules callback. Only the callback of the last trigger in a burst runs.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			callback()
		}
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) Duration() time.Duration { return d.duration }
