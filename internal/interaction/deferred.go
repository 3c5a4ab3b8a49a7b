package interaction

import (
	"sync"
	"time"
)

// deferred runs a callback once a delay passes without another Call.
// It owns a single replaceable timer; each Call replaces the previous one.
//
// Thread-safety: all methods are safe for concurrent use. The callback is
// invoked without the deferred's lock held.
type deferred struct {
	sched    Scheduler
	delay    time.Duration
	callback func()

	mu      sync.Mutex
	timer   Timer
	pending bool
	seq     uint64 // detects callbacks from replaced timers
}

func newDeferred(sched Scheduler, delay time.Duration, callback func()) *deferred {
	return &deferred{
		sched:    sched,
		delay:    delay,
		callback: callback,
	}
}

// Call (re)starts the delay.
func (d *deferred) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = true
	d.seq++
	currentSeq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = d.sched.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if !d.pending || d.seq != currentSeq {
			d.mu.Unlock()
			return
		}
		d.pending = false
		d.timer = nil
		d.mu.Unlock()
		d.callback()
	})
}

// Cancel drops any pending callback and reports whether one was pending.
func (d *deferred) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
	pending := d.pending
	d.pending = false
	return pending
}
