package interaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeferredFiresAfterQuietPeriod(t *testing.T) {
	sched := NewManualScheduler()
	calls := 0
	d := newDeferred(sched, 100*time.Millisecond, func() { calls++ })

	d.Call()
	sched.Advance(60 * time.Millisecond)
	d.Call()
	sched.Advance(60 * time.Millisecond)
	assert.Zero(t, calls)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(40 * time.Millisecond)
	assert.Equal(t, 1, calls)
	assert.Zero(t, sched.Pending())
	assert.False(t, d.Cancel(), "nothing left to cancel")
}

func TestDeferredCancel(t *testing.T) {
	sched := NewManualScheduler()
	calls := 0
	d := newDeferred(sched, time.Millisecond, func() { calls++ })

	d.Call()
	assert.True(t, d.Cancel())
	assert.Zero(t, sched.Pending())
	sched.Advance(time.Second)
	assert.Zero(t, calls)
	assert.False(t, d.Cancel())
}

// staleScheduler never stops its timers, so replaced callbacks still run.
type staleScheduler struct {
	fns []func()
}

type noStop struct{}

func (noStop) Stop() bool { return false }

func (s *staleScheduler) AfterFunc(_ time.Duration, f func()) Timer {
	s.fns = append(s.fns, f)
	return noStop{}
}

func TestDeferredIgnoresReplacedTimers(t *testing.T) {
	sched := &staleScheduler{}
	calls := 0
	d := newDeferred(sched, time.Millisecond, func() { calls++ })

	d.Call()
	d.Call()
	d.Call()
	for _, f := range sched.fns {
		f()
	}
	assert.Equal(t, 1, calls)
}
