package interaction

import (
	"sync"

	"github.com/dshills/gestures/internal/input"
)

// clickRecognizer counts activations on one element's click entry and
// resolves each burst after the debounce window.
type clickRecognizer struct {
	element Element
	entry   *Entry
	obs     observer
	resolve *deferred

	mu    sync.Mutex
	count int
}

func newClickRecognizer(e *Entry, sched Scheduler, obs observer) *clickRecognizer {
	r := &clickRecognizer{
		element: e.Element,
		entry:   e,
		obs:     obs,
	}
	r.resolve = newDeferred(sched, e.Window, r.settle)
	return r
}

// attach subscribes to the activation primitive for the element: contact
// starts on touch elements, clicks everywhere else. The choice is made once.
func (r *clickRecognizer) attach() input.EventKind {
	kind := input.EventClick
	if supportsTouch(r.element) {
		kind = input.EventContactStart
	}
	r.element.AddListener(kind, r.activate)
	return kind
}

// activate counts one activation and restarts the debounce window.
func (r *clickRecognizer) activate(ev *input.Event) {
	ev.PreventDefault()

	r.mu.Lock()
	r.count++
	r.mu.Unlock()

	r.resolve.Call()
}

// settle runs the first callback registered for the burst's count and
// resets the count whether or not one matched.
func (r *clickRecognizer) settle() {
	r.mu.Lock()
	count := r.count
	r.count = 0
	if count == 0 {
		r.mu.Unlock()
		return
	}

	var action Action
	for _, c := range r.entry.Clicks {
		if c.Count == count {
			action = c.Action
			break
		}
	}
	r.mu.Unlock()

	if action == nil {
		r.obs.discarded(r.element, count)
		return
	}
	r.obs.recognized(NumberedClicks, r.element, "count", count)
	action(r.element)
}

// stop drops an unresolved burst. It reports whether one was pending.
func (r *clickRecognizer) stop() bool {
	pending := r.resolve.Cancel()
	r.mu.Lock()
	r.count = 0
	r.mu.Unlock()
	return pending
}

// activations returns the current burst count.
func (r *clickRecognizer) activations() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}
