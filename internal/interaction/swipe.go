package interaction

import (
	"sync"

	"github.com/dshills/gestures/internal/input"
	"github.com/dshills/gestures/internal/input/pointer"
)

// swipeRecognizer tracks contacts on one element's swipe group.
type swipeRecognizer struct {
	element Element
	group   *Group
	offset  float64
	obs     observer

	mu       sync.Mutex
	tracker  pointer.Tracker
	selected *Entry
}

func newSwipeRecognizer(g *Group, offset float64, obs observer) *swipeRecognizer {
	return &swipeRecognizer{
		element: g.Element,
		group:   g,
		offset:  offset,
		obs:     obs,
	}
}

// attach subscribes to the element's contact events.
func (r *swipeRecognizer) attach() {
	r.element.AddListener(input.EventContactStart, r.start)
	r.element.AddListener(input.EventContactMove, r.move)
	r.element.AddListener(input.EventContactEnd, r.end)
}

// start records the contact origin and forgets the previous selection.
func (r *swipeRecognizer) start(ev *input.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tracker.Start(ev.Position)
	r.selected = nil
}

// move checks the four thresholds independently and fires the start
// actions of every direction that passes.
func (r *swipeRecognizer) move(ev *input.Event) {
	r.mu.Lock()
	delta, ok := r.tracker.Move(ev.Position)
	if !ok {
		r.mu.Unlock()
		return
	}

	var fired []*Entry
	check := func(passed bool, gt GestureType) {
		if !passed {
			return
		}
		if e := r.group.Entry(gt); e != nil {
			r.selected = e
			fired = append(fired, e)
		}
	}
	check(delta.Y > r.offset, SwipeDown)
	check(delta.Y < -r.offset, SwipeUp)
	check(delta.X < -r.offset, SwipeLeft)
	check(delta.X > r.offset, SwipeRight)
	r.mu.Unlock()

	for _, e := range fired {
		dir := e.Type.Direction()
		distance := delta.X
		if dir.IsVertical() {
			distance = delta.Y
		}
		r.obs.recognized(e.Type, r.element, "direction", dir.String(), "distance", distance)
		run(e.StartActions, r.element)
	}
}

// end fires the end actions of the last selected swipe, if any.
func (r *swipeRecognizer) end(*input.Event) {
	r.mu.Lock()
	selected := r.selected
	r.selected = nil
	r.tracker.End()
	r.mu.Unlock()

	if selected != nil {
		run(selected.EndActions, r.element)
	}
}
