package interaction

import (
	"slices"
	"sync"

	"github.com/dshills/gestures/internal/input"
)

// chordRecognizer tracks held keys on one element's keystroke group.
type chordRecognizer struct {
	element Element
	group   *Group
	obs     observer

	mu   sync.Mutex
	held []string
}

func newChordRecognizer(g *Group, obs observer) *chordRecognizer {
	return &chordRecognizer{
		element: g.Element,
		group:   g,
		obs:     obs,
	}
}

// attach subscribes to the element's key events.
func (r *chordRecognizer) attach() {
	r.element.AddListener(input.EventKeyDown, r.keyDown)
	r.element.AddListener(input.EventKeyUp, r.keyUp)
}

// keyDown adds the key to the held set (once) and fires every chord equal
// to the held keys in press order.
func (r *chordRecognizer) keyDown(ev *input.Event) {
	tok := ev.Key.Token()

	r.mu.Lock()
	if !slices.Contains(r.held, tok) {
		r.held = append(r.held, tok)
	}

	var matched []ChordAction
	for _, e := range r.group.Entries {
		for _, c := range e.Chords {
			if c.Keys.Matches(r.held) {
				matched = append(matched, c)
			}
		}
	}
	r.mu.Unlock()

	for _, c := range matched {
		r.obs.recognized(Keystroke, r.element, "keys", c.Keys.String())
		c.Action(r.element)
	}
}

// keyUp clears the held set; any release ends the chord.
func (r *chordRecognizer) keyUp(*input.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.held = r.held[:0]
}

// heldKeys returns a copy of the held set.
func (r *chordRecognizer) heldKeys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.held)
}
