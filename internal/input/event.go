package input

import (
	"time"

	"github.com/dshills/gestures/internal/input/key"
	"github.com/dshills/gestures/internal/input/pointer"
)

// EventKind identifies the type of input event.
type EventKind uint8

const (
	// EventNone is the zero kind.
	EventNone EventKind = iota
	// EventContactStart fires when a pointer or finger touches down.
	EventContactStart
	// EventContactMove fires when an active contact moves.
	EventContactMove
	// EventContactEnd fires when a contact is lifted.
	EventContactEnd
	// EventClick fires for a discrete pointer activation.
	EventClick
	// EventKeyDown fires when a key is pressed.
	EventKeyDown
	// EventKeyUp fires when a key is released.
	EventKeyUp
)

// String returns a string representation of the kind.
func (k EventKind) String() string {
	switch k {
	case EventContactStart:
		return "contactstart"
	case EventContactMove:
		return "contactmove"
	case EventContactEnd:
		return "contactend"
	case EventClick:
		return "click"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	default:
		return "none"
	}
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, bool) {
	for k := EventContactStart; k <= EventKeyUp; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return EventNone, false
}

// IsPointer returns true for contact and click kinds.
func (k EventKind) IsPointer() bool {
	return k >= EventContactStart && k <= EventClick
}

// IsKey returns true for key kinds.
func (k EventKind) IsKey() bool {
	return k == EventKeyDown || k == EventKeyUp
}

// Event is a single input event delivered to an element.
type Event struct {
	// Kind is the event type.
	Kind EventKind

	// Target is the element the event was dispatched to. Set by the
	// dispatching node.
	Target any

	// Position is the contact or click position for pointer kinds.
	Position pointer.Position

	// Device is the pointing device for pointer kinds.
	Device pointer.Device

	// Key is the key for key kinds.
	Key key.Event

	// Timestamp is when the event occurred.
	Timestamp time.Time

	defaultPrevented bool
}

// Listener handles events dispatched to an element.
type Listener func(ev *Event)

// NewContactEvent creates a contact event of the given kind.
func NewContactEvent(kind EventKind, pos pointer.Position, device pointer.Device) *Event {
	return &Event{
		Kind:      kind,
		Position:  pos,
		Device:    device,
		Timestamp: time.Now(),
	}
}

// NewClickEvent creates a click event at pos.
func NewClickEvent(pos pointer.Position) *Event {
	return &Event{
		Kind:      EventClick,
		Position:  pos,
		Device:    pointer.DeviceMouse,
		Timestamp: time.Now(),
	}
}

// NewKeyEvent creates a key down or key up event from k.
func NewKeyEvent(k key.Event) *Event {
	kind := EventKeyDown
	if k.IsRelease() {
		kind = EventKeyUp
	}
	ts := k.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	return &Event{
		Kind:      kind,
		Key:       k,
		Timestamp: ts,
	}
}

// PreventDefault asks the platform to skip its default handling.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}
