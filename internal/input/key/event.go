package key

import (
	"fmt"
	"time"
)

// Action distinguishes key presses from key releases.
type Action uint8

const (
	// ActionPress indicates a key went down.
	ActionPress Action = iota
	// ActionRelease indicates a key went up.
	ActionRelease
)

// String returns a string representation of the action.
func (a Action) String() string {
	if a == ActionRelease {
		return "release"
	}
	return "press"
}

// Event represents a single key press or release.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the modifier state reported with the key.
	Modifiers Modifier

	// Action is press or release.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key press event with the current timestamp.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{
		Key:       key,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewRuneEvent creates a key press event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return NewEvent(KeyRune, r, mods)
}

// NewSpecialEvent creates a key press event for a named key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return NewEvent(key, 0, mods)
}

// FromName builds a key press event from a key name such as "Control",
// "ArrowUp", "F12" or "a". Unrecognized multi-character names are kept as
// literal runes only when they are a single character.
func FromName(name string) (Event, error) {
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, ModNone), nil
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return NewRuneEvent(runes[0], ModNone), nil
}

// Released returns a copy of the event marked as a release.
func (e Event) Released() Event {
	e.Action = ActionRelease
	return e
}

// IsRelease returns true for key release events.
func (e Event) IsRelease() bool {
	return e.Action == ActionRelease
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Token returns the canonical chord token for the key.
func (e Event) Token() string {
	if e.IsRune() {
		if e.Rune == ' ' {
			return TokenSpace
		}
		return lower(string(e.Rune))
	}
	if tok, ok := keyTokens[e.Key]; ok {
		return tok
	}
	return lower(e.Key.String())
}

// String returns a readable representation like "Ctrl+Alt+a".
func (e Event) String() string {
	name := e.Key.String()
	if e.IsRune() {
		name = string(e.Rune)
	}
	if e.Modifiers.IsEmpty() {
		return name
	}
	return e.Modifiers.String() + "+" + name
}
