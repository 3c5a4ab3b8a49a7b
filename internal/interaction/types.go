package interaction

import (
	"fmt"
	"reflect"

	"github.com/dshills/gestures/internal/input"
	"github.com/dshills/gestures/internal/input/key"
)

// Element is anything gestures can be registered on. Elements are compared
// by identity, so the dynamic type must be comparable (pointer types are
// the usual choice).
type Element interface {
	AddListener(kind input.EventKind, l input.Listener)
}

// TouchCapable is implemented by elements that know whether they receive
// touch input. Touch elements count taps from contact starts instead of
// clicks.
type TouchCapable interface {
	SupportsTouch() bool
}

// Registrar accepts registrations. *Engine implements it.
type Registrar interface {
	Register(r Registration) error
}

// Action is a callback run for a recognized gesture. It receives the
// element the gesture was registered on.
type Action func(el Element)

// GestureType is the kind of interaction a registration asks for.
type GestureType string

// Gesture types accepted by Register.
const (
	SwipeUp        GestureType = "swipe-up"
	SwipeDown      GestureType = "swipe-down"
	SwipeLeft      GestureType = "swipe-left"
	SwipeRight     GestureType = "swipe-right"
	NumberedClicks GestureType = "numbered-clicks"
	Keystroke      GestureType = "keystroke"
)

// GestureTypes lists every gesture type in declaration order.
var GestureTypes = []GestureType{
	SwipeUp, SwipeDown, SwipeLeft, SwipeRight, NumberedClicks, Keystroke,
}

// ParseGestureType validates s as a gesture type.
func ParseGestureType(s string) (GestureType, error) {
	g := GestureType(s)
	if !g.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGesture, s)
	}
	return g, nil
}

// Valid reports whether g is a known gesture type.
func (g GestureType) Valid() bool {
	return g.Family() != FamilyNone
}

// Family returns the recognition family for g.
func (g GestureType) Family() Family {
	switch g {
	case SwipeUp, SwipeDown, SwipeLeft, SwipeRight:
		return FamilySwipe
	case NumberedClicks:
		return FamilyClick
	case Keystroke:
		return FamilyKeystroke
	default:
		return FamilyNone
	}
}

// Direction returns the swipe direction, or DirNone for other types.
func (g GestureType) Direction() input.Direction {
	switch g {
	case SwipeUp:
		return input.DirUp
	case SwipeDown:
		return input.DirDown
	case SwipeLeft:
		return input.DirLeft
	case SwipeRight:
		return input.DirRight
	default:
		return input.DirNone
	}
}

// Family is a recognition strategy shared by several gesture types.
type Family uint8

const (
	// FamilyNone is the zero family.
	FamilyNone Family = iota
	// FamilySwipe groups the four swipe directions.
	FamilySwipe
	// FamilyClick groups repeated activations.
	FamilyClick
	// FamilyKeystroke groups key chords.
	FamilyKeystroke
)

// String returns a string representation of the family.
func (f Family) String() string {
	switch f {
	case FamilySwipe:
		return "swipe"
	case FamilyClick:
		return "click"
	case FamilyKeystroke:
		return "keystroke"
	default:
		return "none"
	}
}

// Registration describes one gesture and its callbacks. Only the payload
// fields for Type are read:
//
//   - swipe types: StartAction, EndAction
//   - NumberedClicks: Count, ClickAction
//   - Keystroke: Keys, KeysAction
type Registration struct {
	Element Element
	Type    GestureType

	StartAction Action
	EndAction   Action

	Count       int
	ClickAction Action

	Keys       []string
	KeysAction Action
}

// ClickAction pairs an activation count with its callback.
type ClickAction struct {
	Count  int
	Action Action
}

// ChordAction pairs a canonical chord with its callback.
type ChordAction struct {
	Keys   key.Chord
	Action Action
}

// elementName returns a readable name for logs and metrics.
func elementName(el Element) string {
	switch v := el.(type) {
	case interface{ ID() string }:
		return v.ID()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T", el)
	}
}

// isNilElement reports whether el is nil or a typed nil pointer.
func isNilElement(el Element) bool {
	if el == nil {
		return true
	}
	v := reflect.ValueOf(el)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// isComparable reports whether el can be used as a map key.
func isComparable(el Element) bool {
	return reflect.TypeOf(el).Comparable()
}

// supportsTouch reports whether el asks for touch activation.
func supportsTouch(el Element) bool {
	tc, ok := el.(TouchCapable)
	return ok && tc.SupportsTouch()
}
