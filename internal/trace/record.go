package trace

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/gestures/internal/input"
	"github.com/dshills/gestures/internal/input/key"
	"github.com/dshills/gestures/internal/input/pointer"
)

// Errors returned by trace operations.
var (
	ErrUnknownKind    = errors.New("unknown event kind")
	ErrUnknownElement = errors.New("unknown element")
	ErrMissingKey     = errors.New("key record without key")
)

// Record is one recorded input event.
type Record struct {
	Kind    input.EventKind
	Element string
	X, Y    float64
	Key     string
	Delay   time.Duration
}

// FromEvent builds a record for ev dispatched to element.
func FromEvent(ev *input.Event, element string, delay time.Duration) Record {
	r := Record{
		Kind:    ev.Kind,
		Element: element,
		Delay:   delay,
	}
	if ev.Kind.IsKey() {
		r.Key = ev.Key.Token()
	} else {
		r.X = ev.Position.X
		r.Y = ev.Position.Y
	}
	return r
}

// Event converts the record back to an input event.
func (r Record) Event() (*input.Event, error) {
	pos := pointer.Position{X: r.X, Y: r.Y}
	switch r.Kind {
	case input.EventContactStart, input.EventContactMove, input.EventContactEnd:
		return input.NewContactEvent(r.Kind, pos, pointer.DeviceMouse), nil
	case input.EventClick:
		return input.NewClickEvent(pos), nil
	case input.EventKeyDown, input.EventKeyUp:
		if r.Key == "" {
			return nil, ErrMissingKey
		}
		k, err := key.FromName(r.Key)
		if err != nil {
			return nil, err
		}
		if r.Kind == input.EventKeyUp {
			k = k.Released()
		}
		return input.NewKeyEvent(k), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, r.Kind)
	}
}

// ParseError reports a malformed trace line.
type ParseError struct {
	Line    int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("trace line %d: %s", e.Line, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
