package trace

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/tidwall/sjson"

	"github.com/dshills/gestures/internal/input"
)

// Writer writes records as JSON lines.
type Writer struct {
	mu   sync.Mutex
	w    io.Writer
	last time.Time
	now  func() time.Time
}

// NewWriter creates a writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, now: time.Now}
}

// Write appends one record.
func (w *Writer) Write(r Record) error {
	line, err := encode(r)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.w.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Observe records ev as dispatched to element, timing it against the
// previous observed event. The first event has no delay.
func (w *Writer) Observe(ev *input.Event, element string) error {
	w.mu.Lock()
	now := w.now()
	var delay time.Duration
	if !w.last.IsZero() {
		delay = now.Sub(w.last)
	}
	w.last = now
	w.mu.Unlock()

	return w.Write(FromEvent(ev, element, delay))
}

func encode(r Record) ([]byte, error) {
	line := []byte(`{}`)
	set := func(path string, v any) error {
		var err error
		line, err = sjson.SetBytes(line, path, v)
		return err
	}

	if err := set("kind", r.Kind.String()); err != nil {
		return nil, err
	}
	if r.Element != "" {
		if err := set("element", r.Element); err != nil {
			return nil, err
		}
	}
	if r.Kind.IsKey() {
		if err := set("key", r.Key); err != nil {
			return nil, err
		}
	} else {
		if err := set("x", r.X); err != nil {
			return nil, err
		}
		if err := set("y", r.Y); err != nil {
			return nil, err
		}
	}
	if err := set("delay_ms", r.Delay.Milliseconds()); err != nil {
		return nil, err
	}
	return line, nil
}
