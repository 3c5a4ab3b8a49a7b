package trace

import (
	"context"
	"fmt"
	"time"

	"github.com/dshills/gestures/internal/surface"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep waits on the wall clock.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Replay dispatches records to their nodes in order, waiting each record's
// delay first. A pointer record without an element goes to the node under
// its position; a record that reaches no node is skipped. It returns the
// number of events dispatched.
func Replay(ctx context.Context, records []Record, tree *surface.Tree, sleep SleepFunc) (int, error) {
	if sleep == nil {
		sleep = Sleep
	}
	dispatched := 0
	for i, rec := range records {
		if err := sleep(ctx, rec.Delay); err != nil {
			return dispatched, err
		}

		var node *surface.Node
		if rec.Element != "" {
			n, ok := tree.Get(rec.Element)
			if !ok {
				return dispatched, fmt.Errorf("record %d: %w: %s", i, ErrUnknownElement, rec.Element)
			}
			node = n
		} else if !rec.Kind.IsKey() {
			node = tree.HitTest(rec.X, rec.Y)
		}
		if node == nil {
			continue
		}

		ev, err := rec.Event()
		if err != nil {
			return dispatched, fmt.Errorf("record %d: %w", i, err)
		}
		node.Dispatch(ev)
		dispatched++
	}
	return dispatched, nil
}
