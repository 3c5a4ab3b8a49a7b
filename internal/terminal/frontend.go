package terminal

import (
	"context"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gestures/internal/input"
	"github.com/dshills/gestures/internal/input/pointer"
	"github.com/dshills/gestures/internal/logging"
	"github.com/dshills/gestures/internal/surface"
	"github.com/dshills/gestures/internal/trace"
)

// Frontend feeds tcell input into a surface tree and draws the tree.
type Frontend struct {
	screen   tcell.Screen
	tree     *surface.Tree
	log      *slog.Logger
	recorder *trace.Writer

	mu      sync.Mutex
	status  string
	pressed bool
	contact *surface.Node // node the current contact started on
	focus   *surface.Node // node receiving keys
}

// Option configures a Frontend.
type Option func(*Frontend)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Frontend) {
		f.log = l
	}
}

// WithRecorder records every dispatched event to w.
func WithRecorder(w *trace.Writer) Option {
	return func(f *Frontend) {
		f.recorder = w
	}
}

// New creates a front-end for tree on screen. The screen must not be
// initialized yet; Init does that.
func New(screen tcell.Screen, tree *surface.Tree, opts ...Option) *Frontend {
	f := &Frontend{
		screen: screen,
		tree:   tree,
		status: "press Esc to quit",
	}
	for _, opt := range opts {
		opt(f)
	}
	f.log = logging.Component(f.log, "terminal")
	return f
}

// NewScreen creates a screen for the controlling terminal.
func NewScreen() (tcell.Screen, error) {
	return tcell.NewScreen()
}

// Init initializes the screen and enables mouse reporting.
func (f *Frontend) Init() error {
	if err := f.screen.Init(); err != nil {
		return err
	}
	f.screen.EnableMouse(tcell.MouseDragEvents)
	f.screen.HideCursor()
	return nil
}

// Fini restores the terminal.
func (f *Frontend) Fini() {
	f.screen.Fini()
}

// Run processes screen events until the user quits or ctx is done.
func (f *Frontend) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = f.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	f.Draw()
	for {
		ev := f.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.HandleEvent(ev) {
			return nil
		}
		f.Draw()
	}
}

// SetStatus replaces the status line and asks the loop to redraw. It is
// safe to call from gesture callbacks on any goroutine.
func (f *Frontend) SetStatus(msg string) {
	f.mu.Lock()
	f.status = msg
	f.mu.Unlock()
	_ = f.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Status returns the status line.
func (f *Frontend) Status() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// HandleEvent dispatches one screen event. It returns true when the user
// asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if isQuit(e) {
			return true
		}
		f.handleKey(e)
	case *tcell.EventMouse:
		f.handleMouse(e)
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return false
}

func (f *Frontend) handleKey(e *tcell.EventKey) {
	k, ok := convertKey(e)
	if !ok {
		return
	}

	f.mu.Lock()
	target := f.focus
	f.mu.Unlock()
	if target == nil {
		nodes := f.tree.Nodes()
		if len(nodes) == 0 {
			return
		}
		target = nodes[0]
	}

	for _, step := range expand(k) {
		f.dispatch(target, input.NewKeyEvent(step))
	}
}

func (f *Frontend) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	pos := pointer.Position{X: float64(x), Y: float64(y)}
	down := e.Buttons()&tcell.Button1 != 0

	f.mu.Lock()
	pressed := f.pressed
	contact := f.contact
	switch {
	case down && !pressed:
		contact = f.tree.HitTest(pos.X, pos.Y)
		f.pressed = true
		f.contact = contact
		if contact != nil {
			f.focus = contact
		}
	case !down && pressed:
		f.pressed = false
		f.contact = nil
	}
	f.mu.Unlock()

	if contact == nil {
		return
	}
	device := deviceFor(contact)
	switch {
	case down && !pressed:
		f.dispatch(contact, input.NewContactEvent(input.EventContactStart, pos, device))
	case down && pressed:
		f.dispatch(contact, input.NewContactEvent(input.EventContactMove, pos, device))
	case !down && pressed:
		f.dispatch(contact, input.NewContactEvent(input.EventContactEnd, pos, device))
		if f.tree.HitTest(pos.X, pos.Y) == contact {
			f.dispatch(contact, input.NewClickEvent(pos))
		}
	}
}

func deviceFor(n *surface.Node) pointer.Device {
	if n.SupportsTouch() {
		return pointer.DeviceTouch
	}
	return pointer.DeviceMouse
}

// dispatch delivers ev to n and records it.
func (f *Frontend) dispatch(n *surface.Node, ev *input.Event) {
	if f.recorder != nil {
		if err := f.recorder.Observe(ev, n.ID()); err != nil {
			f.log.Warn("recording event failed", "error", err)
		}
	}
	n.Dispatch(ev)
}
