package interaction

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.log = l
	}
}

// WithScheduler sets the scheduler used for click debouncing.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.sched = s
		}
	}
}

// WithMetrics sets the metrics collectors.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// Engine collects gesture registrations and, once loaded, recognizes them.
type Engine struct {
	cfg     Config
	log     *slog.Logger
	sched   Scheduler
	metrics *Metrics

	mu         sync.Mutex
	store      *Store
	categories *Categories
	loaded     bool

	swipes map[Element]*swipeRecognizer
	clicks map[Element]*clickRecognizer
	chords map[Element]*chordRecognizer
}

// New creates an engine with the given configuration.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		sched:  SystemScheduler{},
		store:  NewStore(cfg.ClickWindow),
		swipes: make(map[Element]*swipeRecognizer),
		clicks: make(map[Element]*clickRecognizer),
		chords: make(map[Element]*chordRecognizer),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Register validates r and merges it into the store. Invalid registrations
// return a *ValidationError and change nothing.
//
// Registrations made after Load are stored but no listener is attached for
// them.
func (e *Engine) Register(r Registration) error {
	e.mu.Lock()
	err := e.store.Add(r)
	loaded := e.loaded
	e.mu.Unlock()

	e.metrics.registration(r.Type, err)
	if err != nil {
		e.log.Warn("registration rejected", "gesture", string(r.Type), "error", err)
		return err
	}

	e.log.Debug("registered", "gesture", string(r.Type), "element", elementName(r.Element))
	if loaded {
		e.log.Warn("registration after load is not attached",
			"gesture", string(r.Type), "element", elementName(r.Element))
	}
	return nil
}

// Load categorizes the stored registrations and attaches one set of
// listeners per (element, family). It may be called once.
func (e *Engine) Load() error {
	e.mu.Lock()
	if e.loaded {
		e.mu.Unlock()
		return ErrAlreadyLoaded
	}
	e.loaded = true
	e.categories = Categorize(e.store.Entries())

	obs := observer{log: e.log, metrics: e.metrics}
	var attach []func()
	for _, g := range e.categories.Groups() {
		switch g.Family {
		case FamilySwipe:
			r := newSwipeRecognizer(g, e.cfg.SwipeOffset, obs)
			e.swipes[g.Element] = r
			attach = append(attach, r.attach)
		case FamilyClick:
			entry := g.Entry(NumberedClicks)
			if entry == nil {
				continue
			}
			r := newClickRecognizer(entry, e.sched, obs)
			e.clicks[g.Element] = r
			attach = append(attach, func() {
				kind := r.attach()
				e.log.Debug("click listener attached", "element", elementName(r.element), "event", kind.String())
			})
		case FamilyKeystroke:
			r := newChordRecognizer(g, obs)
			e.chords[g.Element] = r
			attach = append(attach, r.attach)
		}
	}
	groups := e.categories.Len()
	e.mu.Unlock()

	// Elements may dispatch synchronously from AddListener, so attach
	// without holding the engine lock.
	for _, fn := range attach {
		fn()
	}
	e.log.Info("interactions loaded", "groups", groups)
	return nil
}

// Stop drops every unresolved click burst so its callback never runs. A
// callback that has already started is not interrupted. Input dispatched
// after Stop is recognized as usual. It returns the number of bursts
// dropped.
func (e *Engine) Stop() int {
	e.mu.Lock()
	clicks := make([]*clickRecognizer, 0, len(e.clicks))
	for _, r := range e.clicks {
		clicks = append(clicks, r)
	}
	e.mu.Unlock()

	dropped := 0
	for _, r := range clicks {
		if r.stop() {
			dropped++
		}
	}
	if dropped > 0 {
		e.log.Debug("pending click bursts dropped", "count", dropped)
	}
	return dropped
}

// Loaded reports whether Load has run.
func (e *Engine) Loaded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loaded
}

// Lookup returns the merged entry for (el, gt).
func (e *Engine) Lookup(el Element, gt GestureType) (*Entry, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Lookup(el, gt)
}

// Entries returns every merged entry in first-registration order.
func (e *Engine) Entries() []*Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.Entries()
}

// Categories returns the grouping built by Load, or a fresh one from the
// current store before Load.
func (e *Engine) Categories() *Categories {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.categories != nil {
		return e.categories
	}
	return Categorize(e.store.Entries())
}

// ActivationCount returns the pending click count for el.
func (e *Engine) ActivationCount(el Element) int {
	e.mu.Lock()
	r := e.lookupClicks(el)
	e.mu.Unlock()
	if r == nil {
		return 0
	}
	return r.activations()
}

// HeldKeys returns the keys currently held on el in press order.
func (e *Engine) HeldKeys(el Element) []string {
	e.mu.Lock()
	r := e.lookupChords(el)
	e.mu.Unlock()
	if r == nil {
		return nil
	}
	return r.heldKeys()
}

// String implements fmt.Stringer.
func (e *Engine) String() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fmt.Sprintf("Engine{entries: %d, loaded: %t}", e.store.Len(), e.loaded)
}

func (e *Engine) lookupClicks(el Element) *clickRecognizer {
	if isNilElement(el) || !isComparable(el) {
		return nil
	}
	return e.clicks[el]
}

func (e *Engine) lookupChords(el Element) *chordRecognizer {
	if isNilElement(el) || !isComparable(el) {
		return nil
	}
	return e.chords[el]
}
