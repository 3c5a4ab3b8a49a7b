package app

import (
	"io"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dshills/gestures/internal/config"
	"github.com/dshills/gestures/internal/interaction"
	"github.com/dshills/gestures/internal/logging"
	"github.com/dshills/gestures/internal/script"
	"github.com/dshills/gestures/internal/surface"
)

// Options configures an Application.
type Options struct {
	// ConfigPath is a TOML or YAML settings file. Empty uses defaults.
	ConfigPath string

	// ScriptPath is a Lua file run before interactions are loaded.
	ScriptPath string

	// Scheduler drives click debouncing. Defaults to the wall clock.
	Scheduler interaction.Scheduler

	// Registry receives the engine metrics. Nil leaves them unregistered.
	Registry prometheus.Registerer

	// LogOutput overrides where logs are written.
	LogOutput io.Writer

	// Environ overrides the process environment for configuration.
	Environ map[string]string
}

// Gesture describes a recognized binding.
type Gesture struct {
	Element string
	Binding config.Binding
}

// Application is a loaded gesture session.
type Application struct {
	Settings *config.Settings
	Log      *slog.Logger
	Metrics  *interaction.Metrics
	Engine   *interaction.Engine
	Tree     *surface.Tree
	Script   *script.Runtime

	mu        sync.Mutex
	onGesture func(Gesture)
	closed    bool
}

// New loads settings, builds the surface tree, registers every binding and
// script gesture and loads the engine.
func New(opts Options) (*Application, error) {
	a := &Application{}
	b := newBootstrapper(a, opts)
	if err := b.bootstrap(); err != nil {
		return nil, err
	}
	return a, nil
}

// OnGesture sets the handler called for every recognized binding. It may
// be called on timer goroutines.
func (a *Application) OnGesture(fn func(Gesture)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onGesture = fn
}

// Resolve finds the element with the given id.
func (a *Application) Resolve(id string) (interaction.Element, bool) {
	n, ok := a.Tree.Get(id)
	if !ok {
		return nil, false
	}
	return n, true
}

// Close drops unresolved click bursts and releases the script runtime.
func (a *Application) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return ErrClosed
	}
	a.closed = true
	if a.Engine != nil {
		a.Engine.Stop()
	}
	if a.Script != nil {
		a.Script.Close()
	}
	return nil
}

// notify reports a recognized binding.
func (a *Application) notify(b config.Binding, el interaction.Element) {
	id := b.Element
	if n, ok := el.(*surface.Node); ok {
		id = n.ID()
	}
	a.Log.Info("gesture", "element", id, "gesture", b.Gesture, "message", b.Message)

	a.mu.Lock()
	fn := a.onGesture
	a.mu.Unlock()
	if fn != nil {
		fn(Gesture{Element: id, Binding: b})
	}
}

// bootstrapper initializes components in dependency order.
type bootstrapper struct {
	app  *Application
	opts Options
}

func newBootstrapper(a *Application, opts Options) *bootstrapper {
	return &bootstrapper{app: a, opts: opts}
}

func (b *bootstrapper) bootstrap() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"config", b.initConfig},
		{"logging", b.initLogging},
		{"engine", b.initEngine},
		{"surface", b.initSurface},
		{"bindings", b.initBindings},
		{"script", b.initScript},
		{"load", b.initLoad},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			b.cleanup()
			return &InitError{Component: s.name, Err: err}
		}
	}
	b.app.Log.Debug("application ready", "elements", b.app.Tree.Len(), "bindings", len(b.app.Settings.Bindings))
	return nil
}

func (b *bootstrapper) initConfig() error {
	var (
		s   *config.Settings
		err error
	)
	if b.opts.Environ != nil {
		s, err = config.LoadWithEnv(b.opts.ConfigPath, b.opts.Environ)
	} else {
		s, err = config.Load(b.opts.ConfigPath)
	}
	if err != nil {
		return err
	}
	if len(s.Elements) == 0 {
		s.Elements = DefaultElements()
		if len(s.Bindings) == 0 {
			s.Bindings = DefaultBindings()
		}
	}
	b.app.Settings = s
	return s.Validate()
}

func (b *bootstrapper) initLogging() error {
	opts := b.app.Settings.Logging()
	opts.Output = b.opts.LogOutput
	log, err := logging.New(opts)
	if err != nil {
		return err
	}
	b.app.Log = log
	return nil
}

func (b *bootstrapper) initEngine() error {
	b.app.Metrics = interaction.NewMetrics(b.opts.Registry)
	opts := []interaction.Option{
		interaction.WithLogger(logging.Component(b.app.Log, "engine")),
		interaction.WithMetrics(b.app.Metrics),
	}
	if b.opts.Scheduler != nil {
		opts = append(opts, interaction.WithScheduler(b.opts.Scheduler))
	}
	engine, err := interaction.New(b.app.Settings.Engine(), opts...)
	if err != nil {
		return err
	}
	b.app.Engine = engine
	return nil
}

func (b *bootstrapper) initSurface() error {
	tree := surface.NewTree()
	for _, e := range b.app.Settings.Elements {
		label := e.Label
		if label == "" {
			label = e.ID
		}
		tree.Add(surface.NewNode(e.ID,
			surface.WithLabel(label),
			surface.WithBounds(surface.Rect{X: float64(e.X), Y: float64(e.Y), W: float64(e.W), H: float64(e.H)}),
			surface.WithTouch(e.Touch),
		))
	}
	b.app.Tree = tree
	return nil
}

func (b *bootstrapper) initBindings() error {
	return b.app.Settings.Bind(b.app.Engine, b.app.Resolve, b.app.notify)
}

func (b *bootstrapper) initScript() error {
	if b.opts.ScriptPath == "" {
		return nil
	}
	rt := script.New(b.app.Engine, b.app.Resolve, script.WithLogger(b.app.Log))
	b.app.Script = rt
	if err := rt.DoFile(b.opts.ScriptPath); err != nil {
		return err
	}
	b.app.Log.Debug("script loaded", "path", b.opts.ScriptPath, "registered", rt.Registered())
	return nil
}

func (b *bootstrapper) initLoad() error {
	return b.app.Engine.Load()
}

// cleanup releases whatever was initialized before a failure.
func (b *bootstrapper) cleanup() {
	if b.app.Script != nil {
		b.app.Script.Close()
		b.app.Script = nil
	}
}
