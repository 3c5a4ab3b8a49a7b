package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gestures/internal/input/key"
	"github.com/dshills/gestures/internal/interaction"
	"github.com/dshills/gestures/internal/logging"
)

// DefaultTimeout bounds a single script run or gesture callback.
const DefaultTimeout = 5 * time.Second

// Resolver finds the element registered under id.
type Resolver func(id string) (interaction.Element, bool)

// Runtime runs gesture scripts against a Registrar.
type Runtime struct {
	L *lua.LState

	mu sync.Mutex

	engine  interaction.Registrar
	resolve Resolver
	log     *slog.Logger
	timeout time.Duration

	registered int
	closed     bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger sets the logger used for script output and callback errors.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runtime) {
		r.log = l
	}
}

// WithTimeout sets the deadline for each script run and each callback.
// Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *Runtime) {
		r.timeout = d
	}
}

// New creates a runtime whose scripts register gestures with engine.
// resolve maps the element ids used by scripts to elements.
func New(engine interaction.Registrar, resolve Resolver, opts ...Option) *Runtime {
	r := &Runtime{
		engine:  engine,
		resolve: resolve,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = logging.Component(r.log, "script")

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	r.L = L
	r.install()
	return r
}

// openSafeLibraries opens only the libraries scripts need.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// install creates the gestures table and routes print to the logger.
func (r *Runtime) install() {
	L := r.L
	mod := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"register": r.luaRegister,
	})
	types := L.NewTable()
	for _, gt := range interaction.GestureTypes {
		types.Append(lua.LString(gt))
	}
	L.SetField(mod, "types", types)
	L.SetGlobal("gestures", mod)

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		args := make([]string, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			args = append(args, L.Get(i).String())
		}
		r.log.Info(strings.Join(args, "\t"))
		return 0
	}))
}

// DoString runs a Lua chunk.
func (r *Runtime) DoString(code string) error {
	return r.run(func() error { return r.L.DoString(code) })
}

// DoFile runs a Lua file.
func (r *Runtime) DoFile(path string) error {
	return r.run(func() error { return r.L.DoFile(path) })
}

// Registered returns how many registrations scripts have made.
func (r *Runtime) Registered() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registered
}

// Close releases the Lua state. Callbacks that fire afterwards are dropped.
func (r *Runtime) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}

func (r *Runtime) run(fn func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	return r.guard(fn)
}

// guard runs fn under the runtime deadline and converts Go panics raised
// inside Lua into errors. The caller holds r.mu.
func (r *Runtime) guard(fn func() error) (err error) {
	if r.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		r.L.SetContext(ctx)
		defer r.L.RemoveContext()
		defer func() {
			if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				err = fmt.Errorf("%w: %v", ErrTimeout, err)
			}
		}()
	}

	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("lua panic: %v", p)
		}
	}()
	return fn()
}

// luaRegister implements gestures.register{...}. It runs inside a script,
// so the runtime lock is already held.
func (r *Runtime) luaRegister(L *lua.LState) int {
	tbl := L.CheckTable(1)

	id := lua.LVAsString(tbl.RawGetString("element"))
	el, ok := r.resolve(id)
	if !ok {
		L.ArgError(1, fmt.Sprintf("unknown element %q", id))
		return 0
	}
	gt, err := interaction.ParseGestureType(lua.LVAsString(tbl.RawGetString("type")))
	if err != nil {
		L.ArgError(1, err.Error())
		return 0
	}

	reg := interaction.Registration{Element: el, Type: gt}
	switch gt.Family() {
	case interaction.FamilySwipe:
		reg.StartAction = r.callback(tbl.RawGetString("start"), id)
		reg.EndAction = r.callback(tbl.RawGetString("finish"), id)
	case interaction.FamilyClick:
		n := float64(lua.LVAsNumber(tbl.RawGetString("count")))
		if n != math.Trunc(n) {
			L.ArgError(1, fmt.Sprintf("count must be an integer, got %v", n))
			return 0
		}
		reg.Count = int(n)
		reg.ClickAction = r.callback(tbl.RawGetString("action"), id)
	case interaction.FamilyKeystroke:
		keys, err := keyList(tbl.RawGetString("keys"))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		reg.Keys = keys
		reg.KeysAction = r.callback(tbl.RawGetString("action"), id)
	}

	if err := r.engine.Register(reg); err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	r.registered++
	return 0
}

// keyList reads keys given as a table of names or as a chord string.
func keyList(v lua.LValue) ([]string, error) {
	switch v := v.(type) {
	case lua.LString:
		return key.ParseChord(string(v))
	case *lua.LTable:
		// Only the array part has an order.
		n := v.Len()
		keys := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			keys = append(keys, lua.LVAsString(v.RawGetInt(i)))
		}
		return keys, nil
	default:
		return nil, nil
	}
}

// callback wraps a Lua function as an engine action. Non-functions yield
// nil, which the engine treats as "no callback".
func (r *Runtime) callback(v lua.LValue, id string) interaction.Action {
	fn, ok := v.(*lua.LFunction)
	if !ok {
		return nil
	}
	return func(interaction.Element) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.closed {
			return
		}
		err := r.guard(func() error {
			return r.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, lua.LString(id))
		})
		if err != nil {
			r.log.Error("gesture callback failed", "element", id, "error", err)
		}
	}
}
