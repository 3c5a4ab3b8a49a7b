package script

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gestures/internal/input"
	"github.com/dshills/gestures/internal/input/key"
	"github.com/dshills/gestures/internal/input/pointer"
	"github.com/dshills/gestures/internal/interaction"
	"github.com/dshills/gestures/internal/surface"
)

type fixture struct {
	engine *interaction.Engine
	sched  *interaction.ManualScheduler
	board  *surface.Node
	rt     *Runtime
	logs   *bytes.Buffer
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	sched := interaction.NewManualScheduler()
	engine, err := interaction.New(interaction.DefaultConfig(), interaction.WithScheduler(sched))
	require.NoError(t, err)

	board := surface.NewNode("board")
	resolve := func(id string) (interaction.Element, bool) {
		if id == board.ID() {
			return board, true
		}
		return nil, false
	}

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	opts = append([]Option{WithLogger(log)}, opts...)
	rt := New(engine, resolve, opts...)
	t.Cleanup(rt.Close)

	return &fixture{engine: engine, sched: sched, board: board, rt: rt, logs: &logs}
}

func (f *fixture) global(name string) string {
	f.rt.mu.Lock()
	defer f.rt.mu.Unlock()
	return f.rt.L.GetGlobal(name).String()
}

func TestRegisterClicks(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.rt.DoString(`
		hits = ""
		gestures.register{
			element = "board",
			type = "numbered-clicks",
			count = 2,
			action = function(id) hits = hits .. id end,
		}
	`))
	assert.Equal(t, 1, f.rt.Registered())
	require.NoError(t, f.engine.Load())

	f.board.Dispatch(input.NewClickEvent(pointer.Position{}))
	f.board.Dispatch(input.NewClickEvent(pointer.Position{}))
	f.sched.Advance(interaction.DefaultClickWindow)

	assert.Equal(t, "board", f.global("hits"))
}

func TestRegisterSwipe(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.rt.DoString(`
		log = {}
		gestures.register{
			element = "board",
			type = "swipe-right",
			start = function(id) table.insert(log, "start") end,
			finish = function(id) table.insert(log, "end") end,
		}
		function joined() return table.concat(log, ",") end
	`))
	require.NoError(t, f.engine.Load())

	f.board.Dispatch(input.NewContactEvent(input.EventContactStart, pointer.Position{X: 0, Y: 0}, pointer.DeviceMouse))
	f.board.Dispatch(input.NewContactEvent(input.EventContactMove, pointer.Position{X: 60, Y: 0}, pointer.DeviceMouse))
	f.board.Dispatch(input.NewContactEvent(input.EventContactEnd, pointer.Position{X: 60, Y: 0}, pointer.DeviceMouse))

	require.NoError(t, f.rt.DoString(`result = joined()`))
	assert.Equal(t, "start,end", f.global("result"))
}

func TestRegisterKeystroke(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.rt.DoString(`
		n = 0
		gestures.register{element = "board", type = "keystroke", keys = {"Control", "a"}, action = function() n = n + 1 end}
		gestures.register{element = "board", type = "keystroke", keys = "ctrl+b", action = function() n = n + 10 end}
	`))
	require.NoError(t, f.engine.Load())

	entry, ok := f.engine.Lookup(f.board, interaction.Keystroke)
	require.True(t, ok)
	require.Len(t, entry.Chords, 2)
	assert.Equal(t, key.Chord{"ctrl", "a"}, entry.Chords[0].Keys)

	ctrl, _ := key.FromName("ctrl")
	b, _ := key.FromName("b")
	f.board.Dispatch(input.NewKeyEvent(ctrl))
	f.board.Dispatch(input.NewKeyEvent(b))
	assert.Equal(t, "10", f.global("n"))
}

func TestRegisterErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"unknown element", `gestures.register{element = "ghost", type = "swipe-up", start = function() end}`, "unknown element"},
		{"unknown type", `gestures.register{element = "board", type = "pinch"}`, "unknown gesture type"},
		{"missing count", `gestures.register{element = "board", type = "numbered-clicks", action = function() end}`, "Count"},
		{"swipe without callbacks", `gestures.register{element = "board", type = "swipe-up"}`, "swipe needs"},
		{"bad chord", `gestures.register{element = "board", type = "keystroke", keys = "", action = function() end}`, "empty chord"},
		{"not a table", `gestures.register("board")`, "table expected"},
		{"fractional count", `gestures.register{element = "board", type = "numbered-clicks", count = 2.5, action = function() end}`, "count must be an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.rt.DoString(tt.code)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Zero(t, f.rt.Registered())
			assert.Empty(t, f.engine.Entries())
		})
	}
}

func TestGestureTypesTable(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.rt.DoString(`count = #gestures.types`))
	assert.Equal(t, "6", f.global("count"))
}

func TestPrintGoesToLogger(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.rt.DoString(`print("hello", "lua")`))
	assert.Contains(t, f.logs.String(), "component=script")
	assert.Contains(t, f.logs.String(), "hello")
}

func TestUnsafeLibrariesAreClosed(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.rt.DoString(`has_os = os ~= nil; has_io = io ~= nil`))
	assert.Equal(t, "false", f.global("has_os"))
	assert.Equal(t, "false", f.global("has_io"))
}

func TestCallbackErrorIsLogged(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.rt.DoString(`
		gestures.register{element = "board", type = "numbered-clicks", count = 1, action = function() error("boom") end}
	`))
	require.NoError(t, f.engine.Load())

	f.board.Dispatch(input.NewClickEvent(pointer.Position{}))
	f.sched.Advance(interaction.DefaultClickWindow)
	assert.Contains(t, f.logs.String(), "gesture callback failed")
	assert.Contains(t, f.logs.String(), "boom")
}

func TestTimeout(t *testing.T) {
	f := newFixture(t, WithTimeout(50*time.Millisecond))
	err := f.rt.DoString(`while true do end`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCallbackTimeout(t *testing.T) {
	f := newFixture(t, WithTimeout(50*time.Millisecond))
	require.NoError(t, f.rt.DoString(`
		gestures.register{element = "board", type = "numbered-clicks", count = 1, action = function() while true do end end}
	`))
	require.NoError(t, f.engine.Load())
	f.board.Dispatch(input.NewClickEvent(pointer.Position{}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.sched.Advance(interaction.DefaultClickWindow)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not return after its deadline")
	}

	assert.Contains(t, f.logs.String(), "gesture callback failed")
	assert.Contains(t, f.logs.String(), ErrTimeout.Error())

	// The runtime stays usable after a timed-out callback.
	require.NoError(t, f.rt.DoString(`x = 1`))
	assert.Equal(t, "1", f.global("x"))
}

func TestKeysTableIgnoresHashPart(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.rt.DoString(`
		gestures.register{element = "board", type = "keystroke", keys = {"ctrl", "alt", x = "a"}, action = function() end}
	`))

	entry, ok := f.engine.Lookup(f.board, interaction.Keystroke)
	require.True(t, ok)
	require.Len(t, entry.Chords, 1)
	assert.Equal(t, key.Chord{"ctrl", "alt"}, entry.Chords[0].Keys)
}

func TestDoFile(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "gestures.lua")
	require.NoError(t, os.WriteFile(path, []byte(`gestures.register{element = "board", type = "swipe-down", finish = function() end}`), 0o644))

	require.NoError(t, f.rt.DoFile(path))
	_, ok := f.engine.Lookup(f.board, interaction.SwipeDown)
	assert.True(t, ok)
}

func TestClosed(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.rt.DoString(`
		n = 0
		gestures.register{element = "board", type = "numbered-clicks", count = 1, action = function() n = n + 1 end}
	`))
	require.NoError(t, f.engine.Load())
	f.rt.Close()
	f.rt.Close()

	assert.ErrorIs(t, f.rt.DoString(`x = 1`), ErrClosed)

	// A callback after Close is dropped rather than touching the closed state.
	f.board.Dispatch(input.NewClickEvent(pointer.Position{}))
	assert.NotPanics(t, func() { f.sched.Advance(interaction.DefaultClickWindow) })
}
