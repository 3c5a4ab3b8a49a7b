package trace

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dshills/gestures/internal/input"
	"github.com/dshills/gestures/internal/input/key"
	"github.com/dshills/gestures/internal/input/pointer"
	"github.com/dshills/gestures/internal/interaction"
	"github.com/dshills/gestures/internal/surface"
)

func TestWriterEncodes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Write(Record{Kind: input.EventContactStart, Element: "board", X: 10, Y: 4.5}))
	require.NoError(t, w.Write(Record{Kind: input.EventKeyDown, Key: "ctrl", Delay: 35 * time.Millisecond}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "contactstart", gjson.Get(lines[0], "kind").String())
	assert.Equal(t, "board", gjson.Get(lines[0], "element").String())
	assert.Equal(t, 4.5, gjson.Get(lines[0], "y").Float())
	assert.False(t, gjson.Get(lines[0], "key").Exists())

	assert.Equal(t, "ctrl", gjson.Get(lines[1], "key").String())
	assert.Equal(t, int64(35), gjson.Get(lines[1], "delay_ms").Int())
	assert.False(t, gjson.Get(lines[1], "element").Exists())
	assert.False(t, gjson.Get(lines[1], "x").Exists())
}

func TestWriterObserveTimesEvents(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return clock }

	require.NoError(t, w.Observe(input.NewClickEvent(pointer.Position{X: 1, Y: 2}), "board"))
	clock = clock.Add(120 * time.Millisecond)
	k, err := key.FromName("A")
	require.NoError(t, err)
	require.NoError(t, w.Observe(input.NewKeyEvent(k.Released()), "board"))

	records, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, Record{Kind: input.EventClick, Element: "board", X: 1, Y: 2}, records[0])
	assert.Equal(t, Record{Kind: input.EventKeyUp, Element: "board", Key: "a", Delay: 120 * time.Millisecond}, records[1])
}

func TestParse(t *testing.T) {
	src := `
# a comment
{"kind":"contactstart","element":"board","x":1,"y":2}
{"kind":"keydown","key":"ctrl","delay_ms":10}
`
	records, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, input.EventContactStart, records[0].Kind)
	assert.Equal(t, 10*time.Millisecond, records[1].Delay)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		is   error
	}{
		{"invalid json", `{"kind":`, 1, nil},
		{"not an object", `[1,2]`, 1, nil},
		{"unknown kind", "\n" + `{"kind":"hover"}`, 2, ErrUnknownKind},
		{"key without key", `{"kind":"keyup"}`, 1, ErrMissingKey},
		{"negative delay", `{"kind":"click","delay_ms":-5}`, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.line, perr.Line)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestRecordEvent(t *testing.T) {
	ev, err := Record{Kind: input.EventKeyUp, Key: "ArrowUp"}.Event()
	require.NoError(t, err)
	assert.Equal(t, input.EventKeyUp, ev.Kind)
	assert.Equal(t, "up", ev.Key.Token())

	_, err = Record{Kind: input.EventKeyDown, Key: "hyperspace"}.Event()
	assert.ErrorIs(t, err, key.ErrUnknownKey)

	_, err = Record{Kind: input.EventNone}.Event()
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestReplayRecognizesGestures(t *testing.T) {
	tree := surface.NewTree()
	board := tree.Add(surface.NewNode("board", surface.WithBounds(surface.Rect{X: 0, Y: 0, W: 100, H: 100})))

	sched := interaction.NewManualScheduler()
	engine, err := interaction.New(interaction.DefaultConfig(), interaction.WithScheduler(sched))
	require.NoError(t, err)

	var got []string
	require.NoError(t, engine.Register(interaction.Registration{
		Element: board, Type: interaction.NumberedClicks, Count: 2,
		ClickAction: func(interaction.Element) { got = append(got, "double") },
	}))
	require.NoError(t, engine.Register(interaction.Registration{
		Element: board, Type: interaction.SwipeDown,
		EndAction: func(interaction.Element) { got = append(got, "down") },
	}))
	require.NoError(t, engine.Register(interaction.Registration{
		Element: board, Type: interaction.Keystroke, Keys: []string{"ctrl", "s"},
		KeysAction: func(interaction.Element) { got = append(got, "save") },
	}))
	require.NoError(t, engine.Load())

	src := `
{"kind":"click","x":5,"y":5}
{"kind":"click","x":5,"y":5,"delay_ms":100}
{"kind":"contactstart","x":10,"y":10,"delay_ms":600}
{"kind":"contactmove","x":10,"y":70,"delay_ms":20}
{"kind":"contactend","x":10,"y":70,"delay_ms":20}
{"kind":"keydown","element":"board","key":"ctrl","delay_ms":10}
{"kind":"keydown","element":"board","key":"s","delay_ms":10}
{"kind":"keyup","element":"board","key":"s","delay_ms":10}
{"kind":"click","x":500,"y":500}
`
	records, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	advance := func(_ context.Context, d time.Duration) error {
		sched.Advance(d)
		return nil
	}
	n, err := Replay(context.Background(), records, tree, advance)
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Equal(t, []string{"double", "down", "save"}, got)
}

func TestReplayUnknownElement(t *testing.T) {
	tree := surface.NewTree()
	records := []Record{{Kind: input.EventClick, Element: "ghost"}}
	_, err := Replay(context.Background(), records, tree, nil)
	assert.ErrorIs(t, err, ErrUnknownElement)
}

func TestReplayHonoursContext(t *testing.T) {
	tree := surface.NewTree()
	tree.Add(surface.NewNode("board", surface.WithBounds(surface.Rect{W: 10, H: 10})))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records := []Record{{Kind: input.EventClick, X: 1, Y: 1, Delay: time.Hour}}
	n, err := Replay(ctx, records, tree, nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, n)
}

func TestSleep(t *testing.T) {
	require.NoError(t, Sleep(context.Background(), time.Millisecond))
	require.NoError(t, Sleep(context.Background(), 0))
}
