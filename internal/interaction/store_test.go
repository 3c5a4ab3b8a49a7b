package interaction

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gestures/internal/input"
	"github.com/dshills/gestures/internal/input/key"
)

// fakeElement is a minimal comparable element.
type fakeElement struct {
	id    string
	touch bool
}

func (f *fakeElement) AddListener(input.EventKind, input.Listener) {}
func (f *fakeElement) ID() string                                   { return f.id }
func (f *fakeElement) SupportsTouch() bool                          { return f.touch }

// sliceElement has a non-comparable dynamic type.
type sliceElement []int

func (sliceElement) AddListener(input.EventKind, input.Listener) {}

func noop(Element) {}

func TestStoreMergesInCallOrder(t *testing.T) {
	s := NewStore(time.Second)
	el := &fakeElement{id: "a"}

	var calls []int
	for i := 0; i < 3; i++ {
		n := i
		require.NoError(t, s.Add(Registration{
			Element:     el,
			Type:        NumberedClicks,
			Count:       n + 1,
			ClickAction: func(Element) { calls = append(calls, n) },
		}))
	}

	require.Equal(t, 1, s.Len())
	e, ok := s.Lookup(el, NumberedClicks)
	require.True(t, ok)
	require.Len(t, e.Clicks, 3)
	for i, c := range e.Clicks {
		assert.Equal(t, i+1, c.Count)
		c.Action(el)
	}
	assert.Equal(t, []int{0, 1, 2}, calls)
	assert.Equal(t, time.Second, e.Window)
}

func TestStoreSwipeKeepsNilSlots(t *testing.T) {
	s := NewStore(time.Second)
	el := &fakeElement{id: "a"}

	require.NoError(t, s.Add(Registration{Element: el, Type: SwipeUp, StartAction: noop}))
	require.NoError(t, s.Add(Registration{Element: el, Type: SwipeUp, EndAction: noop}))

	e, ok := s.Lookup(el, SwipeUp)
	require.True(t, ok)
	require.Len(t, e.StartActions, 2)
	require.Len(t, e.EndActions, 2)
	assert.NotNil(t, e.StartActions[0])
	assert.Nil(t, e.StartActions[1])
	assert.Nil(t, e.EndActions[0])
	assert.NotNil(t, e.EndActions[1])
	assert.Zero(t, e.Window)
}

func TestStoreSeparatesPairs(t *testing.T) {
	s := NewStore(time.Second)
	a := &fakeElement{id: "a"}
	b := &fakeElement{id: "b"}

	require.NoError(t, s.Add(Registration{Element: a, Type: SwipeUp, StartAction: noop}))
	require.NoError(t, s.Add(Registration{Element: a, Type: SwipeDown, StartAction: noop}))
	require.NoError(t, s.Add(Registration{Element: b, Type: SwipeUp, StartAction: noop}))
	require.NoError(t, s.Add(Registration{Element: a, Type: SwipeUp, StartAction: noop}))

	entries := s.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, SwipeUp, entries[0].Type)
	assert.Same(t, a, entries[0].Element)
	assert.Len(t, entries[0].StartActions, 2)
	assert.Equal(t, SwipeDown, entries[1].Type)
	assert.Same(t, b, entries[2].Element)
}

func TestStoreCanonicalizesChords(t *testing.T) {
	s := NewStore(time.Second)
	el := &fakeElement{id: "a"}

	require.NoError(t, s.Add(Registration{
		Element:    el,
		Type:       Keystroke,
		Keys:       []string{"Control", "ArrowUp", "A"},
		KeysAction: noop,
	}))

	e, ok := s.Lookup(el, Keystroke)
	require.True(t, ok)
	require.Len(t, e.Chords, 1)
	assert.Equal(t, key.Chord{"ctrl", "up", "a"}, e.Chords[0].Keys)
}

func TestStoreValidation(t *testing.T) {
	el := &fakeElement{id: "a"}
	var typedNil *fakeElement

	tests := []struct {
		name  string
		reg   Registration
		field string
	}{
		{"nil element", Registration{Type: SwipeUp, StartAction: noop}, "Element"},
		{"typed nil element", Registration{Element: typedNil, Type: SwipeUp, StartAction: noop}, "Element"},
		{"non-comparable element", Registration{Element: sliceElement{1}, Type: SwipeUp, StartAction: noop}, "Element"},
		{"missing type", Registration{Element: el}, "Type"},
		{"unknown type", Registration{Element: el, Type: "pinch"}, "Type"},
		{"swipe without actions", Registration{Element: el, Type: SwipeLeft}, "StartAction"},
		{"zero count", Registration{Element: el, Type: NumberedClicks, ClickAction: noop}, "Count"},
		{"negative count", Registration{Element: el, Type: NumberedClicks, Count: -2, ClickAction: noop}, "Count"},
		{"missing click action", Registration{Element: el, Type: NumberedClicks, Count: 2}, "ClickAction"},
		{"missing keys action", Registration{Element: el, Type: Keystroke, Keys: []string{"a"}}, "KeysAction"},
		{"empty keys", Registration{Element: el, Type: Keystroke, KeysAction: noop}, "Keys"},
		{"bad key name", Registration{Element: el, Type: Keystroke, Keys: []string{"ctrl", "nope"}, KeysAction: noop}, "Keys"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore(time.Second)
			err := s.Add(tt.reg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Zero(t, s.Len())
		})
	}
}

func TestStoreUnknownTypeWrapsSentinel(t *testing.T) {
	s := NewStore(time.Second)
	err := s.Add(Registration{Element: &fakeElement{}, Type: "pinch"})
	assert.ErrorIs(t, err, ErrUnknownGesture)
}

func TestCategorize(t *testing.T) {
	s := NewStore(time.Second)
	a := &fakeElement{id: "a"}
	b := &fakeElement{id: "b"}

	require.NoError(t, s.Add(Registration{Element: a, Type: SwipeUp, StartAction: noop}))
	require.NoError(t, s.Add(Registration{Element: a, Type: NumberedClicks, Count: 2, ClickAction: noop}))
	require.NoError(t, s.Add(Registration{Element: a, Type: SwipeLeft, EndAction: noop}))
	require.NoError(t, s.Add(Registration{Element: b, Type: Keystroke, Keys: []string{"a"}, KeysAction: noop}))

	entries := s.Entries()
	c := Categorize(entries)
	require.Equal(t, 3, c.Len())

	groups := c.Groups()
	assert.Equal(t, FamilySwipe, groups[0].Family)
	assert.Equal(t, FamilyClick, groups[1].Family)
	assert.Equal(t, FamilyKeystroke, groups[2].Family)

	swipes, ok := c.Group(a, FamilySwipe)
	require.True(t, ok)
	require.Len(t, swipes.Entries, 2)
	assert.Equal(t, SwipeUp, swipes.Entries[0].Type)
	assert.Equal(t, SwipeLeft, swipes.Entries[1].Type)
	assert.NotNil(t, swipes.Entry(SwipeLeft))
	assert.Nil(t, swipes.Entry(SwipeDown))

	_, ok = c.Group(b, FamilySwipe)
	assert.False(t, ok)
	_, ok = c.Group(nil, FamilySwipe)
	assert.False(t, ok)

	// Pure: the input is untouched and a second pass agrees.
	assert.Equal(t, entries, s.Entries())
	assert.Equal(t, c.Len(), Categorize(entries).Len())
}

func TestGestureTypes(t *testing.T) {
	for _, gt := range GestureTypes {
		got, err := ParseGestureType(string(gt))
		require.NoError(t, err)
		assert.Equal(t, gt, got)
	}

	_, err := ParseGestureType("double-tap")
	assert.ErrorIs(t, err, ErrUnknownGesture)

	assert.Equal(t, input.DirDown, SwipeDown.Direction())
	assert.Equal(t, input.DirNone, Keystroke.Direction())
	assert.Equal(t, "click", NumberedClicks.Family().String())
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	err := Config{SwipeOffset: 0, ClickWindow: time.Second}.Validate()
	assert.ErrorIs(t, err, ErrInvalidConfig)

	err = Config{SwipeOffset: 10}.Validate()
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "ClickWindow", cerr.Field)
}
