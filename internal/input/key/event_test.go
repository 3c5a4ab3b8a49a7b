package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventToken(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  string
	}{
		{"control", NewSpecialEvent(KeyCtrl, ModNone), "ctrl"},
		{"meta", NewSpecialEvent(KeyMeta, ModNone), "meta"},
		{"alt", NewSpecialEvent(KeyAlt, ModNone), "alt"},
		{"shift", NewSpecialEvent(KeyShift, ModNone), "shift"},
		{"tab", NewSpecialEvent(KeyTab, ModNone), "tab"},
		{"arrow up", NewSpecialEvent(KeyUp, ModNone), "up"},
		{"arrow right", NewSpecialEvent(KeyRight, ModNone), "right"},
		{"function key", NewSpecialEvent(KeyF12, ModNone), "f12"},
		{"page down", NewSpecialEvent(KeyPageDown, ModNone), "pagedown"},
		{"upper letter", NewRuneEvent('A', ModShift), "a"},
		{"digit", NewRuneEvent('4', ModNone), "4"},
		{"symbol", NewRuneEvent('@', ModNone), "@"},
		{"space rune", NewRuneEvent(' ', ModNone), "space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Token())
		})
	}
}

func TestFromName(t *testing.T) {
	ev, err := FromName("ArrowLeft")
	require.NoError(t, err)
	assert.Equal(t, KeyLeft, ev.Key)

	ev, err = FromName("Z")
	require.NoError(t, err)
	assert.Equal(t, KeyRune, ev.Key)
	assert.Equal(t, 'Z', ev.Rune)
	assert.Equal(t, "z", ev.Token())

	_, err = FromName("NotAKey")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestEventReleased(t *testing.T) {
	ev := NewRuneEvent('a', ModNone)
	assert.False(t, ev.IsRelease())

	up := ev.Released()
	assert.True(t, up.IsRelease())
	assert.False(t, ev.IsRelease(), "original must be unchanged")
	assert.Equal(t, ev.Token(), up.Token())
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "a", NewRuneEvent('a', ModNone).String())
	assert.Equal(t, "Ctrl+Alt+a", NewRuneEvent('a', ModCtrl|ModAlt).String())
	assert.Equal(t, "Enter", NewSpecialEvent(KeyEnter, ModNone).String())
}
