package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierHas(t *testing.T) {
	m := ModCtrl.With(ModShift)

	assert.True(t, m.HasCtrl())
	assert.True(t, m.HasShift())
	assert.False(t, m.HasAlt())
	assert.False(t, m.HasMeta())
	assert.False(t, m.IsEmpty())
	assert.True(t, ModNone.IsEmpty())
}

func TestModifierKeysOrder(t *testing.T) {
	m := ModMeta | ModShift | ModAlt | ModCtrl

	assert.Equal(t, []Key{KeyCtrl, KeyAlt, KeyShift, KeyMeta}, m.Keys())
	assert.Equal(t, "Ctrl+Alt+Shift+Meta", m.String())
	assert.Empty(t, ModNone.Keys())
	assert.Equal(t, "", ModNone.String())
}
