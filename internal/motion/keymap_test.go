package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vimotion/internal/input/key"
)

func TestKeymapResolve(t *testing.T) {
	km := NewKeymap()
	assert.Equal(t, 0, km.Len())

	c, ok := km.Resolve(key.MustParse("G"))
	require.True(t, ok)
	assert.Equal(t, ChordGotoLine, c)

	require.NoError(t, km.Bind("Ctrl+F", ChordPageDown))
	assert.Equal(t, 1, km.Len())
	c, ok = km.Resolve(key.MustParse("<C-f>"))
	require.True(t, ok)
	assert.Equal(t, ChordPageDown, c)

	_, ok = km.Resolve(key.MustParse("<C-b>"))
	assert.False(t, ok)
}

func TestKeymapBindErrors(t *testing.T) {
	km := NewKeymap()
	assert.Error(t, km.Bind("<C-f>", ChordNone))
	assert.ErrorIs(t, km.Bind("<Bogus-x>", ChordWordLeft), key.ErrInvalidSpec)
	assert.Error(t, km.BindNames("<C-f>", "dd"))
	assert.Equal(t, 0, km.Len())
}

func TestNilKeymapResolves(t *testing.T) {
	var km *Keymap
	c, ok := km.Resolve(key.MustParse("w"))
	require.True(t, ok)
	assert.Equal(t, ChordWordRight, c)
	assert.Equal(t, 0, km.Len())
}
