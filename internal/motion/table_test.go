package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIsComplete(t *testing.T) {
	noSelect := map[Chord]bool{
		ChordDeleteLeft: true,
		ChordOpenBelow:  true,
		ChordOpenAbove:  true,
	}
	needsParam := map[Chord]bool{
		ChordFind: true,
		ChordTill: true,
		ChordG:    true,
	}
	rawCount := map[Chord]bool{
		ChordGotoLine: true,
		ChordG:        true,
	}

	require.Len(t, Chords(), 18)
	for _, c := range Chords() {
		t.Run(c.String(), func(t *testing.T) {
			d, ok := Lookup(c)
			require.True(t, ok)
			assert.Equal(t, c, d.Chord)
			assert.NotNil(t, d.Navigate)
			assert.Equal(t, !noSelect[c], d.HasSelect())
			assert.Equal(t, needsParam[c], d.NeedsParameter)
			assert.Equal(t, rawCount[c], d.RawCount)

			parsed, ok := ParseChord(c.String())
			require.True(t, ok)
			assert.Equal(t, c, parsed)
		})
	}
}

func TestLookupInvalid(t *testing.T) {
	_, ok := Lookup(ChordNone)
	assert.False(t, ok)
	_, ok = Lookup(Chord(200))
	assert.False(t, ok)

	_, ok = ParseChord("x")
	assert.False(t, ok)
	_, ok = ParseChord("")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Chord(200).String())
}

func TestDescriptorBehaviorFallback(t *testing.T) {
	d, _ := Lookup(ChordOpenBelow)
	assert.NotNil(t, d.Behavior(ModeSelect), "select falls back to navigate")

	d, _ = Lookup(ChordWordRight)
	assert.NotNil(t, d.Behavior(ModeSelect))
	assert.NotNil(t, d.Behavior(ModeNavigate))
}

func TestLineStart(t *testing.T) {
	assert.Equal(t, Position{Row: 0}, lineStart(0))
	assert.Equal(t, Position{Row: 0}, lineStart(1))
	assert.Equal(t, Position{Row: 9}, lineStart(10))
}
