package motion

import (
	"fmt"

	"github.com/dshills/vimotion/internal/input/key"
)

// Keymap resolves key events to chords. Explicit bindings take
// precedence over the chord notation of the key itself, so "<C-f>" can
// be bound to ChordPageDown while "ctrl-d" keeps working.
type Keymap struct {
	bindings map[string]Chord
}

// NewKeymap creates a keymap with no extra bindings.
func NewKeymap() *Keymap {
	return &Keymap{bindings: make(map[string]Chord)}
}

// Bind maps a key specification (see key.Parse) to a chord.
func (k *Keymap) Bind(spec string, c Chord) error {
	if !c.Valid() {
		return fmt.Errorf("bind %q: invalid chord %d", spec, c)
	}
	ev, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("bind %q: %w", spec, err)
	}
	k.bindings[ev.VimString()] = c
	return nil
}

// BindNames maps a key specification to a chord identifier such as
// "shift-g".
func (k *Keymap) BindNames(spec, chord string) error {
	c, ok := ParseChord(chord)
	if !ok {
		return fmt.Errorf("bind %q: unknown chord %q", spec, chord)
	}
	return k.Bind(spec, c)
}

// Len returns the number of explicit bindings.
func (k *Keymap) Len() int {
	if k == nil {
		return 0
	}
	return len(k.bindings)
}

// Resolve returns the chord for an event.
func (k *Keymap) Resolve(ev key.Event) (Chord, bool) {
	if k != nil {
		if c, ok := k.bindings[ev.VimString()]; ok {
			return c, true
		}
	}
	return ParseChord(key.ChordName(ev))
}
