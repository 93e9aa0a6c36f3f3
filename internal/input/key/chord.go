package key

import (
	"strings"
	"unicode"
)

// shiftedSymbols maps US-layout shifted symbols to the key that
// produces them.
var shiftedSymbols = map[rune]rune{
	'!': '1',
	'@': '2',
	'#': '3',
	'$': '4',
	'%': '5',
	'^': '6',
	'&': '7',
	'*': '8',
	'(': '9',
	')': '0',
	'_': '-',
	'+': '=',
	'{': '[',
	'}': ']',
	'|': '\\',
	':': ';',
	'"': '\'',
	'<': ',',
	'>': '.',
	'?': '/',
	'~': '`',
}

// ChordName returns the event in chord notation: lowercase key names
// prefixed by "ctrl-", "alt-", "meta-" and "shift-" in that order.
// Shifted characters are spelled by their base key, so 'G' yields
// "shift-g" and '$' yields "shift-4". Returns "" for KeyNone.
func ChordName(e Event) string {
	var name string
	mods := e.Modifiers

	switch {
	case e.IsRune():
		r := e.Rune
		if base, ok := shiftedSymbols[r]; ok {
			r = base
			mods = mods.With(ModShift)
		} else if unicode.IsUpper(r) {
			r = unicode.ToLower(r)
			mods = mods.With(ModShift)
		}
		if r == ' ' {
			name = "space"
		} else {
			name = string(r)
		}
	case e.Key == KeyNone:
		return ""
	default:
		name = strings.ToLower(e.Key.String())
	}

	var sb strings.Builder
	if mods.HasCtrl() {
		sb.WriteString("ctrl-")
	}
	if mods.HasAlt() {
		sb.WriteString("alt-")
	}
	if mods.HasMeta() {
		sb.WriteString("meta-")
	}
	if mods.HasShift() {
		sb.WriteString("shift-")
	}
	sb.WriteString(name)
	return sb.String()
}
