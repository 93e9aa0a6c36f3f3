package motion

// Chord identifies one supported key chord.
type Chord uint8

const (
	// ChordNone is the zero value and never dispatches.
	ChordNone Chord = iota

	ChordWordRight  // w
	ChordWordLeft   // b
	ChordCharRight  // l
	ChordCharLeft   // h
	ChordLineUp     // k
	ChordLineDown   // j
	ChordFind       // f<char>
	ChordTill       // t<char>
	ChordDeleteLeft // shift-x
	ChordLineStart  // shift-6
	ChordLineEnd    // shift-4
	ChordColumnZero // 0
	ChordGotoLine   // shift-g
	ChordPageDown   // ctrl-d
	ChordPageUp     // ctrl-u
	ChordG          // g<m|e|g>
	ChordOpenBelow  // o
	ChordOpenAbove  // shift-o

	chordCount
)

var chordNames = [chordCount]string{
	ChordNone:       "",
	ChordWordRight:  "w",
	ChordWordLeft:   "b",
	ChordCharRight:  "l",
	ChordCharLeft:   "h",
	ChordLineUp:     "k",
	ChordLineDown:   "j",
	ChordFind:       "f",
	ChordTill:       "t",
	ChordDeleteLeft: "shift-x",
	ChordLineStart:  "shift-6",
	ChordLineEnd:    "shift-4",
	ChordColumnZero: "0",
	ChordGotoLine:   "shift-g",
	ChordPageDown:   "ctrl-d",
	ChordPageUp:     "ctrl-u",
	ChordG:          "g",
	ChordOpenBelow:  "o",
	ChordOpenAbove:  "shift-o",
}

var chordsByName = func() map[string]Chord {
	m := make(map[string]Chord, chordCount)
	for c := ChordNone + 1; c < chordCount; c++ {
		m[chordNames[c]] = c
	}
	return m
}()

// String returns the chord identifier, e.g. "w" or "shift-g".
func (c Chord) String() string {
	if c >= chordCount {
		return "unknown"
	}
	return chordNames[c]
}

// Valid returns true if c is one of the supported chords.
func (c Chord) Valid() bool {
	return c > ChordNone && c < chordCount
}

// ParseChord returns the chord with the given identifier.
func ParseChord(name string) (Chord, bool) {
	c, ok := chordsByName[name]
	return c, ok
}

// Chords returns all supported chords in table order.
func Chords() []Chord {
	chords := make([]Chord, 0, chordCount-1)
	for c := ChordNone + 1; c < chordCount; c++ {
		chords = append(chords, c)
	}
	return chords
}

// Edits returns true if the chord changes buffer text rather than only
// moving the cursor.
func (c Chord) Edits() bool {
	switch c {
	case ChordDeleteLeft, ChordOpenBelow, ChordOpenAbove:
		return true
	default:
		return false
	}
}
