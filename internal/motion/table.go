package motion

import "strings"

// Behavior applies a motion to an editor. count is the effective count
// (see Descriptor.RawCount) and param is the trailing character for
// motions that need one, or 0.
type Behavior func(ed Editor, count int, param rune) Outcome

// Descriptor describes one chord.
type Descriptor struct {
	// Chord is the chord this descriptor is registered under.
	Chord Chord

	// NeedsParameter indicates the motion waits for one literal character.
	NeedsParameter bool

	// RawCount passes an absent count to the behaviors as 0 instead of 1.
	RawCount bool

	// Navigate moves the cursor. Always set.
	Navigate Behavior

	// Select extends the selection. Nil when the motion has no
	// selection form.
	Select Behavior
}

// Behavior returns the behavior for mode. Select mode falls back to
// Navigate for descriptors without a Select behavior.
func (d Descriptor) Behavior(mode Mode) Behavior {
	if mode == ModeSelect && d.Select != nil {
		return d.Select
	}
	return d.Navigate
}

// HasSelect returns true if the motion has a distinct Select behavior.
func (d Descriptor) HasSelect() bool {
	return d.Select != nil
}

var table = [chordCount]Descriptor{
	ChordWordRight: {
		Navigate: repeatNavigate(MoveWordRight),
		Select:   repeatSelect(MoveWordRight),
	},
	ChordWordLeft: {
		Navigate: repeatNavigate(MoveWordLeft),
		Select:   repeatSelect(MoveWordLeft),
	},
	ChordCharRight: {
		Navigate: repeatNavigate(MoveCharRight),
		Select:   repeatSelect(MoveCharRight),
	},
	ChordCharLeft: {
		Navigate: repeatNavigate(MoveCharLeft),
		Select:   repeatSelect(MoveCharLeft),
	},
	ChordLineUp: {
		Navigate: repeatNavigate(MoveLineUp),
		Select:   repeatSelect(MoveLineUp),
	},
	ChordLineDown: {
		Navigate: repeatNavigate(MoveLineDown),
		Select:   repeatSelect(MoveLineDown),
	},
	ChordFind: {
		NeedsParameter: true,
		Navigate:       findNavigate(1),
		Select:         findSelect(1),
	},
	ChordTill: {
		NeedsParameter: true,
		Navigate:       findNavigate(0),
		Select:         findSelect(0),
	},
	ChordDeleteLeft: {
		Navigate: deleteLeft,
	},
	ChordLineStart: {
		Navigate: navigate(MoveLineStart),
		Select:   selectMove(MoveLineStart),
	},
	ChordLineEnd: {
		Navigate: navigate(MoveLineEnd),
		Select:   selectMove(MoveLineEnd),
	},
	ChordColumnZero: {
		Navigate: func(ed Editor, _ int, _ rune) Outcome {
			ed.MoveCursorTo(Position{Row: ed.Cursor().Row})
			return OutcomeApplied
		},
		Select: func(ed Editor, _ int, _ rune) Outcome {
			ed.SelectTo(Position{Row: ed.Cursor().Row})
			return OutcomeApplied
		},
	},
	ChordGotoLine: {
		RawCount: true,
		Navigate: func(ed Editor, count int, _ rune) Outcome {
			if count <= 0 {
				count = ed.LineCount()
			}
			ed.GotoLine(count)
			return OutcomeApplied
		},
		Select: func(ed Editor, count int, _ rune) Outcome {
			if count <= 0 {
				count = ed.LineCount()
			}
			ed.SelectTo(lineStart(count))
			return OutcomeApplied
		},
	},
	ChordPageDown: {
		Navigate: clearThenNavigate(MovePageDown),
		Select:   selectMove(MovePageDown),
	},
	ChordPageUp: {
		Navigate: clearThenNavigate(MovePageUp),
		Select:   selectMove(MovePageUp),
	},
	ChordG: {
		NeedsParameter: true,
		RawCount:       true,
		Navigate: func(ed Editor, count int, param rune) Outcome {
			return gPrefixed(param, func() {
				ed.GotoLine(count)
			})
		},
		Select: func(ed Editor, count int, param rune) Outcome {
			return gPrefixed(param, func() {
				ed.SelectTo(lineStart(count))
			})
		},
	},
	ChordOpenBelow: {
		Navigate: openBelow,
	},
	ChordOpenAbove: {
		Navigate: openAbove,
	},
}

func init() {
	for c := range table {
		table[c].Chord = Chord(c)
	}
}

// Lookup returns the descriptor for a chord.
func Lookup(c Chord) (Descriptor, bool) {
	if !c.Valid() {
		return Descriptor{}, false
	}
	return table[c], true
}

// repeatNavigate navigates count times, stopping early once a step no
// longer moves the cursor.
func repeatNavigate(m Move) Behavior {
	return func(ed Editor, count int, _ rune) Outcome {
		for i := 0; i < count; i++ {
			before := ed.Cursor()
			ed.Navigate(m)
			if ed.Cursor() == before {
				break
			}
		}
		return OutcomeApplied
	}
}

// repeatSelect extends the selection count times, stopping early once a
// step no longer moves the head.
func repeatSelect(m Move) Behavior {
	return func(ed Editor, count int, _ rune) Outcome {
		for i := 0; i < count; i++ {
			before := ed.Cursor()
			ed.Select(m)
			if ed.Cursor() == before {
				break
			}
		}
		return OutcomeApplied
	}
}

func navigate(m Move) Behavior {
	return func(ed Editor, _ int, _ rune) Outcome {
		ed.Navigate(m)
		return OutcomeApplied
	}
}

func selectMove(m Move) Behavior {
	return func(ed Editor, _ int, _ rune) Outcome {
		ed.Select(m)
		return OutcomeApplied
	}
}

func clearThenNavigate(m Move) Behavior {
	return func(ed Editor, _ int, _ rune) Outcome {
		ed.ClearSelection()
		ed.Navigate(m)
		return OutcomeApplied
	}
}

// findNavigate builds the f (landing 1) and t (landing 0) navigations.
// The count is the n-th occurrence to search for, not a repeat count.
// A failed search leaves cursor and selection untouched.
func findNavigate(landing int) Behavior {
	return func(ed Editor, count int, param rune) Outcome {
		target, ok := findTarget(ed, count, param, landing)
		if !ok {
			return OutcomeNoMatch
		}
		ed.ClearSelection()
		ed.MoveCursorTo(target)
		return OutcomeApplied
	}
}

func findSelect(landing int) Behavior {
	return func(ed Editor, count int, param rune) Outcome {
		target, ok := findTarget(ed, count, param, landing)
		if !ok {
			return OutcomeNoMatch
		}
		ed.SelectTo(target)
		return OutcomeApplied
	}
}

func findTarget(ed Editor, count int, param rune, landing int) (Position, bool) {
	if param == 0 {
		return Position{}, false
	}
	cur := ed.Cursor()
	offset, ok := ed.FindRune(cur, param, count)
	if !ok {
		return Position{}, false
	}
	return Position{Row: cur.Row, Column: cur.Column + offset + landing}, true
}

// deleteLeft removes the selection, or the character left of the cursor
// when nothing is selected.
func deleteLeft(ed Editor, _ int, _ rune) Outcome {
	if !ed.HasSelection() {
		ed.Select(MoveCharLeft)
	}
	ed.RemoveSelection()
	ed.ClearSelection()
	return OutcomeApplied
}

// openBelow inserts count newlines after the current line.
func openBelow(ed Editor, count int, _ rune) Outcome {
	ed.Navigate(MoveLineEnd)
	ed.Insert(strings.Repeat("\n", count))
	return OutcomeApplied
}

// openAbove inserts count newlines before the current line. On the first
// line there is no line above to append to, so the newlines go in at
// column 0 and the cursor steps back onto the last of them.
func openAbove(ed Editor, count int, _ rune) Outcome {
	if ed.Cursor().Row == 0 {
		ed.MoveCursorTo(Position{})
		ed.Insert(strings.Repeat("\n", count))
		ed.MoveCursorTo(Position{Row: count - 1})
		return OutcomeApplied
	}
	ed.Navigate(MoveLineUp)
	ed.Navigate(MoveLineEnd)
	ed.Insert(strings.Repeat("\n", count))
	return OutcomeApplied
}

// gPrefixed dispatches on the parameter of the g chord.
func gPrefixed(param rune, gotoLine func()) Outcome {
	switch param {
	case 'g':
		gotoLine()
		return OutcomeApplied
	case 'm', 'e':
		// middle visible line and end of previous word
		return OutcomeUnsupported
	default:
		return OutcomeUnknown
	}
}

// lineStart returns column 0 of a 1-based line number. Line 0 means the
// first line.
func lineStart(line int) Position {
	if line > 0 {
		line--
	}
	return Position{Row: line}
}
