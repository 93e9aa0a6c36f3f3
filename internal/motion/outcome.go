package motion

// Mode selects which behavior of a motion is applied.
type Mode uint8

const (
	// ModeNavigate moves the cursor and collapses any selection.
	ModeNavigate Mode = iota

	// ModeSelect extends the selection instead.
	ModeSelect
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNavigate:
		return "navigate"
	case ModeSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Outcome reports what a dispatched motion did.
type Outcome uint8

const (
	// OutcomeApplied indicates the motion ran.
	OutcomeApplied Outcome = iota

	// OutcomeNoMatch indicates a character search found fewer matches
	// than requested; the editor is unchanged.
	OutcomeNoMatch

	// OutcomeUnsupported indicates a recognized motion that has no
	// implementation yet (g m, g e).
	OutcomeUnsupported

	// OutcomeUnknown indicates the chord, or a g parameter, is not
	// recognized.
	OutcomeUnknown
)

// String returns a string representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeNoMatch:
		return "no-match"
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}
