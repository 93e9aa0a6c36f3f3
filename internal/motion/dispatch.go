package motion

// Dispatch applies chord to ed once.
//
// count is the typed count, with 0 meaning none; negative values are
// treated as none. Unless the chord takes its count raw, an absent count
// becomes 1. In ModeSelect a chord without a Select behavior runs its
// Navigate behavior. Unknown chords return OutcomeUnknown and leave the
// editor untouched.
func Dispatch(ed Editor, mode Mode, count int, c Chord, param rune) Outcome {
	d, ok := Lookup(c)
	if !ok || ed == nil {
		return OutcomeUnknown
	}

	if count < 0 {
		count = 0
	}
	if !d.RawCount {
		count = EffectiveCount(count)
	}

	return d.Behavior(mode)(ed, count, param)
}

// DispatchCommand applies a parsed command.
func DispatchCommand(ed Editor, mode Mode, cmd Command) Outcome {
	return Dispatch(ed, mode, cmd.Count, cmd.Chord, cmd.Param)
}
