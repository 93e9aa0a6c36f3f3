// Package motion implements the modal motion-dispatch engine: it turns a
// key stream into Vim-style motions applied against an editor.
//
// A motion is typed as
//
//	[count]chord[parameter]
//
// where count is a decimal repeat count that cannot start with 0 (a bare
// "0" is the column-zero motion), chord is one of the Chord constants, and
// parameter is a single literal character required by f, t and g.
//
// # Components
//
//   - Table: a fixed mapping from Chord to Descriptor. Every descriptor has
//     a Navigate behavior; Select is optional and falls back to Navigate.
//   - Parser: the pending-input state machine (idle, count, awaiting
//     parameter) that consumes one key.Event at a time.
//   - Dispatch: looks up a chord and invokes its behavior once against an
//     Editor, reporting an Outcome.
//   - Session: threads one Parser and one Editor together for a key loop.
//
// # Failure Model
//
// Nothing in this package returns an error or panics on user input. An
// unknown chord, a character search without enough matches, or an
// unimplemented g sub-motion each yield a distinct Outcome and leave the
// editor untouched.
//
// # Usage
//
//	s := motion.NewSession(buf)
//	for _, ev := range events {
//	    step := s.HandleKey(ev, motion.ModeNavigate)
//	    if step.Dispatched && step.Outcome == motion.OutcomeUnsupported {
//	        // tell the user
//	    }
//	}
package motion
