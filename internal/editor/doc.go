// Package editor provides an in-memory text buffer with a cursor and a
// selection. Buffer implements motion.Editor and is the editing surface
// the motion engine drives in the vimotion CLI and in tests.
//
// Text is stored as lines of runes without their line terminators.
// Positions are zero-based rows and rune columns; a column equal to the
// line length is the position after the last character.
//
// Character motions step over whole grapheme clusters, so a base letter
// and its combining marks move as one unit.
//
// Buffer is not safe for concurrent use.
package editor
