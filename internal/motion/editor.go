package motion

import "fmt"

// Position is a zero-based row and column in the buffer. Columns count
// characters, not bytes.
type Position struct {
	Row    int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Column)
}

// Move names a directional cursor movement understood by the editor.
type Move uint8

const (
	MoveCharLeft Move = iota
	MoveCharRight
	MoveLineUp
	MoveLineDown
	MoveWordLeft
	MoveWordRight
	// MoveLineStart goes to the first non-blank character of the line.
	MoveLineStart
	MoveLineEnd
	MoveBufferStart
	MoveBufferEnd
	MovePageUp
	MovePageDown
)

var moveNames = [...]string{
	MoveCharLeft:    "charLeft",
	MoveCharRight:   "charRight",
	MoveLineUp:      "lineUp",
	MoveLineDown:    "lineDown",
	MoveWordLeft:    "wordLeft",
	MoveWordRight:   "wordRight",
	MoveLineStart:   "lineStart",
	MoveLineEnd:     "lineEnd",
	MoveBufferStart: "bufferStart",
	MoveBufferEnd:   "bufferEnd",
	MovePageUp:      "pageUp",
	MovePageDown:    "pageDown",
}

// String returns the move name.
func (m Move) String() string {
	if int(m) < len(moveNames) {
		return moveNames[m]
	}
	return "unknown"
}

// Editor is the text-editor surface motions operate on.
//
// The selection is an anchor plus the cursor (its head). Navigating
// collapses the selection onto the new cursor; selecting moves only the
// head. Implementations clamp out-of-range positions.
type Editor interface {
	// Cursor returns the selection head.
	Cursor() Position

	// MoveCursorTo collapses the selection and places the cursor at pos.
	MoveCursorTo(pos Position)

	// SelectTo keeps the anchor and moves the head to pos.
	SelectTo(pos Position)

	// ClearSelection collapses the selection onto the cursor.
	ClearSelection()

	// HasSelection returns true if anchor and head differ.
	HasSelection() bool

	// Navigate moves the cursor, collapsing the selection.
	Navigate(m Move)

	// Select moves the selection head.
	Select(m Move)

	// GotoLine moves the cursor to the start of a 1-based line number.
	GotoLine(line int)

	// Insert replaces the selection with text, leaving the cursor after it.
	Insert(text string)

	// RemoveSelection deletes the selected text.
	RemoveSelection()

	// LineCount returns the number of lines in the buffer.
	LineCount() int

	// FindRune searches pos.Row to the right of pos for the n-th
	// occurrence of r. The returned offset is relative to pos.Column+1.
	// Matching is per rune; implementations that keep the cursor on
	// grapheme cluster boundaries adjust the landing column themselves.
	FindRune(pos Position, r rune, n int) (offset int, found bool)
}
