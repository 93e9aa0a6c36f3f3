package editor

import (
	"fmt"

	"github.com/dshills/vimotion/internal/motion"
)

// Position is an alias for motion.Position for convenience.
type Position = motion.Position

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the cursor.
// When Anchor == Head, this represents a cursor with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position
	Head   Position
}

// NewCursorSelection creates a selection representing just a cursor.
func NewCursorSelection(p Position) Selection {
	return Selection{Anchor: p, Head: p}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Position {
	if before(s.Head, s.Anchor) {
		return s.Head
	}
	return s.Anchor
}

// End returns the upper bound of the selection.
func (s Selection) End() Position {
	if before(s.Head, s.Anchor) {
		return s.Anchor
	}
	return s.Head
}

// IsBackward returns true if the selection extends backward (head < anchor).
func (s Selection) IsBackward() bool {
	return before(s.Head, s.Anchor)
}

// Extend returns a new selection with the head moved to p.
// The anchor remains fixed.
func (s Selection) Extend(p Position) Selection {
	return Selection{Anchor: s.Anchor, Head: p}
}

// MoveTo returns a new collapsed selection at p.
func (s Selection) MoveTo(p Position) Selection {
	return Selection{Anchor: p, Head: p}
}

// Collapse collapses the selection to a cursor at the head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Head)
	}
	return fmt.Sprintf("Selection[%s->%s]", s.Anchor, s.Head)
}

// before reports whether a comes strictly before b.
func before(a, b Position) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Column < b.Column
}
