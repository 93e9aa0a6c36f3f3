package editor

import (
	"unicode"

	"github.com/dshills/vimotion/internal/motion"
)

// Navigate moves the cursor and collapses the selection.
func (b *Buffer) Navigate(m motion.Move) {
	target, vertical := b.target(m)
	b.sel = b.sel.MoveTo(target)
	if !vertical {
		b.desiredCol = target.Column
	}
}

// Select moves the selection head, keeping the anchor.
func (b *Buffer) Select(m motion.Move) {
	target, vertical := b.target(m)
	b.sel = b.sel.Extend(target)
	if !vertical {
		b.desiredCol = target.Column
	}
}

// target computes where m takes the head. vertical is true for moves
// that keep the desired column.
func (b *Buffer) target(m motion.Move) (pos Position, vertical bool) {
	head := b.sel.Head

	switch m {
	case motion.MoveCharLeft:
		return b.charLeft(head), false
	case motion.MoveCharRight:
		return b.charRight(head), false
	case motion.MoveLineUp:
		return b.verticalTarget(head.Row - 1), true
	case motion.MoveLineDown:
		return b.verticalTarget(head.Row + 1), true
	case motion.MovePageUp:
		return b.verticalTarget(head.Row - b.pageSize), true
	case motion.MovePageDown:
		return b.verticalTarget(head.Row + b.pageSize), true
	case motion.MoveWordLeft:
		return b.wordLeft(head), false
	case motion.MoveWordRight:
		return b.wordRight(head), false
	case motion.MoveLineStart:
		return Position{Row: head.Row, Column: firstNonBlank(b.lines[head.Row])}, false
	case motion.MoveLineEnd:
		return Position{Row: head.Row, Column: len(b.lines[head.Row])}, false
	case motion.MoveBufferStart:
		return Position{}, false
	case motion.MoveBufferEnd:
		last := len(b.lines) - 1
		return Position{Row: last, Column: len(b.lines[last])}, false
	default:
		return head, true
	}
}

// verticalTarget returns the desired column on row, clamped.
func (b *Buffer) verticalTarget(row int) Position {
	return b.clamp(Position{Row: row, Column: b.desiredCol})
}

// charLeft steps back one grapheme cluster, wrapping to the end of the
// previous line.
func (b *Buffer) charLeft(p Position) Position {
	if p.Column == 0 {
		if p.Row == 0 {
			return p
		}
		return Position{Row: p.Row - 1, Column: len(b.lines[p.Row-1])}
	}
	return Position{Row: p.Row, Column: prevBoundary(b.lines[p.Row], p.Column)}
}

// charRight steps forward one grapheme cluster, wrapping to the start of
// the next line.
func (b *Buffer) charRight(p Position) Position {
	line := b.lines[p.Row]
	if p.Column >= len(line) {
		if p.Row == len(b.lines)-1 {
			return p
		}
		return Position{Row: p.Row + 1}
	}
	return Position{Row: p.Row, Column: nextBoundary(line, p.Column)}
}

// firstNonBlank returns the column of the first non-blank rune, or the
// line length for blank lines.
func firstNonBlank(line []rune) int {
	for i, r := range line {
		if !unicode.IsSpace(r) {
			return i
		}
	}
	return len(line)
}
