package editor

import "unicode"

// charClass groups runes for word motions: a word is a run of runes of
// the same class, and whitespace separates words.
type charClass uint8

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func classify(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
		return classWord
	default:
		return classPunct
	}
}

// runeAt returns the rune at p, or '\n' at the end of a line.
func (b *Buffer) runeAt(p Position) rune {
	if line := b.lines[p.Row]; p.Column < len(line) {
		return line[p.Column]
	}
	return '\n'
}

func (b *Buffer) atStart(p Position) bool {
	return p.Row == 0 && p.Column == 0
}

func (b *Buffer) atEnd(p Position) bool {
	last := len(b.lines) - 1
	return p.Row == last && p.Column >= len(b.lines[last])
}

// next and prev step one rune, treating each line end as a '\n'.
func (b *Buffer) next(p Position) Position {
	if p.Column < len(b.lines[p.Row]) {
		return Position{Row: p.Row, Column: p.Column + 1}
	}
	return Position{Row: p.Row + 1}
}

func (b *Buffer) prev(p Position) Position {
	if p.Column > 0 {
		return Position{Row: p.Row, Column: p.Column - 1}
	}
	return Position{Row: p.Row - 1, Column: len(b.lines[p.Row-1])}
}

// wordRight skips the rest of the word at p, then any whitespace, so it
// lands on the start of the next word. Line breaks count as whitespace.
func (b *Buffer) wordRight(p Position) Position {
	p = b.clamp(p)
	if b.atEnd(p) {
		return p
	}
	if cls := classify(b.runeAt(p)); cls != classSpace {
		for !b.atEnd(p) && classify(b.runeAt(p)) == cls {
			p = b.next(p)
		}
	}
	for !b.atEnd(p) && classify(b.runeAt(p)) == classSpace {
		p = b.next(p)
	}
	return p
}

// wordLeft skips whitespace backwards, then moves to the start of the
// word before p.
func (b *Buffer) wordLeft(p Position) Position {
	p = b.clamp(p)
	if b.atStart(p) {
		return p
	}
	p = b.prev(p)
	for !b.atStart(p) && classify(b.runeAt(p)) == classSpace {
		p = b.prev(p)
	}
	cls := classify(b.runeAt(p))
	for !b.atStart(p) && classify(b.runeAt(b.prev(p))) == cls {
		p = b.prev(p)
	}
	return p
}
