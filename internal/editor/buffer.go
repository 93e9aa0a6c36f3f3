package editor

import (
	"io"
	"strings"

	"github.com/dshills/vimotion/internal/motion"
)

// DefaultPageSize is the number of lines a page motion moves by default.
const DefaultPageSize = 20

// Buffer is a line-oriented text buffer with a single selection.
type Buffer struct {
	lines [][]rune
	sel   Selection

	// desiredCol is the column vertical motions try to return to.
	desiredCol int

	pageSize   int
	lineEnding LineEnding
}

var _ motion.Editor = (*Buffer)(nil)

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithPageSize sets the number of lines moved by page motions.
func WithPageSize(n int) Option {
	return func(b *Buffer) {
		if n > 0 {
			b.pageSize = n
		}
	}
}

// WithLineEnding sets the line ending used by WriteTo.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// New creates a buffer holding text with the cursor at (0:0). CRLF and
// CR line endings are normalized; the detected style is kept for WriteTo
// unless overridden by an option.
func New(text string, opts ...Option) *Buffer {
	b := &Buffer{
		pageSize:   DefaultPageSize,
		lineEnding: DetectLineEnding(text),
	}
	b.setText(normalizeLineEndings(text))

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Read creates a buffer from r.
func Read(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return New(string(data), opts...), nil
}

func (b *Buffer) setText(text string) {
	parts := strings.Split(text, "\n")
	b.lines = make([][]rune, len(parts))
	for i, p := range parts {
		b.lines[i] = []rune(p)
	}
}

// Text returns the buffer content joined with "\n".
func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// WriteTo writes the buffer content using the buffer's line ending.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	text := b.Text()
	if b.lineEnding != LineEndingLF {
		text = strings.ReplaceAll(text, "\n", b.lineEnding.Sequence())
	}
	n, err := io.WriteString(w, text)
	return int64(n), err
}

// Line returns the text of a line, or "" if row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// LineLen returns the length of a line in runes.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// PageSize returns the number of lines page motions move.
func (b *Buffer) PageSize() int {
	return b.pageSize
}

// SetPageSize changes the page size. Non-positive values are ignored.
func (b *Buffer) SetPageSize(n int) {
	if n > 0 {
		b.pageSize = n
	}
}

// LineEnding returns the line ending used by WriteTo.
func (b *Buffer) LineEnding() LineEnding {
	return b.lineEnding
}

// SetLineEnding changes the line ending used by WriteTo.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.lineEnding = le
}

// Selection returns the current selection.
func (b *Buffer) Selection() Selection {
	return b.sel
}

// SelectedText returns the text covered by the selection.
func (b *Buffer) SelectedText() string {
	if b.sel.IsEmpty() {
		return ""
	}
	start, end := b.sel.Start(), b.sel.End()
	if start.Row == end.Row {
		return string(b.lines[start.Row][start.Column:end.Column])
	}
	var sb strings.Builder
	sb.WriteString(string(b.lines[start.Row][start.Column:]))
	for row := start.Row + 1; row < end.Row; row++ {
		sb.WriteByte('\n')
		sb.WriteString(string(b.lines[row]))
	}
	sb.WriteByte('\n')
	sb.WriteString(string(b.lines[end.Row][:end.Column]))
	return sb.String()
}

// Cursor returns the selection head.
func (b *Buffer) Cursor() Position {
	return b.sel.Head
}

// MoveCursorTo collapses the selection at pos.
func (b *Buffer) MoveCursorTo(pos Position) {
	pos = b.clamp(pos)
	b.sel = b.sel.MoveTo(pos)
	b.desiredCol = pos.Column
}

// SelectTo moves the selection head to pos.
func (b *Buffer) SelectTo(pos Position) {
	pos = b.clamp(pos)
	b.sel = b.sel.Extend(pos)
	b.desiredCol = pos.Column
}

// ClearSelection collapses the selection onto the cursor.
func (b *Buffer) ClearSelection() {
	b.sel = b.sel.Collapse()
}

// HasSelection returns true if the selection is not empty.
func (b *Buffer) HasSelection() bool {
	return !b.sel.IsEmpty()
}

// GotoLine moves the cursor to column 0 of a 1-based line, clamped to
// the buffer. Line 0 is treated as line 1.
func (b *Buffer) GotoLine(line int) {
	b.MoveCursorTo(Position{Row: line - 1})
}

// Insert replaces the selection with text and leaves the cursor after
// the inserted text.
func (b *Buffer) Insert(text string) {
	if b.HasSelection() {
		b.RemoveSelection()
	}
	text = normalizeLineEndings(text)
	if text == "" {
		return
	}

	at := b.sel.Head
	line := b.lines[at.Row]
	head := append([]rune(nil), line[:at.Column]...)
	tail := append([]rune(nil), line[at.Column:]...)

	parts := strings.Split(text, "\n")
	inserted := make([][]rune, len(parts))
	for i, p := range parts {
		inserted[i] = []rune(p)
	}

	last := len(inserted) - 1
	cursor := Position{Row: at.Row + last, Column: len(inserted[last])}
	if last == 0 {
		cursor.Column += len(head)
	}

	inserted[0] = append(head, inserted[0]...)
	inserted[last] = append(inserted[last], tail...)

	lines := make([][]rune, 0, len(b.lines)+last)
	lines = append(lines, b.lines[:at.Row]...)
	lines = append(lines, inserted...)
	lines = append(lines, b.lines[at.Row+1:]...)
	b.lines = lines

	b.MoveCursorTo(cursor)
}

// RemoveSelection deletes the selected text and collapses the cursor at
// the start of the removed range.
func (b *Buffer) RemoveSelection() {
	if b.sel.IsEmpty() {
		return
	}
	start, end := b.sel.Start(), b.sel.End()

	merged := append([]rune(nil), b.lines[start.Row][:start.Column]...)
	merged = append(merged, b.lines[end.Row][end.Column:]...)

	lines := make([][]rune, 0, len(b.lines)-(end.Row-start.Row))
	lines = append(lines, b.lines[:start.Row]...)
	lines = append(lines, merged)
	lines = append(lines, b.lines[end.Row+1:]...)
	b.lines = lines

	b.MoveCursorTo(start)
}

// FindRune returns the offset, relative to pos.Column+1, of the n-th
// occurrence of r after pos on the same line. n below 1 is treated as 1.
// Matching is per rune; moving the cursor to a column inside a grapheme
// cluster lands on the cluster's start.
func (b *Buffer) FindRune(pos Position, r rune, n int) (int, bool) {
	pos = b.clamp(pos)
	if n < 1 {
		n = 1
	}
	line := b.lines[pos.Row]
	from := pos.Column + 1
	if from > len(line) {
		return 0, false
	}
	for i, c := range line[from:] {
		if c != r {
			continue
		}
		n--
		if n == 0 {
			return i, true
		}
	}
	return 0, false
}

// clamp limits pos to the buffer and moves a column that falls inside a
// grapheme cluster back to the cluster's start.
func (b *Buffer) clamp(pos Position) Position {
	last := len(b.lines) - 1
	if pos.Row < 0 {
		pos.Row = 0
	} else if pos.Row > last {
		pos.Row = last
	}
	line := b.lines[pos.Row]
	switch {
	case pos.Column <= 0:
		pos.Column = 0
	case pos.Column >= len(line):
		pos.Column = len(line)
	default:
		// never inside a grapheme cluster
		pos.Column = prevBoundary(line, pos.Column+1)
	}
	return pos
}
