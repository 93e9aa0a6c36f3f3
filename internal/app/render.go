package app

import (
	"fmt"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/vimotion/internal/editor"
	"github.com/dshills/vimotion/internal/motion"
)

var (
	styleText      = tcell.StyleDefault
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleFiller    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

// draw repaints the screen: the visible lines and a status line.
func (app *Application) draw() {
	app.mu.Lock()
	defer app.mu.Unlock()

	s := app.screen
	if s == nil {
		return
	}

	s.Clear()
	width, height := s.Size()
	rows := height - 1
	if rows < 1 || width < 1 {
		s.Show()
		return
	}

	cur := app.buffer.Cursor()
	app.scrollTo(cur.Row, rows)

	sel := app.buffer.Selection()
	cursorX, cursorY := -1, -1
	for y := 0; y < rows; y++ {
		row := app.top + y
		if row >= app.buffer.LineCount() {
			s.SetContent(0, y, '~', nil, styleFiller)
			continue
		}
		x := app.drawLine(s, y, row, width, sel)
		if row == cur.Row {
			cursorX, cursorY = x, y
		}
	}

	app.drawStatus(s, width, height-1)

	if cursorX >= 0 && cursorX < width {
		s.ShowCursor(cursorX, cursorY)
	} else {
		s.HideCursor()
	}
	s.Show()
}

// scrollTo keeps row inside the visible window.
func (app *Application) scrollTo(row, rows int) {
	if row < app.top {
		app.top = row
	}
	if row >= app.top+rows {
		app.top = row - rows + 1
	}
}

// drawLine draws one buffer row and returns the screen column of the
// cursor on it. Grapheme clusters are drawn as one cell and tabs expand
// to the configured width.
func (app *Application) drawLine(s tcell.Screen, y, row, width int, sel editor.Selection) int {
	tabWidth := app.cfg.Editor.TabWidth
	cur := app.buffer.Cursor()
	cursorX := 0

	x, col := 0, 0
	g := uniseg.NewGraphemes(app.buffer.Line(row))
	for g.Next() {
		runes := g.Runes()
		if cur.Row == row && cur.Column >= col && cur.Column < col+len(runes) {
			cursorX = x
		}

		style := styleText
		if inSelection(sel, motion.Position{Row: row, Column: col}) {
			style = styleSelection
		}

		if runes[0] == '\t' {
			n := tabWidth - x%tabWidth
			for i := 0; i < n && x < width; i++ {
				s.SetContent(x, y, ' ', nil, style)
				x++
			}
		} else {
			w := runewidth.StringWidth(g.Str())
			if w < 1 {
				w = 1
			}
			if x+w > width {
				break
			}
			s.SetContent(x, y, runes[0], runes[1:], style)
			x += w
		}
		col += len(runes)
	}

	if cur.Row == row && cur.Column >= col {
		cursorX = x
	}
	return cursorX
}

func inSelection(sel editor.Selection, p motion.Position) bool {
	if sel.IsEmpty() {
		return false
	}
	start, end := sel.Start(), sel.End()
	afterStart := p.Row > start.Row || (p.Row == start.Row && p.Column >= start.Column)
	beforeEnd := p.Row < end.Row || (p.Row == end.Row && p.Column < end.Column)
	return afterStart && beforeEnd
}

// drawStatus draws the mode, file and last outcome on the left and the
// pending keys and cursor position on the right.
func (app *Application) drawStatus(s tcell.Screen, width, y int) {
	for x := 0; x < width; x++ {
		s.SetContent(x, y, ' ', nil, styleStatus)
	}

	name := "[No Name]"
	if app.opts.File != "" {
		name = filepath.Base(app.opts.File)
	}
	if app.modified {
		name += " [+]"
	}

	mode := "NORMAL"
	if app.mode == motion.ModeSelect {
		mode = "SELECT"
	}

	left := fmt.Sprintf(" %s  %s", mode, name)
	if msg := app.status(); msg != "" {
		left += "  " + msg
	}

	cur := app.buffer.Cursor()
	right := fmt.Sprintf("%s  %d:%d ", app.session.Parser().PendingKeys(), cur.Row+1, cur.Column+1)

	rw := runewidth.StringWidth(right)
	left = runewidth.Truncate(left, width-rw-1, "…")
	drawText(s, 0, y, styleStatus, left)
	drawText(s, width-rw, y, styleStatus, right)
}

// drawText draws text starting at x and returns the column after it.
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
