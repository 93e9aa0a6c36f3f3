package app

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/motion"
)

// Run runs the interactive UI on screen until the user quits. The screen
// is initialized and finalized by Run.
func (app *Application) Run(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return NewOperationError("init", "terminal", err)
	}
	defer screen.Fini()

	app.mu.Lock()
	app.screen = screen
	app.mu.Unlock()
	defer func() {
		app.mu.Lock()
		app.screen = nil
		app.mu.Unlock()
	}()

	app.draw()
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if err := app.handleTerminalKey(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}
		case *tcell.EventInterrupt:
			if ev.Data() == ErrQuit {
				return nil
			}
		}

		app.draw()
	}
}

// handleTerminalKey handles the UI keys and passes everything else to
// the motion session. UI keys only apply while no motion input is
// pending, so "fq" still searches for q.
func (app *Application) handleTerminalKey(tev *tcell.EventKey) error {
	ev := key.FromTcell(tev)
	if isCtrl(ev, 'c') {
		return ErrQuit
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	if app.session.Parser().State() == motion.StateIdle {
		switch {
		case ev.IsRune() && !ev.IsModified() && ev.Rune == 'q':
			return ErrQuit
		case ev.IsRune() && !ev.IsModified() && ev.Rune == 'v':
			if app.mode == motion.ModeSelect {
				app.setMode(motion.ModeNavigate)
			} else {
				app.setMode(motion.ModeSelect)
			}
			app.message = ""
			return nil
		case ev.IsEscape() && app.mode == motion.ModeSelect:
			app.setMode(motion.ModeNavigate)
			app.message = ""
			return nil
		case isCtrl(ev, 's'):
			if err := app.saveAs(app.opts.File); err != nil {
				app.logger.Error("save: %v", err)
				app.message = err.Error()
			} else {
				app.message = "written"
			}
			return nil
		}
	}

	app.handleKey(ev)
	return nil
}

// postRedraw asks a running event loop to repaint.
func (app *Application) postRedraw() {
	app.post(nil)
}

// Quit asks a running event loop to return. It is safe to call from
// any goroutine.
func (app *Application) Quit() {
	app.post(ErrQuit)
}

func (app *Application) post(data any) {
	app.mu.Lock()
	s := app.screen
	app.mu.Unlock()
	if s != nil {
		_ = s.PostEvent(tcell.NewEventInterrupt(data))
	}
}

func isCtrl(ev key.Event, r rune) bool {
	return ev.IsRune() && ev.Modifiers.HasCtrl() && ev.Rune == r
}
