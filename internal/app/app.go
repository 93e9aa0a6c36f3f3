// Package app provides the vimotion application. It wires configuration,
// logging, the text buffer and the motion session together, and runs
// either the interactive terminal UI or a non-interactive key replay.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/vimotion/internal/config"
	"github.com/dshills/vimotion/internal/config/watcher"
	"github.com/dshills/vimotion/internal/editor"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/motion"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// File is the file to edit. Empty starts with an unnamed buffer.
	File string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogOutput receives logs when the config names no log file.
	// Defaults to os.Stderr.
	LogOutput io.Writer

	// Select starts in select mode.
	Select bool
}

// Application holds one editing session.
type Application struct {
	mu sync.Mutex

	opts      Options
	cfg       *config.Config
	sessionID string

	logger  *Logger
	logFile *os.File

	buffer   *editor.Buffer
	detected editor.LineEnding
	session  *motion.Session
	mode     motion.Mode
	modified bool

	last    motion.Step
	message string

	watcher *watcher.Watcher

	// Terminal state, set while Run is active
	screen tcell.Screen
	top    int
}

// New creates an application: it loads the configuration, opens the
// log destination and reads the file.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, NewOperationError("load config", opts.ConfigPath, err)
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}

	app := &Application{
		opts:      opts,
		cfg:       cfg,
		sessionID: uuid.NewString(),
	}
	if opts.Select {
		app.mode = motion.ModeSelect
	}

	if err := app.setupLogger(); err != nil {
		return nil, err
	}

	if err := app.openFile(opts.File); err != nil {
		app.closeLog()
		return nil, err
	}

	km, err := cfg.BuildKeymap()
	if err != nil {
		app.closeLog()
		return nil, NewOperationError("build keymap", opts.ConfigPath, err)
	}
	app.session = motion.NewSession(app.buffer, motion.WithKeymap(km))

	app.logger.Info("session started")
	app.logger.Debug("config: page_size=%d tab_width=%d newline=%s keymap=%d",
		cfg.Editor.PageSize, cfg.Editor.TabWidth, app.buffer.LineEnding(), km.Len())

	return app, nil
}

func (app *Application) setupLogger() error {
	out := app.opts.LogOutput
	if app.cfg.Log.File != "" {
		f, err := os.OpenFile(app.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return NewOperationError("open log", app.cfg.Log.File, err)
		}
		app.logFile = f
		out = f
	}

	app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(app.cfg.Log.Level),
		Output: out,
		Prefix: "vimotion",
	}).WithField("session", app.sessionID)
	return nil
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// openFile loads path into the buffer. A file that does not exist yet
// starts empty and is created on save.
func (app *Application) openFile(path string) error {
	opts := []editor.Option{editor.WithPageSize(app.cfg.Editor.PageSize)}

	if path == "" {
		app.buffer = editor.New("", opts...)
	} else {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			app.buffer, err = editor.Read(f, opts...)
			if err != nil {
				return NewOperationError("read", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			app.logger.Info("new file %s", path)
			app.buffer = editor.New("", opts...)
		default:
			return NewOperationError("open", path, err)
		}
	}

	app.detected = app.buffer.LineEnding()
	app.buffer.SetLineEnding(app.cfg.LineEnding(app.detected))
	return nil
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.cfg
}

// Buffer returns the edited buffer.
func (app *Application) Buffer() *editor.Buffer {
	return app.buffer
}

// Logger returns the application's logger instance.
func (app *Application) Logger() *Logger {
	return app.logger
}

// SessionID returns the identifier attached to every log line.
func (app *Application) SessionID() string {
	return app.sessionID
}

// Mode returns the current dispatch mode.
func (app *Application) Mode() motion.Mode {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.mode
}

// SetMode switches the dispatch mode. Leaving select mode collapses the
// selection.
func (app *Application) SetMode(m motion.Mode) {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.setMode(m)
}

func (app *Application) setMode(m motion.Mode) {
	if app.mode == m {
		return
	}
	if m == motion.ModeNavigate {
		app.buffer.ClearSelection()
	}
	app.mode = m
	app.logger.Debug("mode %s", m)
}

// Modified returns true if the buffer has unsaved edits.
func (app *Application) Modified() bool {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.modified
}

// LastStep returns the result of the most recent key.
func (app *Application) LastStep() motion.Step {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.last
}

// HandleKey feeds one key to the motion session.
func (app *Application) HandleKey(ev key.Event) motion.Step {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.handleKey(ev)
}

func (app *Application) handleKey(ev key.Event) motion.Step {
	step := app.session.HandleKey(ev, app.mode)
	app.last = step
	app.message = ""

	if step.Dispatched {
		app.logOutcome(step)
		if step.Outcome == motion.OutcomeApplied && step.Parse.Command.Chord.Edits() {
			app.modified = true
		}
	}
	return step
}

func (app *Application) logOutcome(step motion.Step) {
	cmd := step.Parse.Command
	log := app.logger.WithComponent("motion").WithFields(map[string]any{
		"chord": cmd.Chord,
		"count": cmd.Count,
		"mode":  app.mode,
	})

	switch step.Outcome {
	case motion.OutcomeApplied:
		log.Debug("applied, cursor %s", app.buffer.Cursor())
	case motion.OutcomeNoMatch:
		log.Debug("no match for %q", cmd.Param)
	case motion.OutcomeUnsupported:
		log.Info("%s%c is not supported", cmd.Chord, cmd.Param)
	case motion.OutcomeUnknown:
		log.Debug("unknown parameter %q", cmd.Param)
	}
}

// Replay parses a key sequence such as "3w<C-d>fa" and feeds it to the
// session in the current mode. It returns the last step.
func (app *Application) Replay(seq string) (motion.Step, error) {
	events, err := key.ParseSequence(seq)
	if err != nil {
		return motion.Step{}, NewOperationError("parse keys", seq, err)
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	var step motion.Step
	for _, ev := range events {
		step = app.handleKey(ev)
	}
	app.logger.Debug("replayed %d keys, cursor %s", len(events), app.buffer.Cursor())
	return step, nil
}

// WriteTo writes the buffer with its configured line ending.
func (app *Application) WriteTo(w io.Writer) (int64, error) {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.buffer.WriteTo(w)
}

// Save writes the buffer back to its file.
func (app *Application) Save() error {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.saveAs(app.opts.File)
}

// SaveAs writes the buffer to path without changing the edited file.
func (app *Application) SaveAs(path string) error {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.saveAs(path)
}

// saveAs writes through a temporary file in the target directory so a
// failed write leaves the original intact.
func (app *Application) saveAs(path string) error {
	if path == "" {
		return ErrNoPath
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return NewOperationError("save", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := app.buffer.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		return NewOperationError("save", path, err)
	}
	if err := tmp.Close(); err != nil {
		return NewOperationError("save", path, err)
	}
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmp.Name(), info.Mode().Perm())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return NewOperationError("save", path, err)
	}

	if path == app.opts.File {
		app.modified = false
	}
	app.logger.Info("wrote %s (%d lines)", path, app.buffer.LineCount())
	return nil
}

// ReloadConfig reloads the configuration file and applies it to the
// running session. On error the previous configuration stays active.
func (app *Application) ReloadConfig() error {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return app.reloadFailed(err)
	}
	if app.opts.LogLevel != "" {
		cfg.Log.Level = app.opts.LogLevel
	}
	km, err := cfg.BuildKeymap()
	if err != nil {
		return app.reloadFailed(err)
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	app.cfg = cfg
	app.logger.SetLevel(ParseLogLevel(cfg.Log.Level))
	app.buffer.SetPageSize(cfg.Editor.PageSize)
	app.buffer.SetLineEnding(cfg.LineEnding(app.detected))
	app.session.Parser().SetKeymap(km)
	app.message = "config reloaded"

	app.logger.WithComponent("config").Info("reloaded %s", app.opts.ConfigPath)
	return nil
}

// reloadFailed reports a rejected reload in the log and the status line.
func (app *Application) reloadFailed(err error) error {
	app.logger.WithComponent("config").Warn("reload failed, keeping previous config: %v", err)
	app.mu.Lock()
	app.message = "config error: " + err.Error()
	app.mu.Unlock()
	return NewOperationError("reload config", app.opts.ConfigPath, err)
}

// WatchConfig reloads the configuration whenever its file changes.
// It does nothing when no config path was given.
func (app *Application) WatchConfig() error {
	if app.opts.ConfigPath == "" {
		return nil
	}

	log := app.logger.WithComponent("config")
	w, err := watcher.New(watcher.WithErrorHandler(func(err error) {
		log.Warn("watch error: %v", err)
	}))
	if err != nil {
		return NewOperationError("watch", app.opts.ConfigPath, err)
	}
	if err := w.Watch(app.opts.ConfigPath); err != nil {
		_ = w.Stop()
		return NewOperationError("watch", app.opts.ConfigPath, err)
	}

	w.OnChange(func(ev watcher.Event) {
		if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
			log.Debug("config file %s: %s", ev.Op, ev.Path)
			return
		}
		_ = app.ReloadConfig()
		app.postRedraw()
	})
	w.Start()

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
	return nil
}

// Close stops the config watcher and closes the log file.
func (app *Application) Close() error {
	app.mu.Lock()
	w := app.watcher
	app.watcher = nil
	app.mu.Unlock()

	var err error
	if w != nil {
		err = w.Stop()
	}

	app.logger.Info("session ended")
	app.closeLog()
	return err
}

// status returns the short description of the last key for the status
// line.
func (app *Application) status() string {
	if app.message != "" {
		return app.message
	}
	step := app.last
	if !step.Dispatched || step.Outcome == motion.OutcomeApplied {
		return ""
	}
	cmd := step.Parse.Command
	if cmd.Param != 0 {
		return fmt.Sprintf("%s%c: %s", cmd.Chord, cmd.Param, step.Outcome)
	}
	return fmt.Sprintf("%s: %s", cmd.Chord, step.Outcome)
}
