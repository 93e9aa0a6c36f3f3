package motion

import "github.com/dshills/vimotion/internal/input/key"

// Step reports what one key event did.
type Step struct {
	// Parse is the parser result for the key.
	Parse Result

	// Dispatched is true if a command was applied to the editor.
	Dispatched bool

	// Outcome is the dispatch outcome. Meaningful only when Dispatched.
	Outcome Outcome
}

// Session feeds key events through a Parser and dispatches completed
// commands against one Editor. It is not safe for concurrent use; each
// key is fully processed before HandleKey returns.
type Session struct {
	parser *Parser
	editor Editor
}

// NewSession creates a session for ed.
func NewSession(ed Editor, opts ...ParserOption) *Session {
	return &Session{
		parser: NewParser(opts...),
		editor: ed,
	}
}

// Parser returns the session's parser.
func (s *Session) Parser() *Parser {
	return s.parser
}

// Editor returns the session's editor.
func (s *Session) Editor() Editor {
	return s.editor
}

// HandleKey parses ev and, if it completes a command, applies it in mode.
func (s *Session) HandleKey(ev key.Event, mode Mode) Step {
	res := s.parser.Feed(ev)
	step := Step{Parse: res}
	if !res.Status.Executable() {
		return step
	}

	step.Dispatched = true
	step.Outcome = DispatchCommand(s.editor, mode, res.Command)
	return step
}

// HandleKeys runs a key sequence in one mode and returns the last step.
func (s *Session) HandleKeys(events []key.Event, mode Mode) Step {
	var step Step
	for _, ev := range events {
		step = s.HandleKey(ev, mode)
	}
	return step
}
