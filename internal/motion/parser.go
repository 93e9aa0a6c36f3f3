package motion

import (
	"strings"

	"github.com/dshills/vimotion/internal/input/key"
)

// Status indicates the result of feeding a key to the parser.
type Status uint8

const (
	// StatusIgnored indicates nothing executable; pending state was cleared.
	StatusIgnored Status = iota

	// StatusCount indicates a digit was absorbed into the count.
	StatusCount

	// StatusAwaitParameter indicates a chord is waiting for its character.
	StatusAwaitParameter

	// StatusResolved indicates a chord without a parameter is ready.
	StatusResolved

	// StatusReady indicates a chord and its parameter are ready.
	StatusReady
)

// String returns a string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIgnored:
		return "ignored"
	case StatusCount:
		return "count"
	case StatusAwaitParameter:
		return "awaitParameter"
	case StatusResolved:
		return "resolved"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Executable returns true if the result carries a command to dispatch.
func (s Status) Executable() bool {
	return s == StatusResolved || s == StatusReady
}

// State is the parser's pending-input state.
type State uint8

const (
	// StateIdle has nothing pending.
	StateIdle State = iota

	// StateCount is accumulating a count prefix.
	StateCount

	// StateAwaitParameter holds a chord waiting for one character.
	StateAwaitParameter
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCount:
		return "count"
	case StateAwaitParameter:
		return "awaitParameter"
	default:
		return "unknown"
	}
}

// Command is a parsed motion.
type Command struct {
	// Count is the typed count, 0 if none was typed.
	Count int

	// Chord is the motion chord.
	Chord Chord

	// Param is the trailing character for f, t and g, or 0.
	Param rune
}

// HasCount returns true if a count was typed.
func (c Command) HasCount() bool {
	return c.Count > 0
}

// Result contains the result of feeding a key event.
type Result struct {
	// Status indicates the parse result.
	Status Status

	// Command is set when Status is executable, and holds the pending
	// chord and count for StatusAwaitParameter.
	Command Command

	// Pending shows the keys typed so far (for the status line).
	Pending string
}

// Parser turns key events into commands. It holds the pending input
// between events and is owned by a single key loop.
type Parser struct {
	state  State
	count  CountState
	chord  Chord
	keymap *Keymap

	pendingKeys []string
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithKeymap sets the keymap used to resolve chords.
func WithKeymap(k *Keymap) ParserOption {
	return func(p *Parser) {
		p.keymap = k
	}
}

// NewParser creates a new parser in the idle state.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{pendingKeys: make([]string, 0, 8)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetKeymap replaces the keymap. Pending input is kept.
func (p *Parser) SetKeymap(k *Keymap) {
	p.keymap = k
}

// Reset clears all pending input.
func (p *Parser) Reset() {
	p.state = StateIdle
	p.count.Reset()
	p.chord = ChordNone
	p.pendingKeys = p.pendingKeys[:0]
}

// State returns the current parser state.
func (p *Parser) State() State {
	return p.state
}

// Pending returns the chord and count waiting for a parameter.
func (p *Parser) Pending() (Command, bool) {
	if p.state != StateAwaitParameter {
		return Command{}, false
	}
	return Command{Count: p.count.Raw(), Chord: p.chord}, true
}

// PendingKeys returns the pending key display string.
func (p *Parser) PendingKeys() string {
	return strings.Join(p.pendingKeys, "")
}

// Feed processes one key event.
func (p *Parser) Feed(ev key.Event) Result {
	if ev.IsEscape() {
		p.Reset()
		return Result{Status: StatusIgnored}
	}

	if p.state == StateAwaitParameter {
		if ev.IsRune() && !ev.IsModified() {
			return p.complete(StatusReady, ev.Rune)
		}
		// Anything that cannot be a literal character drops the pending
		// chord and is read as fresh input.
		p.Reset()
	}

	p.pendingKeys = append(p.pendingKeys, ev.VimString())

	if ev.IsRune() && !ev.IsModified() && p.count.AccumulateDigit(ev.Rune) {
		p.state = StateCount
		return p.pending(StatusCount)
	}

	c, ok := p.keymap.Resolve(ev)
	if !ok {
		p.Reset()
		return Result{Status: StatusIgnored}
	}
	d, _ := Lookup(c)

	p.chord = c
	if d.NeedsParameter {
		p.state = StateAwaitParameter
		return p.pending(StatusAwaitParameter)
	}
	return p.complete(StatusResolved, 0)
}

func (p *Parser) pending(status Status) Result {
	return Result{
		Status:  status,
		Command: Command{Count: p.count.Raw(), Chord: p.chord},
		Pending: p.PendingKeys(),
	}
}

func (p *Parser) complete(status Status, param rune) Result {
	cmd := Command{
		Count: p.count.Raw(),
		Chord: p.chord,
		Param: param,
	}
	p.Reset()
	return Result{Status: status, Command: cmd}
}
