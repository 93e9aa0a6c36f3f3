package motion_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vimotion/internal/editor"
	"github.com/dshills/vimotion/internal/input/key"
	"github.com/dshills/vimotion/internal/motion"
)

func run(t *testing.T, s *motion.Session, seq string, mode motion.Mode) motion.Step {
	t.Helper()
	events, err := key.ParseSequence(seq)
	require.NoError(t, err)
	return s.HandleKeys(events, mode)
}

func TestSessionHandleKeys(t *testing.T) {
	b := editor.New("xaxaxa\nsecond line\nthird")
	s := motion.NewSession(b)

	step := run(t, s, "2fa", motion.ModeNavigate)
	assert.True(t, step.Dispatched)
	assert.Equal(t, motion.OutcomeApplied, step.Outcome)
	assert.Equal(t, pos(0, 3), b.Cursor())

	step = run(t, s, "G", motion.ModeNavigate)
	assert.Equal(t, pos(2, 0), b.Cursor())

	step = run(t, s, "gg", motion.ModeNavigate)
	assert.Equal(t, motion.OutcomeApplied, step.Outcome)
	assert.Equal(t, pos(0, 0), b.Cursor())

	step = run(t, s, "gm", motion.ModeNavigate)
	assert.True(t, step.Dispatched)
	assert.Equal(t, motion.OutcomeUnsupported, step.Outcome)

	step = run(t, s, "fq", motion.ModeNavigate)
	assert.Equal(t, motion.OutcomeNoMatch, step.Outcome)
}

func TestSessionPendingKeysDoNotDispatch(t *testing.T) {
	b := editor.New("abc")
	s := motion.NewSession(b)

	step := run(t, s, "3", motion.ModeNavigate)
	assert.False(t, step.Dispatched)
	assert.Equal(t, motion.StatusCount, step.Parse.Status)

	step = run(t, s, "t", motion.ModeNavigate)
	assert.False(t, step.Dispatched)
	assert.Equal(t, motion.StatusAwaitParameter, step.Parse.Status)
	assert.Equal(t, "3t", s.Parser().PendingKeys())

	step = run(t, s, "<Esc>", motion.ModeNavigate)
	assert.False(t, step.Dispatched)
	assert.Equal(t, motion.StateIdle, s.Parser().State())
	assert.Equal(t, pos(0, 0), b.Cursor())
}

func TestSessionSelectMode(t *testing.T) {
	b := editor.New("alpha beta\ngamma")
	s := motion.NewSession(b)

	run(t, s, "w", motion.ModeSelect)
	run(t, s, "j", motion.ModeSelect)
	assert.Equal(t, editor.Selection{Anchor: pos(0, 0), Head: pos(1, 5)}, b.Selection())

	run(t, s, "X", motion.ModeSelect)
	assert.Equal(t, "", b.Text())
	assert.False(t, b.HasSelection())
}

func TestSessionOpenLines(t *testing.T) {
	b := editor.New("one\ntwo")
	s := motion.NewSession(b)

	run(t, s, "3o", motion.ModeNavigate)
	assert.Equal(t, "one\n\n\n\ntwo", b.Text())

	run(t, s, "ggO", motion.ModeNavigate)
	assert.Equal(t, "\none\n\n\n\ntwo", b.Text())
	assert.Equal(t, pos(0, 0), b.Cursor())
}

func TestSessionKeymap(t *testing.T) {
	km := motion.NewKeymap()
	require.NoError(t, km.BindNames("<C-f>", "ctrl-d"))

	b := editor.New(numberedLines(50), editor.WithPageSize(5))
	s := motion.NewSession(b, motion.WithKeymap(km))
	assert.Same(t, b, s.Editor())

	run(t, s, "<C-f><C-f>", motion.ModeNavigate)
	assert.Equal(t, 10, b.Cursor().Row)

	run(t, s, "<C-u>", motion.ModeNavigate)
	assert.Equal(t, 5, b.Cursor().Row)
}

func TestSessionLargeCountsStayBounded(t *testing.T) {
	text := strings.TrimSuffix(strings.Repeat("alpha beta, gamma\n", 200), "\n")

	tests := []struct {
		name string
		seq  string
		mode motion.Mode
		want motion.Position
	}{
		{"word right", "1000000w", motion.ModeNavigate, pos(199, 17)},
		{"char right", "99999999l", motion.ModeNavigate, pos(199, 17)},
		{"line down", "99999999j", motion.ModeNavigate, pos(199, 0)},
		{"word left from end", "G$99999999b", motion.ModeNavigate, pos(0, 0)},
		{"select word right", "99999999w", motion.ModeSelect, pos(199, 17)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := editor.New(text)
			s := motion.NewSession(b)

			start := time.Now()
			step := run(t, s, tt.seq, tt.mode)
			elapsed := time.Since(start)

			assert.Equal(t, motion.OutcomeApplied, step.Outcome)
			assert.Equal(t, tt.want, b.Cursor())
			assert.Less(t, elapsed, 2*time.Second)
		})
	}
}

func TestSessionOpenLinesCountSaturates(t *testing.T) {
	b := editor.New("abc")
	s := motion.NewSession(b)

	run(t, s, "99999999o", motion.ModeNavigate)
	assert.Equal(t, 1+99999, b.LineCount())
	assert.Equal(t, pos(99999, 0), b.Cursor())
}
