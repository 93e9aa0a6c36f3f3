package motion

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/vimotion/internal/input/key"
)

// feed parses a key sequence and returns every result.
func feed(t *testing.T, p *Parser, seq string) []Result {
	t.Helper()
	events, err := key.ParseSequence(seq)
	require.NoError(t, err)
	results := make([]Result, 0, len(events))
	for _, ev := range events {
		results = append(results, p.Feed(ev))
	}
	return results
}

func TestParserCommands(t *testing.T) {
	tests := []struct {
		input  string
		status Status
		cmd    Command
	}{
		{"w", StatusResolved, Command{Chord: ChordWordRight}},
		{"b", StatusResolved, Command{Chord: ChordWordLeft}},
		{"5j", StatusResolved, Command{Count: 5, Chord: ChordLineDown}},
		{"10k", StatusResolved, Command{Count: 10, Chord: ChordLineUp}},
		{"0", StatusResolved, Command{Chord: ChordColumnZero}},
		{"20l", StatusResolved, Command{Count: 20, Chord: ChordCharRight}},
		{"^", StatusResolved, Command{Chord: ChordLineStart}},
		{"$", StatusResolved, Command{Chord: ChordLineEnd}},
		{"X", StatusResolved, Command{Chord: ChordDeleteLeft}},
		{"G", StatusResolved, Command{Chord: ChordGotoLine}},
		{"12G", StatusResolved, Command{Count: 12, Chord: ChordGotoLine}},
		{"<C-d>", StatusResolved, Command{Chord: ChordPageDown}},
		{"<C-u>", StatusResolved, Command{Chord: ChordPageUp}},
		{"3o", StatusResolved, Command{Count: 3, Chord: ChordOpenBelow}},
		{"O", StatusResolved, Command{Chord: ChordOpenAbove}},
		{"fa", StatusReady, Command{Chord: ChordFind, Param: 'a'}},
		{"2fa", StatusReady, Command{Count: 2, Chord: ChordFind, Param: 'a'}},
		{"tx", StatusReady, Command{Chord: ChordTill, Param: 'x'}},
		{"ff", StatusReady, Command{Chord: ChordFind, Param: 'f'}},
		{"f3", StatusReady, Command{Chord: ChordFind, Param: '3'}},
		{"f0", StatusReady, Command{Chord: ChordFind, Param: '0'}},
		{"f<Space>", StatusReady, Command{Chord: ChordFind, Param: ' '}},
		{"gg", StatusReady, Command{Chord: ChordG, Param: 'g'}},
		{"7gg", StatusReady, Command{Count: 7, Chord: ChordG, Param: 'g'}},
		{"gm", StatusReady, Command{Chord: ChordG, Param: 'm'}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := NewParser()
			results := feed(t, p, tt.input)
			got := results[len(results)-1]

			want := Result{Status: tt.status, Command: tt.cmd}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, StateIdle, p.State())
			assert.Empty(t, p.PendingKeys())
		})
	}
}

func TestParserCountStates(t *testing.T) {
	p := NewParser()
	results := feed(t, p, "12")
	assert.Equal(t, StatusCount, results[0].Status)
	assert.Equal(t, StatusCount, results[1].Status)
	assert.Equal(t, 12, results[1].Command.Count)
	assert.Equal(t, "12", results[1].Pending)
	assert.Equal(t, StateCount, p.State())
}

func TestParserAwaitParameter(t *testing.T) {
	p := NewParser()
	results := feed(t, p, "3f")
	assert.Equal(t, StatusAwaitParameter, results[1].Status)
	assert.Equal(t, "3f", results[1].Pending)
	assert.Equal(t, StateAwaitParameter, p.State())

	pending, ok := p.Pending()
	require.True(t, ok)
	assert.Equal(t, Command{Count: 3, Chord: ChordFind}, pending)

	res := feed(t, p, "q")[0]
	assert.Equal(t, StatusReady, res.Status)
	assert.Equal(t, Command{Count: 3, Chord: ChordFind, Param: 'q'}, res.Command)

	_, ok = p.Pending()
	assert.False(t, ok)
}

func TestParserEscapeClearsPending(t *testing.T) {
	p := NewParser()
	feed(t, p, "4f")
	res := feed(t, p, "<Esc>")[0]
	assert.Equal(t, StatusIgnored, res.Status)
	assert.Equal(t, StateIdle, p.State())

	res = feed(t, p, "j")[0]
	assert.Equal(t, Command{Chord: ChordLineDown}, res.Command, "count was discarded")
}

func TestParserChordOverwritesPendingParameter(t *testing.T) {
	p := NewParser()
	results := feed(t, p, "2t<C-d>")
	last := results[len(results)-1]
	assert.Equal(t, StatusResolved, last.Status)
	assert.Equal(t, Command{Chord: ChordPageDown}, last.Command)
	assert.Equal(t, StateIdle, p.State())

	results = feed(t, p, "f<Down>")
	assert.Equal(t, StatusIgnored, results[1].Status)
	assert.Equal(t, StateIdle, p.State())
}

func TestParserUnknownChordDiscardsCount(t *testing.T) {
	p := NewParser()
	results := feed(t, p, "5zj")
	assert.Equal(t, StatusIgnored, results[1].Status)
	assert.Equal(t, StatusResolved, results[2].Status)
	assert.Equal(t, 0, results[2].Command.Count)

	for _, seq := range []string{"q", "<F1>", "<A-w>", "<C-z>", "<Up>"} {
		res := feed(t, p, seq)
		assert.Equal(t, StatusIgnored, res[0].Status, seq)
		assert.Equal(t, StateIdle, p.State(), seq)
	}
}

func TestParserKeymap(t *testing.T) {
	km := NewKeymap()
	require.NoError(t, km.Bind("<C-f>", ChordPageDown))
	require.NoError(t, km.BindNames("<Down>", "j"))

	p := NewParser(WithKeymap(km))
	res := feed(t, p, "<C-f>")[0]
	assert.Equal(t, Command{Chord: ChordPageDown}, res.Command)

	results := feed(t, p, "3<Down>")
	assert.Equal(t, Command{Count: 3, Chord: ChordLineDown}, results[1].Command)

	res = feed(t, p, "<C-d>")[0]
	assert.Equal(t, ChordPageDown, res.Command.Chord, "built-in chords still resolve")
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, "awaitParameter", StatusAwaitParameter.String())
	assert.True(t, StatusReady.Executable())
	assert.True(t, StatusResolved.Executable())
	assert.False(t, StatusCount.Executable())
	assert.Equal(t, "count", StateCount.String())
}
