package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingUI struct {
	warns []string
	notes []string
}

func (r *recordingUI) Warn(message string, tok Token) { r.warns = append(r.warns, message) }
func (r *recordingUI) Note(message string, tok Token) { r.notes = append(r.notes, message) }

func TestStreamMarkRestore(t *testing.T) {
	t.Parallel()
	s := New("a b c", nil)
	mark := s.Mark()
	first, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "a", first.Text)

	second, _ := s.Next()
	assert.Equal(t, "b", second.Text)

	s.Restore(mark)
	replay, _ := s.Next()
	assert.Equal(t, "a", replay.Text)
}

func TestStreamPeekDoesNotConsume(t *testing.T) {
	t.Parallel()
	s := New("interface Foo", nil)
	tok, ok := s.Peek(1)
	require.True(t, ok)
	assert.Equal(t, "Foo", tok.Text)
	assert.True(t, s.PeekSymbol("interface"))
	next, _ := s.Next()
	assert.Equal(t, "interface", next.Text)
}

func TestSeekSymbolIsNestingAware(t *testing.T) {
	t.Parallel()
	s := New("(a, (b, c)), d", nil)
	toks := s.SeekSymbol(",")
	// the inner comma must not terminate the seek; only the one at depth 0 does
	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"(", "a", ",", "(", "b", ",", "c", ")", ")"}, texts)
	assert.True(t, s.PeekSymbol(","))
}

func TestSyntaxErrorRecoversToSemicolonAndWarns(t *testing.T) {
	t.Parallel()
	ui := &recordingUI{}
	s := New("garbage; attribute long bar;", ui)
	skipped := s.SyntaxError("unexpected token")
	require.Len(t, ui.warns, 1)
	var texts []string
	for _, tok := range skipped {
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"garbage", ";"}, texts)
	assert.True(t, s.HasTokens())
	next, _ := s.Next()
	assert.Equal(t, "attribute", next.Text)
}

func TestSyntaxErrorLeavesClosingBraceUnconsumed(t *testing.T) {
	t.Parallel()
	ui := &recordingUI{}
	s := New("garbage }", ui)
	s.SyntaxError("unexpected token")
	assert.True(t, s.PeekSymbol("}"))
}
