package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []Token) []Kind {
	ks := make([]Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func texts(toks []Token) []string {
	ts := make([]string, len(toks))
	for i, t := range toks {
		ts[i] = t.Text
	}
	return ts
}

func TestTokenizeBasic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantText []string
		wantKind []Kind
	}{
		{
			name:     "interface header",
			input:    "interface Foo {",
			wantText: []string{"interface", "Foo", "{", ""},
			wantKind: []Kind{Symbol, Identifier, Symbol, EOF},
		},
		{
			name:     "escaped identifier keeps underscore in text",
			input:    "_interface",
			wantText: []string{"_interface", ""},
			wantKind: []Kind{Identifier, EOF},
		},
		{
			name:     "string literal",
			input:    `"hello world"`,
			wantText: []string{`"hello world"`, ""},
			wantKind: []Kind{String, EOF},
		},
		{
			name:     "integer and float",
			input:    "42 3.14",
			wantText: []string{"42", "3.14", ""},
			wantKind: []Kind{Integer, Float, EOF},
		},
		{
			name:     "special float literals",
			input:    "Infinity -Infinity NaN .5",
			wantText: []string{"Infinity", "-Infinity", "NaN", ".5", ""},
			wantKind: []Kind{Float, Float, Float, Float, EOF},
		},
		{
			name:     "hex and octal integers",
			input:    "0x1F 0755",
			wantText: []string{"0x1F", "0755", ""},
			wantKind: []Kind{Integer, Integer, EOF},
		},
		{
			name:     "ellipsis and double colon",
			input:    "... ::",
			wantText: []string{"...", "::", ""},
			wantKind: []Kind{Symbol, Symbol, EOF},
		},
		{
			name:     "line comment is trivia",
			input:    "Foo // trailing\nBar",
			wantText: []string{"Foo", "Bar", ""},
			wantKind: []Kind{Identifier, Identifier, EOF},
		},
		{
			name:     "block comment is trivia",
			input:    "Foo /* c */ Bar",
			wantText: []string{"Foo", "Bar", ""},
			wantKind: []Kind{Identifier, Identifier, EOF},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			toks := Tokenize(tt.input)
			require.Equal(t, tt.wantText, texts(toks))
			assert.Equal(t, tt.wantKind, kinds(toks))
		})
	}
}

func TestIdentNameStripsEscapeUnderscore(t *testing.T) {
	t.Parallel()
	toks := Tokenize("_interface plain")
	require.Len(t, toks, 3)
	assert.Equal(t, "interface", toks[0].IdentName())
	assert.Equal(t, "plain", toks[1].IdentName())
}

func TestTokenizePreservesLeadingTrivia(t *testing.T) {
	t.Parallel()
	toks := Tokenize("  Foo")
	require.Len(t, toks, 2)
	assert.Equal(t, "  ", toks[0].Leading)
	assert.Equal(t, "Foo", toks[0].Text)
}

func TestRoundTripReconstruction(t *testing.T) {
	t.Parallel()
	input := "  interface  Foo {\n  attribute long bar;\n};  "
	toks := Tokenize(input)
	var rebuilt string
	for _, tok := range toks {
		rebuilt += tok.Leading + tok.Text
	}
	assert.Equal(t, input, rebuilt)
}
