// Package widl implements the WebIDL production and construct layers in a
// single package. The two layers are mutually recursive (a Const
// production is built from inside an Interface construct, an Argument
// construct owns a Type production which can itself reference argument
// lists); Go cannot express a mutual import across packages, so both
// layers, plus the markup driver, live here, split by file.
package widl

import (
	"strings"

	"github.com/webidl-tools/widlidl/token"
)

// Production is anything that can reproduce its own exact source text.
// Every production and construct in this package satisfies it.
type Production interface {
	String() string
}

// part is one piece of a production's reconstructed source text: either a
// token consumed directly (rendered as its leading trivia followed by its
// text) or a nested Production (rendered via its own String()). Tracking
// parts in consumption order, rather than a field per grammar symbol, is
// what lets every production reconstruct exact source text from one
// shared helper instead of a hand-written serializer per node kind.
type part any

func renderParts(parts []part) string {
	var b strings.Builder
	for _, p := range parts {
		switch v := p.(type) {
		case token.Token:
			b.WriteString(v.Leading)
			b.WriteString(v.Text)
		case namedTokenPart:
			b.WriteString(v.t.Leading)
			b.WriteString(v.t.Text)
		case enumValueTokenPart:
			b.WriteString(v.t.Leading)
			b.WriteString(v.t.Text)
		case Production:
			if v != nil {
				b.WriteString(v.String())
			}
		case string:
			b.WriteString(v)
		}
	}
	return b.String()
}

// tok wraps a consumed token.Token as a part.
func tok(t token.Token) part { return t }

// namedTokenPart tags a consumed identifier token as the "name" syntactic
// category the markup driver recognizes: the declared
// identifier of whatever construct or production owns it, as opposed to
// a keyword, type name, or plain punctuation. Renders identically to a
// plain tok(); the wrapper only exists so the markup walker can tell them
// apart without re-parsing.
type namedTokenPart struct{ t token.Token }

func namedTok(t token.Token) part { return namedTokenPart{t} }

// enumValueTokenPart tags a string-literal token inside an EnumValueList
// as the "enum value" markup category.
type enumValueTokenPart struct{ t token.Token }

func enumValueTok(t token.Token) part { return enumValueTokenPart{t} }

// partsHolder is implemented by every production/construct that keeps
// its consumed parts in source order, letting the markup driver walk the
// tree structurally without re-tokenizing.
type partsHolder interface {
	Parts() []part
}

// prod wraps any Production as a part. It does not filter nil: callers
// check optional productions (such as an absent extended attribute list)
// before appending them.
func prod(p Production) part { return p }

// consumeSemicolon absorbs a member's terminating ";". When the next
// token is something else, any stray tokens up to the statement boundary
// are captured into parts (so the source still round-trips) and reported
// through warn; a following "}" belongs to the enclosing construct and is
// left alone.
func consumeSemicolon(s *token.Stream, parts []part, message string) []part {
	if s.PeekSymbol(";") {
		t, _ := s.Next()
		return append(parts, tok(t))
	}
	if s.PeekSymbol("}") || !s.HasTokens() {
		return parts
	}
	for _, t := range s.SyntaxError(message) {
		parts = append(parts, tok(t))
	}
	return parts
}
