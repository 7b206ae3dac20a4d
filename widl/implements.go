package widl

import "github.com/webidl-tools/widlidl/token"

// ImplementsStatement is the legacy Identifier "implements" Identifier
// ";" statement; its acceptance is reported through note.
type ImplementsStatement struct {
	baseConstruct
	Implements string
}

func peekImplements(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	t, ok := s.Peek(0)
	if !ok || t.Kind != token.Identifier {
		return false
	}
	s.Next()
	return s.PeekSymbol("implements")
}

func newImplements(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*ImplementsStatement, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	nameTok, ok := s.Peek(0)
	if !ok || nameTok.Kind != token.Identifier {
		return nil, false
	}
	n, _ := s.Next()
	parts = append(parts, namedTok(n))
	name := n.IdentName()

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("implements") {
		s.Restore(mark)
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	target, ok := s.Peek(0)
	if !ok || target.Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	tt, _ := s.Next()
	parts = append(parts, tok(tt))

	parts = consumeSemicolon(s, parts, "expected ';' after implements statement")
	s.Note("legacy implements statement accepted", kwTok)

	return &ImplementsStatement{
		baseConstruct: baseConstruct{parts: parts, idlType: "implements", name: &name, parent: parent, extAttrs: attrs.attrsOrNil()},
		Implements:    tt.IdentName(),
	}, true
}

// IncludesStatement is Identifier "includes" Identifier ";".
type IncludesStatement struct {
	baseConstruct
	Includes string
}

func peekIncludes(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	t, ok := s.Peek(0)
	if !ok || t.Kind != token.Identifier {
		return false
	}
	s.Next()
	return s.PeekSymbol("includes")
}

func newIncludes(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*IncludesStatement, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	nameTok, ok := s.Peek(0)
	if !ok || nameTok.Kind != token.Identifier {
		return nil, false
	}
	n, _ := s.Next()
	parts = append(parts, namedTok(n))
	name := n.IdentName()

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("includes") {
		s.Restore(mark)
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	target, ok := s.Peek(0)
	if !ok || target.Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	tt, _ := s.Next()
	parts = append(parts, tok(tt))

	parts = consumeSemicolon(s, parts, "expected ';' after includes statement")

	return &IncludesStatement{
		baseConstruct: baseConstruct{parts: parts, idlType: "includes", name: &name, parent: parent, extAttrs: attrs.attrsOrNil()},
		Includes:      tt.IdentName(),
	}, true
}
