package widl

import "github.com/webidl-tools/widlidl/token"

// Typedef is "typedef" TypeWithExtendedAttributes Identifier ";".
type Typedef struct {
	baseConstruct
	Type *Type
}

func peekTypedef(s *token.Stream) bool { return s.PeekSymbol("typedef") }

func newTypedef(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Typedef, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("typedef") {
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	typ, ok := newTypeWithExtendedAttributes(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, prod(typ))

	nameTok, ok := s.Peek(0)
	if !ok || nameTok.Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	n, _ := s.Next()
	parts = append(parts, namedTok(n))
	name := n.IdentName()

	parts = consumeSemicolon(s, parts, "expected ';' after typedef")

	t := &Typedef{
		baseConstruct: baseConstruct{
			parts: parts, idlType: "typedef", name: &name, parent: parent, extAttrs: attrs.attrsOrNil(),
		},
		Type: typ,
	}
	return t, true
}
