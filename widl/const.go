package widl

import "github.com/webidl-tools/widlidl/token"

// Const is a "const" member: [ExtAttrs] "const" ConstType Identifier "="
// ConstValue ";". A constant declaration weighs 0 toward complexity,
// unlike every other member kind which contributes at least 1.
type Const struct {
	baseConstruct
	Type  *Type
	Value string
}

func (c *Const) ComplexityFactor() int { return 0 }

func peekConst(s *token.Stream) bool {
	return s.PeekSymbol("const")
}

func newConst(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Const, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("const") {
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	typ, ok := newConstType(s, parent)
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

	eq, ok := s.Peek(0)
	if !ok || !eq.Is("=") {
		s.Restore(mark)
		return nil, false
	}
	eqTok, _ := s.Next()
	parts = append(parts, tok(eqTok))

	if _, ok := s.Peek(0); !ok {
		s.Restore(mark)
		return nil, false
	}
	v, _ := s.Next()
	parts = append(parts, tok(v))

	parts = consumeSemicolon(s, parts, "expected ';' after const declaration")

	c := &Const{
		baseConstruct: baseConstruct{
			parts:    parts,
			idlType:  "const",
			name:     &name,
			parent:   parent,
			extAttrs: attrs.attrsOrNil(),
		},
		Type:  typ,
		Value: v.Text,
	}
	return c, true
}

// newConstType matches PrimitiveType or a plain identifier (an
// enumeration or typedef name), which is the ConstType grammar.
func newConstType(s *token.Stream, parent Construct) (*Type, bool) {
	if t, ok := newSingleType(s, parent); ok && (t.Kind == TypePrimitive || t.Kind == TypeNamed) {
		return t, true
	}
	return nil, false
}
