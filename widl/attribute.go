package widl

import "github.com/webidl-tools/widlidl/token"

// attributeNameKeywords are the keywords additionally permitted as
// attribute names.
var attributeNameKeywords = map[string]bool{
	"async": true, "required": true,
}

// Attribute is an interface attribute member: [ExtAttrs] ["inherit"]
// ["static"] ["readonly"] "attribute" TypeWithExtendedAttributes
// AttributeName ";". The static form arrives via the static-member
// dispatch in interface member parsing, the stringifier-attribute form
// via the stringifier dispatch; both collapse onto this one struct with
// a flag.
type Attribute struct {
	baseConstruct
	Inherit     bool
	Static      bool
	Stringifier bool
	ReadOnly    bool
	Type        *Type
}

func peekAttribute(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	s.ConsumeSymbol("inherit")
	return peekAttributeRest(s)
}

func peekAttributeRest(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	s.ConsumeSymbol("readonly")
	return s.PeekSymbol("attribute")
}

func newAttribute(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Attribute, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	inherit := false
	if s.PeekSymbol("inherit") {
		t, _ := s.Next()
		parts = append(parts, tok(t))
		inherit = true
	}

	a, ok := newAttributeRest(s, parent, parts)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	a.Inherit = inherit
	a.extAttrs = attrs.attrsOrNil()
	return a, true
}

// newAttributeRest parses ["readonly"] "attribute" Type AttributeName
// ";" onto an Attribute seeded with the caller's leading parts.
func newAttributeRest(s *token.Stream, parent Construct, parts []part) (*Attribute, bool) {
	mark := s.Mark()

	readonly := false
	if s.PeekSymbol("readonly") {
		t, _ := s.Next()
		parts = append(parts, tok(t))
		readonly = true
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("attribute") {
		s.Restore(mark)
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

	nameTok, ok := newAttributeNameToken(s)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, namedTok(nameTok))
	name := nameTok.IdentName()

	parts = consumeSemicolon(s, parts, "expected ';' after attribute")

	return &Attribute{
		baseConstruct: baseConstruct{parts: parts, idlType: "attribute", name: &name, parent: parent},
		ReadOnly:      readonly,
		Type:          typ,
	}, true
}

func newAttributeNameToken(s *token.Stream) (token.Token, bool) {
	t, ok := s.Peek(0)
	if !ok {
		return token.Token{}, false
	}
	if t.Kind == token.Identifier || (t.Kind == token.Symbol && attributeNameKeywords[t.Text]) {
		tok_, _ := s.Next()
		return tok_, true
	}
	return token.Token{}, false
}
