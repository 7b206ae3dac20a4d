package widl

import "github.com/webidl-tools/widlidl/token"

// DictionaryMember is [ExtAttrs] ["required"] TypeWithExtendedAttributes
// Identifier [Default] ";".
type DictionaryMember struct {
	baseConstruct
	Required bool
	Type     *Type
	Default  *Default
}

func newDictionaryMember(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*DictionaryMember, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	required := false
	if s.PeekSymbol("required") {
		t, _ := s.Next()
		parts = append(parts, tok(t))
		required = true
	}

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

	m := &DictionaryMember{
		baseConstruct: baseConstruct{idlType: "dict-member", name: &name, parent: parent, extAttrs: attrs.attrsOrNil()},
		Required:      required,
		Type:          typ,
	}
	if def, ok := newDefault(s, parent); ok {
		parts = append(parts, prod(def))
		m.Default = def
	}

	parts = consumeSemicolon(s, parts, "expected ';' after dictionary member")
	m.parts = parts
	return m, true
}

// Dictionary is ["partial"] "dictionary" Identifier [Inheritance] "{"
// [DictionaryMember]... "}" ";".
type Dictionary struct {
	containerConstruct
	Partial     bool
	Inheritance *Inheritance
}

// RequiredMembers reports whether any member is declared required.
func (d *Dictionary) RequiredMembers() bool {
	for _, m := range d.members {
		if dm, ok := m.(*DictionaryMember); ok && dm.Required {
			return true
		}
	}
	return false
}

func peekDictionary(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	s.ConsumeSymbol("partial")
	if !s.ConsumeSymbol("dictionary") {
		return false
	}
	t, ok := s.Peek(0)
	if !ok || t.Kind != token.Identifier {
		return false
	}
	s.Next()
	newInheritance(s)
	return s.PeekSymbol("{")
}

func newDictionary(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Dictionary, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	d := &Dictionary{}

	if s.PeekSymbol("partial") {
		t, _ := s.Next()
		parts = append(parts, tok(t))
		d.Partial = true
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("dictionary") {
		s.Restore(mark)
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	nameTok, ok := s.Peek(0)
	if !ok || nameTok.Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	n, _ := s.Next()
	parts = append(parts, namedTok(n))
	name := n.IdentName()

	if inh, ok := newInheritance(s); ok {
		parts = append(parts, prod(inh))
		d.Inheritance = inh
	}

	open, ok := s.Peek(0)
	if !ok || !open.Is("{") {
		s.Restore(mark)
		return nil, false
	}
	openTok, _ := s.Next()
	parts = append(parts, tok(openTok))

	d.baseConstruct = baseConstruct{
		idlType: "dictionary", name: &name, parent: parent, extAttrs: attrs.attrsOrNil(),
	}

	closed := false
	for s.HasTokens() {
		if s.PeekSymbol("}") {
			c, _ := s.Next()
			parts = append(parts, tok(c))
			closed = true
			break
		}
		mmark := s.Mark()
		mattrs, _ := newExtendedAttributeList(s, d)
		member, ok := newDictionaryMember(s, d, mattrs)
		if !ok {
			s.Restore(mmark)
			d.members = append(d.members, newSyntaxErrorConstruct(s, d, "could not parse dictionary member"))
			parts = append(parts, prod(d.members[len(d.members)-1]))
			continue
		}
		d.members = append(d.members, member)
		parts = append(parts, prod(member))
	}
	if !closed {
		s.Warn("end of input inside dictionary "+name, openTok)
	}

	parts = consumeSemicolon(s, parts, "expected ';' after dictionary")
	d.parts = parts
	return d, true
}
