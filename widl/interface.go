package widl

import "github.com/webidl-tools/widlidl/token"

// Interface is ["partial"] "interface" Identifier [Inheritance] "{"
// [InterfaceMember]... "}" ";". Constructor-form extended attributes are
// prepended to Members but rendered only through the attribute list, so
// serialization stays exact.
type Interface struct {
	containerConstruct
	Partial     bool
	Inheritance *Inheritance
}

func peekInterface(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	s.ConsumeSymbol("partial")
	if !s.ConsumeSymbol("interface") {
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

func newInterface(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Interface, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	iface := &Interface{}

	if s.PeekSymbol("partial") {
		t, _ := s.Next()
		parts = append(parts, tok(t))
		iface.Partial = true
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("interface") {
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
		iface.Inheritance = inh
	}

	open, ok := s.Peek(0)
	if !ok || !open.Is("{") {
		s.Restore(mark)
		return nil, false
	}
	openTok, _ := s.Next()
	parts = append(parts, tok(openTok))

	iface.baseConstruct = baseConstruct{
		idlType: "interface", name: &name, parent: parent, extAttrs: attrs.attrsOrNil(),
	}

	// Constructor attributes come first in the member list; they are
	// already rendered inside the extended attribute list above.
	for _, ctor := range iface.Constructors() {
		ctor.parent = iface
		iface.members = append(iface.members, ctor)
	}

	closed := false
	for s.HasTokens() {
		if s.PeekSymbol("}") {
			c, _ := s.Next()
			parts = append(parts, tok(c))
			closed = true
			break
		}
		member := newInterfaceMember(s, iface)
		iface.members = append(iface.members, member)
		parts = append(parts, prod(member))
	}
	if !closed {
		s.Warn("end of input inside interface "+name, openTok)
	}

	parts = consumeSemicolon(s, parts, "expected ';' after interface")
	iface.parts = parts
	return iface, true
}

// newInterfaceMember dispatches one member, substituting a SyntaxError
// construct (and advancing to the next ";" or the closing "}") when
// nothing matches.
func newInterfaceMember(s *token.Stream, parent Construct) Construct {
	mark := s.Mark()
	attrs, _ := newExtendedAttributeList(s, parent)

	var member Construct
	var ok bool
	switch {
	case peekConstructorMember(s):
		member, ok = newConstructorMember(s, parent, attrs)
	case peekConst(s):
		member, ok = newConst(s, parent, attrs)
	case peekSerializer(s):
		member, ok = newSerializer(s, parent, attrs)
	case peekStringifier(s):
		member, ok = newStringifier(s, parent, attrs)
	case peekStaticMember(s):
		member, ok = newStaticMember(s, parent, attrs)
	case peekIterable(s):
		member, ok = newIterable(s, parent, attrs)
	case peekMaplike(s):
		member, ok = newMaplike(s, parent, attrs)
	case peekSetlike(s):
		member, ok = newSetlike(s, parent, attrs)
	case peekAttribute(s):
		member, ok = newAttribute(s, parent, attrs)
	case peekSpecialOperation(s) || peekOperation(s):
		member, ok = newOperation(s, parent, attrs)
	}
	if ok {
		return member
	}

	s.Restore(mark)
	return newSyntaxErrorConstruct(s, parent, "could not parse interface member")
}
