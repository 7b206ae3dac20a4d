package widl

import "github.com/webidl-tools/widlidl/token"

// Callback is either a callback interface ("callback" Interface) or a
// function callback: "callback" Identifier "=" Type "(" ArgumentList ")"
// ";". For the interface form Iface is non-nil and member queries
// delegate to it; for the function form ReturnType and Args are
// populated directly.
type Callback struct {
	baseConstruct
	Iface      *Interface
	ReturnType *Type
	Args       *ArgumentList
}

func (c *Callback) Arguments() *ArgumentList { return c.Args }

func (c *Callback) ComplexityFactor() int {
	if c.Iface != nil {
		return c.Iface.ComplexityFactor()
	}
	return 1
}

func (c *Callback) Members() []Construct {
	if c.Iface == nil {
		return nil
	}
	return c.Iface.Members()
}

func (c *Callback) FindMember(name string) Construct {
	if c.Iface == nil {
		return nil
	}
	return c.Iface.FindMember(name)
}

func (c *Callback) FindMembers(name string) []Construct {
	if c.Iface == nil {
		return nil
	}
	return c.Iface.FindMembers(name)
}

func (c *Callback) FindMethod(name string, argNames []string) Construct {
	if c.Iface == nil {
		return nil
	}
	return c.Iface.FindMethod(name, argNames)
}

func (c *Callback) FindMethods(name string, argNames []string) []Construct {
	if c.Iface == nil {
		return nil
	}
	return c.Iface.FindMethods(name, argNames)
}

func (c *Callback) FindArgument(name string, searchMembers bool) Construct {
	if c.Args != nil {
		if a := c.Args.findByName(name); a != nil {
			return a
		}
	}
	if c.Iface != nil && searchMembers {
		return c.Iface.FindArgument(name, true)
	}
	return nil
}

func (c *Callback) FindArguments(name string, searchMembers bool) []Construct {
	var out []Construct
	if c.Args != nil {
		out = append(out, c.Args.findAllByName(name)...)
	}
	if c.Iface != nil && searchMembers {
		out = append(out, c.Iface.FindArguments(name, true)...)
	}
	return out
}

func peekCallback(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	if !s.ConsumeSymbol("callback") {
		return false
	}
	if peekInterface(s) {
		return true
	}
	t, ok := s.Peek(0)
	if !ok || t.Kind != token.Identifier {
		return false
	}
	s.Next()
	return s.PeekSymbol("=")
}

func newCallback(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Callback, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("callback") {
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	if peekInterface(s) {
		iface, ok := newInterface(s, nil, nil)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		parts = append(parts, prod(iface))
		cb := &Callback{Iface: iface}
		name, _ := iface.Name()
		cb.baseConstruct = baseConstruct{
			parts: parts, idlType: "callback", name: &name, parent: parent, extAttrs: attrs.attrsOrNil(),
		}
		iface.parent = cb
		return cb, true
	}

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

	ret, ok := newType(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, prod(ret))

	open, ok := s.Peek(0)
	if !ok || !open.Is("(") {
		s.Restore(mark)
		return nil, false
	}
	openTok, _ := s.Next()
	parts = append(parts, tok(openTok))

	cb := &Callback{ReturnType: ret}
	args, _ := newArgumentList(s, cb)
	parts = append(parts, prod(args))
	cb.Args = args

	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is(")") {
		s.Restore(mark)
		return nil, false
	}
	close_, _ := s.Next()
	parts = append(parts, tok(close_))

	parts = consumeSemicolon(s, parts, "expected ';' after callback")
	cb.baseConstruct = baseConstruct{
		parts: parts, idlType: "callback", name: &name, parent: parent, extAttrs: attrs.attrsOrNil(),
	}
	return cb, true
}
