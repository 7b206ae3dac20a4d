package widl

import (
	"strings"

	"github.com/webidl-tools/widlidl/token"
)

// specialKeywords are the WebIDL special-operation prefixes, including
// the legacy "creator".
var specialKeywords = map[string]bool{
	"getter": true, "setter": true, "creator": true, "deleter": true,
	"legacycaller": true,
}

// operationNameKeywords are the keywords additionally permitted as
// operation names.
var operationNameKeywords = map[string]bool{
	"includes": true,
}

// Operation is an interface method: [Special]... Type [OperationName]
// "(" ArgumentList ")" ";", plus the "static" and modern
// "constructor(...)" member forms which share the same surface.
// Anonymous special operations (a bare getter, an argument-only
// legacycaller) have no name.
type Operation struct {
	baseConstruct
	Specials   []string
	Static     bool
	ReturnType *Type // nil for the constructor member form
	Args       *ArgumentList
}

func (o *Operation) Arguments() *ArgumentList { return o.Args }

// MethodName is the canonical "name(arg1, arg2)" form with every
// argument included; anonymous operations use an empty identifier.
func (o *Operation) MethodName() (string, bool) {
	return methodName(o, o.Args), true
}

// MethodNames lists every legal call-site variant, full form first,
// then each trailing optional or variadic argument dropped in turn.
func (o *Operation) MethodNames() []string {
	return methodNames(o, o.Args)
}

func methodName(c Construct, args *ArgumentList) string {
	name, _ := c.Name()
	if args == nil {
		return name + "()"
	}
	return name + "(" + strings.Join(args.names(), ", ") + ")"
}

func methodNames(c Construct, args *ArgumentList) []string {
	name, _ := c.Name()
	if args == nil {
		return []string{name + "()"}
	}
	var out []string
	for _, variant := range args.normalizedNames() {
		out = append(out, name+"("+strings.Join(variant, ", ")+")")
	}
	return out
}

func (o *Operation) MatchesArgumentNames(names []string) bool {
	if o.Args == nil {
		return len(names) == 0
	}
	return o.Args.matchesNames(names)
}

func (o *Operation) FindArgument(name string, searchMembers bool) Construct {
	if o.Args == nil {
		return nil
	}
	return o.Args.findByName(name)
}

func (o *Operation) FindArguments(name string, searchMembers bool) []Construct {
	if o.Args == nil {
		return nil
	}
	return o.Args.findAllByName(name)
}

func peekOperation(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	if _, ok := newType(s, nil); !ok {
		return false
	}
	return peekOperationRest(s)
}

func peekSpecialOperation(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	t, ok := s.Peek(0)
	if !ok || t.Kind != token.Symbol || !specialKeywords[t.Text] {
		return false
	}
	for {
		t, ok = s.Peek(0)
		if !ok || t.Kind != token.Symbol || !specialKeywords[t.Text] {
			break
		}
		s.Next()
	}
	if _, ok := newType(s, nil); !ok {
		return false
	}
	return peekOperationRest(s)
}

func peekOperationRest(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	if t, ok := s.Peek(0); ok && (t.Kind == token.Identifier || (t.Kind == token.Symbol && operationNameKeywords[t.Text])) {
		s.Next()
	}
	return s.PeekSymbol("(")
}

func newOperation(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Operation, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	var specials []string
	for {
		t, ok := s.Peek(0)
		if !ok || t.Kind != token.Symbol || !specialKeywords[t.Text] {
			break
		}
		st, _ := s.Next()
		parts = append(parts, tok(st))
		specials = append(specials, st.Text)
	}

	ret, ok := newType(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, prod(ret))

	parts, name, args, ok := newOperationRest(s, parent, parts)
	if !ok {
		s.Restore(mark)
		return nil, false
	}

	op := &Operation{
		baseConstruct: baseConstruct{parts: parts, idlType: "method", name: name, parent: parent, extAttrs: attrs.attrsOrNil()},
		Specials:      specials,
		ReturnType:    ret,
		Args:          args,
	}
	return op, true
}

// newOperationRest parses [OperationName] "(" ArgumentList ")" ";" onto
// the caller's accumulated parts.
func newOperationRest(s *token.Stream, parent Construct, parts []part) ([]part, *string, *ArgumentList, bool) {
	mark := s.Mark()

	var name *string
	if t, ok := s.Peek(0); ok && (t.Kind == token.Identifier || (t.Kind == token.Symbol && operationNameKeywords[t.Text])) {
		nt, _ := s.Next()
		parts = append(parts, namedTok(nt))
		n := nt.IdentName()
		name = &n
	}

	open, ok := s.Peek(0)
	if !ok || !open.Is("(") {
		s.Restore(mark)
		return nil, nil, nil, false
	}
	openTok, _ := s.Next()
	parts = append(parts, tok(openTok))

	args, _ := newArgumentList(s, parent)
	parts = append(parts, prod(args))

	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is(")") {
		s.Restore(mark)
		return nil, nil, nil, false
	}
	close_, _ := s.Next()
	parts = append(parts, tok(close_))

	parts = consumeSemicolon(s, parts, "expected ';' after operation")
	return parts, name, args, true
}

func peekConstructorMember(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	return s.ConsumeSymbol("constructor") && s.PeekSymbol("(")
}

// newConstructorMember parses the modern "constructor(...)" member form
// as an Operation named constructor with no return type.
func newConstructorMember(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Operation, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("constructor") {
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, namedTok(kwTok))

	parts, _, args, ok := newOperationRest(s, parent, parts)
	if !ok {
		s.Restore(mark)
		return nil, false
	}

	name := "constructor"
	return &Operation{
		baseConstruct: baseConstruct{parts: parts, idlType: "method", name: &name, parent: parent, extAttrs: attrs.attrsOrNil()},
		Args:          args,
	}, true
}

func peekStaticMember(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	if !s.ConsumeSymbol("static") {
		return false
	}
	if peekAttributeRest(s) {
		return true
	}
	return peekOperation(s)
}

// newStaticMember parses "static" (AttributeRest | Type OperationRest),
// yielding an Attribute or an Operation with Static set.
func newStaticMember(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (Construct, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("static") {
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	if peekAttributeRest(s) {
		a, ok := newAttributeRest(s, parent, parts)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		a.Static = true
		a.extAttrs = attrs.attrsOrNil()
		return a, true
	}

	ret, ok := newType(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, prod(ret))

	parts, name, args, ok := newOperationRest(s, parent, parts)
	if !ok {
		s.Restore(mark)
		return nil, false
	}

	return &Operation{
		baseConstruct: baseConstruct{parts: parts, idlType: "method", name: name, parent: parent, extAttrs: attrs.attrsOrNil()},
		Static:        true,
		ReturnType:    ret,
		Args:          args,
	}, true
}
