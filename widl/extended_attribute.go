package widl

import (
	"strings"

	"github.com/webidl-tools/widlidl/token"
)

// ExtAttrForm is the canonical shape an ExtendedAttribute was classified
// into, represented as one tagged struct instead of one node type per
// form, since every form shares the same String()/Name() surface and
// only differs in which fields are populated.
type ExtAttrForm int

const (
	FormUnknown ExtAttrForm = iota
	FormNoArgs
	FormIdent
	FormArgList
	FormNamedArgList
	FormTypePair
)

// ExtendedAttribute is one `[Name]`, `[Name=Value]`, `[Name(Args)]`, ...
// entry inside an ExtendedAttributeList.
type ExtendedAttribute struct {
	parts    []part
	Form     ExtAttrForm
	AttrName string
	Values   []string      // Ident/IdentList form: the identifier(s) after "="
	Args     *ArgumentList // ArgList/NamedArgList form
	TypePair [2]*Type      // TypePair form
	Raw      []token.Token // Unknown form: captured verbatim
	parent   Construct
}

func (e *ExtendedAttribute) String() string { return renderParts(e.parts) }
func (e *ExtendedAttribute) Parts() []part  { return e.parts }

// IsConstructor reports whether this attribute declares a constructor or
// legacy factory function. Two detection rules apply depending on the
// form actually matched: the NoArgs/ArgList forms use the literal
// attribute name "Constructor"; the Ident/NamedArgList forms instead use
// "LegacyFactoryFunction" or "NamedConstructor", since those carry their
// own distinct name rather than borrowing the parent interface's name.
func (e *ExtendedAttribute) IsConstructor() bool {
	switch e.Form {
	case FormNoArgs, FormArgList:
		return e.AttrName == "Constructor"
	case FormIdent, FormNamedArgList:
		return e.AttrName == "LegacyFactoryFunction" || e.AttrName == "NamedConstructor"
	}
	return false
}

// Name returns the constructor's exposed name: for the NoArgs/ArgList
// forms that is the owning construct's own name (`parent.Name()()`),
// for Ident/IdentList forms it is the attribute's own value identifier.
func (e *ExtendedAttribute) Name() (string, bool) {
	if !e.IsConstructor() {
		return "", false
	}
	switch e.Form {
	case FormNoArgs, FormArgList:
		if e.parent != nil {
			return e.parent.Name()
		}
		return "", false
	case FormIdent, FormNamedArgList:
		if len(e.Values) > 0 {
			return e.Values[0], true
		}
	}
	return "", false
}

func (e *ExtendedAttribute) IdlType() string {
	if e.IsConstructor() {
		return "constructor"
	}
	return "extended-attribute"
}

// Parent, ExtendedAttributes, Constructors, ComplexityFactor, MethodName,
// MethodNames, Arguments, Members, Find*, MatchesArgumentNames round out
// ExtendedAttribute's implementation of Construct, so that a constructor-
// form attribute (e.g. `[Constructor(long x)]`) can sit directly inside
// an Interface's Members() slice alongside ordinary members, rather than
// needing its own wrapper type.
func (e *ExtendedAttribute) Parent() (Construct, bool) {
	if e.parent == nil {
		return nil, false
	}
	return e.parent, true
}

func (e *ExtendedAttribute) ExtendedAttributes() []*ExtendedAttribute { return nil }
func (e *ExtendedAttribute) Constructors() []*ExtendedAttribute       { return nil }
func (e *ExtendedAttribute) ComplexityFactor() int                    { return 1 }

// MethodName builds the canonical "name(arg1, arg2)" form from this
// attribute's own argument list, for the ArgList/NamedArgList forms that
// carry one.
func (e *ExtendedAttribute) MethodName() (string, bool) {
	name, ok := e.Name()
	if !ok {
		return "", false
	}
	return name + "(" + strings.Join(e.argNames(), ", ") + ")", true
}

func (e *ExtendedAttribute) MethodNames() []string {
	name, ok := e.Name()
	if !ok {
		return nil
	}
	var variants []string
	for _, names := range e.normalizedArgNameVariants() {
		variants = append(variants, name+"("+strings.Join(names, ", ")+")")
	}
	return variants
}

func (e *ExtendedAttribute) Arguments() *ArgumentList { return e.Args }

func (e *ExtendedAttribute) argNames() []string {
	if e.Args == nil {
		return nil
	}
	return e.Args.names()
}

func (e *ExtendedAttribute) normalizedArgNameVariants() [][]string {
	if e.Args == nil {
		return [][]string{nil}
	}
	return e.Args.normalizedNames()
}

func (e *ExtendedAttribute) Members() []Construct                              { return nil }
func (e *ExtendedAttribute) FindMember(name string) Construct                   { return nil }
func (e *ExtendedAttribute) FindMembers(name string) []Construct                { return nil }
func (e *ExtendedAttribute) FindMethod(name string, argNames []string) Construct {
	return nil
}
func (e *ExtendedAttribute) FindMethods(name string, argNames []string) []Construct {
	return nil
}

func (e *ExtendedAttribute) FindArgument(name string, searchMembers bool) Construct {
	if e.Args == nil {
		return nil
	}
	return e.Args.findByName(name)
}

func (e *ExtendedAttribute) FindArguments(name string, searchMembers bool) []Construct {
	if e.Args == nil {
		return nil
	}
	return e.Args.findAllByName(name)
}

func (e *ExtendedAttribute) MatchesArgumentNames(names []string) bool {
	for _, variant := range e.normalizedArgNameVariants() {
		if stringSlicesEqual(variant, names) {
			return true
		}
	}
	return false
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// ExtendedAttributeList is the bracketed `[A, B, C]` prefix any
// construct or argument may carry.
type ExtendedAttributeList struct {
	parts []part
	Attrs []*ExtendedAttribute
}

func (l *ExtendedAttributeList) String() string { return renderParts(l.parts) }
func (l *ExtendedAttributeList) Parts() []part  { return l.parts }

func newExtendedAttributeList(s *token.Stream, parent Construct) (*ExtendedAttributeList, bool) {
	if !s.PeekSymbol("[") {
		return nil, false
	}
	openTok, _ := s.Next()
	parts := []part{tok(openTok)}
	var attrs []*ExtendedAttribute

	for {
		attr, ok := newExtendedAttribute(s, parent)
		if !ok {
			break
		}
		attrs = append(attrs, attr)
		parts = append(parts, prod(attr))
		if s.PeekSymbol(",") {
			c, _ := s.Next()
			parts = append(parts, tok(c))
			continue
		}
		break
	}

	if closeTok, ok := s.Peek(0); ok && closeTok.Is("]") {
		c, _ := s.Next()
		parts = append(parts, tok(c))
	} else {
		for _, t := range s.SyntaxError("unterminated extended attribute list") {
			parts = append(parts, tok(t))
		}
	}

	return &ExtendedAttributeList{parts: parts, Attrs: attrs}, true
}

// newExtendedAttribute tries each canonical form in priority order:
// NamedArgList, ArgList, Ident(List), TypePair, NoArgs, falling back to
// Unknown (raw token capture up to the next "," or "]"/")" at this
// nesting depth).
func newExtendedAttribute(s *token.Stream, parent Construct) (*ExtendedAttribute, bool) {
	nameTok, ok := s.Peek(0)
	if !ok || nameTok.Kind != token.Identifier {
		return nil, false
	}

	if a, ok := tryNamedArgList(s, parent, nameTok); ok {
		return a, true
	}
	if a, ok := tryArgList(s, parent, nameTok); ok {
		return a, true
	}
	if a, ok := tryIdent(s, parent, nameTok); ok {
		return a, true
	}
	if a, ok := tryTypePair(s, parent, nameTok); ok {
		return a, true
	}
	if a, ok := tryNoArgs(s, parent, nameTok); ok {
		return a, true
	}
	return newUnknownExtendedAttribute(s, parent, nameTok)
}

func tryNamedArgList(s *token.Stream, parent Construct, nameTok token.Token) (*ExtendedAttribute, bool) {
	mark := s.Mark()
	n, _ := s.Next()
	if !s.PeekSymbol("=") {
		s.Restore(mark)
		return nil, false
	}
	eq, _ := s.Next()
	valTok, ok := s.Peek(0)
	if !ok || valTok.Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	val, _ := s.Next()
	if !s.PeekSymbol("(") {
		s.Restore(mark)
		return nil, false
	}
	open, _ := s.Next()
	args, _ := newArgumentList(s, parent)
	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is(")") {
		s.Restore(mark)
		return nil, false
	}
	close_, _ := s.Next()
	return &ExtendedAttribute{
		parts:    []part{tok(n), tok(eq), tok(val), tok(open), prod(args), tok(close_)},
		Form:     FormNamedArgList,
		AttrName: n.IdentName(),
		Values:   []string{val.IdentName()},
		Args:     args,
		parent:   parent,
	}, true
}

func tryArgList(s *token.Stream, parent Construct, nameTok token.Token) (*ExtendedAttribute, bool) {
	mark := s.Mark()
	n, _ := s.Next()
	if !s.PeekSymbol("(") {
		s.Restore(mark)
		return nil, false
	}
	open, _ := s.Next()
	args, _ := newArgumentList(s, parent)
	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is(")") {
		s.Restore(mark)
		return nil, false
	}
	close_, _ := s.Next()
	return &ExtendedAttribute{
		parts:    []part{tok(n), tok(open), prod(args), tok(close_)},
		Form:     FormArgList,
		AttrName: n.IdentName(),
		Args:     args,
		parent:   parent,
	}, true
}

func tryIdent(s *token.Stream, parent Construct, nameTok token.Token) (*ExtendedAttribute, bool) {
	mark := s.Mark()
	n, _ := s.Next()
	if !s.PeekSymbol("=") {
		s.Restore(mark)
		return nil, false
	}
	eq, _ := s.Next()

	if s.PeekSymbol("(") {
		open, _ := s.Next()
		parts := []part{tok(n), tok(eq), tok(open)}
		var values []string
		for {
			idTok, ok := s.Peek(0)
			if !ok || idTok.Kind != token.Identifier {
				break
			}
			id, _ := s.Next()
			parts = append(parts, tok(id))
			values = append(values, id.IdentName())
			if s.PeekSymbol(",") {
				c, _ := s.Next()
				parts = append(parts, tok(c))
				continue
			}
			break
		}
		closeTok, ok := s.Peek(0)
		if !ok || !closeTok.Is(")") || len(values) == 0 {
			s.Restore(mark)
			return nil, false
		}
		close_, _ := s.Next()
		parts = append(parts, tok(close_))
		return &ExtendedAttribute{parts: parts, Form: FormIdent, AttrName: n.IdentName(), Values: values, parent: parent}, true
	}

	valTok, ok := s.Peek(0)
	if !ok || valTok.Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	val, _ := s.Next()
	return &ExtendedAttribute{
		parts:    []part{tok(n), tok(eq), tok(val)},
		Form:     FormIdent,
		AttrName: n.IdentName(),
		Values:   []string{val.IdentName()},
		parent:   parent,
	}, true
}

func tryTypePair(s *token.Stream, parent Construct, nameTok token.Token) (*ExtendedAttribute, bool) {
	mark := s.Mark()
	n, _ := s.Next()
	if !s.PeekSymbol("(") {
		s.Restore(mark)
		return nil, false
	}
	open, _ := s.Next()
	t1, ok := newType(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	if !s.PeekSymbol(",") {
		s.Restore(mark)
		return nil, false
	}
	comma, _ := s.Next()
	t2, ok := newType(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is(")") {
		s.Restore(mark)
		return nil, false
	}
	close_, _ := s.Next()
	return &ExtendedAttribute{
		parts:    []part{tok(n), tok(open), prod(t1), tok(comma), prod(t2), tok(close_)},
		Form:     FormTypePair,
		AttrName: n.IdentName(),
		TypePair: [2]*Type{t1, t2},
		parent:   parent,
	}, true
}

func tryNoArgs(s *token.Stream, parent Construct, nameTok token.Token) (*ExtendedAttribute, bool) {
	n, _ := s.Next()
	return &ExtendedAttribute{parts: []part{tok(n)}, Form: FormNoArgs, AttrName: n.IdentName(), parent: parent}, true
}

func newUnknownExtendedAttribute(s *token.Stream, parent Construct, nameTok token.Token) (*ExtendedAttribute, bool) {
	raw := s.SeekSymbol(",", "]", ")")
	if len(raw) == 0 {
		return nil, false
	}
	parts := make([]part, len(raw))
	for i, t := range raw {
		parts[i] = tok(t)
	}
	return &ExtendedAttribute{parts: parts, Form: FormUnknown, AttrName: nameTok.IdentName(), Raw: raw, parent: parent}, true
}
