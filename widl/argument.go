package widl

import "github.com/webidl-tools/widlidl/token"

// argumentNameKeywords lists the WebIDL keywords that are additionally
// permitted as argument names (a WebIDL grammar quirk: reserved words are
// not ambiguous in argument-name position, so a declaration is free to
// use "required", "attribute", etc. as parameter names).
var argumentNameKeywords = map[string]bool{
	"attribute": true, "callback": true, "const": true, "deleter": true,
	"dictionary": true, "enum": true, "getter": true, "includes": true,
	"inherit": true, "interface": true, "iterable": true, "maplike": true,
	"mixin": true, "namespace": true, "partial": true, "required": true,
	"setlike": true, "setter": true, "static": true, "stringifier": true,
	"typedef": true, "unrestricted": true, "async": true, "readonly": true,
}

// Argument is an "argument" construct: [ExtAttrs] ["optional"]
// Type ["..."] ArgumentName [Default], or the legacy in/out-tolerant
// form.
type Argument struct {
	baseConstruct
	Type     *Type
	Optional bool
	Variadic bool
	Default  *Default
}

func (a *Argument) Required() bool { return !a.Optional && !a.Variadic }

// newArgument tries the "optional"-keyword form first, then the plain
// required-Type form.
func newArgument(s *token.Stream, parent Construct) (*Argument, bool) {
	mark := s.Mark()
	var parts []part

	attrs, hasAttrs := newExtendedAttributeList(s, parent)
	if hasAttrs {
		parts = append(parts, prod(attrs))
	}

	if s.PeekSymbol("optional") {
		optTok, _ := s.Next()
		parts = append(parts, tok(optTok))
		if legacyTok, ok := tryConsumeLegacyInOut(s); ok {
			parts = append(parts, tok(legacyTok))
			s.Note("legacy in/out argument keyword ignored", legacyTok)
		}
		typ, ok := newTypeWithExtendedAttributes(s, parent)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		parts = append(parts, prod(typ))
		nameTok, ok := newArgumentNameToken(s)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		parts = append(parts, namedTok(nameTok))
		name := nameTok.IdentName()
		arg := &Argument{
			baseConstruct: baseConstruct{idlType: "argument", name: &name, parent: parent, extAttrs: attrs.attrsOrNil()},
			Type:          typ,
			Optional:      true,
		}
		if def, ok := newDefault(s, parent); ok {
			parts = append(parts, prod(def))
			arg.Default = def
		}
		arg.parts = parts
		return arg, true
	}

	if legacyTok, ok := tryConsumeLegacyInOut(s); ok {
		parts = append(parts, tok(legacyTok))
		s.Note("legacy in/out argument keyword ignored", legacyTok)
	}

	typ, ok := newType(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, prod(typ))

	variadic := false
	if s.PeekSymbol("...") {
		el, _ := s.Next()
		parts = append(parts, tok(el))
		variadic = true
	}

	nameTok, ok := newArgumentNameToken(s)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, namedTok(nameTok))
	name := nameTok.IdentName()

	arg := &Argument{
		baseConstruct: baseConstruct{idlType: "argument", name: &name, parent: parent, extAttrs: attrs.attrsOrNil()},
		Type:          typ,
		Variadic:      variadic,
	}
	arg.parts = parts
	return arg, true
}

func (l *ExtendedAttributeList) attrsOrNil() []*ExtendedAttribute {
	if l == nil {
		return nil
	}
	return l.Attrs
}

// tryConsumeLegacyInOut absorbs a pre-standard "in"/"out" argument
// direction keyword. Both lex as plain identifiers; the caller keeps the
// token in the source span but out of the argument's semantics.
func tryConsumeLegacyInOut(s *token.Stream) (token.Token, bool) {
	t, ok := s.Peek(0)
	if !ok || t.Kind != token.Identifier || (t.Text != "in" && t.Text != "out") {
		return token.Token{}, false
	}
	consumed, _ := s.Next()
	return consumed, true
}

func newArgumentNameToken(s *token.Stream) (token.Token, bool) {
	t, ok := s.Peek(0)
	if !ok {
		return token.Token{}, false
	}
	if t.Kind == token.Identifier {
		tok_, _ := s.Next()
		return tok_, true
	}
	if t.Kind == token.Symbol && argumentNameKeywords[t.Text] {
		tok_, _ := s.Next()
		return tok_, true
	}
	return token.Token{}, false
}

// ArgumentList is a comma-separated list of Argument constructs, parsed
// greedily; an ArgumentList never needs to "peek" since it always matches
// (possibly zero arguments).
type ArgumentList struct {
	parts []part
	Args  []*Argument
}

func (l *ArgumentList) String() string { return renderParts(l.parts) }
func (l *ArgumentList) Parts() []part  { return l.parts }

func newArgumentList(s *token.Stream, parent Construct) (*ArgumentList, bool) {
	var parts []part
	var args []*Argument

	first, ok := newArgument(s, parent)
	if !ok {
		return &ArgumentList{}, true
	}
	args = append(args, first)
	parts = append(parts, prod(first))

	for s.PeekSymbol(",") {
		mark := s.Mark()
		c, _ := s.Next()
		next, ok := newArgument(s, parent)
		if !ok {
			s.Restore(mark)
			break
		}
		parts = append(parts, tok(c), prod(next))
		args = append(args, next)
	}

	validateArgumentOrdering(s, args)
	return &ArgumentList{parts: parts, Args: args}, true
}

// validateArgumentOrdering reports (via warn, non-fatal) required
// arguments following optional/variadic ones. WebIDL requires all
// optional arguments to trail all required ones, the same invariant
// normalizedNames relies on.
func validateArgumentOrdering(s *token.Stream, args []*Argument) {
	seenOptional := false
	for _, a := range args {
		if !a.Required() {
			seenOptional = true
			continue
		}
		if seenOptional {
			s.Warn("required argument follows optional or variadic argument", token.Token{})
			return
		}
	}
}

func (l *ArgumentList) names() []string {
	names := make([]string, len(l.Args))
	for i, a := range l.Args {
		n, _ := a.Name()
		names[i] = n
	}
	return names
}

// normalizedNames enumerates every legal call-site prefix of this
// argument list: the full form first, then each trailing optional or
// variadic argument popped off one at a time (valid exactly because
// optional arguments always trail required ones).
func (l *ArgumentList) normalizedNames() [][]string {
	all := l.names()
	var variants [][]string
	variants = append(variants, append([]string(nil), all...))

	n := len(l.Args)
	for n > 0 && !l.Args[n-1].Required() {
		n--
		variants = append(variants, append([]string(nil), all[:n]...))
	}
	return variants
}

// NormalizedArgumentVariants parses text as a formal WebIDL argument
// list ("long x, optional long y") and returns its call-site name
// variants, full form first. False when text is not a complete formal
// argument list with at least one argument.
func NormalizedArgumentVariants(text string) ([][]string, bool) {
	s := token.New(text, nil)
	args, _ := newArgumentList(s, nil)
	if args == nil || len(args.Args) == 0 || s.HasTokens() {
		return nil, false
	}
	return args.normalizedNames(), true
}

// matchesNames reports whether a caller-supplied positional name list is
// a legal call of this argument list: each given name must match the
// argument declared at that position, and any arguments left over must
// all be omittable.
func (l *ArgumentList) matchesNames(names []string) bool {
	for i, name := range names {
		if i >= len(l.Args) {
			return false
		}
		if n, _ := l.Args[i].Name(); n != name {
			return false
		}
	}
	for _, a := range l.Args[min(len(names), len(l.Args)):] {
		if a.Required() {
			return false
		}
	}
	return true
}

func (l *ArgumentList) findByName(name string) Construct {
	for _, a := range l.Args {
		if n, ok := a.Name(); ok && n == name {
			return a
		}
	}
	return nil
}

func (l *ArgumentList) findAllByName(name string) []Construct {
	var out []Construct
	for _, a := range l.Args {
		if n, ok := a.Name(); ok && n == name {
			out = append(out, a)
		}
	}
	return out
}

// Default is the "= ConstValue|string|[]|{}" suffix on a dictionary
// member or optional argument.
type Default struct {
	parts []part
	Text  string // the literal's source text
}

func (d *Default) String() string { return renderParts(d.parts) }
func (d *Default) Parts() []part  { return d.parts }

func newDefault(s *token.Stream, parent Construct) (*Default, bool) {
	if !s.PeekSymbol("=") {
		return nil, false
	}
	eq, _ := s.Next()
	parts := []part{tok(eq)}

	if open, ok := s.Peek(0); ok && open.Is("[") {
		o, _ := s.Next()
		parts = append(parts, tok(o))
		if c, ok := s.Peek(0); ok && c.Is("]") {
			cl, _ := s.Next()
			parts = append(parts, tok(cl))
			return &Default{parts: parts, Text: "[]"}, true
		}
	}
	if open, ok := s.Peek(0); ok && open.Is("{") {
		o, _ := s.Next()
		parts = append(parts, tok(o))
		if c, ok := s.Peek(0); ok && c.Is("}") {
			cl, _ := s.Next()
			parts = append(parts, tok(cl))
			return &Default{parts: parts, Text: "{}"}, true
		}
	}

	if _, ok := s.Peek(0); !ok {
		return &Default{parts: parts}, true
	}
	litTok, _ := s.Next()
	parts = append(parts, tok(litTok))
	return &Default{parts: parts, Text: litTok.Text}, true
}
