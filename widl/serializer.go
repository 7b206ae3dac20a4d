package widl

import "github.com/webidl-tools/widlidl/token"

// Serializer is the historical WebIDL serializer member:
//
//	"serializer" ["=" ("{" SerializationPattern "}" | Identifier)
//	              | Type OperationRest] ";"
//
// The brace-delimited pattern is captured as raw tokens without
// interpretation. A serializer with neither an operation name nor a
// pattern identifier is anonymous.
type Serializer struct {
	baseConstruct
	PatternName string        // "=" Identifier form
	Pattern     []token.Token // "=" "{" ... "}" form, braces included
	ReturnType  *Type
	Args        *ArgumentList
}

func (sz *Serializer) Arguments() *ArgumentList { return sz.Args }

func (sz *Serializer) MethodName() (string, bool) {
	if sz.ReturnType == nil {
		return "", false
	}
	return methodName(sz, sz.Args), true
}

func (sz *Serializer) MethodNames() []string {
	if sz.ReturnType == nil {
		return nil
	}
	return methodNames(sz, sz.Args)
}

func peekSerializer(s *token.Stream) bool {
	return s.PeekSymbol("serializer")
}

func newSerializer(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Serializer, bool) {
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("serializer") {
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	sz := &Serializer{}

	switch {
	case s.PeekSymbol("="):
		eq, _ := s.Next()
		parts = append(parts, tok(eq))
		if open, ok := s.Peek(0); ok && open.Is("{") {
			o, _ := s.Next()
			parts = append(parts, tok(o))
			sz.Pattern = append(sz.Pattern, o)
			for s.HasTokens() && !s.PeekSymbol("}") {
				t, _ := s.Next()
				parts = append(parts, tok(t))
				sz.Pattern = append(sz.Pattern, t)
			}
			if c, ok := s.Peek(0); ok && c.Is("}") {
				cl, _ := s.Next()
				parts = append(parts, tok(cl))
				sz.Pattern = append(sz.Pattern, cl)
			} else {
				s.Warn("unterminated serializer pattern", open)
			}
		} else if id, ok := s.Peek(0); ok && id.Kind == token.Identifier {
			it, _ := s.Next()
			parts = append(parts, namedTok(it))
			sz.PatternName = it.IdentName()
		} else {
			s.Warn("expected serializer pattern or identifier after '='", eq)
		}

	case peekType(s):
		mark := s.Mark()
		ret, ok := newType(s, parent)
		if ok {
			opParts := append(parts, prod(ret))
			opParts, name, args, ok := newOperationRest(s, parent, opParts)
			if ok {
				sz.ReturnType = ret
				sz.Args = args
				sz.baseConstruct = baseConstruct{parts: opParts, idlType: "serializer", name: name, parent: parent, extAttrs: attrs.attrsOrNil()}
				return sz, true
			}
		}
		s.Restore(mark)
	}

	parts = consumeSemicolon(s, parts, "expected ';' after serializer")
	var name *string
	if sz.PatternName != "" {
		n := sz.PatternName
		name = &n
	}
	sz.baseConstruct = baseConstruct{parts: parts, idlType: "serializer", name: name, parent: parent, extAttrs: attrs.attrsOrNil()}
	return sz, true
}
