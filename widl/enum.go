package widl

import "github.com/webidl-tools/widlidl/token"

// Enum is "enum" Identifier "{" EnumValueList "}" ";".
type Enum struct {
	baseConstruct
	Values []string
}

func peekEnum(s *token.Stream) bool { return s.PeekSymbol("enum") }

func newEnum(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Enum, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("enum") {
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

	open, ok := s.Peek(0)
	if !ok || !open.Is("{") {
		s.Restore(mark)
		return nil, false
	}
	openTok, _ := s.Next()
	parts = append(parts, tok(openTok))

	var values []string
	for {
		v, ok := s.Peek(0)
		if !ok || v.Kind != token.String {
			break
		}
		vt, _ := s.Next()
		parts = append(parts, enumValueTok(vt))
		values = append(values, unquote(vt.Text))
		if s.PeekSymbol(",") {
			c, _ := s.Next()
			parts = append(parts, tok(c))
			continue
		}
		break
	}

	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is("}") {
		for _, t := range s.SyntaxError("unterminated enum value list") {
			parts = append(parts, tok(t))
		}
	} else {
		c, _ := s.Next()
		parts = append(parts, tok(c))
	}

	parts = consumeSemicolon(s, parts, "expected ';' after enum")

	e := &Enum{
		baseConstruct: baseConstruct{
			parts: parts, idlType: "enum", name: &name, parent: parent, extAttrs: attrs.attrsOrNil(),
		},
		Values: values,
	}
	return e, true
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
