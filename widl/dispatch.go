package widl

import "github.com/webidl-tools/widlidl/token"

// Parse consumes the entire stream, returning the top-level constructs
// in source order plus any trailing trivia not owned by a construct
// (non-empty only for input that ends in whitespace or comments after
// the last construct, or consists of nothing else). Dispatch order:
// callback, interface, dictionary, enum, typedef, const (a legacy
// top-level form some older specs use), implements, includes, then
// error recovery.
func Parse(s *token.Stream) ([]Construct, string) {
	var out []Construct
	for s.HasTokens() {
		out = append(out, nextConstruct(s))
	}
	trailing := s.TrailingTrivia()
	if len(out) > 0 && trailing != "" {
		absorbTrailing(out[len(out)-1], trailing)
		trailing = ""
	}
	return out, trailing
}

func nextConstruct(s *token.Stream) Construct {
	mark := s.Mark()
	attrs, _ := newExtendedAttributeList(s, nil)

	var c Construct
	var ok bool
	switch {
	case peekCallback(s):
		c, ok = newCallback(s, nil, attrs)
	case peekInterface(s):
		c, ok = newInterface(s, nil, attrs)
	case peekDictionary(s):
		c, ok = newDictionary(s, nil, attrs)
	case peekEnum(s):
		c, ok = newEnum(s, nil, attrs)
	case peekTypedef(s):
		c, ok = newTypedef(s, nil, attrs)
	case peekConst(s):
		c, ok = newConst(s, nil, attrs)
	case peekImplements(s):
		c, ok = newImplements(s, nil, attrs)
	case peekIncludes(s):
		c, ok = newIncludes(s, nil, attrs)
	}
	if ok {
		return c
	}

	s.Restore(mark)
	se := newSyntaxErrorConstruct(s, nil, "could not parse construct")
	if len(se.parts) == 0 && s.HasTokens() {
		// a stray "}" at top level; consume it so parsing advances
		t, _ := s.Next()
		se.parts = append(se.parts, tok(t))
	}
	return se
}

// absorbTrailing appends loose trailing trivia onto a construct so that
// concatenating all constructs reproduces the input exactly.
func absorbTrailing(c Construct, text string) {
	if a, ok := c.(partsAppender); ok {
		a.appendPart(text)
	}
}

// FullName is the slash-joined path of normal names from the outermost
// named ancestor down to c, the exact form Parser.Find resolves.
func FullName(c Construct) string {
	name := normalName(c)
	if name == "" {
		return ""
	}
	if p, ok := c.Parent(); ok {
		if prefix := FullName(p); prefix != "" {
			return prefix + "/" + name
		}
	}
	return name
}

func normalName(c Construct) string {
	if mn, ok := c.MethodName(); ok {
		return mn
	}
	n, _ := c.Name()
	return n
}
