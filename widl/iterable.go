package widl

import "github.com/webidl-tools/widlidl/token"

// Iterable is "iterable" "<" TypeWithExtendedAttributes [","
// TypeWithExtendedAttributes] ">" ";". With two types the first is the
// key. Anonymous.
type Iterable struct {
	baseConstruct
	KeyType   *Type // nil for value-only iterables
	ValueType *Type
}

func peekIterable(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	return s.ConsumeSymbol("iterable") && s.PeekSymbol("<")
}

func newIterable(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Iterable, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("iterable") {
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	open, ok := s.Peek(0)
	if !ok || !open.Is("<") {
		s.Restore(mark)
		return nil, false
	}
	openTok, _ := s.Next()
	parts = append(parts, tok(openTok))

	first, ok := newTypeWithExtendedAttributes(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, prod(first))

	it := &Iterable{ValueType: first}
	if s.PeekSymbol(",") {
		c, _ := s.Next()
		parts = append(parts, tok(c))
		value, ok := newTypeWithExtendedAttributes(s, parent)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		parts = append(parts, prod(value))
		it.KeyType = first
		it.ValueType = value
	}

	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is(">") {
		s.Restore(mark)
		return nil, false
	}
	close_, _ := s.Next()
	parts = append(parts, tok(close_))

	parts = consumeSemicolon(s, parts, "expected ';' after iterable")
	it.baseConstruct = baseConstruct{parts: parts, idlType: "iterable", parent: parent, extAttrs: attrs.attrsOrNil()}
	return it, true
}

// Maplike is ["readonly"] "maplike" "<" TypeWithExtendedAttributes ","
// TypeWithExtendedAttributes ">" ";". Anonymous.
type Maplike struct {
	baseConstruct
	ReadOnly  bool
	KeyType   *Type
	ValueType *Type
}

func peekMaplike(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	s.ConsumeSymbol("readonly")
	return s.ConsumeSymbol("maplike") && s.PeekSymbol("<")
}

func newMaplike(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Maplike, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	readonly := false
	if s.PeekSymbol("readonly") {
		t, _ := s.Next()
		parts = append(parts, tok(t))
		readonly = true
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("maplike") {
		s.Restore(mark)
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	open, ok := s.Peek(0)
	if !ok || !open.Is("<") {
		s.Restore(mark)
		return nil, false
	}
	openTok, _ := s.Next()
	parts = append(parts, tok(openTok))

	key, ok := newTypeWithExtendedAttributes(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, prod(key))

	comma, ok := s.Peek(0)
	if !ok || !comma.Is(",") {
		s.Restore(mark)
		return nil, false
	}
	commaTok, _ := s.Next()
	parts = append(parts, tok(commaTok))

	value, ok := newTypeWithExtendedAttributes(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, prod(value))

	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is(">") {
		s.Restore(mark)
		return nil, false
	}
	close_, _ := s.Next()
	parts = append(parts, tok(close_))

	parts = consumeSemicolon(s, parts, "expected ';' after maplike")
	return &Maplike{
		baseConstruct: baseConstruct{parts: parts, idlType: "maplike", parent: parent, extAttrs: attrs.attrsOrNil()},
		ReadOnly:      readonly,
		KeyType:       key,
		ValueType:     value,
	}, true
}

// Setlike is ["readonly"] "setlike" "<" TypeWithExtendedAttributes ">"
// ";". Anonymous.
type Setlike struct {
	baseConstruct
	ReadOnly bool
	Type     *Type
}

func peekSetlike(s *token.Stream) bool {
	mark := s.Mark()
	defer s.Restore(mark)
	s.ConsumeSymbol("readonly")
	return s.ConsumeSymbol("setlike") && s.PeekSymbol("<")
}

func newSetlike(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (*Setlike, bool) {
	mark := s.Mark()
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	readonly := false
	if s.PeekSymbol("readonly") {
		t, _ := s.Next()
		parts = append(parts, tok(t))
		readonly = true
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("setlike") {
		s.Restore(mark)
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	open, ok := s.Peek(0)
	if !ok || !open.Is("<") {
		s.Restore(mark)
		return nil, false
	}
	openTok, _ := s.Next()
	parts = append(parts, tok(openTok))

	typ, ok := newTypeWithExtendedAttributes(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	parts = append(parts, prod(typ))

	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is(">") {
		s.Restore(mark)
		return nil, false
	}
	close_, _ := s.Next()
	parts = append(parts, tok(close_))

	parts = consumeSemicolon(s, parts, "expected ';' after setlike")
	return &Setlike{
		baseConstruct: baseConstruct{parts: parts, idlType: "setlike", parent: parent, extAttrs: attrs.attrsOrNil()},
		ReadOnly:      readonly,
		Type:          typ,
	}, true
}
