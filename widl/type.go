package widl

import "github.com/webidl-tools/widlidl/token"

// TypeKind distinguishes the branches of the Type grammar: primitives,
// the string and buffer families, object, sequence<T> / Promise<T> /
// FrozenArray<T> / ObservableArray<T>, record<K,V>, plain identifiers,
// and unions, collapsed into one tagged struct instead of one node type
// per branch.
type TypeKind int

const (
	TypeAny TypeKind = iota
	TypePrimitive
	TypeString
	TypeBuffer
	TypeObject
	TypeNamed
	TypeSequence
	TypeFrozenArray
	TypeObservableArray
	TypePromise
	TypeRecord
	TypeUnion
)

var primitiveKeywords = map[string]bool{
	"short": true, "long": true, "unsigned": true, "float": true,
	"double": true, "unrestricted": true, "boolean": true, "byte": true,
	"octet": true, "bigint": true,
}

var stringKeywords = map[string]bool{
	"ByteString": true, "DOMString": true, "USVString": true,
}

var bufferKeywords = map[string]bool{
	"ArrayBuffer": true, "DataView": true,
	"Int8Array": true, "Int16Array": true, "Int32Array": true,
	"Uint8Array": true, "Uint16Array": true, "Uint32Array": true,
	"Uint8ClampedArray": true, "BigInt64Array": true, "BigUint64Array": true,
	"Float32Array": true, "Float64Array": true,
}

// Type is one WebIDL type. Nullability belongs to the outer type only:
// Nullable is a flag on the outer Type, never threaded through its
// Inner/Members; a union member carries its own suffix only when it is
// itself a nested union.
type Type struct {
	parts    []part
	Kind     TypeKind
	Nullable bool
	Name     string // keyword or identifier text for leaf kinds
	Inner    *Type  // element type: sequence<T>, FrozenArray<T>, ObservableArray<T>, Promise<T>, record value type
	KeyType  *Type  // record<K,V> key type, always TypeString
	Members  []*Type
}

func (t *Type) String() string { return renderParts(t.parts) }
func (t *Type) Parts() []part  { return t.parts }

func peekType(s *token.Stream) bool {
	tok0, ok := s.Peek(0)
	if !ok {
		return false
	}
	if tok0.Is("(") {
		return true
	}
	if tok0.Kind == token.Identifier {
		return true
	}
	if tok0.Kind != token.Symbol {
		return false
	}
	switch tok0.Text {
	case "any", "sequence", "FrozenArray", "ObservableArray", "Promise", "record", "object":
		return true
	}
	return primitiveKeywords[tok0.Text] || stringKeywords[tok0.Text] || bufferKeywords[tok0.Text]
}

func newType(s *token.Stream, parent Construct) (*Type, bool) {
	mark := s.Mark()

	if s.PeekSymbol("(") {
		if u, ok := newUnionType(s, parent); ok {
			return u, true
		}
		s.Restore(mark)
	}

	single, ok := newSingleType(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	if nt, ok := s.Peek(0); ok && nt.Is("?") {
		t, _ := s.Next()
		single.parts = append(single.parts, tok(t))
		single.Nullable = true
	}
	return single, true
}

func newSingleType(s *token.Stream, parent Construct) (*Type, bool) {
	tok0, ok := s.Peek(0)
	if !ok {
		return nil, false
	}

	switch {
	case tok0.Is("any"):
		t, _ := s.Next()
		return &Type{parts: []part{tok(t)}, Kind: TypeAny}, true

	case tok0.Is("object"):
		t, _ := s.Next()
		return &Type{parts: []part{tok(t)}, Kind: TypeObject, Name: "object"}, true

	case tok0.Kind == token.Symbol && bufferKeywords[tok0.Text]:
		t, _ := s.Next()
		return &Type{parts: []part{tok(t)}, Kind: TypeBuffer, Name: t.Text}, true

	case tok0.Kind == token.Symbol && stringKeywords[tok0.Text]:
		t, _ := s.Next()
		return &Type{parts: []part{tok(t)}, Kind: TypeString, Name: t.Text}, true

	case tok0.Kind == token.Symbol && primitiveKeywords[tok0.Text]:
		return newPrimitiveType(s)

	case tok0.Is("sequence"), tok0.Is("FrozenArray"), tok0.Is("ObservableArray"), tok0.Is("Promise"):
		return newParameterizedType(s, parent, tok0.Text)

	case tok0.Is("record"):
		return newRecordType(s, parent)

	case tok0.Kind == token.Identifier:
		t, _ := s.Next()
		return &Type{parts: []part{tok(t)}, Kind: TypeNamed, Name: t.IdentName()}, true
	}
	return nil, false
}

func newPrimitiveType(s *token.Stream) (*Type, bool) {
	var parts []part
	var name []string
	consume := func() {
		t, _ := s.Next()
		parts = append(parts, tok(t))
		name = append(name, t.Text)
	}
	if s.PeekSymbol("unsigned") {
		consume()
	}
	if s.PeekSymbol("unrestricted") {
		consume()
	}
	switch {
	case s.PeekSymbol("short"), s.PeekSymbol("long"), s.PeekSymbol("float"), s.PeekSymbol("double"),
		s.PeekSymbol("boolean"), s.PeekSymbol("byte"), s.PeekSymbol("octet"), s.PeekSymbol("bigint"):
		wasLong := s.PeekSymbol("long")
		consume()
		if wasLong && s.PeekSymbol("long") {
			consume()
		}
	default:
		return nil, false
	}
	joined := ""
	for i, n := range name {
		if i > 0 {
			joined += " "
		}
		joined += n
	}
	return &Type{parts: parts, Kind: TypePrimitive, Name: joined}, true
}

func newParameterizedType(s *token.Stream, parent Construct, keyword string) (*Type, bool) {
	mark := s.Mark()
	kw, _ := s.Next()
	open, ok := s.Peek(0)
	if !ok || !open.Is("<") {
		s.Restore(mark)
		return nil, false
	}
	openTok, _ := s.Next()
	inner, ok := newTypeWithExtendedAttributes(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is(">") {
		s.Restore(mark)
		return nil, false
	}
	close_, _ := s.Next()

	kind := TypeSequence
	switch keyword {
	case "FrozenArray":
		kind = TypeFrozenArray
	case "ObservableArray":
		kind = TypeObservableArray
	case "Promise":
		kind = TypePromise
	}
	return &Type{
		parts: []part{tok(kw), tok(openTok), prod(inner), tok(close_)},
		Kind:  kind,
		Name:  keyword,
		Inner: inner,
	}, true
}

func newRecordType(s *token.Stream, parent Construct) (*Type, bool) {
	mark := s.Mark()
	kw, _ := s.Next()
	open, ok := s.Peek(0)
	if !ok || !open.Is("<") {
		s.Restore(mark)
		return nil, false
	}
	openTok, _ := s.Next()
	key, ok := newSingleType(s, parent)
	if !ok || key.Kind != TypeString {
		s.Restore(mark)
		return nil, false
	}
	comma, ok := s.Peek(0)
	if !ok || !comma.Is(",") {
		s.Restore(mark)
		return nil, false
	}
	commaTok, _ := s.Next()
	value, ok := newTypeWithExtendedAttributes(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	close_, ok := s.Peek(0)
	if !ok || !close_.Is(">") {
		s.Restore(mark)
		return nil, false
	}
	closeTok, _ := s.Next()
	return &Type{
		parts:   []part{tok(kw), tok(openTok), prod(key), tok(commaTok), prod(value), tok(closeTok)},
		Kind:    TypeRecord,
		Name:    "record",
		KeyType: key,
		Inner:   value,
	}, true
}

// newTypeWithExtendedAttributes parses an optional leading
// ExtendedAttributeList followed by a Type, as used for sequence/record/
// Promise element types and for arguments that permit per-type
// attributes ([Clamp], [EnforceRange]).
func newTypeWithExtendedAttributes(s *token.Stream, parent Construct) (*Type, bool) {
	mark := s.Mark()
	attrs, hasAttrs := newExtendedAttributeList(s, parent)
	typ, ok := newType(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	if hasAttrs {
		typ.parts = append([]part{prod(attrs)}, typ.parts...)
	}
	return typ, true
}

func newUnionType(s *token.Stream, parent Construct) (*Type, bool) {
	mark := s.Mark()
	open, ok := s.Peek(0)
	if !ok || !open.Is("(") {
		return nil, false
	}
	openTok, _ := s.Next()

	var members []*Type
	var parts []part = []part{tok(openTok)}

	first, ok := newUnionMemberType(s, parent)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	members = append(members, first)
	parts = append(parts, prod(first))

	for s.PeekSymbol("or") {
		orTok, _ := s.Next()
		parts = append(parts, tok(orTok))
		next, ok := newUnionMemberType(s, parent)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		members = append(members, next)
		parts = append(parts, prod(next))
	}
	if len(members) < 2 {
		s.Restore(mark)
		return nil, false
	}

	closeTok, ok := s.Peek(0)
	if !ok || !closeTok.Is(")") {
		s.Restore(mark)
		return nil, false
	}
	close_, _ := s.Next()
	parts = append(parts, tok(close_))

	u := &Type{parts: parts, Kind: TypeUnion, Members: members}
	if q, ok := s.Peek(0); ok && q.Is("?") {
		qt, _ := s.Next()
		u.parts = append(u.parts, tok(qt))
		u.Nullable = true
	}
	return u, true
}

func newUnionMemberType(s *token.Stream, parent Construct) (*Type, bool) {
	if s.PeekSymbol("(") {
		return newUnionType(s, parent)
	}
	return newSingleType(s, parent)
}
