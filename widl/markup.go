package widl

import (
	"strings"

	"github.com/webidl-tools/widlidl/token"
)

// Marker methods are all optional: a marker implements whichever of the
// single-method interfaces below it cares about, and the generator
// probes with a type assertion per call site. Each method receives the
// literal source text of the element and its owning construct, and returns a prefix
// and suffix to wrap the (recursively marked up) element in; empty
// strings leave it unwrapped.
type (
	ConstructMarker interface {
		MarkupConstruct(text string, c Construct) (string, string)
	}
	TypeMarker interface {
		MarkupType(text string, c Construct) (string, string)
	}
	PrimitiveTypeMarker interface {
		MarkupPrimitiveType(text string, c Construct) (string, string)
	}
	BufferTypeMarker interface {
		MarkupBufferType(text string, c Construct) (string, string)
	}
	StringTypeMarker interface {
		MarkupStringType(text string, c Construct) (string, string)
	}
	ObjectTypeMarker interface {
		MarkupObjectType(text string, c Construct) (string, string)
	}
	TypeNameMarker interface {
		MarkupTypeName(text string, c Construct) (string, string)
	}
	NameMarker interface {
		MarkupName(text string, c Construct) (string, string)
	}
	KeywordMarker interface {
		MarkupKeyword(text string, c Construct) (string, string)
	}
	EnumValueMarker interface {
		MarkupEnumValue(text string, c Construct) (string, string)
	}

	// TextEncoder transforms every run of plain text between marked
	// elements (entity escaping, typically). Identity when absent.
	TextEncoder interface {
		Encode(text string) string
	}
)

// MarkupConstructs walks constructs in source order and emits the
// marked-up text. With a marker implementing none of the optional
// interfaces the result equals the exact serialization.
func MarkupConstructs(constructs []Construct, marker any) string {
	g := &markupGenerator{marker: marker}
	for _, c := range constructs {
		g.addConstruct(c)
	}
	return g.b.String()
}

type markupGenerator struct {
	marker any
	b      strings.Builder

	// trimNext suppresses the next token's leading trivia: a wrapper
	// already emitted it outside the marker's prefix.
	trimNext bool
}

func (g *markupGenerator) encodeTo(text string) {
	if text == "" {
		return
	}
	if e, ok := g.marker.(TextEncoder); ok {
		g.b.WriteString(e.Encode(text))
		return
	}
	g.b.WriteString(text)
}

func (g *markupGenerator) leading(t token.Token) {
	if g.trimNext {
		g.trimNext = false
		return
	}
	g.encodeTo(t.Leading)
}

// emitLeadingOutside writes the first token's trivia before a wrapper
// opens, so markers never wrap whitespace that merely precedes their
// element.
func (g *markupGenerator) emitLeadingOutside(parts []part) {
	if g.trimNext {
		return
	}
	g.encodeTo(firstLeading(parts))
	g.trimNext = true
}

func firstLeading(parts []part) string {
	for _, p := range parts {
		switch v := p.(type) {
		case token.Token:
			return v.Leading
		case namedTokenPart:
			return v.t.Leading
		case enumValueTokenPart:
			return v.t.Leading
		case string:
			return ""
		case Production:
			if h, ok := v.(partsHolder); ok {
				return firstLeading(h.Parts())
			}
			return ""
		}
	}
	return ""
}

// renderTrimmed is renderParts minus the first token's leading trivia —
// the literal text a marker sees for a wrapped element.
func renderTrimmed(parts []part) string {
	s := renderParts(parts)
	return s[len(firstLeading(parts)):]
}

func (g *markupGenerator) walkParts(parts []part, c Construct) {
	for _, p := range parts {
		g.walkPart(p, c)
	}
}

func (g *markupGenerator) walkPart(p part, c Construct) {
	switch v := p.(type) {
	case token.Token:
		g.addToken(v, c)
	case namedTokenPart:
		g.addWrappedText(v.t, c, func(m any) (func(string, Construct) (string, string), bool) {
			mk, ok := m.(NameMarker)
			if !ok {
				return nil, false
			}
			return mk.MarkupName, true
		})
	case enumValueTokenPart:
		g.addWrappedText(v.t, c, func(m any) (func(string, Construct) (string, string), bool) {
			mk, ok := m.(EnumValueMarker)
			if !ok {
				return nil, false
			}
			return mk.MarkupEnumValue, true
		})
	case string:
		g.encodeTo(v)
	case Production:
		g.addProduction(v, c)
	}
}

func (g *markupGenerator) addProduction(p Production, c Construct) {
	switch v := p.(type) {
	case *Type:
		g.addType(v, c)
	case Construct:
		g.addConstruct(v)
	case partsHolder:
		g.walkParts(v.Parts(), c)
	}
}

func (g *markupGenerator) addToken(t token.Token, c Construct) {
	g.leading(t)
	if t.Kind == token.Symbol && isAlphaKeyword(t.Text) {
		pre, suf := "", ""
		if m, ok := g.marker.(KeywordMarker); ok {
			pre, suf = m.MarkupKeyword(t.Text, c)
		}
		g.b.WriteString(pre)
		g.encodeTo(t.Text)
		g.b.WriteString(suf)
		return
	}
	g.encodeTo(t.Text)
}

func (g *markupGenerator) addWrappedText(t token.Token, c Construct, probe func(any) (func(string, Construct) (string, string), bool)) {
	g.leading(t)
	pre, suf := "", ""
	if fn, ok := probe(g.marker); ok {
		pre, suf = fn(t.Text, c)
	}
	g.b.WriteString(pre)
	g.encodeTo(t.Text)
	g.b.WriteString(suf)
}

func (g *markupGenerator) addConstruct(c Construct) {
	h, ok := c.(partsHolder)
	if !ok {
		g.encodeTo(c.String())
		return
	}
	g.emitLeadingOutside(h.Parts())
	pre, suf := "", ""
	if m, ok := g.marker.(ConstructMarker); ok {
		pre, suf = m.MarkupConstruct(renderTrimmed(h.Parts()), c)
	}
	g.b.WriteString(pre)
	g.walkParts(h.Parts(), c)
	g.b.WriteString(suf)
}

func (g *markupGenerator) addType(t *Type, c Construct) {
	g.emitLeadingOutside(t.parts)
	pre, suf := "", ""
	if m, ok := g.marker.(TypeMarker); ok {
		pre, suf = m.MarkupType(renderTrimmed(t.parts), c)
	}
	g.b.WriteString(pre)
	g.walkTypeInner(t, c)
	g.b.WriteString(suf)
}

// walkTypeInner walks a type's parts, wrapping the contiguous run of
// tokens that names a leaf type (primitive, string, buffer, object, or
// identifier) in its category marker. Nested types recurse through
// addType, so types nest inside types the way the grammar does.
func (g *markupGenerator) walkTypeInner(t *Type, c Construct) {
	parts := t.parts
	i := 0
	for i < len(parts) {
		tk, ok := parts[i].(token.Token)
		if !ok || !typeLeafToken(t, tk) {
			g.walkPart(parts[i], c)
			i++
			continue
		}
		j := i
		for j < len(parts) {
			tk2, ok := parts[j].(token.Token)
			if !ok || !typeLeafToken(t, tk2) {
				break
			}
			j++
		}
		g.addTypeLeafRun(t, parts[i:j], c)
		i = j
	}
}

func typeLeafToken(t *Type, tk token.Token) bool {
	switch t.Kind {
	case TypePrimitive:
		return tk.Kind == token.Symbol && primitiveKeywords[tk.Text]
	case TypeString:
		return tk.Kind == token.Symbol && stringKeywords[tk.Text]
	case TypeBuffer:
		return tk.Kind == token.Symbol && bufferKeywords[tk.Text]
	case TypeObject:
		return tk.Is("object")
	case TypeNamed:
		return tk.Kind == token.Identifier
	}
	return false
}

func (g *markupGenerator) addTypeLeafRun(t *Type, run []part, c Construct) {
	g.emitLeadingOutside(run)
	pre, suf := "", ""
	switch t.Kind {
	case TypePrimitive:
		if m, ok := g.marker.(PrimitiveTypeMarker); ok {
			pre, suf = m.MarkupPrimitiveType(renderTrimmed(run), c)
		}
	case TypeString:
		if m, ok := g.marker.(StringTypeMarker); ok {
			pre, suf = m.MarkupStringType(renderTrimmed(run), c)
		}
	case TypeBuffer:
		if m, ok := g.marker.(BufferTypeMarker); ok {
			pre, suf = m.MarkupBufferType(renderTrimmed(run), c)
		}
	case TypeObject:
		if m, ok := g.marker.(ObjectTypeMarker); ok {
			pre, suf = m.MarkupObjectType(renderTrimmed(run), c)
		}
	case TypeNamed:
		if m, ok := g.marker.(TypeNameMarker); ok {
			pre, suf = m.MarkupTypeName(renderTrimmed(run), c)
		}
	}
	g.b.WriteString(pre)
	g.walkParts(run, c)
	g.b.WriteString(suf)
}

func isAlphaKeyword(s string) bool {
	if s == "" {
		return false
	}
	b := s[0]
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}
