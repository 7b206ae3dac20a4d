package widl

import "github.com/webidl-tools/widlidl/token"

// Inheritance is the ": Identifier" suffix on an interface or dictionary
// declaration. A legacy multiple-inheritance tail is not matched here; it
// falls into the generic SyntaxError recovery path instead.
type Inheritance struct {
	parts []part
	Base  string
}

func (i *Inheritance) String() string  { return renderParts(i.parts) }
func (i *Inheritance) Parts() []part   { return i.parts }

func newInheritance(s *token.Stream) (*Inheritance, bool) {
	mark := s.Mark()
	if !s.PeekSymbol(":") {
		return nil, false
	}
	colon, _ := s.Next()
	nameTok, ok := s.Peek(0)
	if !ok || nameTok.Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	n, _ := s.Next()
	return &Inheritance{parts: []part{tok(colon), namedTok(n)}, Base: n.IdentName()}, true
}
