package widl

import "github.com/webidl-tools/widlidl/token"

// Stringifier is "stringifier" (AttributeRest | Type OperationRest |
// ";"). The attribute form is returned as an Attribute with the
// Stringifier flag set, matching its idl_type; the operation and bare
// forms keep idl_type "stringifier". A bare stringifier is anonymous.
type Stringifier struct {
	baseConstruct
	ReturnType *Type
	Args       *ArgumentList
}

func (st *Stringifier) Arguments() *ArgumentList { return st.Args }

func (st *Stringifier) MethodName() (string, bool) {
	if st.ReturnType == nil {
		return "", false
	}
	return methodName(st, st.Args), true
}

func (st *Stringifier) MethodNames() []string {
	if st.ReturnType == nil {
		return nil
	}
	return methodNames(st, st.Args)
}

func peekStringifier(s *token.Stream) bool {
	return s.PeekSymbol("stringifier")
}

func newStringifier(s *token.Stream, parent Construct, attrs *ExtendedAttributeList) (Construct, bool) {
	var parts []part
	if attrs != nil {
		parts = append(parts, prod(attrs))
	}

	kw, ok := s.Peek(0)
	if !ok || !kw.Is("stringifier") {
		return nil, false
	}
	kwTok, _ := s.Next()
	parts = append(parts, tok(kwTok))

	if peekAttributeRest(s) {
		if a, ok := newAttributeRest(s, parent, parts); ok {
			a.Stringifier = true
			a.extAttrs = attrs.attrsOrNil()
			return a, true
		}
	}

	if peekType(s) {
		mark := s.Mark()
		ret, ok := newType(s, parent)
		if ok {
			opParts := append(parts, prod(ret))
			opParts, name, args, ok := newOperationRest(s, parent, opParts)
			if ok {
				return &Stringifier{
					baseConstruct: baseConstruct{parts: opParts, idlType: "stringifier", name: name, parent: parent, extAttrs: attrs.attrsOrNil()},
					ReturnType:    ret,
					Args:          args,
				}, true
			}
		}
		s.Restore(mark)
	}

	parts = consumeSemicolon(s, parts, "expected ';' after stringifier")
	return &Stringifier{
		baseConstruct: baseConstruct{parts: parts, idlType: "stringifier", parent: parent, extAttrs: attrs.attrsOrNil()},
	}, true
}
