package widl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webidl-tools/widlidl/token"
)

type recordingUI struct {
	warns []string
	notes []string
}

func (r *recordingUI) Warn(message string, tok token.Token) { r.warns = append(r.warns, message) }
func (r *recordingUI) Note(message string, tok token.Token) { r.notes = append(r.notes, message) }

func parseAll(t *testing.T, text string, ui token.UserInterface) []Construct {
	t.Helper()
	constructs, trailing := Parse(token.New(text, ui))
	assert.Empty(t, trailing)
	return constructs
}

func serializeAll(constructs []Construct) string {
	var b strings.Builder
	for _, c := range constructs {
		b.WriteString(c.String())
	}
	return b.String()
}

func TestParseInterfaceWithAttribute(t *testing.T) {
	t.Parallel()
	input := "interface Foo { attribute long bar; };"
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 1)

	iface, ok := constructs[0].(*Interface)
	require.True(t, ok)
	name, _ := iface.Name()
	assert.Equal(t, "Foo", name)
	assert.Equal(t, "interface", iface.IdlType())

	members := iface.Members()
	require.Len(t, members, 1)
	attr, ok := members[0].(*Attribute)
	require.True(t, ok)
	attrName, _ := attr.Name()
	assert.Equal(t, "bar", attrName)
	assert.Equal(t, "attribute", attr.IdlType())
	assert.Equal(t, "long", attr.Type.Name)

	parent, ok := attr.Parent()
	require.True(t, ok)
	assert.Same(t, iface, parent)

	assert.Equal(t, input, serializeAll(constructs))
}

func TestParseConstructorExtendedAttribute(t *testing.T) {
	t.Parallel()
	input := "[Constructor(long x)] interface Foo { };"
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 1)

	iface := constructs[0].(*Interface)
	ctors := iface.Constructors()
	require.Len(t, ctors, 1)
	assert.Equal(t, FormArgList, ctors[0].Form)
	assert.Equal(t, "constructor", ctors[0].IdlType())
	require.Len(t, ctors[0].Args.Args, 1)
	argName, _ := ctors[0].Args.Args[0].Name()
	assert.Equal(t, "x", argName)

	// the constructor leads the member list but is rendered only via
	// the attribute list
	members := iface.Members()
	require.NotEmpty(t, members)
	assert.Same(t, ctors[0], members[0])

	ctorName, ok := ctors[0].Name()
	require.True(t, ok)
	assert.Equal(t, "Foo", ctorName)
	mn, _ := ctors[0].MethodName()
	assert.Equal(t, "Foo(x)", mn)

	assert.Equal(t, input, serializeAll(constructs))
}

func TestParseMethodNameVariants(t *testing.T) {
	t.Parallel()
	input := "interface Foo { void draw(long x, optional long y); };"
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 1)

	iface := constructs[0].(*Interface)
	op, ok := iface.Members()[0].(*Operation)
	require.True(t, ok)
	assert.Equal(t, "method", op.IdlType())
	assert.Equal(t, []string{"draw(x, y)", "draw(x)"}, op.MethodNames())

	mn, _ := op.MethodName()
	assert.Equal(t, "draw(x, y)", mn)
	assert.Equal(t, op.MethodNames()[0], mn)

	assert.True(t, op.MatchesArgumentNames([]string{"x", "y"}))
	assert.True(t, op.MatchesArgumentNames([]string{"x"}))
	assert.False(t, op.MatchesArgumentNames([]string{"y"}))

	assert.Equal(t, input, serializeAll(constructs))
}

func TestParseDictionary(t *testing.T) {
	t.Parallel()
	input := `dictionary D : Base { required long x; DOMString y = "hi"; };`
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 1)

	d, ok := constructs[0].(*Dictionary)
	require.True(t, ok)
	name, _ := d.Name()
	assert.Equal(t, "D", name)
	require.NotNil(t, d.Inheritance)
	assert.Equal(t, "Base", d.Inheritance.Base)
	assert.True(t, d.RequiredMembers())

	members := d.Members()
	require.Len(t, members, 2)

	x := members[0].(*DictionaryMember)
	assert.Equal(t, "dict-member", x.IdlType())
	assert.True(t, x.Required)
	assert.Nil(t, x.Default)

	y := members[1].(*DictionaryMember)
	assert.False(t, y.Required)
	require.NotNil(t, y.Default)
	assert.Equal(t, `"hi"`, y.Default.Text)

	assert.Equal(t, input, serializeAll(constructs))
}

func TestParseFunctionCallback(t *testing.T) {
	t.Parallel()
	input := "callback C = void (long x);"
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 1)

	cb, ok := constructs[0].(*Callback)
	require.True(t, ok)
	name, _ := cb.Name()
	assert.Equal(t, "C", name)
	assert.Nil(t, cb.Iface)
	require.NotNil(t, cb.ReturnType)
	assert.Equal(t, "void", cb.ReturnType.Name)
	require.Len(t, cb.Args.Args, 1)
	argName, _ := cb.Args.Args[0].Name()
	assert.Equal(t, "x", argName)

	assert.Equal(t, input, serializeAll(constructs))
}

func TestParseCallbackInterface(t *testing.T) {
	t.Parallel()
	input := "callback interface CB { void handle(long code); };"
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 1)

	cb := constructs[0].(*Callback)
	require.NotNil(t, cb.Iface)
	assert.Nil(t, cb.ReturnType)
	assert.NotNil(t, cb.FindMethod("handle", nil))
	assert.NotNil(t, cb.FindArgument("code", true))

	assert.Equal(t, input, serializeAll(constructs))
}

func TestRecoveryInsideInterface(t *testing.T) {
	t.Parallel()
	input := "interface Foo { garbage; attribute long bar; };"
	ui := &recordingUI{}
	constructs := parseAll(t, input, ui)
	require.Len(t, constructs, 1)

	iface := constructs[0].(*Interface)
	members := iface.Members()
	require.Len(t, members, 2)

	se, ok := members[0].(*SyntaxErrorConstruct)
	require.True(t, ok)
	assert.Equal(t, "unknown", se.IdlType())
	assert.Equal(t, " garbage;", se.String())

	attr := members[1].(*Attribute)
	attrName, _ := attr.Name()
	assert.Equal(t, "bar", attrName)

	assert.Len(t, ui.warns, 1)
	assert.Equal(t, input, serializeAll(constructs))
}

func TestLegacyInOutArgumentsNoted(t *testing.T) {
	t.Parallel()
	input := "interface Foo { void f(in long a, out long b); };"
	ui := &recordingUI{}
	constructs := parseAll(t, input, ui)

	op := constructs[0].(*Interface).Members()[0].(*Operation)
	require.Len(t, op.Args.Args, 2)
	a, _ := op.Args.Args[0].Name()
	assert.Equal(t, "a", a)
	assert.Len(t, ui.notes, 2)

	assert.Equal(t, input, serializeAll(constructs))
}

func TestLegacyImplementsNoted(t *testing.T) {
	t.Parallel()
	input := "A implements B;"
	ui := &recordingUI{}
	constructs := parseAll(t, input, ui)
	require.Len(t, constructs, 1)

	impl := constructs[0].(*ImplementsStatement)
	assert.Equal(t, "implements", impl.IdlType())
	name, _ := impl.Name()
	assert.Equal(t, "A", name)
	assert.Equal(t, "B", impl.Implements)
	assert.Len(t, ui.notes, 1)
}

func TestIncludesStatement(t *testing.T) {
	t.Parallel()
	input := "A includes B;"
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 1)

	inc := constructs[0].(*IncludesStatement)
	assert.Equal(t, "includes", inc.IdlType())
	assert.Equal(t, "B", inc.Includes)
}

func TestParseEnumAndTypedef(t *testing.T) {
	t.Parallel()
	input := `enum Mode { "open", "closed" }; typedef sequence<long> Ints;`
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 2)

	e := constructs[0].(*Enum)
	assert.Equal(t, []string{"open", "closed"}, e.Values)

	td := constructs[1].(*Typedef)
	tdName, _ := td.Name()
	assert.Equal(t, "Ints", tdName)
	assert.Equal(t, TypeSequence, td.Type.Kind)
	assert.Equal(t, "long", td.Type.Inner.Name)

	assert.Equal(t, input, serializeAll(constructs))
}

func TestParseSpecialMembers(t *testing.T) {
	t.Parallel()
	input := "interface M { iterable<long>; readonly maplike<DOMString, long>; stringifier; static void ping(); getter long (unsigned long index); const short LIMIT = 10; };"
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 1)

	members := constructs[0].(*Interface).Members()
	require.Len(t, members, 6)

	assert.Equal(t, "iterable", members[0].IdlType())
	assert.Equal(t, "maplike", members[1].IdlType())
	assert.True(t, members[1].(*Maplike).ReadOnly)
	assert.Equal(t, "stringifier", members[2].IdlType())

	ping := members[3].(*Operation)
	assert.True(t, ping.Static)
	pingName, _ := ping.Name()
	assert.Equal(t, "ping", pingName)

	getter := members[4].(*Operation)
	assert.Equal(t, []string{"getter"}, getter.Specials)
	_, named := getter.Name()
	assert.False(t, named)
	mn, _ := getter.MethodName()
	assert.Equal(t, "(index)", mn)

	assert.Equal(t, "const", members[5].IdlType())
	assert.Equal(t, 0, members[5].ComplexityFactor())

	assert.Equal(t, input, serializeAll(constructs))
}

func TestParseSerializerForms(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
	}{
		{"bare", "interface S { serializer; };"},
		{"pattern", "interface S { serializer = { attribute }; };"},
		{"identifier", "interface S { serializer = name; };"},
		{"operation", "interface S { serializer DOMString toJSON(); };"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			constructs := parseAll(t, tt.input, nil)
			require.Len(t, constructs, 1)
			members := constructs[0].(*Interface).Members()
			require.Len(t, members, 1)
			assert.Equal(t, "serializer", members[0].IdlType())
			assert.Equal(t, tt.input, serializeAll(constructs))
		})
	}
}

func TestParseUnionAndNullableTypes(t *testing.T) {
	t.Parallel()
	input := "typedef (long or DOMString)? T; typedef record<DOMString, sequence<long?>> R;"
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 2)

	u := constructs[0].(*Typedef).Type
	assert.Equal(t, TypeUnion, u.Kind)
	assert.True(t, u.Nullable)
	require.Len(t, u.Members, 2)
	assert.False(t, u.Members[0].Nullable)

	r := constructs[1].(*Typedef).Type
	assert.Equal(t, TypeRecord, r.Kind)
	assert.Equal(t, TypeString, r.KeyType.Kind)
	assert.Equal(t, TypeSequence, r.Inner.Kind)
	assert.True(t, r.Inner.Inner.Nullable)

	assert.Equal(t, input, serializeAll(constructs))
}

func TestExtendedAttributeForms(t *testing.T) {
	t.Parallel()
	input := "[NamedConstructor=Audio(DOMString src), Exposed=Window, Global=(Window,Worker), PutForwards(DOMString, long), SecureContext] interface A { };"
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 1)

	attrs := constructs[0].ExtendedAttributes()
	require.Len(t, attrs, 5)
	assert.Equal(t, FormNamedArgList, attrs[0].Form)
	assert.Equal(t, FormIdent, attrs[1].Form)
	assert.Equal(t, FormIdent, attrs[2].Form)
	assert.Equal(t, []string{"Window", "Worker"}, attrs[2].Values)
	assert.Equal(t, FormTypePair, attrs[3].Form)
	assert.Equal(t, FormNoArgs, attrs[4].Form)

	// NamedConstructor declares a constructor under its own name
	assert.True(t, attrs[0].IsConstructor())
	ctorName, _ := attrs[0].Name()
	assert.Equal(t, "Audio", ctorName)

	assert.Equal(t, input, serializeAll(constructs))
}

func TestEscapedIdentifierNames(t *testing.T) {
	t.Parallel()
	input := "interface _interface { attribute long _const; };"
	constructs := parseAll(t, input, nil)
	require.Len(t, constructs, 1)

	name, _ := constructs[0].Name()
	assert.Equal(t, "interface", name)
	memberName, _ := constructs[0].Members()[0].Name()
	assert.Equal(t, "const", memberName)

	assert.Equal(t, input, serializeAll(constructs))
}

func TestRoundTripCorpus(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"  \n// only a comment\n",
		"/* block */ interface Foo { };\n",
		"interface Foo { attribute long bar; };",
		"partial interface Foo { const unsigned long long BIG = 0xFF; };",
		"interface A : B {\n  getter setter long op(long i);\n};\n",
		"dictionary D { sequence<DOMString> names = []; object data = {}; any value = null; };",
		"enum E { \"a\", \"b\", };",
		"typedef FrozenArray<Promise<void>> Later;",
		"callback interface CB { void run(); };",
		"A implements B;\nC includes D;\n",
		"interface Broken { wat },, garbage ;; interface Next { };",
		"[Constructor, Constructor(long x)] interface Multi { };",
		"interface W { void f(optional long a = 1, long... rest); };",
	}
	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			s := token.New(input, nil)
			constructs, trailing := Parse(s)
			assert.Equal(t, input, serializeAll(constructs)+trailing)
		})
	}
}

func TestFullName(t *testing.T) {
	t.Parallel()
	constructs := parseAll(t, "interface Foo { void draw(long x); };", nil)
	iface := constructs[0].(*Interface)
	op := iface.Members()[0]

	assert.Equal(t, "Foo", FullName(iface))
	assert.Equal(t, "Foo/draw(x)", FullName(op))
}
