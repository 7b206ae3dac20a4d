package widl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webidl-tools/widlidl/token"
)

// nullMarker implements every marker interface with empty wrappers and
// an identity encoder; markup through it must reproduce the input.
type nullMarker struct{}

func (nullMarker) MarkupConstruct(text string, c Construct) (string, string)     { return "", "" }
func (nullMarker) MarkupType(text string, c Construct) (string, string)          { return "", "" }
func (nullMarker) MarkupPrimitiveType(text string, c Construct) (string, string) { return "", "" }
func (nullMarker) MarkupBufferType(text string, c Construct) (string, string)    { return "", "" }
func (nullMarker) MarkupStringType(text string, c Construct) (string, string)    { return "", "" }
func (nullMarker) MarkupObjectType(text string, c Construct) (string, string)    { return "", "" }
func (nullMarker) MarkupTypeName(text string, c Construct) (string, string)      { return "", "" }
func (nullMarker) MarkupName(text string, c Construct) (string, string)          { return "", "" }
func (nullMarker) MarkupKeyword(text string, c Construct) (string, string)       { return "", "" }
func (nullMarker) MarkupEnumValue(text string, c Construct) (string, string)     { return "", "" }
func (nullMarker) Encode(text string) string                                     { return text }

var markupIdentityInputs = []string{
	"interface Foo { attribute long bar; };",
	"interface A : B {\n  // a method\n  void draw(long x, optional DOMString label);\n};\n",
	"[Constructor(long x)] interface Foo { };",
	"typedef (long or sequence<DOMString?>)? T;",
	"dictionary D : Base { required ArrayBuffer buf; object o = {}; };",
	"enum Mode { \"open\", \"closed\" };",
	"callback C = void (long x);",
	"interface M { readonly maplike<DOMString, Promise<any>>; stringifier; };",
	"interface Broken { garbage; attribute long ok; };",
}

func TestMarkupIdentityWithNoOpMarker(t *testing.T) {
	t.Parallel()
	for _, input := range markupIdentityInputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			constructs, trailing := Parse(token.New(input, nil))
			require.Empty(t, trailing)
			assert.Equal(t, input, MarkupConstructs(constructs, nullMarker{}))
		})
	}
}

func TestMarkupIdentityWithEmptyMarker(t *testing.T) {
	t.Parallel()
	for _, input := range markupIdentityInputs {
		constructs, _ := Parse(token.New(input, nil))
		assert.Equal(t, input, MarkupConstructs(constructs, struct{}{}))
	}
}

// spanMarker wraps types, primitive types, names and keywords in named
// brackets, so tests can assert both placement and nesting.
type spanMarker struct{}

func (spanMarker) MarkupType(text string, c Construct) (string, string) {
	return "<t>", "</t>"
}

func (spanMarker) MarkupPrimitiveType(text string, c Construct) (string, string) {
	return "<p>", "</p>"
}

func (spanMarker) MarkupName(text string, c Construct) (string, string) {
	return "<n>", "</n>"
}

func (spanMarker) MarkupKeyword(text string, c Construct) (string, string) {
	return "<k>", "</k>"
}

func TestMarkupWrapsElements(t *testing.T) {
	t.Parallel()
	constructs, _ := Parse(token.New("interface Foo { attribute long bar; };", nil))
	out := MarkupConstructs(constructs, spanMarker{})

	assert.Equal(t, "<k>interface</k> <n>Foo</n> { <k>attribute</k> <t><p><k>long</k></p></t> <n>bar</n>; };", out)
}

func TestMarkupNestsTypes(t *testing.T) {
	t.Parallel()
	constructs, _ := Parse(token.New("typedef sequence<long> S;", nil))
	out := MarkupConstructs(constructs, spanMarker{})

	assert.Equal(t, "<k>typedef</k> <t><k>sequence</k><<t><p><k>long</k></p></t>></t> <n>S</n>;", out)
}

func TestMarkupEncodesPlainText(t *testing.T) {
	t.Parallel()
	constructs, _ := Parse(token.New("interface Foo { };", nil))
	out := MarkupConstructs(constructs, upperEncoder{})
	assert.Equal(t, strings.ToUpper("interface Foo { };"), out)
}

type upperEncoder struct{}

func (upperEncoder) Encode(text string) string { return strings.ToUpper(text) }
