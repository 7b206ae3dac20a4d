package cmd

import (
	"fmt"
	"html"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/webidl-tools/widlidl/parser"
	"github.com/webidl-tools/widlidl/widl"
)

var markupCmd = &cobra.Command{
	Use:   "markup <file>",
	Short: "Emit a WebIDL file as HTML with spans around syntactic elements",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		content, err := os.ReadFile(args[0])
		if err != nil {
			logger.Fatal("Failed to read file", zap.String("file", args[0]), zap.Error(err))
		}

		p := parser.New(string(content), nil)
		fmt.Println(p.Markup(htmlMarker{}))
	},
}

// htmlMarker wraps names, types, keywords, and enum values in CSS-class
// spans and entity-escapes everything else.
type htmlMarker struct{}

func span(class string) (string, string) {
	return `<span class="idl-` + class + `">`, "</span>"
}

func (htmlMarker) MarkupConstruct(text string, c widl.Construct) (string, string) {
	return span("construct")
}

func (htmlMarker) MarkupType(text string, c widl.Construct) (string, string) {
	return span("type")
}

func (htmlMarker) MarkupTypeName(text string, c widl.Construct) (string, string) {
	return span("type-name")
}

func (htmlMarker) MarkupName(text string, c widl.Construct) (string, string) {
	return span("name")
}

func (htmlMarker) MarkupKeyword(text string, c widl.Construct) (string, string) {
	return span("keyword")
}

func (htmlMarker) MarkupEnumValue(text string, c widl.Construct) (string, string) {
	return span("enum-value")
}

func (htmlMarker) Encode(text string) string {
	return html.EscapeString(text)
}
