// Package diag turns the parser's warn/note callbacks and SyntaxError
// constructs into structured, sortable, renderable issues.
package diag

import (
	"os"
	"sort"
	"strings"

	"github.com/webidl-tools/widlidl/token"
)

// Issue kinds. Grammar covers recovered syntax errors, Legacy the
// tolerated pre-standard forms, Duplicate a construct path defined more
// than once across the checked inputs.
const (
	KindGrammar   = "grammar"
	KindLegacy    = "legacy"
	KindDuplicate = "duplicate"
)

// Issue is one diagnostic anchored to a source position.
type Issue struct {
	Filename string `json:"filename"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// SourceCode is a file's contents split into lines for rendering.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode loads a file for issue rendering.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &SourceCode{Lines: strings.Split(string(content), "\n")}, nil
}

// Sort orders issues by file, then line, then column.
func Sort(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// Collector implements the parser's UserInterface, recording each
// callback as an Issue.
type Collector struct {
	Filename string
	Issues   []Issue
}

func (c *Collector) add(kind, message string, line, col int) {
	c.Issues = append(c.Issues, Issue{
		Filename: c.Filename,
		Kind:     kind,
		Message:  message,
		Line:     line,
		Column:   col,
	})
}

// Warn records a recovered grammar error.
func (c *Collector) Warn(message string, tok token.Token) {
	c.add(KindGrammar, message, tok.Line, tok.Col)
}

// Note records an accepted legacy form.
func (c *Collector) Note(message string, tok token.Token) {
	c.add(KindLegacy, message, tok.Line, tok.Col)
}
