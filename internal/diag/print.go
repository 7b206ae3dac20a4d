package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	tabWidth = 8
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	noteStyle    = color.New(color.FgGreen, color.Bold)
	kindStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
)

// FormatIssuesWithArrows renders issues the way compilers do: a header
// line naming the kind and file, the offending source line, and a caret
// pointing at the column.
func FormatIssuesWithArrows(issues []Issue, sourceCode *SourceCode) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(formatIssueHeader(issue))
		builder.WriteString(formatIssueBody(issue, sourceCode))
	}
	return builder.String()
}

func formatIssueHeader(issue Issue) string {
	severity := errorStyle.Sprint("error: ")
	if issue.Kind == KindLegacy {
		severity = noteStyle.Sprint("note: ")
	}
	return severity + kindStyle.Sprint(issue.Kind) + "\n" +
		lineStyle.Sprint(" --> ") + fileStyle.Sprintf("%s:%d:%d", issue.Filename, issue.Line, issue.Column) + "\n"
}

func formatIssueBody(issue Issue, sourceCode *SourceCode) string {
	var result strings.Builder

	if sourceCode == nil || issue.Line < 1 || issue.Line > len(sourceCode.Lines) {
		result.WriteString(messageStyle.Sprintf("  %s\n\n", issue.Message))
		return result.String()
	}

	lineNumberStr := fmt.Sprintf("%d", issue.Line)
	padding := strings.Repeat(" ", len(lineNumberStr)-1)
	result.WriteString(lineStyle.Sprintf("  %s|\n", padding))

	line := expandTabs(sourceCode.Lines[issue.Line-1])
	result.WriteString(lineStyle.Sprintf("%d | ", issue.Line))
	result.WriteString(line + "\n")

	visualColumn := calculateVisualColumn(line, issue.Column)
	result.WriteString(lineStyle.Sprintf("  %s| ", padding))
	result.WriteString(strings.Repeat(" ", visualColumn))
	result.WriteString(messageStyle.Sprintf("^ %s\n\n", issue.Message))

	return result.String()
}

func expandTabs(line string) string {
	var expanded strings.Builder
	for i, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (i % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
		} else {
			expanded.WriteRune(ch)
		}
	}
	return expanded.String()
}

func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
