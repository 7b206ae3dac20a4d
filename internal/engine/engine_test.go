package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webidl-tools/widlidl/internal/config"
	"github.com/webidl-tools/widlidl/internal/diag"
)

func kinds(issues []diag.Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Kind
	}
	return out
}

func TestCheckSourceReportsGrammarIssues(t *testing.T) {
	t.Parallel()
	eng := New(nil, nil)
	issues := eng.CheckSource("a.idl", "interface Foo { garbage; attribute long bar; };")
	require.Len(t, issues, 1)
	assert.Equal(t, diag.KindGrammar, issues[0].Kind)
	assert.Equal(t, "a.idl", issues[0].Filename)
}

func TestCheckSourceReportsLegacyNotes(t *testing.T) {
	t.Parallel()
	eng := New(nil, nil)
	issues := eng.CheckSource("a.idl", "A implements B;")
	assert.Equal(t, []string{diag.KindLegacy}, kinds(issues))
}

func TestCheckSourceCleanInput(t *testing.T) {
	t.Parallel()
	eng := New(nil, nil)
	assert.Empty(t, eng.CheckSource("a.idl", "interface Foo { attribute long bar; };"))
}

func TestDuplicateDefinitionsAcrossSources(t *testing.T) {
	t.Parallel()
	eng := New(nil, nil)
	assert.Empty(t, eng.CheckSource("a.idl", "interface Foo { };"))

	issues := eng.CheckSource("b.idl", "interface Foo { };")
	require.Len(t, issues, 1)
	assert.Equal(t, diag.KindDuplicate, issues[0].Kind)
	assert.Contains(t, issues[0].Message, "Foo")
}

func TestPartialInterfacesAreNotDuplicates(t *testing.T) {
	t.Parallel()
	eng := New(nil, nil)
	assert.Empty(t, eng.CheckSource("a.idl", "interface Foo { };"))
	assert.Empty(t, eng.CheckSource("b.idl", "partial interface Foo { attribute long extra; };"))
}

func TestIgnoredKindsAreSuppressed(t *testing.T) {
	t.Parallel()
	cfg := config.Default()
	cfg.IgnoreKinds = []string{diag.KindLegacy}
	eng := New(cfg, nil)
	assert.Empty(t, eng.CheckSource("a.idl", "A implements B;"))
}
