// Package parser is the WebIDL parsing façade: it owns the ordered
// top-level construct list and exposes parsing, name and path search,
// method-name normalization, markup, and exact re-serialization.
package parser

import (
	"regexp"
	"strings"

	"github.com/webidl-tools/widlidl/token"
	"github.com/webidl-tools/widlidl/widl"
)

// UserInterface receives the parser's non-fatal diagnostics: Warn for
// recovered grammar errors, Note for accepted legacy forms. A nil
// UserInterface drops both.
type UserInterface = token.UserInterface

// Parser accumulates top-level constructs across Parse calls. It is not
// safe for concurrent mutation; read-only queries against a fully
// constructed Parser are.
type Parser struct {
	ui token.UserInterface

	constructs []widl.Construct

	// trivia holds input runs that produced no construct at all
	// (whitespace- or comment-only Parse calls), keyed by how many
	// constructs preceded them, so String() can reproduce the input
	// even then.
	trivia map[int]string
}

// New returns a Parser, parsing text immediately when non-empty.
func New(text string, ui UserInterface) *Parser {
	p := &Parser{ui: ui, trivia: map[int]string{}}
	if text != "" {
		p.Parse(text)
	}
	return p
}

// Reset clears all parsed constructs.
func (p *Parser) Reset() {
	p.constructs = nil
	p.trivia = map[int]string{}
}

// Parse appends the constructs of further input text.
func (p *Parser) Parse(text string) {
	s := token.New(text, p.ui)
	constructs, trailing := widl.Parse(s)
	p.constructs = append(p.constructs, constructs...)
	if trailing != "" {
		p.trivia[len(p.constructs)] += trailing
	}
}

// Constructs is the ordered list of top-level constructs.
func (p *Parser) Constructs() []widl.Construct { return p.constructs }

// Len is the number of top-level constructs.
func (p *Parser) Len() int { return len(p.constructs) }

// At returns the construct at position i, nil when out of range.
func (p *Parser) At(i int) widl.Construct {
	if i < 0 || i >= len(p.constructs) {
		return nil
	}
	return p.constructs[i]
}

// ByName returns the first top-level construct with this name.
func (p *Parser) ByName(name string) widl.Construct {
	for _, c := range p.constructs {
		if n, ok := c.Name(); ok && n == name {
			return c
		}
	}
	return nil
}

// Contains reports whether a top-level construct has this name.
func (p *Parser) Contains(name string) bool { return p.ByName(name) != nil }

// ComplexityFactor is the sum over all top-level constructs.
func (p *Parser) ComplexityFactor() int {
	total := 0
	for _, c := range p.constructs {
		total += c.ComplexityFactor()
	}
	return total
}

// String reproduces all parsed input exactly.
func (p *Parser) String() string {
	var b strings.Builder
	for i, c := range p.constructs {
		b.WriteString(p.trivia[i])
		b.WriteString(c.String())
	}
	b.WriteString(p.trivia[len(p.constructs)])
	return b.String()
}

// Markup renders the parsed input with marker annotations (§ the widl
// package's Marker interfaces). A marker implementing nothing returns
// the exact serialization.
func (p *Parser) Markup(marker any) string {
	var b strings.Builder
	encode := func(text string) string { return text }
	if e, ok := marker.(widl.TextEncoder); ok {
		encode = e.Encode
	}
	for i, c := range p.constructs {
		if t := p.trivia[i]; t != "" {
			b.WriteString(encode(t))
		}
		b.WriteString(widl.MarkupConstructs([]widl.Construct{c}, marker))
	}
	if t := p.trivia[len(p.constructs)]; t != "" {
		b.WriteString(encode(t))
	}
	return b.String()
}

// Find resolves a dotted or slashed path to the first matching
// construct, nil when nothing matches. Each segment is matched
// breadth-first: a construct matches a segment when its name, method
// name, any method-name variant, or idl type equals the segment; the
// terminal segment additionally reaches arguments.
func (p *Parser) Find(path string) widl.Construct {
	if all := p.FindAll(path); len(all) > 0 {
		return all[0]
	}
	return nil
}

// FindAll resolves a path to every matching construct at the terminal
// segment.
func (p *Parser) FindAll(path string) []widl.Construct {
	segs := splitPath(path)
	if len(segs) == 0 {
		return nil
	}

	matches := bfsMatch(p.constructs, segs[0])
	for i, seg := range segs[1:] {
		terminal := i == len(segs)-2
		var next []widl.Construct
		for _, parent := range matches {
			next = append(next, bfsMatch(parent.Members(), seg)...)
			if terminal {
				next = append(next, parent.FindArguments(seg, true)...)
			}
		}
		matches = next
	}
	return matches
}

func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '.' })
}

// bfsMatch collects matches level by level: the roots themselves, then
// their members, then their members' members.
func bfsMatch(roots []widl.Construct, seg string) []widl.Construct {
	var out []widl.Construct
	queue := append([]widl.Construct(nil), roots...)
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if segmentMatches(c, seg) {
			out = append(out, c)
		}
		queue = append(queue, c.Members()...)
	}
	return out
}

func segmentMatches(c widl.Construct, seg string) bool {
	if n, ok := c.Name(); ok && n == seg {
		return true
	}
	if mn, ok := c.MethodName(); ok && mn == seg {
		return true
	}
	for _, v := range c.MethodNames() {
		if v == seg {
			return true
		}
	}
	return c.IdlType() == seg
}

var methodCallRe = regexp.MustCompile(`(.*)\((.*)\)(.*)`)

// NormalizedMethodName returns the canonical "name(arg, ...)" form for a
// method description. A description whose parenthesized part parses as a
// formal argument list normalizes directly; otherwise the description is
// resolved against parsed methods (within interfaceName when non-empty)
// and the match's canonical name returned. False when nothing resolves.
func (p *Parser) NormalizedMethodName(methodText, interfaceName string) (string, bool) {
	names := p.NormalizedMethodNames(methodText, interfaceName)
	if len(names) == 0 {
		return "", false
	}
	return names[0], true
}

// NormalizedMethodNames is NormalizedMethodName returning every
// call-site variant, full form first.
func (p *Parser) NormalizedMethodNames(methodText, interfaceName string) []string {
	name := methodText
	var argNames []string
	haveArgs := false

	if m := methodCallRe.FindStringSubmatch(methodText); m != nil {
		if variants, ok := widl.NormalizedArgumentVariants(m[2]); ok {
			base := strings.TrimSpace(m[1])
			var out []string
			for _, v := range variants {
				out = append(out, base+"("+strings.Join(v, ", ")+")")
			}
			return out
		}
		name = strings.TrimSpace(m[1]) + m[3]
		haveArgs = true
		if strings.TrimSpace(m[2]) != "" {
			for _, a := range strings.Split(m[2], ",") {
				argNames = append(argNames, strings.TrimSpace(a))
			}
		}
	}

	lookup := func(c widl.Construct) []string {
		var out []string
		var methods []widl.Construct
		if haveArgs {
			methods = c.FindMethods(name, argNames)
		} else {
			methods = c.FindMethods(name, nil)
		}
		for _, m := range methods {
			out = append(out, m.MethodNames()...)
		}
		return out
	}

	if interfaceName != "" {
		iface := p.Find(interfaceName)
		if iface == nil {
			return nil
		}
		return lookup(iface)
	}

	for _, c := range p.constructs {
		if names := lookup(c); len(names) > 0 {
			return names
		}
	}

	if c := p.Find(name); c != nil && c.IdlType() == "method" {
		if haveArgs && !c.MatchesArgumentNames(argNames) {
			return nil
		}
		return c.MethodNames()
	}
	return nil
}
