package widl

import "github.com/webidl-tools/widlidl/token"

// SyntaxErrorConstruct is the recovery node substituted for a member that
// failed to parse: idl_type=="unknown", preserving the skipped source
// span verbatim so the enclosing construct still reconstructs exact
// text.
type SyntaxErrorConstruct struct {
	baseConstruct
}

func newSyntaxErrorConstruct(s *token.Stream, parent Construct, message string) *SyntaxErrorConstruct {
	skipped := s.SyntaxError(message)
	parts := make([]part, len(skipped))
	for i, t := range skipped {
		parts[i] = tok(t)
	}
	return &SyntaxErrorConstruct{
		baseConstruct: baseConstruct{parts: parts, idlType: "unknown", parent: parent},
	}
}
