package record

import "strings"

// BodyStyle selects how special-procedure mandate labels are canonicalized.
type BodyStyle int

const (
	// BodyAppendMarker appends "; - Special Procedures" to mandate labels.
	BodyAppendMarker BodyStyle = iota
	// BodyReplace replaces mandate labels with "- Special Procedures".
	BodyReplace
)

const (
	SpecialProcedures       = "- Special Procedures"
	SpecialProceduresSuffix = "; " + SpecialProcedures
	BodyUPR                 = "- UPR"
)

// specialPrefixes mark independent experts, working groups and special rapporteurs.
var specialPrefixes = []string{"- IE", "- WG", "- SR"}

// IsSpecialMechanism reports whether body is a special-procedure mandate label.
func IsSpecialMechanism(body string) bool {
	for _, p := range specialPrefixes {
		if strings.HasPrefix(body, p) {
			return true
		}
	}
	return false
}

// StandardizeBody canonicalizes a recommending-body label. Both styles are
// idempotent.
func StandardizeBody(body string, style BodyStyle) string {
	switch style {
	case BodyReplace:
		if strings.Contains(body, SpecialProcedures) || IsSpecialMechanism(body) {
			return SpecialProcedures
		}
		return body
	default:
		if IsSpecialMechanism(body) && !strings.Contains(body, SpecialProcedures) {
			return body + SpecialProceduresSuffix
		}
		return body
	}
}

// WithBody returns a copy of r with its body canonicalized.
func (r Record) WithBody(style BodyStyle) Record {
	r.RecommendingBody = StandardizeBody(r.RecommendingBody, style)
	return r
}

// StandardizeBodies canonicalizes every record's body.
func StandardizeBodies(records []Record, style BodyStyle) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.WithBody(style)
	}
	return out
}
