// Package keyword implements case-insensitive substring matching against a
// keyword set, used both to select the corpus and to flag relevant records.
package keyword

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/cognicore/uhri/pkg/uhri/record"
)

// Set is an immutable set of case-folded keywords or phrases.
type Set struct {
	terms []string
}

// NewSet builds a keyword set. Blank terms are ignored, duplicates collapsed.
func NewSet(terms ...string) Set {
	seen := make(map[string]struct{}, len(terms))
	folded := make([]string, 0, len(terms))
	for _, t := range terms {
		f := fold(strings.TrimSpace(t))
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		folded = append(folded, f)
	}
	return Set{terms: folded}
}

// Terms returns the folded terms in declaration order.
func (s Set) Terms() []string {
	out := make([]string, len(s.terms))
	copy(out, s.terms)
	return out
}

// Len returns the number of terms.
func (s Set) Len() int {
	return len(s.terms)
}

// Matches reports whether any term is a substring of the case-folded text.
func (s Set) Matches(text string) bool {
	if text == "" || len(s.terms) == 0 {
		return false
	}
	folded := fold(text)
	for _, t := range s.terms {
		if strings.Contains(folded, t) {
			return true
		}
	}
	return false
}

// MatchesValue is Matches for untyped values; anything but a string is no match.
func (s Set) MatchesValue(v any) bool {
	text, ok := v.(string)
	if !ok {
		return false
	}
	return s.Matches(text)
}

// Flag returns 1 when text matches and 0 otherwise.
func (s Set) Flag(text string) int {
	if s.Matches(text) {
		return 1
	}
	return 0
}

// Select keeps the raw records whose field matches the set, in input order.
func Select(raws []record.RawRecord, field string, s Set) []record.RawRecord {
	out := make([]record.RawRecord, 0, len(raws))
	for _, r := range raws {
		if s.MatchesValue(r[field]) {
			out = append(out, r)
		}
	}
	return out
}

// Count returns how many records' text matches the set.
func Count(records []record.Record, s Set) int {
	n := 0
	for _, r := range records {
		n += s.Flag(r.Text)
	}
	return n
}

// cases.Caser is stateful, so a fresh one is used per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
