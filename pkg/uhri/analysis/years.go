// Package analysis answers the study's questions over normalized records:
// who recommends what, when, about whom and under which rights.
//
// Every function is pure. Vocabularies come in as parameters; the vocab
// package supplies the defaults.
package analysis

import (
	"strings"

	"github.com/cognicore/uhri/pkg/uhri/record"
)

// YearFunc attributes a record to a year, 0 when unknown.
type YearFunc func(record.Record) int

// StoredYear uses the year derived at normalization.
func StoredYear(r record.Record) int {
	return r.Year
}

// FuzzyYear re-derives the year from the publication date with fuzzy
// parsing, independently of the stored year.
func FuzzyYear(r record.Record) int {
	y, err := record.ParseYearFuzzy(r.PublicationDate)
	if err != nil {
		return 0
	}
	return y
}

// Discrepancy is a record whose stored and fuzzy years disagree.
type Discrepancy struct {
	Index           int
	PublicationDate string
	Stored          int
	Fuzzy           int
}

// YearDiscrepancies lists records where StoredYear and FuzzyYear differ.
// The two are never reconciled; this only reports them.
func YearDiscrepancies(records []record.Record) []Discrepancy {
	var out []Discrepancy
	for i, r := range records {
		stored, fuzzy := StoredYear(r), FuzzyYear(r)
		if stored != fuzzy {
			out = append(out, Discrepancy{
				Index:           i,
				PublicationDate: r.PublicationDate,
				Stored:          stored,
				Fuzzy:           fuzzy,
			})
		}
	}
	return out
}

// ExcludeBody drops records whose trimmed body equals body.
func ExcludeBody(records []record.Record, body string) []record.Record {
	out := make([]record.Record, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.RecommendingBody) != body {
			out = append(out, r)
		}
	}
	return out
}

// OnlyBody keeps records whose trimmed body equals body.
func OnlyBody(records []record.Record, body string) []record.Record {
	var out []record.Record
	for _, r := range records {
		if strings.TrimSpace(r.RecommendingBody) == body {
			out = append(out, r)
		}
	}
	return out
}
