// Package record turns raw corpus rows into normalized recommendation records.
package record

import (
	"reflect"
	"strings"
	"time"
)

// RawRecord is one corpus row as produced by the ingestion collaborator.
// Values are whatever the reader decoded: strings, numbers, timestamps, nil.
type RawRecord map[string]any

// Fields names the raw columns the normalizer reads.
type Fields struct {
	Text   string
	Body   string
	Date   string
	Themes string
}

// DefaultFields returns the column names used by the index export.
// "Reccomending Body" is misspelled in the export itself.
func DefaultFields() Fields {
	return Fields{
		Text:   "Text",
		Body:   "Reccomending Body",
		Date:   "Document Publication Date",
		Themes: "Themes",
	}
}

// Record is a normalized recommendation.
type Record struct {
	Text             string
	RecommendingBody string
	PublicationDate  string // "" when absent
	Year             int    // 0 when PublicationDate is absent or unparseable
	Themes           []string
	Extra            map[string]any
}

// HasYear reports whether a year was derived for the record.
func (r Record) HasYear() bool {
	return r.Year != 0
}

// HasTheme reports whether code is one of the record's theme lines.
func (r Record) HasTheme(code string) bool {
	for _, t := range r.Themes {
		if t == code {
			return true
		}
	}
	return false
}

// IsEmpty reports whether every field of the record is empty.
func (r Record) IsEmpty() bool {
	if r.Text != "" || r.RecommendingBody != "" || r.PublicationDate != "" || r.Year != 0 || len(r.Themes) > 0 {
		return false
	}
	for _, v := range r.Extra {
		if !isEmptyValue(v) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether every value is nil, "" or an empty sequence.
func IsEmpty(raw RawRecord) bool {
	for _, v := range raw {
		if !isEmptyValue(v) {
			return false
		}
	}
	return true
}

func isEmptyValue(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []any:
		return len(x) == 0
	case []string:
		return len(x) == 0
	case time.Time:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// SplitThemes splits a newline-delimited theme field into its code lines.
// Lines are trimmed and blank lines dropped; order and duplicates are kept.
func SplitThemes(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
