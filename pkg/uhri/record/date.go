package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"

	"github.com/cognicore/uhri/pkg/uhri/internalerr"
)

const (
	// MinYear and MaxYear bound every derived year.
	MinYear = 1900
	MaxYear = 2100
)

var (
	errEmptyDate       = errors.New("empty date")
	errUnsupportedType = errors.New("unsupported date type")
	errOutOfRange      = errors.New("year out of range")
)

// DateParseError describes a publication date no year could be derived from.
type DateParseError struct {
	Input string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parse date %q: %v", e.Input, e.Err)
}

// Unwrap lets callers match internalerr.ErrDateParse.
func (e *DateParseError) Unwrap() error {
	return internalerr.ErrDateParse
}

// RenderDate turns a raw date value into a string. Timestamps are rendered
// as YYYY-MM-DD. The bool is false for values that are not dates at all.
func RenderDate(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x), true
	case time.Time:
		if x.IsZero() {
			return "", true
		}
		return x.Format("2006-01-02"), true
	case *time.Time:
		if x == nil || x.IsZero() {
			return "", true
		}
		return x.Format("2006-01-02"), true
	case nil:
		return "", true
	}
	return "", false
}

// ParseYear derives the publication year from a raw date value. Parsing is
// lenient: day-first numeric dates, partial dates ("March 2015") and dates
// wrapped in other words ("Published 12 March 2015") all yield a year.
func ParseYear(v any) (int, error) {
	s, ok := RenderDate(v)
	if !ok {
		return 0, &DateParseError{Input: fmt.Sprint(v), Err: errUnsupportedType}
	}
	if s == "" {
		return 0, &DateParseError{Input: s, Err: errEmptyDate}
	}
	if y, ok := bareYear(s); ok {
		return checkYear(s, y)
	}
	if y, ok := numericDate(s); ok {
		return checkYear(s, y)
	}
	t, err := parseAny(s, dateparse.RetryAmbiguousDateWithSwap(true))
	if err == nil {
		return checkYear(s, t.Year())
	}
	if y, ok := cleanedYear(s); ok {
		return checkYear(s, y)
	}
	return 0, &DateParseError{Input: s, Err: err}
}

// parseAny wraps dateparse.ParseAny, which panics on some malformed inputs.
func parseAny(s string, opts ...dateparse.ParserOption) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("dateparse: %v", r)
		}
	}()
	return dateparse.ParseAny(s, opts...)
}

// cleanedYear drops the words that are not part of a date and parses what
// is left, falling back to a year token among the kept ones.
func cleanedYear(s string) (int, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == ';' || r == '(' || r == ')' || r == '[' || r == ']'
	})
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if tok, ok := dateToken(f); ok {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		return 0, false
	}
	if t, err := parseAny(strings.Join(kept, " "), dateparse.RetryAmbiguousDateWithSwap(true)); err == nil {
		return t.Year(), true
	}
	for _, tok := range kept {
		if y, ok := bareYear(tok); ok {
			return y, true
		}
		if y, ok := numericDate(tok); ok {
			return y, true
		}
	}
	return 0, false
}

// numericDate reads the year out of d/m/yyyy, m-d-yyyy, yyyy.m.d and
// similar all-numeric dates.
func numericDate(s string) (int, bool) {
	parts := strings.FieldsFunc(s, isDateSep)
	if len(parts) != 3 {
		return 0, false
	}
	year, small := 0, make([]int, 0, 2)
	for _, p := range parts {
		if !isDigits(p) {
			return 0, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, false
		}
		switch {
		case len(p) == 4 && year == 0:
			year = n
		case len(p) <= 2 && n >= 1 && n <= 31:
			small = append(small, n)
		default:
			return 0, false
		}
	}
	if year < MinYear || year > MaxYear || len(small) != 2 || min(small[0], small[1]) > 12 {
		return 0, false
	}
	return year, true
}

func isDateSep(r rune) bool {
	return r == '/' || r == '-' || r == '.'
}

// DeriveYear is ParseYear with failures mapped to 0, the unknown year.
func DeriveYear(v any) int {
	y, err := ParseYear(v)
	if err != nil {
		return 0
	}
	return y
}

// ParseYearFuzzy re-derives a year from free-form date text, reading
// ambiguous numeric dates day first and, when nothing parses, taking the
// first plausible four-digit year anywhere in the text ("A/HRC/2015/12").
// It is independent of the year stored on a Record.
func ParseYearFuzzy(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &DateParseError{Input: s, Err: errEmptyDate}
	}
	if y, ok := numericDate(s); ok {
		return checkYear(s, y)
	}
	if t, err := parseAny(s, dateparse.PreferMonthFirst(false)); err == nil {
		if y, err := checkYear(s, t.Year()); err == nil {
			return y, nil
		}
	}
	if y, err := ParseYear(s); err == nil {
		return y, nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, f := range fields {
		if y, ok := bareYear(f); ok && y >= MinYear && y <= MaxYear {
			return y, nil
		}
	}
	return 0, &DateParseError{Input: s, Err: errors.New("no date found")}
}

func checkYear(input string, y int) (int, error) {
	if y < 100 {
		y += 2000
	}
	if y < MinYear || y > MaxYear {
		return 0, &DateParseError{Input: input, Err: errOutOfRange}
	}
	return y, nil
}

func bareYear(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	y, err := strconv.Atoi(s)
	return y, err == nil
}

var monthWords = map[string]struct{}{
	"jan": {}, "january": {}, "feb": {}, "february": {}, "mar": {}, "march": {},
	"apr": {}, "april": {}, "may": {}, "jun": {}, "june": {}, "jul": {}, "july": {},
	"aug": {}, "august": {}, "sep": {}, "sept": {}, "september": {}, "oct": {},
	"october": {}, "nov": {}, "november": {}, "dec": {}, "december": {},
}

// dateToken keeps month names, numbers and numeric dates, with ordinal
// suffixes ("12th") removed.
func dateToken(f string) (string, bool) {
	lower := strings.ToLower(strings.TrimRight(f, "."))
	if _, ok := monthWords[lower]; ok {
		return lower, true
	}
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if trimmed, ok := strings.CutSuffix(lower, suffix); ok && trimmed != "" && isDigits(trimmed) {
			return trimmed, true
		}
	}
	hasDigit := false
	for _, r := range lower {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '-' || r == '/' || r == '.' || r == ':':
		default:
			return "", false
		}
	}
	return lower, hasDigit
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
