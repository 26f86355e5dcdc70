// Package ngram extracts and filters adjacent token pairs.
package ngram

import (
	"fmt"
	"strings"

	"github.com/cognicore/uhri/pkg/uhri/ingest"
)

// Bigram is an ordered pair of adjacent tokens.
type Bigram struct {
	First, Second string
}

// String joins the pair with a space, the form used in report tables.
func (b Bigram) String() string {
	return b.First + " " + b.Second
}

// Parse reads a bigram from "first second".
func Parse(s string) (Bigram, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Bigram{}, fmt.Errorf("bigram %q: want two tokens, got %d", s, len(parts))
	}
	return Bigram{First: strings.ToLower(parts[0]), Second: strings.ToLower(parts[1])}, nil
}

// Bigrams returns the n-1 overlapping adjacent pairs of tokens.
func Bigrams(tokens []string) []Bigram {
	if len(tokens) < 2 {
		return nil
	}
	out := make([]Bigram, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		out = append(out, Bigram{First: tokens[i], Second: tokens[i+1]})
	}
	return out
}

// Filter decides whether a bigram is kept.
type Filter func(Bigram) bool

// Including keeps a bigram iff either token is one of targets.
func Including(targets ...string) Filter {
	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[strings.ToLower(t)] = struct{}{}
	}
	return func(b Bigram) bool {
		if _, ok := set[b.First]; ok {
			return true
		}
		_, ok := set[b.Second]
		return ok
	}
}

// Excluding drops a bigram iff it equals one of ignore.
func Excluding(ignore ...Bigram) Filter {
	set := make(map[Bigram]struct{}, len(ignore))
	for _, b := range ignore {
		set[b] = struct{}{}
	}
	return func(b Bigram) bool {
		_, drop := set[b]
		return !drop
	}
}

// Apply runs filters in the given order and returns the surviving bigrams.
func Apply(bigrams []Bigram, filters ...Filter) []Bigram {
	if len(filters) == 0 {
		return bigrams
	}
	out := make([]Bigram, 0, len(bigrams))
next:
	for _, b := range bigrams {
		for _, f := range filters {
			if !f(b) {
				continue next
			}
		}
		out = append(out, b)
	}
	return out
}

// Extractor tokenizes text and returns its filtered bigrams.
type Extractor struct {
	Tokenizer *ingest.Tokenizer
	Filters   []Filter
}

// NewExtractor creates an extractor applying filters in order.
func NewExtractor(tok *ingest.Tokenizer, filters ...Filter) *Extractor {
	return &Extractor{Tokenizer: tok, Filters: filters}
}

// Extract returns the filtered bigrams of text.
func (e *Extractor) Extract(text string) []Bigram {
	if text == "" {
		return nil
	}
	return Apply(Bigrams(e.Tokenizer.Tokenize(text)), e.Filters...)
}
