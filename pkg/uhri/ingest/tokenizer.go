// Package ingest turns recommendation text into token sequences.
package ingest

import (
	"strings"
	"unicode"

	"github.com/cognicore/uhri/pkg/uhri/stoplist"
)

// Tokenizer handles text tokenization and normalization.
// The zero value splits without dropping stopwords.
type Tokenizer struct {
	stopwords map[string]struct{}
	alphaOnly bool
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithAlphaOnly drops every token containing a non-letter rune
// (numbers, "covid-19", "child-friendly").
func WithAlphaOnly() Option {
	return func(t *Tokenizer) { t.alphaOnly = true }
}

// NewTokenizer creates a new tokenizer with the given stopword list
func NewTokenizer(stopwords []string, opts ...Option) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	t := &Tokenizer{stopwords: stops}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTokenizerFromStoplist creates a tokenizer over a snapshot of m.
func NewTokenizerFromStoplist(m *stoplist.Manager, opts ...Option) *Tokenizer {
	return NewTokenizer(m.All(), opts...)
}

// AlphaOnly reports whether non-alphabetic tokens are dropped.
func (t *Tokenizer) AlphaOnly() bool {
	return t.alphaOnly
}

// Tokenize splits text into lowercase word tokens, removing stopwords.
// Letters, digits and inner hyphens form words; everything else separates
// them. The result is a fresh slice callers may iterate any number of times.
func (t *Tokenizer) Tokenize(text string) []string {
	tokens := make([]string, 0, len(text)/6)
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(unicode.ToLower(r))
		} else {
			if current.Len() > 0 {
				word := t.processToken(current.String())
				if word != "" {
					tokens = append(tokens, word)
				}
				current.Reset()
			}
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		word := t.processToken(current.String())
		if word != "" {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// processToken applies cleaning, the alphabetic restriction and stopword filtering.
func (t *Tokenizer) processToken(token string) string {
	word := cleanToken(token)
	if word == "" {
		return ""
	}

	if t.alphaOnly && !isAlpha(word) {
		return ""
	}

	if t.isStopword(word) {
		return ""
	}

	return word
}

// cleanToken strips leading/trailing hyphens and normalizes consecutive hyphens
func cleanToken(token string) string {
	token = strings.Trim(token, "-")

	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}

	return token
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func (t *Tokenizer) isStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}

// AddStopword adds a word to the stopword list
func (t *Tokenizer) AddStopword(word string) {
	if t.stopwords == nil {
		t.stopwords = make(map[string]struct{})
	}
	t.stopwords[strings.ToLower(word)] = struct{}{}
}

// RemoveStopword removes a word from the stopword list
func (t *Tokenizer) RemoveStopword(word string) {
	delete(t.stopwords, strings.ToLower(word))
}
