package analysis

import (
	"strings"

	"github.com/cognicore/uhri/pkg/uhri/aggregate"
	"github.com/cognicore/uhri/pkg/uhri/ngram"
	"github.com/cognicore/uhri/pkg/uhri/record"
)

// BodyBigrams counts extracted bigrams per listed body. Rows follow bodies,
// including bodies without records; other bodies are ignored.
func BodyBigrams(records []record.Record, bodies []string, ex *ngram.Extractor) *aggregate.Table[string, ngram.Bigram] {
	t := aggregate.NewTable[string, ngram.Bigram]()
	for _, b := range bodies {
		t.Touch(b)
	}
	listed := stringSet(bodies)
	for _, r := range records {
		body := strings.TrimSpace(r.RecommendingBody)
		text := strings.TrimSpace(r.Text)
		if _, ok := listed[body]; !ok || text == "" {
			continue
		}
		row := t.Scope(body)
		for _, b := range ex.Extract(text) {
			row.Inc(b)
		}
	}
	return t
}

// TopBigrams returns the k most frequent bigrams of every row of t.
func TopBigrams[R comparable](t *aggregate.Table[R, ngram.Bigram], k int) map[R][]aggregate.Entry[ngram.Bigram] {
	out := make(map[R][]aggregate.Entry[ngram.Bigram], len(t.Rows()))
	for _, r := range t.Rows() {
		out[r] = t.Scope(r).TopK(k)
	}
	return out
}
