package analysis

import (
	"github.com/cognicore/uhri/pkg/uhri/aggregate"
	"github.com/cognicore/uhri/pkg/uhri/ingest"
	"github.com/cognicore/uhri/pkg/uhri/ngram"
	"github.com/cognicore/uhri/pkg/uhri/record"
	"github.com/cognicore/uhri/pkg/uhri/taxonomy"
)

// GroupMentionsByYear counts token occurrences of each group's word forms
// per (year, group). Records with an unknown or out-of-range year, or no
// text, are skipped. tok should not drop group words as stopwords.
func GroupMentionsByYear(records []record.Record, groups *taxonomy.Taxonomy, tok *ingest.Tokenizer, years aggregate.YearRange) *aggregate.Table[int, string] {
	t := aggregate.NewTable[int, string]()
	for _, r := range records {
		if !years.Contains(r.Year) || r.Text == "" {
			continue
		}
		for _, h := range groups.ClassifyMulti(tok.Tokenize(r.Text)) {
			t.Add(r.Year, h.Category, int64(h.Count))
		}
	}
	return t
}

// GroupBigrams counts extracted bigrams per concerned group. A record
// counts toward every group with a word form in its text.
func GroupBigrams(records []record.Record, groups *taxonomy.Taxonomy, ex *ngram.Extractor) *aggregate.Table[string, ngram.Bigram] {
	t := aggregate.NewTable[string, ngram.Bigram]()
	for _, name := range groups.Names() {
		t.Touch(name)
	}
	for _, r := range records {
		if r.Text == "" {
			continue
		}
		matched := groups.MatchAll(r.Text)
		if len(matched) == 0 {
			continue
		}
		bgs := ex.Extract(r.Text)
		for _, g := range matched {
			row := t.Scope(g)
			for _, b := range bgs {
				row.Inc(b)
			}
		}
	}
	return t
}

// GroupCommittee scopes bigram counts to one group and one issuing body.
type GroupCommittee struct {
	Group     string
	Committee string
}

// UnknownCommittee labels records without a recommending body in
// GroupCommitteeBigrams.
const UnknownCommittee = "Unknown Committee"

// GroupCommitteeBigrams counts extracted bigrams per (group, committee).
// Each record belongs to its first matching group, or taxonomy.Other, and
// special-mechanism bodies collapse to record.SpecialProcedures.
func GroupCommitteeBigrams(records []record.Record, groups *taxonomy.Taxonomy, ex *ngram.Extractor) *aggregate.Table[GroupCommittee, ngram.Bigram] {
	t := aggregate.NewTable[GroupCommittee, ngram.Bigram]()
	for _, r := range records {
		if r.Text == "" {
			continue
		}
		committee := r.RecommendingBody
		if committee == "" {
			committee = UnknownCommittee
		}
		key := GroupCommittee{
			Group:     groups.ClassifyFirstMatch(r.Text),
			Committee: record.StandardizeBody(committee, record.BodyReplace),
		}
		row := t.Touch(key)
		for _, b := range ex.Extract(r.Text) {
			row.Inc(b)
		}
	}
	return t
}
