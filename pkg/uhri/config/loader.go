package config

import (
	"fmt"
	"log/slog"

	"github.com/cognicore/uhri/pkg/uhri/ingest"
	"github.com/cognicore/uhri/pkg/uhri/keyword"
	"github.com/cognicore/uhri/pkg/uhri/ngram"
	"github.com/cognicore/uhri/pkg/uhri/record"
	"github.com/cognicore/uhri/pkg/uhri/stoplist"
	"github.com/cognicore/uhri/pkg/uhri/taxonomy"
)

// Loader loads the vocabulary and constructs components
type Loader struct {
	VocabularyPath string
	StoplistPath   string
	Logger         *slog.Logger
}

// Components holds every configured component the reports use
type Components struct {
	Vocabulary *Vocabulary
	Normalizer *record.Normalizer

	Keywords keyword.Set
	Targets  keyword.Set

	Groups      *taxonomy.Taxonomy // short labels
	GroupsLong  *taxonomy.Taxonomy // long labels, for bigram breakdowns
	Rights      *taxonomy.Taxonomy
	ThemeGroups *taxonomy.Taxonomy

	// MentionTokenizer keeps stopwords so group words are always counted.
	MentionTokenizer *ingest.Tokenizer

	GroupExtractor     *ngram.Extractor
	CommitteeExtractor *ngram.Extractor
	BodyExtractor      *ngram.Extractor
}

// Load reads the configured files and returns initialized components.
// Empty paths fall back to the built-in vocabulary.
func (l *Loader) Load() (*Components, error) {
	v := Default()
	if l.VocabularyPath != "" {
		loaded, err := LoadVocabulary(l.VocabularyPath)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary: %w", err)
		}
		v = loaded
	}

	stops := stoplist.NewManager(stoplist.English(), v.Stopwords)
	if l.StoplistPath != "" {
		sl, err := LoadStoplist(l.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		for _, term := range sl.Terms {
			stops.Add(term)
		}
	}

	return Build(v, stops, l.Logger)
}

// Build constructs components from an explicit vocabulary and stop list.
func Build(v *Vocabulary, stops *stoplist.Manager, logger *slog.Logger) (*Components, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	ignored := make([]ngram.Bigram, 0, len(v.IgnoredBigrams))
	for _, s := range v.IgnoredBigrams {
		b, err := ngram.Parse(s)
		if err != nil {
			return nil, err
		}
		ignored = append(ignored, b)
	}

	comp := &Components{
		Vocabulary:  v,
		Normalizer:  record.NewNormalizer(),
		Keywords:    keyword.NewSet(v.Keywords...),
		Targets:     keyword.NewSet(v.TargetPhrases...),
		Groups:      taxonomy.New(),
		GroupsLong:  taxonomy.New(),
		Rights:      taxonomy.New(v.Rights...),
		ThemeGroups: taxonomy.New(v.ThemeGroups...),

		MentionTokenizer: ingest.NewTokenizer(nil),
	}
	comp.Normalizer.Logger = logger
	for _, g := range v.Groups {
		long := g.Long
		if long == "" {
			long = g.Name
		}
		comp.Groups.Add(g.Name, g.Words...)
		comp.GroupsLong.Add(long, g.Words...)
	}

	wordTok := ingest.NewTokenizerFromStoplist(stops)
	alphaTok := ingest.NewTokenizerFromStoplist(stops, ingest.WithAlphaOnly())
	comp.GroupExtractor = ngram.NewExtractor(wordTok, ngram.Including(v.BigramTargets...))
	comp.CommitteeExtractor = ngram.NewExtractor(alphaTok, ngram.Including(v.BigramTargets...))
	comp.BodyExtractor = ngram.NewExtractor(alphaTok, ngram.Excluding(ignored...))

	return comp, nil
}
