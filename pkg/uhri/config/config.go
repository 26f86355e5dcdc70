package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/uhri/pkg/uhri/aggregate"
	"github.com/cognicore/uhri/pkg/uhri/internalerr"
	"github.com/cognicore/uhri/pkg/uhri/ngram"
	"github.com/cognicore/uhri/pkg/uhri/taxonomy"
	"github.com/cognicore/uhri/pkg/uhri/vocab"
)

// Group is a concerned group in a vocabulary file.
type Group struct {
	Name  string   `yaml:"name" toml:"name"`
	Long  string   `yaml:"long" toml:"long"`
	Words []string `yaml:"words" toml:"words"`
}

// Ranges are the year ranges each report covers.
type Ranges struct {
	Full        aggregate.YearRange `yaml:"full" toml:"full"`
	Bodies      aggregate.YearRange `yaml:"bodies" toml:"bodies"`
	UPR         aggregate.YearRange `yaml:"upr" toml:"upr"`
	Rights      aggregate.YearRange `yaml:"rights" toml:"rights"`
	EarlyTheme  aggregate.YearRange `yaml:"early_theme" toml:"early_theme"`
	LateTheme   aggregate.YearRange `yaml:"late_theme" toml:"late_theme"`
	YearlyTheme aggregate.YearRange `yaml:"yearly_theme" toml:"yearly_theme"` // per-year theme groups
}

// Vocabulary is every word list, taxonomy and range the reports use.
// Ordered categories are sequences so their order survives the file.
type Vocabulary struct {
	Keywords        []string            `yaml:"keywords" toml:"keywords"`
	TargetPhrases   []string            `yaml:"target_phrases" toml:"target_phrases"`
	BigramTargets   []string            `yaml:"bigram_targets" toml:"bigram_targets"`
	Stopwords       []string            `yaml:"stopwords" toml:"stopwords"`
	Groups          []Group             `yaml:"groups" toml:"groups"`
	Rights          []taxonomy.Category `yaml:"rights" toml:"rights"`
	ESC             []string            `yaml:"esc" toml:"esc"`
	CCPR            []string            `yaml:"ccpr" toml:"ccpr"`
	ThemeGroups     []taxonomy.Category `yaml:"theme_groups" toml:"theme_groups"`
	UPRTheme        string              `yaml:"upr_theme" toml:"upr_theme"`
	TreatyBodies    []string            `yaml:"treaty_bodies" toml:"treaty_bodies"`
	SelectedBodies  []string            `yaml:"selected_bodies" toml:"selected_bodies"`
	IgnoredBigrams  []string            `yaml:"ignored_bigrams" toml:"ignored_bigrams"`
	ActiveThreshold int64               `yaml:"active_threshold" toml:"active_threshold"`
	Ranges          Ranges              `yaml:"ranges" toml:"ranges"`
}

var defaultVocabulary = sync.OnceValue(func() *Vocabulary {
	groups := vocab.Groups()
	gs := make([]Group, len(groups))
	for i, g := range groups {
		gs[i] = Group{Name: g.Name, Long: g.Long, Words: g.Words}
	}
	ignored := vocab.IgnoredBigrams()
	is := make([]string, len(ignored))
	for i, b := range ignored {
		is[i] = b.String()
	}
	return &Vocabulary{
		Keywords:        vocab.Keywords(),
		TargetPhrases:   vocab.TargetPhrases(),
		BigramTargets:   vocab.BigramTargets(),
		Stopwords:       vocab.CustomStopwords(),
		Groups:          gs,
		Rights:          vocab.RightsTaxonomy().Categories(),
		ESC:             vocab.ESCCategories(),
		CCPR:            vocab.CCPRCategories(),
		ThemeGroups:     vocab.ThemeGroups().Categories(),
		UPRTheme:        vocab.FreedomOfExpression,
		TreatyBodies:    vocab.TreatyBodies(),
		SelectedBodies:  vocab.SelectedBodies(),
		IgnoredBigrams:  is,
		ActiveThreshold: vocab.ActiveThreshold,
		Ranges: Ranges{
			Full:        vocab.FullRange,
			Bodies:      vocab.BodyRange,
			UPR:         vocab.UPRRange,
			Rights:      vocab.RightsRange,
			EarlyTheme:  vocab.EarlyThemeRange,
			LateTheme:   vocab.LateThemeRange,
			YearlyTheme: vocab.YearlyThemeRange,
		},
	}
})

// Default returns a copy of the built-in vocabulary. The built-in value is
// constructed once per process.
func Default() *Vocabulary {
	return defaultVocabulary().Clone()
}

// Clone returns a deep copy of v.
func (v *Vocabulary) Clone() *Vocabulary {
	out := *v
	out.Keywords = slices.Clone(v.Keywords)
	out.TargetPhrases = slices.Clone(v.TargetPhrases)
	out.BigramTargets = slices.Clone(v.BigramTargets)
	out.Stopwords = slices.Clone(v.Stopwords)
	out.Groups = make([]Group, len(v.Groups))
	for i, g := range v.Groups {
		g.Words = slices.Clone(g.Words)
		out.Groups[i] = g
	}
	out.Rights = cloneCategories(v.Rights)
	out.ESC = slices.Clone(v.ESC)
	out.CCPR = slices.Clone(v.CCPR)
	out.ThemeGroups = cloneCategories(v.ThemeGroups)
	out.TreatyBodies = slices.Clone(v.TreatyBodies)
	out.SelectedBodies = slices.Clone(v.SelectedBodies)
	out.IgnoredBigrams = slices.Clone(v.IgnoredBigrams)
	return &out
}

func cloneCategories(cats []taxonomy.Category) []taxonomy.Category {
	out := make([]taxonomy.Category, len(cats))
	for i, c := range cats {
		out[i] = taxonomy.Category{Name: c.Name, Leaves: slices.Clone(c.Leaves)}
	}
	return out
}

// LoadVocabulary reads a YAML or TOML vocabulary file, chosen by extension,
// over the defaults. Keys absent from the file keep their default values.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file Vocabulary
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("%w: unsupported vocabulary format %q", internalerr.ErrInvalidConfig, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", internalerr.ErrInvalidConfig, path, err)
	}

	v := Default()
	v.overlay(&file)
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// overlay replaces every field of v that o sets.
func (v *Vocabulary) overlay(o *Vocabulary) {
	setSlice(&v.Keywords, o.Keywords)
	setSlice(&v.TargetPhrases, o.TargetPhrases)
	setSlice(&v.BigramTargets, o.BigramTargets)
	setSlice(&v.Stopwords, o.Stopwords)
	setSlice(&v.Groups, o.Groups)
	setSlice(&v.Rights, o.Rights)
	setSlice(&v.ESC, o.ESC)
	setSlice(&v.CCPR, o.CCPR)
	setSlice(&v.ThemeGroups, o.ThemeGroups)
	setSlice(&v.TreatyBodies, o.TreatyBodies)
	setSlice(&v.SelectedBodies, o.SelectedBodies)
	setSlice(&v.IgnoredBigrams, o.IgnoredBigrams)
	if o.UPRTheme != "" {
		v.UPRTheme = o.UPRTheme
	}
	if o.ActiveThreshold != 0 {
		v.ActiveThreshold = o.ActiveThreshold
	}
	setRange(&v.Ranges.Full, o.Ranges.Full)
	setRange(&v.Ranges.Bodies, o.Ranges.Bodies)
	setRange(&v.Ranges.UPR, o.Ranges.UPR)
	setRange(&v.Ranges.Rights, o.Ranges.Rights)
	setRange(&v.Ranges.EarlyTheme, o.Ranges.EarlyTheme)
	setRange(&v.Ranges.LateTheme, o.Ranges.LateTheme)
	setRange(&v.Ranges.YearlyTheme, o.Ranges.YearlyTheme)
}

// setSlice keeps dst unless the file set the key, even to an empty list.
func setSlice[T any](dst *[]T, src []T) {
	if src != nil {
		*dst = src
	}
}

func setRange(dst *aggregate.YearRange, src aggregate.YearRange) {
	if src != (aggregate.YearRange{}) {
		*dst = src
	}
}

// Validate checks the vocabulary for values the reports cannot use.
func (v *Vocabulary) Validate() error {
	if len(v.Keywords) == 0 {
		return fmt.Errorf("%w: no keywords", internalerr.ErrInvalidConfig)
	}
	if err := uniqueNames("group", groupNames(v.Groups)); err != nil {
		return err
	}
	if err := uniqueNames("rights category", categoryNames(v.Rights)); err != nil {
		return err
	}
	if err := uniqueNames("theme group", categoryNames(v.ThemeGroups)); err != nil {
		return err
	}
	rights := categoryNames(v.Rights)
	for _, name := range append(slices.Clone(v.ESC), v.CCPR...) {
		if !slices.Contains(rights, name) {
			return fmt.Errorf("%w: split category %q is not a rights category", internalerr.ErrInvalidConfig, name)
		}
	}
	for _, s := range v.IgnoredBigrams {
		if _, err := ngram.Parse(s); err != nil {
			return fmt.Errorf("%w: ignored bigram: %v", internalerr.ErrInvalidConfig, err)
		}
	}
	if v.ActiveThreshold < 0 {
		return fmt.Errorf("%w: negative active threshold", internalerr.ErrInvalidConfig)
	}
	for name, r := range map[string]aggregate.YearRange{
		"full": v.Ranges.Full, "bodies": v.Ranges.Bodies, "upr": v.Ranges.UPR,
		"rights": v.Ranges.Rights, "early_theme": v.Ranges.EarlyTheme, "late_theme": v.Ranges.LateTheme,
		"yearly_theme": v.Ranges.YearlyTheme,
	} {
		if r.End < r.Start {
			return fmt.Errorf("%w: range %s ends before it starts", internalerr.ErrInvalidConfig, name)
		}
	}
	return nil
}

func uniqueNames(kind string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			return fmt.Errorf("%w: unnamed %s", internalerr.ErrInvalidConfig, kind)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: duplicate %s %q", internalerr.ErrInvalidConfig, kind, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

func groupNames(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Name
	}
	return out
}

func categoryNames(cats []taxonomy.Category) []string {
	out := make([]string, len(cats))
	for i, c := range cats {
		out[i] = c.Name
	}
	return out
}

// Stoplist represents an extra stopword list file
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}
