// Package taxonomy classifies records against ordered category tables.
//
// A Taxonomy maps category names to leaf strings: literal word forms for
// concerned-group taxonomies, exact thematic codes for rights taxonomies.
// Category order is insertion order and is part of the contract, since
// ClassifyFirstMatch returns the first matching category.
package taxonomy

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Other is returned by ClassifyFirstMatch when no category matches.
const Other = "Other"

// Category is one named leaf set.
type Category struct {
	Name   string   `yaml:"name" toml:"name"`
	Leaves []string `yaml:"leaves" toml:"leaves"`
}

// Hit is a per-category count.
type Hit struct {
	Category string
	Count    int
}

// CodeHit is one thematic code found on a record.
type CodeHit struct {
	Category string
	Code     string
}

type leafSet struct {
	order []string
	lower []string
	set   map[string]struct{}
}

func (l *leafSet) add(leaf string) {
	if _, ok := l.set[leaf]; ok {
		return
	}
	l.set[leaf] = struct{}{}
	l.order = append(l.order, leaf)
	l.lower = append(l.lower, strings.ToLower(leaf))
}

// Taxonomy is an ordered category → leaf-set mapping. The zero value is an
// empty taxonomy.
type Taxonomy struct {
	cats *orderedmap.OrderedMap[string, *leafSet]
}

// noCats stands in for the categories of a zero Taxonomy. Never written.
var noCats = orderedmap.New[string, *leafSet]()

func (t *Taxonomy) list() *orderedmap.OrderedMap[string, *leafSet] {
	if t.cats == nil {
		return noCats
	}
	return t.cats
}

// New builds a taxonomy from categories in order.
func New(cats ...Category) *Taxonomy {
	t := &Taxonomy{cats: orderedmap.New[string, *leafSet]()}
	for _, c := range cats {
		t.Add(c.Name, c.Leaves...)
	}
	return t
}

// Add appends a category, or extends an existing one without moving it.
func (t *Taxonomy) Add(name string, leaves ...string) {
	if t.cats == nil {
		t.cats = orderedmap.New[string, *leafSet]()
	}
	ls, ok := t.cats.Get(name)
	if !ok {
		ls = &leafSet{set: make(map[string]struct{}, len(leaves))}
		t.cats.Set(name, ls)
	}
	for _, leaf := range leaves {
		if leaf == "" {
			continue
		}
		ls.add(leaf)
	}
}

// Len returns the number of categories.
func (t *Taxonomy) Len() int {
	return t.list().Len()
}

// Has reports whether name is a category.
func (t *Taxonomy) Has(name string) bool {
	_, ok := t.list().Get(name)
	return ok
}

// Names returns category names in order.
func (t *Taxonomy) Names() []string {
	names := make([]string, 0, t.list().Len())
	for p := t.list().Oldest(); p != nil; p = p.Next() {
		names = append(names, p.Key)
	}
	return names
}

// Leaves returns a category's leaves in declaration order.
func (t *Taxonomy) Leaves(name string) []string {
	ls, ok := t.list().Get(name)
	if !ok {
		return nil
	}
	out := make([]string, len(ls.order))
	copy(out, ls.order)
	return out
}

// Categories returns the taxonomy as an ordered list.
func (t *Taxonomy) Categories() []Category {
	out := make([]Category, 0, t.list().Len())
	for p := t.list().Oldest(); p != nil; p = p.Next() {
		out = append(out, Category{Name: p.Key, Leaves: t.Leaves(p.Key)})
	}
	return out
}

// ClassifyMulti counts, per category, the tokens equal to one of its word
// forms. Counts are token occurrences, so one record can add several
// mentions to several categories. Every category is returned, in order.
func (t *Taxonomy) ClassifyMulti(tokens []string) []Hit {
	hits := make([]Hit, 0, t.list().Len())
	for p := t.list().Oldest(); p != nil; p = p.Next() {
		n := 0
		for _, tok := range tokens {
			if _, ok := p.Value.set[tok]; ok {
				n++
			}
		}
		hits = append(hits, Hit{Category: p.Key, Count: n})
	}
	return hits
}

// ClassifyCodes counts, per category, the category codes present among the
// record's theme lines. Matching is exact line equality, so a code that is a
// prefix of another never matches it. Every category is returned, in order.
func (t *Taxonomy) ClassifyCodes(themes []string) []Hit {
	lines := lineSet(themes)
	hits := make([]Hit, 0, t.list().Len())
	for p := t.list().Oldest(); p != nil; p = p.Next() {
		n := 0
		for _, code := range p.Value.order {
			if _, ok := lines[code]; ok {
				n++
			}
		}
		hits = append(hits, Hit{Category: p.Key, Count: n})
	}
	return hits
}

// MatchedCodes lists every (category, code) pair present among themes.
func (t *Taxonomy) MatchedCodes(themes []string) []CodeHit {
	lines := lineSet(themes)
	var out []CodeHit
	for p := t.list().Oldest(); p != nil; p = p.Next() {
		for _, code := range p.Value.order {
			if _, ok := lines[code]; ok {
				out = append(out, CodeHit{Category: p.Key, Code: code})
			}
		}
	}
	return out
}

// ClassifyFirstMatch returns the first category, in taxonomy order, with a
// leaf that is a substring of the lowercased text, or Other.
func (t *Taxonomy) ClassifyFirstMatch(text string) string {
	lower := strings.ToLower(text)
	for p := t.list().Oldest(); p != nil; p = p.Next() {
		if p.Value.containedIn(lower) {
			return p.Key
		}
	}
	return Other
}

// MatchAll returns every category with a leaf that is a substring of the
// lowercased text, in taxonomy order.
func (t *Taxonomy) MatchAll(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for p := t.list().Oldest(); p != nil; p = p.Next() {
		if p.Value.containedIn(lower) {
			out = append(out, p.Key)
		}
	}
	return out
}

func (l *leafSet) containedIn(lower string) bool {
	for _, leaf := range l.lower {
		if strings.Contains(lower, leaf) {
			return true
		}
	}
	return false
}

func lineSet(themes []string) map[string]struct{} {
	set := make(map[string]struct{}, len(themes))
	for _, line := range themes {
		set[line] = struct{}{}
	}
	return set
}
