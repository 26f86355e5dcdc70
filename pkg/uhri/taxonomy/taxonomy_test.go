package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groups() *Taxonomy {
	return New(
		Category{Name: "Children", Leaves: []string{"child", "children", "adolescent", "juvenile"}},
		Category{Name: "Women/Girls", Leaves: []string{"women", "woman", "girl", "girls"}},
		Category{Name: "Rural/Poor", Leaves: []string{"remote", "rural", "poor"}},
	)
}

func TestNamesPreserveOrder(t *testing.T) {
	tax := New(
		Category{Name: "z"}, Category{Name: "a"}, Category{Name: "m"},
	)
	assert.Equal(t, []string{"z", "a", "m"}, tax.Names())

	tax.Add("a", "extra")
	assert.Equal(t, []string{"z", "a", "m"}, tax.Names(), "extending a category must not move it")
	assert.Equal(t, []string{"extra"}, tax.Leaves("a"))
	assert.True(t, tax.Has("m"))
	assert.False(t, tax.Has("q"))
	assert.Nil(t, tax.Leaves("q"))
}

func TestClassifyMultiCountsTokenOccurrences(t *testing.T) {
	tokens := []string{"children", "and", "girls", "in", "rural", "areas", "children", "girl"}
	hits := groups().ClassifyMulti(tokens)
	assert.Equal(t, []Hit{
		{Category: "Children", Count: 2},
		{Category: "Women/Girls", Count: 2},
		{Category: "Rural/Poor", Count: 1},
	}, hits)
}

func TestClassifyMultiNoTokens(t *testing.T) {
	hits := groups().ClassifyMulti(nil)
	require.Len(t, hits, 3)
	for _, h := range hits {
		assert.Zero(t, h.Count)
	}
}

func TestClassifyFirstMatch(t *testing.T) {
	tax := groups()
	assert.Equal(t, "Children", tax.ClassifyFirstMatch("Protect CHILDREN and women online"))
	assert.Equal(t, "Women/Girls", tax.ClassifyFirstMatch("Women's access to the internet"))
	assert.Equal(t, Other, tax.ClassifyFirstMatch("Ensure broadband coverage"))
	assert.Equal(t, Other, tax.ClassifyFirstMatch(""))
}

func TestClassifyFirstMatchIsOrderDependent(t *testing.T) {
	a := New(Category{Name: "A", Leaves: []string{"internet"}}, Category{Name: "B", Leaves: []string{"access"}})
	b := New(Category{Name: "B", Leaves: []string{"access"}}, Category{Name: "A", Leaves: []string{"internet"}})
	text := "internet access"
	assert.Equal(t, "A", a.ClassifyFirstMatch(text))
	assert.Equal(t, "B", b.ClassifyFirstMatch(text))
}

func TestMatchAll(t *testing.T) {
	tax := groups()
	assert.Equal(t, []string{"Children", "Women/Girls"}, tax.MatchAll("girls and children"))
	assert.Empty(t, tax.MatchAll("nothing relevant"))
}

func rights() *Taxonomy {
	return New(
		Category{Name: "Right to health", Leaves: []string{"- Right to health"}},
		Category{Name: "Other ESCR", Leaves: []string{"- Right to food", "- Right to social security"}},
		Category{Name: "Freedom of expression", Leaves: []string{"- Freedom of opinion and expression & access to information"}},
	)
}

func TestClassifyCodes(t *testing.T) {
	themes := []string{"- Right to food", "- Right to social security", "- Right to health", "- Right to food"}
	assert.Equal(t, []Hit{
		{Category: "Right to health", Count: 1},
		{Category: "Other ESCR", Count: 2},
		{Category: "Freedom of expression", Count: 0},
	}, rights().ClassifyCodes(themes))
}

func TestClassifyCodesExactLine(t *testing.T) {
	themes := []string{"- Right to health care", "- Right to foods"}
	for _, h := range rights().ClassifyCodes(themes) {
		assert.Zero(t, h.Count, h.Category)
	}
}

func TestMatchedCodes(t *testing.T) {
	got := rights().MatchedCodes([]string{"- Right to social security", "- Right to health"})
	assert.Equal(t, []CodeHit{
		{Category: "Right to health", Code: "- Right to health"},
		{Category: "Other ESCR", Code: "- Right to social security"},
	}, got)
}

func TestCategoriesRoundTrip(t *testing.T) {
	cats := rights().Categories()
	assert.Equal(t, rights().Names(), New(cats...).Names())
	assert.Equal(t, []string{"- Right to food", "- Right to social security"}, cats[1].Leaves)
}

func TestZeroTaxonomy(t *testing.T) {
	var tax Taxonomy
	assert.Zero(t, tax.Len())
	assert.Equal(t, Other, tax.ClassifyFirstMatch("children"))
	assert.Empty(t, tax.MatchAll("children"))

	tax.Add("Children", "child")
	require.True(t, tax.Has("Children"))
	assert.Equal(t, "Children", tax.ClassifyFirstMatch("every child"))
}
