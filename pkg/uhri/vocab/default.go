// Package vocab holds the built-in vocabularies of the internet-access
// study: keyword lists, concerned groups, rights taxonomies and the
// recommending bodies reported on.
//
// Every value is returned as a fresh copy so callers may modify it.
package vocab

import (
	"github.com/cognicore/uhri/pkg/uhri/aggregate"
	"github.com/cognicore/uhri/pkg/uhri/ngram"
	"github.com/cognicore/uhri/pkg/uhri/taxonomy"
)

// FreedomOfExpression is the theme code tracked in the UPR analysis.
const FreedomOfExpression = "- Freedom of opinion and expression & access to information"

// Keywords select internet-related recommendations at ingestion.
func Keywords() []string {
	return []string{"internet", "online", "digital"}
}

// TargetPhrases mark recommendations specifically about internet access.
func TargetPhrases() []string {
	return []string{
		"internet access", "digital divide", "connectivity",
		"access online", "access digital",
	}
}

// BigramTargets keep bigrams that mention the digital environment.
func BigramTargets() []string {
	return []string{"internet", "digital", "online"}
}

// CustomStopwords extend the English stop list for bigram extraction.
func CustomStopwords() []string {
	return []string{"including", "exclusively"}
}

// Group is a concerned group: its word forms and its labels.
type Group struct {
	Name  string // short label used in frequency tables
	Long  string // label used in bigram breakdowns
	Words []string
}

// Groups lists the concerned groups in report order.
func Groups() []Group {
	return []Group{
		{Name: "Children", Long: "Children", Words: []string{"child", "children", "adolescent", "adolescents", "juvenile", "juveniles"}},
		{Name: "Migrants/Refugees", Long: "Migrants & Refugees", Words: []string{"migrant", "migrants", "migrating", "asylum", "refugee", "refugees", "stateless"}},
		{Name: "Women/Girls", Long: "Women/Girls", Words: []string{"women", "woman", "girl", "girls", "female"}},
		{Name: "Persons w/ Disabilities", Long: "Persons with Disabilities", Words: []string{"disabilities", "disability"}},
		{Name: "Minorities/Indigenous", Long: "Minorities & Indigenous", Words: []string{"indigenous", "minority", "minorities", "ethnic", "racial"}},
		{Name: "Rural/Poor", Long: "Remote/Poor", Words: []string{"remote", "rural", "poor"}},
		{Name: "Older/Elderly", Long: "Older Persons", Words: []string{"older", "elderly"}},
	}
}

// GroupTaxonomy builds the concerned-group taxonomy keyed by short label.
func GroupTaxonomy() *taxonomy.Taxonomy {
	t := taxonomy.New()
	for _, g := range Groups() {
		t.Add(g.Name, g.Words...)
	}
	return t
}

// GroupTaxonomyLong builds the concerned-group taxonomy keyed by long label.
func GroupTaxonomyLong() *taxonomy.Taxonomy {
	t := taxonomy.New()
	for _, g := range Groups() {
		t.Add(g.Long, g.Words...)
	}
	return t
}

// ESCCategories are the economic, social and cultural categories of
// RightsTaxonomy.
func ESCCategories() []string {
	return []string{
		"1) Right to education", "2) Right to health", "3) Labour rights",
		"4) Cultural rights", "5) Other ESCR",
	}
}

// CCPRCategories are the civil and political categories of RightsTaxonomy.
func CCPRCategories() []string {
	return []string{
		"6) Freedom of expression", "7) Right to privacy", "8) Sexual violence",
		"9) Right to public participation", "10) Other CCPR rights",
	}
}

// RightsTaxonomy is the ten-category ESC/CCPR theme taxonomy.
func RightsTaxonomy() *taxonomy.Taxonomy {
	return taxonomy.New(
		taxonomy.Category{Name: "1) Right to education", Leaves: []string{"- Right to education"}},
		taxonomy.Category{Name: "2) Right to health", Leaves: []string{"- Right to health"}},
		taxonomy.Category{Name: "3) Labour rights", Leaves: []string{"- Labour rights and right to work", "- Trade union rights"}},
		taxonomy.Category{Name: "4) Cultural rights", Leaves: []string{"- Cultural rights"}},
		taxonomy.Category{Name: "5) Other ESCR", Leaves: []string{
			"- Right to adequate housing", "- Right to food",
			"- Right to an adequate standard of living",
			"- Economic, social & cultural rights - general measures of implementation",
			"- Sexual & reproductive health and rights", "- Right to social security",
			"- Human rights & poverty", "- Safe drinking water & sanitation",
			"- Land & property rights",
		}},
		taxonomy.Category{Name: "6) Freedom of expression", Leaves: []string{FreedomOfExpression}},
		taxonomy.Category{Name: "7) Right to privacy", Leaves: []string{"- Private life & privacy"}},
		taxonomy.Category{Name: "8) Sexual violence", Leaves: []string{"- Sexual & gender-based violence"}},
		taxonomy.Category{Name: "9) Right to public participation", Leaves: []string{
			"- Right to participate in public affairs & right to vote",
			"- Right to peaceful assembly", "- Freedom of association",
		}},
		taxonomy.Category{Name: "10) Other CCPR rights", Leaves: []string{
			"- Right to life",
			"- Civil & political rights - general measures of implementation",
			"- Right to physical & moral integrity", "- Liberty & security of the person",
			"- Prohibition of torture & ill-treatment (including cruel, inhuman or degrading treatment)",
			"- Conditions of detention", "- Arbitrary arrest & detention",
			"- Enforced disappearances", "- Freedom of movement",
		}},
	)
}

// ThemeGroups is the eight-group taxonomy of the theme radar: four ESC
// groups followed by four civil and political groups.
func ThemeGroups() *taxonomy.Taxonomy {
	return taxonomy.New(
		taxonomy.Category{Name: "Right to education", Leaves: []string{"- Right to education"}},
		taxonomy.Category{Name: "Right to health", Leaves: []string{"- Right to health"}},
		taxonomy.Category{Name: "Cultural rights", Leaves: []string{"- Cultural rights"}},
		taxonomy.Category{Name: "Other ESC rights", Leaves: []string{
			"- Right to adequate housing", "- Right to food", "- Right to an adequate standard of living",
			"- Economic, social & cultural rights - general measures of implementation",
			"- Sexual & reproductive health and rights", "- Right to social security", "- Human rights & poverty",
			"- Safe drinking water & sanitation", "- Labour rights and right to work", "- Trade union rights",
			"- Land & property rights",
		}},
		taxonomy.Category{Name: "Sexual & gender-based violence", Leaves: []string{"- Sexual & gender-based violence"}},
		taxonomy.Category{Name: "Private life & privacy", Leaves: []string{"- Private life & privacy"}},
		taxonomy.Category{Name: "Freedom of expression", Leaves: []string{FreedomOfExpression}},
		taxonomy.Category{Name: "Other civil and political rights", Leaves: []string{
			"- Right to life", "- Rights related to marriage & family",
			"- Right to be recognized as a person before the law", "- Rights related to name, identity & nationality",
			"- Civil & political rights - general measures of implementation", "- Right to physical & moral integrity",
			"- Liberty & security of the person", "- Extrajudicial, summary or arbitrary executions", "- Death penalty",
			"- Prohibition of torture & ill-treatment (including cruel, inhuman or degrading treatment)",
			"- Conditions of detention", "- Human trafficking & contemporary forms of slavery", "- Right to peaceful assembly",
			"- Enforced disappearances", "- Arbitrary arrest & detention", "- Freedom of movement",
			"- Use of mercenaries/private security", "- Freedom of thought, conscience & religion",
			"- Freedom of association", "- Right to participate in public affairs & right to vote",
		}},
	)
}

// TreatyBodies are the bodies reported on in the per-body bigram breakdown.
func TreatyBodies() []string {
	return []string{
		"- CCPR", "- CESCR", "- CEDAW", "- CRC", "- CRPD", "- CERD",
		"- CRC-OP-AC", "- CRC-OP-SC", "- Special Procedures", "- UPR",
	}
}

// SelectedBodies are the rows of the body distribution table.
func SelectedBodies() []string {
	return []string{
		"- CAT", "- CCPR", "- CEDAW", "- CERD", "- CESCR", "- CMW",
		"- CRC", "- CRC-OP-AC", "- CRC-OP-SC", "- CRPD", "- CED", "- SPT", "- UPR",
		"- Special Procedures",
	}
}

// IgnoredBigrams are boilerplate and markup bigrams dropped from the
// per-body breakdown.
func IgnoredBigrams() []ngram.Bigram {
	pairs := [][2]string{
		{"state", "party"}, {"committee", "concerned"}, {"also", "concerned"}, {"concluding", "observations"},
		{"true", "table"}, {"committee", "recommends"}, {"recommends", "state"}, {"false", "true"}, {"true", "true"},
		{"notes", "concern"}, {"art", "committee"}, {"article", "convention"}, {"concerned", "reports"},
		{"committee", "also"}, {"table", "colorful"}, {"accent", "w"}, {"colorful", "accent"}, {"true", "list"},
		{"w", "lsdexception"}, {"committe", "notes"}, {"children", "including"}, {"order", "generate"}, {"widely", "available"},
		{"per", "cent"}, {"nbsp", "nbsp"}, {"including", "internet"}, {"grid", "table"}, {"expression", "including"},
		{"report", "written"}, {"written", "replies"}, {"article", "covenant"}, {"list", "table"}, {"groups", "children"},
		{"state", "submitted"},
	}
	out := make([]ngram.Bigram, len(pairs))
	for i, p := range pairs {
		out[i] = ngram.Bigram{First: p[0], Second: p[1]}
	}
	return out
}

// ActiveThreshold is the minimum yearly count for a body to be reported
// as active.
const ActiveThreshold = 10

// Year ranges used by the reports.
var (
	FullRange        = aggregate.YearRange{Start: 2006, End: 2024}
	BodyRange        = aggregate.YearRange{Start: 2007, End: 2024}
	UPRRange         = aggregate.YearRange{Start: 2010, End: 2024}
	RightsRange      = aggregate.YearRange{Start: 2007, End: 2024}
	EarlyThemeRange  = aggregate.YearRange{Start: 2006, End: 2020}
	LateThemeRange   = aggregate.YearRange{Start: 2021, End: 2024}
	YearlyThemeRange = aggregate.YearRange{Start: 2015, End: 2024}
)
