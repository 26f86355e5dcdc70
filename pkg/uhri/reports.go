package uhri

import (
	"github.com/cognicore/uhri/pkg/uhri/aggregate"
	"github.com/cognicore/uhri/pkg/uhri/analysis"
	"github.com/cognicore/uhri/pkg/uhri/config"
	"github.com/cognicore/uhri/pkg/uhri/report"
)

type reportDef struct {
	name  string
	title string
	build func(e *Engine, v *view) *report.Table
}

var reportDefs = []reportDef{
	{"target_share", "Recommendations on internet access among digital-environment recommendations", (*Engine).targetShare},
	{"body_distribution", "Recommendations by recommending body and year", (*Engine).bodyDistribution},
	{"group_mentions", "Concerned group mentions by year", (*Engine).groupMentions},
	{"body_year_counts", "Recommendations by body and year, excluding UPR", (*Engine).bodyYearCounts},
	{"body_activity", "Most active mechanisms by year, excluding UPR", (*Engine).bodyActivity},
	{"group_bigrams", "Top digital bigrams by concerned group", (*Engine).groupBigrams},
	{"group_committee_bigrams", "Top digital bigrams by concerned group and committee", (*Engine).groupCommitteeBigrams},
	{"body_bigrams", "Top bigrams by treaty body", (*Engine).bodyBigrams},
	{"upr_theme_share", "UPR recommendations: freedom of expression versus other rights", (*Engine).uprThemeShare},
	{"rights_by_year", "ESC and CCPR rights mentions by year", (*Engine).rightsByYear},
	{"esc_ccpr_split", "ESC versus CCPR rights mentions", (*Engine).escCCPRSplit},
	{"theme_groups_early", "Theme mentions, early period", (*Engine).themeGroupsEarly},
	{"theme_groups_late", "Theme mentions, late period", (*Engine).themeGroupsLate},
	{"theme_groups_by_year", "Theme group mentions by year", (*Engine).themeGroupsByYear},
}

// ReportNames lists every report in run order.
func ReportNames() []string {
	out := make([]string, len(reportDefs))
	for i, d := range reportDefs {
		out[i] = d.name
	}
	return out
}

func lookupReport(name string) (reportDef, bool) {
	for _, d := range reportDefs {
		if d.name == name {
			return d, true
		}
	}
	return reportDef{}, false
}

func (e *Engine) voc() *config.Vocabulary {
	return e.comp.Vocabulary
}

func identity(s string) string { return s }

func (e *Engine) targetShare(v *view) *report.Table {
	rows, total := analysis.TargetShare(v.all, e.comp.Targets, e.voc().Ranges.Full)
	return report.Shares("", "", "Internet", rows, total)
}

func (e *Engine) bodyDistribution(v *view) *report.Table {
	m := analysis.BodyDistribution(v.replaced, e.voc().SelectedBodies, e.voc().Ranges.Full)
	return report.Matrix("", "", "Body", m, identity, report.Year, true)
}

func (e *Engine) groupMentions(v *view) *report.Table {
	years := e.voc().Ranges.Full
	t := analysis.GroupMentionsByYear(v.all, e.comp.Groups, e.comp.MentionTokenizer, years)
	m := t.Dense(years.Years(), e.comp.Groups.Names(), 0)
	return report.Matrix("", "", "Year", m, report.Year, identity, false)
}

func (e *Engine) bodyYearCounts(v *view) *report.Table {
	years := e.voc().Ranges.Bodies
	t := analysis.BodyYearCounts(v.noUPR, years)
	m := t.Dense(nil, years.Years(), 0)
	return report.Matrix("", "", "Body", m, identity, report.Year, true)
}

func (e *Engine) bodyActivity(v *view) *report.Table {
	years := e.voc().Ranges.Bodies
	t := analysis.BodyYearCounts(v.noUPR, years)
	return report.Active("", "", analysis.ActiveBodies(t, years, e.voc().ActiveThreshold))
}

func (e *Engine) groupBigrams(v *view) *report.Table {
	t := analysis.GroupBigrams(v.noUPR, e.comp.Groups, e.comp.GroupExtractor)
	return report.TopBigrams("", "", t, e.topK, []string{"Group"}, func(g string) []string { return []string{g} })
}

func (e *Engine) groupCommitteeBigrams(v *view) *report.Table {
	t := analysis.GroupCommitteeBigrams(v.noUPR, e.comp.GroupsLong, e.comp.CommitteeExtractor)
	return report.TopBigrams("", "", t, e.topK, []string{"Group", "Committee"}, func(k analysis.GroupCommittee) []string {
		return []string{k.Group, k.Committee}
	})
}

func (e *Engine) bodyBigrams(v *view) *report.Table {
	t := analysis.BodyBigrams(v.replaced, e.voc().TreatyBodies, e.comp.BodyExtractor)
	return report.TopBigrams("", "", t, e.topK, []string{"Body"}, func(b string) []string { return []string{b} })
}

func (e *Engine) uprThemeShare(v *view) *report.Table {
	rows := analysis.ThemeShare(v.upr, e.voc().UPRTheme, e.voc().Ranges.UPR, analysis.FuzzyYear)
	return report.ThemeShares("", "", "Theme", rows)
}

func (e *Engine) rightsTable(v *view) *aggregate.Table[int, string] {
	if v.rights == nil {
		v.rights = analysis.ThemeCategoriesByYear(v.noUPR, e.comp.Rights, e.voc().Ranges.Rights, analysis.FuzzyYear)
	}
	return v.rights
}

func (e *Engine) rightsByYear(v *view) *report.Table {
	m := e.rightsTable(v).Dense(e.voc().Ranges.Rights.Years(), e.comp.Rights.Names(), 0)
	return report.Matrix("", "", "Year", m, report.Year, identity, true)
}

func (e *Engine) escCCPRSplit(v *view) *report.Table {
	rows := analysis.CategoryGroupSplit(e.rightsTable(v), e.voc().Ranges.Rights, e.voc().ESC, e.voc().CCPR)
	return report.Split("", "", "ESC", "CCPR", rows)
}

func (e *Engine) themeGroupsEarly(v *view) *report.Table {
	return e.themeGroups(v, e.voc().Ranges.EarlyTheme)
}

func (e *Engine) themeGroupsLate(v *view) *report.Table {
	return e.themeGroups(v, e.voc().Ranges.LateTheme)
}

func (e *Engine) themeGroupsByYear(v *view) *report.Table {
	years := e.voc().Ranges.YearlyTheme
	t := analysis.ThemeCategoriesByYear(v.noUPR, e.comp.ThemeGroups, years, analysis.FuzzyYear)
	m := t.Dense(years.Years(), e.comp.ThemeGroups.Names(), 0)
	return report.Matrix("", "", "Year", m, report.Year, identity, false)
}

func (e *Engine) themeGroups(v *view, years aggregate.YearRange) *report.Table {
	t := analysis.ThemeCodesInRange(v.noUPR, e.comp.ThemeGroups, years, analysis.FuzzyYear)
	return report.CodeBreakdown("", "", t)
}
