package analysis

import (
	"github.com/cognicore/uhri/pkg/uhri/aggregate"
	"github.com/cognicore/uhri/pkg/uhri/record"
	"github.com/cognicore/uhri/pkg/uhri/taxonomy"
)

// ThemeCategoriesByYear counts, per (year, category), the category codes
// present on records attributed to years by year.
func ThemeCategoriesByYear(records []record.Record, tax *taxonomy.Taxonomy, years aggregate.YearRange, year YearFunc) *aggregate.Table[int, string] {
	t := aggregate.NewTable[int, string]()
	for _, r := range records {
		y := year(r)
		if !years.Contains(y) {
			continue
		}
		for _, h := range tax.ClassifyCodes(r.Themes) {
			t.Add(y, h.Category, int64(h.Count))
		}
	}
	return t
}

// SplitRow is one year of a two-group category split.
type SplitRow struct {
	Year int
	A    int64
	B    int64
	APct float64
	BPct float64
}

// CategoryGroupSplit sums, per year, the categories of groups a and b in
// t, with each group's share of their combined count.
func CategoryGroupSplit(t *aggregate.Table[int, string], years aggregate.YearRange, a, b []string) []SplitRow {
	axis := years.Years()
	rows := make([]SplitRow, len(axis))
	for i, y := range axis {
		sa, sb := t.SumOver(y, a), t.SumOver(y, b)
		rows[i] = SplitRow{
			Year: y,
			A:    sa,
			B:    sb,
			APct: aggregate.Share(sa, sa+sb),
			BPct: aggregate.Share(sb, sa+sb),
		}
	}
	return rows
}

// ThemeCodesInRange counts, per (category, code), records in years that
// carry the code. Rows follow taxonomy order; row totals give the
// per-category sums.
func ThemeCodesInRange(records []record.Record, tax *taxonomy.Taxonomy, years aggregate.YearRange, year YearFunc) *aggregate.Table[string, string] {
	t := aggregate.NewTable[string, string]()
	for _, name := range tax.Names() {
		t.Touch(name)
	}
	for _, r := range records {
		if !years.Contains(year(r)) {
			continue
		}
		for _, h := range tax.MatchedCodes(r.Themes) {
			t.Inc(h.Category, h.Code)
		}
	}
	return t
}
