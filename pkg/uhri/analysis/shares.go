package analysis

import (
	"github.com/cognicore/uhri/pkg/uhri/aggregate"
	"github.com/cognicore/uhri/pkg/uhri/keyword"
	"github.com/cognicore/uhri/pkg/uhri/record"
)

// ShareRow is one year of a target-share table. The totals row has Year 0.
type ShareRow struct {
	Year   int
	Total  int64
	Target int64
	Share  float64
}

// TargetShare counts, per year, all records and those whose text matches
// set, with the share of the latter. The second result sums every year and
// recomputes the share from the sums.
func TargetShare(records []record.Record, set keyword.Set, years aggregate.YearRange) ([]ShareRow, ShareRow) {
	total := aggregate.NewCounter[int]()
	target := aggregate.NewCounter[int]()
	for _, r := range records {
		if !years.Contains(r.Year) {
			continue
		}
		total.Inc(r.Year)
		target.Add(r.Year, int64(set.Flag(r.Text)))
	}

	axis := years.Years()
	totals := total.Reindex(axis, 0)
	targets := target.Reindex(axis, 0)
	rows := make([]ShareRow, len(axis))
	var sum ShareRow
	for i, y := range axis {
		rows[i] = ShareRow{Year: y, Total: totals[i], Target: targets[i], Share: aggregate.Share(targets[i], totals[i])}
		sum.Total += totals[i]
		sum.Target += targets[i]
	}
	sum.Share = aggregate.Share(sum.Target, sum.Total)
	return rows, sum
}

// ThemeShareRow is one year of a theme-versus-rest split.
type ThemeShareRow struct {
	Year     int
	Total    int64
	Theme    int64
	Other    int64
	ThemePct float64
	OtherPct float64
}

// ThemeShare splits, per year, records carrying theme from the rest.
// Records whose year is unknown or out of range are skipped.
func ThemeShare(records []record.Record, theme string, years aggregate.YearRange, year YearFunc) []ThemeShareRow {
	total := aggregate.NewCounter[int]()
	hits := aggregate.NewCounter[int]()
	for _, r := range records {
		y := year(r)
		if !years.Contains(y) {
			continue
		}
		total.Inc(y)
		if r.HasTheme(theme) {
			hits.Inc(y)
		}
	}

	axis := years.Years()
	rows := make([]ThemeShareRow, len(axis))
	for i, y := range axis {
		t, h := total.Get(y), hits.Get(y)
		rows[i] = ThemeShareRow{
			Year:     y,
			Total:    t,
			Theme:    h,
			Other:    t - h,
			ThemePct: aggregate.Share(h, t),
			OtherPct: aggregate.Share(t-h, t),
		}
	}
	return rows
}
