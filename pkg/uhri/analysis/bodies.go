package analysis

import (
	"github.com/cognicore/uhri/pkg/uhri/aggregate"
	"github.com/cognicore/uhri/pkg/uhri/record"
)

// UnknownBody labels records without a recommending body.
const UnknownBody = "Unknown"

// BodyYearCounts counts records per (body, year) within years.
func BodyYearCounts(records []record.Record, years aggregate.YearRange) *aggregate.Table[string, int] {
	t := aggregate.NewTable[string, int]()
	for _, r := range records {
		body := bodyLabel(r)
		t.Touch(body)
		if years.Contains(r.Year) {
			t.Inc(body, r.Year)
		}
	}
	return t
}

// ActivePoint is a (body, year) cell at or above the activity threshold.
type ActivePoint struct {
	Body  string
	Year  int
	Count int64
}

// ActiveBodies returns the cells of t with a count of at least threshold,
// by body then year.
func ActiveBodies(t *aggregate.Table[string, int], years aggregate.YearRange, threshold int64) []ActivePoint {
	var out []ActivePoint
	for _, body := range t.Rows() {
		row := t.Scope(body)
		for _, y := range years.Years() {
			if c := row.Get(y); c >= threshold {
				out = append(out, ActivePoint{Body: body, Year: y, Count: c})
			}
		}
	}
	return out
}

// YearTotals sums t over bodies for every year in years.
func YearTotals(t *aggregate.Table[string, int], years aggregate.YearRange) []int64 {
	return t.Dense(nil, years.Years(), 0).ColumnTotals()
}

// BodyDistribution lays out record counts of the selected bodies over
// years. Rows follow bodies; bodies with no records are all-zero rows.
func BodyDistribution(records []record.Record, bodies []string, years aggregate.YearRange) *aggregate.Matrix[string, int] {
	selected := stringSet(bodies)
	t := aggregate.NewTable[string, int]()
	for _, r := range records {
		if !years.Contains(r.Year) {
			continue
		}
		if _, ok := selected[r.RecommendingBody]; ok {
			t.Inc(r.RecommendingBody, r.Year)
		}
	}
	return t.Dense(bodies, years.Years(), 0)
}

// Unaccounted returns in-range records that BodyDistribution leaves out
// because their body is not selected.
func Unaccounted(records []record.Record, bodies []string, years aggregate.YearRange) []record.Record {
	selected := stringSet(bodies)
	var out []record.Record
	for _, r := range records {
		if !years.Contains(r.Year) {
			continue
		}
		if _, ok := selected[r.RecommendingBody]; !ok {
			out = append(out, r)
		}
	}
	return out
}

func bodyLabel(r record.Record) string {
	if r.RecommendingBody == "" {
		return UnknownBody
	}
	return r.RecommendingBody
}

func stringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}
	return set
}
