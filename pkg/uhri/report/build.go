package report

import (
	"strconv"

	"github.com/cognicore/uhri/pkg/uhri/aggregate"
	"github.com/cognicore/uhri/pkg/uhri/analysis"
	"github.com/cognicore/uhri/pkg/uhri/ngram"
	"github.com/cognicore/uhri/pkg/uhri/record"
)

// Year formats a year key.
func Year(y int) string {
	return strconv.Itoa(y)
}

// Matrix turns a dense matrix into a table with one key column. When
// totals is set a TOTAL column and a TOTAL row are appended.
func Matrix[R, C comparable](name, title, rowHeader string, m *aggregate.Matrix[R, C], rowLabel func(R) string, colLabel func(C) string, totals bool) *Table {
	t := &Table{Name: name, Title: title, KeyColumns: []string{rowHeader}}
	for _, c := range m.Columns {
		t.ValueColumns = append(t.ValueColumns, colLabel(c))
	}
	if totals {
		t.ValueColumns = append(t.ValueColumns, Total)
	}
	rowTotals := m.RowTotals()
	for i, r := range m.Rows {
		t.Append([]string{rowLabel(r)}, counts(m.Cells[i], totals, rowTotals[i])...)
	}
	if totals {
		t.Append([]string{Total}, counts(m.ColumnTotals(), true, m.GrandTotal())...)
	}
	return t
}

func counts(cells []int64, withTotal bool, total int64) []float64 {
	out := make([]float64, 0, len(cells)+1)
	for _, c := range cells {
		out = append(out, float64(c))
	}
	if withTotal {
		out = append(out, float64(total))
	}
	return out
}

// Shares renders a target-share table with its TOTAL row.
func Shares(name, title, target string, rows []analysis.ShareRow, total analysis.ShareRow) *Table {
	t := &Table{
		Name:         name,
		Title:        title,
		KeyColumns:   []string{"Year"},
		ValueColumns: []string{"Total", target, "Share %"},
	}
	for _, r := range rows {
		t.Append([]string{Year(r.Year)}, float64(r.Total), float64(r.Target), r.Share)
	}
	t.Append([]string{Total}, float64(total.Total), float64(total.Target), total.Share)
	return t
}

// ThemeShares renders a theme-versus-rest split.
func ThemeShares(name, title, theme string, rows []analysis.ThemeShareRow) *Table {
	t := &Table{
		Name:         name,
		Title:        title,
		KeyColumns:   []string{"Year"},
		ValueColumns: []string{"Total", theme, "Other", theme + " %", "Other %"},
	}
	for _, r := range rows {
		t.Append([]string{Year(r.Year)}, float64(r.Total), float64(r.Theme), float64(r.Other), r.ThemePct, r.OtherPct)
	}
	return t
}

// Split renders a two-group category split.
func Split(name, title, a, b string, rows []analysis.SplitRow) *Table {
	t := &Table{
		Name:         name,
		Title:        title,
		KeyColumns:   []string{"Year"},
		ValueColumns: []string{a, b, a + " %", b + " %"},
	}
	for _, r := range rows {
		t.Append([]string{Year(r.Year)}, float64(r.A), float64(r.B), r.APct, r.BPct)
	}
	return t
}

// Active renders body activity points.
func Active(name, title string, points []analysis.ActivePoint) *Table {
	t := &Table{
		Name:         name,
		Title:        title,
		KeyColumns:   []string{"Body", "Year"},
		ValueColumns: []string{"Count"},
	}
	for _, p := range points {
		t.Append([]string{p.Body, Year(p.Year)}, float64(p.Count))
	}
	return t
}

// TopBigrams renders the k most frequent bigrams of every scope of bt, in
// scope order. scope maps a row key to its key cells under scopeHeaders.
func TopBigrams[R comparable](name, title string, bt *aggregate.Table[R, ngram.Bigram], k int, scopeHeaders []string, scope func(R) []string) *Table {
	t := &Table{
		Name:         name,
		Title:        title,
		KeyColumns:   append(append([]string(nil), scopeHeaders...), "Bigram"),
		ValueColumns: []string{"Count"},
	}
	for _, r := range bt.Rows() {
		keys := scope(r)
		for _, e := range bt.Scope(r).TopK(k) {
			t.Append(append(append([]string(nil), keys...), e.Key.String()), float64(e.Count))
		}
	}
	return t
}

// CodeBreakdown renders per-category theme code counts: a TOTAL row for
// each category followed by its codes.
func CodeBreakdown(name, title string, ct *aggregate.Table[string, string]) *Table {
	t := &Table{
		Name:         name,
		Title:        title,
		KeyColumns:   []string{"Category", "Code"},
		ValueColumns: []string{"Count"},
	}
	for _, cat := range ct.Rows() {
		t.Append([]string{cat, Total}, float64(ct.RowTotal(cat)))
		for _, e := range ct.Scope(cat).Entries() {
			t.Append([]string{cat, e.Key}, float64(e.Count))
		}
	}
	var grand float64
	for _, cat := range ct.Rows() {
		grand += float64(ct.RowTotal(cat))
	}
	t.Append([]string{Total, ""}, grand)
	return t
}

// Records lists records by body, date and text.
func Records(name, title string, recs []record.Record) *Table {
	t := &Table{
		Name:         name,
		Title:        title,
		KeyColumns:   []string{"Body", "Date", "Text"},
		ValueColumns: []string{"Year"},
	}
	for _, r := range recs {
		t.Append([]string{r.RecommendingBody, r.PublicationDate, Excerpt(r.Text, 80)}, float64(r.Year))
	}
	return t
}

// Discrepancies lists records whose two year derivations disagree.
func Discrepancies(name, title string, ds []analysis.Discrepancy) *Table {
	t := &Table{
		Name:         name,
		Title:        title,
		KeyColumns:   []string{"Index", "Date"},
		ValueColumns: []string{"Stored year", "Fuzzy year"},
	}
	for _, d := range ds {
		t.Append([]string{strconv.Itoa(d.Index), d.PublicationDate}, float64(d.Stored), float64(d.Fuzzy))
	}
	return t
}

// Excerpt shortens s to at most n runes, marking the cut with "...".
func Excerpt(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
