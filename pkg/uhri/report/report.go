// Package report freezes aggregates into labelled tables for rendering
// and export.
package report

import (
	"crypto/rand"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
)

// Total labels total rows and columns.
const Total = "TOTAL"

// Row is one table row: its key cells then its value cells.
type Row struct {
	Keys   []string  `json:"keys"`
	Values []float64 `json:"values"`
}

// Table is a frozen report table. Value columns whose header ends in "%"
// hold percentages; the others hold counts.
type Table struct {
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	RunID        string    `json:"run_id,omitempty"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	KeyColumns   []string  `json:"key_columns"`
	ValueColumns []string  `json:"value_columns"`
	Rows         []Row     `json:"rows"`
}

// Headers returns key then value column headers.
func (t *Table) Headers() []string {
	out := make([]string, 0, len(t.KeyColumns)+len(t.ValueColumns))
	out = append(out, t.KeyColumns...)
	return append(out, t.ValueColumns...)
}

// Append adds a row.
func (t *Table) Append(keys []string, values ...float64) {
	t.Rows = append(t.Rows, Row{Keys: keys, Values: values})
}

// Find returns the first row whose keys equal keys.
func (t *Table) Find(keys ...string) (Row, bool) {
next:
	for _, r := range t.Rows {
		if len(r.Keys) != len(keys) {
			continue
		}
		for i := range keys {
			if r.Keys[i] != keys[i] {
				continue next
			}
		}
		return r, true
	}
	return Row{}, false
}

// Value returns the value of column col in the row keyed by keys.
func (t *Table) Value(col string, keys ...string) (float64, bool) {
	row, ok := t.Find(keys...)
	if !ok {
		return 0, false
	}
	for j, c := range t.ValueColumns {
		if c == col && j < len(row.Values) {
			return row.Values[j], true
		}
	}
	return 0, false
}

// Strings renders row i as display cells.
func (t *Table) Strings(i int) []string {
	r := t.Rows[i]
	out := make([]string, 0, len(r.Keys)+len(r.Values))
	out = append(out, r.Keys...)
	for j, v := range r.Values {
		col := ""
		if j < len(t.ValueColumns) {
			col = t.ValueColumns[j]
		}
		out = append(out, FormatValue(col, v))
	}
	return out
}

// FormatValue renders a percentage with one decimal, a year as a plain
// number ("-" when unknown) and a count with thousands separators.
func FormatValue(col string, v float64) string {
	if strings.HasSuffix(col, "%") {
		return fmt.Sprintf("%.1f", v)
	}
	if IsYearColumn(col) {
		if v == 0 {
			return "-"
		}
		return strconv.FormatInt(int64(v), 10)
	}
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return humanize.Ftoa(v)
}

// IsYearColumn reports whether a value column holds years rather than
// counts: "Year" or any column ending in " year".
func IsYearColumn(col string) bool {
	return col == "Year" || strings.HasSuffix(col, " year")
}

// Stamper assigns run IDs and creation times to tables.
type Stamper struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// NewStamper creates a stamper drawing monotonic ULIDs.
func NewStamper() *Stamper {
	return &Stamper{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// NewRunID returns a fresh, lexically increasing run ID.
func (s *Stamper) NewRunID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}

// Stamp gives every table one shared run ID and creation time, and
// returns the run ID.
func (s *Stamper) Stamp(tables ...*Table) string {
	id := s.NewRunID()
	at := s.now().UTC()
	for _, t := range tables {
		t.RunID = id
		t.CreatedAt = at
	}
	return id
}
