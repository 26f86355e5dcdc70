package aggregate

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Table counts (row, column) keys. Each row is a scope with its own Counter,
// so per-scope TopK reads come for free. Create tables with NewTable.
type Table[R, C comparable] struct {
	rows *orderedmap.OrderedMap[R, *Counter[C]]
	cols *orderedmap.OrderedMap[C, struct{}]
}

// NewTable creates an empty table.
func NewTable[R, C comparable]() *Table[R, C] {
	return &Table[R, C]{
		rows: orderedmap.New[R, *Counter[C]](),
		cols: orderedmap.New[C, struct{}](),
	}
}

// Inc adds one to (r, c).
func (t *Table[R, C]) Inc(r R, c C) {
	t.Add(r, c, 1)
}

// Add adds delta to (r, c).
func (t *Table[R, C]) Add(r R, c C, delta int64) {
	t.Touch(r).Add(c, delta)
	t.cols.Set(c, struct{}{})
}

// Touch registers row r without counting anything and returns its counter.
func (t *Table[R, C]) Touch(r R) *Counter[C] {
	row, ok := t.rows.Get(r)
	if !ok {
		row = NewCounter[C]()
		t.rows.Set(r, row)
	}
	return row
}

// Get returns the count at (r, c).
func (t *Table[R, C]) Get(r R, c C) int64 {
	return t.Scope(r).Get(c)
}

// Scope returns row r's counter, nil when the row was never touched.
// Nil counters read as empty.
func (t *Table[R, C]) Scope(r R) *Counter[C] {
	row, _ := t.rows.Get(r)
	return row
}

// Rows returns row keys in first-encountered order.
func (t *Table[R, C]) Rows() []R {
	out := make([]R, 0, t.rows.Len())
	for p := t.rows.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Columns returns column keys in first-encountered order.
func (t *Table[R, C]) Columns() []C {
	out := make([]C, 0, t.cols.Len())
	for p := t.cols.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// RowTotal sums row r across all columns.
func (t *Table[R, C]) RowTotal(r R) int64 {
	return t.Scope(r).Total()
}

// ColumnTotal sums column c across all rows.
func (t *Table[R, C]) ColumnTotal(c C) int64 {
	var sum int64
	for p := t.rows.Oldest(); p != nil; p = p.Next() {
		sum += p.Value.Get(c)
	}
	return sum
}

// SumOver sums row r across the given columns.
func (t *Table[R, C]) SumOver(r R, cols []C) int64 {
	row := t.Scope(r)
	var sum int64
	for _, c := range cols {
		sum += row.Get(c)
	}
	return sum
}

// Total sums every cell.
func (t *Table[R, C]) Total() int64 {
	var sum int64
	for p := t.rows.Oldest(); p != nil; p = p.Next() {
		sum += p.Value.Total()
	}
	return sum
}

// Dense lays the table out over explicit row and column axes, substituting
// fill for absent cells. Nil axes default to the first-encountered keys.
func (t *Table[R, C]) Dense(rows []R, cols []C, fill int64) *Matrix[R, C] {
	if rows == nil {
		rows = t.Rows()
	}
	if cols == nil {
		cols = t.Columns()
	}
	cells := make([][]int64, len(rows))
	for i, r := range rows {
		cells[i] = t.Scope(r).Reindex(cols, fill)
	}
	return &Matrix[R, C]{Rows: rows, Columns: cols, Cells: cells}
}

// Matrix is a dense, frozen table.
type Matrix[R, C comparable] struct {
	Rows    []R
	Columns []C
	Cells   [][]int64
}

// RowTotals sums each row.
func (m *Matrix[R, C]) RowTotals() []int64 {
	out := make([]int64, len(m.Rows))
	for i, row := range m.Cells {
		for _, v := range row {
			out[i] += v
		}
	}
	return out
}

// ColumnTotals sums each column.
func (m *Matrix[R, C]) ColumnTotals() []int64 {
	out := make([]int64, len(m.Columns))
	for _, row := range m.Cells {
		for j, v := range row {
			out[j] += v
		}
	}
	return out
}

// GrandTotal sums every cell.
func (m *Matrix[R, C]) GrandTotal() int64 {
	var sum int64
	for _, v := range m.RowTotals() {
		sum += v
	}
	return sum
}

// Column returns column j as a vector.
func (m *Matrix[R, C]) Column(j int) []int64 {
	out := make([]int64, len(m.Rows))
	for i, row := range m.Cells {
		out[i] = row[j]
	}
	return out
}
