package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table[string, int] {
	t := NewTable[string, int]()
	t.Inc("- CRC", 2010)
	t.Inc("- CRC", 2010)
	t.Inc("- CRC", 2012)
	t.Inc("- CCPR", 2011)
	t.Add("- CCPR", 2012, 4)
	return t
}

func TestTableTotals(t *testing.T) {
	tab := sampleTable()
	assert.Equal(t, int64(3), tab.RowTotal("- CRC"))
	assert.Equal(t, int64(5), tab.RowTotal("- CCPR"))
	assert.Zero(t, tab.RowTotal("- CAT"))
	assert.Equal(t, int64(5), tab.ColumnTotal(2012))
	assert.Equal(t, int64(8), tab.Total())
	assert.Equal(t, int64(5), tab.SumOver("- CCPR", []int{2011, 2012}))
	assert.Equal(t, []string{"- CRC", "- CCPR"}, tab.Rows())
	assert.Equal(t, []int{2010, 2012, 2011}, tab.Columns())
}

func TestTableDense(t *testing.T) {
	tab := sampleTable()
	m := tab.Dense([]string{"- CCPR", "- CAT", "- CRC"}, []int{2010, 2011, 2012}, 0)

	require.Len(t, m.Cells, 3)
	assert.Equal(t, []int64{0, 1, 4}, m.Cells[0])
	assert.Equal(t, []int64{0, 0, 0}, m.Cells[1])
	assert.Equal(t, []int64{2, 0, 1}, m.Cells[2])
	assert.Equal(t, []int64{5, 0, 3}, m.RowTotals())
	assert.Equal(t, []int64{2, 1, 5}, m.ColumnTotals())
	assert.Equal(t, int64(8), m.GrandTotal())
	assert.Equal(t, []int64{1, 0, 0}, m.Column(1))
}

func TestTableDenseDefaultsAxes(t *testing.T) {
	m := sampleTable().Dense(nil, nil, 0)
	assert.Equal(t, []string{"- CRC", "- CCPR"}, m.Rows)
	assert.Equal(t, []int{2010, 2012, 2011}, m.Columns)
}

func TestTableScopeTopK(t *testing.T) {
	type scope struct{ Group, Committee string }
	tab := NewTable[scope, string]()
	k := scope{"Children", "- CRC"}
	tab.Inc(k, "internet access")
	tab.Inc(k, "online safety")
	tab.Inc(k, "online safety")

	top := tab.Scope(k).TopK(1)
	require.Len(t, top, 1)
	assert.Equal(t, "online safety", top[0].Key)
	assert.Nil(t, tab.Scope(scope{"Other", "- CAT"}))
	assert.Empty(t, tab.Scope(scope{"Other", "- CAT"}).TopK(5))
}

func TestTableTouchRegistersEmptyRow(t *testing.T) {
	tab := NewTable[string, string]()
	tab.Touch("- CESCR")
	assert.Equal(t, []string{"- CESCR"}, tab.Rows())
	assert.Zero(t, tab.Total())
}

func TestEmptyTableIsAllZero(t *testing.T) {
	tab := NewTable[int, string]()
	m := tab.Dense(YearRange{Start: 2006, End: 2008}.Years(), []string{"a", "b"}, 0)
	assert.Equal(t, [][]int64{{0, 0}, {0, 0}, {0, 0}}, m.Cells)
	assert.Zero(t, m.GrandTotal())
}
