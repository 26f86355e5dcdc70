package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopKTiesKeepFirstEncounteredOrder(t *testing.T) {
	c := NewCounter[string]()
	c.Add("a", 5)
	c.Add("b", 5)
	c.Add("c", 3)

	top := c.TopK(2)
	assert.Equal(t, []Entry[string]{{Key: "a", Count: 5}, {Key: "b", Count: 5}}, top)
}

func TestTopKOrdering(t *testing.T) {
	c := NewCounter[string]()
	for _, k := range []string{"x", "y", "z", "y", "z", "z", "w"} {
		c.Inc(k)
	}
	assert.Equal(t, []Entry[string]{
		{Key: "z", Count: 3}, {Key: "y", Count: 2}, {Key: "x", Count: 1}, {Key: "w", Count: 1},
	}, c.TopK(0))
	assert.Len(t, c.TopK(10), 4)
	assert.Equal(t, "z", c.TopK(1)[0].Key)
}

func TestReindexFillsGaps(t *testing.T) {
	c := NewCounter[int]()
	c.Add(2010, 3)
	c.Add(2012, 5)
	assert.Equal(t, []int64{3, 0, 5}, c.Reindex([]int{2010, 2011, 2012}, 0))
	assert.Equal(t, []int64{-1, 3}, c.Reindex([]int{2009, 2010}, -1))
}

func TestCounterBasics(t *testing.T) {
	c := NewCounter[string]()
	c.Inc("b")
	c.Inc("a")
	c.Inc("b")
	c.Add("z", 0)

	assert.Equal(t, int64(2), c.Get("b"))
	assert.Zero(t, c.Get("missing"))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"b", "a", "z"}, c.Keys())
	assert.Equal(t, int64(3), c.Total())
}

func TestCounterNegativeDeltaPanics(t *testing.T) {
	c := NewCounter[string]()
	assert.Panics(t, func() { c.Add("a", -1) })
}

func TestNilCounterReadsEmpty(t *testing.T) {
	var c *Counter[string]
	assert.Zero(t, c.Get("a"))
	assert.Zero(t, c.Len())
	assert.Zero(t, c.Total())
	assert.Empty(t, c.TopK(3))
	assert.Equal(t, []int64{0, 0}, c.Reindex([]string{"a", "b"}, 0))
}

func TestShare(t *testing.T) {
	assert.Equal(t, 25.0, Share(3, 12))
	assert.Equal(t, 0.0, Share(0, 0))
	assert.Equal(t, 0.0, Share(5, 0))
	assert.Equal(t, 33.3, Share(1, 3))
	assert.Equal(t, 66.7, Share(2, 3))
	assert.Equal(t, 100.0, Share(7, 7))
}

func TestYearRange(t *testing.T) {
	r := YearRange{Start: 2010, End: 2012}
	assert.Equal(t, []int{2010, 2011, 2012}, r.Years())
	assert.True(t, r.Contains(2011))
	assert.False(t, r.Contains(2013))
	assert.Empty(t, YearRange{Start: 2012, End: 2010}.Years())
}

func TestZeroCounter(t *testing.T) {
	var c Counter[string]
	assert.Zero(t, c.Get("a"))
	assert.Empty(t, c.TopK(3))
	assert.Equal(t, []int64{7}, c.Reindex([]string{"a"}, 7))

	c.Inc("a")
	c.Add("b", 2)
	assert.Equal(t, int64(3), c.Total())
	assert.Equal(t, []string{"a", "b"}, c.Keys())
}
