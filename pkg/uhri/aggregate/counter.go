// Package aggregate counts dimension keys and reads the counts back as
// ranked lists, dense vectors and totals.
//
// Counters are accumulate-then-read: build them in one pass, then call the
// read methods. Key order is first-encountered order, which is what makes
// TopK tie-breaking stable.
package aggregate

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Entry is one key and its count.
type Entry[K comparable] struct {
	Key   K
	Count int64
}

// Counter maps keys to non-negative counts. The zero value is ready to
// use and a nil *Counter reads as empty.
type Counter[K comparable] struct {
	counts *orderedmap.OrderedMap[K, int64]
}

// NewCounter creates an empty counter.
func NewCounter[K comparable]() *Counter[K] {
	return &Counter[K]{counts: orderedmap.New[K, int64]()}
}

// Inc adds one to key.
func (c *Counter[K]) Inc(key K) {
	c.Add(key, 1)
}

// Add adds delta to key. A zero delta still registers the key.
func (c *Counter[K]) Add(key K, delta int64) {
	if delta < 0 {
		panic("aggregate: negative delta")
	}
	if c.counts == nil {
		c.counts = orderedmap.New[K, int64]()
	}
	cur, _ := c.counts.Get(key)
	c.counts.Set(key, cur+delta)
}

// Get returns the count for key, 0 when absent.
func (c *Counter[K]) Get(key K) int64 {
	if c == nil || c.counts == nil {
		return 0
	}
	v, _ := c.counts.Get(key)
	return v
}

// Len returns the number of distinct keys.
func (c *Counter[K]) Len() int {
	if c == nil || c.counts == nil {
		return 0
	}
	return c.counts.Len()
}

// Keys returns keys in first-encountered order.
func (c *Counter[K]) Keys() []K {
	if c == nil || c.counts == nil {
		return nil
	}
	keys := make([]K, 0, c.counts.Len())
	for p := c.counts.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Entries returns all entries in first-encountered order.
func (c *Counter[K]) Entries() []Entry[K] {
	if c == nil || c.counts == nil {
		return nil
	}
	out := make([]Entry[K], 0, c.counts.Len())
	for p := c.counts.Oldest(); p != nil; p = p.Next() {
		out = append(out, Entry[K]{Key: p.Key, Count: p.Value})
	}
	return out
}

// Total sums all counts.
func (c *Counter[K]) Total() int64 {
	if c == nil || c.counts == nil {
		return 0
	}
	var sum int64
	for p := c.counts.Oldest(); p != nil; p = p.Next() {
		sum += p.Value
	}
	return sum
}

// TopK returns up to k entries by descending count. Ties keep
// first-encountered order. k <= 0 returns every entry, ranked.
func (c *Counter[K]) TopK(k int) []Entry[K] {
	entries := c.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if k > 0 && len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

// Reindex returns one count per axis key, fill for keys never counted.
func (c *Counter[K]) Reindex(axis []K, fill int64) []int64 {
	out := make([]int64, len(axis))
	for i, key := range axis {
		if c == nil || c.counts == nil {
			out[i] = fill
			continue
		}
		v, ok := c.counts.Get(key)
		if !ok {
			v = fill
		}
		out[i] = v
	}
	return out
}
