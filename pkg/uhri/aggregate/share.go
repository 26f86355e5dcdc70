package aggregate

import "math"

// Share returns 100*count/total rounded to one decimal, or 0 when total is
// not positive.
func Share(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(1000*float64(count)/float64(total)) / 10
}

// YearRange is an inclusive range of years.
type YearRange struct {
	Start int `yaml:"start" toml:"start"`
	End   int `yaml:"end" toml:"end"`
}

// Years lists every year in the range, ascending.
func (r YearRange) Years() []int {
	if r.End < r.Start {
		return nil
	}
	out := make([]int, 0, r.End-r.Start+1)
	for y := r.Start; y <= r.End; y++ {
		out = append(out, y)
	}
	return out
}

// Contains reports whether y is within the range.
func (r YearRange) Contains(y int) bool {
	return y >= r.Start && y <= r.End
}
