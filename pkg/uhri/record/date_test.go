package record

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/uhri/pkg/uhri/internalerr"
)

func TestParseYear(t *testing.T) {
	ts := time.Date(2012, time.June, 3, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"iso date", "2015-03-12", 2015},
		{"iso timestamp", "2018-11-02T00:00:00", 2018},
		{"bare year", "2021", 2021},
		{"verbose", "October 7, 2014", 2014},
		{"padded", "  2016-01-01 ", 2016},
		{"timestamp", ts, 2012},
		{"timestamp pointer", &ts, 2012},
		{"day first slash", "15/03/2015", 2015},
		{"day first dash", "31-12-2014", 2014},
		{"day first dot", "31.12.2019", 2019},
		{"month and year", "March 2015", 2015},
		{"wrapped in words", "Published 12 March 2015", 2015},
		{"ordinal", "adopted on the 3rd of June 2013", 2013},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseYear(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseYearFailures(t *testing.T) {
	inputs := []any{nil, "", "   ", "not a date", 12.5, 2015, "3050-01-01", time.Time{}}
	for _, in := range inputs {
		y, err := ParseYear(in)
		require.Error(t, err, "input %v", in)
		assert.Zero(t, y)
		assert.True(t, errors.Is(err, internalerr.ErrDateParse), "input %v", in)

		var dpe *DateParseError
		assert.True(t, errors.As(err, &dpe))
	}
}

func TestDeriveYearNeverOutOfBounds(t *testing.T) {
	inputs := []any{
		"2015-03-12", "1/2/99", "0001-01-01", "9999-12-31", "12", "May", "",
		"2010", "x2010", "2010-13-45", nil, []string{"2010"}, time.Now(), "31.12.2019",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() {
			y := DeriveYear(in)
			if y != 0 {
				assert.GreaterOrEqual(t, y, MinYear, "input %v", in)
				assert.LessOrEqual(t, y, MaxYear, "input %v", in)
			}
		})
	}
}

func TestCheckYearTwoDigit(t *testing.T) {
	y, err := checkYear("15", 15)
	require.NoError(t, err)
	assert.Equal(t, 2015, y)

	_, err = checkYear("1850", 1850)
	assert.Error(t, err)
}

func TestParseYearFuzzy(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2019-05-01", 2019},
		{"Published 12th March 2015 (advance version)", 2015},
		{"adopted at the session of 2019, report", 2019},
		{"CRC/C/GC/25 - 2021", 2021},
		{"15/03/2015", 2015},
		{"31-12-2014", 2014},
		{"A/HRC/2015/12", 2015},
	}
	for _, tt := range tests {
		got, err := ParseYearFuzzy(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseYearFuzzy("no date here")
	assert.ErrorIs(t, err, internalerr.ErrDateParse)
	_, err = ParseYearFuzzy("")
	assert.ErrorIs(t, err, internalerr.ErrDateParse)
}

func TestDeriveYearLenient(t *testing.T) {
	assert.Equal(t, 2015, DeriveYear("Published 12 March 2015"))
	assert.Equal(t, 2015, DeriveYear("15/03/2015"))
	assert.Equal(t, 0, DeriveYear("15/33/2015"))
}

func TestStrictAndFuzzyDiffer(t *testing.T) {
	// A document symbol is not a date, but the fuzzy scan finds its year.
	_, err := ParseYear("A/HRC/2015/12")
	assert.ErrorIs(t, err, internalerr.ErrDateParse)
	y, err := ParseYearFuzzy("A/HRC/2015/12")
	require.NoError(t, err)
	assert.Equal(t, 2015, y)
}

func TestRenderDate(t *testing.T) {
	s, ok := RenderDate(time.Date(2009, time.February, 1, 13, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "2009-02-01", s)

	_, ok = RenderDate(42)
	assert.False(t, ok)
}
