package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/uhri/pkg/uhri/record"
)

func TestMatchesCaseInsensitive(t *testing.T) {
	s := NewSet("internet")
	assert.True(t, s.Matches("INTERNET access"))
	assert.True(t, s.Matches("the Internet"))
	assert.False(t, s.Matches("intranet"))
	assert.False(t, s.Matches(""))
}

func TestMatchesSubstring(t *testing.T) {
	s := NewSet("online", "digital")
	assert.True(t, s.Matches("Combat ONLINE harassment"))
	assert.True(t, s.Matches("digitalisation of services"))
	assert.False(t, s.Matches("offline"))
}

func TestMatchesPhrases(t *testing.T) {
	s := NewSet("internet access", "digital divide", "connectivity")
	assert.True(t, s.Matches("Improve Internet Access in rural areas"))
	assert.False(t, s.Matches("access to the internet"))
	assert.Equal(t, 1, s.Flag("bridge the digital divide"))
	assert.Equal(t, 0, s.Flag("bridge the gap"))
}

func TestMatchesValueNonString(t *testing.T) {
	s := NewSet("internet")
	assert.False(t, s.MatchesValue(nil))
	assert.False(t, s.MatchesValue(12))
	assert.False(t, s.MatchesValue([]string{"internet"}))
	assert.True(t, s.MatchesValue("internet"))
}

func TestEmptySetMatchesNothing(t *testing.T) {
	s := NewSet("", "  ")
	assert.Zero(t, s.Len())
	assert.False(t, s.Matches("anything"))
}

func TestNewSetDedupes(t *testing.T) {
	s := NewSet("Online", "online", "digital")
	assert.Equal(t, []string{"online", "digital"}, s.Terms())
}

func TestSelect(t *testing.T) {
	raws := []record.RawRecord{
		{"Text": "Expand internet coverage"},
		{"Text": "Abolish the death penalty"},
		{"Text": nil},
		{"Other": "internet"},
		{"Text": "Protect DIGITAL privacy"},
	}
	got := Select(raws, "Text", NewSet("internet", "online", "digital"))
	require.Len(t, got, 2)
	assert.Equal(t, "Expand internet coverage", got[0]["Text"])
	assert.Equal(t, "Protect DIGITAL privacy", got[1]["Text"])
}

func TestCount(t *testing.T) {
	records := []record.Record{{Text: "internet access"}, {Text: "housing"}, {Text: "Internet Access for all"}}
	assert.Equal(t, 2, Count(records, NewSet("internet access")))
}
