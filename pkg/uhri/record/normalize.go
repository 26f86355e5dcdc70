package record

import (
	"fmt"
	"log/slog"
	"strings"
)

// Normalizer converts raw rows into Records. It never fails: malformed
// values degrade to empty text, unknown year or no themes.
type Normalizer struct {
	Fields      Fields
	BodyStyle   BodyStyle
	StripMarkup bool
	FoldUnicode bool
	Logger      *slog.Logger
}

// Stats summarizes one NormalizeAll pass.
type Stats struct {
	Total    int
	Kept     int
	WithYear int
	Dropped  int
}

// NewNormalizer returns a normalizer over the default fields that appends
// the special-procedures marker.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		Fields:    DefaultFields(),
		BodyStyle: BodyAppendMarker,
	}
}

// Normalize derives a Record from raw. The bool is false when the record is
// empty and must be dropped.
func (n *Normalizer) Normalize(raw RawRecord) (Record, bool) {
	f := n.Fields
	if f == (Fields{}) {
		f = DefaultFields()
	}

	r := Record{
		Text:             n.cleanText(stringValue(raw[f.Text])),
		RecommendingBody: StandardizeBody(stringValue(raw[f.Body]), n.BodyStyle),
		Themes:           themesValue(raw[f.Themes]),
	}

	date, ok := RenderDate(raw[f.Date])
	if ok && date != "" {
		r.PublicationDate = date
		y, err := ParseYear(date)
		if err != nil && n.Logger != nil {
			n.Logger.Debug("unknown year", "date", date, "error", err)
		}
		r.Year = y
	}

	extra := func(k string, v any) {
		if r.Extra == nil {
			r.Extra = make(map[string]any)
		}
		r.Extra[k] = v
	}
	// Values of an unexpected type pass through untouched.
	if !ok {
		extra(f.Date, raw[f.Date])
	}
	for _, k := range []string{f.Text, f.Body} {
		if v := raw[k]; !isStringOrNil(v) {
			extra(k, v)
		}
	}
	switch v := raw[f.Themes]; v.(type) {
	case nil, string, []string, []any:
	default:
		extra(f.Themes, v)
	}

	for k, v := range raw {
		if k == f.Text || k == f.Body || k == f.Date || k == f.Themes {
			continue
		}
		extra(k, v)
	}

	return r, !r.IsEmpty()
}

// NormalizeAll normalizes raws in order, dropping empty records.
func (n *Normalizer) NormalizeAll(raws []RawRecord) ([]Record, Stats) {
	out := make([]Record, 0, len(raws))
	stats := Stats{Total: len(raws)}
	for _, raw := range raws {
		r, ok := n.Normalize(raw)
		if !ok {
			stats.Dropped++
			continue
		}
		if r.HasYear() {
			stats.WithYear++
		}
		out = append(out, r)
	}
	stats.Kept = len(out)
	return out, stats
}

func (n *Normalizer) cleanText(s string) string {
	if n.StripMarkup {
		s = StripMarkup(s)
	}
	if n.FoldUnicode {
		s = FoldUnicode(s)
	}
	return s
}

func stringValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func isStringOrNil(v any) bool {
	switch v.(type) {
	case nil, string:
		return true
	}
	return false
}

func themesValue(v any) []string {
	switch x := v.(type) {
	case string:
		return SplitThemes(x)
	case []string:
		return SplitThemes(strings.Join(x, "\n"))
	case []any:
		parts := make([]string, 0, len(x))
		for _, p := range x {
			if p != nil {
				parts = append(parts, fmt.Sprint(p))
			}
		}
		return SplitThemes(strings.Join(parts, "\n"))
	}
	return nil
}
