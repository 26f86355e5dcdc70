package uhri

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/uhri/pkg/uhri/config"
	"github.com/cognicore/uhri/pkg/uhri/internalerr"
	"github.com/cognicore/uhri/pkg/uhri/record"
	"github.com/cognicore/uhri/pkg/uhri/report"
	"github.com/cognicore/uhri/pkg/uhri/store/memstore"
)

const expression = "- Freedom of opinion and expression & access to information"

func rawCorpus() []record.RawRecord {
	return []record.RawRecord{
		{"Text": "Ensure internet access for children in rural areas", "Reccomending Body": "- CRC", "Document Publication Date": "2015-03-12", "Themes": "- Right to education\n- Private life & privacy"},
		{"Text": "Protect women online from harassment", "Reccomending Body": "- CEDAW", "Document Publication Date": "2015-07-01", "Themes": "- Sexual & gender-based violence"},
		{"Text": "Bridge the digital divide for persons with disabilities", "Reccomending Body": "- SR on disability", "Document Publication Date": "2016-01-20", "Themes": "- Right to health"},
		{"Text": "Guarantee online freedom of expression", "Reccomending Body": "- UPR", "Document Publication Date": "2016-05-04", "Themes": expression},
		{"Text": "Adopt digital privacy safeguards", "Reccomending Body": "- UPR", "Document Publication Date": "2016-05-04", "Themes": "- Private life & privacy"},
		{"Text": "Improve prison conditions", "Reccomending Body": "- CAT", "Document Publication Date": "2016-05-04"},
		{"Text": "Digital identity for migrants", "Reccomending Body": "- CMW", "Document Publication Date": "sometime"},
		{"Text": "", "Reccomending Body": "", "Document Publication Date": nil},
	}
}

func newEngine(t *testing.T) *Engine {
	t.Helper()
	comp, err := (&config.Loader{}).Load()
	require.NoError(t, err)
	return New(Options{
		Components: comp,
		Store:      memstore.New(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestPrepare(t *testing.T) {
	e := newEngine(t)
	p := e.Prepare(rawCorpus())

	assert.Equal(t, 6, p.Selected)
	assert.Equal(t, 6, p.Stats.Kept)
	assert.Equal(t, 5, p.Stats.WithYear)
	assert.Equal(t, "- SR on disability; - Special Procedures", p.Records[2].RecommendingBody)
}

func TestReportsEndToEnd(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)
	records := e.Prepare(rawCorpus()).Records

	run, err := e.Reports(records)
	require.NoError(t, err)
	require.Len(t, run.Tables, len(ReportNames()))
	require.NotEmpty(t, run.ID)
	for _, tab := range run.Tables {
		assert.Equal(t, run.ID, tab.RunID, tab.Name)
		assert.NotEmpty(t, tab.Title, tab.Name)
	}

	share, ok := run.Table("target_share")
	require.True(t, ok)
	v, _ := share.Value("Total", "2015")
	assert.Equal(t, 2.0, v)
	v, _ = share.Value("Internet", "2016")
	assert.Equal(t, 1.0, v)
	v, _ = share.Value("Share %", report.Total)
	assert.Equal(t, 40.0, v)

	dist, _ := run.Table("body_distribution")
	v, _ = dist.Value("2016", "- Special Procedures")
	assert.Equal(t, 1.0, v)
	v, _ = dist.Value(report.Total, report.Total)
	assert.Equal(t, 5.0, v)

	mentions, _ := run.Table("group_mentions")
	v, _ = mentions.Value("Children", "2015")
	assert.Equal(t, 1.0, v)
	v, _ = mentions.Value("Rural/Poor", "2015")
	assert.Equal(t, 1.0, v)

	upr, _ := run.Table("upr_theme_share")
	v, _ = upr.Value("Theme", "2016")
	assert.Equal(t, 1.0, v)
	v, _ = upr.Value("Theme %", "2016")
	assert.Equal(t, 50.0, v)

	rights, _ := run.Table("rights_by_year")
	v, _ = rights.Value("1) Right to education", "2015")
	assert.Equal(t, 1.0, v)
	v, _ = rights.Value("7) Right to privacy", "2016")
	assert.Zero(t, v)

	split, _ := run.Table("esc_ccpr_split")
	v, _ = split.Value("ESC %", "2015")
	assert.Equal(t, 33.3, v)

	bodies, _ := run.Table("body_bigrams")
	_, found := bodies.Find("- CRC", "internet access")
	assert.True(t, found)

	require.NoError(t, e.Save(ctx, run))
	got, err := e.store.GetTable(ctx, run.ID, "target_share")
	require.NoError(t, err)
	assert.Equal(t, share.Rows, got.Rows)
}

func TestReportsSelectedAndUnknown(t *testing.T) {
	e := newEngine(t)
	records := e.Prepare(rawCorpus()).Records

	run, err := e.Reports(records, "esc_ccpr_split", "target_share")
	require.NoError(t, err)
	require.Len(t, run.Tables, 2)
	assert.Equal(t, "esc_ccpr_split", run.Tables[0].Name)

	_, err = e.Reports(records, "nope")
	assert.True(t, errors.Is(err, internalerr.ErrNotFound))
}

func TestThemeGroupsByYear(t *testing.T) {
	e := newEngine(t)
	records := e.Prepare(rawCorpus()).Records

	run, err := e.Reports(records, "theme_groups_by_year")
	require.NoError(t, err)
	tab := run.Tables[0]
	assert.Equal(t, []string{"Year"}, tab.KeyColumns)
	assert.Equal(t, e.comp.ThemeGroups.Names(), tab.ValueColumns)
	require.Len(t, tab.Rows, 10)
	assert.Equal(t, []string{"2015"}, tab.Rows[0].Keys)
	assert.Equal(t, []string{"2024"}, tab.Rows[9].Keys)

	v, _ := tab.Value("Right to education", "2015")
	assert.Equal(t, 1.0, v)
	v, _ = tab.Value("Sexual & gender-based violence", "2015")
	assert.Equal(t, 1.0, v)
	v, _ = tab.Value("Right to health", "2016")
	assert.Equal(t, 1.0, v)
	// UPR records stay out of the theme group tables.
	v, _ = tab.Value("Freedom of expression", "2016")
	assert.Zero(t, v)
}

func TestAudit(t *testing.T) {
	e := newEngine(t)
	records := e.Prepare(rawCorpus()).Records

	run := e.Audit(records)
	unaccounted, ok := run.Table("unaccounted")
	require.True(t, ok)
	assert.Empty(t, unaccounted.Rows)

	disc, _ := run.Table("year_discrepancies")
	for _, r := range disc.Rows {
		assert.NotEqual(t, r.Values[0], r.Values[1])
	}
}

func TestSaveWithoutStore(t *testing.T) {
	comp, err := (&config.Loader{}).Load()
	require.NoError(t, err)
	e := New(Options{Components: comp})
	err = e.Save(context.Background(), &Run{ID: "x"})
	assert.True(t, errors.Is(err, internalerr.ErrStoreUnavailable))
	assert.NoError(t, e.Close())
}
