package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/uhri/pkg/uhri/internalerr"
	"github.com/cognicore/uhri/pkg/uhri/report"
	"github.com/cognicore/uhri/pkg/uhri/store"
)

func openTemp(t *testing.T) store.Store {
	t.Helper()
	st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "uhri.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func shareTable(run string) *report.Table {
	t := &report.Table{
		Name:         "internet_share",
		Title:        "Internet share",
		RunID:        run,
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		KeyColumns:   []string{"Year"},
		ValueColumns: []string{"Total", "Internet", "Share %"},
	}
	t.Append([]string{"2010"}, 3, 1, 33.3)
	t.Append([]string{report.Total}, 3, 1, 33.3)
	return t
}

func TestSaveAndGetTable(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	in := shareTable("01HXRUN1")
	require.NoError(t, st.SaveTable(ctx, in))

	got, err := st.GetTable(ctx, "01HXRUN1", "internet_share")
	require.NoError(t, err)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.KeyColumns, got.KeyColumns)
	assert.Equal(t, in.ValueColumns, got.ValueColumns)
	assert.Equal(t, in.Rows, got.Rows)
	assert.True(t, in.CreatedAt.Equal(got.CreatedAt))
}

func TestSaveTableReplaces(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	in := shareTable("run")
	require.NoError(t, st.SaveTable(ctx, in))
	in.Rows = in.Rows[:1]
	require.NoError(t, st.SaveTable(ctx, in))

	got, err := st.GetTable(ctx, "run", in.Name)
	require.NoError(t, err)
	assert.Len(t, got.Rows, 1)

	infos, err := st.ListTables(ctx, "run")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, 1, infos[0].Rows)
}

func TestListTablesInSaveOrder(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		tab := shareTable("run")
		tab.Name = name
		require.NoError(t, st.SaveTable(ctx, tab))
	}
	infos, err := st.ListTables(ctx, "run")
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "zeta", infos[0].Name)
	assert.Equal(t, "alpha", infos[1].Name)
	assert.Equal(t, "mid", infos[2].Name)
	assert.Equal(t, 2, infos[0].Rows)
}

func TestListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := openTemp(t)
	require.NoError(t, st.SaveTable(ctx, shareTable("01A")))
	require.NoError(t, st.SaveTable(ctx, shareTable("01B")))

	runs, err := st.ListRuns(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"01B", "01A"}, runs)
}

func TestGetTableNotFound(t *testing.T) {
	_, err := openTemp(t).GetTable(context.Background(), "run", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalerr.ErrNotFound))
}

func TestSaveTableRequiresName(t *testing.T) {
	err := openTemp(t).SaveTable(context.Background(), &report.Table{})
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))
}

func TestReopenKeepsTables(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "uhri.db")

	st, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	require.NoError(t, st.SaveTable(ctx, shareTable("run")))
	require.NoError(t, st.Close())

	st, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer st.Close()
	got, err := st.GetTable(ctx, "run", "internet_share")
	require.NoError(t, err)
	assert.Len(t, got.Rows, 2)
}
