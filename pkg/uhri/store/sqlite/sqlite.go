package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/uhri/pkg/uhri/internalerr"
	"github.com/cognicore/uhri/pkg/uhri/report"
	"github.com/cognicore/uhri/pkg/uhri/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS report_tables (
	run_id TEXT NOT NULL,
	name TEXT NOT NULL,
	seq INTEGER NOT NULL,
	title TEXT,
	key_columns TEXT NOT NULL,
	value_columns TEXT NOT NULL,
	PRIMARY KEY(run_id, name),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS report_rows (
	run_id TEXT NOT NULL,
	name TEXT NOT NULL,
	idx INTEGER NOT NULL,
	keys TEXT NOT NULL,
	cells TEXT NOT NULL,
	PRIMARY KEY(run_id, name, idx),
	FOREIGN KEY(run_id, name) REFERENCES report_tables(run_id, name) ON DELETE CASCADE
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveTable replaces the table keyed by (run ID, name) in one transaction.
func (s *sqliteStore) SaveTable(ctx context.Context, t *report.Table) error {
	if t.Name == "" {
		return fmt.Errorf("%w: table without name", internalerr.ErrInvalidInput)
	}
	keyCols, err := json.Marshal(t.KeyColumns)
	if err != nil {
		return err
	}
	valueCols, err := json.Marshal(t.ValueColumns)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	created := t.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO runs (id, created_at) VALUES (?, ?)
ON CONFLICT(id) DO NOTHING;
`, t.RunID, created.Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("save run: %w", err)
	}

	var seq int64
	err = tx.QueryRowContext(ctx, `SELECT seq FROM report_tables WHERE run_id = ? AND name = ?`, t.RunID, t.Name).Scan(&seq)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM report_tables WHERE run_id = ?`, t.RunID).Scan(&seq); err != nil {
			return err
		}
	case err != nil:
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM report_rows WHERE run_id = ? AND name = ?`, t.RunID, t.Name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM report_tables WHERE run_id = ? AND name = ?`, t.RunID, t.Name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO report_tables (run_id, name, seq, title, key_columns, value_columns)
VALUES (?, ?, ?, ?, ?, ?);
`, t.RunID, t.Name, seq, t.Title, string(keyCols), string(valueCols)); err != nil {
		return fmt.Errorf("save table %s: %w", t.Name, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO report_rows (run_id, name, idx, keys, cells) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, r := range t.Rows {
		keys, err := json.Marshal(r.Keys)
		if err != nil {
			return err
		}
		cells, err := json.Marshal(r.Values)
		if err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx, t.RunID, t.Name, i, string(keys), string(cells)); err != nil {
			return fmt.Errorf("save row %d of %s: %w", i, t.Name, err)
		}
	}

	return tx.Commit()
}

// GetTable reads one table back with its rows in order.
func (s *sqliteStore) GetTable(ctx context.Context, runID, name string) (*report.Table, error) {
	t := &report.Table{RunID: runID, Name: name}
	var keyCols, valueCols, created string
	err := s.db.QueryRowContext(ctx, `
SELECT t.title, t.key_columns, t.value_columns, r.created_at
FROM report_tables t JOIN runs r ON r.id = t.run_id
WHERE t.run_id = ? AND t.name = ?;
`, runID, name).Scan(&t.Title, &keyCols, &valueCols, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("table %s/%s: %w", runID, name, internalerr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(keyCols), &t.KeyColumns); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(valueCols), &t.ValueColumns); err != nil {
		return nil, err
	}
	if at, err := time.Parse(time.RFC3339Nano, created); err == nil {
		t.CreatedAt = at
	}

	rows, err := s.db.QueryContext(ctx, `
SELECT keys, cells FROM report_rows
WHERE run_id = ? AND name = ?
ORDER BY idx;
`, runID, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var keys, cells string
		if err := rows.Scan(&keys, &cells); err != nil {
			return nil, err
		}
		var r report.Row
		if err := json.Unmarshal([]byte(keys), &r.Keys); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(cells), &r.Values); err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, r)
	}
	return t, rows.Err()
}

// ListTables returns the run's tables in save order.
func (s *sqliteStore) ListTables(ctx context.Context, runID string) ([]store.TableInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT t.name, t.title, COUNT(r.idx)
FROM report_tables t
LEFT JOIN report_rows r ON r.run_id = t.run_id AND r.name = t.name
WHERE t.run_id = ?
GROUP BY t.name, t.title, t.seq
ORDER BY t.seq;
`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.TableInfo
	for rows.Next() {
		info := store.TableInfo{RunID: runID}
		if err := rows.Scan(&info.Name, &info.Title, &info.Rows); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// ListRuns returns run IDs, newest first.
func (s *sqliteStore) ListRuns(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
