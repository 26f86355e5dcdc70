// Package store persists frozen report tables for export.
package store

import (
	"context"

	"github.com/cognicore/uhri/pkg/uhri/report"
)

// Store persists report tables. Tables are keyed by (run ID, name); saving
// the same key again replaces the table.
type Store interface {
	Close() error

	SaveTable(ctx context.Context, t *report.Table) error
	// GetTable returns internalerr.ErrNotFound when no such table exists.
	GetTable(ctx context.Context, runID, name string) (*report.Table, error)
	// ListTables returns the tables of a run in save order.
	ListTables(ctx context.Context, runID string) ([]TableInfo, error)
	// ListRuns returns run IDs, newest first.
	ListRuns(ctx context.Context) ([]string, error)
}

// TableInfo summarizes a stored table.
type TableInfo struct {
	RunID string
	Name  string
	Title string
	Rows  int
}
