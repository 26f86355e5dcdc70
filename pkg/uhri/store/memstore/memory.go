package memstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/uhri/pkg/uhri/internalerr"
	"github.com/cognicore/uhri/pkg/uhri/report"
	"github.com/cognicore/uhri/pkg/uhri/store"
)

type key struct{ run, name string }

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu     sync.RWMutex
	tables map[key][]byte
	order  map[string][]string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		tables: make(map[key][]byte),
		order:  make(map[string][]string),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveTable stores an encoded copy of t.
func (s *Store) SaveTable(ctx context.Context, t *report.Table) error {
	if t.Name == "" {
		return fmt.Errorf("%w: table without name", internalerr.ErrInvalidInput)
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	k := key{t.RunID, t.Name}
	if _, ok := s.tables[k]; !ok {
		s.order[t.RunID] = append(s.order[t.RunID], t.Name)
	}
	s.tables[k] = data
	return nil
}

// GetTable decodes a fresh copy of the stored table.
func (s *Store) GetTable(ctx context.Context, runID, name string) (*report.Table, error) {
	s.mu.RLock()
	data, ok := s.tables[key{runID, name}]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("table %s/%s: %w", runID, name, internalerr.ErrNotFound)
	}
	var t report.Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTables returns the run's tables in save order.
func (s *Store) ListTables(ctx context.Context, runID string) ([]store.TableInfo, error) {
	s.mu.RLock()
	names := append([]string(nil), s.order[runID]...)
	s.mu.RUnlock()

	out := make([]store.TableInfo, 0, len(names))
	for _, name := range names {
		t, err := s.GetTable(ctx, runID, name)
		if err != nil {
			return nil, err
		}
		out = append(out, store.TableInfo{RunID: runID, Name: name, Title: t.Title, Rows: len(t.Rows)})
	}
	return out, nil
}

// ListRuns returns run IDs, newest first. Run IDs are ULIDs, so they sort
// by creation time.
func (s *Store) ListRuns(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := make([]string, 0, len(s.order))
	for run := range s.order {
		runs = append(runs, run)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(runs)))
	return runs, nil
}

var _ store.Store = (*Store)(nil)
