// Package uhri turns a recommendation corpus export into the frequency
// tables of the internet-access study.
//
// An Engine wires configured components together: Prepare selects and
// normalizes raw records, Reports computes every report table over the
// normalized corpus, and Save exports a run to a store.
package uhri

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cognicore/uhri/pkg/uhri/aggregate"
	"github.com/cognicore/uhri/pkg/uhri/analysis"
	"github.com/cognicore/uhri/pkg/uhri/config"
	"github.com/cognicore/uhri/pkg/uhri/internalerr"
	"github.com/cognicore/uhri/pkg/uhri/keyword"
	"github.com/cognicore/uhri/pkg/uhri/record"
	"github.com/cognicore/uhri/pkg/uhri/report"
	"github.com/cognicore/uhri/pkg/uhri/store"
)

// DefaultTopK is the number of bigrams reported per scope.
const DefaultTopK = 10

// Engine is the report facade
type Engine struct {
	comp    *config.Components
	store   store.Store
	stamper *report.Stamper
	logger  *slog.Logger
	topK    int
}

// Options configures an Engine
type Options struct {
	Components *config.Components
	Store      store.Store // optional; required by Save
	Stamper    *report.Stamper
	Logger     *slog.Logger
	TopK       int
}

// New creates an Engine with the given dependencies
func New(opts Options) *Engine {
	e := &Engine{
		comp:    opts.Components,
		store:   opts.Store,
		stamper: opts.Stamper,
		logger:  opts.Logger,
		topK:    opts.TopK,
	}
	if e.stamper == nil {
		e.stamper = report.NewStamper()
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.topK <= 0 {
		e.topK = DefaultTopK
	}
	return e
}

// Close closes the store, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Components returns the engine's configured components.
func (e *Engine) Components() *config.Components {
	return e.comp
}

// Prepared is the outcome of Prepare.
type Prepared struct {
	Records  []record.Record
	Selected int // raw records matching the keywords
	Stats    record.Stats
}

// Prepare keeps the raw records whose text matches the keywords, then
// normalizes them and drops empty ones.
func (e *Engine) Prepare(raws []record.RawRecord) Prepared {
	selected := keyword.Select(raws, e.comp.Normalizer.Fields.Text, e.comp.Keywords)
	records, stats := e.comp.Normalizer.NormalizeAll(selected)
	return Prepared{Records: records, Selected: len(selected), Stats: stats}
}

// Run is one stamped set of report tables.
type Run struct {
	ID     string
	Tables []*report.Table
}

// Table returns the run's table called name.
func (r *Run) Table(name string) (*report.Table, bool) {
	for _, t := range r.Tables {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Reports computes the named tables, or every report when names is empty,
// and stamps them with one run ID. Unknown names are an ErrNotFound error.
func (e *Engine) Reports(records []record.Record, names ...string) (*Run, error) {
	if len(names) == 0 {
		names = ReportNames()
	}
	builders := make([]reportDef, 0, len(names))
	for _, name := range names {
		def, ok := lookupReport(name)
		if !ok {
			return nil, fmt.Errorf("report %q: %w", name, internalerr.ErrNotFound)
		}
		builders = append(builders, def)
	}

	v := newView(records)
	run := &Run{Tables: make([]*report.Table, 0, len(builders))}
	for _, def := range builders {
		t := def.build(e, v)
		t.Name, t.Title = def.name, def.title
		e.logger.Debug("built report", "name", def.name, "rows", len(t.Rows))
		run.Tables = append(run.Tables, t)
	}
	run.ID = e.stamper.Stamp(run.Tables...)
	return run, nil
}

// Audit reports records the two year derivations disagree on and
// in-range records missing from the body distribution.
func (e *Engine) Audit(records []record.Record) *Run {
	v := newView(records)
	voc := e.comp.Vocabulary
	run := &Run{Tables: []*report.Table{
		report.Discrepancies("year_discrepancies", "Records whose stored and re-derived years disagree",
			analysis.YearDiscrepancies(records)),
		report.Records("unaccounted", "Records outside the body distribution",
			analysis.Unaccounted(v.replaced, voc.SelectedBodies, voc.Ranges.Full)),
	}}
	run.ID = e.stamper.Stamp(run.Tables...)
	return run
}

// Save exports every table of run to the store.
func (e *Engine) Save(ctx context.Context, run *Run) error {
	if e.store == nil {
		return fmt.Errorf("save run %s: %w", run.ID, internalerr.ErrStoreUnavailable)
	}
	for _, t := range run.Tables {
		if err := e.store.SaveTable(ctx, t); err != nil {
			return fmt.Errorf("save table %s: %w", t.Name, err)
		}
	}
	e.logger.Info("saved run", "run", run.ID, "tables", len(run.Tables))
	return nil
}

// view holds the corpus slices the reports share.
type view struct {
	all      []record.Record
	replaced []record.Record // special-mechanism bodies collapsed to one label
	noUPR    []record.Record // replaced, without UPR records
	upr      []record.Record

	rights *aggregate.Table[int, string] // built on first use
}

func newView(records []record.Record) *view {
	replaced := record.StandardizeBodies(records, record.BodyReplace)
	return &view{
		all:      records,
		replaced: replaced,
		noUPR:    analysis.ExcludeBody(replaced, record.BodyUPR),
		upr:      analysis.OnlyBody(records, record.BodyUPR),
	}
}
