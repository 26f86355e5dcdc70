package main

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cognicore/uhri/internal/corpus"
	"github.com/cognicore/uhri/pkg/uhri"
	"github.com/cognicore/uhri/pkg/uhri/report"
	"github.com/cognicore/uhri/pkg/uhri/store"
	"github.com/cognicore/uhri/pkg/uhri/store/sqlite"
)

var (
	reportInput string
	dbPath      string
	asJSON      bool
	listReports bool
	topK        int
)

var reportCmd = &cobra.Command{
	Use:   "report [name...]",
	Short: "Build report tables from a corpus",
	Long: `Report selects and normalizes the corpus, then prints the named report
tables, or every table when no name is given. With --db the run is also
saved to a SQLite database.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportInput, "input", "i", "", "corpus file, raw or prepared")
	reportCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to save the run to; env UHRI_DB")
	reportCmd.Flags().BoolVar(&asJSON, "json", false, "print tables as JSON")
	reportCmd.Flags().BoolVar(&listReports, "list", false, "list report names and exit")
	reportCmd.Flags().IntVar(&topK, "top", uhri.DefaultTopK, "bigrams reported per scope")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	if listReports {
		for _, name := range uhri.ReportNames() {
			cmd.Println(name)
		}
		return nil
	}
	if reportInput == "" {
		return errors.New("--input is required")
	}

	ctx := cmd.Context()
	logger := slog.Default()

	var st store.Store
	if dbPath != "" {
		s, err := sqlite.OpenSQLite(ctx, dbPath)
		if err != nil {
			return err
		}
		st = s
	}
	engine, err := newEngine(logger, st)
	if err != nil {
		if st != nil {
			st.Close()
		}
		return err
	}
	defer engine.Close()

	raws, err := corpus.Load(reportInput, logger)
	if err != nil {
		return err
	}
	prep := engine.Prepare(raws)
	run, err := engine.Reports(prep.Records, args...)
	if err != nil {
		return err
	}
	if err := printRun(cmd, run); err != nil {
		return err
	}
	if st != nil {
		return engine.Save(ctx, run)
	}
	return nil
}

func printRun(cmd *cobra.Command, run *uhri.Run) error {
	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(run.Tables)
	}
	for _, t := range run.Tables {
		cmd.Println()
		if err := report.Render(out, t); err != nil {
			return err
		}
	}
	return nil
}
