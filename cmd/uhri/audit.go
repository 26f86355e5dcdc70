package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cognicore/uhri/internal/corpus"
)

var auditInput string

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "List records the year derivations disagree on",
	Long: `Audit prints the records whose stored year differs from the year found
by fuzzy date parsing, and the in-range records that fall outside the body
distribution.`,
	Args: cobra.NoArgs,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVarP(&auditInput, "input", "i", "", "corpus file, raw or prepared")
	auditCmd.Flags().BoolVar(&asJSON, "json", false, "print tables as JSON")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, _ []string) error {
	if auditInput == "" {
		return errors.New("--input is required")
	}
	logger := slog.Default()
	engine, err := newEngine(logger, nil)
	if err != nil {
		return err
	}
	defer engine.Close()

	raws, err := corpus.Load(auditInput, logger)
	if err != nil {
		return err
	}
	prep := engine.Prepare(raws)
	return printRun(cmd, engine.Audit(prep.Records))
}
