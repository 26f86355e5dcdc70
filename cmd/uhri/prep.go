package main

import (
	"errors"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cognicore/uhri/internal/corpus"
)

var (
	prepInput  string
	prepOutput string
)

var prepCmd = &cobra.Command{
	Use:   "prep",
	Short: "Select and normalize a raw corpus export",
	Long: `Prep keeps the records whose text mentions one of the keywords,
normalizes their fields, derives the publication year and writes the
result as a JSON array.`,
	Args: cobra.NoArgs,
	RunE: runPrep,
}

func init() {
	prepCmd.Flags().StringVarP(&prepInput, "input", "i", "", "raw corpus export (JSON array or JSONL)")
	prepCmd.Flags().StringVarP(&prepOutput, "output", "o", "", "normalized corpus output path")
	rootCmd.AddCommand(prepCmd)
}

func runPrep(cmd *cobra.Command, _ []string) error {
	if prepInput == "" || prepOutput == "" {
		return errors.New("--input and --output are required")
	}
	logger := slog.Default()
	engine, err := newEngine(logger, nil)
	if err != nil {
		return err
	}
	defer engine.Close()

	raws, err := corpus.Load(prepInput, logger)
	if err != nil {
		return err
	}
	prep := engine.Prepare(raws)
	if err := corpus.Save(prepOutput, prep.Records, engine.Components().Normalizer.Fields); err != nil {
		return err
	}

	logger.Info("prepared corpus",
		"input", prepInput,
		"output", prepOutput,
		"dropped", prep.Stats.Dropped)
	cmd.Printf("Records read:      %s\n", humanize.Comma(int64(len(raws))))
	cmd.Printf("Keyword matches:   %s\n", humanize.Comma(int64(prep.Selected)))
	cmd.Printf("Records kept:      %s\n", humanize.Comma(int64(prep.Stats.Kept)))
	cmd.Printf("With a known year: %s\n", humanize.Comma(int64(prep.Stats.WithYear)))
	return nil
}
