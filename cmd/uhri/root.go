package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cognicore/uhri/internal/logging"
	"github.com/cognicore/uhri/pkg/uhri"
	"github.com/cognicore/uhri/pkg/uhri/config"
	"github.com/cognicore/uhri/pkg/uhri/store"
)

var (
	vocabularyPath string
	stoplistPath   string
	logLevel       string
	logJSON        bool
	envFile        string
)

var rootCmd = &cobra.Command{
	Use:   "uhri",
	Short: "Frequency reports over a human-rights recommendation corpus",
	Long: `uhri filters a recommendation corpus export down to the records that
mention internet access, normalizes them, and builds the study's frequency
tables: yearly shares, body distributions, group mentions, bigrams and
rights breakdowns.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&vocabularyPath, "config", "", "vocabulary file (YAML or TOML); env "+config.EnvConfig)
	flags.StringVar(&stoplistPath, "stoplist", "", "extra stop list file (YAML)")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error; env "+config.EnvLogLevel)
	flags.BoolVar(&logJSON, "log-json", false, "log as JSON lines; env "+config.EnvLogJSON)
	flags.StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")
}

// setup loads the env file, then lets flags override the environment.
func setup(cmd *cobra.Command, _ []string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	env := config.FromEnv()
	flags := cmd.Flags()
	if !flags.Changed("config") {
		vocabularyPath = env.VocabularyPath
	}
	if !flags.Changed("log-level") {
		logLevel = env.LogLevel
	}
	if !flags.Changed("log-json") {
		logJSON = env.LogJSON
	}
	if !flags.Changed("db") {
		dbPath = env.DBPath
	}
	logging.Init(logJSON, logging.ParseLevel(logLevel))
	return nil
}

// newEngine loads the configured components. st may be nil.
func newEngine(logger *slog.Logger, st store.Store) (*uhri.Engine, error) {
	loader := config.Loader{
		VocabularyPath: vocabularyPath,
		StoplistPath:   stoplistPath,
		Logger:         logger,
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return uhri.New(uhri.Options{Components: comp, Store: st, Logger: logger, TopK: topK}), nil
}
