package config

import (
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvConfig   = "UHRI_CONFIG"
	EnvDB       = "UHRI_DB"
	EnvLogLevel = "UHRI_LOG_LEVEL"
	EnvLogJSON  = "UHRI_LOG_JSON"
)

// Env holds process settings taken from the environment.
type Env struct {
	VocabularyPath string
	DBPath         string
	LogLevel       string
	LogJSON        bool
}

// FromEnv reads settings from environment variables with defaults.
func FromEnv() Env {
	return Env{
		VocabularyPath: os.Getenv(EnvConfig),
		DBPath:         os.Getenv(EnvDB),
		LogLevel:       getenv(EnvLogLevel, "info"),
		LogJSON:        getenvBool(EnvLogJSON, false),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
