package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DataPath is where the dataset is read from, relative to the working directory
const DataPath = "data/phone_data.csv"

const (
	EnvLogLevel = "PHONEQUERY_LOG_LEVEL"
	EnvSeqURL   = "PHONEQUERY_SEQ_URL"
	EnvHeadRows = "PHONEQUERY_HEAD"
)

// Config holds the runtime settings. None of them changes which rows a query returns.
type Config struct {
	LogLevel slog.Level
	SeqURL   string // empty disables the Seq sink
	HeadRows int    // rows printed per scenario
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		LogLevel: slog.LevelWarn,
		HeadRows: 5,
	}
}

// Load reads an optional .env file from the working directory, then the environment
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from a variable lookup function
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}

	if v, ok := lookup(EnvSeqURL); ok {
		cfg.SeqURL = strings.TrimSpace(v)
	}

	if v, ok := lookup(EnvHeadRows); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("%s: want a non-negative integer, got %q", EnvHeadRows, v)
		}
		cfg.HeadRows = n
	}

	return cfg, nil
}
