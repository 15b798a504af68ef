// Package config holds the small set of REPL-side knobs the core
// itself has no opinion about: prompt text and where session history
// is kept. None of it affects scanning, parsing, or evaluation.
package config

import (
	"os"
	"strconv"
)

const (
	DefaultPrompt       = ">> "
	DefaultHistoryPath  = "nibble_history.db"
	DefaultHistoryLimit = 200
)

// Config is the REPL's runtime configuration, loaded once at startup.
type Config struct {
	Prompt       string
	HistoryPath  string
	HistoryLimit int
	NoColor      bool
}

// Load builds a Config from defaults overlaid with environment
// variables: NIBBLE_PROMPT, NIBBLE_HISTORY, NIBBLE_HISTORY_LIMIT,
// NIBBLE_NO_COLOR.
func Load() Config {
	cfg := Config{
		Prompt:       DefaultPrompt,
		HistoryPath:  DefaultHistoryPath,
		HistoryLimit: DefaultHistoryLimit,
	}

	if v := os.Getenv("NIBBLE_PROMPT"); v != "" {
		cfg.Prompt = v
	}
	if v := os.Getenv("NIBBLE_HISTORY"); v != "" {
		cfg.HistoryPath = v
	}
	if v := os.Getenv("NIBBLE_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HistoryLimit = n
		}
	}
	if v := os.Getenv("NIBBLE_NO_COLOR"); v != "" {
		cfg.NoColor = true
	}

	return cfg
}
