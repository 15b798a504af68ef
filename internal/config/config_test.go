package config_test

import (
	"testing"

	"github.com/nibblelang/nibble/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"NIBBLE_PROMPT", "NIBBLE_HISTORY", "NIBBLE_HISTORY_LIMIT", "NIBBLE_NO_COLOR"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	if cfg.Prompt != config.DefaultPrompt {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, config.DefaultPrompt)
	}
	if cfg.HistoryPath != config.DefaultHistoryPath {
		t.Errorf("HistoryPath = %q, want %q", cfg.HistoryPath, config.DefaultHistoryPath)
	}
	if cfg.HistoryLimit != config.DefaultHistoryLimit {
		t.Errorf("HistoryLimit = %d, want %d", cfg.HistoryLimit, config.DefaultHistoryLimit)
	}
	if cfg.NoColor {
		t.Errorf("NoColor = true, want false")
	}
}

func TestLoadOverridesFromEnv(t *testing.T) {
	t.Setenv("NIBBLE_PROMPT", "nib> ")
	t.Setenv("NIBBLE_HISTORY", "/tmp/custom_history.db")
	t.Setenv("NIBBLE_HISTORY_LIMIT", "50")
	t.Setenv("NIBBLE_NO_COLOR", "1")

	cfg := config.Load()
	if cfg.Prompt != "nib> " {
		t.Errorf("Prompt = %q, want %q", cfg.Prompt, "nib> ")
	}
	if cfg.HistoryPath != "/tmp/custom_history.db" {
		t.Errorf("HistoryPath = %q, want %q", cfg.HistoryPath, "/tmp/custom_history.db")
	}
	if cfg.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", cfg.HistoryLimit)
	}
	if !cfg.NoColor {
		t.Errorf("NoColor = false, want true")
	}
}

func TestLoadIgnoresInvalidHistoryLimit(t *testing.T) {
	t.Setenv("NIBBLE_PROMPT", "")
	t.Setenv("NIBBLE_HISTORY", "")
	t.Setenv("NIBBLE_HISTORY_LIMIT", "not-a-number")
	t.Setenv("NIBBLE_NO_COLOR", "")

	cfg := config.Load()
	if cfg.HistoryLimit != config.DefaultHistoryLimit {
		t.Errorf("HistoryLimit = %d, want default %d", cfg.HistoryLimit, config.DefaultHistoryLimit)
	}
}
