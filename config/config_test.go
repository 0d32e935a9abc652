package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.hcl")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Rows != 20 || cfg.Columns != 20 {
		t.Errorf("default board = %dx%d, want 20x20", cfg.Rows, cfg.Columns)
	}
	if cfg.TickInterval != 100*time.Millisecond {
		t.Errorf("default tick = %s, want 100ms", cfg.TickInterval)
	}
	if b := cfg.Board(); b.Rows != 20 || b.Columns != 20 {
		t.Errorf("Board() = %+v", b)
	}
}

func TestLoadFileOverlaysOnlyPresentAttributes(t *testing.T) {
	path := writeConfig(t, `
rows    = 30
tick_ms = 80
sound   = false
seed    = 1234
`)
	cfg := Default()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	if cfg.Rows != 30 {
		t.Errorf("Rows = %d, want 30", cfg.Rows)
	}
	if cfg.Columns != 20 {
		t.Errorf("Columns = %d, want default 20", cfg.Columns)
	}
	if cfg.TickInterval != 80*time.Millisecond {
		t.Errorf("TickInterval = %s, want 80ms", cfg.TickInterval)
	}
	if cfg.Sound {
		t.Error("Sound should be disabled by file")
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d, want 1234", cfg.Seed)
	}
	if cfg.BlinkCount != 3 {
		t.Errorf("BlinkCount = %d, want default 3", cfg.BlinkCount)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"Syntax error", "rows = = 3", "load config file"},
		{"Unknown attribute", "speed = 9", "decode config file"},
		{"Wrong type", `rows = "many"`, "decode config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			err := LoadFile(writeConfig(t, tt.body), &cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want prefix %q", err, tt.want)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	if err := LoadFile(filepath.Join(t.TempDir(), "absent.hcl"), &cfg); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "rows = 30\ncolumns = 40\n")
	t.Setenv("SNAKE_ROWS", "12")
	t.Setenv("SNAKE_TICK", "250ms")
	t.Setenv("SNAKE_DEBUG", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Rows != 12 {
		t.Errorf("Rows = %d, want env value 12", cfg.Rows)
	}
	if cfg.Columns != 40 {
		t.Errorf("Columns = %d, want file value 40", cfg.Columns)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval = %s, want 250ms", cfg.TickInterval)
	}
	if !cfg.Debug {
		t.Error("Debug should be enabled by env")
	}
	if !cfg.Sound {
		t.Error("Sound should keep its default")
	}
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv("SNAKE_COLUMNS", "wide")

	cfg := Default()
	err := LoadEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"Zero rows", func(c *Config) { c.Rows = 0 }, "rows"},
		{"Negative columns", func(c *Config) { c.Columns = -1 }, "columns"},
		{"Zero tick", func(c *Config) { c.TickInterval = 0 }, "tick interval"},
		{"Negative blinks", func(c *Config) { c.BlinkCount = -1 }, "blink count"},
		{"Blink without interval", func(c *Config) { c.BlinkInterval = 0 }, "blink interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) || !strings.HasPrefix(err.Error(), "invalid config") {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}

	cfg := Default()
	cfg.BlinkCount = 0
	cfg.BlinkInterval = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("no blinks needs no interval: %v", err)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	if _, err := Load(writeConfig(t, "rows = 0\n")); err == nil {
		t.Error("expected validation error")
	}
}
