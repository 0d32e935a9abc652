// Package config resolves runtime settings from defaults, an optional HCL file and SNAKE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lixenwraith/term-snake/game"
)

// Config controls board size and driver timing
type Config struct {
	Rows    int `env:"SNAKE_ROWS"`
	Columns int `env:"SNAKE_COLUMNS"`

	TickInterval  time.Duration `env:"SNAKE_TICK"`
	BlinkCount    int           `env:"SNAKE_BLINK_COUNT"`
	BlinkInterval time.Duration `env:"SNAKE_BLINK_INTERVAL"`

	Sound bool   `env:"SNAKE_SOUND"`
	Debug bool   `env:"SNAKE_DEBUG"`
	Seed  uint64 `env:"SNAKE_SEED"`
}

// Default returns a 20x20 board ticking every 100ms with sound enabled
func Default() Config {
	return Config{
		Rows:          game.DefaultRows,
		Columns:       game.DefaultColumns,
		TickInterval:  100 * time.Millisecond,
		BlinkCount:    3,
		BlinkInterval: 500 * time.Millisecond,
		Sound:         true,
	}
}

// Board converts the grid size into a game board
func (c Config) Board() game.Board {
	return game.Board{Rows: c.Rows, Columns: c.Columns}
}

// Validate rejects settings the driver cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.Rows < 1 {
		errs = append(errs, fmt.Errorf("rows must be positive, got %d", c.Rows))
	}
	if c.Columns < 1 {
		errs = append(errs, fmt.Errorf("columns must be positive, got %d", c.Columns))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval must be positive, got %s", c.TickInterval))
	}
	if c.BlinkCount < 0 {
		errs = append(errs, fmt.Errorf("blink count must not be negative, got %d", c.BlinkCount))
	}
	if c.BlinkCount > 0 && c.BlinkInterval <= 0 {
		errs = append(errs, fmt.Errorf("blink interval must be positive, got %s", c.BlinkInterval))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// hclConfigFile is the decoded form of a config file, nil fields keep the current value
type hclConfigFile struct {
	Rows    *int    `hcl:"rows,optional"`
	Columns *int    `hcl:"columns,optional"`
	TickMs  *int    `hcl:"tick_ms,optional"`
	Blinks  *int    `hcl:"blink_count,optional"`
	BlinkMs *int    `hcl:"blink_ms,optional"`
	Sound   *bool   `hcl:"sound,optional"`
	Debug   *bool   `hcl:"debug,optional"`
	Seed    *uint64 `hcl:"seed,optional"`
}

// LoadFile overlays attributes from an HCL file onto cfg
func LoadFile(path string, cfg *Config) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("load config file %s: %w", path, diags)
	}

	var parsed hclConfigFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("decode config file %s: %w", path, diags)
	}

	parsed.apply(cfg)
	return nil
}

func (f *hclConfigFile) apply(cfg *Config) {
	if f.Rows != nil {
		cfg.Rows = *f.Rows
	}
	if f.Columns != nil {
		cfg.Columns = *f.Columns
	}
	if f.TickMs != nil {
		cfg.TickInterval = time.Duration(*f.TickMs) * time.Millisecond
	}
	if f.Blinks != nil {
		cfg.BlinkCount = *f.Blinks
	}
	if f.BlinkMs != nil {
		cfg.BlinkInterval = time.Duration(*f.BlinkMs) * time.Millisecond
	}
	if f.Sound != nil {
		cfg.Sound = *f.Sound
	}
	if f.Debug != nil {
		cfg.Debug = *f.Debug
	}
	if f.Seed != nil {
		cfg.Seed = *f.Seed
	}
}

// LoadEnv overlays SNAKE_* environment variables onto cfg, unset variables keep the current value
func LoadEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load resolves defaults, then the file at path if non-empty, then the environment
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := LoadEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
