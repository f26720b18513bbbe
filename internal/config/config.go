// Package config resolves the run configuration from built-in defaults, an
// optional YAML file and LCSALIGN_* environment variables, in that order.
// Command-line flags are applied last by the caller.
package config

import (
	"context"
	"errors"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	cerrors "cloudeng.io/errors"
	"github.com/caarlos0/env/v11"

	"lcsalign-core/align"
)

type Scoring struct {
	Match    int `yaml:"match" env:"LCSALIGN_MATCH"`
	Mismatch int `yaml:"mismatch" env:"LCSALIGN_MISMATCH"`
	Gap      int `yaml:"gap" env:"LCSALIGN_GAP"`
}

// Config is the YAML schema; every field may also come from the environment.
type Config struct {
	Scoring  Scoring `yaml:"scoring"`
	Mode     string  `yaml:"mode" env:"LCSALIGN_MODE"`
	Workers  int     `yaml:"workers" env:"LCSALIGN_WORKERS"`
	MaxCells int     `yaml:"max_cells" env:"LCSALIGN_MAX_CELLS"`
	Output   string  `yaml:"output" env:"LCSALIGN_OUTPUT"`
	Width    int     `yaml:"width" env:"LCSALIGN_WIDTH"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Scoring: Scoring{
			Match:    align.DefaultScoring.Match,
			Mismatch: align.DefaultScoring.Mismatch,
			Gap:      align.DefaultScoring.Gap,
		},
		Mode:     string(align.ModeAuto),
		Workers:  1,
		MaxCells: align.DefaultMaxCells,
		Output:   "text",
		Width:    60,
	}
}

// Load layers the YAML file at path (skipped when empty; unknown keys are
// an error) and the environment over Defaults.
func Load(ctx context.Context, path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := cmdyaml.ParseConfigFileStrict(ctx, path, &cfg); err != nil {
			return cfg, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs cerrors.M
	if _, err := align.ParseMode(c.Mode); err != nil {
		errs.Append(err)
	}
	if c.Workers < 0 {
		errs.Append(errors.New("workers must be ≥ 0"))
	}
	if c.MaxCells < 0 {
		errs.Append(errors.New("max_cells must be ≥ 0"))
	}
	if c.Width < 0 {
		errs.Append(errors.New("width must be ≥ 0"))
	}
	if c.Scoring == (Scoring{}) {
		errs.Append(errors.New("scoring: match, mismatch and gap are all zero"))
	}
	return errs.Err()
}

// Align returns the engine mode and configuration. Call Validate first.
func (c Config) Align() (align.Mode, align.Config) {
	m, _ := align.ParseMode(c.Mode)
	return m, align.Config{
		Scoring:  align.Scoring{Match: c.Scoring.Match, Mismatch: c.Scoring.Mismatch, Gap: c.Scoring.Gap},
		Workers:  c.Workers,
		MaxCells: c.MaxCells,
	}
}
