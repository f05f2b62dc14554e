package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hts/hierarchy"
	"github.com/katalvlaran/hts/naive"
	"github.com/katalvlaran/hts/reconcile"
)

// runConfig models the optional YAML run configuration. Every field has a
// working default so a bare CSV is enough to get started.
type runConfig struct {
	// Horizon is the number of future steps to forecast.
	Horizon int `yaml:"horizon"`

	// Method selects the reconciliation strategy (canonical name or
	// mnemonic, e.g. "bottom-up" or "BU").
	Method string `yaml:"method"`

	// Frequency is the calendar frequency code passed to the backend.
	Frequency string `yaml:"frequency"`

	// Levels reassigns tag columns to hierarchy levels (1-based, one
	// entry per tag column). Empty means the CSV column order.
	Levels []int `yaml:"levels"`

	// Weekly rolls the input up to week-ending buckets before building
	// the hierarchy.
	Weekly bool `yaml:"weekly"`

	// DropSparse switches the missing-cell policy from impute-1 to
	// drop-sparse-columns-then-gap-rows.
	DropSparse bool `yaml:"drop_sparse"`

	// ImputeValue overrides the imputation constant (ignored under
	// DropSparse).
	ImputeValue *float64 `yaml:"impute_value"`

	// SeasonLength is the persistence period of the bundled baseline.
	SeasonLength int `yaml:"season_length"`

	IncludeHistory bool `yaml:"include_history"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Horizon:        reconcile.DefaultHorizon,
		Method:         reconcile.DefaultMethod.String(),
		Frequency:      reconcile.DefaultFrequency,
		SeasonLength:   naive.DefaultSeasonLength,
		IncludeHistory: false,
	}
}

// loadRunConfig reads the YAML file at path, or returns the defaults when
// path is empty.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Horizon < 1 {
		cfg.Horizon = reconcile.DefaultHorizon
	}
	if strings.TrimSpace(cfg.Method) == "" {
		cfg.Method = reconcile.DefaultMethod.String()
	}
	if cfg.SeasonLength < 1 {
		cfg.SeasonLength = naive.DefaultSeasonLength
	}

	return cfg, nil
}

// buildOptions maps the run configuration onto hierarchy build options.
func (rc runConfig) buildOptions() []hierarchy.Option {
	var opts []hierarchy.Option
	if rc.DropSparse {
		opts = append(opts, hierarchy.WithDropSparse())
	} else if rc.ImputeValue != nil {
		opts = append(opts, hierarchy.WithImputeValue(*rc.ImputeValue))
	}

	return opts
}

// reconcileConfig maps the run configuration onto the orchestrator's.
func (rc runConfig) reconcileConfig() (reconcile.Config, error) {
	method, err := reconcile.ParseMethod(rc.Method)
	if err != nil {
		return reconcile.Config{}, err
	}

	cfg := reconcile.DefaultConfig()
	cfg.Horizon = rc.Horizon
	cfg.Method = method
	cfg.Frequency = rc.Frequency
	cfg.IncludeHistory = rc.IncludeHistory

	return cfg, nil
}
