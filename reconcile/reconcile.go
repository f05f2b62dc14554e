// Package reconcile - the validate→dispatch state machine.

package reconcile

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hts/hierarchy"
	"github.com/katalvlaran/hts/summing"
)

// Result is the outcome of one reconciliation run.
type Result struct {
	// Method is the strategy that produced Tables: the configured one, or
	// the bake-off winner under MethodCVSelect.
	Method Method

	// Tables holds one forecast table per node column, total first,
	// aligned with the input series' value columns.
	Tables []*Table

	// CV carries the bake-off report when MethodCVSelect ran; nil otherwise.
	CV *CVReport
}

// CVReport makes the cross-validated selection observable: the winner and
// every candidate's average MASE across folds and leaf nodes.
type CVReport struct {
	Selected Method
	Scores   map[Method]float64
}

// Run validates cfg against series and topo, then dispatches: a single
// backend call for a concrete method, or the 3-fold bake-off for
// MethodCVSelect. All configuration problems surface before the first
// backend call; backend and shape failures are fatal and never retried.
func Run(ctx context.Context, fc Forecaster, series *hierarchy.Series, topo *hierarchy.Topology, cfg Config) (*Result, error) {
	if fc == nil {
		return nil, ErrNilForecaster
	}
	if series == nil || topo == nil {
		return nil, ErrNilSeries
	}
	if err := validate(series, topo, cfg); err != nil {
		return nil, err
	}

	S, err := summing.Build(topo)
	if err != nil {
		return nil, err
	}

	if cfg.Method == MethodCVSelect {
		return crossValidate(ctx, fc, series, topo, S, cfg)
	}

	req := &Request{
		Series:         series,
		Horizon:        cfg.Horizon,
		Summing:        S,
		Topology:       topo,
		Method:         cfg.Method,
		Frequency:      cfg.Frequency,
		IncludeHistory: cfg.IncludeHistory,
		Params:         cfg.Params,
	}
	tables, err := fc.Forecast(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reconcile: backend %s: %w", cfg.Method, err)
	}
	if len(tables) != series.NumCols() {
		return nil, fmt.Errorf("backend returned %d tables for %d node columns: %w",
			len(tables), series.NumCols(), ErrForecastShape)
	}

	return &Result{Method: cfg.Method, Tables: tables}, nil
}

// validate performs every synchronous configuration check, in a fixed
// order: horizon, method, topology vs. data shape, parameter tables.
func validate(series *hierarchy.Series, topo *hierarchy.Topology, cfg Config) error {
	if cfg.Horizon < 1 {
		return fmt.Errorf("horizon %d: %w", cfg.Horizon, ErrInvalidHorizon)
	}
	if !cfg.Method.valid() {
		return fmt.Errorf("method %d: %w", int(cfg.Method), ErrUnknownMethod)
	}
	if err := topo.Validate(); err != nil {
		return err
	}
	// Node columns = every value column except the total.
	if topo.NodeCount() != series.NumCols()-1 {
		return fmt.Errorf("topology lists %d nodes, series has %d node columns: %w",
			topo.NodeCount(), series.NumCols()-1, ErrShapeMismatch)
	}

	// Forecasted nodes = all value columns, total included.
	forecasted := series.NumCols()
	for _, cc := range []*Capacity{cfg.Params.Cap, cfg.Params.CapFuture} {
		if cc == nil || cc.Table == nil {
			continue
		}
		if cc.Table.Cols() != forecasted {
			return fmt.Errorf("capacity table has %d columns, want %d: %w",
				cc.Table.Cols(), forecasted, ErrCapacityShape)
		}
	}
	if cp := cfg.Params.NChangepointsPerNode; cp != nil && len(cp) != forecasted {
		return fmt.Errorf("changepoint list has %d entries, want %d: %w",
			len(cp), forecasted, ErrChangepointShape)
	}
	if cfg.Method == MethodCVSelect && series.Len() < minCVRows {
		return fmt.Errorf("%d rows: %w", series.Len(), ErrTooFewRows)
	}

	return nil
}
