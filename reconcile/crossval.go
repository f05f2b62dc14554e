// Package reconcile - cross-validated method selection.
//
// The split is temporal, never shuffled: fold i trains on a growing prefix
// of the time axis and tests on the contiguous window that follows it, so
// no candidate ever sees future data. The 3 folds × 5 candidates = 15 fits
// share the series, topology and summing matrix read-only and write into
// disjoint score slots, so they run concurrently; one failure cancels the
// rest and aborts the selection — silently excluding a failing method
// would bias the comparison.

package reconcile

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hts/hierarchy"
	"github.com/katalvlaran/hts/hmatrix"
)

const (
	// cvFolds is the fixed number of forward-chaining folds.
	cvFolds = 3

	// minCVRows: each of the cvFolds test windows needs at least one row,
	// and so does the first train prefix.
	minCVRows = cvFolds + 1
)

// fold is one forward-chaining split: train rows [0, trainEnd), test rows
// [trainEnd, testEnd).
type fold struct {
	trainEnd int
	testEnd  int
}

// forwardChainingFolds carves n chronological rows into cvFolds folds with
// equal test windows of n/(cvFolds+1) rows each (integer division) and
// growing train prefixes. Monotonic and non-overlapping by construction.
func forwardChainingFolds(n int) ([]fold, error) {
	if n < minCVRows {
		return nil, fmt.Errorf("%d rows: %w", n, ErrTooFewRows)
	}
	testSize := n / (cvFolds + 1)
	firstTrain := n - cvFolds*testSize

	folds := make([]fold, cvFolds)
	for i := 0; i < cvFolds; i++ {
		folds[i] = fold{
			trainEnd: firstTrain + i*testSize,
			testEnd:  firstTrain + (i+1)*testSize,
		}
	}

	return folds, nil
}

// MASE computes the Mean Absolute Scaled Error of a forecast window
// against its actuals: sum of absolute errors, scaled by (n/(n-1)) times
// the sum of the actuals' absolute first differences.
//
// Degenerate windows (a single point, or constant actuals) have a zero
// scale term; a perfect forecast still scores 0, anything else scores +Inf
// so the method is penalized rather than silently favored.
//
// Returns ErrScoreShape when the windows are empty or of unequal length.
func MASE(forecast, actual []float64) (float64, error) {
	n := len(actual)
	if n == 0 || len(forecast) != n {
		return 0, fmt.Errorf("forecast %d vs actual %d: %w", len(forecast), n, ErrScoreShape)
	}

	var num float64
	for i := 0; i < n; i++ {
		num += math.Abs(forecast[i] - actual[i])
	}

	var scale float64
	for i := 1; i < n; i++ {
		scale += math.Abs(actual[i] - actual[i-1])
	}
	if n < 2 || scale == 0 {
		if num == 0 {
			return 0, nil
		}

		return math.Inf(1), nil
	}

	return num / (float64(n) / float64(n-1) * scale), nil
}

// crossValidate runs the bake-off and the final refit. Preconditions
// (validate, series length) hold on entry.
func crossValidate(ctx context.Context, fc Forecaster, series *hierarchy.Series, topo *hierarchy.Topology, S *hmatrix.Dense, cfg Config) (*Result, error) {
	folds, err := forwardChainingFolds(series.Len())
	if err != nil {
		return nil, err
	}

	leaves := topo.LeafCount()
	leafBase := series.NumCols() - leaves

	// scores[f][m] holds the per-leaf MASE values of fold f, candidate m.
	// Each fit owns exactly one slot, so no locking is needed.
	scores := make([][][]float64, len(folds))
	for f := range scores {
		scores[f] = make([][]float64, len(candidateMethods))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for f, fo := range folds {
		f, fo := f, fo
		for m, method := range candidateMethods {
			m, method := m, method
			g.Go(func() error {
				vals, err := scoreFold(gctx, fc, series, topo, S, cfg, fo, method, leafBase, leaves)
				if err != nil {
					return fmt.Errorf("reconcile: fold %d, backend %s: %w", f+1, method, err)
				}
				scores[f][m] = vals

				return nil
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	// Average each candidate across all folds and leaves; pick the minimum,
	// first-in-order on ties.
	report := &CVReport{Scores: make(map[Method]float64, len(candidateMethods))}
	best, bestScore := candidateMethods[0], math.Inf(1)
	for m, method := range candidateMethods {
		var sum float64
		var cnt int
		for f := range folds {
			for _, v := range scores[f][m] {
				sum += v
				cnt++
			}
		}
		avg := sum / float64(cnt)
		report.Scores[method] = avg
		if avg < bestScore {
			best, bestScore = method, avg
		}
	}
	report.Selected = best

	// Refit the winner on the full, untruncated data at the real horizon.
	final := cfg
	final.Method = best
	req := &Request{
		Series:         series,
		Horizon:        final.Horizon,
		Summing:        S,
		Topology:       topo,
		Method:         best,
		Frequency:      final.Frequency,
		IncludeHistory: final.IncludeHistory,
		Params:         final.Params,
	}
	tables, err := fc.Forecast(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reconcile: backend %s: %w", best, err)
	}
	if len(tables) != series.NumCols() {
		return nil, fmt.Errorf("backend returned %d tables for %d node columns: %w",
			len(tables), series.NumCols(), ErrForecastShape)
	}

	return &Result{Method: best, Tables: tables, CV: report}, nil
}

// scoreFold refits one candidate on one fold's train prefix, forecasts the
// test window, and returns the per-leaf MASE values.
func scoreFold(ctx context.Context, fc Forecaster, series *hierarchy.Series, topo *hierarchy.Topology, S *hmatrix.Dense, cfg Config, fo fold, method Method, leafBase, leaves int) ([]float64, error) {
	train, err := series.Slice(0, fo.trainEnd)
	if err != nil {
		return nil, err
	}
	testLen := fo.testEnd - fo.trainEnd

	req := &Request{
		Series:         train,
		Horizon:        testLen,
		Summing:        S,
		Topology:       topo,
		Method:         method,
		Frequency:      cfg.Frequency,
		IncludeHistory: cfg.IncludeHistory,
		Params:         cfg.Params,
	}
	tables, err := fc.Forecast(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(tables) != series.NumCols() {
		return nil, fmt.Errorf("got %d tables for %d node columns: %w",
			len(tables), series.NumCols(), ErrForecastShape)
	}

	vals := make([]float64, 0, leaves)
	for leaf := 0; leaf < leaves; leaf++ {
		col := leafBase + leaf
		forecast, err := tables[col].Future(testLen)
		if err != nil {
			return nil, fmt.Errorf("leaf %d: %w", leaf, err)
		}
		actualCol, err := series.Column(col)
		if err != nil {
			return nil, err
		}
		actual := actualCol[fo.trainEnd:fo.testEnd]

		v, err := MASE(forecast, actual)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}

	return vals, nil
}
