// Package reconcile: sentinel error set.
//
// Taxonomy:
//   - Configuration errors (horizon, method, shape mismatches, malformed
//     capacity/changepoint tables, too little data for the CV split) are
//     detected before any backend call and are always fatal to the run.
//   - Backend errors are wrapped with fold/method context and propagated
//     unchanged otherwise; in the cross-validated path one failure aborts
//     the whole selection. Never retried.
//   - Shape errors after a backend call (wrong table count, short forecast)
//     are fatal because scoring indexes tables by position.

package reconcile

import "errors"

var (
	// ErrNilForecaster indicates Run was handed a nil backend.
	ErrNilForecaster = errors.New("reconcile: nil forecaster")

	// ErrNilSeries indicates Run was handed a nil series or topology.
	ErrNilSeries = errors.New("reconcile: nil series or topology")

	// ErrInvalidHorizon indicates horizon < 1.
	ErrInvalidHorizon = errors.New("reconcile: horizon must be a positive number of steps")

	// ErrUnknownMethod indicates a method outside the closed enumeration.
	ErrUnknownMethod = errors.New("reconcile: unknown reconciliation method")

	// ErrShapeMismatch indicates the topology's node count does not equal
	// the wide table's column count minus the time and total columns.
	ErrShapeMismatch = errors.New("reconcile: nodes do not match data shape")

	// ErrCapacityShape indicates a growth-capacity table whose column count
	// is not one per forecasted node.
	ErrCapacityShape = errors.New("reconcile: capacity table needs one column per forecasted node")

	// ErrChangepointShape indicates a per-node changepoint-count list whose
	// length is not one per forecasted node.
	ErrChangepointShape = errors.New("reconcile: changepoint counts need one entry per forecasted node")

	// ErrTooFewRows indicates the series is too short to carve 3
	// forward-chaining folds (at least 4 time instants required).
	ErrTooFewRows = errors.New("reconcile: series too short for 3-fold forward-chaining validation")

	// ErrForecastShape indicates the backend returned a table set that does
	// not line up with the node columns (wrong count, or a forecast shorter
	// than the requested window).
	ErrForecastShape = errors.New("reconcile: forecast tables do not match node columns")

	// ErrScoreShape indicates MASE inputs of mismatched or zero length.
	ErrScoreShape = errors.New("reconcile: forecast and actual windows must have equal positive length")
)
