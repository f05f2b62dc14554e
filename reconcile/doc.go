// Package reconcile orchestrates hierarchical forecast reconciliation.
//
// The reconcile package provides:
//
//   - A closed Method enumeration over the five reconciliation strategies
//     (bottom-up, three top-down variants, optimal combination) plus the
//     cross-validated selection mode.
//   - The Forecaster interface: the narrow contract against the external
//     per-series forecasting backend. The core never fits models itself.
//   - Run, the validate→dispatch state machine: configuration is checked
//     synchronously before any backend call; a single method is dispatched
//     as one backend call; cross-validated selection runs a 3-fold
//     forward-chaining bake-off over the five candidate methods, scores
//     leaf forecasts by MASE, refits the winner on the full data, and
//     reports which method won.
//
// Failure semantics are deliberately strict: configuration errors are
// fatal and detected up front; a backend failure inside the bake-off aborts
// the entire selection (a partial comparison would bias the choice); a
// backend returning the wrong number of node tables is fatal because
// scoring indexes tables by position.
//
// The wide table, topology and summing matrix are immutable for the
// duration of a run, so the fold×method fits — which share them read-only
// and own disjoint output slots — run concurrently, bounded by GOMAXPROCS.
package reconcile
