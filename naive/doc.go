// Package naive is a self-contained forecasting backend: seasonal
// persistence per node, then the requested reconciliation adjustment
// applied across the hierarchy.
//
// It exists so the pipeline runs end to end without an external model
// service — a measuring stick, not a forecaster. Every strategy the
// orchestrator can dispatch is implemented:
//
//   - bottom-up: aggregate the leaf forecasts through the summing matrix;
//   - top-down (three proportion schemes): forecast the total, split it
//     down the tree by forecasted, historical-average, or
//     average-historical proportions;
//   - optimal combination: least-squares projection of all base forecasts
//     onto the subspace of hierarchy-consistent vectors.
//
// The output of every method satisfies the additive invariant: each
// parent's forecast equals the sum of its children's.
package naive
