// Package hierarchy turns flat, tagged observations into the inputs the
// reconciliation core works on.
//
// The hierarchy package provides:
//
//   - Build: long-format rows (timestamp, 1–4 categorical tags, value) →
//     a wide Series table with one column per node, ordered
//     parent-before-children with siblings contiguous, plus a Topology
//     descriptor (per-level child-count lists) capturing the tree shape.
//   - Topology, the compact shape descriptor consumed by summing-matrix
//     construction and orchestrator validation.
//   - Series, the immutable wide table shared (read-only) by every
//     forecasting call of a run.
//   - ResampleWeekly, a calendar helper rolling arbitrary-granularity rows
//     up to week-ending buckets.
//
// Column order is the load-bearing invariant: the summing matrix is built
// purely from row/column position, so a node always precedes its
// descendants and siblings occupy a contiguous block. Build enforces this
// with a single level-by-level traversal; re-running Build on the same
// input yields the same order.
//
// Missing (time, node) combinations are structural gaps, not errors. The
// policy is configurable: impute a constant placeholder (default 1) to keep
// the series active, or drop sparse columns (missing in more than half the
// time points) and then any rows that still have gaps — see WithDropSparse.
package hierarchy
