// Package hierarchy: functional configuration for Build.
//
// Design goals (shared across the module):
//   - Deterministic behavior: no global state, defaults are named constants.
//   - No dead switches: each flag changes behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.

package hierarchy

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultImputeValue is written into structural gaps (a node with no
	// observations at a time instant) when sparse columns are kept. The
	// small positive placeholder keeps the series active for the backend.
	DefaultImputeValue = 1.0

	// DefaultDropSparse keeps sparse columns and imputes instead of dropping.
	DefaultDropSparse = false

	// sparseDropFraction: a column missing in strictly more than this share
	// of time points is dropped under the drop-sparse policy.
	sparseDropFraction = 0.5
)

// Option mutates internal build options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	dropSparse  bool
	imputeValue float64
}

// WithDropSparse enables the drop policy for structural gaps: a column
// missing in more than half of the time points is dropped entirely
// (descendants of a dropped node go with it), then any time rows that still
// contain a gap are dropped. Without this option gaps are imputed with the
// configured placeholder instead.
func WithDropSparse() Option {
	return func(o *options) { o.dropSparse = true }
}

// WithImputeValue overrides the structural-gap placeholder (default 1).
// Only meaningful while the drop-sparse policy is off.
func WithImputeValue(v float64) Option {
	return func(o *options) { o.imputeValue = v }
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		dropSparse:  DefaultDropSparse,
		imputeValue: DefaultImputeValue,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
