// Package hierarchy: sentinel error set. All configuration problems are
// detected synchronously, before any aggregation work, and are never retried.

package hierarchy

import "errors"

var (
	// ErrNoRows indicates an empty input table.
	ErrNoRows = errors.New("hierarchy: no input rows")

	// ErrTagCount indicates the tag-column count is outside 1..4.
	ErrTagCount = errors.New("hierarchy: between 1 and 4 tag columns required")

	// ErrRaggedRows indicates rows disagree on the number of tag columns.
	ErrRaggedRows = errors.New("hierarchy: rows have differing tag counts")

	// ErrLevelAssignment indicates the tag→level assignment is not a
	// permutation of 1..k (duplicate, missing, or out-of-range level).
	ErrLevelAssignment = errors.New("hierarchy: tag levels must be distinct values in 1..k")

	// ErrTagValue indicates a tag value that cannot form a path key
	// (currently: it contains the underscore separator).
	ErrTagValue = errors.New("hierarchy: tag value contains the path separator")

	// ErrEmptyTopology indicates a topology with no levels (or an empty level).
	ErrEmptyTopology = errors.New("hierarchy: topology has no levels")

	// ErrTopologyShape indicates the per-level child-count lists do not chain:
	// level i must carry exactly one entry per node of level i-1.
	ErrTopologyShape = errors.New("hierarchy: child-count lists do not chain between levels")

	// ErrSeriesShape indicates inconsistent wide-table construction input
	// (column/time length mismatch, missing total column).
	ErrSeriesShape = errors.New("hierarchy: series columns and time axis disagree")

	// ErrAllDropped indicates the sparse-column policy removed every leaf,
	// leaving nothing to forecast.
	ErrAllDropped = errors.New("hierarchy: sparse-column policy dropped all leaves")
)
