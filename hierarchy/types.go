package hierarchy

import (
	"fmt"
	"time"
)

// Row is one long-format observation: a timestamp, 1–4 categorical tags
// (outermost hierarchy dimension first is NOT required — the tag→level
// assignment is given to Build separately), and a numeric value.
//
// Tag values are used as underscore-joined path keys, so they must not
// contain underscores themselves.
type Row struct {
	Time  time.Time
	Tags  []string
	Value float64
}

// Topology is the tree-shape descriptor: Levels[0] holds a single entry, the
// number of level-1 nodes (children of the root); Levels[i] holds one entry
// per node at level i, giving that node's child count at level i+1. The last
// list describes the parents of the leaves.
//
// Examples:
//
//	[[2]]        — total → 2 leaves
//	[[2],[1,2]]  — 2 level-1 nodes; the first has 1 leaf child, the second 2
type Topology struct {
	Levels [][]int
}

// Validate checks structural consistency:
//   - at least one level, no empty levels, all counts >= 1;
//   - Levels[0] has exactly one entry;
//   - the lists chain: len(Levels[i]) == sum(Levels[i-1]).
//
// Returns ErrEmptyTopology or ErrTopologyShape.
func (t *Topology) Validate() error {
	if t == nil || len(t.Levels) == 0 {
		return ErrEmptyTopology
	}
	if len(t.Levels[0]) != 1 {
		return fmt.Errorf("level 1 must carry a single node count, got %d entries: %w",
			len(t.Levels[0]), ErrTopologyShape)
	}
	prevSum := 0
	for li, lev := range t.Levels {
		if len(lev) == 0 {
			return ErrEmptyTopology
		}
		if li > 0 && len(lev) != prevSum {
			return fmt.Errorf("level %d lists %d nodes, level %d promised %d children: %w",
				li+1, len(lev), li, prevSum, ErrTopologyShape)
		}
		prevSum = 0
		for _, n := range lev {
			if n < 1 {
				return fmt.Errorf("level %d: child count %d: %w", li+1, n, ErrTopologyShape)
			}
			prevSum += n
		}
	}

	return nil
}

// NodeCount returns the number of non-root nodes (every integer summed
// across all levels). This equals the wide table's column count minus the
// time and total columns.
func (t *Topology) NodeCount() int {
	total := 0
	for _, lev := range t.Levels {
		for _, n := range lev {
			total += n
		}
	}

	return total
}

// LeafCount returns the number of bottom-level nodes (sum of the last list).
func (t *Topology) LeafCount() int {
	if len(t.Levels) == 0 {
		return 0
	}
	total := 0
	for _, n := range t.Levels[len(t.Levels)-1] {
		total += n
	}

	return total
}

// Depth returns the number of levels below the root.
func (t *Topology) Depth() int { return len(t.Levels) }

// Clone returns an independent deep copy.
func (t *Topology) Clone() *Topology {
	cp := &Topology{Levels: make([][]int, len(t.Levels))}
	for i, lev := range t.Levels {
		cp.Levels[i] = append([]int(nil), lev...)
	}

	return cp
}

// Series is the wide table: a shared chronological time axis and one value
// column per node, total first, then level-1 nodes, then level-2, down to
// the leaves (parent-before-children, siblings contiguous).
//
// A Series is immutable after construction; accessors return copies so the
// table can be shared read-only across concurrent forecasting calls.
type Series struct {
	times []time.Time
	names []string    // value column names; names[0] == "total"
	cols  [][]float64 // column-major; cols[i] aligns with names[i]
}

// TotalName is the fixed name of the root column.
const TotalName = "total"

// NewSeries builds a Series from a time axis and column-major values.
// names and cols must align; every column must match the time axis length;
// names[0] must be TotalName. Returns ErrSeriesShape on any violation.
func NewSeries(times []time.Time, names []string, cols [][]float64) (*Series, error) {
	if len(times) == 0 || len(names) == 0 || len(names) != len(cols) {
		return nil, ErrSeriesShape
	}
	if names[0] != TotalName {
		return nil, fmt.Errorf("first column is %q, want %q: %w", names[0], TotalName, ErrSeriesShape)
	}
	for i, c := range cols {
		if len(c) != len(times) {
			return nil, fmt.Errorf("column %q has %d rows, time axis has %d: %w",
				names[i], len(c), len(times), ErrSeriesShape)
		}
	}

	s := &Series{
		times: append([]time.Time(nil), times...),
		names: append([]string(nil), names...),
		cols:  make([][]float64, len(cols)),
	}
	for i, c := range cols {
		s.cols[i] = append([]float64(nil), c...)
	}

	return s, nil
}

// Len returns the number of time instants (rows).
func (s *Series) Len() int { return len(s.times) }

// NumCols returns the number of value columns, the total column included.
func (s *Series) NumCols() int { return len(s.names) }

// Times returns a copy of the chronological time axis.
func (s *Series) Times() []time.Time { return append([]time.Time(nil), s.times...) }

// Names returns a copy of the value column names, total first.
func (s *Series) Names() []string { return append([]string(nil), s.names...) }

// Name returns the name of value column i, or "" when out of range.
func (s *Series) Name(i int) string {
	if i < 0 || i >= len(s.names) {
		return ""
	}

	return s.names[i]
}

// Column returns a copy of value column i.
func (s *Series) Column(i int) ([]float64, error) {
	if i < 0 || i >= len(s.cols) {
		return nil, fmt.Errorf("Series.Column(%d) of %d: %w", i, len(s.cols), ErrSeriesShape)
	}

	return append([]float64(nil), s.cols[i]...), nil
}

// At returns the value at time row t, column col.
func (s *Series) At(t, col int) (float64, error) {
	if t < 0 || t >= len(s.times) || col < 0 || col >= len(s.cols) {
		return 0, fmt.Errorf("Series.At(%d,%d): %w", t, col, ErrSeriesShape)
	}

	return s.cols[col][t], nil
}

// Slice returns an independent Series restricted to time rows [lo, hi).
// Used by forward-chaining cross-validation to form train prefixes.
func (s *Series) Slice(lo, hi int) (*Series, error) {
	if lo < 0 || hi > len(s.times) || lo >= hi {
		return nil, fmt.Errorf("Series.Slice(%d,%d) of %d rows: %w", lo, hi, len(s.times), ErrSeriesShape)
	}
	cols := make([][]float64, len(s.cols))
	for i, c := range s.cols {
		cols[i] = append([]float64(nil), c[lo:hi]...)
	}

	return NewSeries(s.times[lo:hi], s.names, cols)
}
