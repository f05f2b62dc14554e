// Package hmatrix - the linear-algebra surface the reconciliation core needs.
//
// Deterministic kernels only: fixed i→j loop orders, no goroutines, no
// in-place surprises (every op allocates its result).

package hmatrix

import "fmt"

// MatVec computes y = m·x.
// Used to verify the round-trip invariant: summing matrix × leaf actuals
// reproduces every aggregate node's actual value.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrDimensionMismatch when len(x) != m.Cols().
//
// Complexity: O(r*c).
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("MatVec: %w", ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, fmt.Errorf("MatVec: len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch)
	}

	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ { // fixed row order
		base := i * m.c
		var acc float64
		for j := 0; j < m.c; j++ {
			acc += m.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// SumRows collapses the contiguous row block [lo, hi) of m into a single
// 1×cols row (element-wise sum). This is the block-aggregation step of
// summing-matrix construction: one parent row from a run of sibling rows.
//
// Errors:
//   - ErrNilMatrix when m is nil.
//   - ErrOutOfRange when the block is empty or outside [0, rows).
//
// Complexity: O((hi-lo)*c).
func SumRows(m *Dense, lo, hi int) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("SumRows: %w", ErrNilMatrix)
	}
	if lo < 0 || hi > m.r || lo >= hi {
		return nil, fmt.Errorf("SumRows: block [%d,%d) of %d rows: %w", lo, hi, m.r, ErrOutOfRange)
	}

	out := make([]float64, m.c)
	for i := lo; i < hi; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out[j] += m.data[base+j]
		}
	}

	return out, nil
}

// VStack stacks matrices vertically (top first). All operands must share the
// same column count. Inputs are copied; the result owns its buffer.
//
// Errors:
//   - ErrNilMatrix when the list is empty or contains a nil operand.
//   - ErrDimensionMismatch when column counts differ.
//
// Complexity: O(total rows * c).
func VStack(ms ...*Dense) (*Dense, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("VStack: no operands: %w", ErrNilMatrix)
	}

	rows, cols := 0, 0
	for k, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("VStack: operand %d: %w", k, ErrNilMatrix)
		}
		if k == 0 {
			cols = m.c
		} else if m.c != cols {
			return nil, fmt.Errorf("VStack: operand %d has %d cols, want %d: %w", k, m.c, cols, ErrDimensionMismatch)
		}
		rows += m.r
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	off := 0
	for _, m := range ms { // deterministic operand order
		copy(out.data[off:off+len(m.data)], m.data)
		off += len(m.data)
	}

	return out, nil
}

// FromRows builds a Dense from a slice of equal-length rows. Handy for tests
// and for assembling parent rows produced by SumRows.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrDimensionMismatch when row lengths differ.
//
// Complexity: O(r*c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	out, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(r), cols, ErrDimensionMismatch)
		}
		copy(out.data[i*cols:(i+1)*cols], r)
	}

	return out, nil
}
