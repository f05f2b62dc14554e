// Package hmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// hmatrix package. All operations return these sentinels and tests check them
// via errors.Is. No operation panics on user-triggered error conditions.

package hmatrix

import "errors"

// Every message is prefixed with "hmatrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at call
// sites when coordinates or method context are essential; callers still match
// via errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("hmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("hmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. MatVec where len(x) != m.Cols, or VStack with unequal
	// column counts.
	ErrDimensionMismatch = errors.New("hmatrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (Set, ingestion).
	ErrNaNInf = errors.New("hmatrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("hmatrix: nil matrix")

	// ErrNotSPD indicates that a matrix handed to the Cholesky-based solver
	// is not symmetric positive definite (zero or negative pivot).
	ErrNotSPD = errors.New("hmatrix: matrix is not positive definite")
)
