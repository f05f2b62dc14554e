// Package hmatrix - least-squares kernels.
//
// The projection behind optimal-combination reconciliation,
// S·(SᵀS)⁻¹·Sᵀ·ŷ, reduces to a transpose, two products, and one
// symmetric positive-definite solve. A summing matrix always yields an
// SPD Gram matrix (its leaf block is the identity, so S has full column
// rank), which keeps plain Cholesky sufficient — no pivoting, no
// general LU.

package hmatrix

import (
	"fmt"
	"math"
)

// Transpose returns mᵀ as a new matrix. Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Transpose: %w", ErrNilMatrix)
	}

	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ { // fixed row order
		base := i * m.c
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[base+j]
		}
	}

	return out, nil
}

// MatMul computes a·b into a new matrix.
//
// Errors:
//   - ErrNilMatrix when either operand is nil.
//   - ErrDimensionMismatch when a.Cols() != b.Rows().
//
// Complexity: O(a.r * a.c * b.c), i-k-j loop order for row-major locality.
func MatMul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("MatMul: %w", ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("MatMul: %dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}

	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.r; i++ {
		outBase := i * b.c
		for k := 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue // summing matrices are mostly zeros
			}
			bBase := k * b.c
			for j := 0; j < b.c; j++ {
				out.data[outBase+j] += aik * b.data[bBase+j]
			}
		}
	}

	return out, nil
}

// SolveSPD solves a·x = rhs for a symmetric positive-definite a via
// Cholesky factorization (a = L·Lᵀ, then forward/back substitution).
// a is not modified.
//
// Errors:
//   - ErrNilMatrix when a is nil.
//   - ErrDimensionMismatch when a is not square or len(rhs) != a.Rows().
//   - ErrNotSPD when factorization hits a non-positive pivot.
//
// Complexity: O(n^3) factorization + O(n^2) substitution.
func SolveSPD(a *Dense, rhs []float64) ([]float64, error) {
	if a == nil {
		return nil, fmt.Errorf("SolveSPD: %w", ErrNilMatrix)
	}
	n := a.r
	if a.c != n || len(rhs) != n {
		return nil, fmt.Errorf("SolveSPD: %dx%d with rhs of %d: %w", a.r, a.c, len(rhs), ErrDimensionMismatch)
	}

	// Lower-triangular factor, row-major like Dense.
	L := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := a.data[i*n+j]
			for k := 0; k < j; k++ {
				sum -= L[i*n+k] * L[j*n+k]
			}
			if i == j {
				if sum <= 0 {
					return nil, fmt.Errorf("SolveSPD: pivot %d: %w", i, ErrNotSPD)
				}
				L[i*n+i] = math.Sqrt(sum)
			} else {
				L[i*n+j] = sum / L[j*n+j]
			}
		}
	}

	// Forward: L·y = rhs.
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := rhs[i]
		for k := 0; k < i; k++ {
			sum -= L[i*n+k] * y[k]
		}
		y[i] = sum / L[i*n+i]
	}

	// Back: Lᵀ·x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= L[k*n+i] * x[k]
		}
		x[i] = sum / L[i*n+i]
	}

	return x, nil
}
