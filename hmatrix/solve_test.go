package hmatrix_test

import (
	"testing"

	"github.com/katalvlaran/hts/hmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTranspose_RoundTrip verifies shape swap, element mapping, and that
// transposing twice restores the original.
func TestTranspose_RoundTrip(t *testing.T) {
	m, err := hmatrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	mt, err := hmatrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, 3, mt.Rows())
	assert.Equal(t, 2, mt.Cols())

	v, err := mt.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	back, err := hmatrix.Transpose(mt)
	require.NoError(t, err)
	row0, err := back.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, row0)

	_, err = hmatrix.Transpose(nil)
	assert.ErrorIs(t, err, hmatrix.ErrNilMatrix)
}

// TestMatMul_Reference verifies a hand-computed 2x3 · 3x2 product.
func TestMatMul_Reference(t *testing.T) {
	a, err := hmatrix.FromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)
	b, err := hmatrix.FromRows([][]float64{
		{7, 8},
		{9, 10},
		{11, 12},
	})
	require.NoError(t, err)

	p, err := hmatrix.MatMul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())

	row0, err := p.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float64{58, 64}, row0)
	row1, err := p.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{139, 154}, row1)
}

// TestMatMul_Errors verifies nil and mismatched-shape rejection.
func TestMatMul_Errors(t *testing.T) {
	a, err := hmatrix.NewDense(2, 3)
	require.NoError(t, err)
	b, err := hmatrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = hmatrix.MatMul(a, b)
	assert.ErrorIs(t, err, hmatrix.ErrDimensionMismatch)

	_, err = hmatrix.MatMul(nil, b)
	assert.ErrorIs(t, err, hmatrix.ErrNilMatrix)
}

// TestSolveSPD_Reference solves a known SPD system and checks the residual.
func TestSolveSPD_Reference(t *testing.T) {
	a, err := hmatrix.FromRows([][]float64{
		{4, 2},
		{2, 3},
	})
	require.NoError(t, err)

	// a · [1, 2] = [8, 8]
	x, err := hmatrix.SolveSPD(a, []float64{8, 8})
	require.NoError(t, err)
	require.Len(t, x, 2)
	assert.InDelta(t, 1.0, x[0], 1e-12)
	assert.InDelta(t, 2.0, x[1], 1e-12)
}

// TestSolveSPD_GramOfSummingMatrix verifies the exact path used by
// optimal-combination reconciliation: solving against SᵀS of a small
// summing matrix reproduces a known leaf vector.
func TestSolveSPD_GramOfSummingMatrix(t *testing.T) {
	S, err := hmatrix.FromRows([][]float64{
		{1, 1}, // total
		{1, 0},
		{0, 1},
	})
	require.NoError(t, err)

	St, err := hmatrix.Transpose(S)
	require.NoError(t, err)
	gram, err := hmatrix.MatMul(St, S)
	require.NoError(t, err)

	// Pick leaves b = [3, 5]; then SᵀS·b is the rhs the solver must invert.
	rhs, err := hmatrix.MatVec(gram, []float64{3, 5})
	require.NoError(t, err)
	b, err := hmatrix.SolveSPD(gram, rhs)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, b[0], 1e-12)
	assert.InDelta(t, 5.0, b[1], 1e-12)
}

// TestSolveSPD_Errors verifies shape and definiteness guards.
func TestSolveSPD_Errors(t *testing.T) {
	rect, err := hmatrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = hmatrix.SolveSPD(rect, []float64{1, 2})
	assert.ErrorIs(t, err, hmatrix.ErrDimensionMismatch)

	sq, err := hmatrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = hmatrix.SolveSPD(sq, []float64{1})
	assert.ErrorIs(t, err, hmatrix.ErrDimensionMismatch)

	// All-zero matrix has a zero pivot.
	_, err = hmatrix.SolveSPD(sq, []float64{1, 2})
	assert.ErrorIs(t, err, hmatrix.ErrNotSPD)

	_, err = hmatrix.SolveSPD(nil, nil)
	assert.ErrorIs(t, err, hmatrix.ErrNilMatrix)
}
