package hmatrix_test

import (
	"testing"

	"github.com/katalvlaran/hts/hmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatVec_Basic verifies y = m·x on a small fixed matrix.
func TestMatVec_Basic(t *testing.T) {
	m, err := hmatrix.FromRows([][]float64{
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 1},
	})
	require.NoError(t, err)

	y, err := hmatrix.MatVec(m, []float64{2, 3, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 2, 8}, y)
}

// TestMatVec_DimensionMismatch verifies shape validation before computation.
func TestMatVec_DimensionMismatch(t *testing.T) {
	m, err := hmatrix.NewDense(2, 3)
	require.NoError(t, err)

	_, err = hmatrix.MatVec(m, []float64{1, 2})
	assert.ErrorIs(t, err, hmatrix.ErrDimensionMismatch)

	_, err = hmatrix.MatVec(nil, []float64{1})
	assert.ErrorIs(t, err, hmatrix.ErrNilMatrix)
}

// TestSumRows_Block verifies contiguous block aggregation.
func TestSumRows_Block(t *testing.T) {
	m, err := hmatrix.FromRows([][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	sum, err := hmatrix.SumRows(m, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 1}, sum, "rows 1..2 summed element-wise")
}

// TestSumRows_EmptyOrInvalidBlock verifies block bounds validation.
func TestSumRows_EmptyOrInvalidBlock(t *testing.T) {
	m, err := hmatrix.NewDense(3, 2)
	require.NoError(t, err)

	_, err = hmatrix.SumRows(m, 2, 2)
	assert.ErrorIs(t, err, hmatrix.ErrOutOfRange, "empty block must error")
	_, err = hmatrix.SumRows(m, 1, 4)
	assert.ErrorIs(t, err, hmatrix.ErrOutOfRange, "block past end must error")
}

// TestVStack_Order verifies top-first stacking and shape.
func TestVStack_Order(t *testing.T) {
	top, err := hmatrix.FromRows([][]float64{{1, 1}})
	require.NoError(t, err)
	bottom, err := hmatrix.FromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)

	s, err := hmatrix.VStack(top, bottom)
	require.NoError(t, err)
	require.Equal(t, 3, s.Rows())
	require.Equal(t, 2, s.Cols())

	r0, _ := s.Row(0)
	r2, _ := s.Row(2)
	assert.Equal(t, []float64{1, 1}, r0, "top operand must come first")
	assert.Equal(t, []float64{0, 1}, r2, "bottom operand must come last")
}

// TestVStack_ColumnMismatch verifies operands must agree on width.
func TestVStack_ColumnMismatch(t *testing.T) {
	a, err := hmatrix.NewDense(1, 2)
	require.NoError(t, err)
	b, err := hmatrix.NewDense(1, 3)
	require.NoError(t, err)

	_, err = hmatrix.VStack(a, b)
	assert.ErrorIs(t, err, hmatrix.ErrDimensionMismatch)

	_, err = hmatrix.VStack()
	assert.ErrorIs(t, err, hmatrix.ErrNilMatrix, "empty operand list must error")
}

// TestFromRows_RaggedInput verifies ragged rows are rejected.
func TestFromRows_RaggedInput(t *testing.T) {
	_, err := hmatrix.FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, hmatrix.ErrDimensionMismatch)

	_, err = hmatrix.FromRows(nil)
	assert.ErrorIs(t, err, hmatrix.ErrInvalidDimensions)
}
