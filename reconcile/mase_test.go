package reconcile_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hts/reconcile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMASE_ReferenceScenario pins the exact formula:
// (1+1+1+1) / ((4/3)*(2+2+2)) = 0.5.
func TestMASE_ReferenceScenario(t *testing.T) {
	v, err := reconcile.MASE([]float64{11, 11, 15, 15}, []float64{10, 12, 14, 16})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-12)
}

// TestMASE_PerfectForecast verifies an exact forecast scores zero.
func TestMASE_PerfectForecast(t *testing.T) {
	v, err := reconcile.MASE([]float64{3, 5, 8}, []float64{3, 5, 8})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

// TestMASE_DegenerateWindows verifies constant actuals (zero scale) score
// +Inf unless the forecast is exact, and single-point windows behave the
// same way.
func TestMASE_DegenerateWindows(t *testing.T) {
	v, err := reconcile.MASE([]float64{4, 4}, []float64{4, 4})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v, "exact forecast of a constant window scores 0")

	v, err = reconcile.MASE([]float64{5, 5}, []float64{4, 4})
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1), "inexact forecast of a constant window must be penalized")

	v, err = reconcile.MASE([]float64{7}, []float64{7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	v, err = reconcile.MASE([]float64{8}, []float64{7})
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))
}

// TestMASE_ShapeErrors verifies input validation.
func TestMASE_ShapeErrors(t *testing.T) {
	_, err := reconcile.MASE(nil, nil)
	assert.ErrorIs(t, err, reconcile.ErrScoreShape)

	_, err = reconcile.MASE([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, reconcile.ErrScoreShape)
}
