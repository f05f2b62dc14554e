package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestForwardChainingFolds_Boundaries verifies the split is monotonic,
// non-overlapping, and sized like a 3-fold growing-prefix scheme.
func TestForwardChainingFolds_Boundaries(t *testing.T) {
	folds, err := forwardChainingFolds(8)
	require.NoError(t, err)
	require.Len(t, folds, 3)

	// n=8 → test windows of 2 rows, first train prefix of 2 rows.
	assert.Equal(t, fold{trainEnd: 2, testEnd: 4}, folds[0])
	assert.Equal(t, fold{trainEnd: 4, testEnd: 6}, folds[1])
	assert.Equal(t, fold{trainEnd: 6, testEnd: 8}, folds[2])

	for i, fo := range folds {
		assert.Greater(t, fo.testEnd, fo.trainEnd, "fold %d test window must be non-empty", i)
		assert.GreaterOrEqual(t, fo.trainEnd, 1, "fold %d train prefix must be non-empty", i)
		if i > 0 {
			assert.Equal(t, folds[i-1].testEnd, fo.trainEnd,
				"fold %d must start where fold %d ended", i, i-1)
		}
	}
}

// TestForwardChainingFolds_UnevenLength verifies the remainder goes to the
// first train prefix.
func TestForwardChainingFolds_UnevenLength(t *testing.T) {
	folds, err := forwardChainingFolds(10)
	require.NoError(t, err)

	// n=10 → test size 2, first train 4.
	assert.Equal(t, fold{trainEnd: 4, testEnd: 6}, folds[0])
	assert.Equal(t, fold{trainEnd: 8, testEnd: 10}, folds[2])
}

// TestForwardChainingFolds_TooShort verifies the minimum-length guard.
func TestForwardChainingFolds_TooShort(t *testing.T) {
	_, err := forwardChainingFolds(3)
	assert.ErrorIs(t, err, ErrTooFewRows)

	folds, err := forwardChainingFolds(4)
	require.NoError(t, err, "4 rows is the minimum: 1 train + 3 single-row windows")
	assert.Equal(t, fold{trainEnd: 1, testEnd: 2}, folds[0])
}
