package summing_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/hts/hierarchy"
	"github.com/katalvlaran/hts/hmatrix"
	"github.com/katalvlaran/hts/summing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowsOf extracts the full matrix as [][]float64 for comparison.
func rowsOf(t *testing.T, m *hmatrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = row
	}

	return out
}

// TestBuild_TwoLeaves reproduces the minimal scenario: total → 2 leaves.
func TestBuild_TwoLeaves(t *testing.T) {
	S, err := summing.Build(&hierarchy.Topology{Levels: [][]int{{2}}})
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{1, 1},
		{1, 0},
		{0, 1},
	}, rowsOf(t, S))
}

// TestBuild_TwoLevelAsymmetric reproduces the 2-level scenario: 2 level-1
// nodes, the first with 1 leaf child, the second with 2.
func TestBuild_TwoLevelAsymmetric(t *testing.T) {
	S, err := summing.Build(&hierarchy.Topology{Levels: [][]int{{2}, {1, 2}}})
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 1},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}, rowsOf(t, S))
}

// TestBuild_ShapeInvariants verifies row/column counts, the all-ones root
// row and the trailing identity block on a deeper topology.
func TestBuild_ShapeInvariants(t *testing.T) {
	topo := &hierarchy.Topology{Levels: [][]int{{2}, {2, 2}, {2, 1, 2, 3}}}
	S, err := summing.Build(topo)
	require.NoError(t, err)

	require.Equal(t, topo.NodeCount()+1, S.Rows(), "one row per node plus the root")
	require.Equal(t, topo.LeafCount(), S.Cols())

	root, err := S.Row(0)
	require.NoError(t, err)
	for j, v := range root {
		assert.Equal(t, 1.0, v, "root row col %d must be 1", j)
	}

	leaves := topo.LeafCount()
	base := S.Rows() - leaves
	for i := 0; i < leaves; i++ {
		row, err := S.Row(base + i)
		require.NoError(t, err)
		for j, v := range row {
			want := 0.0
			if j == i {
				want = 1.0
			}
			assert.Equal(t, want, v, "leaf block (%d,%d)", i, j)
		}
	}
}

// TestBuild_ParentRowsAreChildSums verifies S[parent] = Σ S[child] over
// direct children, bottom-up, using the topology arithmetic for offsets.
func TestBuild_ParentRowsAreChildSums(t *testing.T) {
	topo := &hierarchy.Topology{Levels: [][]int{{3}, {1, 2, 2}}}
	S, err := summing.Build(topo)
	require.NoError(t, err)

	// Level-1 rows occupy indices 1..3; leaves 4..8.
	childBase := 1 + 3
	lo := childBase
	for p, c := range topo.Levels[1] {
		parent, err := S.Row(1 + p)
		require.NoError(t, err)
		sum := make([]float64, S.Cols())
		for i := lo; i < lo+c; i++ {
			child, err := S.Row(i)
			require.NoError(t, err)
			for j := range sum {
				sum[j] += child[j]
			}
		}
		assert.Equal(t, sum, parent, "parent %d must equal the sum of its %d children", p, c)
		lo += c
	}
}

// TestBuild_RoundTrip verifies S × leaf actuals reproduces every aggregate
// cell of a wide table assembled by hierarchy.Build.
func TestBuild_RoundTrip(t *testing.T) {
	var rows []hierarchy.Row
	for d := 1; d <= 3; d++ {
		for mi, m := range []string{"web", "app"} {
			for pi, p := range []string{"ios", "android"} {
				rows = append(rows, hierarchy.Row{
					Time:  time.Date(2017, 3, d, 0, 0, 0, 0, time.UTC),
					Tags:  []string{m, p},
					Value: float64(d*7 + mi*3 + pi),
				})
			}
		}
	}
	series, topo, err := hierarchy.Build(rows, []int{1, 2})
	require.NoError(t, err)

	S, err := summing.Build(topo)
	require.NoError(t, err)
	require.Equal(t, series.NumCols(), S.Rows(), "S rows = total + every node column")

	leaves := topo.LeafCount()
	for r := 0; r < series.Len(); r++ {
		x := make([]float64, leaves)
		for i := 0; i < leaves; i++ {
			v, err := series.At(r, series.NumCols()-leaves+i)
			require.NoError(t, err)
			x[i] = v
		}
		y, err := hmatrix.MatVec(S, x)
		require.NoError(t, err)
		for col := 0; col < series.NumCols(); col++ {
			want, err := series.At(r, col)
			require.NoError(t, err)
			assert.InDelta(t, want, y[col], 1e-9, "row %d node %d", r, col)
		}
	}
}

// TestBuild_InvalidTopology verifies structural validation happens before
// any allocation-heavy work.
func TestBuild_InvalidTopology(t *testing.T) {
	_, err := summing.Build(&hierarchy.Topology{})
	assert.ErrorIs(t, err, hierarchy.ErrEmptyTopology)

	_, err = summing.Build(&hierarchy.Topology{Levels: [][]int{{2}, {3}}})
	assert.ErrorIs(t, err, hierarchy.ErrTopologyShape)
}
