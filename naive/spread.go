// Package naive - the reconciliation adjustments.
//
// Every function here maps a base forecast matrix base[h][col] (one row
// per future step, one column per node, total first, leaves last) to an
// adjusted matrix of the same shape in which parent = sum of children
// holds exactly.

package naive

import (
	"fmt"

	"github.com/katalvlaran/hts/hierarchy"
	"github.com/katalvlaran/hts/hmatrix"
)

// bottomUp keeps the leaf base forecasts and regenerates every aggregate
// through the summing matrix.
func bottomUp(base [][]float64, S *hmatrix.Dense) ([][]float64, error) {
	leaves := S.Cols()
	out := make([][]float64, len(base))
	for h, row := range base {
		b := row[len(row)-leaves:]
		y, err := hmatrix.MatVec(S, b)
		if err != nil {
			return nil, fmt.Errorf("bottom-up step %d: %w", h, err)
		}
		out[h] = y
	}

	return out, nil
}

// topDownByShares forecasts only the total and splits it onto the leaves
// by a fixed share vector, then aggregates back up.
func topDownByShares(base [][]float64, shares []float64, S *hmatrix.Dense) ([][]float64, error) {
	out := make([][]float64, len(base))
	for h, row := range base {
		b := make([]float64, len(shares))
		for i, s := range shares {
			b[i] = s * row[0]
		}
		y, err := hmatrix.MatVec(S, b)
		if err != nil {
			return nil, fmt.Errorf("top-down step %d: %w", h, err)
		}
		out[h] = y
	}

	return out, nil
}

// histAvgShares computes leaf shares as mean(leaf) / mean(total) over the
// history. Degenerate histories (zero total mass) fall back to an equal
// split so the adjustment stays defined.
func histAvgShares(history [][]float64, leaves int) []float64 {
	leafBase := len(history) - leaves
	totalMean := mean(history[0])

	shares := make([]float64, leaves)
	if totalMean == 0 {
		for i := range shares {
			shares[i] = 1 / float64(leaves)
		}

		return shares
	}
	for i := 0; i < leaves; i++ {
		shares[i] = mean(history[leafBase+i]) / totalMean
	}

	return shares
}

// avgHistShares computes leaf shares as the mean over time of the
// per-instant ratio leaf(t) / total(t), skipping instants with a zero
// total. All-zero histories fall back to an equal split.
func avgHistShares(history [][]float64, leaves int) []float64 {
	leafBase := len(history) - leaves
	total := history[0]

	shares := make([]float64, leaves)
	valid := 0
	for t := range total {
		if total[t] == 0 {
			continue
		}
		valid++
		for i := 0; i < leaves; i++ {
			shares[i] += history[leafBase+i][t] / total[t]
		}
	}
	if valid == 0 {
		for i := range shares {
			shares[i] = 1 / float64(leaves)
		}

		return shares
	}
	for i := range shares {
		shares[i] /= float64(valid)
	}

	return shares
}

// forecastProportions forecasts every node, keeps the total, and walks the
// tree top-down rescaling each sibling group so it sums to its parent.
// Sibling groups whose base forecasts sum to zero split their parent
// equally.
func forecastProportions(base [][]float64, topo *hierarchy.Topology) ([][]float64, error) {
	starts, err := levelStarts(topo)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(base))
	for h, row := range base {
		y := make([]float64, len(row))
		y[0] = row[0]
		for li := 0; li < topo.Depth(); li++ {
			childCol := starts[li+1]
			for p, childCount := range topo.Levels[li] {
				parentCol := starts[li] + p
				lo, hi := childCol, childCol+childCount
				childCol = hi

				var sibSum float64
				for c := lo; c < hi; c++ {
					sibSum += row[c]
				}
				for c := lo; c < hi; c++ {
					if sibSum == 0 {
						y[c] = y[parentCol] / float64(childCount)
					} else {
						y[c] = y[parentCol] * row[c] / sibSum
					}
				}
			}
		}
		out[h] = y
	}

	return out, nil
}

// optimalCombination projects the full base forecast vector onto the
// column space of the summing matrix: b = (SᵀS)⁻¹·Sᵀ·ŷ, adjusted = S·b.
// This is the unweighted least-squares reconciliation.
func optimalCombination(base [][]float64, S *hmatrix.Dense) ([][]float64, error) {
	St, err := hmatrix.Transpose(S)
	if err != nil {
		return nil, err
	}
	gram, err := hmatrix.MatMul(St, S)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(base))
	for h, row := range base {
		rhs, err := hmatrix.MatVec(St, row)
		if err != nil {
			return nil, fmt.Errorf("optimal combination step %d: %w", h, err)
		}
		b, err := hmatrix.SolveSPD(gram, rhs)
		if err != nil {
			return nil, fmt.Errorf("optimal combination step %d: %w", h, err)
		}
		y, err := hmatrix.MatVec(S, b)
		if err != nil {
			return nil, fmt.Errorf("optimal combination step %d: %w", h, err)
		}
		out[h] = y
	}

	return out, nil
}

// levelStarts returns the first column index of every level: starts[0] is
// the total column, starts[l] the first level-l node, and a trailing entry
// one past the leaves.
func levelStarts(topo *hierarchy.Topology) ([]int, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}

	starts := make([]int, topo.Depth()+2)
	starts[0] = 0
	starts[1] = 1
	for li := 0; li < topo.Depth(); li++ {
		width := 0
		for _, n := range topo.Levels[li] {
			width += n
		}
		starts[li+2] = starts[li+1] + width
	}

	return starts, nil
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range xs {
		sum += v
	}

	return sum / float64(len(xs))
}
