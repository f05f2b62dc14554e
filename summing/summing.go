package summing

import (
	"fmt"

	"github.com/katalvlaran/hts/hierarchy"
	"github.com/katalvlaran/hts/hmatrix"
)

// Build constructs the summing matrix for topo.
//
// The result has topo.NodeCount()+1 rows (root + every node) and
// topo.LeafCount() columns, ordered root, level-1 nodes, ..., leaves.
// Guarantees, verifiable by callers:
//   - the root row is all ones;
//   - the trailing LeafCount rows form the identity block;
//   - every node's row equals the element-wise sum of its children's rows.
//
// Errors: hierarchy.ErrEmptyTopology / hierarchy.ErrTopologyShape when the
// descriptor is structurally inconsistent. Whether the topology matches a
// particular wide table's column count is the orchestrator's check, not
// this one.
//
// Complexity: O(total nodes × leaf count).
func Build(topo *hierarchy.Topology) (*hmatrix.Dense, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}

	leaves := topo.LeafCount()
	block, err := hmatrix.NewIdentity(leaves)
	if err != nil {
		return nil, fmt.Errorf("summing: leaf identity: %w", err)
	}

	// parts accumulates level blocks top-first; leaves start at the bottom.
	parts := []*hmatrix.Dense{block}

	// Collapse sibling runs into parent rows, one level at a time, from the
	// level just above the leaves up to level 1. The chaining invariant
	// (validated above) guarantees the partition covers the block exactly.
	for li := topo.Depth() - 1; li >= 1; li-- {
		counts := topo.Levels[li]
		rows := make([][]float64, 0, len(counts))
		lo := 0
		for _, c := range counts {
			sum, err := hmatrix.SumRows(block, lo, lo+c)
			if err != nil {
				return nil, fmt.Errorf("summing: level %d block: %w", li+1, err)
			}
			rows = append(rows, sum)
			lo += c
		}
		if block, err = hmatrix.FromRows(rows); err != nil {
			return nil, fmt.Errorf("summing: level %d block: %w", li+1, err)
		}
		parts = append([]*hmatrix.Dense{block}, parts...)
	}

	root, err := hmatrix.NewOnesRow(leaves)
	if err != nil {
		return nil, fmt.Errorf("summing: root row: %w", err)
	}

	return hmatrix.VStack(append([]*hmatrix.Dense{root}, parts...)...)
}
