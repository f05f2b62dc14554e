// Package hierarchy - long-format → wide-table assembly.
//
// Build derives the exact tree topology and a numerically consistent wide
// table from flat tagged rows. The tree is held as an arena of node records
// indexed by integer id (parents/children as indices), assigned in a single
// top-down traversal; the arena order IS the column order, which makes the
// parent-before-children invariant hold by construction.
//
// Node identity is positional: the nodes of level d form the full cross
// product of the distinct tag values of levels 1..d (first-appearance
// order), so a combination never observed in the input still gets a column.
// Such cells are structural gaps handled by the configured missing policy.

package hierarchy

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// maxTagColumns bounds the supported hierarchy depth below the root.
const maxTagColumns = 4

// keySep joins ancestor tag values into a node's path-qualified name.
const keySep = "_"

// node is one arena record. Children are implicit: the nodes of the next
// level whose parent index equals this node's id.
type node struct {
	level  int    // 1-based level below root
	parent int    // arena index of the parent, -1 for level-1 nodes
	key    string // underscore-joined ancestor tag values
}

// arena holds the full cross-product tree in column order:
// level 1 first, then level 2, ..., leaves last.
type arena struct {
	nodes  []node
	offset []int // offset[d] = arena index of the first level-d node (1-based d)
	uniq   [][]string
}

// Build turns long-format rows into a wide Series and a Topology.
//
// levels assigns each tag column of Row.Tags to a hierarchy level: levels[i]
// is the level (1 = directly below the total) of tag column i. The
// assignment must be a permutation of 1..k for k tag columns, k in 1..4.
//
// The wide table carries one row per distinct time instant (chronological)
// and one column per node: total first, then every level-1 node, then
// level-2, down to the leaves, siblings contiguous. Cells a node never
// observed are imputed (default) or dropped — see WithDropSparse.
//
// Errors: ErrNoRows, ErrTagCount, ErrRaggedRows, ErrLevelAssignment,
// ErrAllDropped. Deterministic: same input, same column order, same topology.
func Build(rows []Row, levels []int, opts ...Option) (*Series, *Topology, error) {
	opt := gatherOptions(opts...)

	tagCol, err := validateInput(rows, levels)
	if err != nil {
		return nil, nil, err
	}
	k := len(tagCol)

	// Distinct tag values per level, first-appearance order (stable across
	// re-runs: row order is the only source of ordering).
	uniq := make([][]string, k)
	uniqIdx := make([]map[string]int, k)
	for d := 0; d < k; d++ {
		uniqIdx[d] = make(map[string]int)
		for _, r := range rows {
			v := r.Tags[tagCol[d]]
			if _, ok := uniqIdx[d][v]; !ok {
				uniqIdx[d][v] = len(uniq[d])
				uniq[d] = append(uniq[d], v)
			}
		}
	}
	for d := 0; d < k; d++ {
		for _, v := range uniq[d] {
			if strings.Contains(v, keySep) {
				return nil, nil, fmt.Errorf("tag value %q contains %q: %w", v, keySep, ErrTagValue)
			}
		}
	}

	times, timeIdx := collectTimes(rows)
	ar := buildArena(uniq)

	// Aggregate: sum values per (node, time); total per time. seen tracks
	// structural gaps. Fixed row iteration order; node ids are positional.
	n := len(ar.nodes)
	tn := len(times)
	data := make([][]float64, n)
	seen := make([][]bool, n)
	for i := range data {
		data[i] = make([]float64, tn)
		seen[i] = make([]bool, tn)
	}
	total := make([]float64, tn)

	for _, r := range rows {
		t := timeIdx[r.Time.UnixNano()]
		total[t] += r.Value
		// Walk the path top-down, accumulating the mixed-radix node index.
		idx := 0
		for d := 1; d <= k; d++ {
			vi := uniqIdx[d-1][r.Tags[tagCol[d-1]]]
			idx = idx*len(uniq[d-1]) + vi
			id := ar.offset[d] + idx
			data[id][t] += r.Value
			seen[id][t] = true
		}
	}

	keep, keepRow, err := applyMissingPolicy(ar, seen, tn, opt)
	if err != nil {
		return nil, nil, err
	}

	// Assemble surviving columns in arena order, total first.
	var (
		names = []string{TotalName}
		cols  = [][]float64{filterRows(total, keepRow)}
	)
	for id, nd := range ar.nodes {
		if !keep[id] {
			continue
		}
		col := make([]float64, 0, tn)
		for t := 0; t < tn; t++ {
			if !keepRow[t] {
				continue
			}
			v := data[id][t]
			if !seen[id][t] {
				v = opt.imputeValue
			}
			col = append(col, v)
		}
		names = append(names, nd.key)
		cols = append(cols, col)
	}

	outTimes := make([]time.Time, 0, tn)
	for t := 0; t < tn; t++ {
		if keepRow[t] {
			outTimes = append(outTimes, times[t])
		}
	}
	if len(outTimes) == 0 {
		return nil, nil, fmt.Errorf("row-drop policy removed every time instant: %w", ErrNoRows)
	}

	series, err := NewSeries(outTimes, names, cols)
	if err != nil {
		return nil, nil, err
	}
	topo := deriveTopology(ar, keep, k)
	if err = topo.Validate(); err != nil {
		return nil, nil, err
	}

	return series, topo, nil
}

// validateInput checks row shape and the tag→level assignment; it returns
// tagCol, where tagCol[d] is the tag column assigned to level d+1.
func validateInput(rows []Row, levels []int) ([]int, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	k := len(rows[0].Tags)
	if k < 1 || k > maxTagColumns {
		return nil, fmt.Errorf("%d tag columns: %w", k, ErrTagCount)
	}
	for i, r := range rows {
		if len(r.Tags) != k {
			return nil, fmt.Errorf("row %d has %d tags, row 0 has %d: %w", i, len(r.Tags), k, ErrRaggedRows)
		}
	}
	if len(levels) != k {
		return nil, fmt.Errorf("%d level assignments for %d tag columns: %w", len(levels), k, ErrLevelAssignment)
	}
	tagCol := make([]int, k)
	for i := range tagCol {
		tagCol[i] = -1
	}
	for col, lv := range levels {
		if lv < 1 || lv > k {
			return nil, fmt.Errorf("tag column %d assigned level %d: %w", col, lv, ErrLevelAssignment)
		}
		if tagCol[lv-1] != -1 {
			return nil, fmt.Errorf("level %d assigned twice: %w", lv, ErrLevelAssignment)
		}
		tagCol[lv-1] = col
	}

	return tagCol, nil
}

// collectTimes returns the sorted, de-duplicated time axis and a lookup from
// UnixNano to row index.
func collectTimes(rows []Row) ([]time.Time, map[int64]int) {
	byNano := make(map[int64]time.Time)
	for _, r := range rows {
		if _, ok := byNano[r.Time.UnixNano()]; !ok {
			byNano[r.Time.UnixNano()] = r.Time
		}
	}
	nanos := make([]int64, 0, len(byNano))
	for ns := range byNano {
		nanos = append(nanos, ns)
	}
	sort.Slice(nanos, func(i, j int) bool { return nanos[i] < nanos[j] })

	times := make([]time.Time, len(nanos))
	idx := make(map[int64]int, len(nanos))
	for i, ns := range nanos {
		times[i] = byNano[ns]
		idx[ns] = i
	}

	return times, idx
}

// buildArena lays out the full cross-product tree level by level. Within a
// level, nodes are ordered by the mixed-radix index over ancestor tag values
// (earlier levels most significant), which keeps siblings contiguous and
// groups them under their parent's position.
func buildArena(uniq [][]string) *arena {
	k := len(uniq)
	ar := &arena{offset: make([]int, k+1), uniq: uniq}

	count := 1
	for d := 1; d <= k; d++ {
		ar.offset[d] = len(ar.nodes)
		count *= len(uniq[d-1])
		width := len(uniq[d-1])
		for idx := 0; idx < count; idx++ {
			parent := -1
			key := uniq[d-1][idx%width]
			if d > 1 {
				parent = ar.offset[d-1] + idx/width
				key = ar.nodes[parent].key + keySep + key
			}
			ar.nodes = append(ar.nodes, node{level: d, parent: parent, key: key})
		}
	}

	return ar
}

// applyMissingPolicy decides which node columns and time rows survive.
//
// Impute policy (default): everything survives; gaps are filled later.
//
// Drop policy: a column missing in more than half the time points is
// dropped; descendants of a dropped node are dropped with it; an interior
// node that loses all its children is dropped as well (the descriptor must
// stay a uniform-depth tree); finally any time row still carrying a gap in a
// surviving column is dropped.
func applyMissingPolicy(ar *arena, seen [][]bool, tn int, opt options) (keep []bool, keepRow []bool, err error) {
	n := len(ar.nodes)
	keep = make([]bool, n)
	keepRow = make([]bool, tn)
	for i := range keep {
		keep[i] = true
	}
	for t := range keepRow {
		keepRow[t] = true
	}
	if !opt.dropSparse {
		return keep, keepRow, nil
	}

	// Sparse columns out first.
	for id := range ar.nodes {
		missing := 0
		for t := 0; t < tn; t++ {
			if !seen[id][t] {
				missing++
			}
		}
		if float64(missing) > sparseDropFraction*float64(tn) {
			keep[id] = false
		}
	}
	// Orphans out: arena order guarantees parents precede children.
	for id, nd := range ar.nodes {
		if nd.parent >= 0 && !keep[nd.parent] {
			keep[id] = false
		}
	}
	// Childless interiors out, deepest level first.
	k := len(ar.uniq)
	for d := k - 1; d >= 1; d-- {
		lo, hi := ar.offset[d], ar.offset[d+1]
		for id := lo; id < hi; id++ {
			if !keep[id] {
				continue
			}
			alive := false
			for c := ar.offset[d+1]; c < levelEnd(ar, d+1); c++ {
				if ar.nodes[c].parent == id && keep[c] {
					alive = true
					break
				}
			}
			if !alive {
				keep[id] = false
			}
		}
	}
	anyLeaf := false
	for id := ar.offset[k]; id < len(ar.nodes); id++ {
		if keep[id] {
			anyLeaf = true
			break
		}
	}
	if !anyLeaf {
		return nil, nil, ErrAllDropped
	}

	// Rows with any remaining gap out.
	for t := 0; t < tn; t++ {
		for id := range ar.nodes {
			if keep[id] && !seen[id][t] {
				keepRow[t] = false
				break
			}
		}
	}

	return keep, keepRow, nil
}

// levelEnd returns the arena index one past the last node of level d.
func levelEnd(ar *arena, d int) int {
	if d >= len(ar.offset)-1 {
		return len(ar.nodes)
	}

	return ar.offset[d+1]
}

// deriveTopology counts surviving children per surviving node, level by
// level, in arena (column) order.
func deriveTopology(ar *arena, keep []bool, k int) *Topology {
	topo := &Topology{Levels: make([][]int, 0, k)}

	lvl1 := 0
	for id := ar.offset[1]; id < levelEnd(ar, 1); id++ {
		if keep[id] {
			lvl1++
		}
	}
	topo.Levels = append(topo.Levels, []int{lvl1})

	for d := 2; d <= k; d++ {
		var counts []int
		for pid := ar.offset[d-1]; pid < levelEnd(ar, d-1); pid++ {
			if !keep[pid] {
				continue
			}
			c := 0
			for id := ar.offset[d]; id < levelEnd(ar, d); id++ {
				if keep[id] && ar.nodes[id].parent == pid {
					c++
				}
			}
			counts = append(counts, c)
		}
		topo.Levels = append(topo.Levels, counts)
	}

	return topo
}

// filterRows copies col keeping only rows where keepRow is true.
func filterRows(col []float64, keepRow []bool) []float64 {
	out := make([]float64, 0, len(col))
	for t, v := range col {
		if keepRow[t] {
			out = append(out, v)
		}
	}

	return out
}
