// Package summing constructs the summing matrix S of a hierarchy: the
// 0/1 linear operator mapping leaf-level values to every node's value,
// the root/total included.
//
// Row layout matches the wide table's column order exactly — root first,
// then level-1 nodes, level-2 nodes, down to an identity block over the
// leaves — because downstream reconciliation indexes S purely by position,
// never by name.
//
// Construction is bottom-up (Hyndman's formulation, "Forecasting:
// principles and practice" §9.4): start from the leaf identity block,
// collapse contiguous sibling blocks into parent rows one level at a time,
// stacking each new parent block above the accumulated matrix, and finish
// with the all-ones root row on top. Deterministic, O(total nodes × leaf
// count) time and space.
package summing
