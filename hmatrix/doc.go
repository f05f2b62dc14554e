// Package hmatrix provides the dense numeric storage used throughout hts.
//
// The hmatrix package provides:
//
//   - Dense, a row-major float64 matrix with O(1) safe accessors (At/Set
//     return errors instead of panicking).
//   - Constructors for the shapes the reconciliation pipeline needs
//     (NewDense, NewIdentity, NewOnesRow).
//   - The small linear-algebra surface required by summing-matrix work:
//     MatVec for leaf→aggregate round trips, SumRows for contiguous
//     block aggregation, VStack for parent-above-children assembly.
//
// Matrices here are small and dense by nature (node count × leaf count of a
// 1–4 level hierarchy), so O(r·c) memory is always acceptable.
//
// All operations are deterministic: fixed row-major loop orders, no map
// iteration, no randomness.
package hmatrix
