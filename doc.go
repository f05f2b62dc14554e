// Package hts reconciles independently produced forecasts over a
// hierarchical (tree-structured) set of time series so that every parent
// series equals the sum of its children.
//
// 🚀 What is hts?
//
//	A deterministic, library-first toolkit that brings together:
//		• Hierarchy building: long-format tagged rows → wide series table + topology
//		• Summing matrices: the linear operator mapping leaves to every aggregate
//		• Reconciliation methods: bottom-up, three top-down variants, optimal combination
//		• Method selection: 3-fold forward-chaining cross-validation scored by MASE
//		• Calendar roll-up: arbitrary granularity → week-ending buckets
//
// ✨ Why choose hts?
//
//   - Deterministic – fixed loop orders, stable column ordering, no hidden state
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Backend-agnostic – per-series forecasting stays behind a narrow interface
//
// Under the hood, everything is organized under five subpackages:
//
//	hierarchy/ — wide-table assembly, topology inference, weekly resampling
//	hmatrix/   — dense row-major matrices with safe accessors
//	reconcile/ — orchestration, validation, cross-validated method selection
//	summing/   — summing-matrix construction from a topology descriptor
//	naive/     — a seasonal-persistence baseline backend for end-to-end runs
//
// Quick ASCII example:
//
//	        total
//	       ╱     ╲
//	      A       B
//	     ╱ ╲       ╲
//	    A_x A_y    B_z
//
//	six series, three of them leaves; the summing matrix is 6×3.
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples, and into cmd/hts for an end-to-end command-line run.
//
//	go get github.com/katalvlaran/hts
package hts
