// Package spmvbench benchmarks Sparse Matrix-Vector multiplication (SpMV):
// it ingests a sparse matrix in coordinate form, builds a compressed-row
// representation, multiplies it by a dense vector repeatedly, and reports
// timing-derived performance metrics.
//
// 🚀 What is spmvbench?
//
//	A focused, deterministic SpMV measurement toolkit that brings together:
//		• Coordinate ingestion: Matrix Market-style triplet files → sorted entries
//		• CSR construction: one linear pass, empty-row backfill, strict invariants
//		• Kernels: sequential and row-partitioned parallel SpMV, bit-for-bit equal
//		• Scheduling: static / dynamic / guided row partitioning on a worker pool
//		• Warm-up: adaptive stability-driven controller (no arbitrary fixed count)
//		• Metrics: nearest-rank p90 latency, GFLOP/s, GB/s, arithmetic intensity
//
// ✨ Why choose spmvbench?
//
//   - Deterministic numerics – fixed per-row summation order, identical results
//     across thread counts and partitioning policies
//   - Honest measurement – timing spans only the kernel row loop; warm-up and
//     metrics never overlap a timed iteration
//   - Structured output – one JSON document per run, emitted even on failure
//
// Under the hood, everything is organized as small leaf-first packages:
//
//	mtx/     — coordinate (row, col, value) triplet reader
//	csr/     — compressed sparse row builder & matrix value
//	sched/   — partitioning policies + fixed-size worker pool
//	spmv/    — SpMV kernels (sequential, parallel) + exact FLOP/byte counting
//	warmup/  — adaptive warm-up controller
//	metrics/ — percentile latency, throughput, bandwidth, intensity
//	bench/   — run orchestration and the structured result record
//	cmd/     — spmvbench CLI
//
// Quick ASCII example (3×3 matrix, 4 nonzeros):
//
//	⎡4 . 9⎤         rowStart = [0, 2, 3, 4]
//	⎢. 7 .⎥   ⇒     colIndex = [0, 2, 1, 0]
//	⎣5 . .⎦         values   = [4, 9, 7, 5]
//
//	with x = [1, 1, 1]: y = A·x = [13, 7, 5]
//
//	go get github.com/katalvlaran/spmvbench
package spmvbench
