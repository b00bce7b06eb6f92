// SPDX-License-Identifier: MIT

// Package metrics aggregates per-iteration SpMV timings into the derived
// performance figures of one benchmark run.
//
// Derivation (all from the 90th-percentile duration):
//
//   - duration90: nearest-rank selection — sort samples ascending, take the
//     value at index ⌈0.9·n⌉−1 (clamped to n−1), in milliseconds.
//   - GFLOP/s  = flops / seconds / 1e9
//   - GB/s     = bytes / (seconds · 1e9)
//   - intensity = flops / bytes         (roofline x-coordinate)
//
// FLOPs and bytes come from the instrumented counting pass when available;
// otherwise they are estimated from the matrix shape: 2·nnz FLOPs and
// 8·nnz + 4·nnz + 4·(rows+1) + 8·cols + 8·rows bytes (each array touched
// once per call, 8-byte floats, 4-byte indices). Each figure falls back
// independently: a zero measured value means "not measured".
//
// Compute is a pure function of its inputs — it never mutates the sample
// slice and recomputation yields identical values.
//
// Error handling (sentinel):
//
//   - ErrNoSamples if the sample sequence is empty.
package metrics
