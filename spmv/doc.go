// SPDX-License-Identifier: MIT

// Package spmv computes y = A·x for a compressed-row sparse matrix A and a
// dense vector x, in sequential and row-partitioned parallel variants.
//
// Numeric contract (shared by both variants):
//
//   - y[i] = Σ values[j]·x[colIndex[j]] over j in [rowStart[i], rowStart[i+1]),
//     accumulated in a private scalar per row, in ascending j order.
//   - The fixed per-row summation order pins floating-point rounding, so the
//     output is bit-for-bit identical across thread counts and partitioning
//     policies — rows never share output state.
//
// Measurement contract:
//
//   - The returned duration spans only the row loop, never allocation or
//     scheduling setup, so one invocation yields one isolated sample.
//   - CountPass tallies the exact FLOPs and bytes one kernel invocation
//     touches, replacing size-based estimates that misprice empty rows.
//
// Error handling (sentinel):
//
//   - ErrDimensionMismatch if len(x) != A.Cols().
//   - sched.ErrInvalidPolicy propagated from the partitioning layer.
//
// Complexity: O(nnz + rows) per invocation.
package spmv
