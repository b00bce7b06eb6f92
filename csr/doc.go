// SPDX-License-Identifier: MIT

// Package csr builds and holds the Compressed Sparse Row representation of a
// coordinate-form sparse matrix.
//
// Representation:
//
//   - rowStart: int32 slice of length rows+1; rowStart[i] is the offset of
//     row i's first nonzero, rowStart[rows] == nnz.
//   - colIndex: int32 slice of length nnz, column index per nonzero.
//   - values:   float64 slice of length nnz, parallel to colIndex.
//
// Invariants (established by Build, never mutated afterwards):
//
//   - rowStart[0] == 0 and rowStart[rows] == nnz.
//   - rowStart is non-decreasing; empty rows occupy zero-width spans.
//   - Within a row, nonzeros appear in ascending column order (inherited
//     from the sorted input).
//   - rows == max(entry.Row)+1 and cols == max(entry.Col)+1; the column
//     count is NOT validated against any particular input-vector length —
//     that is the kernel caller's responsibility.
//
// Build requires entries pre-sorted by (row, col); behavior on unsorted
// input is undefined, no internal re-sort is performed. Duplicate positions
// are preserved as separate adjacent nonzeros.
//
// Complexity: Build is O(nnz + rows) time and space.
package csr
