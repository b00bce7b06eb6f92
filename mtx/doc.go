// SPDX-License-Identifier: MIT

// Package mtx reads sparse matrices stored as coordinate (row, col, value)
// triplets in the Matrix Market text layout.
//
// Overview:
//
//   - Lines beginning with '%' are comments and skipped.
//   - The first non-comment line holds "rows cols nnz", all positive integers.
//   - Every following line holds one "row col value" triplet with 1-based
//     indices; the reader converts them to 0-based.
//   - The returned entries are sorted ascending by (row, col) so that the CSR
//     builder can run a single linear pass without re-sorting.
//
// Contract notes:
//
//   - Duplicate (row, col) positions are preserved as separate entries; the
//     reader performs no merging.
//   - A syntactically valid header followed by zero triplet lines yields an
//     empty entry slice and a nil error — emptiness is rejected downstream,
//     at the CSR build boundary.
//
// Error handling (sentinel):
//
//   - ErrFileAccess        if the source cannot be opened or read.
//   - ErrBadFormat         if the header or a triplet line is malformed.
//   - ErrInvalidDimensions if rows, cols or nnz is not positive.
//
// Complexity: O(nnz log nnz) dominated by the final sort; O(nnz) space.
package mtx
