// SPDX-License-Identifier: MIT

// Package mtx: sentinel error set. All reader failures are reported through
// these sentinels and matched by callers via errors.Is; contextual detail
// (path, line number) is attached with fmt.Errorf("...: %w") at the
// detection site.

package mtx

import "errors"

var (
	// ErrFileAccess indicates that the triplet source could not be opened
	// or read (wraps the underlying I/O error).
	ErrFileAccess = errors.New("mtx: cannot access matrix file")

	// ErrBadFormat indicates a missing or malformed dimension line, or a
	// malformed triplet line (wrong field count, non-numeric field, index
	// below 1 before 0-based conversion).
	ErrBadFormat = errors.New("mtx: malformed matrix data")

	// ErrInvalidDimensions indicates a dimension line whose rows, cols or
	// nnz value is not a positive integer.
	ErrInvalidDimensions = errors.New("mtx: matrix dimensions must be positive")
)
