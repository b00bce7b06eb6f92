// SPDX-License-Identifier: MIT

// Package csr: CompressedMatrix value and the single-pass builder.

package csr

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/spmvbench/mtx"
)

// Matrix is an immutable compressed-row sparse matrix. It exclusively owns
// its three buffers; they are populated once by Build and never mutated.
// Accessor slices are handed out without copying for kernel hot loops —
// callers must treat them as read-only.
type Matrix struct {
	rowStart []int32   // len rows+1, non-decreasing, rowStart[rows] == nnz
	colIndex []int32   // len nnz, ascending within each row span
	values   []float64 // len nnz, parallel to colIndex

	rows, cols, nnz int
}

// Build converts (row, col)-sorted coordinate entries into a compressed-row
// matrix in one linear pass.
//
// Stages:
//  1. Derive rows, cols, nnz from the entries (max index + 1).
//  2. Walk entries once; whenever the row advances, backfill the skipped
//     rowStart slots with the running nonzero index (marks empty rows).
//  3. Backfill trailing empty rows with nnz.
//
// Errors:
//   - ErrEmptyInput if entries is empty.
//   - ErrAllocation if the shape exceeds int32 offset range.
//
// Complexity: O(nnz + rows) time and space.
func Build(entries []mtx.Entry) (*Matrix, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	nnz := len(entries)
	rows, cols := 0, 0
	for _, e := range entries {
		if e.Row >= rows {
			rows = e.Row + 1
		}
		if e.Col >= cols {
			cols = e.Col + 1
		}
	}

	// Offsets and column indices are stored as int32; reject shapes that
	// cannot be addressed that way.
	if nnz > math.MaxInt32 || rows >= math.MaxInt32 || cols > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d×%d nnz=%d", ErrAllocation, rows, cols, nnz)
	}

	m := &Matrix{
		rowStart: make([]int32, rows+1),
		colIndex: make([]int32, nnz),
		values:   make([]float64, nnz),
		rows:     rows,
		cols:     cols,
		nnz:      nnz,
	}

	currentRow := 0
	m.rowStart[0] = 0 // first row always starts at offset 0
	for i, e := range entries {
		// New row: every skipped slot points at the next stored nonzero.
		for currentRow < e.Row {
			currentRow++
			m.rowStart[currentRow] = int32(i)
		}

		m.values[i] = e.Value
		m.colIndex[i] = int32(e.Col)
	}

	// Trailing empty rows (and the end pointer) close at nnz.
	for currentRow < rows {
		currentRow++
		m.rowStart[currentRow] = int32(nnz)
	}

	return m, nil
}

// Rows returns the number of matrix rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of matrix columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored nonzeros. Complexity: O(1).
func (m *Matrix) NNZ() int { return m.nnz }

// RowStart returns the row offset array (len Rows()+1). Read-only.
func (m *Matrix) RowStart() []int32 { return m.rowStart }

// ColIndex returns the column index array (len NNZ()). Read-only.
func (m *Matrix) ColIndex() []int32 { return m.colIndex }

// Values returns the nonzero value array (len NNZ()). Read-only.
func (m *Matrix) Values() []float64 { return m.values }

// String renders the compressed arrays for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "CSR %d×%d nnz=%d\n", m.rows, m.cols, m.nnz)
	fmt.Fprintf(&sb, "rowStart: %v\n", m.rowStart)
	fmt.Fprintf(&sb, "colIndex: %v\n", m.colIndex)
	fmt.Fprintf(&sb, "values:   %v\n", m.values)

	return sb.String()
}
