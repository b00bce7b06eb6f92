// SPDX-License-Identifier: MIT

// Package spmv: exact FLOP/byte accounting for one kernel invocation.

package spmv

import "github.com/katalvlaran/spmvbench/csr"

// Element and index widths in bytes: float64 values and vector slots,
// int32 row offsets and column indices.
const (
	bytesPerValue  = 8
	bytesPerIndex  = 4
	bytesPerVecOut = 8
)

// Counters holds the exact work of one SpMV invocation: every multiply-add
// and every byte the row loop touches, tallied from the actual structure
// rather than estimated from array sizes.
type Counters struct {
	Flops uint64 // 2 per stored nonzero (one multiply + one add)
	Bytes uint64 // values + colIndex + x reads per nonzero, rowStart scan, y writes
}

// CountPass traverses the matrix structure the way the kernel does and
// tallies exact FLOPs and bytes moved. It performs no arithmetic on the
// values, so it is safe to run outside the timed region (the warm-up phase
// is the natural place).
//
// Per row i the loop reads rowStart[i] and rowStart[i+1]; the full offset
// array is scanned exactly once, hence 4·(rows+1) bytes. Each stored
// nonzero costs one value read, one column-index read and one x read;
// each row costs one y write. Empty rows therefore contribute only their
// offset reads — the source of the estimation bias this pass removes.
//
// Complexity: O(rows) time, O(1) space.
func CountPass(m *csr.Matrix) Counters {
	rowStart := m.RowStart()
	rows := m.Rows()

	var touched uint64
	for i := 0; i < rows; i++ {
		touched += uint64(rowStart[i+1] - rowStart[i])
	}

	return Counters{
		Flops: 2 * touched,
		Bytes: touched*(bytesPerValue+bytesPerIndex+bytesPerValue) + // values, colIndex, x reads
			uint64(rows+1)*bytesPerIndex + // rowStart scan
			uint64(rows)*bytesPerVecOut, // y writes
	}
}
