// SPDX-License-Identifier: MIT

// Package spmv: sequential and parallel SpMV kernels.

package spmv

import (
	"fmt"
	"time"

	"github.com/katalvlaran/spmvbench/csr"
	"github.com/katalvlaran/spmvbench/sched"
)

// kernelRows computes y[start:end] for the row range [start, end).
// The private scalar accumulator and ascending j order fix the per-row
// rounding behavior; this is the only place the arithmetic lives.
func kernelRows(rowStart, colIndex []int32, values, x, y []float64, start, end int) {
	for i := start; i < end; i++ {
		sum := 0.0
		for j := rowStart[i]; j < rowStart[i+1]; j++ {
			sum += values[j] * x[colIndex[j]]
		}
		y[i] = sum
	}
}

// Multiply runs the sequential kernel: rows 0..rows-1 in order, one thread.
//
// Returns the output vector, the elapsed wall time of the row loop only,
// and ErrDimensionMismatch if len(x) != m.Cols().
func Multiply(m *csr.Matrix, x []float64) ([]float64, time.Duration, error) {
	if len(x) != m.Cols() {
		return nil, 0, fmt.Errorf("%w: len(x)=%d, cols=%d", ErrDimensionMismatch, len(x), m.Cols())
	}

	y := make([]float64, m.Rows())
	rowStart, colIndex, values := m.RowStart(), m.ColIndex(), m.Values()

	start := time.Now()
	kernelRows(rowStart, colIndex, values, x, y, 0, m.Rows())
	elapsed := time.Since(start)

	return y, elapsed, nil
}

// MultiplyParallel runs the row-partitioned kernel on the given pool.
// Each worker writes only its assigned rows of y — disjoint writes, no
// atomics — and all workers join before the call returns.
//
// chunk == 0 selects the policy's default granularity. Errors:
//   - ErrDimensionMismatch if len(x) != m.Cols().
//   - sched.ErrInvalidPolicy for an unrecognized policy.
func MultiplyParallel(m *csr.Matrix, x []float64, pool *sched.Pool, policy sched.Policy, chunk int) ([]float64, time.Duration, error) {
	if len(x) != m.Cols() {
		return nil, 0, fmt.Errorf("%w: len(x)=%d, cols=%d", ErrDimensionMismatch, len(x), m.Cols())
	}

	y := make([]float64, m.Rows())
	rowStart, colIndex, values := m.RowStart(), m.ColIndex(), m.Values()

	start := time.Now()
	err := pool.Run(policy, m.Rows(), chunk, func(lo, hi int) {
		kernelRows(rowStart, colIndex, values, x, y, lo, hi)
	})
	elapsed := time.Since(start)
	if err != nil {
		return nil, 0, err
	}

	return y, elapsed, nil
}
