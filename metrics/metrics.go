// SPDX-License-Identifier: MIT

// Package metrics: snapshot computation over iteration samples.

package metrics

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/spmvbench/csr"
)

// ErrNoSamples is returned when a percentile is requested over an empty
// sample sequence.
var ErrNoSamples = errors.New("metrics: no iteration samples recorded")

// Byte widths of the arrays one SpMV call touches (estimation model).
const (
	bytesPerValue = 8 // float64 matrix values, x reads, y writes
	bytesPerIndex = 4 // int32 row offsets and column indices
)

// percentileRank is the fixed latency percentile this engine reports.
const percentileRank = 0.9

// Snapshot holds the derived figures of one run. It is a value recomputed
// from the current samples; holding one never pins any other state.
type Snapshot struct {
	Duration90 float64 // 90th-percentile iteration duration, milliseconds
	Flops      uint64  // total floating-point operations per call
	Bytes      uint64  // total bytes moved per call
	GFlops     float64 // flops / seconds / 1e9 at the p90 duration
	Bandwidth  float64 // bytes / (seconds · 1e9), GB/s at the p90 duration
	Intensity  float64 // flops / bytes, FLOP per byte
}

// Option adjusts metric computation.
type Option func(*options)

type options struct {
	measuredFlops uint64
	measuredBytes uint64
}

// WithMeasuredCounts supplies real-time tallies from an instrumented kernel
// pass. Each figure is used only when nonzero; a zero value keeps the
// shape-based estimate for that figure.
func WithMeasuredCounts(flops, bytes uint64) Option {
	return func(o *options) {
		o.measuredFlops = flops
		o.measuredBytes = bytes
	}
}

// Compute derives a Snapshot from per-iteration durations (milliseconds)
// and the matrix the kernel ran against.
//
// Stages:
//  1. Resolve FLOPs and bytes: measured when nonzero, estimated otherwise.
//  2. Nearest-rank p90 over a sorted copy of samples (input not mutated).
//  3. Derived rates from seconds = duration90 / 1000.
//
// Errors:
//   - ErrNoSamples if samples is empty.
//
// Complexity: O(n log n) time in len(samples), O(n) space for the copy.
func Compute(samples []float64, m *csr.Matrix, opts ...Option) (Snapshot, error) {
	if len(samples) == 0 {
		return Snapshot{}, ErrNoSamples
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	flops := o.measuredFlops
	if flops == 0 {
		flops = estimateFlops(m)
	}
	bytes := o.measuredBytes
	if bytes == 0 {
		bytes = estimateBytes(m)
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	idx := int(math.Ceil(percentileRank*float64(len(sorted)))) - 1
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if idx < 0 {
		idx = 0
	}

	duration90 := sorted[idx]
	seconds := duration90 / 1000

	return Snapshot{
		Duration90: duration90,
		Flops:      flops,
		Bytes:      bytes,
		GFlops:     float64(flops) / seconds / 1e9,
		Bandwidth:  float64(bytes) / (seconds * 1e9),
		Intensity:  float64(flops) / float64(bytes),
	}, nil
}

// estimateFlops counts one multiply and one add per stored nonzero.
func estimateFlops(m *csr.Matrix) uint64 {
	return 2 * uint64(m.NNZ())
}

// estimateBytes prices each array at one full traversal per call: values
// and column indices per nonzero, the offset array, the input vector read
// and the output vector write.
func estimateBytes(m *csr.Matrix) uint64 {
	nnz, rows, cols := uint64(m.NNZ()), uint64(m.Rows()), uint64(m.Cols())

	read := bytesPerValue*nnz + // values
		bytesPerIndex*nnz + // colIndex
		bytesPerIndex*(rows+1) + // rowStart
		bytesPerValue*cols // input vector
	written := bytesPerValue * rows // output vector

	return read + written
}
