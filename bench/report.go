// SPDX-License-Identifier: MIT

// Package bench: the structured per-run result record.

package bench

import (
	"encoding/json"

	"github.com/katalvlaran/spmvbench/metrics"
)

// MatrixInfo describes the benchmarked matrix. A failed read leaves the
// zero shape in place so the record is still emittable.
type MatrixInfo struct {
	Name string `json:"name"`
	Rows int    `json:"rows"`
	Cols int    `json:"cols"`
	NNZ  int    `json:"nnz"`
}

// Scenario describes the parallel execution setup. Sequential runs omit it.
type Scenario struct {
	Threads        int    `json:"threads"`
	SchedulingType string `json:"scheduling_type"`
	ChunkSize      int    `json:"chunk_size"`
}

// Statistics mirrors the statistics90 JSON block: everything derives from
// the 90th-percentile iteration duration.
type Statistics struct {
	DurationMs          float64 `json:"duration_ms"`
	Flops               uint64  `json:"FLOPs"`
	GFlops              float64 `json:"GFLOPS"`
	BandwidthGBps       float64 `json:"Bandwidth_GBps"`
	ArithmeticIntensity float64 `json:"Arithmetic_intensity"`
}

// Report is the per-run output record consumed by external tooling. It is
// assembled incrementally so a fatal error still leaves an emittable
// document with whatever was gathered, plus the error list.
type Report struct {
	RunID            string      `json:"run_id"`
	Timestamp        string      `json:"timestamp_rfc3339"`
	Matrix           MatrixInfo  `json:"matrix"`
	Scenario         *Scenario   `json:"scenario,omitempty"`
	Statistics90     *Statistics `json:"statistics90,omitempty"`
	Seed             int64       `json:"seed"`
	WarmupTimeMs     float64     `json:"warmUp_time_ms"`
	WarmupIterations int         `json:"warmup_iterations"`
	IterationTimesMs []float64   `json:"all_iteration_times_ms"`
	Errors           []string    `json:"errors"`
}

// AddError appends one non-fatal warning or fatal failure description.
func (r *Report) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// SetStatistics copies a metrics snapshot into the report's JSON shape.
func (r *Report) SetStatistics(snap metrics.Snapshot) {
	r.Statistics90 = &Statistics{
		DurationMs:          snap.Duration90,
		Flops:               snap.Flops,
		GFlops:              snap.GFlops,
		BandwidthGBps:       snap.Bandwidth,
		ArithmeticIntensity: snap.Intensity,
	}
}

// JSON renders the indented report document.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
