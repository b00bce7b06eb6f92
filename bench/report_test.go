// Package bench_test: JSON shape tests for the result record.
package bench_test

import (
	"encoding/json"
	"testing"

	"github.com/katalvlaran/spmvbench/bench"
	"github.com/katalvlaran/spmvbench/metrics"
	"github.com/stretchr/testify/require"
)

// TestReportJSONShape pins the external field names tooling depends on.
func TestReportJSONShape(t *testing.T) {
	r := &bench.Report{
		RunID:     "test-run",
		Timestamp: "2026-01-02T03:04:05Z",
		Matrix:    bench.MatrixInfo{Name: "m.mtx", Rows: 3, Cols: 3, NNZ: 4},
		Scenario:  &bench.Scenario{Threads: 4, SchedulingType: "guided", ChunkSize: 8},

		WarmupTimeMs:     1.5,
		WarmupIterations: 6,
		IterationTimesMs: []float64{0.5, 0.25},
		Errors:           []string{},
	}
	r.SetStatistics(metrics.Snapshot{
		Duration90: 0.5,
		Flops:      8,
		Bytes:      112,
		GFlops:     1,
		Bandwidth:  2,
		Intensity:  8.0 / 112.0,
	})

	raw, err := r.JSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	for _, key := range []string{
		"run_id", "timestamp_rfc3339", "matrix", "scenario", "statistics90",
		"warmUp_time_ms", "all_iteration_times_ms", "errors",
	} {
		require.Contains(t, doc, key)
	}

	stats, ok := doc["statistics90"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"duration_ms", "FLOPs", "GFLOPS", "Bandwidth_GBps", "Arithmetic_intensity"} {
		require.Contains(t, stats, key)
	}

	// Errors serializes as an empty array, never null.
	require.Equal(t, []any{}, doc["errors"])
}

// TestReportSequentialOmitsScenario: without a scenario the block is absent.
func TestReportSequentialOmitsScenario(t *testing.T) {
	r := &bench.Report{Errors: []string{}}

	raw, err := r.JSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.NotContains(t, doc, "scenario")
	require.NotContains(t, doc, "statistics90")
}
