// SPDX-License-Identifier: MIT

// Package bench: run orchestration.

package bench

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/xid"

	"github.com/katalvlaran/spmvbench/csr"
	"github.com/katalvlaran/spmvbench/metrics"
	"github.com/katalvlaran/spmvbench/mtx"
	"github.com/katalvlaran/spmvbench/sched"
	"github.com/katalvlaran/spmvbench/spmv"
	"github.com/katalvlaran/spmvbench/warmup"
)

// Run executes one benchmark according to cfg.
//
// The returned Report is never nil: fatal errors append a "fatal: ..."
// entry to its error list and the report carries whatever was gathered up
// to the failure, so callers can always emit structured output. The error
// return distinguishes a fatal abort (non-nil) from a clean run.
func Run(cfg Config) (*Report, error) {
	report := &Report{
		RunID:            xid.New().String(),
		Timestamp:        time.Now().UTC().Format(time.RFC3339),
		IterationTimesMs: []float64{},
		Errors:           []string{},
	}

	cfg, err := cfg.normalize()
	if err != nil {
		return fatal(report, err)
	}
	report.Matrix.Name = filepath.Base(cfg.MatrixPath)

	// Thread count is resolved exactly once, before any kernel call.
	// Over-subscription is the single recoverable condition: cap and warn.
	if maxThreads := runtime.GOMAXPROCS(0); cfg.Threads > maxThreads {
		report.AddError(fmt.Sprintf(
			"requested threads (%d) exceed max available (%d); capped", cfg.Threads, maxThreads))
		cfg.Threads = maxThreads
	}
	if !cfg.Sequential {
		report.Scenario = &Scenario{
			Threads:        cfg.Threads,
			SchedulingType: cfg.Policy.String(),
			ChunkSize:      cfg.ChunkSize,
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	report.Seed = seed

	entries, err := mtx.ReadFile(cfg.MatrixPath)
	if err != nil {
		return fatal(report, err)
	}

	m, err := csr.Build(entries)
	if err != nil {
		return fatal(report, err)
	}
	report.Matrix.Rows, report.Matrix.Cols, report.Matrix.NNZ = m.Rows(), m.Cols(), m.NNZ()

	rng := rand.New(rand.NewSource(seed)) // seeded once per run, threaded explicitly
	x := RandomVector(rng, m.Cols(), vectorMin, vectorMax)

	// Exact work tally for the metrics engine; structural only, untimed.
	counters := spmv.CountPass(m)

	// The pool is sized once for the whole run and survives every
	// invocation; warm-up passes reuse the same workers the timed passes do.
	var pool *sched.Pool
	if !cfg.Sequential {
		pool = sched.New(cfg.Threads)
		defer pool.Close()
	}
	invoke := kernelFor(cfg, m, x, pool)

	warmIters, warmTotal, err := warmup.Adaptive(func() (time.Duration, error) {
		_, elapsed, kerr := invoke()
		return elapsed, kerr
	}, cfg.WarmupCap)
	if err != nil {
		return fatal(report, err)
	}
	report.WarmupIterations = warmIters
	report.WarmupTimeMs = durationMs(warmTotal)

	// Timed passes, strictly sequential: one isolated sample per call.
	for i := 0; i < cfg.Iterations; i++ {
		_, elapsed, kerr := invoke()
		if kerr != nil {
			return fatal(report, kerr)
		}
		report.IterationTimesMs = append(report.IterationTimesMs, durationMs(elapsed))
	}

	snap, err := metrics.Compute(report.IterationTimesMs, m,
		metrics.WithMeasuredCounts(counters.Flops, counters.Bytes))
	if err != nil {
		return fatal(report, err)
	}
	report.SetStatistics(snap)

	return report, nil
}

// kernelFor binds the configured kernel variant to the matrix, vector and
// (for the parallel variant) the run's worker pool.
func kernelFor(cfg Config, m *csr.Matrix, x []float64, pool *sched.Pool) func() ([]float64, time.Duration, error) {
	if cfg.Sequential {
		return func() ([]float64, time.Duration, error) {
			return spmv.Multiply(m, x)
		}
	}

	return func() ([]float64, time.Duration, error) {
		return spmv.MultiplyParallel(m, x, pool, cfg.Policy, cfg.ChunkSize)
	}
}

// fatal records err on the report and returns both; the report stays
// emittable with everything gathered so far.
func fatal(report *Report, err error) (*Report, error) {
	report.AddError(fmt.Sprintf("fatal error: %v", err))

	return report, err
}

// durationMs converts a wall-time duration to float64 milliseconds, the
// unit of every sample in the report.
func durationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
