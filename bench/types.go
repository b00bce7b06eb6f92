// SPDX-License-Identifier: MIT

// Package bench: run configuration, defaults and sentinel errors.

package bench

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/katalvlaran/spmvbench/sched"
)

// ErrInvalidArgument indicates an out-of-range configuration value
// (threads < 1 after defaulting, iterations < 1, chunk size < 0).
var ErrInvalidArgument = errors.New("bench: invalid configuration value")

// Defaults applied by Config.normalize.
const (
	// DefaultIterations is the timed pass count when none is requested.
	DefaultIterations = 1

	// threadsEnv names the environment variable consulted for the default
	// thread count, mirroring the OpenMP convention of the original tool.
	threadsEnv = "OMP_NUM_THREADS"

	// Random input vectors are drawn uniformly from [vectorMin, vectorMax).
	vectorMin = -1000.0
	vectorMax = 1000.0
)

// Config is the resolved option set of one run. Zero values select
// documented defaults; validation happens once in Run before any I/O.
type Config struct {
	// MatrixPath locates the coordinate triplet file.
	MatrixPath string

	// Threads is the worker count; 0 selects the environment default
	// (OMP_NUM_THREADS, else all available processors). Requests above the
	// available maximum are capped with a recorded warning.
	Threads int

	// Policy selects row partitioning for the parallel kernel.
	Policy sched.Policy

	// ChunkSize is the scheduling granularity; 0 means policy default.
	ChunkSize int

	// Iterations is the timed pass count; 0 selects DefaultIterations.
	Iterations int

	// WarmupCap bounds adaptive warm-up iterations; 0 keeps the hard cap.
	WarmupCap int

	// Seed seeds the input-vector generator; 0 derives a seed from the
	// clock. The effective seed is recorded in the report either way.
	Seed int64

	// Sequential runs the single-threaded kernel and omits the scenario
	// block from the report, matching the sequential tool variant.
	Sequential bool
}

// normalize fills defaults and validates ranges. It returns the effective
// config and never mutates the receiver.
func (c Config) normalize() (Config, error) {
	if c.MatrixPath == "" {
		return c, fmt.Errorf("%w: matrix path is required", ErrInvalidArgument)
	}

	if c.Threads == 0 {
		c.Threads = DefaultThreads()
	}
	if c.Threads < 1 {
		return c, fmt.Errorf("%w: threads must be >= 1, got %d", ErrInvalidArgument, c.Threads)
	}

	if c.Iterations == 0 {
		c.Iterations = DefaultIterations
	}
	if c.Iterations < 1 {
		return c, fmt.Errorf("%w: iterations must be >= 1, got %d", ErrInvalidArgument, c.Iterations)
	}

	if c.ChunkSize < 0 {
		return c, fmt.Errorf("%w: chunk size must be >= 0, got %d", ErrInvalidArgument, c.ChunkSize)
	}
	if c.WarmupCap < 0 {
		return c, fmt.Errorf("%w: warm-up cap must be >= 0, got %d", ErrInvalidArgument, c.WarmupCap)
	}

	return c, nil
}

// DefaultThreads resolves the default worker count: a positive
// OMP_NUM_THREADS value wins, otherwise all available processors.
func DefaultThreads() int {
	if v := os.Getenv(threadsEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}

	return runtime.GOMAXPROCS(0)
}
