// Package sched_test contains unit tests for policies and the worker pool.
package sched_test

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/spmvbench/sched"
	"github.com/stretchr/testify/require"
)

// TestParsePolicy pins name→value mapping and the invalid-name sentinel.
func TestParsePolicy(t *testing.T) {
	cases := []struct {
		name string
		want sched.Policy
	}{
		{"static", sched.Static},
		{"dynamic", sched.Dynamic},
		{"guided", sched.Guided},
	}
	for _, tc := range cases {
		got, err := sched.ParsePolicy(tc.name)
		require.NoError(t, err, tc.name)
		require.Equal(t, tc.want, got, tc.name)
		require.Equal(t, tc.name, got.String()) // String round-trips
	}

	_, err := sched.ParsePolicy("auto")
	require.ErrorIs(t, err, sched.ErrInvalidPolicy)

	_, err = sched.ParsePolicy("STATIC") // case-sensitive, as in the CLI contract
	require.ErrorIs(t, err, sched.ErrInvalidPolicy)
}

// TestNewDefaultWorkers ensures count <= 0 falls back to GOMAXPROCS.
func TestNewDefaultWorkers(t *testing.T) {
	p := sched.New(0)
	defer p.Close()
	require.Equal(t, runtime.GOMAXPROCS(0), p.Workers())

	p4 := sched.New(4)
	defer p4.Close()
	require.Equal(t, 4, p4.Workers())
}

// coverage runs a policy over [0, n) and asserts every index is visited
// exactly once — the disjoint-write guarantee every kernel relies on.
func coverage(t *testing.T, p *sched.Pool, policy sched.Policy, n, chunk int) {
	t.Helper()

	visits := make([]int32, n)
	err := p.Run(policy, n, chunk, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&visits[i], 1)
		}
	})
	require.NoError(t, err)

	for i, v := range visits {
		require.EqualValues(t, 1, v, "index %d visited %d times", i, v)
	}
}

// TestRunCoversRange exercises every policy × chunk combination.
func TestRunCoversRange(t *testing.T) {
	p := sched.New(4)
	defer p.Close()

	for _, policy := range []sched.Policy{sched.Static, sched.Dynamic, sched.Guided} {
		for _, chunk := range []int{0, 1, 7, 64, 1000} {
			coverage(t, p, policy, 257, chunk)
		}
	}

	// Degenerate ranges: single row and fewer rows than workers.
	coverage(t, p, sched.Static, 1, 0)
	coverage(t, p, sched.Dynamic, 3, 0)
	coverage(t, p, sched.Guided, 3, 0)
}

// TestRunInvalidPolicy ensures unknown policy values are rejected.
func TestRunInvalidPolicy(t *testing.T) {
	p := sched.New(2)
	defer p.Close()

	err := p.Run(sched.Policy(99), 10, 0, func(int, int) {})
	require.ErrorIs(t, err, sched.ErrInvalidPolicy)
}

// TestRunEmptyRange ensures n <= 0 is a no-op.
func TestRunEmptyRange(t *testing.T) {
	p := sched.New(2)
	defer p.Close()

	called := false
	require.NoError(t, p.Run(sched.Static, 0, 0, func(int, int) { called = true }))
	require.False(t, called)
}

// TestRunAfterClose verifies the sequential degradation path still covers
// the full range.
func TestRunAfterClose(t *testing.T) {
	p := sched.New(4)
	p.Close()
	p.Close() // double Close is safe

	coverage(t, p, sched.Static, 50, 0)
	coverage(t, p, sched.Dynamic, 50, 8)
	coverage(t, p, sched.Guided, 50, 2)
}
