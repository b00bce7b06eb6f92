// SPDX-License-Identifier: MIT

// Package sched: fixed-size worker pool with static/dynamic/guided
// row-range dispatch.

package sched

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// RangeFunc processes the half-open row range [start, end). Implementations
// must keep writes disjoint per range; the pool adds no locking of its own.
type RangeFunc func(start, end int)

// task is one unit of work submitted to the worker loop.
type task struct {
	fn      func()
	barrier *sync.WaitGroup
}

// Pool is a persistent fixed-size worker pool. Workers are spawned once by
// New and reused for every Run call until Close.
type Pool struct {
	workers   int
	workC     chan task
	closeOnce sync.Once
	closed    atomic.Bool
}

// New creates a pool with the given worker count; count <= 0 selects
// runtime.GOMAXPROCS(0). Workers persist until Close.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		workC:   make(chan task, workers*2),
	}
	for i := 0; i < workers; i++ {
		go p.worker()
	}

	return p
}

// worker is the main loop of each persistent goroutine.
func (p *Pool) worker() {
	for t := range p.workC {
		t.fn()
		t.barrier.Done()
	}
}

// Workers returns the fixed worker count. Complexity: O(1).
func (p *Pool) Workers() int { return p.workers }

// Close shuts the pool down; pending work completes first. Safe to call
// more than once. After Close, Run degrades to sequential execution.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run partitions [0, n) under the given policy and chunk size and blocks
// until all ranges have been processed. chunk == 0 selects the policy's
// default granularity. Returns ErrInvalidPolicy for unknown policies.
func (p *Pool) Run(policy Policy, n, chunk int, fn RangeFunc) error {
	if n <= 0 {
		return nil
	}

	switch policy {
	case Static:
		p.runStatic(n, chunk, fn)
	case Dynamic:
		p.runDynamic(n, chunk, fn)
	case Guided:
		p.runGuided(n, chunk, fn)
	default:
		return ErrInvalidPolicy
	}

	return nil
}

// sequentialFallback covers the single-worker and closed-pool paths; the
// numeric result is identical by construction (fixed per-range order).
func (p *Pool) sequentialFallback(n int, fn RangeFunc) bool {
	if p.closed.Load() || p.workers == 1 || n == 1 {
		fn(0, n)
		return true
	}

	return false
}

// submit queues one task per prepared closure and waits at the barrier.
func (p *Pool) submit(fns []func()) {
	var wg sync.WaitGroup
	wg.Add(len(fns))
	for _, fn := range fns {
		p.workC <- task{fn: fn, barrier: &wg}
	}
	wg.Wait()
}

// runStatic assigns blocks once, before execution.
//
//   - chunk == 0: contiguous ⌈n/workers⌉ blocks, one per worker.
//   - chunk > 0:  chunk-sized blocks assigned round-robin; worker w owns
//     blocks w, w+workers, w+2·workers, ...
func (p *Pool) runStatic(n, chunk int, fn RangeFunc) {
	if p.sequentialFallback(n, fn) {
		return
	}

	if chunk <= 0 {
		workers := min(p.workers, n)
		block := (n + workers - 1) / workers

		fns := make([]func(), 0, workers)
		for w := 0; w < workers; w++ {
			start := w * block
			if start >= n {
				break
			}
			end := min(start+block, n)
			fns = append(fns, func() { fn(start, end) })
		}
		p.submit(fns)

		return
	}

	numBlocks := (n + chunk - 1) / chunk
	workers := min(p.workers, numBlocks)

	fns := make([]func(), 0, workers)
	for w := 0; w < workers; w++ {
		fns = append(fns, func() {
			for b := w; b < numBlocks; b += workers {
				start := b * chunk
				end := min(start+chunk, n)
				fn(start, end)
			}
		})
	}
	p.submit(fns)
}

// runDynamic pulls chunk-sized blocks from a shared atomic cursor until the
// range is exhausted.
func (p *Pool) runDynamic(n, chunk int, fn RangeFunc) {
	if chunk <= 0 {
		chunk = DefaultDynamicChunk
	}
	if p.sequentialFallback(n, fn) {
		return
	}

	numBlocks := (n + chunk - 1) / chunk
	workers := min(p.workers, numBlocks)
	if workers == 1 {
		fn(0, n)
		return
	}

	var cursor atomic.Int64
	fns := make([]func(), workers)
	for w := range fns {
		fns[w] = func() {
			for {
				start := int(cursor.Add(int64(chunk))) - chunk
				if start >= n {
					return
				}
				fn(start, min(start+chunk, n))
			}
		}
	}
	p.submit(fns)
}

// runGuided pulls shrinking blocks: each grab takes remaining/workers rows,
// never fewer than the chunk floor (max(1, chunk)).
func (p *Pool) runGuided(n, chunk int, fn RangeFunc) {
	if p.sequentialFallback(n, fn) {
		return
	}

	floor := max(1, chunk)
	workers := p.workers

	var cursor atomic.Int64
	grab := func() (int, int, bool) {
		for {
			cur := cursor.Load()
			if cur >= int64(n) {
				return 0, 0, false
			}
			block := (int64(n) - cur) / int64(workers)
			if block < int64(floor) {
				block = int64(floor)
			}
			end := min(cur+block, int64(n))
			if cursor.CompareAndSwap(cur, end) {
				return int(cur), int(end), true
			}
		}
	}

	fns := make([]func(), workers)
	for w := range fns {
		fns[w] = func() {
			for {
				start, end, ok := grab()
				if !ok {
					return
				}
				fn(start, end)
			}
		}
	}
	p.submit(fns)
}
