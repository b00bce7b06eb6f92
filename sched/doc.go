// SPDX-License-Identifier: MIT

// Package sched partitions a row range across a fixed-size worker pool.
//
// Overview:
//
//   - A Pool owns a fixed number of persistent worker goroutines, spawned
//     once at creation and reused across kernel calls; per-call goroutine
//     spawning would dominate small-matrix timings.
//   - Run dispatches the half-open index range [0, n) to the workers under
//     one of three partitioning policies and blocks until every assigned
//     range has completed (implicit barrier — no partial results escape).
//
// Policies (mirroring static/dynamic/guided loop scheduling):
//
//   - Static: contiguous equal blocks, or fixed chunk-sized blocks assigned
//     round-robin, decided once before execution.
//   - Dynamic: chunk-sized blocks pulled from a shared cursor as workers
//     finish; balances skewed per-row cost at the price of contention.
//   - Guided: block size starts at remaining/workers and shrinks
//     geometrically, bounded below by the chunk floor.
//
// A chunk size of 0 selects the policy's implementation default. Callers
// guarantee that ranges handed to fn write disjoint state, so no locking
// beyond the final join is needed.
//
// Error handling (sentinel):
//
//   - ErrInvalidPolicy for an unrecognized policy value or name.
package sched
