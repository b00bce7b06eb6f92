// SPDX-License-Identifier: MIT

// Package bench orchestrates one SpMV benchmark run end to end and owns
// the structured result record.
//
// Pipeline:
//
//	read triplets → build CSR → generate dense vector → counting pass →
//	adaptive warm-up → N timed kernel passes → metrics → Report
//
// Kernel invocations are strictly sequential — warm-up passes and timed
// iterations never overlap, so every recorded sample reflects one isolated
// call. Thread count, policy and chunk size are resolved once, before any
// kernel call, and never change mid-run.
//
// Failure policy:
//
//   - Parse/build-time errors are fatal: Run stops, appends the failure to
//     the report's error list and still returns the partially-filled report
//     so callers can always emit structured output.
//   - Requesting more threads than available is the one recoverable
//     condition: the count is capped and a warning recorded, the run
//     continues.
//
// Error handling (sentinel):
//
//   - ErrInvalidArgument for out-of-range configuration values.
package bench
