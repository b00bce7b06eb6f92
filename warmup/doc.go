// SPDX-License-Identifier: MIT

// Package warmup runs a kernel repeatedly before measurement until its
// timing reaches a steady state, replacing the usual fixed warm-up count
// with an adaptive stability test.
//
// Algorithm:
//
//   - Execute the kernel, keeping a sliding window of the last 3 durations.
//   - Once the window is full, each new duration d is compared to the window
//     average: variation = |d − avg| / (avg + 1e-9).
//   - variation < 0.03 increments a stability counter; anything else resets
//     it. Three consecutive stable iterations end the warm-up.
//   - A hard cap of 20 iterations applies regardless of the requested cap;
//     a smaller requested cap lowers it. At least one iteration always runs.
//
// Constant timings therefore stop after exactly 6 iterations (3 to fill the
// window, 3 stable); timings that never settle stop at the cap.
//
// Kernel outputs produced during warm-up are discarded by the caller; only
// the iteration count (diagnostics) and the total wall time (reported as
// warm-up time) survive.
package warmup
