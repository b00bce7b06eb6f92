// SPDX-License-Identifier: MIT

// Package warmup: adaptive warm-up controller implementation.

package warmup

import "time"

// Tuning constants of the stability test.
const (
	// MaxIterations is the hard global cap; no requested cap can raise it.
	MaxIterations = 20

	// windowSize is the number of most recent durations averaged against.
	windowSize = 3

	// stableTarget is the number of consecutive stable iterations required.
	stableTarget = 3

	// variationThreshold bounds the relative deviation considered stable.
	variationThreshold = 0.03

	// epsilon guards the division when the window average is (nearly) zero.
	epsilon = 1e-9
)

// Kernel executes one unmeasured kernel invocation and reports its elapsed
// wall time. The bench layer wraps the SpMV call; tests inject synthetic
// timings.
type Kernel func() (time.Duration, error)

// Adaptive runs kernel until timings stabilize or the cap is reached.
//
// requestedCap lowers the hard MaxIterations cap when it is in [1, 20);
// values < 1 or >= 20 leave the hard cap in force. At least one iteration
// always executes.
//
// Returns the number of iterations actually run (diagnostics only) and the
// total wall time spent warming up. An error from the kernel aborts
// immediately with the iterations completed so far.
func Adaptive(kernel Kernel, requestedCap int) (int, time.Duration, error) {
	limit := MaxIterations
	if requestedCap >= 1 && requestedCap < MaxIterations {
		limit = requestedCap
	}

	var (
		window [windowSize]float64 // ring of the last windowSize durations, ms
		filled int                 // how many slots of the ring are valid
		stable int                 // consecutive stable iterations seen
		total  time.Duration
	)

	for iter := 1; ; iter++ {
		elapsed, err := kernel()
		if err != nil {
			return iter - 1, total, err
		}
		total += elapsed
		ms := float64(elapsed.Nanoseconds()) / 1e6

		if filled == windowSize {
			avg := (window[0] + window[1] + window[2]) / windowSize
			variation := ms - avg
			if variation < 0 {
				variation = -variation
			}
			variation /= avg + epsilon

			if variation < variationThreshold {
				stable++
			} else {
				stable = 0
			}
			if stable >= stableTarget {
				return iter, total, nil
			}
		}

		// Slide the window: drop the oldest, append the newest.
		if filled < windowSize {
			window[filled] = ms
			filled++
		} else {
			window[0], window[1], window[2] = window[1], window[2], ms
		}

		if iter >= limit {
			return iter, total, nil
		}
	}
}
