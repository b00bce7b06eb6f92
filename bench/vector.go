// SPDX-License-Identifier: MIT

// Package bench: dense input-vector generation.

package bench

import "math/rand"

// RandomVector draws n values uniformly from [lo, hi) using the supplied
// generator. The generator is an explicit parameter — seeded once per run
// and threaded through — so no hidden process-wide state influences the
// benchmark input.
func RandomVector(rng *rand.Rand, n int, lo, hi float64) []float64 {
	v := make([]float64, n)
	span := hi - lo
	for i := range v {
		v[i] = lo + rng.Float64()*span
	}

	return v
}
