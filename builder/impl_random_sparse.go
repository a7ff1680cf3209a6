// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	minRandomSparse    = 1
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse keeps each pair i < j with probability p. Pairs are visited
// row by row; one Float64 draw decides each pair, then the coupling is drawn.
// p = 0 and p = 1 need no generator.
//
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(in *Instance, cfg builderConfig) error {
		if n < minRandomSparse {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparse, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		spins(in, n)
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				bond(in, cfg, i, j)
			}
		}

		return nil
	}
}
