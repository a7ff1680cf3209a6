// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minComplete             = 2
)

// Complete couples every pair i < j, row by row; with a Normal
// distribution this is the Sherrington–Kirkpatrick model.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(in *Instance, cfg builderConfig) error {
		if n < minComplete {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minComplete, ErrTooFewVertices)
		}
		spins(in, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				bond(in, cfg, i, j)
			}
		}

		return nil
	}
}

// CompleteBipartite couples every left label 0..n1-1 with every right label
// n1..n1+n2-1.
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(in *Instance, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ 1): %w",
				methodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		spins(in, n1+n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				bond(in, cfg, i, n1+j)
			}
		}

		return nil
	}
}
