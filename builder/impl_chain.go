// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodChain = "Chain"
	methodRing  = "Ring"
	minChain    = 2
	minRing     = 3
)

// Chain couples i and i+1 for i in [0, n-1).
// Complexity: O(n).
func Chain(n int) Constructor {
	return func(in *Instance, cfg builderConfig) error {
		if n < minChain {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChain, ErrTooFewVertices)
		}
		spins(in, n)
		for i := 0; i+1 < n; i++ {
			bond(in, cfg, i, i+1)
		}

		return nil
	}
}

// Ring is Chain plus the closing bond between n-1 and 0.
// Complexity: O(n).
func Ring(n int) Constructor {
	return func(in *Instance, cfg builderConfig) error {
		if n < minRing {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRing, ErrTooFewVertices)
		}
		spins(in, n)
		for i := 0; i < n; i++ {
			bond(in, cfg, i, (i+1)%n)
		}

		return nil
	}
}
