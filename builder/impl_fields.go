// SPDX-License-Identifier: MIT

package builder

import "fmt"

const methodFields = "Fields"

// Fields adds a field drawn from the WithFieldFn distribution to each of
// the labels 0..n-1, in order.
// Complexity: O(n).
func Fields(n int) Constructor {
	return func(in *Instance, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodFields, n, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			in.AddField(i, cfg.draw(cfg.fieldFn))
		}

		return nil
	}
}
