// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	// a periodic dimension needs 3 sites, otherwise the wrap bond doubles a bond.
	minPeriodicDim = 3
)

// Grid builds a rows×cols square lattice with label r·cols + c.
// For each site it emits the Right then the Bottom bond; with WithPeriodic
// the last column and row wrap around.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(in *Instance, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if cfg.periodic && (rows < minPeriodicDim || cols < minPeriodicDim) {
			return fmt.Errorf("%s: periodic rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minPeriodicDim, ErrTooFewVertices)
		}
		spins(in, rows*cols)

		at := func(r, c int) int { return r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				switch {
				case c+1 < cols:
					bond(in, cfg, at(r, c), at(r, c+1))
				case cfg.periodic:
					bond(in, cfg, at(r, c), at(r, 0))
				}
				switch {
				case r+1 < rows:
					bond(in, cfg, at(r, c), at(r+1, c))
				case cfg.periodic:
					bond(in, cfg, at(r, c), at(0, c))
				}
			}
		}

		return nil
	}
}
