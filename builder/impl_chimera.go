// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/MShaffar19/OpenJij/model"
)

const (
	methodChimera = "Chimera"
	minChimera    = 1
	chimeraShore  = 4
)

// Chimera builds an L×L lattice of K4,4 unit cells labelled by
// model.ChimeraIndex. Per cell (row-major) it emits the 16 intra-cell
// bonds, then the vertical bonds of the left shore to the cell below and
// the horizontal bonds of the right shore to the cell on the right.
//
// Complexity: O(L²).
func Chimera(L int) Constructor {
	return func(in *Instance, cfg builderConfig) error {
		if L < minChimera {
			return fmt.Errorf("%s: L=%d < min=%d: %w", methodChimera, L, minChimera, ErrTooFewVertices)
		}
		at := func(r, c, z int) int {
			idx, _ := model.ChimeraIndex(r, c, z, L)
			return idx
		}
		spins(in, L*L*2*chimeraShore)

		for r := 0; r < L; r++ {
			for c := 0; c < L; c++ {
				for a := 0; a < chimeraShore; a++ {
					for b := chimeraShore; b < 2*chimeraShore; b++ {
						bond(in, cfg, at(r, c, a), at(r, c, b))
					}
				}
				if r+1 < L {
					for z := 0; z < chimeraShore; z++ {
						bond(in, cfg, at(r, c, z), at(r+1, c, z))
					}
				}
				if c+1 < L {
					for z := chimeraShore; z < 2*chimeraShore; z++ {
						bond(in, cfg, at(r, c, z), at(r, c+1, z))
					}
				}
			}
		}

		return nil
	}
}
