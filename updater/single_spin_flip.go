// SPDX-License-Identifier: MIT

package updater

import (
	"math"

	"github.com/MShaffar19/OpenJij/prng"
	"github.com/MShaffar19/OpenJij/system"
)

// SingleSpinFlip is the Metropolis single-spin update.
//
// For every site in increasing order it draws u ∈ [0,1) and flips the site
// iff u < exp(−β·ΔE). Downhill moves (ΔE <= 0) are therefore always taken,
// but the draw still happens so the stream position depends only on the
// number of sites.
//
// Complexity: O(NumSites · deg) per sweep.
type SingleSpinFlip struct{}

// Sweep performs one pass over every site of sys.
func (SingleSpinFlip) Sweep(sys system.System, rng prng.Source) error {
	beta := sys.Parameter().Beta
	for site, n := 0, sys.NumSites(); site < n; site++ {
		dE := sys.DeltaEnergy(site)
		if rng.Float64() < math.Exp(-beta*dE) {
			sys.Flip(site)
		}
	}

	return nil
}
