// SPDX-License-Identifier: MIT

package system

import (
	"fmt"

	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/schedule"
)

// System is the contract updaters and the driver consume.
//
// A site is one flippable spin: i for ClassicalIsing, t·N+i for
// TransverseIsing. Updaters never branch on the concrete type; they only
// iterate 0..NumSites()-1 and ask for deltas.
type System interface {
	// Kind reports which schedule shape drives this system.
	Kind() schedule.Kind

	// NumSites returns the number of flippable positions.
	NumSites() int

	// SetParameter activates p for subsequent deltas.
	SetParameter(p schedule.Parameter) error

	// Parameter returns the active control parameter.
	Parameter() schedule.Parameter

	// DeltaEnergy returns the cost of flipping site, in units where the
	// Metropolis acceptance is exp(−β·ΔE).
	DeltaEnergy(site int) float64

	// Flip negates the spin at site.
	Flip(site int)
}

// Compile-time assertions.
var (
	_ System = (*ClassicalIsing)(nil)
	_ System = (*TransverseIsing)(nil)
)

// snapshot validates spin vectors against g and copies g into an Interaction.
func snapshot(method string, g graph.Graph, replicas []graph.Spins) (*graph.Interaction, error) {
	n := g.NumSpins()
	for t, r := range replicas {
		if len(r) != n {
			return nil, fmt.Errorf("%s: replica %d has %d spins, graph has %d: %w",
				method, t, len(r), n, ErrDimensionMismatch)
		}
		for i, s := range r {
			if s != 1 && s != -1 {
				return nil, fmt.Errorf("%s: replica %d spin %d = %d: %w", method, t, i, s, ErrInvalidSpin)
			}
		}
	}
	in, err := graph.NewInteraction(g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return in, nil
}

func checkBeta(method string, beta float64) error {
	if !(beta > 0) {
		return fmt.Errorf("%s: beta %g: %w", method, beta, ErrInvalidParameter)
	}

	return nil
}
