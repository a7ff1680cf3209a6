// SPDX-License-Identifier: MIT

// Package result reads the outcome of an anneal back out of a system.
package result

import (
	"errors"
	"fmt"

	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/system"
)

// ErrUnsupportedSystem reports a system type GetSolution cannot read.
var ErrUnsupportedSystem = errors.New("result: unsupported system")

// GetSolution returns a copy of the solution held by sys.
//
//   - *system.ClassicalIsing: the spin assignment.
//   - *system.TransverseIsing: the replica with the lowest classical energy;
//     ties go to the lowest replica index.
func GetSolution(sys system.System) (graph.Spins, error) {
	switch s := sys.(type) {
	case *system.ClassicalIsing:
		return s.Spins(), nil
	case *system.TransverseIsing:
		return s.Replica(BestReplica(s)), nil
	default:
		return nil, fmt.Errorf("GetSolution(%T): %w", sys, ErrUnsupportedSystem)
	}
}

// BestReplica returns the index of the lowest-energy replica of ti.
// Complexity: O(T · Σ deg).
func BestReplica(ti *system.TransverseIsing) int {
	best, bestE := 0, ti.ReplicaEnergy(0)
	for t := 1; t < ti.Trotter(); t++ {
		if e := ti.ReplicaEnergy(t); e < bestE {
			best, bestE = t, e
		}
	}

	return best
}

// Energy returns the classical energy of GetSolution(sys).
func Energy(sys system.System) (float64, error) {
	switch s := sys.(type) {
	case *system.ClassicalIsing:
		return s.Energy(), nil
	case *system.TransverseIsing:
		return s.ReplicaEnergy(BestReplica(s)), nil
	default:
		return 0, fmt.Errorf("Energy(%T): %w", sys, ErrUnsupportedSystem)
	}
}
