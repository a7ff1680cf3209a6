// SPDX-License-Identifier: MIT

package updater

import (
	"fmt"
	"math"

	"github.com/MShaffar19/OpenJij/prng"
	"github.com/MShaffar19/OpenJij/system"
	"github.com/MShaffar19/OpenJij/unionfind"
)

// ClusterSystem is what SwendsenWang needs beyond system.System: direct spin
// and field reads plus a deterministic bond enumeration.
// *system.ClassicalIsing implements it; transverse systems do not.
type ClusterSystem interface {
	system.System
	NumSpins() int
	Spin(i int) int
	Field(i int) float64
	Bonds(fn func(i, j int, coupling float64))
}

var _ ClusterSystem = (*system.ClassicalIsing)(nil)

// cluster decisions
const (
	undecided int8 = iota
	flipCluster
	keepCluster
)

// SwendsenWang is the cluster update for classical systems.
//
// The zero value is ready to use. It keeps scratch buffers between sweeps,
// so one value must not be shared by concurrent anneals.
type SwendsenWang struct {
	uf       *unionfind.UnionFind
	fieldSum []float64 // Σ h_i·s_i per cluster root
	decision []int8    // per cluster root
}

// Sweep performs one cluster move.
// MAIN DESCRIPTION:
//   - Bonds: for every bond (i<j) draw u and unite i,j iff u < p, where
//     p = 1 − exp(2β·J·s_i·s_j) when the bond is satisfied (J·s_i·s_j < 0)
//     and p = 0 otherwise.
//   - Clusters: visiting spins in increasing order, the first member of each
//     cluster draws u; the whole cluster flips iff u < 1/(1+exp(β·ΔE_C)),
//     ΔE_C = −2·Σ_{i∈C} h_i·s_i. With no field this is a fair coin.
//
// Errors:
//   - ErrUnsupportedSystem when sys is not a ClusterSystem.
//
// Complexity:
//   - Time O(N + B·α(N)) for B bonds, Space O(N) reused across sweeps.
func (sw *SwendsenWang) Sweep(sys system.System, rng prng.Source) error {
	cs, ok := sys.(ClusterSystem)
	if !ok {
		return fmt.Errorf("SwendsenWang.Sweep(%T): %w", sys, ErrUnsupportedSystem)
	}
	n := cs.NumSpins()
	beta := cs.Parameter().Beta
	sw.reset(n)

	// Stage 1: bond activation.
	cs.Bonds(func(i, j int, coupling float64) {
		jss := coupling * float64(cs.Spin(i)) * float64(cs.Spin(j))
		p := 0.0
		if jss < 0 {
			p = 1 - math.Exp(2*beta*jss)
		}
		if rng.Float64() < p {
			sw.uf.Unite(i, j)
		}
	})

	// Stage 2: per-cluster field energy, summed in spin order.
	for i := 0; i < n; i++ {
		sw.fieldSum[sw.uf.Find(i)] += cs.Field(i) * float64(cs.Spin(i))
	}

	// Stage 3: heat-bath flip decision per cluster, then apply.
	for i := 0; i < n; i++ {
		root := sw.uf.Find(i)
		if sw.decision[root] == undecided {
			dE := -2 * sw.fieldSum[root]
			sw.decision[root] = keepCluster
			if rng.Float64() < 1/(1+math.Exp(beta*dE)) {
				sw.decision[root] = flipCluster
			}
		}
		if sw.decision[root] == flipCluster {
			cs.Flip(i)
		}
	}

	return nil
}

// reset prepares scratch space for n spins.
func (sw *SwendsenWang) reset(n int) {
	if sw.uf == nil || sw.uf.Len() != n {
		sw.uf = unionfind.New(n)
		sw.fieldSum = make([]float64, n)
		sw.decision = make([]int8, n)

		return
	}
	sw.uf.Reset()
	clear(sw.fieldSum)
	clear(sw.decision)
}
