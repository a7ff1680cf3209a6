// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/MShaffar19/OpenJij/prng"
)

// Neighbor is one off-diagonal entry of a node's adjacency.
type Neighbor struct {
	Index    int
	Coupling float64
}

// Interaction is an immutable, compact snapshot of a Graph: the field of
// every node plus its off-diagonal neighbours in the Graph's storage order.
//
// Systems copy the Graph into an Interaction once, at construction, so later
// mutations of the Graph never reach a running anneal.
type Interaction struct {
	n         int
	fields    []float64
	neighbors [][]Neighbor
}

// NewInteraction snapshots g.
// MAIN DESCRIPTION:
//   - Walk Adjacent(i) for every node; the self entry becomes fields[i],
//     every other entry becomes a Neighbor carrying J(i,k).
//
// Determinism:
//   - Neighbour order equals g.Adjacent(i) order: index order for Dense,
//     registration order for Sparse.
//
// Complexity:
//   - Time O(Σ deg), Space O(Σ deg).
func NewInteraction(g Graph) (*Interaction, error) {
	n := g.NumSpins()
	snap := &Interaction{
		n:         n,
		fields:    make([]float64, n),
		neighbors: make([][]Neighbor, n),
	}
	for i := 0; i < n; i++ {
		adj, err := g.Adjacent(i)
		if err != nil {
			return nil, fmt.Errorf("NewInteraction: %w", err)
		}
		row := make([]Neighbor, 0, len(adj))
		for _, k := range adj {
			v, err := g.Coupling(i, k)
			if err != nil {
				return nil, fmt.Errorf("NewInteraction: %w", err)
			}
			if k == i {
				snap.fields[i] = v
				continue
			}
			row = append(row, Neighbor{Index: k, Coupling: v})
		}
		snap.neighbors[i] = row
	}

	return snap, nil
}

// NumSpins returns N.
func (in *Interaction) NumSpins() int { return in.n }

// Field returns h(i).
func (in *Interaction) Field(i int) float64 { return in.fields[i] }

// Neighbors returns the off-diagonal neighbours of i. The slice is shared
// and must not be modified.
func (in *Interaction) Neighbors(i int) []Neighbor { return in.neighbors[i] }

// LocalField returns Σ_k J(i,k)·s_k + h(i), summing neighbours in storage
// order and adding the field last.
// Complexity: O(deg(i)).
func (in *Interaction) LocalField(i int, spins Spins) float64 {
	var lf float64
	for _, nb := range in.neighbors[i] {
		lf += nb.Coupling * float64(spins[nb.Index])
	}

	return lf + in.fields[i]
}

// Energy evaluates E(s), visiting every bond once (from its lower endpoint).
// Complexity: O(Σ deg).
func (in *Interaction) Energy(spins Spins) float64 {
	var e float64
	for i := 0; i < in.n; i++ {
		si := float64(spins[i])
		e += in.fields[i] * si
		for _, nb := range in.neighbors[i] {
			if nb.Index > i {
				e += nb.Coupling * si * float64(spins[nb.Index])
			}
		}
	}

	return e
}

// Bonds calls fn once per undirected bond (i<j), ordered by i and then by
// i's neighbour order.
func (in *Interaction) Bonds(fn func(i, j int, coupling float64)) {
	for i := 0; i < in.n; i++ {
		for _, nb := range in.neighbors[i] {
			if nb.Index > i {
				fn(i, nb.Index, nb.Coupling)
			}
		}
	}
}

// RandomSpins draws a uniformly random assignment of n spins, one
// rng.IntN(2) per index in increasing order.
// Complexity: O(n).
func RandomSpins(n int, rng prng.Source) Spins {
	spins := make(Spins, n)
	for i := range spins {
		spins[i] = 2*rng.IntN(2) - 1
	}

	return spins
}
