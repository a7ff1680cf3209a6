// SPDX-License-Identifier: MIT

// Package fixture provides the reference problem instances shared by the
// annealing tests.
package fixture

import (
	"github.com/MShaffar19/OpenJij/graph"
)

// NumSpins is the size of every instance below.
const NumSpins = 8

// frustrated lists the upper triangle (diagonal included) of an 8-spin
// instance with a unique ground state, in row-major write order.
var frustrated = []struct {
	i, j int
	v    float64
}{
	{0, 0, -0.30}, {0, 1, -1.16}, {0, 2, 0.05}, {0, 3, 2.08}, {0, 4, 0.38}, {0, 5, 2.05}, {0, 6, -2.31}, {0, 7, -1.19},
	{1, 1, -0.01}, {1, 2, -1.25}, {1, 3, -2.57}, {1, 4, -0.90}, {1, 5, -0.90}, {1, 6, -2.27}, {1, 7, -1.04},
	{2, 2, -0.98}, {2, 3, 2.65}, {2, 4, 2.45}, {2, 5, 2.65}, {2, 6, 2.87}, {2, 7, 2.30},
	{3, 3, -2.70}, {3, 4, 1.82}, {3, 5, -0.91}, {3, 6, 1.99}, {3, 7, -0.16},
	{4, 4, 1.51}, {4, 5, 2.79}, {4, 6, -2.87}, {4, 7, 2.55},
	{5, 5, -0.67}, {5, 6, -2.75}, {5, 7, -2.07},
	{6, 6, 1.41}, {6, 7, -2.27},
	{7, 7, 1.08},
}

// GroundState is the unique minimiser of Frustrated.
func GroundState() graph.Spins { return graph.Spins{-1, -1, 1, 1, -1, -1, -1, -1} }

// GroundEnergy is E(GroundState()).
const GroundEnergy = -27.33

// Frustrated writes the frustrated instance into g, which must hold at
// least NumSpins spins.
func Frustrated(g graph.Graph) error {
	for _, e := range frustrated {
		if err := g.SetCoupling(e.i, e.j, e.v); err != nil {
			return err
		}
	}

	return nil
}

// Ferromagnet writes uniform couplings −1/N on every pair and field −1 on
// every spin; the all-up assignment is its ground state.
func Ferromagnet(g graph.Graph) error {
	n := g.NumSpins()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := -1.0 / float64(n)
			if i == j {
				v = -1
			}
			if err := g.SetCoupling(i, j, v); err != nil {
				return err
			}
		}
	}

	return nil
}

// Integer writes small integer couplings and fields, suitable for exact
// float comparisons, drawn from next (called once per upper-triangle cell).
func Integer(g graph.Graph, next func() int) error {
	n := g.NumSpins()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if err := g.SetCoupling(i, j, float64(next())); err != nil {
				return err
			}
		}
	}

	return nil
}
