// SPDX-License-Identifier: MIT

package system

import (
	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/schedule"
)

const ctxNewClassical = "NewClassicalIsing"

// ClassicalIsing is N spins over a fixed interaction.
type ClassicalIsing struct {
	in    *graph.Interaction
	st    store
	rep   Representation
	param schedule.Parameter
}

// NewClassicalIsing copies spins and g into a new system. The active
// parameter starts at β = 1.
//
// Errors: ErrDimensionMismatch when len(spins) != g.NumSpins(),
// ErrInvalidSpin when an entry is not ±1.
// Complexity: O(N + Σ deg) naive, O(N²) matrix.
func NewClassicalIsing(spins graph.Spins, g graph.Graph, opts ...Option) (*ClassicalIsing, error) {
	cfg := gatherOptions(opts)
	replicas := []graph.Spins{spins}
	in, err := snapshot(ctxNewClassical, g, replicas)
	if err != nil {
		return nil, err
	}

	return &ClassicalIsing{
		in:    in,
		st:    newStore(cfg.rep, in, replicas),
		rep:   cfg.rep,
		param: schedule.Parameter{Beta: 1},
	}, nil
}

// Kind returns schedule.Classical.
func (c *ClassicalIsing) Kind() schedule.Kind { return schedule.Classical }

// Representation returns the storage strategy chosen at construction.
func (c *ClassicalIsing) Representation() Representation { return c.rep }

// NumSites returns N.
func (c *ClassicalIsing) NumSites() int { return c.in.NumSpins() }

// NumSpins returns N.
func (c *ClassicalIsing) NumSpins() int { return c.in.NumSpins() }

// SetParameter activates p; only p.Beta is used.
func (c *ClassicalIsing) SetParameter(p schedule.Parameter) error {
	if err := checkBeta("ClassicalIsing.SetParameter", p.Beta); err != nil {
		return err
	}
	c.param = p

	return nil
}

// Parameter returns the active control parameter.
func (c *ClassicalIsing) Parameter() schedule.Parameter { return c.param }

// DeltaEnergy returns ΔE = −2·s_i·(Σ_j J(i,j)·s_j + h(i)).
// Complexity: O(deg(i)) naive, O(N) matrix.
func (c *ClassicalIsing) DeltaEnergy(i int) float64 {
	return -2 * float64(c.st.spin(0, i)) * c.st.localField(0, i)
}

// Flip negates spin i.
func (c *ClassicalIsing) Flip(i int) { c.st.flip(0, i) }

// Spin returns s_i.
func (c *ClassicalIsing) Spin(i int) int { return c.st.spin(0, i) }

// Spins returns a copy of the current assignment.
func (c *ClassicalIsing) Spins() graph.Spins { return c.st.replica(0) }

// Energy returns E(s) of the current assignment.
func (c *ClassicalIsing) Energy() float64 { return c.st.energy(0) }

// Field returns h(i) from the interaction snapshot.
func (c *ClassicalIsing) Field(i int) float64 { return c.in.Field(i) }

// Bonds enumerates every undirected bond (i<j) of the snapshot in a fixed order.
func (c *ClassicalIsing) Bonds(fn func(i, j int, coupling float64)) { c.in.Bonds(fn) }
