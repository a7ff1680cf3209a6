// SPDX-License-Identifier: MIT

package system

import (
	"fmt"
	"math"
)

// Representation selects how a System stores spins and evaluates local fields.
type Representation int

const (
	// Naive sums neighbour lists.
	Naive Representation = iota
	// Matrix folds fields into an augmented gonum matrix.
	Matrix
)

// String implements fmt.Stringer.
func (r Representation) String() string {
	switch r {
	case Naive:
		return "naive"
	case Matrix:
		return "matrix"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// CouplingFunc maps (β, effective field Γ·(1−S), replica count T) to the
// dimensionless inter-replica coupling K.
type CouplingFunc func(beta, gammaEff float64, trotter int) float64

// PathIntegralCoupling is the Suzuki-Trotter mapping
//
//	K = −½ · ln tanh(β·Γeff / T).
//
// It returns +Inf when Γeff <= 0: without a transverse field the replicas
// are rigidly locked together.
func PathIntegralCoupling(beta, gammaEff float64, trotter int) float64 {
	x := beta * gammaEff / float64(trotter)
	if x <= 0 {
		return math.Inf(1)
	}

	return -0.5 * math.Log(math.Tanh(x))
}

type config struct {
	rep      Representation
	coupling CouplingFunc
}

// Option configures a System at construction time.
type Option func(*config)

// WithRepresentation selects Naive (default) or Matrix.
// Panics on an unknown value (programmer error).
func WithRepresentation(r Representation) Option {
	if r != Naive && r != Matrix {
		panic(fmt.Sprintf("system: WithRepresentation: unknown %v", r))
	}

	return func(c *config) { c.rep = r }
}

// WithReplicaCoupling replaces PathIntegralCoupling. Classical systems
// ignore it. Panics on nil (programmer error).
func WithReplicaCoupling(fn CouplingFunc) Option {
	if fn == nil {
		panic("system: WithReplicaCoupling: nil func")
	}

	return func(c *config) { c.coupling = fn }
}

func gatherOptions(opts []Option) config {
	c := config{rep: Naive, coupling: PathIntegralCoupling}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
