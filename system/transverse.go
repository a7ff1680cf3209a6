// SPDX-License-Identifier: MIT

package system

import (
	"fmt"
	"math"

	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/schedule"
)

const ctxNewTransverse = "NewTransverseIsing"

// TransverseIsing is the Suzuki-Trotter image of a transverse-field Ising
// model: T classical replicas on a ring, coupled site by site.
type TransverseIsing struct {
	in       *graph.Interaction
	st       store
	rep      Representation
	n        int
	trotter  int
	gamma    float64
	coupling CouplingFunc

	param schedule.Parameter
	k     float64 // inter-replica coupling K for param
	coef  float64 // 2K/β, cached for DeltaEnergy
}

// NewTransverseIsing copies replicas and g into a new system with transverse
// field coefficient gamma. The active parameter starts at β = 1, S = 0.
// MAIN DESCRIPTION:
//   - Validates T >= 1, gamma >= 0 (finite), equal replica lengths and ±1
//     spins, then snapshots g once for all replicas.
//
// Errors:
//   - ErrInvalidParameter, ErrDimensionMismatch, ErrInvalidSpin.
//
// Complexity:
//   - Time O(T·N + Σ deg) naive, O(N² + T·N) matrix.
func NewTransverseIsing(replicas []graph.Spins, g graph.Graph, gamma float64, opts ...Option) (*TransverseIsing, error) {
	if len(replicas) < 1 {
		return nil, fmt.Errorf("%s: no replicas: %w", ctxNewTransverse, ErrInvalidParameter)
	}
	if gamma < 0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
		return nil, fmt.Errorf("%s: gamma %g: %w", ctxNewTransverse, gamma, ErrInvalidParameter)
	}
	cfg := gatherOptions(opts)
	in, err := snapshot(ctxNewTransverse, g, replicas)
	if err != nil {
		return nil, err
	}

	ti := &TransverseIsing{
		in:       in,
		st:       newStore(cfg.rep, in, replicas),
		rep:      cfg.rep,
		n:        in.NumSpins(),
		trotter:  len(replicas),
		gamma:    gamma,
		coupling: cfg.coupling,
	}
	if err = ti.SetParameter(schedule.Parameter{Beta: 1}); err != nil {
		return nil, err
	}

	return ti, nil
}

// Kind returns schedule.TransverseField.
func (ti *TransverseIsing) Kind() schedule.Kind { return schedule.TransverseField }

// Representation returns the storage strategy chosen at construction.
func (ti *TransverseIsing) Representation() Representation { return ti.rep }

// NumSites returns T·N.
func (ti *TransverseIsing) NumSites() int { return ti.trotter * ti.n }

// NumSpins returns N.
func (ti *TransverseIsing) NumSpins() int { return ti.n }

// Trotter returns the replica count T.
func (ti *TransverseIsing) Trotter() int { return ti.trotter }

// Gamma returns the transverse field coefficient Γ.
func (ti *TransverseIsing) Gamma() float64 { return ti.gamma }

// ReplicaCoupling returns K for the active parameter.
func (ti *TransverseIsing) ReplicaCoupling() float64 { return ti.k }

// SetParameter activates p and recomputes K = coupling(β, Γ·(1−S), T).
// Errors: ErrInvalidParameter when β <= 0 or S is outside [0,1].
func (ti *TransverseIsing) SetParameter(p schedule.Parameter) error {
	const method = "TransverseIsing.SetParameter"
	if err := checkBeta(method, p.Beta); err != nil {
		return err
	}
	if !(p.S >= 0 && p.S <= 1) {
		return fmt.Errorf("%s: s %g: %w", method, p.S, ErrInvalidParameter)
	}
	ti.param = p
	ti.k = ti.coupling(p.Beta, ti.gamma*(1-p.S), ti.trotter)
	ti.coef = 2 * ti.k / p.Beta

	return nil
}

// Parameter returns the active control parameter.
func (ti *TransverseIsing) Parameter() schedule.Parameter { return ti.param }

// DeltaEnergy returns the cost of flipping σ_i^t, site = t·N + i:
//
//	(S/T)·(−2·σ·lf) + (2K/β)·σ·(σ_prev + σ_next)
//
// The replica term is skipped for T = 1 and whenever the ring neighbours
// cancel, which also keeps an infinite K from producing 0·Inf.
// Complexity: O(deg(i)) naive, O(N) matrix.
func (ti *TransverseIsing) DeltaEnergy(site int) float64 {
	t, i := site/ti.n, site%ti.n
	sigma := ti.st.spin(t, i)
	dE := (ti.param.S / float64(ti.trotter)) * (-2 * float64(sigma) * ti.st.localField(t, i))
	if ti.trotter > 1 {
		prev := (t + ti.trotter - 1) % ti.trotter
		next := (t + 1) % ti.trotter
		if nb := ti.st.spin(prev, i) + ti.st.spin(next, i); nb != 0 {
			dE += ti.coef * float64(sigma) * float64(nb)
		}
	}

	return dE
}

// Flip negates σ_i^t, site = t·N + i.
func (ti *TransverseIsing) Flip(site int) { ti.st.flip(site/ti.n, site%ti.n) }

// Replica returns a copy of replica t.
func (ti *TransverseIsing) Replica(t int) graph.Spins { return ti.st.replica(t) }

// Replicas returns copies of every replica in ring order.
func (ti *TransverseIsing) Replicas() []graph.Spins {
	out := make([]graph.Spins, ti.trotter)
	for t := range out {
		out[t] = ti.st.replica(t)
	}

	return out
}

// ReplicaEnergy returns the classical energy E(σ^t) of replica t.
func (ti *TransverseIsing) ReplicaEnergy(t int) float64 { return ti.st.energy(t) }
