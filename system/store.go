// SPDX-License-Identifier: MIT

package system

import (
	"github.com/MShaffar19/OpenJij/graph"
	"gonum.org/v1/gonum/mat"
)

// store holds T replicas of N spins and evaluates local fields over them.
// A classical system is the T = 1 case.
type store interface {
	spin(t, i int) int
	flip(t, i int)
	// localField returns Σ_k J(i,k)·s_k + h(i) within replica t.
	localField(t, i int) float64
	energy(t int) float64
	replica(t int) graph.Spins
}

func newStore(rep Representation, in *graph.Interaction, replicas []graph.Spins) store {
	if rep == Matrix {
		return newMatrixStore(in, replicas)
	}

	return newNaiveStore(in, replicas)
}

// ---------- naive ----------

type naiveStore struct {
	in       *graph.Interaction
	replicas []graph.Spins
}

func newNaiveStore(in *graph.Interaction, replicas []graph.Spins) *naiveStore {
	own := make([]graph.Spins, len(replicas))
	for t, r := range replicas {
		own[t] = r.Clone()
	}

	return &naiveStore{in: in, replicas: own}
}

func (s *naiveStore) spin(t, i int) int           { return s.replicas[t][i] }
func (s *naiveStore) flip(t, i int)               { s.replicas[t][i] = -s.replicas[t][i] }
func (s *naiveStore) localField(t, i int) float64 { return s.in.LocalField(i, s.replicas[t]) }
func (s *naiveStore) energy(t int) float64        { return s.in.Energy(s.replicas[t]) }
func (s *naiveStore) replica(t int) graph.Spins   { return s.replicas[t].Clone() }

// ---------- matrix ----------

// matrixStore keeps the augmented interaction M and the spin matrix V.
// Entries are read straight from M's rows, in the snapshot's neighbour order
// with the field column last, so every sum rounds exactly as the naive path.
type matrixStore struct {
	n  int
	in *graph.Interaction
	m  *mat.Dense
	v  *mat.Dense
}

func newMatrixStore(in *graph.Interaction, replicas []graph.Spins) *matrixStore {
	return &matrixStore{
		n:  in.NumSpins(),
		in: in,
		m:  InteractionMatrix(in),
		v:  SpinMatrix(replicas),
	}
}

func (s *matrixStore) spin(t, i int) int { return int(s.v.At(i, t)) }

func (s *matrixStore) flip(t, i int) { s.v.Set(i, t, -s.v.At(i, t)) }

func (s *matrixStore) localField(t, i int) float64 {
	row := s.m.RawRowView(i)
	var lf float64
	for _, nb := range s.in.Neighbors(i) {
		lf += row[nb.Index] * s.v.At(nb.Index, t)
	}

	return lf + row[s.n]*s.v.At(s.n, t)
}

// energy walks the upper triangle of M row by row: field column first, then
// each bond from its lower endpoint.
func (s *matrixStore) energy(t int) float64 {
	var e float64
	for i := 0; i < s.n; i++ {
		row := s.m.RawRowView(i)
		si := s.v.At(i, t)
		e += row[s.n] * si
		for _, nb := range s.in.Neighbors(i) {
			if nb.Index > i {
				e += row[nb.Index] * si * s.v.At(nb.Index, t)
			}
		}
	}

	return e
}

func (s *matrixStore) replica(t int) graph.Spins {
	out := make(graph.Spins, s.n)
	for i := range out {
		out[i] = int(s.v.At(i, t))
	}

	return out
}

// InteractionMatrix returns the augmented (N+1)×(N+1) symmetric matrix of in:
// M[i][j] = J(i,j) for i != j < N, M[i][N] = M[N][i] = h(i), M[N][N] = 1 and
// a zero diagonal elsewhere.
// Complexity: O(N² + Σ deg).
func InteractionMatrix(in *graph.Interaction) *mat.Dense {
	n := in.NumSpins()
	m := mat.NewDense(n+1, n+1, nil)
	for i := 0; i < n; i++ {
		for _, nb := range in.Neighbors(i) {
			m.Set(i, nb.Index, nb.Coupling)
		}
		m.Set(i, n, in.Field(i))
		m.Set(n, i, in.Field(i))
	}
	m.Set(n, n, 1)

	return m
}

// SpinMatrix stacks replicas as the columns of an (N+1)×T matrix whose last
// row is the auxiliary unit spin.
func SpinMatrix(replicas []graph.Spins) *mat.Dense {
	n := len(replicas[0])
	v := mat.NewDense(n+1, len(replicas), nil)
	for t, r := range replicas {
		for i, s := range r {
			v.Set(i, t, float64(s))
		}
		v.Set(n, t, 1)
	}

	return v
}
