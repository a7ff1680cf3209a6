// SPDX-License-Identifier: MIT

// Package model describes a binary quadratic model (BQM) over integer
// variable labels, either in Ising form (s ∈ {-1,+1}) or QUBO form
// (x ∈ {0,1}):
//
//	E = Σ_i linear[i]·v_i + Σ_{i<j} quadratic[i,j]·v_i·v_j + offset.
//
// A BQM converts between the two forms, compacts its labels to the dense
// indices 0..N-1 used by graph, and evaluates energies of samples.
package model

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MShaffar19/OpenJij/graph"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidVartype reports an unknown variable type or a sample value
	// outside the vartype's domain.
	ErrInvalidVartype = errors.New("model: invalid vartype")

	// ErrInvalidState reports a sample whose length differs from the model.
	ErrInvalidState = errors.New("model: invalid state")
)

// Vartype is the domain of every variable of a model.
type Vartype int

const (
	// Spin variables take -1 or +1.
	Spin Vartype = iota
	// Binary variables take 0 or 1.
	Binary
)

// String implements fmt.Stringer.
func (v Vartype) String() string {
	switch v {
	case Spin:
		return "SPIN"
	case Binary:
		return "BINARY"
	default:
		return fmt.Sprintf("Vartype(%d)", int(v))
	}
}

// ParseVartype accepts SPIN/ISING and BINARY/QUBO, case-insensitively.
func ParseVartype(s string) (Vartype, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SPIN", "ISING":
		return Spin, nil
	case "BINARY", "QUBO":
		return Binary, nil
	default:
		return 0, fmt.Errorf("ParseVartype(%q): %w", s, ErrInvalidVartype)
	}
}

// Linear maps a variable label to its bias.
type Linear map[int]float64

// Quadratic maps a label pair to its interaction. (i,j) and (j,i) are the
// same term; (i,i) is folded into Linear.
type Quadratic map[[2]int]float64

// BQM is an immutable binary quadratic model.
type BQM struct {
	vartype   Vartype
	linear    Linear
	quadratic Quadratic // keys normalized to i < j
	offset    float64
	indices   []int       // sorted labels
	position  map[int]int // label → dense index
	linKeys   []int       // sorted keys of linear
	quadKeys  [][2]int    // sorted keys of quadratic
}

// New builds a model of the given vartype. Duplicate pair orders are summed
// and diagonal quadratic entries are added to the linear bias.
func New(linear Linear, quadratic Quadratic, offset float64, vartype Vartype) (*BQM, error) {
	if vartype != Spin && vartype != Binary {
		return nil, fmt.Errorf("model.New: %v: %w", vartype, ErrInvalidVartype)
	}
	m := &BQM{
		vartype:   vartype,
		linear:    make(Linear, len(linear)),
		quadratic: make(Quadratic, len(quadratic)),
		offset:    offset,
	}
	for i, v := range linear {
		m.linear[i] += v
	}
	for k, v := range quadratic {
		i, j := k[0], k[1]
		if i == j {
			m.linear[i] += v
			continue
		}
		if i > j {
			i, j = j, i
		}
		m.quadratic[[2]int{i, j}] += v
	}
	m.index()

	return m, nil
}

// NewIsing builds a spin model from fields h and couplings J.
func NewIsing(h Linear, J Quadratic) (*BQM, error) { return New(h, J, 0, Spin) }

// NewQUBO builds a binary model from Q; the diagonal holds linear terms.
func NewQUBO(Q Quadratic) (*BQM, error) { return New(nil, Q, 0, Binary) }

// index collects and sorts every label that appears in the model.
func (m *BQM) index() {
	seen := make(map[int]struct{}, len(m.linear))
	for i := range m.linear {
		seen[i] = struct{}{}
	}
	for k := range m.quadratic {
		seen[k[0]] = struct{}{}
		seen[k[1]] = struct{}{}
	}
	m.indices = slices.Sorted(maps.Keys(seen))
	m.position = make(map[int]int, len(m.indices))
	for p, label := range m.indices {
		m.position[label] = p
	}
	m.linKeys = slices.Sorted(maps.Keys(m.linear))
	m.quadKeys = slices.SortedFunc(maps.Keys(m.quadratic), comparePairs)
}

func comparePairs(a, b [2]int) int {
	if a[0] != b[0] {
		return a[0] - b[0]
	}

	return a[1] - b[1]
}

// Vartype returns the variable domain.
func (m *BQM) Vartype() Vartype { return m.vartype }

// Offset returns the constant energy term.
func (m *BQM) Offset() float64 { return m.offset }

// Len returns the number of variables.
func (m *BQM) Len() int { return len(m.indices) }

// Indices returns the sorted variable labels; position k of every sample
// and graph index k refer to Indices()[k].
func (m *BQM) Indices() []int { return slices.Clone(m.indices) }

// Linear returns a copy of the linear biases.
func (m *BQM) Linear() Linear { return maps.Clone(m.linear) }

// Quadratic returns a copy of the interactions, keys normalized to i < j.
func (m *BQM) Quadratic() Quadratic { return maps.Clone(m.quadratic) }

// ToIsing returns the equivalent spin model. A spin model is returned as is.
//
// With x = (s+1)/2:
//
//	J_ij = Q_ij/4,  h_i = Q_ii/2 + Σ_j Q_ij/4,  offset += Σ_i Q_ii/2 + Σ_{i<j} Q_ij/4.
func (m *BQM) ToIsing() *BQM {
	if m.vartype == Spin {
		return m
	}
	h := make(Linear, len(m.linear))
	J := make(Quadratic, len(m.quadratic))
	offset := m.offset
	for _, i := range m.linKeys {
		q := m.linear[i]
		h[i] += q / 2
		offset += q / 2
	}
	for _, k := range m.quadKeys {
		q := m.quadratic[k]
		J[k] = q / 4
		h[k[0]] += q / 4
		h[k[1]] += q / 4
		offset += q / 4
	}
	// New only fails on an unknown vartype.
	out, _ := New(h, J, offset, Spin)

	return out
}

// ToQUBO returns the equivalent binary model. A binary model is returned as is.
//
// With s = 2x−1:
//
//	Q_ij = 4·J_ij,  Q_ii = 2·h_i − 2·Σ_j J_ij,  offset += Σ_{i<j} J_ij − Σ_i h_i.
func (m *BQM) ToQUBO() *BQM {
	if m.vartype == Binary {
		return m
	}
	lin := make(Linear, len(m.linear))
	Q := make(Quadratic, len(m.quadratic))
	offset := m.offset
	for _, i := range m.linKeys {
		h := m.linear[i]
		lin[i] += 2 * h
		offset -= h
	}
	for _, k := range m.quadKeys {
		j := m.quadratic[k]
		Q[k] = 4 * j
		lin[k[0]] -= 2 * j
		lin[k[1]] -= 2 * j
		offset += j
	}
	// New only fails on an unknown vartype.
	out, _ := New(lin, Q, offset, Binary)

	return out
}

// Energy evaluates the model on sample, ordered like Indices().
// Errors: ErrInvalidState on a length mismatch, ErrInvalidVartype on a
// value outside the vartype's domain.
func (m *BQM) Energy(sample []int) (float64, error) {
	if len(sample) != len(m.indices) {
		return 0, fmt.Errorf("BQM.Energy: got %d values, want %d: %w", len(sample), len(m.indices), ErrInvalidState)
	}
	for k, v := range sample {
		if !m.inDomain(v) {
			return 0, fmt.Errorf("BQM.Energy: value %d at %d for %v: %w", v, k, m.vartype, ErrInvalidVartype)
		}
	}
	e := m.offset
	for _, i := range m.linKeys {
		e += m.linear[i] * float64(sample[m.position[i]])
	}
	for _, k := range m.quadKeys {
		e += m.quadratic[k] * float64(sample[m.position[k[0]]]) * float64(sample[m.position[k[1]]])
	}

	return e, nil
}

func (m *BQM) inDomain(v int) bool {
	if m.vartype == Spin {
		return v == 1 || v == -1
	}

	return v == 0 || v == 1
}

// SpinsToSample converts spins of the Ising form back to this model's
// vartype: identity for Spin, (s+1)/2 for Binary.
func (m *BQM) SpinsToSample(spins graph.Spins) []int {
	out := make([]int, len(spins))
	for k, s := range spins {
		if m.vartype == Binary {
			out[k] = (s + 1) / 2
			continue
		}
		out[k] = s
	}

	return out
}

// Graph compiles the Ising form of m into a graph over dense indices.
// Entries are written in row-major upper-triangle order, so Dense and
// Sparse graphs enumerate neighbours identically. A Sparse graph gets a
// degree cap of exactly the longest adjacency list.
// Complexity: O(N + Q·log Q).
func (m *BQM) Graph(dense bool) (graph.Graph, error) {
	ising := m.ToIsing()
	n := len(ising.indices)
	if n == 0 {
		return nil, fmt.Errorf("BQM.Graph: empty model: %w", graph.ErrInvalidSize)
	}

	type entry struct {
		i, j int
		v    float64
	}
	entries := make([]entry, 0, len(ising.linear)+len(ising.quadratic))
	degree := make([]int, n)
	for label, h := range ising.linear {
		p := ising.position[label]
		entries = append(entries, entry{p, p, h})
		degree[p]++
	}
	for k, j := range ising.quadratic {
		a, b := ising.position[k[0]], ising.position[k[1]]
		entries = append(entries, entry{a, b, j})
		degree[a]++
		degree[b]++
	}
	slices.SortFunc(entries, func(x, y entry) int {
		if x.i != y.i {
			return x.i - y.i
		}

		return x.j - y.j
	})

	var g graph.Graph
	var err error
	if dense {
		g, err = graph.NewDense(n)
	} else {
		g, err = graph.NewSparse(n, graph.WithNumEdges(max(1, slices.Max(degree))))
	}
	if err != nil {
		return nil, fmt.Errorf("BQM.Graph: %w", err)
	}
	for _, e := range entries {
		if err = g.SetCoupling(e.i, e.j, e.v); err != nil {
			return nil, fmt.Errorf("BQM.Graph: %w", err)
		}
	}

	return g, nil
}

// InteractionMatrix returns the symmetric N×N Ising matrix over dense
// indices: J off the diagonal and h on it.
func (m *BQM) InteractionMatrix() *mat.SymDense {
	ising := m.ToIsing()
	n := len(ising.indices)
	out := mat.NewSymDense(max(n, 1), nil)
	for label, h := range ising.linear {
		p := ising.position[label]
		out.SetSym(p, p, h)
	}
	for k, j := range ising.quadratic {
		out.SetSym(ising.position[k[0]], ising.position[k[1]], j)
	}

	return out
}
