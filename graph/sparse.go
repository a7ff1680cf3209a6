// SPDX-License-Identifier: MIT

// Sparse storage: per-node adjacency lists plus a pair-keyed coupling map.
//
// Invariants:
//   - adjacency is symmetric: j ∈ adj[i] ⇔ i ∈ adj[j];
//   - a pair is present in values iff it is registered in adjacency;
//   - with error checking on, len(adj[i]) <= numEdges for every i.
//
// Complexity quicksheet:
//   - SetCoupling: O(1) average (map probe + two appends);
//   - Coupling: O(1) average; Adjacent: O(deg); Energy: O(Σ deg).

package graph

import "fmt"

// error context tags
const (
	ctxSparseCoupling    = "Sparse.Coupling"
	ctxSparseSetCoupling = "Sparse.SetCoupling"
	ctxSparseAdjacent    = "Sparse.Adjacent"
	ctxSparseEnergy      = "Sparse.Energy"
)

// pair is a normalized (min,max) index pair.
type pair struct{ lo, hi int }

func makePair(i, j int) pair {
	if i > j {
		i, j = j, i
	}

	return pair{lo: i, hi: j}
}

// Sparse is a bounded-degree interaction graph.
type Sparse struct {
	n        int
	numEdges int
	errCheck bool
	adj      [][]int
	values   map[pair]float64
}

// NewSparse allocates an empty Sparse graph over numSpins spins.
// The degree cap is min(WithNumEdges, numSpins) and defaults to numSpins.
// Complexity: O(N).
func NewSparse(numSpins int, opts ...Option) (*Sparse, error) {
	if numSpins <= 0 {
		return nil, fmt.Errorf("NewSparse(%d): %w", numSpins, ErrInvalidSize)
	}
	cfg := gatherOptions(opts)
	numEdges := numSpins
	if cfg.numEdges > 0 && cfg.numEdges < numSpins {
		numEdges = cfg.numEdges
	}

	return &Sparse{
		n:        numSpins,
		numEdges: numEdges,
		errCheck: cfg.errCheck,
		adj:      make([][]int, numSpins),
		values:   make(map[pair]float64),
	}, nil
}

// NewSparseFromDense copies every nonzero coupling and field of d (scanning
// i<=j in row order), then tightens the degree cap to the longest adjacency
// list observed. The error-check mode is inherited from d.
// Complexity: O(N²).
func NewSparseFromDense(d *Dense) (*Sparse, error) {
	s, err := NewSparse(d.n, WithErrCheck(d.errCheck))
	if err != nil {
		return nil, err
	}
	for i := 0; i < d.n; i++ {
		for j := i; j < d.n; j++ {
			v := d.data[i*d.n+j]
			if v == 0 {
				continue
			}
			if err = s.SetCoupling(i, j, v); err != nil {
				return nil, fmt.Errorf("NewSparseFromDense: %w", err)
			}
		}
	}

	longest := 0
	for _, nodes := range s.adj {
		longest = max(longest, len(nodes))
	}
	s.numEdges = longest

	return s, nil
}

// NumSpins returns N.
func (s *Sparse) NumSpins() int { return s.n }

// NumEdges returns the per-node degree cap.
func (s *Sparse) NumEdges() int { return s.numEdges }

// ErrCheck reports whether index and capacity validation is enabled.
func (s *Sparse) ErrCheck() bool { return s.errCheck }

// Coupling returns J(i,j), or 0 when the pair was never written.
func (s *Sparse) Coupling(i, j int) (float64, error) {
	if err := s.checkRange(ctxSparseCoupling, i, j); err != nil {
		return 0, err
	}

	return s.values[makePair(i, j)], nil
}

// SetCoupling writes J(i,j), registering the edge on first write.
// MAIN DESCRIPTION:
//   - i == j is the field path: it registers the self entry of i.
//   - i != j appends j to adj[i] and i to adj[j] in one call.
//
// Implementation:
//   - Stage 1: range check both endpoints.
//   - Stage 2: if the pair is new, check the cap of every endpoint that
//     grows BEFORE touching any list, so a failure never leaves a
//     half-registered edge behind.
//   - Stage 3: append and store the value.
//
// Errors:
//   - ErrOutOfRange, ErrEdgeCapacityExceeded (error checking only).
//
// Complexity:
//   - Time O(1) average, Space O(1) amortized.
func (s *Sparse) SetCoupling(i, j int, v float64) error {
	if err := s.checkRange(ctxSparseSetCoupling, i, j); err != nil {
		return err
	}
	p := makePair(i, j)
	if _, ok := s.values[p]; !ok {
		if s.errCheck {
			if len(s.adj[i]) >= s.numEdges || (i != j && len(s.adj[j]) >= s.numEdges) {
				return indexErrorf(ctxSparseSetCoupling, i, j, ErrEdgeCapacityExceeded)
			}
		}
		s.adj[i] = append(s.adj[i], j)
		if i != j {
			s.adj[j] = append(s.adj[j], i)
		}
	}
	s.values[p] = v

	return nil
}

// Field returns h(i), or 0 when no field was written.
func (s *Sparse) Field(i int) (float64, error) { return s.Coupling(i, i) }

// SetField writes h(i) and registers the self entry of i.
func (s *Sparse) SetField(i int, v float64) error { return s.SetCoupling(i, i, v) }

// Adjacent returns a copy of i's adjacency list in registration order.
func (s *Sparse) Adjacent(i int) ([]int, error) {
	if err := s.checkRange(ctxSparseAdjacent, i, i); err != nil {
		return nil, err
	}
	out := make([]int, len(s.adj[i]))
	copy(out, s.adj[i])

	return out, nil
}

// Energy walks every adjacency list: ½·J(i,k)·s_i·s_k for k != i (each pair
// is seen from both ends) and h(i)·s_i for the self entry.
// Complexity: O(Σ deg).
func (s *Sparse) Energy(spins Spins) (float64, error) {
	if err := checkSpins(ctxSparseEnergy, s.n, spins); err != nil {
		return 0, err
	}
	var e float64
	for i, nodes := range s.adj {
		si := float64(spins[i])
		for _, k := range nodes {
			if k == i {
				e += s.values[pair{lo: i, hi: i}] * si
				continue
			}
			e += 0.5 * s.values[makePair(i, k)] * si * float64(spins[k])
		}
	}

	return e, nil
}

func (s *Sparse) checkRange(method string, i, j int) error {
	if !s.errCheck {
		return nil
	}
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return indexErrorf(method, i, j, ErrOutOfRange)
	}

	return nil
}
