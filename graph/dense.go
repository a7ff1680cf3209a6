// SPDX-License-Identifier: MIT

// Dense storage: a symmetric row-major N×N table whose diagonal holds fields.
//
// Complexity quicksheet:
//   - NewDense: O(N²) zero-init; Coupling/SetCoupling: O(1); Adjacent: O(N);
//     Energy: O(N²).

package graph

import "fmt"

// error context tags
const (
	ctxDenseCoupling    = "Dense.Coupling"
	ctxDenseSetCoupling = "Dense.SetCoupling"
	ctxDenseAdjacent    = "Dense.Adjacent"
	ctxDenseEnergy      = "Dense.Energy"
)

// Dense is a fully connected interaction graph.
//   - n is the number of spins.
//   - data is a flat buffer of length n*n; both (i,j) and (j,i) are written
//     on every set, so reads never need to normalize.
type Dense struct {
	n        int
	data     []float64
	errCheck bool
}

// NewDense allocates an all-zero Dense graph over numSpins spins.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation.
//
// Implementation:
//   - Stage 1: validate numSpins > 0; else ErrInvalidSize.
//   - Stage 2: gather options (WithNumEdges is ignored).
//   - Stage 3: allocate the zero-filled n×n buffer.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func NewDense(numSpins int, opts ...Option) (*Dense, error) {
	if numSpins <= 0 {
		return nil, fmt.Errorf("NewDense(%d): %w", numSpins, ErrInvalidSize)
	}
	cfg := gatherOptions(opts)

	return &Dense{
		n:        numSpins,
		data:     make([]float64, numSpins*numSpins),
		errCheck: cfg.errCheck,
	}, nil
}

// NumSpins returns N.
func (d *Dense) NumSpins() int { return d.n }

// ErrCheck reports whether index validation is enabled.
func (d *Dense) ErrCheck() bool { return d.errCheck }

// Coupling returns J(i,j).
func (d *Dense) Coupling(i, j int) (float64, error) {
	if err := d.check(ctxDenseCoupling, i, j); err != nil {
		return 0, err
	}

	return d.data[i*d.n+j], nil
}

// SetCoupling writes v into both (i,j) and (j,i).
func (d *Dense) SetCoupling(i, j int, v float64) error {
	if err := d.check(ctxDenseSetCoupling, i, j); err != nil {
		return err
	}
	d.data[i*d.n+j] = v
	d.data[j*d.n+i] = v

	return nil
}

// Field returns h(i), stored at (i,i).
func (d *Dense) Field(i int) (float64, error) { return d.Coupling(i, i) }

// SetField writes h(i).
func (d *Dense) SetField(i int, v float64) error { return d.SetCoupling(i, i, v) }

// Adjacent returns every node 0..N-1; i itself is included because its
// field lives at (i,i).
func (d *Dense) Adjacent(i int) ([]int, error) {
	if err := d.check(ctxDenseAdjacent, i, i); err != nil {
		return nil, err
	}
	out := make([]int, d.n)
	for k := range out {
		out[k] = k
	}

	return out, nil
}

// Energy evaluates E(s) over the upper triangle (i<=j): J(i,j)·s_i·s_j off
// the diagonal and h(i)·s_i on it.
// Complexity: O(N²).
func (d *Dense) Energy(spins Spins) (float64, error) {
	if err := checkSpins(ctxDenseEnergy, d.n, spins); err != nil {
		return 0, err
	}
	var e float64
	for i := 0; i < d.n; i++ {
		row := d.data[i*d.n : (i+1)*d.n]
		si := float64(spins[i])
		e += row[i] * si
		for j := i + 1; j < d.n; j++ {
			e += row[j] * si * float64(spins[j])
		}
	}

	return e, nil
}

// check validates both coordinates when error checking is enabled.
func (d *Dense) check(method string, i, j int) error {
	if !d.errCheck {
		return nil
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return indexErrorf(method, i, j, ErrOutOfRange)
	}

	return nil
}
