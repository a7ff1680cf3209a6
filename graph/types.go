// SPDX-License-Identifier: MIT

package graph

import "fmt"

// Spins is a spin assignment; every entry is -1 or +1.
type Spins []int

// Clone returns an independent copy of s.
func (s Spins) Clone() Spins {
	out := make(Spins, len(s))
	copy(out, s)

	return out
}

// Graph is the capability set shared by Dense and Sparse.
//
// Index pairs are normalized internally, so Coupling(i,j) and Coupling(j,i)
// address the same cell, and Coupling(i,i) is the field of i.
type Graph interface {
	// NumSpins returns N, fixed at construction.
	NumSpins() int

	// ErrCheck reports whether index and capacity checks are enabled.
	ErrCheck() bool

	// Coupling returns J(i,j); absent entries read as 0.
	Coupling(i, j int) (float64, error)

	// SetCoupling writes J(i,j). For i == j this writes the field of i.
	SetCoupling(i, j int, v float64) error

	// Field returns h(i).
	Field(i int) (float64, error)

	// SetField writes h(i).
	SetField(i int, v float64) error

	// Adjacent lists the nodes stored next to i, in storage order.
	// The list includes i itself when i carries a field entry.
	Adjacent(i int) ([]int, error)

	// Energy evaluates E(s), counting every unordered pair exactly once.
	Energy(spins Spins) (float64, error)
}

// Compile-time assertions.
var (
	_ Graph = (*Dense)(nil)
	_ Graph = (*Sparse)(nil)
)

// Default option values.
const (
	// DefaultErrCheck enables index and capacity validation.
	DefaultErrCheck = true
)

// config collects construction options for both storage models.
type config struct {
	errCheck bool
	numEdges int // 0 means "use NumSpins"
}

// Option configures a Dense or Sparse graph at construction time.
type Option func(*config)

// WithErrCheck toggles index and capacity validation. With checks disabled
// out-of-range access is undefined and the degree cap is not enforced.
func WithErrCheck(enabled bool) Option {
	return func(c *config) { c.errCheck = enabled }
}

// WithNumEdges sets the per-node degree cap of a Sparse graph. The effective
// cap is min(k, NumSpins). Dense graphs ignore it.
// Panics if k <= 0 (programmer error).
func WithNumEdges(k int) Option {
	if k <= 0 {
		panic(fmt.Sprintf("graph: WithNumEdges(%d): cap must be > 0", k))
	}

	return func(c *config) { c.numEdges = k }
}

func gatherOptions(opts []Option) config {
	c := config{errCheck: DefaultErrCheck}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// checkSpins validates the length of a spin vector against n.
func checkSpins(method string, n int, spins Spins) error {
	if len(spins) != n {
		return fmt.Errorf("%s: got %d spins, want %d: %w", method, len(spins), n, ErrInvalidSize)
	}

	return nil
}
