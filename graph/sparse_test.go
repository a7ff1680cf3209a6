package graph_test

import (
	"testing"

	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/prng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(xs []int) int {
	total := 0
	for _, x := range xs {
		total += x
	}

	return total
}

// TestSparse_OffDiagonalOnly registers every i<j pair under cap N-1 and
// checks values, symmetry and adjacency index sums.
func TestSparse_OffDiagonalOnly(t *testing.T) {
	t.Parallel()
	s, err := graph.NewSparse(bigN, graph.WithNumEdges(bigN-1))
	require.NoError(t, err)

	rng := prng.New(1234)
	for i := 0; i < bigN; i++ {
		for j := i + 1; j < bigN; j++ {
			require.NoError(t, s.SetCoupling(i, j, uniform(rng)))
		}
	}

	rng = prng.New(1234)
	for i := 0; i < bigN; i++ {
		for j := i + 1; j < bigN; j++ {
			want := uniform(rng)
			got, err := s.Coupling(i, j)
			require.NoError(t, err)
			require.Equal(t, want, got)
			got, err = s.Coupling(j, i)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}

	for i := 0; i < bigN; i++ {
		adj, err := s.Adjacent(i)
		require.NoError(t, err)
		// every node except i itself
		require.Equal(t, bigN*(bigN-1)/2-i, sum(adj), "node %d", i)
	}
	assert.Equal(t, bigN-1, s.NumEdges())
}

// TestSparse_WithFields writes through the reversed index order, diagonal
// included, so every node ends up adjacent to all N nodes.
func TestSparse_WithFields(t *testing.T) {
	t.Parallel()
	s, err := graph.NewSparse(bigN, graph.WithNumEdges(bigN))
	require.NoError(t, err)

	rng := prng.New(1234)
	for i := 0; i < bigN; i++ {
		for j := i; j < bigN; j++ {
			require.NoError(t, s.SetCoupling(j, i, uniform(rng)))
		}
	}

	rng = prng.New(1234)
	for i := 0; i < bigN; i++ {
		for j := i; j < bigN; j++ {
			got, err := s.Coupling(i, j)
			require.NoError(t, err)
			require.Equal(t, uniform(rng), got)
		}
	}

	for i := 0; i < bigN; i++ {
		adj, err := s.Adjacent(i)
		require.NoError(t, err)
		require.Equal(t, bigN*(bigN-1)/2, sum(adj), "node %d", i)
	}
	assert.Equal(t, bigN, s.NumEdges())
}

// TestSparse_DefaultCapIsNumSpins checks the cap defaults and clamping.
func TestSparse_DefaultCapIsNumSpins(t *testing.T) {
	t.Parallel()
	s, err := graph.NewSparse(5)
	require.NoError(t, err)
	assert.Equal(t, 5, s.NumEdges())

	s, err = graph.NewSparse(5, graph.WithNumEdges(50))
	require.NoError(t, err)
	assert.Equal(t, 5, s.NumEdges())

	assert.Panics(t, func() { graph.WithNumEdges(0) })
}

// TestSparse_DegreeCap registers a (K+1)-th neighbour on one node.
func TestSparse_DegreeCap(t *testing.T) {
	t.Parallel()
	s, err := graph.NewSparse(6, graph.WithNumEdges(2))
	require.NoError(t, err)

	require.NoError(t, s.SetCoupling(0, 1, 1))
	require.NoError(t, s.SetCoupling(0, 2, 1))
	// rewriting an existing edge never counts against the cap
	require.NoError(t, s.SetCoupling(2, 0, -1))

	err = s.SetCoupling(0, 3, 1)
	require.ErrorIs(t, err, graph.ErrEdgeCapacityExceeded)

	// the failed call left no half-registered edge behind
	adj, err := s.Adjacent(3)
	require.NoError(t, err)
	assert.Empty(t, adj)

	// the field entry occupies a slot too
	err = s.SetField(0, 1)
	require.ErrorIs(t, err, graph.ErrEdgeCapacityExceeded)

	// a full far endpoint also rejects
	err = s.SetCoupling(4, 0, 1)
	require.ErrorIs(t, err, graph.ErrEdgeCapacityExceeded)
	adj, err = s.Adjacent(4)
	require.NoError(t, err)
	assert.Empty(t, adj)
}

// TestSparse_DegreeCapDisabled skips the cap entirely.
func TestSparse_DegreeCapDisabled(t *testing.T) {
	t.Parallel()
	s, err := graph.NewSparse(6, graph.WithNumEdges(1), graph.WithErrCheck(false))
	require.NoError(t, err)

	for j := 1; j < 6; j++ {
		require.NoError(t, s.SetCoupling(0, j, 1))
	}
	adj, err := s.Adjacent(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, adj)
}

// TestSparse_AbsentEntriesReadZero covers lazy creation.
func TestSparse_AbsentEntriesReadZero(t *testing.T) {
	t.Parallel()
	s, err := graph.NewSparse(3)
	require.NoError(t, err)

	v, err := s.Coupling(0, 2)
	require.NoError(t, err)
	assert.Zero(t, v)
	h, err := s.Field(1)
	require.NoError(t, err)
	assert.Zero(t, h)

	adj, err := s.Adjacent(0)
	require.NoError(t, err)
	assert.Empty(t, adj, "reads must not register edges")

	require.NoError(t, s.SetField(1, 4))
	adj, err = s.Adjacent(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, adj)
}

// TestSparse_RangeErrors mirrors the Dense range checks.
func TestSparse_RangeErrors(t *testing.T) {
	t.Parallel()
	_, err := graph.NewSparse(-1)
	require.ErrorIs(t, err, graph.ErrInvalidSize)

	s, err := graph.NewSparse(3)
	require.NoError(t, err)
	require.ErrorIs(t, s.SetCoupling(3, 0, 1), graph.ErrOutOfRange)
	_, err = s.Coupling(0, 3)
	require.ErrorIs(t, err, graph.ErrOutOfRange)
	_, err = s.Adjacent(-1)
	require.ErrorIs(t, err, graph.ErrOutOfRange)
	_, err = s.Energy(graph.Spins{1})
	require.ErrorIs(t, err, graph.ErrInvalidSize)
}

// TestNewSparseFromDense copies nonzero entries and tightens the cap.
func TestNewSparseFromDense(t *testing.T) {
	t.Parallel()
	d, err := graph.NewDense(4)
	require.NoError(t, err)
	require.NoError(t, d.SetCoupling(2, 3, 4))
	require.NoError(t, d.SetCoupling(1, 0, -2))
	require.NoError(t, d.SetField(1, 5))
	require.NoError(t, d.SetField(2, 10))

	s, err := graph.NewSparseFromDense(d)
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumEdges(), "nodes 1 and 2 carry a neighbour plus a field")

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want, err := d.Coupling(i, j)
			require.NoError(t, err)
			got, err := s.Coupling(i, j)
			require.NoError(t, err)
			require.Equal(t, want, got, "J(%d,%d)", i, j)
		}
	}

	adj, err := s.Adjacent(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, adj)
	adj, err = s.Adjacent(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, adj)
}
