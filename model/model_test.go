package model_test

import (
	"testing"

	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// allSamples enumerates every assignment of n variables over domain.
func allSamples(n int, domain [2]int) [][]int {
	out := [][]int{}
	for mask := 0; mask < 1<<n; mask++ {
		s := make([]int, n)
		for k := range s {
			s[k] = domain[(mask>>k)&1]
		}
		out = append(out, s)
	}

	return out
}

func TestParseVartype(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]model.Vartype{
		"SPIN": model.Spin, "ising": model.Spin, " binary ": model.Binary, "QUBO": model.Binary,
	} {
		got, err := model.ParseVartype(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := model.ParseVartype("ternary")
	require.ErrorIs(t, err, model.ErrInvalidVartype)

	assert.Equal(t, "SPIN", model.Spin.String())
	assert.Equal(t, "BINARY", model.Binary.String())
}

func TestNew_NormalizesKeys(t *testing.T) {
	t.Parallel()
	m, err := model.New(model.Linear{5: 1}, model.Quadratic{{3, 1}: -1, {1, 3}: -2, {5, 5}: 0.5}, 2, model.Spin)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 5}, m.Indices())
	assert.Equal(t, model.Quadratic{{1, 3}: -3}, m.Quadratic())
	assert.Equal(t, model.Linear{5: 1.5}, m.Linear())
	assert.Equal(t, 2.0, m.Offset())
	assert.Equal(t, 3, m.Len())

	_, err = model.New(nil, nil, 0, model.Vartype(4))
	require.ErrorIs(t, err, model.ErrInvalidVartype)
}

func TestInteractionMatrix(t *testing.T) {
	t.Parallel()
	m, err := model.NewIsing(model.Linear{}, model.Quadratic{{0, 1}: -1, {1, 2}: -3})
	require.NoError(t, err)

	want := mat.NewSymDense(3, []float64{
		0, -1, 0,
		-1, 0, -3,
		0, -3, 0,
	})
	require.True(t, mat.Equal(want, m.InteractionMatrix()))
}

// TestToIsing_PreservesEnergy checks every assignment of a QUBO against its
// Ising image.
func TestToIsing_PreservesEnergy(t *testing.T) {
	t.Parallel()
	q, err := model.NewQUBO(model.Quadratic{
		{0, 0}: 1, {1, 1}: -2, {2, 2}: 0.5,
		{0, 1}: -1, {1, 2}: 3, {0, 2}: 0.25,
	})
	require.NoError(t, err)
	ising := q.ToIsing()
	assert.Equal(t, model.Spin, ising.Vartype())
	assert.Same(t, ising, ising.ToIsing())

	for _, x := range allSamples(3, [2]int{0, 1}) {
		s := make([]int, len(x))
		for k, v := range x {
			s[k] = 2*v - 1
		}
		eq, err := q.Energy(x)
		require.NoError(t, err)
		es, err := ising.Energy(s)
		require.NoError(t, err)
		require.InDelta(t, eq, es, 1e-12, "x=%v", x)
		assert.Equal(t, x, q.SpinsToSample(s))
	}
}

// TestToQUBO_RoundTrip maps Ising → QUBO → Ising and compares energies.
func TestToQUBO_RoundTrip(t *testing.T) {
	t.Parallel()
	m, err := model.NewIsing(model.Linear{0: 1, 2: -0.5}, model.Quadratic{{0, 1}: -1, {1, 2}: 2})
	require.NoError(t, err)
	q := m.ToQUBO()
	back := q.ToIsing()

	for _, s := range allSamples(3, [2]int{-1, 1}) {
		e1, err := m.Energy(s)
		require.NoError(t, err)
		x := make([]int, 3)
		for k, v := range s {
			x[k] = (v + 1) / 2
		}
		e2, err := q.Energy(x)
		require.NoError(t, err)
		e3, err := back.Energy(s)
		require.NoError(t, err)
		require.InDelta(t, e1, e2, 1e-12)
		require.InDelta(t, e1, e3, 1e-12)
	}
}

func TestEnergy_Errors(t *testing.T) {
	t.Parallel()
	m, err := model.NewIsing(model.Linear{0: 1}, model.Quadratic{{0, 1}: -1})
	require.NoError(t, err)

	_, err = m.Energy([]int{1})
	require.ErrorIs(t, err, model.ErrInvalidState)
	_, err = m.Energy([]int{1, 0})
	require.ErrorIs(t, err, model.ErrInvalidVartype)

	q, err := model.NewQUBO(model.Quadratic{{0, 1}: 1})
	require.NoError(t, err)
	_, err = q.Energy([]int{1, -1})
	require.ErrorIs(t, err, model.ErrInvalidVartype)
}

// TestGraph compiles sparse labels into dense and sparse graphs.
func TestGraph(t *testing.T) {
	t.Parallel()
	m, err := model.NewIsing(model.Linear{10: 1, 30: 1}, model.Quadratic{{10, 20}: -1, {30, 20}: -1})
	require.NoError(t, err)

	for _, dense := range []bool{true, false} {
		g, err := m.Graph(dense)
		require.NoError(t, err)
		require.Equal(t, 3, g.NumSpins())

		for _, s := range allSamples(3, [2]int{-1, 1}) {
			want, err := m.Energy(s)
			require.NoError(t, err)
			got, err := g.Energy(graph.Spins(s))
			require.NoError(t, err)
			require.Equal(t, want, got, "dense=%v s=%v", dense, s)
		}
	}

	sg, err := m.Graph(false)
	require.NoError(t, err)
	assert.Equal(t, 2, sg.(*graph.Sparse).NumEdges())

	empty, err := model.NewIsing(nil, nil)
	require.NoError(t, err)
	_, err = empty.Graph(true)
	require.ErrorIs(t, err, graph.ErrInvalidSize)
}

func TestGraph_FromQUBO(t *testing.T) {
	t.Parallel()
	q, err := model.NewQUBO(model.Quadratic{{0, 0}: 1, {0, 1}: -4})
	require.NoError(t, err)
	g, err := q.Graph(true)
	require.NoError(t, err)

	// h_0 = 1/2 - 1, h_1 = -1, J = -1
	h0, _ := g.Field(0)
	h1, _ := g.Field(1)
	j, _ := g.Coupling(0, 1)
	assert.Equal(t, -0.5, h0)
	assert.Equal(t, -1.0, h1)
	assert.Equal(t, -1.0, j)
}
