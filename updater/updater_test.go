package updater_test

import (
	"testing"

	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/prng"
	"github.com/MShaffar19/OpenJij/schedule"
	"github.com/MShaffar19/OpenJij/system"
	"github.com/MShaffar19/OpenJij/updater"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted replays fixed uniform draws and counts them.
type scripted struct {
	vals []float64
	pos  int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++

	return v
}

func (s *scripted) IntN(int) int { panic("unexpected IntN") }

func classical(t *testing.T, spins graph.Spins, beta float64, set func(g graph.Graph)) *system.ClassicalIsing {
	t.Helper()
	d, err := graph.NewDense(len(spins))
	require.NoError(t, err)
	set(d)
	sys, err := system.NewClassicalIsing(spins, d)
	require.NoError(t, err)
	require.NoError(t, sys.SetParameter(schedule.Parameter{Beta: beta}))

	return sys
}

func TestSingleSpinFlip_Metropolis(t *testing.T) {
	t.Parallel()
	sys := classical(t, graph.Spins{1, -1}, 10, func(g graph.Graph) {
		require.NoError(t, g.SetCoupling(0, 1, -1))
	})
	src := &scripted{vals: []float64{0.999}}

	// site 0 is downhill (ΔE = -2) and flips; site 1 is then uphill (ΔE = +2)
	require.NoError(t, updater.SingleSpinFlip{}.Sweep(sys, src))
	assert.Equal(t, graph.Spins{-1, -1}, sys.Spins())
	assert.Equal(t, 2, src.pos)
}

func TestSingleSpinFlip_ZeroDrawAcceptsEverything(t *testing.T) {
	t.Parallel()
	sys := classical(t, graph.Spins{1, 1, 1}, 1, func(g graph.Graph) {
		require.NoError(t, g.SetCoupling(0, 1, -1))
		require.NoError(t, g.SetCoupling(1, 2, -1))
	})
	require.NoError(t, updater.SingleSpinFlip{}.Sweep(sys, &scripted{vals: []float64{0}}))
	assert.Equal(t, graph.Spins{-1, -1, -1}, sys.Spins())
}

func TestSingleSpinFlip_TransverseVisitsEverySite(t *testing.T) {
	t.Parallel()
	d, err := graph.NewDense(3)
	require.NoError(t, err)
	ti, err := system.NewTransverseIsing([]graph.Spins{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}, {1, 1, 1}}, d, 1)
	require.NoError(t, err)

	src := &scripted{vals: []float64{0.5}}
	require.NoError(t, updater.SingleSpinFlip{}.Sweep(ti, src))
	assert.Equal(t, 12, src.pos)
}

func TestSwendsenWang_OneDrawPerBondAndCluster(t *testing.T) {
	t.Parallel()
	// no couplings at all: 6 bonds that never activate, 4 singleton clusters
	sys := classical(t, graph.Spins{1, 1, -1, 1}, 1, func(graph.Graph) {})
	src := &scripted{vals: []float64{0}}

	var sw updater.SwendsenWang
	require.NoError(t, sw.Sweep(sys, src))
	assert.Equal(t, 6+4, src.pos)
	// u = 0 beats the fair coin of every singleton
	assert.Equal(t, graph.Spins{-1, -1, 1, -1}, sys.Spins())
}

func TestSwendsenWang_SatisfiedBondsMerge(t *testing.T) {
	t.Parallel()
	ferro := func(g graph.Graph) {
		require.NoError(t, g.SetCoupling(0, 1, -1))
		require.NoError(t, g.SetCoupling(0, 2, -1))
		require.NoError(t, g.SetCoupling(1, 2, -1))
	}

	cases := []struct {
		name  string
		coin  float64
		want  graph.Spins
		draws int
	}{
		{"heads flips the cluster", 0.1, graph.Spins{-1, -1, -1}, 4},
		{"tails keeps it", 0.9, graph.Spins{1, 1, 1}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			sys := classical(t, graph.Spins{1, 1, 1}, 50, ferro)
			src := &scripted{vals: []float64{0, 0, 0, tc.coin}}

			var sw updater.SwendsenWang
			require.NoError(t, sw.Sweep(sys, src))
			assert.Equal(t, tc.want, sys.Spins())
			assert.Equal(t, tc.draws, src.pos)
		})
	}
}

func TestSwendsenWang_UnsatisfiedBondNeverActivates(t *testing.T) {
	t.Parallel()
	sys := classical(t, graph.Spins{1, 1}, 50, func(g graph.Graph) {
		require.NoError(t, g.SetCoupling(0, 1, 1))
	})
	// bond draw 0, then a coin per singleton: flip spin 0, keep spin 1
	src := &scripted{vals: []float64{0, 0.1, 0.9}}

	var sw updater.SwendsenWang
	require.NoError(t, sw.Sweep(sys, src))
	assert.Equal(t, graph.Spins{-1, 1}, sys.Spins())
	assert.Equal(t, 3, src.pos)
}

func TestSwendsenWang_FieldBiasesTheCluster(t *testing.T) {
	t.Parallel()
	// h = -1 with s = +1: flipping costs +2; at β = 50 it never happens
	sys := classical(t, graph.Spins{1}, 50, func(g graph.Graph) {
		require.NoError(t, g.SetField(0, -1))
	})

	var sw updater.SwendsenWang
	for k := 0; k < 100; k++ {
		require.NoError(t, sw.Sweep(sys, prng.New(uint64(k))))
	}
	assert.Equal(t, graph.Spins{1}, sys.Spins())
}

func TestSwendsenWang_RejectsTransverse(t *testing.T) {
	t.Parallel()
	d, err := graph.NewDense(2)
	require.NoError(t, err)
	ti, err := system.NewTransverseIsing([]graph.Spins{{1, 1}}, d, 1)
	require.NoError(t, err)

	var sw updater.SwendsenWang
	require.ErrorIs(t, sw.Sweep(ti, prng.New(1)), updater.ErrUnsupportedSystem)
}

func TestSwendsenWang_ReusesScratchAcrossSizes(t *testing.T) {
	t.Parallel()
	var sw updater.SwendsenWang
	small := classical(t, graph.Spins{1, 1}, 1, func(graph.Graph) {})
	big := classical(t, graph.Spins{1, 1, 1, 1, 1}, 1, func(graph.Graph) {})
	rng := prng.New(3)

	require.NoError(t, sw.Sweep(small, rng))
	require.NoError(t, sw.Sweep(big, rng))
	require.NoError(t, sw.Sweep(small, rng))
}
