package system_test

import (
	"math"
	"testing"

	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/internal/fixture"
	"github.com/MShaffar19/OpenJij/prng"
	"github.com/MShaffar19/OpenJij/schedule"
	"github.com/MShaffar19/OpenJij/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomReplicas(n, trotter int, seed uint64) []graph.Spins {
	rng := prng.New(seed)
	out := make([]graph.Spins, trotter)
	for t := range out {
		out[t] = graph.RandomSpins(n, rng)
	}

	return out
}

func TestPathIntegralCoupling(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -0.5*math.Log(math.Tanh(1)), system.PathIntegralCoupling(1, 1, 1))
	assert.Equal(t, -0.5*math.Log(math.Tanh(0.25)), system.PathIntegralCoupling(2, 0.5, 4))
	assert.True(t, math.IsInf(system.PathIntegralCoupling(10, 0, 8), 1))

	// a weaker field couples the replicas more strongly
	assert.Greater(t, system.PathIntegralCoupling(1, 0.1, 4), system.PathIntegralCoupling(1, 1, 4))
}

// TestTransverseIsing_DeltaFormula checks every site against the
// closed-form delta, using a recording coupling function.
func TestTransverseIsing_DeltaFormula(t *testing.T) {
	t.Parallel()
	const n, trotter = 6, 3
	g := integerGraphs(t, n, 21)[0]
	replicas := randomReplicas(n, trotter, 4)

	var gotBeta, gotGamma float64
	var gotT int
	fn := func(beta, gammaEff float64, T int) float64 {
		gotBeta, gotGamma, gotT = beta, gammaEff, T
		return 1.5
	}

	for _, rep := range representations {
		ti, err := system.NewTransverseIsing(replicas, g, 2, system.WithRepresentation(rep), system.WithReplicaCoupling(fn))
		require.NoError(t, err)
		require.Equal(t, n*trotter, ti.NumSites())

		p := schedule.Parameter{Beta: 3, S: 0.75}
		require.NoError(t, ti.SetParameter(p))
		assert.Equal(t, 3.0, gotBeta)
		assert.Equal(t, 2*(1-0.75), gotGamma)
		assert.Equal(t, trotter, gotT)
		assert.Equal(t, 1.5, ti.ReplicaCoupling())
		coef := 2 * 1.5 / 3.0

		for site := 0; site < ti.NumSites(); site++ {
			k, i := site/n, site%n
			cl, err := system.NewClassicalIsing(replicas[k], g)
			require.NoError(t, err)

			sigma := replicas[k][i]
			nb := replicas[(k+trotter-1)%trotter][i] + replicas[(k+1)%trotter][i]
			want := (p.S / trotter) * cl.DeltaEnergy(i)
			if nb != 0 {
				want += coef * float64(sigma) * float64(nb)
			}
			require.Equal(t, want, ti.DeltaEnergy(site), "%v site %d", rep, site)
		}
	}
}

// TestTransverseIsing_SingleReplica reduces to the scaled classical delta.
func TestTransverseIsing_SingleReplica(t *testing.T) {
	t.Parallel()
	g := integerGraphs(t, 5, 2)[1]
	spins := graph.RandomSpins(5, prng.New(9))

	ti, err := system.NewTransverseIsing([]graph.Spins{spins}, g, 1)
	require.NoError(t, err)
	cl, err := system.NewClassicalIsing(spins, g)
	require.NoError(t, err)

	require.NoError(t, ti.SetParameter(schedule.Parameter{Beta: 2, S: 0.5}))
	for i := 0; i < 5; i++ {
		require.Equal(t, 0.5*cl.DeltaEnergy(i), ti.DeltaEnergy(i))
	}
}

// TestTransverseIsing_ZeroFieldLocksReplicas: at S = 1 the coupling is
// infinite; breaking an aligned ring is forbidden, while a site whose ring
// neighbours disagree stays finite.
func TestTransverseIsing_ZeroFieldLocksReplicas(t *testing.T) {
	t.Parallel()
	d, err := graph.NewDense(1)
	require.NoError(t, err)
	require.NoError(t, d.SetField(0, 1))

	aligned := []graph.Spins{{1}, {1}, {1}}
	ti, err := system.NewTransverseIsing(aligned, d, 1)
	require.NoError(t, err)
	require.NoError(t, ti.SetParameter(schedule.Parameter{Beta: 1, S: 1}))
	assert.True(t, math.IsInf(ti.ReplicaCoupling(), 1))
	assert.True(t, math.IsInf(ti.DeltaEnergy(0), 1))

	mixed := []graph.Spins{{1}, {1}, {-1}}
	ti, err = system.NewTransverseIsing(mixed, d, 1)
	require.NoError(t, err)
	require.NoError(t, ti.SetParameter(schedule.Parameter{Beta: 1, S: 1}))
	// replica 0 has neighbours 2 (-1) and 1 (+1)
	dE := ti.DeltaEnergy(0)
	assert.False(t, math.IsNaN(dE))
	assert.Equal(t, (1.0/3)*(-2*1*1.0), dE)
}

// TestTransverseIsing_RepresentationsAgree compares naive and matrix paths.
func TestTransverseIsing_RepresentationsAgree(t *testing.T) {
	t.Parallel()
	g := integerGraphs(t, 9, 13)[1]
	replicas := randomReplicas(9, 4, 8)

	naive, err := system.NewTransverseIsing(replicas, g, 1)
	require.NoError(t, err)
	matrix, err := system.NewTransverseIsing(replicas, g, 1, system.WithRepresentation(system.Matrix))
	require.NoError(t, err)

	p := schedule.Parameter{Beta: 4, S: 0.5}
	require.NoError(t, naive.SetParameter(p))
	require.NoError(t, matrix.SetParameter(p))

	for site := 0; site < naive.NumSites(); site++ {
		require.Equal(t, naive.DeltaEnergy(site), matrix.DeltaEnergy(site), "site %d", site)
		if site%5 == 0 {
			naive.Flip(site)
			matrix.Flip(site)
		}
	}
	require.Equal(t, naive.Replicas(), matrix.Replicas())
	for k := 0; k < 4; k++ {
		require.Equal(t, naive.ReplicaEnergy(k), matrix.ReplicaEnergy(k))
	}
}

// TestTransverseIsing_RepresentationsAgreeOnRealCouplings repeats the
// comparison on the fractional frustrated instance.
func TestTransverseIsing_RepresentationsAgreeOnRealCouplings(t *testing.T) {
	t.Parallel()
	const trotter = 4
	for _, g := range frustratedGraphs(t) {
		replicas := randomReplicas(fixture.NumSpins, trotter, 29)
		naive, err := system.NewTransverseIsing(replicas, g, 1.3)
		require.NoError(t, err)
		matrix, err := system.NewTransverseIsing(replicas, g, 1.3, system.WithRepresentation(system.Matrix))
		require.NoError(t, err)

		p := schedule.Parameter{Beta: 2.7, S: 0.35}
		require.NoError(t, naive.SetParameter(p))
		require.NoError(t, matrix.SetParameter(p))

		for site := 0; site < naive.NumSites(); site++ {
			require.Equal(t, naive.DeltaEnergy(site), matrix.DeltaEnergy(site), "%T site %d", g, site)
			if site%3 == 0 {
				naive.Flip(site)
				matrix.Flip(site)
			}
		}
		for k := 0; k < trotter; k++ {
			require.Equal(t, naive.ReplicaEnergy(k), matrix.ReplicaEnergy(k), "%T replica %d", g, k)
		}
	}
}

// TestTransverseIsing_Flip addresses replica-major sites.
func TestTransverseIsing_Flip(t *testing.T) {
	t.Parallel()
	d, err := graph.NewDense(3)
	require.NoError(t, err)
	replicas := []graph.Spins{{1, 1, 1}, {1, 1, 1}}

	ti, err := system.NewTransverseIsing(replicas, d, 0.5)
	require.NoError(t, err)
	ti.Flip(4) // replica 1, spin 1

	assert.Equal(t, graph.Spins{1, 1, 1}, ti.Replica(0))
	assert.Equal(t, graph.Spins{1, -1, 1}, ti.Replica(1))
	assert.Equal(t, graph.Spins{1, 1, 1}, replicas[1], "input must not be aliased")
	assert.Equal(t, 2, ti.Trotter())
	assert.Equal(t, 3, ti.NumSpins())
	assert.Equal(t, 0.5, ti.Gamma())
	assert.Equal(t, schedule.TransverseField, ti.Kind())
}

func TestTransverseIsing_Validation(t *testing.T) {
	t.Parallel()
	d, err := graph.NewDense(2)
	require.NoError(t, err)
	good := []graph.Spins{{1, -1}, {-1, 1}}

	cases := []struct {
		name     string
		replicas []graph.Spins
		gamma    float64
		want     error
	}{
		{"no replicas", nil, 1, system.ErrInvalidParameter},
		{"negative gamma", good, -1, system.ErrInvalidParameter},
		{"nan gamma", good, math.NaN(), system.ErrInvalidParameter},
		{"short replica", []graph.Spins{{1, -1}, {1}}, 1, system.ErrDimensionMismatch},
		{"bad spin", []graph.Spins{{1, 2}}, 1, system.ErrInvalidSpin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := system.NewTransverseIsing(tc.replicas, d, tc.gamma)
			require.ErrorIs(t, err, tc.want)
		})
	}

	ti, err := system.NewTransverseIsing(good, d, 1)
	require.NoError(t, err)
	require.ErrorIs(t, ti.SetParameter(schedule.Parameter{Beta: -1}), system.ErrInvalidParameter)
	require.ErrorIs(t, ti.SetParameter(schedule.Parameter{Beta: 1, S: 1.5}), system.ErrInvalidParameter)
	require.ErrorIs(t, ti.SetParameter(schedule.Parameter{Beta: 1, S: math.NaN()}), system.ErrInvalidParameter)

	assert.Panics(t, func() { system.WithReplicaCoupling(nil) })
}
