package updater_test

import (
	"testing"

	"github.com/MShaffar19/OpenJij/builder"
	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/prng"
	"github.com/MShaffar19/OpenJij/system"
	"github.com/MShaffar19/OpenJij/updater"
)

// lattice is a 32×32 periodic ±J spin glass.
func lattice(b *testing.B) graph.Graph {
	b.Helper()
	m, err := builder.Build([]builder.Option{builder.WithSeed(1), builder.WithSpinGlass(), builder.WithPeriodic()},
		builder.Grid(32, 32))
	if err != nil {
		b.Fatal(err)
	}
	g, err := m.Graph(false)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func benchmarkSweep(b *testing.B, rep system.Representation, up updater.Updater) {
	g := lattice(b)
	rng := prng.New(2)
	sys, err := system.NewClassicalIsing(graph.RandomSpins(g.NumSpins(), rng), g, system.WithRepresentation(rep))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = up.Sweep(sys, rng); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSingleSpinFlip_Naive(b *testing.B) {
	benchmarkSweep(b, system.Naive, updater.SingleSpinFlip{})
}

func BenchmarkSingleSpinFlip_Matrix(b *testing.B) {
	benchmarkSweep(b, system.Matrix, updater.SingleSpinFlip{})
}

func BenchmarkSwendsenWang(b *testing.B) {
	benchmarkSweep(b, system.Naive, &updater.SwendsenWang{})
}

func BenchmarkSingleSpinFlip_Transverse(b *testing.B) {
	g := lattice(b)
	rng := prng.New(3)
	replicas := make([]graph.Spins, 8)
	for t := range replicas {
		replicas[t] = graph.RandomSpins(g.NumSpins(), rng)
	}
	sys, err := system.NewTransverseIsing(replicas, g, 1)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = updater.SingleSpinFlip{}.Sweep(sys, rng)
	}
}
