package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MShaffar19/OpenJij/builder"
)

type generateFlags struct {
	topology   string
	n          int
	rows, cols int
	degree     int
	p          float64
	L          int
	periodic   bool
	coupling   string
	field      float64
	seed       uint64
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a benchmark Ising problem as YAML",
		Example: `  openjij generate --topology grid --rows 8 --cols 8 --coupling spin-glass --seed 1 > grid.yaml
  openjij generate --topology chimera -L 2 | openjij sa -p -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cons, err := f.constructors()
			if err != nil {
				return err
			}
			opts, err := f.options()
			if err != nil {
				return err
			}
			m, err := builder.Build(opts, cons...)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("problem generated",
				"topology", f.topology, "variables", m.Len(), "couplings", len(m.Quadratic()))

			return encodeProblem(cmd.OutOrStdout(), m)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.topology, "topology", "t", "chain", "chain, ring, grid, complete, bipartite, sparse, regular or chimera")
	flags.IntVarP(&f.n, "spins", "n", 8, "number of spins (chain, ring, complete, sparse, regular; left shore of bipartite)")
	flags.IntVar(&f.rows, "rows", 4, "grid rows")
	flags.IntVar(&f.cols, "cols", 4, "grid columns; right shore of bipartite")
	flags.IntVar(&f.degree, "degree", 3, "degree of a regular graph")
	flags.Float64Var(&f.p, "p", 0.5, "bond probability of a sparse graph")
	flags.IntVarP(&f.L, "chimera-l", "L", 2, "chimera lattice side")
	flags.BoolVar(&f.periodic, "periodic", false, "wrap grid boundaries")
	flags.StringVar(&f.coupling, "coupling", "ferro", "ferro, spin-glass, uniform or normal")
	flags.Float64Var(&f.field, "field", 0, "constant field on every spin")
	flags.Uint64Var(&f.seed, "seed", 0, "generator seed")

	return cmd
}

func (f *generateFlags) constructors() ([]builder.Constructor, error) {
	switch strings.ToLower(f.topology) {
	case "chain":
		return f.withFields(builder.Chain(f.n), f.n), nil
	case "ring":
		return f.withFields(builder.Ring(f.n), f.n), nil
	case "grid":
		return f.withFields(builder.Grid(f.rows, f.cols), f.rows*f.cols), nil
	case "complete":
		return f.withFields(builder.Complete(f.n), f.n), nil
	case "bipartite":
		return f.withFields(builder.CompleteBipartite(f.n, f.cols), f.n+f.cols), nil
	case "sparse":
		return f.withFields(builder.RandomSparse(f.n, f.p), f.n), nil
	case "regular":
		return f.withFields(builder.RandomRegular(f.n, f.degree), f.n), nil
	case "chimera":
		return f.withFields(builder.Chimera(f.L), f.L*f.L*8), nil
	default:
		return nil, fmt.Errorf("generate: unknown topology %q", f.topology)
	}
}

// withFields appends a Fields constructor when --field is set.
func (f *generateFlags) withFields(ctor builder.Constructor, n int) []builder.Constructor {
	if f.field == 0 {
		return []builder.Constructor{ctor}
	}
	return []builder.Constructor{ctor, builder.Fields(n)}
}

func (f *generateFlags) options() ([]builder.Option, error) {
	opts := []builder.Option{
		builder.WithSeed(f.seed),
		builder.WithFieldFn(builder.ConstantCouplingFn(f.field)),
	}
	if f.periodic {
		opts = append(opts, builder.WithPeriodic())
	}
	switch strings.ToLower(f.coupling) {
	case "ferro":
	case "spin-glass", "pm":
		opts = append(opts, builder.WithSpinGlass())
	case "uniform":
		opts = append(opts, builder.WithUniformCoupling(-1, 1))
	case "normal":
		opts = append(opts, builder.WithNormalCoupling(0, 1))
	default:
		return nil, fmt.Errorf("generate: unknown coupling %q", f.coupling)
	}

	return opts, nil
}
