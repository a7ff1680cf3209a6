package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/MShaffar19/OpenJij/sampler"
	"github.com/MShaffar19/OpenJij/system"
)

// commonFlags are shared by every sampling command.
type commonFlags struct {
	problem     string
	stepLength  int
	stepNum     int
	numReads    int
	seed        uint64
	dense       bool
	matrix      bool
	concurrency int
}

func (f *commonFlags) register(cmd *cobra.Command, stepLength, stepNum int) {
	flags := cmd.Flags()
	flags.StringVarP(&f.problem, "problem", "p", "", "problem YAML file (- for stdin)")
	flags.IntVar(&f.stepLength, "step-length", stepLength, "sweeps per schedule step")
	flags.IntVar(&f.stepNum, "step-num", stepNum, "number of schedule steps")
	flags.IntVarP(&f.numReads, "num-reads", "n", 1, "independent anneals")
	flags.Uint64Var(&f.seed, "seed", 0, "seed of read 0; read r uses seed+r")
	flags.BoolVar(&f.dense, "dense", false, "compile to a dense graph")
	flags.BoolVar(&f.matrix, "matrix", false, "use the matrix representation")
	flags.IntVar(&f.concurrency, "concurrency", 0, "parallel reads (0 = GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("problem")
}

func (f *commonFlags) representation() system.Representation {
	if f.matrix {
		return system.Matrix
	}
	return system.Naive
}

func newSACmd() *cobra.Command {
	var (
		flags            commonFlags
		betaMin, betaMax float64
		method           string
	)
	def := sampler.DefaultSASampler()

	cmd := &cobra.Command{
		Use:   "sa",
		Short: "Sample with classical simulated annealing",
		Example: `  openjij sa -p problem.yaml
  openjij sa -p problem.yaml --updater sw --num-reads 16 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := sampler.ParseMethod(method)
			if err != nil {
				return err
			}
			s := &sampler.SASampler{
				BetaMin:        betaMin,
				BetaMax:        betaMax,
				StepLength:     flags.stepLength,
				StepNum:        flags.stepNum,
				NumReads:       flags.numReads,
				Seed:           flags.seed,
				Updater:        m,
				Dense:          flags.dense,
				Representation: flags.representation(),
				Concurrency:    flags.concurrency,
			}
			return runSampler(cmd, flags.problem, s, func(l *log.Logger) { s.Logger = l })
		},
	}

	flags.register(cmd, def.StepLength, def.StepNum)
	cmd.Flags().Float64Var(&betaMin, "beta-min", def.BetaMin, "initial inverse temperature")
	cmd.Flags().Float64Var(&betaMax, "beta-max", def.BetaMax, "final inverse temperature")
	cmd.Flags().StringVar(&method, "updater", def.Updater.String(), "single-spin-flip (ssf) or swendsen-wang (sw)")

	return cmd
}

func newSQACmd() *cobra.Command {
	var (
		flags       commonFlags
		beta, gamma float64
		trotter     int
	)
	def := sampler.DefaultSQASampler()

	cmd := &cobra.Command{
		Use:     "sqa",
		Short:   "Sample with simulated quantum annealing",
		Example: `  openjij sqa -p problem.yaml --trotter 8 --gamma 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &sampler.SQASampler{
				Beta:           beta,
				Gamma:          gamma,
				Trotter:        trotter,
				StepLength:     flags.stepLength,
				StepNum:        flags.stepNum,
				NumReads:       flags.numReads,
				Seed:           flags.seed,
				Dense:          flags.dense,
				Representation: flags.representation(),
				Concurrency:    flags.concurrency,
			}
			return runSampler(cmd, flags.problem, s, func(l *log.Logger) { s.Logger = l })
		},
	}

	flags.register(cmd, def.StepLength, def.StepNum)
	cmd.Flags().Float64Var(&beta, "beta", def.Beta, "inverse temperature")
	cmd.Flags().Float64Var(&gamma, "gamma", def.Gamma, "initial transverse field")
	cmd.Flags().IntVar(&trotter, "trotter", def.Trotter, "number of Trotter replicas")

	return cmd
}

// runSampler loads the problem, samples it and writes the response.
func runSampler(cmd *cobra.Command, path string, s sampler.Sampler, setLogger func(*log.Logger)) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	setLogger(logger)

	m, err := loadProblem(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Debug("problem loaded", "path", path, "vartype", m.Vartype(), "variables", m.Len())

	prog := newProgress(logger)
	resp, err := s.Sample(ctx, m)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	_, lowest := resp.Lowest()
	prog.done(fmt.Sprintf("Sampled %d reads, lowest energy %g", resp.Len(), lowest))

	return writeResponse(cmd.OutOrStdout(), resp)
}
