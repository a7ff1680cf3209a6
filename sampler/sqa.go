// SPDX-License-Identifier: MIT

package sampler

import (
	"context"
	"fmt"
	"math"

	"github.com/MShaffar19/OpenJij/algorithm"
	"github.com/MShaffar19/OpenJij/graph"
	"github.com/MShaffar19/OpenJij/model"
	"github.com/MShaffar19/OpenJij/prng"
	"github.com/MShaffar19/OpenJij/result"
	"github.com/MShaffar19/OpenJij/schedule"
	"github.com/MShaffar19/OpenJij/system"
	"github.com/MShaffar19/OpenJij/updater"
	"github.com/charmbracelet/log"
)

// SQASampler runs simulated quantum annealing: Trotter replicas at fixed β
// with the transverse field Γ·(1−S) removed as S ramps from 0 to 1.
// The state of a read is its lowest-energy replica.
type SQASampler struct {
	Beta       float64
	Gamma      float64
	Trotter    int
	StepLength int
	StepNum    int
	NumReads   int
	Seed       uint64

	Dense          bool
	Representation system.Representation

	Concurrency int
	Logger      *log.Logger
}

// DefaultSQASampler returns β = 5, Γ = 1, 4 replicas, 100 steps of 10 sweeps.
func DefaultSQASampler() *SQASampler {
	return &SQASampler{
		Beta:       5.0,
		Gamma:      1.0,
		Trotter:    4,
		StepLength: 10,
		StepNum:    100,
		NumReads:   1,
	}
}

// SampleIsing samples the spin model with fields h and couplings J.
func (s *SQASampler) SampleIsing(ctx context.Context, h model.Linear, J model.Quadratic) (*Response, error) {
	return sampleIsing(ctx, s, h, J)
}

// SampleQUBO samples the binary model Q.
func (s *SQASampler) SampleQUBO(ctx context.Context, Q model.Quadratic) (*Response, error) {
	return sampleQUBO(ctx, s, Q)
}

// Sample anneals NumReads independent replica stacks of m.
// Every read draws Trotter random spin vectors, one after another, from its
// own generator before the first sweep.
func (s *SQASampler) Sample(ctx context.Context, m *model.BQM) (*Response, error) {
	if err := checkShape("SQASampler", s.StepNum, s.StepLength, s.NumReads, s.Representation); err != nil {
		return nil, err
	}
	if s.Trotter < 1 {
		return nil, fmt.Errorf("SQASampler: Trotter %d: %w", s.Trotter, ErrInvalidConfig)
	}
	if s.Gamma < 0 || math.IsNaN(s.Gamma) || math.IsInf(s.Gamma, 0) {
		return nil, fmt.Errorf("SQASampler: Gamma %g: %w", s.Gamma, ErrInvalidConfig)
	}
	sched, err := schedule.MakeTransverseFieldSchedule(s.Beta, s.StepNum, s.StepLength)
	if err != nil {
		return nil, fmt.Errorf("SQASampler: %w: %w", ErrInvalidConfig, err)
	}
	if s.Logger != nil {
		s.Logger.Debug("simulated quantum annealing",
			"beta", s.Beta, "gamma", s.Gamma, "trotter", s.Trotter,
			"steps", s.StepNum, "sweeps", sched.TotalSweeps(), "reads", s.NumReads)
	}

	return run(ctx, m, s.Dense, s.NumReads, s.Concurrency, s.Seed, s.Logger,
		func(ctx context.Context, g graph.Graph, rng prng.Source) (graph.Spins, error) {
			replicas := make([]graph.Spins, s.Trotter)
			for t := range replicas {
				replicas[t] = graph.RandomSpins(g.NumSpins(), rng)
			}
			sys, err := system.NewTransverseIsing(replicas, g, s.Gamma,
				system.WithRepresentation(s.Representation))
			if err != nil {
				return nil, err
			}
			if err = algorithm.RunContext(ctx, sys, rng, sched, updater.SingleSpinFlip{}); err != nil {
				return nil, err
			}

			return result.GetSolution(sys)
		})
}
