// SPDX-License-Identifier: MIT

package sampler

import (
	"context"
	"fmt"
	"strings"

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

// Method selects the classical update rule.
type Method int

const (
	// SingleSpinFlip is the Metropolis single-spin-flip sweep.
	SingleSpinFlip Method = iota
	// SwendsenWang is the cluster update.
	SwendsenWang
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case SingleSpinFlip:
		return "single-spin-flip"
	case SwendsenWang:
		return "swendsen-wang"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts the String forms, plus "ssf" and "sw".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single-spin-flip", "ssf":
		return SingleSpinFlip, nil
	case "swendsen-wang", "sw":
		return SwendsenWang, nil
	default:
		return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrInvalidConfig)
	}
}

// SASampler runs classical simulated annealing with β growing geometrically
// from BetaMin to BetaMax over StepNum steps of StepLength sweeps each.
type SASampler struct {
	BetaMin    float64
	BetaMax    float64
	StepLength int
	StepNum    int
	NumReads   int
	Seed       uint64

	// Updater is the per-sweep rule; Dense compiles to a dense graph.
	Updater        Method
	Dense          bool
	Representation system.Representation

	// Concurrency caps parallel reads; < 1 means GOMAXPROCS.
	Concurrency int
	Logger      *log.Logger
}

// DefaultSASampler returns β ∈ [0.1, 5], 100 steps of 10 sweeps, one read.
func DefaultSASampler() *SASampler {
	return &SASampler{
		BetaMin:    0.1,
		BetaMax:    5.0,
		StepLength: 10,
		StepNum:    100,
		NumReads:   1,
		Updater:    SingleSpinFlip,
	}
}

// SampleIsing samples the spin model with fields h and couplings J.
func (s *SASampler) SampleIsing(ctx context.Context, h model.Linear, J model.Quadratic) (*Response, error) {
	return sampleIsing(ctx, s, h, J)
}

// SampleQUBO samples the binary model Q.
func (s *SASampler) SampleQUBO(ctx context.Context, Q model.Quadratic) (*Response, error) {
	return sampleQUBO(ctx, s, Q)
}

// Sample anneals NumReads independent copies of m.
// Errors: ErrInvalidConfig for bad fields; graph errors for an empty model;
// ctx.Err() on cancellation.
func (s *SASampler) Sample(ctx context.Context, m *model.BQM) (*Response, error) {
	if err := checkShape("SASampler", s.StepNum, s.StepLength, s.NumReads, s.Representation); err != nil {
		return nil, err
	}
	if s.Updater != SingleSpinFlip && s.Updater != SwendsenWang {
		return nil, fmt.Errorf("SASampler: updater %v: %w", s.Updater, ErrInvalidConfig)
	}
	sched, err := schedule.MakeClassicalSchedule(s.BetaMin, s.BetaMax, s.StepNum, s.StepLength)
	if err != nil {
		return nil, fmt.Errorf("SASampler: %w: %w", ErrInvalidConfig, err)
	}
	if s.Logger != nil {
		s.Logger.Debug("simulated annealing",
			"beta_min", s.BetaMin, "beta_max", s.BetaMax,
			"steps", s.StepNum, "sweeps", sched.TotalSweeps(),
			"reads", s.NumReads, "updater", s.Updater)
	}

	return run(ctx, m, s.Dense, s.NumReads, s.Concurrency, s.Seed, s.Logger,
		func(ctx context.Context, g graph.Graph, rng prng.Source) (graph.Spins, error) {
			sys, err := system.NewClassicalIsing(graph.RandomSpins(g.NumSpins(), rng), g,
				system.WithRepresentation(s.Representation))
			if err != nil {
				return nil, err
			}
			if err = algorithm.RunContext(ctx, sys, rng, sched, s.newUpdater()); err != nil {
				return nil, err
			}

			return result.GetSolution(sys)
		})
}

// newUpdater returns a fresh updater; SwendsenWang holds per-read scratch.
func (s *SASampler) newUpdater() updater.Updater {
	if s.Updater == SwendsenWang {
		return &updater.SwendsenWang{}
	}

	return updater.SingleSpinFlip{}
}
