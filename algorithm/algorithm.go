// SPDX-License-Identifier: MIT

// Package algorithm drives an anneal: it walks a schedule, activates each
// step's parameter on the system and applies an updater for the step's
// sweep count.
//
// There is no convergence detection; the loop runs until the schedule is
// exhausted, and only the final spin state survives. RunContext adds
// cooperative cancellation, checked before every sweep.
package algorithm

import (
	"context"
	"errors"
	"fmt"

	"github.com/MShaffar19/OpenJij/prng"
	"github.com/MShaffar19/OpenJij/schedule"
	"github.com/MShaffar19/OpenJij/system"
	"github.com/MShaffar19/OpenJij/updater"
)

// ErrScheduleMismatch reports a schedule whose Kind does not match the system.
var ErrScheduleMismatch = errors.New("algorithm: schedule does not match system")

// StepHook observes a completed schedule step.
type StepHook func(step int, p schedule.Parameter)

type config struct {
	hook StepHook
}

// Option configures a run.
type Option func(*config)

// WithStepHook calls fn after the last sweep of every step.
func WithStepHook(fn StepHook) Option {
	return func(c *config) { c.hook = fn }
}

// Run anneals sys along sched with up, drawing from rng.
// It is RunContext with a background context.
func Run(sys system.System, rng prng.Source, sched schedule.Schedule, up updater.Updater, opts ...Option) error {
	return RunContext(context.Background(), sys, rng, sched, up, opts...)
}

// RunContext anneals sys along sched with up, drawing from rng.
// MAIN DESCRIPTION:
//   - Stage 1: reject a schedule whose Kind differs from sys.Kind().
//   - Stage 2: for each step, sys.SetParameter(step.Parameter), then
//     up.Sweep exactly step.Sweeps times.
//
// Errors:
//   - ErrScheduleMismatch; errors from SetParameter or Sweep (wrapped with
//     the step index); ctx.Err() when cancelled between sweeps.
//
// Complexity:
//   - Time O(TotalSweeps · cost(Sweep)), Space O(1).
func RunContext(ctx context.Context, sys system.System, rng prng.Source, sched schedule.Schedule, up updater.Updater, opts ...Option) error {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if sched.Kind != sys.Kind() {
		return fmt.Errorf("algorithm: %v schedule on %v system: %w", sched.Kind, sys.Kind(), ErrScheduleMismatch)
	}

	for k, step := range sched.Steps {
		if err := sys.SetParameter(step.Parameter); err != nil {
			return fmt.Errorf("algorithm: step %d: %w", k, err)
		}
		for sweep := 0; sweep < step.Sweeps; sweep++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := up.Sweep(sys, rng); err != nil {
				return fmt.Errorf("algorithm: step %d sweep %d: %w", k, sweep, err)
			}
		}
		if cfg.hook != nil {
			cfg.hook(k, step.Parameter)
		}
	}

	return nil
}
