// SPDX-License-Identifier: MIT

// Package schedule builds annealing schedules: ordered (Parameter, Sweeps)
// steps consumed by the algorithm driver.
//
// Two shapes exist:
//
//   - Classical: the inverse temperature β grows geometrically from start
//     to end; the last step is pinned to end exactly.
//   - TransverseField: β stays fixed while the anneal fraction S grows
//     linearly from 0 to 1, so the effective field Γ·(1−S) falls linearly
//     from Γ to 0.
package schedule

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSchedule reports non-positive step counts, sweep counts or β,
// or non-finite bounds.
var ErrInvalidSchedule = errors.New("schedule: invalid schedule")

// Kind tells which system a schedule drives.
type Kind int

const (
	// Classical schedules anneal β only.
	Classical Kind = iota
	// TransverseField schedules anneal the field fraction S at fixed β.
	TransverseField
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Classical:
		return "classical"
	case TransverseField:
		return "transverse-field"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Parameter is the control parameter of one step.
type Parameter struct {
	// Beta is the inverse temperature, always > 0.
	Beta float64
	// S is the transverse anneal fraction in [0,1]; classical steps leave it 0.
	S float64
}

// Step pairs a Parameter with the number of sweeps run at it.
type Step struct {
	Parameter Parameter
	Sweeps    int
}

// Schedule is an ordered, finite anneal path.
type Schedule struct {
	Kind  Kind
	Steps []Step
}

// Len returns the number of steps.
func (s Schedule) Len() int { return len(s.Steps) }

// TotalSweeps returns Σ Sweeps over all steps.
func (s Schedule) TotalSweeps() int {
	total := 0
	for _, st := range s.Steps {
		total += st.Sweeps
	}

	return total
}

// MakeClassicalSchedule interpolates β geometrically:
//
//	β_k = start · (end/start)^(k/(numSteps−1)),   k = 0..numSteps−1,
//
// with β_{numSteps−1} set to end exactly. A single step runs at start.
// The sequence is strictly increasing.
//
// Errors: ErrInvalidSchedule when numSteps or sweepsPerStep is < 1, a
// bound is not a finite positive number, or numSteps > 1 and the steps
// would not strictly increase (end <= start, or bounds too close to
// separate numSteps values).
func MakeClassicalSchedule(betaStart, betaEnd float64, numSteps, sweepsPerStep int) (Schedule, error) {
	if err := checkShape(numSteps, sweepsPerStep); err != nil {
		return Schedule{}, fmt.Errorf("MakeClassicalSchedule: %w", err)
	}
	if !positive(betaStart) || !positive(betaEnd) {
		return Schedule{}, fmt.Errorf("MakeClassicalSchedule: beta range [%g,%g]: %w",
			betaStart, betaEnd, ErrInvalidSchedule)
	}
	if numSteps > 1 && betaEnd <= betaStart {
		return Schedule{}, fmt.Errorf("MakeClassicalSchedule: beta %g -> %g does not increase: %w",
			betaStart, betaEnd, ErrInvalidSchedule)
	}

	steps := make([]Step, numSteps)
	ratio := betaEnd / betaStart
	for k := range steps {
		beta := betaStart
		switch {
		case numSteps > 1 && k == numSteps-1:
			beta = betaEnd
		case k > 0:
			beta = betaStart * math.Pow(ratio, float64(k)/float64(numSteps-1))
		}
		if k > 0 && beta <= steps[k-1].Beta {
			return Schedule{}, fmt.Errorf("MakeClassicalSchedule: step %d: beta %g after %g: %w",
				k, beta, steps[k-1].Beta, ErrInvalidSchedule)
		}
		steps[k] = Step{Parameter: Parameter{Beta: beta}, Sweeps: sweepsPerStep}
	}

	return Schedule{Kind: Classical, Steps: steps}, nil
}

// MakeTransverseFieldSchedule keeps β fixed and ramps S linearly:
//
//	S_k = k/(numSteps−1),   k = 0..numSteps−1,
//
// so the first step runs at the full field and the last at zero field.
// A single step runs at S = 0.
func MakeTransverseFieldSchedule(beta float64, numSteps, sweepsPerStep int) (Schedule, error) {
	if err := checkShape(numSteps, sweepsPerStep); err != nil {
		return Schedule{}, fmt.Errorf("MakeTransverseFieldSchedule: %w", err)
	}
	if !positive(beta) {
		return Schedule{}, fmt.Errorf("MakeTransverseFieldSchedule: beta %g: %w", beta, ErrInvalidSchedule)
	}

	steps := make([]Step, numSteps)
	for k := range steps {
		s := 0.0
		if numSteps > 1 {
			s = float64(k) / float64(numSteps-1)
		}
		steps[k] = Step{Parameter: Parameter{Beta: beta, S: s}, Sweeps: sweepsPerStep}
	}

	return Schedule{Kind: TransverseField, Steps: steps}, nil
}

func checkShape(numSteps, sweepsPerStep int) error {
	if numSteps < 1 || sweepsPerStep < 1 {
		return fmt.Errorf("steps=%d sweeps=%d: %w", numSteps, sweepsPerStep, ErrInvalidSchedule)
	}

	return nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}
