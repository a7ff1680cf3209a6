// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand/v2"
)

// DefaultCoupling is the ferromagnetic coupling used when no CouplingFn is set.
const DefaultCoupling float64 = -1

// CouplingFn produces a coupling or field value from an optional generator.
// It must be deterministic for a given generator state; a nil generator
// yields the distribution's fallback value.
type CouplingFn func(rng *rand.Rand) float64

// DefaultCouplingFn always returns DefaultCoupling.
func DefaultCouplingFn(_ *rand.Rand) float64 {
	return DefaultCoupling
}

// ConstantCouplingFn always yields value.
func ConstantCouplingFn(value float64) CouplingFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformCouplingFn samples uniformly in [min, max). Panics if max < min.
// A nil generator yields the midpoint.
func UniformCouplingFn(min, max float64) CouplingFn {
	if max < min {
		panic(fmt.Sprintf("UniformCouplingFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return (min + max) / 2
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalCouplingFn samples N(mean, stddev). Panics if stddev < 0.
// A nil generator yields mean.
func NormalCouplingFn(mean, stddev float64) CouplingFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalCouplingFn: stddev must be ≥ 0, got %g", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}

		return mean + rng.NormFloat64()*stddev
	}
}

// SpinGlassCouplingFn returns ±1 with equal probability (±J model).
// A nil generator yields DefaultCoupling.
func SpinGlassCouplingFn(rng *rand.Rand) float64 {
	if rng == nil {
		return DefaultCoupling
	}

	return float64(2*rng.IntN(2) - 1)
}

// WithConstantCoupling sets every coupling to j.
func WithConstantCoupling(j float64) Option {
	return WithCouplingFn(ConstantCouplingFn(j))
}

// WithUniformCoupling sets couplings ∼ U[min,max).
func WithUniformCoupling(min, max float64) Option {
	return WithCouplingFn(UniformCouplingFn(min, max))
}

// WithNormalCoupling sets couplings ∼ N(mean,stddev).
func WithNormalCoupling(mean, stddev float64) Option {
	return WithCouplingFn(NormalCouplingFn(mean, stddev))
}

// WithSpinGlass sets couplings to ±1.
func WithSpinGlass() Option {
	return WithCouplingFn(SpinGlassCouplingFn)
}
