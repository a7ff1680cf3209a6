// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand/v2"

	"github.com/MShaffar19/OpenJij/prng"
)

// Option configures Build.
type Option func(*builderConfig)

// WithRand shares an existing generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh generator with prng.New(seed).
func WithSeed(seed uint64) Option {
	return func(c *builderConfig) { c.rng = prng.New(seed) }
}

// WithCouplingFn sets the coupling distribution. Panics on nil.
func WithCouplingFn(fn CouplingFn) Option {
	if fn == nil {
		panic("builder: WithCouplingFn(nil)")
	}

	return func(c *builderConfig) { c.couplingFn = fn }
}

// WithFieldFn sets the field distribution used by Fields. Panics on nil.
func WithFieldFn(fn CouplingFn) Option {
	if fn == nil {
		panic("builder: WithFieldFn(nil)")
	}

	return func(c *builderConfig) { c.fieldFn = fn }
}

// WithPeriodic wraps Grid boundaries.
func WithPeriodic() Option {
	return func(c *builderConfig) { c.periodic = true }
}
