// SPDX-License-Identifier: MIT

package builder

import "math/rand/v2"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// rng for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// couplingFn draws J for every emitted bond.
	couplingFn CouplingFn
	// fieldFn draws h for every spin touched by Fields.
	fieldFn CouplingFn
	// periodic wraps Grid into a torus.
	periodic bool
}

// newBuilderConfig applies opts in order (later overrides earlier) over the
// deterministic defaults: no rng, ferromagnetic couplings, zero fields.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		couplingFn: DefaultCouplingFn,
		fieldFn:    ConstantCouplingFn(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// draw evaluates fn against cfg.rng.
func (cfg builderConfig) draw(fn CouplingFn) float64 { return fn(cfg.rng) }
