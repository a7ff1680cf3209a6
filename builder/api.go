// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/MShaffar19/OpenJij/model"
)

// Instance accumulates the terms emitted by constructors.
type Instance struct {
	linear    model.Linear
	quadratic model.Quadratic
}

func newInstance() *Instance {
	return &Instance{linear: model.Linear{}, quadratic: model.Quadratic{}}
}

// AddSpin makes label i part of the model even without any term.
func (in *Instance) AddSpin(i int) { in.linear[i] += 0 }

// AddField adds h to the field of i.
func (in *Instance) AddField(i int, h float64) { in.linear[i] += h }

// AddCoupling adds j to the coupling of the unordered pair {a, b}.
func (in *Instance) AddCoupling(a, b int, j float64) {
	if a > b {
		a, b = b, a
	}
	in.quadratic[[2]int{a, b}] += j
}

// Constructor applies a deterministic mutation to an Instance using the
// resolved builderConfig. Constructors validate parameters before emitting
// anything and return sentinel errors instead of panicking.
type Constructor func(in *Instance, cfg builderConfig) error

// Build resolves opts, applies every constructor in order and returns the
// spin model. Constructor errors are wrapped with "Build: %w".
//
// Complexity:
//   - O(len(opts)) to resolve options plus the cost of each constructor.
func Build(opts []Option, cons ...Constructor) (*model.BQM, error) {
	cfg := newBuilderConfig(opts...)
	in := newInstance()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(in, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return model.NewIsing(in.linear, in.quadratic)
}

// bond emits one coupling drawn from cfg.couplingFn.
func bond(in *Instance, cfg builderConfig, a, b int) {
	in.AddCoupling(a, b, cfg.draw(cfg.couplingFn))
}

// spins registers labels 0..n-1.
func spins(in *Instance, n int) {
	for i := 0; i < n; i++ {
		in.AddSpin(i)
	}
}
