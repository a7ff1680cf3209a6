// SPDX-License-Identifier: MIT

// Package updater implements one-sweep Monte Carlo moves over a
// system.System.
//
// Every updater consumes random numbers in a fixed order, so an identical
// seed, system and schedule reproduce an identical final state:
//
//   - SingleSpinFlip: one Float64 per site, sites in increasing order.
//   - SwendsenWang: one Float64 per bond (i<j) in the system's bond order,
//     then one Float64 per cluster in order of the cluster's lowest member.
package updater

import (
	"errors"

	"github.com/MShaffar19/OpenJij/prng"
	"github.com/MShaffar19/OpenJij/system"
)

// ErrUnsupportedSystem reports an updater applied to a system it cannot move.
var ErrUnsupportedSystem = errors.New("updater: unsupported system")

// Updater performs one sweep over a system at its active parameter.
type Updater interface {
	Sweep(sys system.System, rng prng.Source) error
}

// Compile-time assertions.
var (
	_ Updater = SingleSpinFlip{}
	_ Updater = (*SwendsenWang)(nil)
)
