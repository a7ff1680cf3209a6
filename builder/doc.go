// SPDX-License-Identifier: MIT

// Package builder generates Ising benchmark instances from composable,
// functional-options-style building blocks.
//
// Every topology factory returns a Constructor; Build resolves the options
// into a builderConfig, runs the constructors in order against one
// instance and returns the result as a spin model.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:          a function that mutates builderConfig before use.
//     – builderConfig:   holds the RNG, coupling and field distributions.
//   - Topologies (Constructor implementations):
//     – Chain, Ring:     one-dimensional open and periodic chains.
//     – Grid:            square lattice, optionally periodic (torus).
//     – Complete:        all-to-all couplings (Sherrington–Kirkpatrick).
//     – CompleteBipartite: K_{n1,n2} between two shores.
//     – RandomSparse:    Erdős–Rényi couplings with probability p.
//     – RandomRegular:   d-regular couplings via stub matching.
//     – Chimera:         L×L lattice of K4,4 unit cells.
//     – Fields:          a longitudinal field on spins 0..n-1.
//   - Distributions (CouplingFn implementations):
//     – DefaultCouplingFn:  ferromagnetic −1.
//     – ConstantCouplingFn, UniformCouplingFn, NormalCouplingFn,
//     – SpinGlassCouplingFn: ±1 with equal probability.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical models.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime parameter errors are sentinel errors wrapped with the factory name.
//   - Repeated couplings between the same pair are summed.
package builder
