// SPDX-License-Identifier: MIT

// Package system holds the evolving spin state of an anneal.
//
// 🚀 What is system?
//
// A System owns its spins plus an immutable snapshot of the interaction
// graph and answers the one question every updater asks: "what does flipping
// this site cost?". Two variants exist:
//
//   - ClassicalIsing: N spins; one site per spin.
//
//   - TransverseIsing: T replicas (Trotter slices) of N spins arranged in a
//     ring; site = t·N + i.
//
// Flipping σ_i^t of a TransverseIsing costs
//
//	ΔE = (S/T)·ΔE_classical(t,i) + (2K/β)·σ_i^t·(σ_i^{t−1} + σ_i^{t+1}),
//
// where K is the inter-replica coupling recomputed by SetParameter from
// β, the effective field Γ·(1−S) and T.
//
// ✨ Representations
//
//   - Naive (default): neighbour-list sums over graph.Interaction, O(deg).
//
//   - Matrix: a gonum (N+1)×(N+1) symmetric matrix whose extra row/column
//     carries the fields, with M[N][N] = 1; spins live in an (N+1)×T matrix
//     whose last row is fixed at 1.
//
// The matrix path reads its row entries in neighbour order and adds the
// field column last, so both representations produce bit-for-bit identical
// energies and deltas for any couplings.
//
// ⚙️ Usage
//
//	sys, _ := system.NewClassicalIsing(spins, g, system.WithRepresentation(system.Matrix))
//	_ = sys.SetParameter(schedule.Parameter{Beta: 2})
//	dE := sys.DeltaEnergy(3)
//
// Lifecycle: the Graph is copied at construction; the System never reads it
// again. A System is owned by one goroutine at a time.
package system
