// SPDX-License-Identifier: MIT

// Package graph stores the interaction of an Ising problem: pairwise
// couplings J(i,j) and local fields h(i) over N spin variables, and evaluates
//
//	E(s) = Σ_{i<j} J(i,j)·s_i·s_j + Σ_i h(i)·s_i,   s_i ∈ {-1,+1}.
//
// 🚀 What is graph?
//
// Two concrete storage models implement one Graph contract:
//
//   - Dense: a symmetric row-major N×N table. The field lives on the
//     diagonal, so Field(i) == Coupling(i,i). Every node is adjacent to
//     every other node.
//   - Sparse: one adjacency list per node plus a map keyed by the
//     normalized pair (min,max). Entries are created lazily on first write;
//     the self entry (i,i) carries the field. A per-node degree cap
//     (NumEdges) bounds every adjacency list.
//
// ✨ Key features
//
//   - Explicit getter/setter pairs; both index orders are equivalent.
//   - Fail-fast sentinel errors (ErrOutOfRange, ErrEdgeCapacityExceeded)
//     guarded by an error-check toggle fixed at construction.
//   - Interaction: an immutable compact snapshot (fields + neighbour lists)
//     consumed by the annealing systems in hot loops.
//   - RandomSpins: a uniformly random ±1 assignment drawn from an explicit
//     prng.Source.
//
// ⚙️ Usage
//
//	g, _ := graph.NewSparse(4, graph.WithNumEdges(2))
//	_ = g.SetCoupling(0, 1, -1)
//	_ = g.SetField(0, 0.5)
//	e, _ := g.Energy(graph.Spins{1, 1, -1, 1})
//
// # Complexity
//
//   - Dense: Coupling/SetCoupling O(1), Adjacent O(N), Energy O(N²).
//   - Sparse: Coupling O(1) average, SetCoupling O(1) average, Adjacent O(deg),
//     Energy O(Σ deg).
//
// # Concurrency
//
// Graphs are not safe for concurrent mutation. Concurrent readers are fine
// once construction is finished.
package graph
