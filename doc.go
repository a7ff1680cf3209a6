// Package openjij is an annealing toolkit for Ising and QUBO problems:
// classical simulated annealing and simulated quantum annealing over
// interchangeable graph storage, systems and update rules.
//
// 🚀 What is openjij?
//
//	A deterministic, seed-driven library that brings together:
//		• Problem storage: dense and sparse interaction graphs
//		• Systems: classical Ising and Trotterized transverse-field Ising
//		• Updaters: Metropolis single-spin flip, Swendsen–Wang clusters
//		• Schedules: geometric β ramps, transverse-field ramps
//		• Samplers: concurrent reads over a binary quadratic model
//		• Instances: chains, lattices, Chimera and random graphs
//
// ✨ Why choose openjij?
//
//   - Reproducible – every random draw comes from an explicit generator
//   - Composable – any updater over any system along any matching schedule
//   - Two representations – neighbour lists or a gonum interaction matrix
//
// Under the hood, everything is organized under these subpackages:
//
//	graph/     — Dense and Sparse interaction storage, Interaction snapshots
//	system/    — ClassicalIsing and TransverseIsing state + energy deltas
//	updater/   — SingleSpinFlip and SwendsenWang sweeps
//	schedule/  — classical and transverse-field annealing schedules
//	algorithm/ — the annealing driver
//	result/    — solution extraction
//	model/     — binary quadratic models, QUBO ↔ Ising, Chimera labels
//	sampler/   — SASampler, SQASampler and Response
//	builder/   — benchmark instance generators
//	unionfind/ — disjoint sets for cluster updates
//	prng/      — the seeded generator
//
// Quick ASCII example:
//
//	    0───1───2        h = +1 on every spin, J = −1 on every bond
//
// anneals to [-1 -1 -1] with energy −5.
//
//	go install github.com/MShaffar19/OpenJij/cmd/openjij@latest
package openjij
