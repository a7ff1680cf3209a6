// SPDX-License-Identifier: MIT

// Package unionfind implements a disjoint-set forest over the dense node ids
// 0..n-1, with full path compression and union by size.
//
// Swendsen-Wang cluster updates build one forest per sweep: Reset clears it
// in O(n) without reallocating.
//
// Complexity:
//   - Find, Unite: amortized O(α(n)); Reset: O(n); Space: O(n).
package unionfind

// UnionFind is a disjoint-set forest. The zero value is an empty forest.
type UnionFind struct {
	parent []int
	size   []int // meaningful only at roots
}

// New returns n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	uf.Reset()

	return uf
}

// Reset turns every node back into its own singleton set.
func (uf *UnionFind) Reset() {
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
}

// Len returns the number of nodes.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Find returns the representative of x's set.
// Implementation:
//   - Stage 1: walk parents up to the root.
//   - Stage 2: walk the same path again, pointing every node at the root.
//
// Both passes are iterative, so deep chains cannot overflow the stack.
func (uf *UnionFind) Find(x int) int {
	root := x
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[x] != root {
		next := uf.parent[x]
		uf.parent[x] = root
		x = next
	}

	return root
}

// Unite merges the sets of x and y and returns the surviving root.
// The smaller set's root is attached under the larger one; on equal sizes
// x's root goes under y's root.
func (uf *UnionFind) Unite(x, y int) int {
	rx, ry := uf.Find(x), uf.Find(y)
	if rx == ry {
		return rx
	}
	if uf.size[rx] > uf.size[ry] {
		rx, ry = ry, rx
	}
	uf.parent[rx] = ry
	uf.size[ry] += uf.size[rx]

	return ry
}

// Size returns the number of nodes in x's set.
func (uf *UnionFind) Size(x int) int { return uf.size[uf.Find(x)] }

// Same reports whether x and y share a set.
func (uf *UnionFind) Same(x, y int) bool { return uf.Find(x) == uf.Find(y) }
