package graph_test

import (
	"fmt"

	"github.com/MShaffar19/OpenJij/graph"
)

// ExampleSparse builds a three-spin chain and evaluates two assignments.
func ExampleSparse() {
	g, _ := graph.NewSparse(3, graph.WithNumEdges(2))
	_ = g.SetCoupling(0, 1, -1)
	_ = g.SetCoupling(1, 2, -1)
	_ = g.SetField(0, 1)

	aligned, _ := g.Energy(graph.Spins{-1, -1, -1})
	broken, _ := g.Energy(graph.Spins{1, -1, -1})
	adj, _ := g.Adjacent(0)
	fmt.Println(aligned, broken, adj)

	// Output:
	// -3 1 [1 0]
}

// ExampleDense shows that both index orders address the same cell.
func ExampleDense() {
	g, _ := graph.NewDense(2)
	_ = g.SetCoupling(1, 0, 2.5)
	v, _ := g.Coupling(0, 1)
	fmt.Println(v)

	// Output:
	// 2.5
}
