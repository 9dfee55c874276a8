package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// ExampleGraph_AddUndirectedEdge builds a tiny directed road graph with
// reciprocal arcs and lists what is reachable from Pitesti.
func ExampleGraph_AddUndirectedEdge() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddUndirectedEdge("Pitesti", "Bucharest", 101)
	_ = g.AddUndirectedEdge("Pitesti", "Craiova", 138)

	out, _ := g.Neighbors("Pitesti")
	for _, e := range out {
		fmt.Printf("%s -> %s (%d)\n", e.From, e.To, e.Weight)
	}
	// Output:
	// Pitesti -> Bucharest (101)
	// Pitesti -> Craiova (138)
}
