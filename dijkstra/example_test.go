// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// ExampleDijkstra_triangle demonstrates computing shortest paths on a simple triangle graph.
func ExampleDijkstra_triangle() {
	// 1) Create a new weighted, undirected graph.
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 5)

	// 2) Compute Dijkstra from source "A" without requesting the predecessor map.
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) dist["C"] is 3 via A→B→C.
	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

// ExampleDijkstra_thresholds demonstrates how to use InfEdgeThreshold to impose “walls”.
func ExampleDijkstra_thresholds() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("B", "C", 4)
	_, _ = g.AddEdge("A", "C", 10)

	// Any edge with weight ≥5 is skipped, so A-C is ignored.
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithInfEdgeThreshold(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[C]=%d\n", dist["C"])
	// Output: dist[C]=6
}

// ExampleShortestPath reconstructs a full route on a directed graph with reciprocal arcs.
func ExampleShortestPath() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_ = g.AddUndirectedEdge("Arad", "Sibiu", 140)
	_ = g.AddUndirectedEdge("Sibiu", "Fagaras", 99)
	_ = g.AddUndirectedEdge("Fagaras", "Bucharest", 211)

	path, cost, err := dijkstra.ShortestPath(g, "Arad", "Bucharest")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path, cost)
	// Output: [Arad Sibiu Fagaras Bucharest] 450
}
