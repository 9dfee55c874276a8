// Package lvroute finds minimum-cost routes in weighted graphs by running
// uniform-cost search from both endpoints at once.
//
// What is inside:
//
//   - core/          thread-safe Graph, Vertex, Edge; outgoing and incoming adjacency
//   - frontier/      indexed min-heap with decrease-key and FIFO tie-break
//   - bidirectional/ one-direction Agents and the Search orchestrator
//   - dijkstra/      single-source Dijkstra, the single-direction baseline
//   - mapdata/       YAML road-map loader and the embedded Romania map
//   - builder/       deterministic graph fixtures (Path, Cycle, Grid, RandomSparse)
//   - converters/    core.Graph <-> gonum weighted graphs
//
// Quick example:
//
//	g, _ := mapdata.Romania()
//	res, err := bidirectional.Search(ctx, g, "Arad", "Bucharest")
//	// res.Path = [Arad Sibiu Rimnicu Vilcea Pitesti Bucharest], res.Cost = 418
//
// Edge weights are non-negative integers; negative weights are rejected when
// the graph is built.
//
//	go get github.com/katalvlaran/lvroute
package lvroute
