// Package converters provides two-way adapters between core.Graph and
// gonum's graph packages (gonum.org/v1/gonum/graph).
//
// Use converters to hand an lvroute graph to gonum algorithms, for example
// to cross-check a route against gonum's path.DijkstraFrom, or to import a
// gonum-built network as a core.Graph.
//
// Vertex IDs are strings in core and int64 in gonum. ToGonum numbers the
// vertices in sorted ID order and keeps the mapping on the returned *Gonum.
package converters
