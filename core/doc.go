// Package core provides the static road graph every route search reads from:
// a thread-safe, in-memory Graph of named locations (Vertex) joined by
// weighted connections (Edge).
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Outgoing and incoming adjacency, both kept in insertion order, so a
//     search walking edges backwards sees the same deterministic order as
//     one walking them forwards
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Topology is built once at load time. Searches never write to the graph:
// per-search bookkeeping (path cost, parent, explored) belongs to the search,
// not to the Vertex, so any number of searches may share one Graph.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	    Directed graphs store only “from→to” arcs; use AddUndirectedEdge to
//	    insert the reciprocal pair for a two-way road.
//	    Undirected graphs mirror every edge in both adjacency directions.
//
//	– WithWeighted()
//	    Permits non-zero weights; otherwise AddEdge(weight≠0) → ErrBadWeight.
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//
//	– WithLoops()
//	    Permits self-loops (from == to).
//
// Core Methods:
//
//	AddVertex(id string) error                       // O(1)
//	Lookup(id string) (*Vertex, error)               // O(1), ErrVertexNotFound
//	AddEdge(from, to string, w int64) (string, error)// O(1)
//	AddUndirectedEdge(a, b string, w int64) error    // two arcs on directed graphs
//	Neighbors(id string) ([]*Edge, error)            // outgoing, insertion order
//	InNeighbors(id string) ([]*Edge, error)          // incoming, insertion order
//	Weight(from, to string) (int64, error)           // cheapest from→to edge
//	Vertices() []string                              // sorted
//	Edges() []*Edge                                  // insertion order
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrNegativeWeight      – negative edge cost (rejected at construction)
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
