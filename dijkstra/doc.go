// Package dijkstra is the single-direction uniform-cost search of lvroute.
//
// It expands vertices in order of distance from one source until the
// frontier is empty, so it answers "how far is everything from here" in a
// single pass. The bidirectional package answers the narrower question
// "how far is B from A" with fewer expansions; this package is the baseline
// it is checked against.
//
// Entry points:
//
//	Dijkstra(g, opts...)           → dist, prev, err   (all reachable vertices)
//	ShortestPath(g, from, to, ...) → path, cost, err   (one pair)
//
// Options:
//
//   - Source(id): mandatory for Dijkstra; ShortestPath sets it from `from`.
//   - WithReturnPath(): also return the predecessor map.
//   - WithMaxDistance(d): stop relaxing past distance d.
//   - WithInfEdgeThreshold(t): arcs with weight >= t are closed roads.
//   - WithReverse(): walk incoming arcs; dist[v] becomes the cost from v to Source.
//
// Frontier:
//
// A lazy container/heap priority queue. A cheaper label pushes a second entry
// and stale pops are skipped, which keeps the loop short at the price of up to
// E heap entries. Time O((V+E) log V), space O(V+E).
//
// Errors:
//
// Input problems (ErrEmptySource, ErrNilGraph, ErrUnweightedGraph,
// ErrVertexNotFound) are returned before any work. ShortestPath returns
// ErrNoPath when the target stays unlabelled. Bad option values panic with
// ErrBadMaxDistance or ErrBadInfThreshold.
//
// Dijkstra only reads the graph; concurrent calls on one *core.Graph are safe.
package dijkstra
