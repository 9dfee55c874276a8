// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, InNeighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() and InNeighbors() return edges in insertion order.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under appropriate write locks by mutating code.
// AI-HINT (file):
//   - Use Edge.Opposite(id) to get the far endpoint; for undirected edges From may equal id or not.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns every edge that can be traversed out of id.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id.
//   - Undirected edges: include incident edges (mirrored adjacency); self-loops appear once.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of collected edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	return g.collect(id, g.adjacencyList, nil)
}

// InNeighbors returns every edge that can be traversed into id. It is the
// neighborhood a search walking edges backwards (from a goal toward a start)
// expands.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.To == id.
//   - Undirected edges: identical to Neighbors(id).
//
// Errors and complexity as Neighbors.
func (g *Graph) InNeighbors(id string) ([]*Edge, error) {
	undirectedOnly := func(e *Edge) bool { return !e.Directed }

	return g.collect(id, g.adjacencyList, undirectedOnly, g.reverseList)
}

// NeighborIDs returns the unique set of vertex IDs reachable from id over
// one edge, sorted ascending.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		v := e.Opposite(id)
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)

	return out, nil
}

// collect gathers edges from primary[id] (filtered by keep, when non-nil)
// and from every extra[id] (unfiltered), then orders them by insertion.
func (g *Graph) collect(
	id string,
	primary map[string]map[string]map[string]struct{},
	keep func(*Edge) bool,
	extra ...map[string]map[string]map[string]struct{},
) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, vertexNotFound(id)
	}

	var out []*Edge
	var e *Edge
	for _, edgeSet := range primary[id] {
		for eid := range edgeSet {
			e = g.edges[eid]
			if e == nil || (keep != nil && !keep(e)) {
				continue
			}
			out = append(out, e)
		}
	}
	for _, index := range extra {
		for _, edgeSet := range index[id] {
			for eid := range edgeSet {
				if e = g.edges[eid]; e != nil {
					out = append(out, e)
				}
			}
		}
	}
	sortBySeq(out)

	return out, nil
}

// ensureAdjID bootstraps the adjacency bucket for id.
// Caller must hold muEdgeAdj write lock.
func ensureAdjID(g *Graph, id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjacency makes index[from][to] ready for insertion.
// Caller must hold muEdgeAdj write lock.
func ensureAdjacency(index map[string]map[string]map[string]struct{}, from, to string) {
	if _, ok := index[from]; !ok {
		index[from] = make(map[string]map[string]struct{})
	}
	if _, ok := index[from][to]; !ok {
		index[from][to] = make(map[string]struct{})
	}
}

func vertexNotFound(id string) error {
	return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
}
