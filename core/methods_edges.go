// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddUndirectedEdge/HasEdge/GetEdge/Edges/EdgeCount/Weight,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - Negative weights are rejected here (ErrNegativeWeight); searches never re-check.
//   - Unweighted graphs MUST add edges with weight==0 (else ErrBadWeight).

package core

import (
	"fmt"
	"sort"
	"strconv"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from→to with the given weight and returns its ID.
//
// Steps:
//  1. Validate IDs, weight sign, weight policy, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid and insertion sequence.
//  5. Store in g.edges; link adjacencyList[from][to].
//  6. Undirected: mirror adjacencyList[to][from]. Directed: link reverseList[to][from].
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, from, to, weight)
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	// 4) Generate ID and sequence
	seq, eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed, seq: seq}

	// 5) Store and link adjacency
	g.edges[eid] = e
	ensureAdjacency(g.adjacencyList, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	// 6) Mirror undirected, index directed in reverse
	if !e.Directed {
		if from != to {
			ensureAdjacency(g.adjacencyList, to, from)
			g.adjacencyList[to][from][eid] = struct{}{}
		}
	} else {
		ensureAdjacency(g.reverseList, to, from)
		g.reverseList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// AddUndirectedEdge connects a and b so the road is traversable both ways.
// On an undirected graph this is a single AddEdge; on a directed graph it
// inserts the reciprocal arcs a→b and b→a with the same weight.
func (g *Graph) AddUndirectedEdge(a, b string, weight int64) error {
	if _, err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	if !g.Directed() || a == b {
		return nil
	}
	_, err := g.AddEdge(b, a, weight)

	return err
}

// HasEdge reports whether at least one edge from→to is traversable.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the edge with the given ID or ErrEdgeNotFound.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Weight returns the cheapest weight among edges traversable from→to.
//
// Errors:
//   - ErrVertexNotFound: if either endpoint is missing.
//   - ErrEdgeNotFound: if no edge leads from→to.
//
// Complexity: O(k) for k parallel edges.
func (g *Graph) Weight(from, to string) (int64, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[from]; !ok {
		return 0, vertexNotFound(from)
	}
	if _, ok := g.vertices[to]; !ok {
		return 0, vertexNotFound(to)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket := g.adjacencyList[from][to]
	if len(bucket) == 0 {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}
	first := true
	var best int64
	for eid := range bucket {
		if w := g.edges[eid].Weight; first || w < best {
			best, first = w, false
		}
	}

	return best, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.muEdgeAdj.RUnlock()

	sortBySeq(out)

	return out
}

// EdgeCount returns |E|.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID advances the edge counter and renders "e<n>".
// Caller must hold muEdgeAdj write lock.
func nextEdgeID(g *Graph) (uint64, string) {
	g.nextEdgeID++
	n := g.nextEdgeID
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return n, string(buf)
}

// sortBySeq orders edges by insertion sequence.
func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
