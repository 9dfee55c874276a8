// File: methods_vertices.go
// Role: location registry. AddVertex/HasVertex/Lookup/Vertices/VertexCount.
// Locking: muVert guards the catalog; a new location also gets empty
// adjacency buckets under muEdgeAdj (order muVert -> muEdgeAdj).
package core

import "sort"

// AddVertex registers a location. Adding a known ID is a no-op; an empty ID
// is ErrEmptyVertexID. O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	ensureAdjID(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether id names a location. The empty ID never does.
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// Lookup resolves a location name. Searches call it for both endpoints before
// doing any work, so a typo fails fast with ErrVertexNotFound (wrapped with
// the name) or ErrEmptyVertexID.
func (g *Graph) Lookup(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, vertexNotFound(id)
	}

	return v, nil
}

// Vertices returns every location name in ascending order. O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()

	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of locations.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
