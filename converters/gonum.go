package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvroute/core"
)

// Sentinel errors for conversions.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrUnknownVertex indicates an ID that is not part of the converted graph.
	ErrUnknownVertex = errors.New("converters: unknown vertex")

	// ErrBadWeight indicates a gonum weight that is negative, infinite or
	// not a whole number, so it has no int64 equivalent.
	ErrBadWeight = errors.New("converters: weight is not a non-negative integer")
)

// Gonum is a gonum weighted graph built from a core.Graph together with the
// string↔int64 vertex mapping.
type Gonum struct {
	graph.Weighted

	ids   map[string]int64
	names []string
}

// ToGonum copies g into a gonum simple weighted graph. Directed graphs become
// *simple.WeightedDirectedGraph, undirected ones *simple.WeightedUndirectedGraph.
// Parallel edges collapse to the cheapest one; self-loops are dropped since
// gonum's simple graphs cannot hold them and they never shorten a route.
//
// Complexity: O(V log V + E).
func ToGonum(g *core.Graph) (*Gonum, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	type weightedBuilder interface {
		graph.Weighted
		graph.NodeAdder
		graph.WeightedEdgeAdder
	}
	var out weightedBuilder
	if g.Directed() {
		out = simple.NewWeightedDirectedGraph(0, math.Inf(1))
	} else {
		out = simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	}

	names := g.Vertices()
	ids := make(map[string]int64, len(names))
	for i, name := range names {
		ids[name] = int64(i)
		out.AddNode(simple.Node(i))
	}

	var u, v int64
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v = ids[e.From], ids[e.To]
		if w, ok := out.Weight(u, v); ok && w <= float64(e.Weight) {
			continue
		}
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(u), simple.Node(v), float64(e.Weight)))
	}

	return &Gonum{Weighted: out, ids: ids, names: names}, nil
}

// NodeID returns the gonum node ID assigned to the core vertex id.
func (c *Gonum) NodeID(id string) (int64, bool) {
	n, ok := c.ids[id]

	return n, ok
}

// Name returns the core vertex ID behind gonum node n, or "" if n is unknown.
func (c *Gonum) Name(n int64) string {
	if n < 0 || n >= int64(len(c.names)) {
		return ""
	}

	return c.names[n]
}

// ShortestPath runs gonum's Dijkstra from one core vertex to another and
// translates the result back to core IDs. An unreachable target yields a nil
// path and math.MaxInt64.
func (c *Gonum) ShortestPath(from, to string) ([]string, int64, error) {
	u, ok := c.ids[from]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	v, ok := c.ids[to]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}

	nodes, w := path.DijkstraFrom(simple.Node(u), c).To(v)
	if math.IsInf(w, 1) {
		return nil, math.MaxInt64, nil
	}
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = c.names[n.ID()]
	}

	return out, int64(w), nil
}

// FromGonum copies a gonum weighted graph into a new weighted core.Graph.
// Vertex IDs are produced by name; pass nil to use the decimal node ID.
// Undirected inputs must be declared with directed=false so each edge is
// inserted once.
//
// Errors:
//   - ErrNilGraph for a nil input.
//   - ErrBadWeight (wrapped) for weights with no int64 equivalent.
//   - core errors (wrapped) from AddVertex/AddEdge.
func FromGonum(gg graph.Weighted, directed bool, name func(int64) string) (*core.Graph, error) {
	if gg == nil {
		return nil, ErrNilGraph
	}
	if name == nil {
		name = func(id int64) string { return fmt.Sprint(id) }
	}

	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted())
	nodes := graph.NodesOf(gg.Nodes())
	for _, n := range nodes {
		if err := g.AddVertex(name(n.ID())); err != nil {
			return nil, fmt.Errorf("converters: node %d: %w", n.ID(), err)
		}
	}

	for _, n := range nodes {
		for _, m := range graph.NodesOf(gg.From(n.ID())) {
			if !directed && m.ID() < n.ID() {
				continue
			}
			w, ok := gg.Weight(n.ID(), m.ID())
			if !ok {
				continue
			}
			if w < 0 || math.IsInf(w, 0) || math.IsNaN(w) || w != math.Trunc(w) {
				return nil, fmt.Errorf("%w: %d→%d weight=%g", ErrBadWeight, n.ID(), m.ID(), w)
			}
			if _, err := g.AddEdge(name(n.ID()), name(m.ID()), int64(w)); err != nil {
				return nil, fmt.Errorf("converters: edge %d→%d: %w", n.ID(), m.ID(), err)
			}
		}
	}

	return g, nil
}
