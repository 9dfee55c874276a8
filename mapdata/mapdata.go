package mapdata

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/core"
)

// ErrMalformedMap indicates a map document that cannot be turned into a graph.
var ErrMalformedMap = errors.New("mapdata: malformed map")

//go:embed romania.yaml
var romaniaYAML []byte

// document is the YAML layout read by Load.
type document struct {
	Directed bool     `yaml:"directed"`
	Cities   []string `yaml:"cities"`
	Roads    []road   `yaml:"roads"`
}

type road struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Cost int64  `yaml:"cost"`
}

// Load reads a YAML map and returns it as a directed, weighted graph.
//
// Document layout:
//
//	directed: false        # optional; false means every road is two-way
//	cities: [Atlantis]     # optional; locations with no roads
//	roads:
//	  - {from: Arad, to: Sibiu, cost: 140}
//
// Two-way roads become a pair of reciprocal arcs, so the same graph serves
// both search directions.
//
// Errors:
//   - ErrMalformedMap: unreadable YAML, unknown fields, empty document,
//     or a road without both endpoints.
//   - core.ErrNegativeWeight (wrapped): a road with negative cost.
//   - core.ErrMultiEdgeNotAllowed (wrapped): the same road listed twice.
func Load(r io.Reader) (*core.Graph, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformedMap)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i, c := range doc.Cities {
		if err := g.AddVertex(c); err != nil {
			return nil, fmt.Errorf("%w: cities[%d]: %v", ErrMalformedMap, i, err)
		}
	}

	var err error
	for i, rd := range doc.Roads {
		if rd.From == "" || rd.To == "" {
			return nil, fmt.Errorf("%w: roads[%d] needs both from and to", ErrMalformedMap, i)
		}
		if doc.Directed {
			_, err = g.AddEdge(rd.From, rd.To, rd.Cost)
		} else {
			err = g.AddUndirectedEdge(rd.From, rd.To, rd.Cost)
		}
		if err != nil {
			return nil, fmt.Errorf("mapdata: roads[%d] %s-%s: %w", i, rd.From, rd.To, err)
		}
	}

	return g, nil
}

// Romania returns the built-in map of 20 Romanian cities and the 23 roads
// between them.
func Romania() (*core.Graph, error) {
	return Load(bytes.NewReader(romaniaYAML))
}

// Cities returns every location ID in g, sorted.
func Cities(g *core.Graph) []string {
	ids := g.Vertices()
	sort.Strings(ids)

	return ids
}
