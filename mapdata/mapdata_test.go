package mapdata_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/mapdata"
)

func TestRomania(t *testing.T) {
	g, err := mapdata.Romania()
	require.NoError(t, err)

	assert.Len(t, mapdata.Cities(g), 20)
	assert.Equal(t, 46, g.EdgeCount(), "23 two-way roads as reciprocal arcs")
	assert.True(t, g.Directed())

	for _, hop := range [][2]string{{"Arad", "Sibiu"}, {"Sibiu", "Arad"}} {
		w, err := g.Weight(hop[0], hop[1])
		require.NoError(t, err)
		assert.EqualValues(t, 140, w)
	}

	ids, err := g.NeighborIDs("Bucharest")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fagaras", "Giurgiu", "Pitesti", "Urziceni"}, ids)

	_, err = g.Lookup("Atlantis")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestCities_Sorted(t *testing.T) {
	g, err := mapdata.Romania()
	require.NoError(t, err)

	cities := mapdata.Cities(g)
	assert.Equal(t, "Arad", cities[0])
	assert.Equal(t, "Zerind", cities[len(cities)-1])
	assert.IsNonDecreasing(t, cities)
}

func TestLoad_Directed(t *testing.T) {
	doc := `
directed: true
cities: [Atlantis]
roads:
  - {from: A, to: B, cost: 4}
`
	g, err := mapdata.Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))
	assert.True(t, g.HasVertex("Atlantis"))
	assert.Equal(t, []string{"A", "Atlantis", "B"}, mapdata.Cities(g))
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", "", mapdata.ErrMalformedMap},
		{"not yaml", "roads: [", mapdata.ErrMalformedMap},
		{"unknown field", "highways: []", mapdata.ErrMalformedMap},
		{"missing endpoint", "roads:\n  - {from: A, cost: 3}", mapdata.ErrMalformedMap},
		{"negative cost", "roads:\n  - {from: A, to: B, cost: -3}", core.ErrNegativeWeight},
		{"duplicate road", "roads:\n  - {from: A, to: B, cost: 3}\n  - {from: A, to: B, cost: 5}", core.ErrMultiEdgeNotAllowed},
		{"empty city", "cities: ['']", mapdata.ErrMalformedMap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mapdata.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}
