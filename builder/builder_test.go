package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/core"
)

func weighted() []core.GraphOption { return []core.GraphOption{core.WithWeighted()} }

func TestBuildGraph_Topologies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		gopts []core.GraphOption
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{"Path(4)", weighted(), builder.Path(4), 4, 3},
		{"Cycle(5)", weighted(), builder.Cycle(5), 5, 5},
		{"Grid(2,3)", weighted(), builder.Grid(2, 3), 6, 7},
		{"Grid(2,3) directed", []core.GraphOption{core.WithWeighted(), core.WithDirected(true)}, builder.Grid(2, 3), 6, 14},
		{"RandomSparse(6,1)", weighted(), builder.RandomSparse(6, 1), 6, 15},
		{"RandomSparse(6,0)", weighted(), builder.RandomSparse(6, 0), 6, 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.gopts, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
			}
		})
	}
}

func TestBuildGraph_PathIsOneWayWhenDirected(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithPrefixIDs("v"), builder.WithConstantWeight(7)},
		builder.Path(3),
	)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("v0", "v1"))
	assert.False(t, g.HasEdge("v1", "v0"))
	w, err := g.Weight("v1", "v2")
	require.NoError(t, err)
	assert.EqualValues(t, 7, w)
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"path too short", builder.Path(1), builder.ErrTooFewVertices},
		{"cycle too short", builder.Cycle(2), builder.ErrTooFewVertices},
		{"grid empty", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"bad probability", builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"no rng", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(weighted(), nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 20)},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		return g
	}

	type arc struct {
		from, to string
		w        int64
	}
	flatten := func(g *core.Graph) []arc {
		var out []arc
		for _, e := range g.Edges() {
			out = append(out, arc{e.From, e.To, e.Weight})
		}
		return out
	}

	a, b := build(42), build(42)
	assert.Equal(t, flatten(a), flatten(b))
	assert.NotEmpty(t, flatten(a))
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(20))
	}
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.LetterIDFn(0))
	assert.Equal(t, "Z", builder.LetterIDFn(25))
	assert.Equal(t, "AA", builder.LetterIDFn(26))
	assert.Equal(t, "BA", builder.LetterIDFn(52))
	assert.Equal(t, "stop3", builder.PrefixIDFn("stop")(3))
	assert.Equal(t, "1,2", builder.GridID(1, 2))
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, int64(9), builder.ConstantWeightFn(9)(nil))
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 8)(nil))

	rng := rand.New(rand.NewSource(1))
	u := builder.UniformWeightFn(3, 8)
	for i := 0; i < 100; i++ {
		w := u(rng)
		assert.True(t, w >= 3 && w <= 8, "w=%d", w)
	}
}

func TestOptionPanics(t *testing.T) {
	for name, fn := range map[string]func(){
		"negative constant": func() { builder.ConstantWeightFn(-1) },
		"inverted uniform":  func() { builder.UniformWeightFn(5, 4) },
		"nil id scheme":     func() { builder.WithIDScheme(nil) },
		"nil weight fn":     func() { builder.WithWeightFn(nil) },
		"nil rand":          func() { builder.WithRand(nil) },
		"negative letter":   func() { builder.LetterIDFn(-1) },
		"negative prefix":   func() { builder.PrefixIDFn("x")(-1) },
	} {
		t.Run(name, func(t *testing.T) {
			assert.Panics(t, fn)
		})
	}
}

func TestBuildGraph_LetterIDsOnDirectedCycle(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithLetterIDs()},
		builder.Cycle(3),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("C", "A"))
	assert.False(t, g.HasEdge("B", "A"))
}
