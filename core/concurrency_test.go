// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/lvroute/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls
// on a graph allowing multi-edges are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), int64(id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReaders runs Neighbors/InNeighbors/Weight from many goroutines
// against a fixed graph, the access pattern of parallel searches.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddUndirectedEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1), int64(i+1)))
	}

	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for r := 0; r < readers; r++ {
		go func() {
			defer wg.Done()
			for i := 1; i < 50; i++ {
				id := fmt.Sprintf("N%d", i)
				out, err := g.Neighbors(id)
				require.NoError(t, err)
				require.Len(t, out, 2)
				in, err := g.InNeighbors(id)
				require.NoError(t, err)
				require.Len(t, in, 2)
			}
		}()
	}
	wg.Wait()
}
