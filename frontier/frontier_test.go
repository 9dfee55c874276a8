package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lvroute/frontier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopMin_Empty(t *testing.T) {
	f := frontier.New()
	_, err := f.PopMin()
	require.ErrorIs(t, err, frontier.ErrEmptyFrontier)

	_, ok := f.PeekMin()
	assert.False(t, ok)
	assert.Zero(t, f.Len())
}

func TestPush_OrdersByCost(t *testing.T) {
	f := frontier.New()
	f.Push("C", 30)
	f.Push("A", 10)
	f.Push("B", 20)

	top, ok := f.PeekMin()
	require.True(t, ok)
	assert.Equal(t, frontier.Entry{ID: "A", Cost: 10}, top)

	var got []string
	for f.Len() > 0 {
		e, err := f.PopMin()
		require.NoError(t, err)
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestPush_DecreaseKeyOnlyWhenStrictlyCheaper(t *testing.T) {
	f := frontier.New()
	require.True(t, f.Push("X", 50))

	assert.False(t, f.Push("X", 50), "equal cost must be a no-op")
	assert.False(t, f.Push("X", 70), "higher cost must be a no-op")
	c, ok := f.Cost("X")
	require.True(t, ok)
	assert.EqualValues(t, 50, c)

	assert.True(t, f.Push("X", 5))
	c, _ = f.Cost("X")
	assert.EqualValues(t, 5, c)
	assert.Equal(t, 1, f.Len(), "decrease-key must not leave a stale duplicate")
}

func TestPush_DecreaseKeyReorders(t *testing.T) {
	f := frontier.New()
	f.Push("A", 10)
	f.Push("B", 20)
	f.Push("C", 30)
	f.Push("C", 1)

	e, err := f.PopMin()
	require.NoError(t, err)
	assert.Equal(t, "C", e.ID)
	assert.False(t, f.Contains("C"))
	assert.True(t, f.Contains("A"))
}

func TestTieBreak_FIFO(t *testing.T) {
	f := frontier.New()
	for _, id := range []string{"d", "a", "c", "b"} {
		f.Push(id, 7)
	}
	var got []string
	for f.Len() > 0 {
		e, _ := f.PopMin()
		got = append(got, e.ID)
	}
	assert.Equal(t, []string{"d", "a", "c", "b"}, got)
}

func TestTieBreak_DecreaseKeyIsReinsertion(t *testing.T) {
	f := frontier.New()
	f.Push("first", 5)
	f.Push("second", 9)
	f.Push("second", 5) // now ties with "first" but was re-stamped later

	e, _ := f.PopMin()
	assert.Equal(t, "first", e.ID)
	e, _ = f.PopMin()
	assert.Equal(t, "second", e.ID)
}

func TestRandomized_MatchesSortedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := frontier.New()
	best := map[string]int64{}
	for i := 0; i < 2000; i++ {
		id := string(rune('a' + rng.Intn(26)))
		cost := int64(rng.Intn(1000))
		f.Push(id, cost)
		if old, ok := best[id]; !ok || cost < old {
			best[id] = cost
		}
	}
	require.Equal(t, len(best), f.Len())

	want := make([]int64, 0, len(best))
	for _, c := range best {
		want = append(want, c)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	for i := range want {
		e, err := f.PopMin()
		require.NoError(t, err)
		assert.Equal(t, want[i], e.Cost)
		assert.Equal(t, best[e.ID], e.Cost)
	}
}
