package frontier

import (
	"container/heap"
	"errors"
)

// ErrEmptyFrontier indicates PopMin was called with nothing pending.
var ErrEmptyFrontier = errors.New("frontier: frontier is empty")

// Entry is a queued node and its accumulated path cost.
type Entry struct {
	ID   string
	Cost int64
}

// Frontier is a min-priority queue of node IDs with decrease-key.
// The zero value is not usable; call New.
type Frontier struct {
	q     queue            // heap-ordered items
	index map[string]*item // node ID → live heap item
	seq   uint64           // insertion stamp for FIFO tie-breaks
}

// New returns an empty Frontier.
func New() *Frontier {
	return &Frontier{
		q:     make(queue, 0),
		index: make(map[string]*item),
	}
}

// Push queues id with the given cost, or lowers its cost if id is already
// queued and cost is strictly cheaper than the stored one. Any other call is
// a no-op. Reports whether the frontier changed.
//
// A decrease-key counts as a reinsertion: the entry is re-stamped, so among
// equal costs it pops after entries that were queued before it.
//
// Complexity: O(log n).
func (f *Frontier) Push(id string, cost int64) bool {
	f.seq++
	if it, ok := f.index[id]; ok {
		if cost >= it.cost {
			return false
		}
		it.cost = cost
		it.seq = f.seq
		heap.Fix(&f.q, it.index)

		return true
	}

	it := &item{id: id, cost: cost, seq: f.seq}
	heap.Push(&f.q, it)
	f.index[id] = it

	return true
}

// PopMin removes and returns the cheapest entry.
// Returns ErrEmptyFrontier if nothing is pending.
// Complexity: O(log n).
func (f *Frontier) PopMin() (Entry, error) {
	if f.q.Len() == 0 {
		return Entry{}, ErrEmptyFrontier
	}
	it := heap.Pop(&f.q).(*item)
	delete(f.index, it.id)

	return Entry{ID: it.id, Cost: it.cost}, nil
}

// PeekMin returns the cheapest entry without removing it.
// The boolean is false when the frontier is empty.
// Complexity: O(1).
func (f *Frontier) PeekMin() (Entry, bool) {
	if f.q.Len() == 0 {
		return Entry{}, false
	}
	it := f.q[0]

	return Entry{ID: it.id, Cost: it.cost}, true
}

// Contains reports whether id is currently queued.
func (f *Frontier) Contains(id string) bool {
	_, ok := f.index[id]

	return ok
}

// Cost returns the queued cost of id.
func (f *Frontier) Cost(id string) (int64, bool) {
	it, ok := f.index[id]
	if !ok {
		return 0, false
	}

	return it.cost, true
}

// Len returns the number of queued entries.
func (f *Frontier) Len() int { return f.q.Len() }

// item is a heap slot; index is maintained by the heap.Interface methods.
type item struct {
	id    string
	cost  int64
	seq   uint64
	index int
}

// queue implements heap.Interface ordered by (cost, seq) ascending.
type queue []*item

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}

	return q[i].seq < q[j].seq
}

func (q queue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *queue) Push(x interface{}) {
	it := x.(*item)
	it.index = len(*q)
	*q = append(*q, it)
}

func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // avoid memory leak
	it.index = -1  // for safety
	*q = old[:n-1]

	return it
}
