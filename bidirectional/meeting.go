package bidirectional

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/core"
)

// meeting tracks μ, the cheapest start→goal cost found so far through a node
// labelled by both directions, and the node that achieves it.
type meeting struct {
	best int64
	node string
}

func newMeeting() *meeting { return &meeting{best: math.MaxInt64} }

// found reports whether any node has been labelled by both directions.
func (m *meeting) found() bool { return m.best != math.MaxInt64 }

// offer records id as a candidate when fwd and bwd both carry a label on it
// and their sum beats the current best. Equal sums keep the earlier node.
func (m *meeting) offer(id string, fwd, bwd *Agent) {
	df, ok := fwd.Cost(id)
	if !ok {
		return
	}
	db, ok := bwd.Cost(id)
	if !ok {
		return
	}
	if sum := df + db; sum < m.best {
		m.best = sum
		m.node = id
	}
}

// observe offers every node touched by one step of mover.
func (m *meeting) observe(rep StepReport, fwd, bwd *Agent) {
	m.offer(rep.Current, fwd, bwd)
	for _, u := range rep.Updated {
		m.offer(u.ID, fwd, bwd)
	}
}

// settled reports whether μ can no longer improve: every path not yet seen
// costs at least peekF + peekB, so once that bound reaches μ the search stops.
func (m *meeting) settled(fwd, bwd *Agent) bool {
	if !m.found() {
		return false
	}
	hf, okF := fwd.PeekMin()
	hb, okB := bwd.PeekMin()
	if !okF || !okB {
		return true
	}

	return hf.Cost+hb.Cost >= m.best
}

// join concatenates the forward path start→node with the backward path
// node→goal, sharing node once.
func join(fwd, bwd *Agent, node string) ([]string, error) {
	head, err := fwd.ExtractPath(node)
	if err != nil {
		return nil, err
	}
	tail, err := bwd.ExtractPath(node)
	if err != nil {
		return nil, err
	}

	path := make([]string, 0, len(head)+len(tail)-1)
	path = append(path, head...)
	path = append(path, tail[1:]...)

	return path, nil
}

// validatePath checks that path starts at start, ends at goal, that every
// consecutive pair is joined by an edge, and that the cheapest such edges sum
// to cost. Violations wrap ErrInvalidPath.
func validatePath(g *core.Graph, path []string, start, goal string, cost int64) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if path[0] != start || path[len(path)-1] != goal {
		return fmt.Errorf("%w: path runs %q→%q, want %q→%q",
			ErrInvalidPath, path[0], path[len(path)-1], start, goal)
	}

	var sum int64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i-1], path[i])
		if err != nil {
			return fmt.Errorf("%w: hop %q→%q: %w", ErrInvalidPath, path[i-1], path[i], err)
		}
		sum += w
	}
	if sum != cost {
		return fmt.Errorf("%w: edges sum to %d, reported %d", ErrInvalidPath, sum, cost)
	}

	return nil
}
