package bidirectional

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/frontier"
)

// Peeker exposes the head of a frontier. An Agent attached to an opposite
// Peeker treats "my current node is your cheapest pending node" as a meeting.
type Peeker interface {
	PeekMin() (frontier.Entry, bool)
}

// label is one direction's bookkeeping for one node.
type label struct {
	cost     int64  // best known cost from the agent's origin
	parent   string // previous node on that path; "" for the origin
	explored bool   // cost is final; never re-expanded
}

// Agent runs uniform-cost search in one direction.
//
// All search state (labels, frontier, explored set) is owned by the agent.
// The graph is only read, so agents for both directions, and any number of
// concurrent searches, can share one *core.Graph.
//
// An Agent is not safe for concurrent use.
type Agent struct {
	g      *core.Graph
	dir    Direction
	origin string
	goal   string

	state    State
	front    *frontier.Frontier
	labels   map[string]*label
	opposite Peeker
	meeting  string
	steps    int

	maxSteps int
	logger   *slog.Logger
}

// NewAgent prepares an Idle agent that searches from origin toward goal,
// walking outgoing edges (Forward) or incoming edges (Backward).
// Only Options.MaxSteps and Options.Logger apply to an agent.
func NewAgent(g *core.Graph, dir Direction, origin, goal string, opts ...Option) *Agent {
	cfg := resolveOptions(opts)

	return &Agent{
		g:        g,
		dir:      dir,
		origin:   origin,
		goal:     goal,
		state:    Idle,
		front:    frontier.New(),
		labels:   make(map[string]*label),
		maxSteps: cfg.MaxSteps,
		logger:   cfg.Logger.With(slog.String("direction", dir.String())),
	}
}

// Attach makes p the opposite frontier for the meeting test in Step.
// Passing nil disables the test; the agent then stops only at its goal.
func (a *Agent) Attach(p Peeker) { a.opposite = p }

// Start labels the origin with cost 0, queues it, and enters Running.
func (a *Agent) Start() error {
	if a.state != Idle {
		return fmt.Errorf("%w: start while %s", ErrAgentState, a.state)
	}
	a.labels[a.origin] = &label{cost: 0}
	a.front.Push(a.origin, 0)
	a.state = Running

	return nil
}

// Step expands the cheapest pending node.
//
// Stages:
//  1. Pop the frontier minimum as current and mark it explored.
//  2. If current is the goal, or equals the opposite frontier's head,
//     enter Found and record current as the meeting node.
//  3. Otherwise relax every edge leaving current (entering it, for Backward):
//     unseen targets are labelled and queued; queued targets whose cost drops
//     are relabelled and re-prioritized; explored targets are left alone.
//  4. If the frontier is now empty, enter Exhausted.
//
// Errors:
//   - ErrAgentState unless Running.
//   - ErrStepBudgetExceeded once MaxSteps expansions were made.
//   - frontier.ErrEmptyFrontier (wrapped) if nothing was pending; the agent is Exhausted.
func (a *Agent) Step() (StepReport, error) {
	if a.state != Running {
		return StepReport{}, fmt.Errorf("%w: step while %s", ErrAgentState, a.state)
	}
	if a.maxSteps > 0 && a.steps >= a.maxSteps {
		return StepReport{}, fmt.Errorf("%w: %s agent after %d steps", ErrStepBudgetExceeded, a.dir, a.steps)
	}

	// 1) Pop and finalize.
	cur, err := a.front.PopMin()
	if err != nil {
		a.state = Exhausted
		return StepReport{}, fmt.Errorf("%s search from %q: %w", a.dir, a.origin, err)
	}
	a.steps++
	a.labels[cur.ID].explored = true
	report := StepReport{Current: cur.ID, Cost: cur.Cost}

	// 2) Meeting test.
	if cur.ID == a.goal || a.touches(cur.ID) {
		a.state = Found
		a.meeting = cur.ID
		report.Met = true

		return report, nil
	}

	// 3) Relax.
	edges, err := a.edges(cur.ID)
	if err != nil {
		return report, fmt.Errorf("%s expand %q: %w", a.dir, cur.ID, err)
	}
	var (
		v     string
		cost  int64
		lv    *label
		known bool
	)
	for _, e := range edges {
		v = e.Opposite(cur.ID)
		cost = cur.Cost + e.Weight

		lv, known = a.labels[v]
		switch {
		case !known:
			a.labels[v] = &label{cost: cost, parent: cur.ID}
			a.front.Push(v, cost)
			report.Updated = append(report.Updated, frontier.Entry{ID: v, Cost: cost})
		case lv.explored:
			// final; never reopened
		case cost < lv.cost:
			lv.cost = cost
			lv.parent = cur.ID
			a.front.Push(v, cost)
			report.Updated = append(report.Updated, frontier.Entry{ID: v, Cost: cost})
			frontierRelaxations.WithLabelValues(a.dir.String()).Inc()
		}
	}

	// 4) Exhaustion.
	if a.front.Len() == 0 {
		a.state = Exhausted
	}

	return report, nil
}

// Run steps until the agent is Found or Exhausted.
// Cancellation of ctx is checked before every step.
func (a *Agent) Run(ctx context.Context) error {
	if a.state == Idle {
		return fmt.Errorf("%w: run before start", ErrAgentState)
	}
	for a.state == Running {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := a.Step(); err != nil {
			return err
		}
	}

	return nil
}

// ExtractPath rebuilds the path between this agent's origin and target from
// parent links. Forward agents return origin→target; Backward agents return
// target→origin. Either way the slice reads in travel order.
//
// A parent chain that revisits a node is cut at the repeat, logged, and
// counted; the walk never loops.
func (a *Agent) ExtractPath(target string) ([]string, error) {
	if _, ok := a.labels[target]; !ok {
		return nil, fmt.Errorf("%w: %s agent never labelled %q", ErrNotReached, a.dir, target)
	}

	path := make([]string, 0, 8)
	seen := make(map[string]struct{}, 8)
	for id := target; ; {
		if _, dup := seen[id]; dup {
			pathCycleTruncations.Inc()
			a.logger.Warn("parent chain loops, path truncated",
				slog.String("target", target),
				slog.String("repeated", id),
				slog.Int("kept", len(path)))
			break
		}
		seen[id] = struct{}{}
		path = append(path, id)

		l := a.labels[id]
		if l == nil || l.parent == "" {
			break
		}
		id = l.parent
	}

	if a.dir == Forward {
		reverse(path)
	}

	return path, nil
}

// TotalCost returns the cost recorded on target: the distance from this
// agent's origin along the path ExtractPath(target) returns.
func (a *Agent) TotalCost(target string) (int64, error) {
	l, ok := a.labels[target]
	if !ok {
		return 0, fmt.Errorf("%w: %s agent never labelled %q", ErrNotReached, a.dir, target)
	}

	return l.cost, nil
}

// Cost returns the label on id, whether final or still queued.
func (a *Agent) Cost(id string) (int64, bool) {
	l, ok := a.labels[id]
	if !ok {
		return 0, false
	}

	return l.cost, true
}

// Explored reports whether id has been expanded by this agent.
func (a *Agent) Explored(id string) bool {
	l, ok := a.labels[id]

	return ok && l.explored
}

// PeekMin returns this agent's frontier head.
func (a *Agent) PeekMin() (frontier.Entry, bool) { return a.front.PeekMin() }

// State returns the lifecycle state.
func (a *Agent) State() State { return a.state }

// Direction returns the direction this agent walks edges.
func (a *Agent) Direction() Direction { return a.dir }

// Meeting returns the node that moved the agent to Found, or "".
func (a *Agent) Meeting() string { return a.meeting }

// Steps returns the number of expansions made so far.
func (a *Agent) Steps() int { return a.steps }

// touches reports whether id is the opposite frontier's head.
func (a *Agent) touches(id string) bool {
	if a.opposite == nil {
		return false
	}
	head, ok := a.opposite.PeekMin()

	return ok && head.ID == id
}

func (a *Agent) edges(id string) ([]*core.Edge, error) {
	if a.dir == Backward {
		return a.g.InNeighbors(id)
	}

	return a.g.Neighbors(id)
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
