package bidirectional

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvroute/frontier"
)

// Sentinel errors returned by agents and by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("bidirectional: graph is nil")

	// ErrLocationNotFound indicates the start or goal is not a vertex of the graph.
	// It always wraps core.ErrVertexNotFound (or core.ErrEmptyVertexID).
	ErrLocationNotFound = errors.New("bidirectional: location not found")

	// ErrNoPathFound indicates that no sequence of edges connects start to goal.
	ErrNoPathFound = errors.New("bidirectional: no path found")

	// ErrStepBudgetExceeded indicates the search hit Options.MaxSteps before deciding.
	ErrStepBudgetExceeded = errors.New("bidirectional: step budget exceeded")

	// ErrAgentState indicates an agent method was called in the wrong lifecycle state.
	ErrAgentState = errors.New("bidirectional: invalid agent state")

	// ErrNotReached indicates a path or cost was requested for a node the agent never labelled.
	ErrNotReached = errors.New("bidirectional: node not reached")

	// ErrInvalidPath indicates a reconstructed path failed endpoint or edge validation.
	ErrInvalidPath = errors.New("bidirectional: invalid path")

	// ErrBadMaxSteps indicates WithMaxSteps received a non-positive value.
	ErrBadMaxSteps = errors.New("bidirectional: MaxSteps must be positive")
)

// Direction selects which way an agent walks edges.
type Direction int

const (
	// Forward follows outgoing edges, starting from the overall start.
	Forward Direction = iota

	// Backward follows incoming edges, starting from the overall goal.
	Backward
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// State is an agent's lifecycle position: Idle → Running → {Found, Exhausted}.
type State int

const (
	// Idle agents have not been started.
	Idle State = iota

	// Running agents have a non-empty frontier and no meeting yet.
	Running

	// Found agents reached their goal or touched the opposite frontier.
	Found

	// Exhausted agents emptied their frontier without finding anything.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Strategy selects how Search decides the two directions have met.
type Strategy int

const (
	// StrategyOptimal alternates the two directions and stops only once the
	// best connecting cost μ seen so far is provably minimal:
	// peekForward + peekBackward >= μ.
	StrategyOptimal Strategy = iota

	// StrategyFrontierTouch runs the backward direction until its current
	// node equals the forward frontier head (or the start), validates the
	// path it reconstructs, and falls back to a plain forward search when
	// that path does not actually join start to goal.
	StrategyFrontierTouch
)

func (s Strategy) String() string {
	switch s {
	case StrategyOptimal:
		return "optimal"
	case StrategyFrontierTouch:
		return "frontier_touch"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Mode selects how StrategyOptimal schedules the two directions.
// StrategyFrontierTouch is sequential by construction and ignores Mode.
type Mode int

const (
	// ModeSequential alternates Step calls on one goroutine.
	ModeSequential Mode = iota

	// ModeParallel runs each direction on its own goroutine. Every step and
	// the meeting check that follows it run under one shared lock, so the
	// frontier head each side reads from the other is a consistent snapshot.
	ModeParallel
)

func (m Mode) String() string {
	switch m {
	case ModeSequential:
		return "sequential"
	case ModeParallel:
		return "parallel"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options configures Search and Agent behavior.
//
// Strategy – meeting rule (default StrategyOptimal).
// Mode     – scheduling of StrategyOptimal (default ModeSequential).
// MaxSteps – cap on node expansions; 0 means unlimited.
// Logger   – structured logger; defaults to a discarding logger.
type Options struct {
	Strategy Strategy
	Mode     Mode
	MaxSteps int
	Logger   *slog.Logger
}

// Option represents a functional option for configuring Search and agents.
type Option func(*Options)

// WithStrategy selects the meeting rule.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithMode selects sequential or parallel scheduling.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithMaxSteps caps the number of node expansions. Search counts both
// directions together; an Agent run on its own counts its own.
// Non-positive values panic with ErrBadMaxSteps.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxSteps.Error())
		}
		o.MaxSteps = n
	}
}

// WithLogger routes diagnostics to l. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the defaults: optimal strategy, sequential mode,
// unlimited steps, discarding logger.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyOptimal,
		Mode:     ModeSequential,
		MaxSteps: 0,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func resolveOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// StepReport describes one expansion performed by Agent.Step.
type StepReport struct {
	// Current is the node popped and marked explored.
	Current string
	// Cost is Current's final cost from the agent's origin.
	Cost int64
	// Updated lists every node labelled or relaxed by this step, with its new cost.
	Updated []frontier.Entry
	// Met is true when this step moved the agent to Found.
	Met bool
}

// Expansions counts node expansions per direction.
type Expansions struct {
	Forward  int
	Backward int
}

// Total returns Forward + Backward.
func (e Expansions) Total() int { return e.Forward + e.Backward }

// Result is a validated start→goal route.
type Result struct {
	// RunID correlates this result with log lines and spans.
	RunID uuid.UUID
	// Path lists location IDs from start to goal, both inclusive.
	Path []string
	// Cost is the sum of edge weights along Path.
	Cost int64
	// Meeting is the node at which the two directions were joined.
	Meeting string
	// Strategy is the meeting rule that produced this result.
	Strategy Strategy
	// Expansions counts node expansions per direction.
	Expansions Expansions
	// Fallback is true when StrategyFrontierTouch had to discard the
	// backward result and rerun a forward-only search.
	Fallback bool
}

// String renders "A -> B -> C (cost)".
func (r *Result) String() string {
	if r == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s (%d)", strings.Join(r.Path, " -> "), r.Cost)
}
