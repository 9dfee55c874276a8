package bidirectional

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvroute/core"
)

const tracerName = "github.com/katalvlaran/lvroute/bidirectional"

// Search returns a minimum-cost route from start to goal.
//
// Both identifiers are resolved first; an unknown one fails with
// ErrLocationNotFound and nothing is expanded. start == goal yields the
// one-node path at cost 0. Otherwise two agents search from either end and
// are joined according to Options.Strategy. Every returned path has been
// checked against the graph: endpoints, one edge per hop, and summed weight.
//
// Errors:
//   - ErrNilGraph, ErrLocationNotFound.
//   - ErrNoPathFound when either direction exhausts without a connection.
//   - ErrStepBudgetExceeded when Options.MaxSteps expansions were not enough.
//   - ctx.Err() (wrapped) on cancellation.
//   - ErrInvalidPath if a reconstructed route fails validation.
func Search(ctx context.Context, g *core.Graph, start, goal string, opts ...Option) (res *Result, err error) {
	cfg := resolveOptions(opts)
	runID := uuid.New()
	logger := cfg.Logger.With(
		slog.String("run_id", runID.String()),
		slog.String("strategy", cfg.Strategy.String()),
	)

	ctx, span := otel.Tracer(tracerName).Start(ctx, "bidirectional.Search",
		trace.WithAttributes(
			attribute.String("lvroute.run_id", runID.String()),
			attribute.String("lvroute.start", start),
			attribute.String("lvroute.goal", goal),
			attribute.String("lvroute.strategy", cfg.Strategy.String()),
			attribute.String("lvroute.mode", cfg.Mode.String()),
		))
	began := time.Now()
	defer func() {
		searchDuration.WithLabelValues(cfg.Strategy.String()).Observe(time.Since(began).Seconds())
		searchTotal.WithLabelValues(cfg.Strategy.String(), resultLabel(err)).Inc()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Debug("search failed", slog.String("error", err.Error()))
		} else {
			span.SetAttributes(
				attribute.Int64("lvroute.cost", res.Cost),
				attribute.Int("lvroute.expansions", res.Expansions.Total()),
			)
			searchExpansions.Observe(float64(res.Expansions.Total()))
			logger.Debug("search finished",
				slog.Int64("cost", res.Cost),
				slog.Int("steps", res.Expansions.Total()),
				slog.String("meeting", res.Meeting))
		}
		span.End()
	}()

	if g == nil {
		return nil, ErrNilGraph
	}
	if _, err = g.Lookup(start); err != nil {
		return nil, fmt.Errorf("%w: start: %w", ErrLocationNotFound, err)
	}
	if _, err = g.Lookup(goal); err != nil {
		return nil, fmt.Errorf("%w: goal: %w", ErrLocationNotFound, err)
	}
	logger.Debug("search started", slog.String("start", start), slog.String("goal", goal))

	if start == goal {
		return &Result{RunID: runID, Path: []string{start}, Meeting: start, Strategy: cfg.Strategy}, nil
	}

	s := &search{
		g:      g,
		start:  start,
		goal:   goal,
		cfg:    cfg,
		logger: logger,
		fwd:    NewAgent(g, Forward, start, goal, WithLogger(logger)),
		bwd:    NewAgent(g, Backward, goal, start, WithLogger(logger)),
	}

	switch {
	case cfg.Strategy == StrategyFrontierTouch:
		res, err = s.frontierTouch(ctx)
	case cfg.Mode == ModeParallel:
		res, err = s.optimalParallel(ctx)
	default:
		res, err = s.optimalSequential(ctx)
	}
	if err != nil {
		return nil, err
	}

	if err = validatePath(g, res.Path, start, goal, res.Cost); err != nil {
		return nil, err
	}
	res.RunID = runID
	res.Strategy = cfg.Strategy
	res.Expansions = Expansions{Forward: s.fwd.Steps(), Backward: s.bwd.Steps()}

	return res, nil
}

// search holds one Search call's agents and budget.
type search struct {
	g           *core.Graph
	start, goal string
	cfg         Options
	logger      *slog.Logger

	fwd, bwd *Agent
	steps    int // expansions by both agents
}

// step advances ag by one expansion after checking ctx and the shared budget.
func (s *search) step(ctx context.Context, ag *Agent) (StepReport, error) {
	if err := ctx.Err(); err != nil {
		return StepReport{}, fmt.Errorf("bidirectional: search interrupted: %w", err)
	}
	if s.cfg.MaxSteps > 0 && s.steps >= s.cfg.MaxSteps {
		return StepReport{}, fmt.Errorf("%w: %d expansions", ErrStepBudgetExceeded, s.steps)
	}
	rep, err := ag.Step()
	if err != nil {
		return rep, err
	}
	s.steps++

	return rep, nil
}

func (s *search) startBoth() error {
	if err := s.fwd.Start(); err != nil {
		return err
	}

	return s.bwd.Start()
}

// advance runs one step of mover and folds it into mu.
// It reports true once the search can stop.
func (s *search) advance(ctx context.Context, mover *Agent, mu *meeting) (bool, error) {
	rep, err := s.step(ctx, mover)
	if err != nil {
		return false, err
	}
	mu.observe(rep, s.fwd, s.bwd)

	if mover.State() != Running {
		return true, nil
	}

	return mu.settled(s.fwd, s.bwd), nil
}

// optimalSequential alternates forward and backward steps on the calling
// goroutine until μ is settled or a direction finishes.
func (s *search) optimalSequential(ctx context.Context) (*Result, error) {
	if err := s.startBoth(); err != nil {
		return nil, err
	}
	mu := newMeeting()

	for mover := s.fwd; ; {
		done, err := s.advance(ctx, mover, mu)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		if mover == s.fwd {
			mover = s.bwd
		} else {
			mover = s.fwd
		}
	}

	return s.optimalResult(mu)
}

// optimalParallel runs each direction on its own goroutine. One mutex
// serializes every step together with the meeting bookkeeping that follows
// it, so each side always reads a consistent head from the other.
func (s *search) optimalParallel(ctx context.Context) (*Result, error) {
	if err := s.startBoth(); err != nil {
		return nil, err
	}
	var (
		mu   = newMeeting()
		lock sync.Mutex
		done bool
	)

	eg, egCtx := errgroup.WithContext(ctx)
	for _, ag := range []*Agent{s.fwd, s.bwd} {
		ag := ag
		eg.Go(func() error {
			for {
				lock.Lock()
				if done {
					lock.Unlock()
					return nil
				}
				stop, err := s.advance(egCtx, ag, mu)
				if stop || err != nil {
					done = true
				}
				lock.Unlock()
				if err != nil {
					return err
				}
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return s.optimalResult(mu)
}

func (s *search) optimalResult(mu *meeting) (*Result, error) {
	if !mu.found() {
		return nil, fmt.Errorf("%w: %q→%q (expanded=%d)", ErrNoPathFound, s.start, s.goal, s.steps)
	}
	path, err := join(s.fwd, s.bwd, mu.node)
	if err != nil {
		return nil, err
	}

	return &Result{Path: path, Cost: mu.best, Meeting: mu.node}, nil
}

// frontierTouch runs the backward agent against the started, unexpanded
// forward frontier, then hands over to resolveTouch.
func (s *search) frontierTouch(ctx context.Context) (*Result, error) {
	if err := s.fwd.Start(); err != nil {
		return nil, err
	}
	s.bwd.Attach(s.fwd)
	if err := s.bwd.Start(); err != nil {
		return nil, err
	}
	for s.bwd.State() == Running {
		if _, err := s.step(ctx, s.bwd); err != nil {
			return nil, err
		}
	}

	return s.resolveTouch(ctx)
}

// resolveTouch accepts the backward route if it reads start→goal and its
// edges add up; otherwise it discards it and drives the forward agent alone
// to the goal.
func (s *search) resolveTouch(ctx context.Context) (*Result, error) {
	if s.bwd.State() == Found {
		node := s.bwd.Meeting()
		path, err := s.bwd.ExtractPath(node)
		if err != nil {
			return nil, err
		}
		cost, err := s.bwd.TotalCost(node)
		if err != nil {
			return nil, err
		}
		verr := validatePath(s.g, path, s.start, s.goal, cost)
		if verr == nil {
			return &Result{Path: path, Cost: cost, Meeting: node}, nil
		}
		s.logger.Warn("backward route rejected, running forward search",
			slog.String("meeting", node),
			slog.String("reason", verr.Error()))
	}

	s.fwd.Attach(nil)
	for s.fwd.State() == Running {
		if _, err := s.step(ctx, s.fwd); err != nil {
			return nil, err
		}
	}
	if s.fwd.State() != Found {
		return nil, fmt.Errorf("%w: %q→%q (expanded=%d)", ErrNoPathFound, s.start, s.goal, s.steps)
	}
	path, err := s.fwd.ExtractPath(s.goal)
	if err != nil {
		return nil, err
	}
	cost, err := s.fwd.TotalCost(s.goal)
	if err != nil {
		return nil, err
	}

	return &Result{Path: path, Cost: cost, Meeting: s.goal, Fallback: true}, nil
}

// resultLabel maps a Search error to its searchTotal label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return resultFound
	case errors.Is(err, ErrNoPathFound):
		return resultNoPath
	case errors.Is(err, ErrLocationNotFound):
		return resultNotFound
	case errors.Is(err, ErrStepBudgetExceeded):
		return resultBudget
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return resultCanceled
	case errors.Is(err, ErrInvalidPath):
		return resultInvalidPath
	default:
		return resultError
	}
}
