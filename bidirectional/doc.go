// Package bidirectional finds a minimum-cost route between two locations by
// running uniform-cost search from both ends at once.
//
// Overview:
//
//   - An Agent is one search direction. Forward agents walk outgoing edges from
//     the start; Backward agents walk incoming edges from the goal, so directed
//     graphs are searched correctly. Each agent owns its labels (cost, parent,
//     explored) and its frontier; the *core.Graph is only read.
//   - Agents move Idle → Running → {Found, Exhausted}. Step expands one node;
//     Run steps until the agent settles.
//   - Search resolves both endpoints, drives a pair of agents, joins their
//     halves and validates the result against the graph before returning it.
//
// Strategies:
//
//   - StrategyOptimal (default): the agents alternate. μ is the cheapest
//     dF(v)+dB(v) over nodes labelled by both. The search stops once
//     peekF + peekB >= μ, which proves no cheaper route is left unseen.
//   - StrategyFrontierTouch: the backward agent runs until its current node is
//     the forward frontier head. Its route is validated; a route that does not
//     join start to goal is dropped and the forward agent is run alone.
//
// Execution modes (StrategyOptimal):
//
//   - ModeSequential: both agents step on the calling goroutine.
//   - ModeParallel: one goroutine per agent under an errgroup. A shared mutex
//     covers each step and the μ update after it.
//
// Errors (sentinel):
//
//   - ErrNilGraph, ErrLocationNotFound: rejected before any expansion.
//   - ErrNoPathFound: a direction exhausted; never reported as an empty path.
//   - ErrStepBudgetExceeded: WithMaxSteps cap reached.
//   - ErrAgentState, ErrNotReached: misuse of an Agent.
//   - ErrInvalidPath: a reconstructed route failed validation.
//
// Observability:
//
//   - Structured logs via log/slog (WithLogger; discarded by default), keyed by run_id.
//   - Prometheus collectors registered on the default registry:
//     lvroute_search_total, lvroute_search_duration_seconds,
//     lvroute_search_expansions, lvroute_frontier_relaxations_total,
//     lvroute_path_cycle_truncations_total.
//   - One OpenTelemetry span "bidirectional.Search" per call, from the global
//     tracer provider.
//
// Complexity:
//
//   - Time O((V + E) log V) per direction; Space O(V) per direction.
package bidirectional
