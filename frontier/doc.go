// Package frontier provides the cost-ordered set of discovered-but-not-yet-
// expanded nodes that a uniform-cost search works from.
//
// Overview:
//
//   - A Frontier is an indexed binary min-heap keyed by accumulated path cost.
//   - Each node appears at most once. Pushing a node that is already queued
//     lowers its priority in place when the new cost is strictly cheaper
//     (decrease-key) and is a no-op otherwise, so no stale entry is ever left
//     behind for the consumer to skip.
//   - Ties on cost pop in FIFO order of (re)insertion, which makes every search
//     built on top reproducible run after run.
//
// Complexity:
//
//   - Push / PopMin: O(log n)
//   - PeekMin / Contains / Cost / Len: O(1)
//
// Errors (sentinel):
//
//   - ErrEmptyFrontier: PopMin on an empty frontier.
//
// Thread safety:
//
//   - A Frontier is owned by a single search direction and is not safe for
//     concurrent use. Callers that share one across goroutines must
//     synchronize externally.
package frontier
