// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges i -> (i+1)%n in increasing i; the last edge closes the ring.
//   - Weight policy: if g.Weighted() then cfg.weightFn(cfg.rng) else 0.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges. Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Between any two ring positions there are exactly two candidate routes,
// one each way around.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}

		var (
			w        int64
			uID, vID string
		)
		for i := 0; i < n; i++ {
			uID = cfg.idFn(i)
			vID = cfg.idFn((i + 1) % n)
			w = edgeWeight(g, cfg)
			if _, err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodCycle, uID, vID, w, err)
			}
		}

		return nil
	}
}
