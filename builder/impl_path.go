// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewRouters).
//   - Adds routers via cfg.idFn in ascending index order (0..n-1).
//   - Emits links (i-1)-i for i=1..n-1 in stable increasing order.
//   - Latency/bandwidth from cfg generators (defaults 10/100 without rng).
//
// Complexity:
//   - Time: O(n) routers + O(n-1) links.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routesim/topology"
)

// Path returns a Constructor that builds a linear chain of n routers.
func Path(n int) Constructor {
	return func(t *topology.Topology, cfg builderConfig) error {
		if n < MinPathRouters {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathRouters, ErrTooFewRouters)
		}
		if err := addRouters(MethodPath, t, cfg, n); err != nil {
			return err
		}

		// Emit chain links 0-1-2-...-(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err := addLink(MethodPath, t, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
