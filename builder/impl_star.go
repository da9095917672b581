// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewRouters).
//   - Router index 0 is the hub; 1..n-1 are leaves, all named via cfg.idFn.
//   - Emits spokes hub-leaf[i] in increasing leaf index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routesim/topology"
)

// Star returns a Constructor that builds a hub-and-spoke topology.
func Star(n int) Constructor {
	return func(t *topology.Topology, cfg builderConfig) error {
		if n < MinStarRouters {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarRouters, ErrTooFewRouters)
		}
		if err := addRouters(MethodStar, t, cfg, n); err != nil {
			return err
		}
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := addLink(MethodStar, t, cfg, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
