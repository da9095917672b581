// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewRouters).
//   • Adds routers via cfg.idFn in ascending index order (0..n-1).
//   • Emits links i-(i+1)%n in ascending i; the last one closes the ring.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routesim/topology"
)

// Cycle returns a Constructor that builds an n-router ring.
func Cycle(n int) Constructor {
	return func(t *topology.Topology, cfg builderConfig) error {
		if n < MinCycleRouters {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleRouters, ErrTooFewRouters)
		}
		if err := addRouters(MethodCycle, t, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addLink(MethodCycle, t, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
