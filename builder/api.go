// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildTopology(bopts, cons...). Creates the store,
//     resolves cfg, runs cons in order. Apply does the same on an existing store.
//   - Functional options (Option) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical topologies.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routesim/topology"
)

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add routers via cfg.idFn and emit links in a stable, documented order.
//   - Draw every random value from cfg.rng, never from the global source.
type Constructor func(t *topology.Topology, cfg builderConfig) error

// BuildTopology creates a new store, resolves the builder configuration from
// bopts, and applies all constructors in order.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     ErrTooFewRouters, ErrInvalidProbability, ErrNeedRandSource, ...
func BuildTopology(bopts []Option, cons ...Constructor) (*topology.Topology, error) {
	t := topology.NewTopology()
	if err := Apply(t, bopts, cons...); err != nil {
		return nil, err
	}

	return t, nil
}

// Apply runs cons against an existing store. No partial cleanup is attempted
// when a constructor fails.
func Apply(t *topology.Topology, bopts []Option, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildTopology: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return fmt.Errorf("BuildTopology: %w", err)
		}
	}

	return nil
}

// addRouters inserts n routers named by cfg.idFn(0..n-1).
func addRouters(method string, t *topology.Topology, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := t.AddRouter(id); err != nil {
			return fmt.Errorf("%s: AddRouter(%s): %w", method, id, err)
		}
	}

	return nil
}

// addLink inserts u-v with latency and bandwidth drawn from cfg.
func addLink(method string, t *topology.Topology, cfg builderConfig, u, v string) error {
	lat := cfg.latencyFn(cfg.rng)
	bw := cfg.bandwidthFn(cfg.rng)
	if err := t.AddLink(u, v, topology.WithLatency(lat), topology.WithBandwidth(bw)); err != nil {
		return fmt.Errorf("%s: AddLink(%s-%s, lat=%g, bw=%g): %w", method, u, v, lat, bw, err)
	}

	return nil
}
