// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// impl_random_network.go - implementation of RandomNetwork(n) constructor.
//
// Canonical model:
//   - Spanning tree first: router i (i ≥ 1) links to a uniformly random
//     router among 0..i-1, so the result is always connected before failures.
//   - Then up to maxExtraLinks (default n) extra trials: the trial count is
//     drawn uniformly in [0, max]; each trial picks two distinct routers and
//     adds a link unless one already exists.
//   - Finally every link created here, in creation order, independently gets
//     random congestion with probability congestionProb and is marked
//     LinkFailed with probability failureProb.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewRouters).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Adds routers via cfg.idFn in ascending index order (0..n-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) routers + O(n) links.
//   - Space: O(n) for the list of created links.
//
// Determinism:
//   - Every draw comes from cfg.rng in a fixed order, so a fixed seed always
//     yields the same topology.

package builder

import (
	"fmt"

	"github.com/katalvlaran/routesim/topology"
)

// RandomNetwork returns a Constructor that samples a connected random router
// network with random congestion and failures.
func RandomNetwork(n int) Constructor {
	return func(t *topology.Topology, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if n < MinRandomRouters {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				MethodRandomNetwork, n, MinRandomRouters, ErrTooFewRouters)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomNetwork, ErrNeedRandSource)
		}
		rng := cfg.rng

		// 2) Routers in index order.
		if err := addRouters(MethodRandomNetwork, t, cfg, n); err != nil {
			return err
		}

		created := make([]topology.LinkKey, 0, 2*n)
		link := func(i, j int) error {
			u, v := cfg.idFn(i), cfg.idFn(j)
			if err := addLink(MethodRandomNetwork, t, cfg, u, v); err != nil {
				return err
			}
			created = append(created, topology.MakeLinkKey(u, v))
			return nil
		}

		// 3) Spanning tree: each new router attaches to an earlier one.
		for i := 1; i < n; i++ {
			if err := link(rng.Intn(i), i); err != nil {
				return err
			}
		}

		// 4) Extra links; pairs that already have a link are skipped.
		maxExtra := cfg.maxExtraLinks
		if maxExtra < 0 {
			maxExtra = n
		}
		trials := rng.Intn(maxExtra + 1)
		for k := 0; k < trials; k++ {
			i := rng.Intn(n)
			j := rng.Intn(n - 1)
			if j >= i {
				j++
			}
			if t.HasLink(cfg.idFn(i), cfg.idFn(j)) {
				continue
			}
			if err := link(i, j); err != nil {
				return err
			}
		}

		// 5) Perturb the links created above.
		for _, key := range created {
			var opts []topology.LinkOption
			if rng.Float64() < cfg.congestionProb {
				opts = append(opts, topology.WithCongestion(cfg.congestionFn(rng)))
			}
			if rng.Float64() < cfg.failureProb {
				opts = append(opts, topology.WithStatus(topology.LinkFailed))
			}
			if len(opts) == 0 {
				continue
			}
			if err := t.UpdateLink(key.A, key.B, opts...); err != nil {
				return fmt.Errorf("%s: UpdateLink(%s): %w", MethodRandomNetwork, key, err)
			}
		}

		return nil
	}
}
