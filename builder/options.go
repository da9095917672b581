// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
type Option func(*builderConfig)

// WithIDScheme sets the deterministic router ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLatencyFn overrides the per-link latency generator. Panics on nil.
// Generated latencies must be > 0 or AddLink rejects them.
func WithLatencyFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithLatencyFn(nil)")
	}
	return func(c *builderConfig) {
		c.latencyFn = fn
	}
}

// WithBandwidthFn overrides the per-link bandwidth generator. Panics on nil.
func WithBandwidthFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithBandwidthFn(nil)")
	}
	return func(c *builderConfig) {
		c.bandwidthFn = fn
	}
}

// WithCongestionFn overrides the congestion generator used for congested links.
// Panics on nil.
func WithCongestionFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithCongestionFn(nil)")
	}
	return func(c *builderConfig) {
		c.congestionFn = fn
	}
}

// WithCongestionProbability sets the per-link chance of random congestion.
// Panics if p ∉ [0,1].
func WithCongestionProbability(p float64) Option {
	mustProbability("WithCongestionProbability", p)
	return func(c *builderConfig) {
		c.congestionProb = p
	}
}

// WithFailureProbability sets the per-link chance of being marked failed.
// Panics if p ∉ [0,1].
func WithFailureProbability(p float64) Option {
	mustProbability("WithFailureProbability", p)
	return func(c *builderConfig) {
		c.failureProb = p
	}
}

// WithExtraLinks bounds the number of extra random links RandomNetwork tries
// to add on top of the spanning tree. Panics if max < 0.
func WithExtraLinks(max int) Option {
	if max < 0 {
		panic(fmt.Sprintf("builder: WithExtraLinks(%d)", max))
	}
	return func(c *builderConfig) {
		c.maxExtraLinks = max
	}
}

func mustProbability(name string, p float64) {
	if !(p >= MinProbability && p <= MaxProbability) {
		panic(fmt.Sprintf("builder: %s(%g) not in [0,1]", name, p))
	}
}
