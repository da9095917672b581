// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn            = RouterIDFn          ("R1","R2",...)
//   • rng             = nil                 (pure/deterministic unless seeded)
//   • latencyFn       = UniformIntFn(5,50)  (DefaultLatency without rng)
//   • bandwidthFn     = ChoiceFn(10,50,100,1000) (DefaultBandwidth without rng)
//   • congestionFn    = UniformIntFn(20,80)
//   • congestionProb  = 0.3
//   • failureProb     = 0.1
//   • maxExtraLinks   = -1                  (means "n" for RandomNetwork)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Router ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	// Link attribute generators.
	latencyFn    WeightFn
	bandwidthFn  WeightFn
	congestionFn WeightFn

	// RandomNetwork perturbation knobs.
	congestionProb float64
	failureProb    float64
	maxExtraLinks  int
}

// Deterministic defaults (named, no magic numbers).
const (
	DefaultMinLatency       = 5
	DefaultMaxLatency       = 50
	DefaultMinCongestion    = 20
	DefaultMaxCongestion    = 80
	DefaultCongestionProb   = 0.3
	DefaultFailureProb      = 0.1
	defaultMaxExtraLinks    = -1
	defaultCongestionNoRand = 0
)

// DefaultBandwidths are the bandwidth classes RandomNetwork draws from.
var DefaultBandwidths = []float64{10, 50, 100, 1000}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:           RouterIDFn,
		rng:            nil,
		latencyFn:      UniformIntFn(DefaultMinLatency, DefaultMaxLatency, topologyDefaultLatency),
		bandwidthFn:    ChoiceFn(topologyDefaultBandwidth, DefaultBandwidths...),
		congestionFn:   UniformIntFn(DefaultMinCongestion, DefaultMaxCongestion, defaultCongestionNoRand),
		congestionProb: DefaultCongestionProb,
		failureProb:    DefaultFailureProb,
		maxExtraLinks:  defaultMaxExtraLinks,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
