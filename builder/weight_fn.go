// SPDX-License-Identifier: MIT

// Package builder provides helper functions and types for configuring link
// attribute distributions (latency, bandwidth, congestion) in constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/routesim/topology"
)

// Fallbacks used when a generator runs without an RNG.
const (
	topologyDefaultLatency   = topology.DefaultLatency
	topologyDefaultBandwidth = topology.DefaultBandwidth
)

// WeightFn produces a link attribute value given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformIntFn returns a WeightFn sampling an integer uniformly in [min, max]
// inclusive. Without an RNG it yields fallback.
// Panics if min < 0 or max < min.
// Complexity: O(1) time, O(1) space.
func UniformIntFn(min, max int, fallback float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformIntFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return fallback
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Without an RNG it yields min.
// Panics if min < 0 or max < min.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// RangeWeightFn returns ConstantWeightFn(min) for a degenerate range and
// UniformWeightFn(min, max) otherwise. Panics under the same rules as those.
func RangeWeightFn(min, max float64) WeightFn {
	if min == max {
		return ConstantWeightFn(min)
	}

	return UniformWeightFn(min, max)
}

// ChoiceFn returns a WeightFn picking one of values uniformly.
// Without an RNG it yields fallback. Panics on an empty value set.
func ChoiceFn(fallback float64, values ...float64) WeightFn {
	if len(values) == 0 {
		panic("ChoiceFn: empty value set")
	}
	vals := append([]float64(nil), values...)

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return fallback
		}

		return vals[rng.Intn(len(vals))]
	}
}
