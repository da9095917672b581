// SPDX-License-Identifier: MIT
// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/routesim/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_negative", func() builder.WeightFn { return builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_minNegative", func() builder.WeightFn { return builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"UniformIntFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformIntFn(5, 4, 1) }},
		{"RangeWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.RangeWeightFn(5, 4) }},
		{"ChoiceFn_empty", func() builder.WeightFn { return builder.ChoiceFn(1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

// TestWeightFnRanges samples each generator and checks its domain.
func TestWeightFnRanges(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	lat := builder.UniformIntFn(5, 50, 10)
	bw := builder.ChoiceFn(100, builder.DefaultBandwidths...)
	uni := builder.UniformWeightFn(1, 2)
	for i := 0; i < 500; i++ {
		v := lat(rng)
		assert.True(t, v >= 5 && v <= 50 && v == float64(int(v)), "latency %g", v)
		assert.Contains(t, builder.DefaultBandwidths, bw(rng))
		u := uni(rng)
		assert.True(t, u >= 1 && u < 2, "uniform %g", u)
	}

	// Without an RNG every generator falls back deterministically.
	assert.Equal(t, 10.0, lat(nil))
	assert.Equal(t, 100.0, bw(nil))
	assert.Equal(t, 1.0, uni(nil))
	assert.Equal(t, 7.0, builder.ConstantWeightFn(7)(rng))
}

// TestRangeWeightFn checks that a degenerate range is constant and a proper
// range samples uniformly.
func TestRangeWeightFn(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	fixed := builder.RangeWeightFn(20, 20)
	span := builder.RangeWeightFn(5, 8)
	for i := 0; i < 200; i++ {
		assert.Equal(t, 20.0, fixed(rng))
		v := span(rng)
		assert.True(t, v >= 5 && v < 8, "range %g", v)
	}
}
