// SPDX-License-Identifier: MIT
// Package builder contains unit tests for the configuration primitives
// (builderConfig and Option) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigDefaults verifies the deterministic defaults of newBuilderConfig.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, "R1", cfg.idFn(0))
	assert.Equal(t, 10.0, cfg.latencyFn(nil))
	assert.Equal(t, 100.0, cfg.bandwidthFn(nil))
	assert.Equal(t, DefaultCongestionProb, cfg.congestionProb)
	assert.Equal(t, DefaultFailureProb, cfg.failureProb)
	assert.Equal(t, -1, cfg.maxExtraLinks)
}

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "core3", newBuilderConfig(WithPrefix("core")).idFn(2))
	// Last option wins.
	assert.Equal(t, "R4", newBuilderConfig(WithSymbolIDs(), WithIDScheme(RouterIDFn)).idFn(3))
	assert.Panics(t, func() { WithIDScheme(nil) })
}

// TestRNGOptions verifies reproducibility with WithSeed and the WithRand contract.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
	assert.Panics(t, func() { WithRand(nil) })
}

// TestProbabilityOptions verifies range enforcement on probability knobs.
func TestProbabilityOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithCongestionProbability(1), WithFailureProbability(0), WithExtraLinks(3))
	assert.Equal(t, 1.0, cfg.congestionProb)
	assert.Zero(t, cfg.failureProb)
	assert.Equal(t, 3, cfg.maxExtraLinks)

	assert.Panics(t, func() { WithCongestionProbability(1.5) })
	assert.Panics(t, func() { WithFailureProbability(-0.1) })
	assert.Panics(t, func() { WithExtraLinks(-1) })
	assert.Panics(t, func() { WithLatencyFn(nil) })
	assert.Panics(t, func() { WithBandwidthFn(nil) })
	assert.Panics(t, func() { WithCongestionFn(nil) })

	assert.ErrorIs(t, ValidateProbability("p", 2), ErrInvalidProbability)
	assert.NoError(t, ValidateProbability("p", 0.5))
	assert.ErrorIs(t, ValidateRouterCount(1), ErrTooFewRouters)
}
