// SPDX-License-Identifier: MIT

package transit

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/routesim/dijkstra"
)

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	policy     dijkstra.CostPolicy
	step       float64
	initialTTL float64
	clock      func() time.Time
	rng        *rand.Rand
	logger     *slog.Logger
	cacheTTL   time.Duration
	cacheCap   uint64
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		policy:     dijkstra.LatencyCost,
		step:       DefaultStep,
		initialTTL: DefaultInitialTTL,
		clock:      time.Now,
		logger:     slog.New(slog.DiscardHandler),
		cacheTTL:   DefaultRouteCacheTTL,
		cacheCap:   DefaultRouteCacheCap,
	}
}

// WithCostPolicy selects the link cost function. Panics on nil.
func WithCostPolicy(p dijkstra.CostPolicy) Option {
	if p == nil {
		panic("transit: WithCostPolicy(nil)")
	}
	return func(c *engineConfig) { c.policy = p }
}

// WithStep sets how far a packet moves along its path per Advance.
// Panics unless step is a positive finite number.
func WithStep(step float64) Option {
	if !(step > 0) || math.IsInf(step, 1) {
		panic(fmt.Sprintf("transit: WithStep(%g) must be > 0", step))
	}
	return func(c *engineConfig) { c.step = step }
}

// WithInitialTTL sets the starting ttl of each packet. Panics if ttl < 0.
func WithInitialTTL(ttl float64) Option {
	if ttl < 0 || math.IsNaN(ttl) {
		panic(fmt.Sprintf("transit: WithInitialTTL(%g) must be ≥ 0", ttl))
	}
	return func(c *engineConfig) { c.initialTTL = ttl }
}

// WithClock replaces time.Now for timestamps. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("transit: WithClock(nil)")
	}
	return func(c *engineConfig) { c.clock = now }
}

// WithRand sets the source used for packet identifiers. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("transit: WithRand(nil)")
	}
	return func(c *engineConfig) { c.rng = r }
}

// WithSeed seeds a private source for packet identifiers.
func WithSeed(seed int64) Option {
	return func(c *engineConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLogger routes engine events to l in addition to the in-memory log.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("transit: WithLogger(nil)")
	}
	return func(c *engineConfig) { c.logger = l }
}

// WithRouteCacheTTL sets how long computed routes are reused. Zero disables
// the cache.
func WithRouteCacheTTL(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("transit: WithRouteCacheTTL(%s) must be ≥ 0", d))
	}
	return func(c *engineConfig) { c.cacheTTL = d }
}

// SendOption configures a single SimulatePacket call.
type SendOption func(*sendConfig)

type sendConfig struct {
	count  int
	sizeKB int
}

// WithCount sets the number of packets in the batch.
func WithCount(n int) SendOption {
	return func(c *sendConfig) { c.count = n }
}

// WithSize sets the per-packet size in KB.
func WithSize(kb int) SendOption {
	return func(c *sendConfig) { c.sizeKB = kb }
}
