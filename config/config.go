// SPDX-License-Identifier: MIT

// Package config loads routesim settings from YAML and turns them into a
// populated topology store and engine options.
//
// A file either lists routers and links explicitly under `topology`, or asks
// for a generated network under `random`; never both.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/routesim/dijkstra"
	"github.com/katalvlaran/routesim/transit"
)

// ErrInvalidConfig marks a configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of a routesim YAML document.
type Config struct {
	Engine   EngineConfig   `yaml:"engine"`
	Log      LogConfig      `yaml:"log"`
	Topology TopologyConfig `yaml:"topology,omitempty"`
	Random   *RandomConfig  `yaml:"random,omitempty"`
}

// EngineConfig holds transit engine parameters.
type EngineConfig struct {
	Step       float64 `yaml:"step"`
	InitialTTL float64 `yaml:"initial_ttl"`
	CostPolicy string  `yaml:"cost_policy"`
	// Tick is the wall-clock interval between Advance calls, e.g. "100ms".
	Tick string `yaml:"tick"`
	// RouteCacheTTL bounds route reuse; "0s" disables the cache.
	RouteCacheTTL string `yaml:"route_cache_ttl,omitempty"`
	// Seed fixes packet identifiers when non-zero.
	Seed int64 `yaml:"seed,omitempty"`
}

// LogConfig selects the log level and an optional log file.
type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path,omitempty"`
}

// TopologyConfig is an explicit router and link listing.
type TopologyConfig struct {
	Routers []string     `yaml:"routers,omitempty"`
	Links   []LinkConfig `yaml:"links,omitempty"`
}

// LinkConfig describes one link. Unset attributes take topology defaults.
type LinkConfig struct {
	A          string   `yaml:"a"`
	B          string   `yaml:"b"`
	Latency    *float64 `yaml:"latency,omitempty"`
	Bandwidth  *float64 `yaml:"bandwidth,omitempty"`
	Congestion *float64 `yaml:"congestion,omitempty"`
	PacketLoss *float64 `yaml:"packet_loss,omitempty"`
	Status     string   `yaml:"status,omitempty"`
}

// RandomConfig requests a generated network.
type RandomConfig struct {
	Routers               int      `yaml:"routers"`
	Seed                  int64    `yaml:"seed"`
	ExtraLinks            *int     `yaml:"extra_links,omitempty"`
	CongestionProbability *float64 `yaml:"congestion_probability,omitempty"`
	FailureProbability    *float64 `yaml:"failure_probability,omitempty"`

	// IDScheme is router (default), decimal, symbol or prefix.
	IDScheme  string       `yaml:"id_scheme,omitempty"`
	IDPrefix  string       `yaml:"id_prefix,omitempty"`
	Latency   *RangeConfig `yaml:"latency,omitempty"`
	Bandwidth *RangeConfig `yaml:"bandwidth,omitempty"`
}

// RangeConfig bounds a generated link attribute; min == max fixes it.
type RangeConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r RangeConfig) validate(name string) error {
	if !(r.Min > 0) || math.IsInf(r.Max, 1) || !(r.Max >= r.Min) {
		return fmt.Errorf("%s=[%g,%g] must satisfy 0 < min ≤ max: %w", name, r.Min, r.Max, ErrInvalidConfig)
	}

	return nil
}

// Default tick between Advance calls.
const DefaultTick = 100 * time.Millisecond

// Default returns a configuration with engine defaults and an empty topology.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			Step:          transit.DefaultStep,
			InitialTTL:    transit.DefaultInitialTTL,
			CostPolicy:    dijkstra.PolicyLatency,
			Tick:          DefaultTick.String(),
			RouteCacheTTL: transit.DefaultRouteCacheTTL.String(),
		},
		Log: LogConfig{Level: "info"},
	}
}

// TickDuration returns the parsed engine tick.
func (c Config) TickDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Engine.Tick)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("engine.tick=%q must be a positive duration: %w", c.Engine.Tick, ErrInvalidConfig)
	}

	return d, nil
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", c.Log.Level, ErrInvalidConfig)
	}

	return lvl, nil
}

// EngineOptions translates the engine section into transit options.
func (c Config) EngineOptions() ([]transit.Option, error) {
	policy, err := dijkstra.PolicyByName(c.Engine.CostPolicy)
	if err != nil {
		return nil, fmt.Errorf("engine.cost_policy: %w: %w", err, ErrInvalidConfig)
	}
	if !(c.Engine.Step > 0) || math.IsInf(c.Engine.Step, 1) {
		return nil, fmt.Errorf("engine.step=%g must be > 0: %w", c.Engine.Step, ErrInvalidConfig)
	}
	if !(c.Engine.InitialTTL >= 0) {
		return nil, fmt.Errorf("engine.initial_ttl=%g must be ≥ 0: %w", c.Engine.InitialTTL, ErrInvalidConfig)
	}

	opts := []transit.Option{
		transit.WithCostPolicy(policy),
		transit.WithStep(c.Engine.Step),
		transit.WithInitialTTL(c.Engine.InitialTTL),
	}
	if c.Engine.RouteCacheTTL != "" {
		d, err := time.ParseDuration(c.Engine.RouteCacheTTL)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("engine.route_cache_ttl=%q: %w", c.Engine.RouteCacheTTL, ErrInvalidConfig)
		}
		opts = append(opts, transit.WithRouteCacheTTL(d))
	}
	if c.Engine.Seed != 0 {
		opts = append(opts, transit.WithSeed(c.Engine.Seed))
	}

	return opts, nil
}
