// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/routesim/builder"
	"github.com/katalvlaran/routesim/topology"
)

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default() and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("config: decode: %v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks every section. It does not touch any store.
func (c Config) Validate() error {
	if _, err := c.EngineOptions(); err != nil {
		return err
	}
	if _, err := c.TickDuration(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	if c.Random != nil {
		if len(c.Topology.Routers) > 0 || len(c.Topology.Links) > 0 {
			return fmt.Errorf("topology and random are mutually exclusive: %w", ErrInvalidConfig)
		}
		if err := builder.ValidateRouterCount(c.Random.Routers); err != nil {
			return fmt.Errorf("random.routers: %w: %w", err, ErrInvalidConfig)
		}
		if c.Random.ExtraLinks != nil && *c.Random.ExtraLinks < 0 {
			return fmt.Errorf("random.extra_links=%d must be ≥ 0: %w", *c.Random.ExtraLinks, ErrInvalidConfig)
		}
		for name, p := range map[string]*float64{
			"random.congestion_probability": c.Random.CongestionProbability,
			"random.failure_probability":    c.Random.FailureProbability,
		} {
			if p == nil {
				continue
			}
			if err := builder.ValidateProbability(name, *p); err != nil {
				return fmt.Errorf("%w: %w", err, ErrInvalidConfig)
			}
		}
		if _, err := builder.IDSchemeByName(c.Random.IDScheme, c.Random.IDPrefix, c.Random.Routers); err != nil {
			return fmt.Errorf("random.id_scheme: %w: %w", err, ErrInvalidConfig)
		}
		for name, r := range map[string]*RangeConfig{
			"random.latency":   c.Random.Latency,
			"random.bandwidth": c.Random.Bandwidth,
		} {
			if r == nil {
				continue
			}
			if err := r.validate(name); err != nil {
				return err
			}
		}
		return nil
	}

	for i, l := range c.Topology.Links {
		if err := l.patch().Validate(); err != nil {
			return fmt.Errorf("topology.links[%d] %s-%s: %w: %w", i, l.A, l.B, err, ErrInvalidConfig)
		}
	}

	return nil
}

// BuildTopology populates a new store from the topology or random section.
func (c Config) BuildTopology() (*topology.Topology, error) {
	if r := c.Random; r != nil {
		bopts := []builder.Option{builder.WithSeed(r.Seed)}
		if r.ExtraLinks != nil {
			bopts = append(bopts, builder.WithExtraLinks(*r.ExtraLinks))
		}
		if r.CongestionProbability != nil {
			bopts = append(bopts, builder.WithCongestionProbability(*r.CongestionProbability))
		}
		if r.FailureProbability != nil {
			bopts = append(bopts, builder.WithFailureProbability(*r.FailureProbability))
		}
		idFn, err := builder.IDSchemeByName(r.IDScheme, r.IDPrefix, r.Routers)
		if err != nil {
			return nil, fmt.Errorf("random.id_scheme: %w: %w", err, ErrInvalidConfig)
		}
		bopts = append(bopts, builder.WithIDScheme(idFn))
		if r.Latency != nil {
			if err := r.Latency.validate("random.latency"); err != nil {
				return nil, err
			}
			bopts = append(bopts, builder.WithLatencyFn(builder.RangeWeightFn(r.Latency.Min, r.Latency.Max)))
		}
		if r.Bandwidth != nil {
			if err := r.Bandwidth.validate("random.bandwidth"); err != nil {
				return nil, err
			}
			bopts = append(bopts, builder.WithBandwidthFn(builder.RangeWeightFn(r.Bandwidth.Min, r.Bandwidth.Max)))
		}

		return builder.BuildTopology(bopts, builder.RandomNetwork(r.Routers))
	}

	t := topology.NewTopology()
	for _, id := range c.Topology.Routers {
		if err := t.AddRouter(id); err != nil {
			return nil, fmt.Errorf("router %q: %w", id, err)
		}
	}
	for i, l := range c.Topology.Links {
		if err := t.AddLink(l.A, l.B, l.options()...); err != nil {
			return nil, fmt.Errorf("topology.links[%d] %s-%s: %w", i, l.A, l.B, err)
		}
	}

	return t, nil
}

// FromSnapshot lists every router and link of snap as an explicit topology
// section. Attributes are always written out.
func FromSnapshot(snap *topology.Snapshot) TopologyConfig {
	out := TopologyConfig{
		Routers: make([]string, 0, len(snap.Routers)),
		Links:   make([]LinkConfig, 0, len(snap.Links)),
	}
	for _, r := range snap.Routers {
		out.Routers = append(out.Routers, r.ID)
	}
	for _, l := range snap.Links {
		out.Links = append(out.Links, LinkConfig{
			A:          l.A,
			B:          l.B,
			Latency:    &l.Latency,
			Bandwidth:  &l.Bandwidth,
			Congestion: &l.Congestion,
			PacketLoss: &l.PacketLoss,
			Status:     string(l.Status),
		})
	}

	return out
}

func (l LinkConfig) options() []topology.LinkOption {
	var opts []topology.LinkOption
	if l.Latency != nil {
		opts = append(opts, topology.WithLatency(*l.Latency))
	}
	if l.Bandwidth != nil {
		opts = append(opts, topology.WithBandwidth(*l.Bandwidth))
	}
	if l.Congestion != nil {
		opts = append(opts, topology.WithCongestion(*l.Congestion))
	}
	if l.PacketLoss != nil {
		opts = append(opts, topology.WithPacketLoss(*l.PacketLoss))
	}
	if l.Status != "" {
		opts = append(opts, topology.WithStatus(topology.LinkStatus(l.Status)))
	}

	return opts
}

func (l LinkConfig) patch() topology.LinkPatch {
	return topology.NewLinkPatch(l.options()...)
}
