// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph read interface, Route result, cost policies, functional options
// and sentinel errors for the constrained shortest-path search.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/routesim/topology"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPathFound indicates that no route exists between the endpoints,
	// either because an endpoint is unknown or because they are disconnected.
	// It is an expected outcome, not a fault.
	ErrNoPathFound = errors.New("dijkstra: no path found")

	// ErrNegativeCost indicates that a cost policy produced a negative or NaN
	// edge cost, which Dijkstra cannot handle.
	ErrNegativeCost = errors.New("dijkstra: negative edge cost")

	// ErrUnknownPolicy indicates that PolicyByName got an unknown name.
	ErrUnknownPolicy = errors.New("dijkstra: unknown cost policy")
)

// Graph is the read surface the search needs.
// Both *topology.Topology and *topology.Snapshot implement it; a Snapshot
// gives the search one consistent view of a store under mutation.
type Graph interface {
	HasRouter(id string) bool
	Neighbors(id string) ([]string, error)
	Link(a, b string) (topology.Link, error)
}

// Route is the result of a successful search.
type Route struct {
	// Path lists router IDs from source to destination (inclusive).
	Path []string

	// Cost is the sum of the traversed link costs; +Inf when no path exists.
	Cost float64
}

// Hops returns the number of links on the route.
func (r Route) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// CostPolicy maps a traversable link to its non-negative cost.
type CostPolicy func(l topology.Link) float64

// LatencyCost charges the plain link latency.
func LatencyCost(l topology.Link) float64 { return l.Latency }

// CongestionWeightedCost charges latency * (1 + congestion/100).
func CongestionWeightedCost(l topology.Link) float64 {
	return l.Latency * (1 + l.Congestion/topology.MaxPercent)
}

// Policy names accepted by PolicyByName.
const (
	PolicyLatency    = "latency"
	PolicyCongestion = "congestion"
)

// PolicyByName resolves a configured policy name ("" means latency).
func PolicyByName(name string) (CostPolicy, error) {
	switch name {
	case "", PolicyLatency:
		return LatencyCost, nil
	case PolicyCongestion:
		return CongestionWeightedCost, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPolicy)
	}
}

// Options configures the search.
//
// Cost    – edge cost policy (default LatencyCost).
// MaxCost – routes costing more than this are reported as ErrNoPathFound.
//
//	Default +Inf (no cap).
type Options struct {
	Cost    CostPolicy
	MaxCost float64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithCostPolicy selects the edge cost policy. Panics on nil.
func WithCostPolicy(p CostPolicy) Option {
	if p == nil {
		panic("dijkstra: WithCostPolicy(nil)")
	}
	return func(o *Options) { o.Cost = p }
}

// WithMaxCost caps the acceptable route cost. Panics on negative or NaN values.
func WithMaxCost(c float64) Option {
	if !(c >= 0) {
		panic(fmt.Sprintf("dijkstra: WithMaxCost(%g)", c))
	}
	return func(o *Options) { o.MaxCost = c }
}

// DefaultOptions returns the deterministic defaults:
// LatencyCost and no cost cap.
func DefaultOptions() Options {
	return Options{
		Cost:    LatencyCost,
		MaxCost: math.Inf(1),
	}
}
