// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Router, Link, LinkKey, Topology declarations, sentinel errors and the
// NewTopology constructor.
//
// Errors:
//
//	ErrEmptyRouterID     - router ID is the empty string.
//	ErrUnknownRouter     - operation referenced a router that does not exist.
//	ErrInvalidTopology   - self-loop or another structurally invalid link.
//	ErrInvalidAttribute  - link/router attribute outside its allowed domain.
//	ErrLinkNotFound      - requested link does not exist.
package topology

import (
	"errors"
	"sync"
)

// Sentinel errors for topology operations.
var (
	// ErrEmptyRouterID indicates that a router ID is the empty string.
	ErrEmptyRouterID = errors.New("topology: router ID is empty")

	// ErrUnknownRouter indicates an operation referenced a non-existent router.
	ErrUnknownRouter = errors.New("topology: unknown router")

	// ErrInvalidTopology indicates a structurally invalid mutation (self-loop).
	ErrInvalidTopology = errors.New("topology: invalid topology")

	// ErrInvalidAttribute indicates an attribute value outside its domain.
	ErrInvalidAttribute = errors.New("topology: invalid attribute")

	// ErrLinkNotFound indicates a query referenced a non-existent link.
	ErrLinkNotFound = errors.New("topology: link not found")
)

// RouterStatus is the operator-set state of a router.
// Any non-empty value is accepted; the predefined values cover the common cases.
type RouterStatus string

const (
	// StatusActive is the default status of a newly added router.
	StatusActive RouterStatus = "active"

	// StatusDown marks a router an operator took offline.
	StatusDown RouterStatus = "down"

	// StatusMaintenance marks a router under maintenance.
	StatusMaintenance RouterStatus = "maintenance"
)

// LinkStatus is the operational state of a link.
type LinkStatus string

const (
	// LinkActive links are traversable by the path search.
	LinkActive LinkStatus = "active"

	// LinkFailed links are treated as absent by the path search.
	LinkFailed LinkStatus = "failed"
)

// Valid reports whether s is one of the known link states.
func (s LinkStatus) Valid() bool {
	return s == LinkActive || s == LinkFailed
}

// Default link attributes applied by AddLink.
const (
	DefaultLatency    float64 = 10
	DefaultBandwidth  float64 = 100
	DefaultCongestion float64 = 0
	DefaultPacketLoss float64 = 0

	// MaxPercent bounds the Congestion and PacketLoss percentages.
	MaxPercent float64 = 100
)

// Router is a node of the topology.
type Router struct {
	// ID uniquely identifies the router.
	ID string

	// Status is the operator-set state; StatusActive on creation.
	Status RouterStatus
}

// Link is an undirected edge between two routers.
//
// A and B are stored canonically (A < B) so that a Link value compares
// equal regardless of the order its endpoints were passed in.
type Link struct {
	A string
	B string

	// Latency is the time cost of traversing the link (ms). Always > 0.
	Latency float64

	// Bandwidth is informational (Mbps). Always > 0.
	Bandwidth float64

	// Congestion is a 0..100 percentage, optionally factored into path cost.
	Congestion float64

	// PacketLoss is a 0..100 percentage. Informational only.
	PacketLoss float64

	// Status is LinkActive or LinkFailed.
	Status LinkStatus
}

// Key returns the canonical key of the link.
func (l Link) Key() LinkKey { return LinkKey{A: l.A, B: l.B} }

// Other returns the endpoint opposite to id.
func (l Link) Other(id string) string {
	if l.A == id {
		return l.B
	}

	return l.A
}

// LinkKey is the unordered endpoint pair of a link, stored with A < B.
type LinkKey struct {
	A string
	B string
}

// MakeLinkKey canonicalizes the unordered pair {a, b}.
func MakeLinkKey(a, b string) LinkKey {
	if b < a {
		a, b = b, a
	}

	return LinkKey{A: a, B: b}
}

// String renders the key as "A-B".
func (k LinkKey) String() string { return k.A + "-" + k.B }

// Topology is the mutable, concurrency-safe store of routers and links.
//
// adjacency[id] is the neighbor set of id and links is keyed by the canonical
// endpoint pair; both are kept consistent by the mutation methods alone.
// Every successful mutation bumps revision.
type Topology struct {
	mu sync.RWMutex // guards every field below

	routers   map[string]*Router
	adjacency map[string]map[string]struct{}
	links     map[LinkKey]*Link
	revision  uint64
}

// NewTopology creates an empty Topology.
// Complexity: O(1)
func NewTopology() *Topology {
	return &Topology{
		routers:   make(map[string]*Router),
		adjacency: make(map[string]map[string]struct{}),
		links:     make(map[LinkKey]*Link),
	}
}
