// SPDX-License-Identifier: MIT

// Package topology is the in-memory store of routers and links the routing
// engine works on.
//
// The store is an undirected simple graph:
//
//   - Routers carry an ID and an operator-set status (StatusActive on creation).
//   - Links join two distinct routers; at most one link exists per unordered
//     pair. Each link has a latency, bandwidth, congestion and packet-loss
//     percentage and an operational status (LinkActive or LinkFailed).
//   - Adjacency is explicit: adjacency[id] is a neighbor set and links are
//     keyed by the canonical pair LinkKey{A, B} with A < B. Only the mutation
//     methods touch them, so no link ever references a missing router.
//
// Mutation semantics:
//
//	AddRouter     idempotent; existing routers are left untouched.
//	RemoveRouter  removes every incident link; no-op if absent.
//	AddLink       endpoints must exist (ErrUnknownRouter); self-loops are
//	              ErrInvalidTopology; an existing link is replaced and every
//	              attribute not given is reset to its default.
//	RemoveLink    no-op if absent.
//	UpdateLink    partial patch via LinkOption; no-op if the link is absent.
//
// Reads (Routers, Links, Neighbors) return sorted copies so that callers
// observe a deterministic order. Snapshot returns an immutable copy taken under
// one read lock; it is what the path search and rendering collaborators use.
//
// Concurrency:
//
//	One sync.RWMutex guards the store. Every successful mutation increments
//	Revision, which lets caches detect that the topology changed.
//
// Example:
//
//	t := topology.NewTopology()
//	_ = t.AddRouter("R1")
//	_ = t.AddRouter("R2")
//	_ = t.AddLink("R1", "R2", topology.WithLatency(5))
//	_ = t.UpdateLink("R1", "R2", topology.WithStatus(topology.LinkFailed))
package topology
