// SPDX-License-Identifier: MIT
//
// File: methods_links.go
// Role: Link lifecycle & queries.
//
// Determinism:
//   - Links() returns links sorted by canonical key (A, then B).
//
// Concurrency:
//   - Every method takes t.mu; mutations take the write lock.
package topology

import (
	"fmt"
	"sort"
)

// AddLink inserts (or replaces) the link between a and b.
//
// Implementation:
//   - Stage 1: Reject self-loops (ErrInvalidTopology) and invalid options.
//   - Stage 2: Require both endpoints to exist (ErrUnknownRouter).
//   - Stage 3: Store a fresh record built from defaults + opts.
//
// Behavior highlights:
//   - Replace semantics: an existing link between a and b is overwritten and
//     every attribute not named by opts is reset to its default
//     (latency 10, bandwidth 100, congestion 0, packet loss 0, status active).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (t *Topology) AddLink(a, b string, opts ...LinkOption) error {
	if a == "" || b == "" {
		return ErrEmptyRouterID
	}
	if a == b {
		return fmt.Errorf("link %s-%s: self-loop: %w", a, b, ErrInvalidTopology)
	}
	patch := NewLinkPatch(opts...)
	if err := patch.Validate(); err != nil {
		return fmt.Errorf("link %s-%s: %w", a, b, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.routers[a]; !ok {
		return fmt.Errorf("link %s-%s: router %q: %w", a, b, a, ErrUnknownRouter)
	}
	if _, ok := t.routers[b]; !ok {
		return fmt.Errorf("link %s-%s: router %q: %w", a, b, b, ErrUnknownRouter)
	}

	key := MakeLinkKey(a, b)
	l := &Link{
		A:          key.A,
		B:          key.B,
		Latency:    DefaultLatency,
		Bandwidth:  DefaultBandwidth,
		Congestion: DefaultCongestion,
		PacketLoss: DefaultPacketLoss,
		Status:     LinkActive,
	}
	patch.apply(l)

	t.links[key] = l
	t.adjacency[a][b] = struct{}{}
	t.adjacency[b][a] = struct{}{}
	t.revision++

	return nil
}

// RemoveLink deletes the link between a and b; no-op if absent.
func (t *Topology) RemoveLink(a, b string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := MakeLinkKey(a, b)
	if _, ok := t.links[key]; !ok {
		return nil
	}
	delete(t.links, key)
	delete(t.adjacency[a], b)
	delete(t.adjacency[b], a)
	t.revision++

	return nil
}

// UpdateLink applies a partial attribute update to the link between a and b.
// Only the fields named by opts change. Updating an absent link is a no-op.
//
// Errors:
//   - ErrInvalidAttribute: any named field is outside its domain; nothing is applied.
func (t *Topology) UpdateLink(a, b string, opts ...LinkOption) error {
	patch := NewLinkPatch(opts...)
	if err := patch.Validate(); err != nil {
		return fmt.Errorf("link %s-%s: %w", a, b, err)
	}
	if patch.Empty() {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.links[MakeLinkKey(a, b)]
	if !ok {
		return nil
	}
	patch.apply(l)
	t.revision++

	return nil
}

// HasLink reports whether a link exists between a and b.
func (t *Topology) HasLink(a, b string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.links[MakeLinkKey(a, b)]

	return ok
}

// Link returns a copy of the link attributes between a and b.
//
// Errors:
//   - ErrLinkNotFound: no such link.
func (t *Topology) Link(a, b string) (Link, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	l, ok := t.links[MakeLinkKey(a, b)]
	if !ok {
		return Link{}, fmt.Errorf("link %s-%s: %w", a, b, ErrLinkNotFound)
	}

	return *l, nil
}

// Links returns copies of all links sorted by canonical key.
// Complexity: O(E log E).
func (t *Topology) Links() []Link {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return sortedLinks(t.links)
}

// LinkCount returns the number of links.
func (t *Topology) LinkCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.links)
}

func sortedLinks(m map[LinkKey]*Link) []Link {
	out := make([]Link, 0, len(m))
	for _, l := range m {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})

	return out
}
