// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Immutable, consistent copies of the store for readers.
//
// A Snapshot is taken under a single read lock, so the path search and
// rendering collaborators observe one committed state even while writers keep
// mutating the Topology. Snapshots never alias the store's records.
package topology

import "fmt"

// Snapshot is a read-only, deep copy of a Topology at one revision.
type Snapshot struct {
	// Revision is the store revision the snapshot was taken at.
	Revision uint64

	// Routers sorted by ID.
	Routers []Router

	// Links sorted by canonical key.
	Links []Link

	routerIdx map[string]int
	adjacency map[string][]string
	linkIdx   map[LinkKey]int
}

// Snapshot copies the current state under one read lock.
// Complexity: O(V log V + E log E).
func (t *Topology) Snapshot() *Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := &Snapshot{
		Revision:  t.revision,
		Routers:   sortedRouters(t.routers),
		Links:     sortedLinks(t.links),
		routerIdx: make(map[string]int, len(t.routers)),
		adjacency: make(map[string][]string, len(t.adjacency)),
		linkIdx:   make(map[LinkKey]int, len(t.links)),
	}
	for i, r := range s.Routers {
		s.routerIdx[r.ID] = i
	}
	for id, nbrs := range t.adjacency {
		s.adjacency[id] = sortedKeys(nbrs)
	}
	for i, l := range s.Links {
		s.linkIdx[l.Key()] = i
	}

	return s
}

// HasRouter reports whether the router existed at snapshot time.
func (s *Snapshot) HasRouter(id string) bool {
	_, ok := s.routerIdx[id]
	return ok
}

// Router returns the router record.
func (s *Snapshot) Router(id string) (Router, error) {
	i, ok := s.routerIdx[id]
	if !ok {
		return Router{}, fmt.Errorf("router %q: %w", id, ErrUnknownRouter)
	}

	return s.Routers[i], nil
}

// Neighbors returns the sorted neighbor IDs of id.
// The returned slice must not be modified.
func (s *Snapshot) Neighbors(id string) ([]string, error) {
	nbrs, ok := s.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("router %q: %w", id, ErrUnknownRouter)
	}

	return nbrs, nil
}

// Link returns the link between a and b.
func (s *Snapshot) Link(a, b string) (Link, error) {
	i, ok := s.linkIdx[MakeLinkKey(a, b)]
	if !ok {
		return Link{}, fmt.Errorf("link %s-%s: %w", a, b, ErrLinkNotFound)
	}

	return s.Links[i], nil
}

// IncidentLinks returns every link touching id, sorted by key.
func (s *Snapshot) IncidentLinks(id string) []Link {
	var out []Link
	for _, l := range s.Links {
		if l.A == id || l.B == id {
			out = append(out, l)
		}
	}

	return out
}
