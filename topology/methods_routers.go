// SPDX-License-Identifier: MIT
//
// File: methods_routers.go
// Role: Router lifecycle & queries.
//
// Determinism:
//   - Routers() returns routers sorted by ID ascending.
//   - Neighbors() returns neighbor IDs sorted ascending.
//
// Concurrency:
//   - Every method takes t.mu; mutations take the write lock.
package topology

import (
	"fmt"
	"sort"
)

// AddRouter inserts a router with status StatusActive.
//
// Behavior highlights:
//   - Idempotent: adding an existing router is a no-op (status is preserved).
//
// Errors:
//   - ErrEmptyRouterID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (t *Topology) AddRouter(id string) error {
	if id == "" {
		return ErrEmptyRouterID
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.routers[id]; exists {
		return nil
	}
	t.routers[id] = &Router{ID: id, Status: StatusActive}
	t.adjacency[id] = make(map[string]struct{})
	t.revision++

	return nil
}

// RemoveRouter deletes a router and every link incident to it.
// Removing an absent router is a no-op.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (t *Topology) RemoveRouter(id string) error {
	if id == "" {
		return ErrEmptyRouterID
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.routers[id]; !exists {
		return nil
	}

	// Drop incident links through the neighbor set, mirroring each side.
	for nb := range t.adjacency[id] {
		delete(t.links, MakeLinkKey(id, nb))
		delete(t.adjacency[nb], id)
	}
	delete(t.adjacency, id)
	delete(t.routers, id)
	t.revision++

	return nil
}

// SetRouterStatus changes the operator-set status of an existing router.
//
// Errors:
//   - ErrEmptyRouterID, ErrUnknownRouter.
//   - ErrInvalidAttribute: if status is empty.
func (t *Topology) SetRouterStatus(id string, status RouterStatus) error {
	if id == "" {
		return ErrEmptyRouterID
	}
	if status == "" {
		return fmt.Errorf("router %s: empty status: %w", id, ErrInvalidAttribute)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.routers[id]
	if !ok {
		return fmt.Errorf("router %s: %w", id, ErrUnknownRouter)
	}
	if r.Status != status {
		r.Status = status
		t.revision++
	}

	return nil
}

// HasRouter reports whether the router exists (empty ID ⇒ false).
func (t *Topology) HasRouter(id string) bool {
	if id == "" {
		return false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.routers[id]

	return ok
}

// Router returns a copy of the router record.
func (t *Topology) Router(id string) (Router, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.routers[id]
	if !ok {
		return Router{}, fmt.Errorf("router %q: %w", id, ErrUnknownRouter)
	}

	return *r, nil
}

// Routers returns copies of all routers sorted by ID.
// Complexity: O(V log V).
func (t *Topology) Routers() []Router {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return sortedRouters(t.routers)
}

// RouterIDs returns all router IDs sorted ascending.
func (t *Topology) RouterIDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]string, 0, len(t.routers))
	for id := range t.routers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// RouterCount returns the number of routers.
func (t *Topology) RouterCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.routers)
}

// Neighbors returns the IDs of routers linked to id, sorted ascending.
// Links of every status are included; the path search filters failed ones.
//
// Errors:
//   - ErrUnknownRouter: if id does not exist.
func (t *Topology) Neighbors(id string) ([]string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	nbrs, ok := t.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("router %q: %w", id, ErrUnknownRouter)
	}

	return sortedKeys(nbrs), nil
}

// Revision returns a counter bumped by every successful mutation.
func (t *Topology) Revision() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.revision
}

// Clear removes every router and link.
func (t *Topology) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.routers = make(map[string]*Router)
	t.adjacency = make(map[string]map[string]struct{})
	t.links = make(map[LinkKey]*Link)
	t.revision++
}

func sortedRouters(m map[string]*Router) []Router {
	out := make([]Router, 0, len(m))
	for _, r := range m {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}
