// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: ShortestPath and its runner.
//
// It processes routers in order of increasing cost using a min-heap priority
// queue, relaxing links and updating costs accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Links with status LinkFailed are skipped as if absent.
//   - Links whose policy cost is +Inf are impassable.
//   - We stop as soon as the destination is finalized, or once the cheapest
//     heap entry exceeds MaxCost.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries of already finalized routers.
//   - Ties are deterministic: neighbors come sorted, relaxation is strict and
//     the heap breaks equal costs by push order, so among equal-cost routes
//     the first discovered one wins.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/routesim/topology"
)

// ShortestPath computes the least-cost route from `from` to `to` over g.
//
// Returns:
//
//   - Route{Path: [from], Cost: 0} when from == to and the router exists.
//   - The least-cost route otherwise.
//   - Route{Cost: +Inf} and an error wrapping ErrNoPathFound when either
//     endpoint is unknown, the endpoints are disconnected, or every route
//     costs more than MaxCost.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Both endpoints must exist (ErrNoPathFound).
//  3. Every relaxed link must have a non-negative cost (ErrNegativeCost).
func ShortestPath(g Graph, from, to string, opts ...Option) (Route, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return unreachable(), ErrNilGraph
	}
	if !g.HasRouter(from) || !g.HasRouter(to) {
		return unreachable(), noPath(from, to)
	}

	// 3) Trivial route.
	if from == to {
		return Route{Path: []string{from}, Cost: 0}, nil
	}

	// 4) Run the search.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]float64),
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}
	r.init(from)
	if err := r.process(to); err != nil {
		return unreachable(), err
	}

	// 5) Reconstruct.
	if !r.visited[to] {
		return unreachable(), noPath(from, to)
	}

	return Route{Path: r.path(from, to), Cost: r.dist[to]}, nil
}

func unreachable() Route { return Route{Cost: math.Inf(1)} }

func noPath(from, to string) error {
	return fmt.Errorf("%s -> %s: %w", from, to, ErrNoPathFound)
}

// runner holds the mutable state for a single search.
type runner struct {
	g       Graph
	options Options
	dist    map[string]float64 // best known cost from the source
	prev    map[string]string  // predecessor on the best known route
	visited map[string]bool    // finalized routers
	pq      nodePQ
	seq     uint64 // push counter, breaks cost ties in the heap
}

// init pushes the source with cost zero.
func (r *runner) init(source string) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

// process pops routers in cost order until target is finalized, the heap is
// empty, or the cheapest entry exceeds MaxCost.
func (r *runner) process(target string) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Skip stale entries superseded by a cheaper push.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxCost {
			break
		}
		r.visited[item.id] = true
		if item.id == target {
			return nil
		}
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines every traversable link of u and improves neighbor costs.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, v := range neighbors {
		if r.visited[v] {
			continue
		}
		l, err := r.g.Link(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: link %s-%s: %w", u, v, err)
		}
		if l.Status == topology.LinkFailed {
			continue
		}

		w := r.options.Cost(l)
		if math.IsInf(w, 1) {
			continue
		}
		if !(w >= 0) {
			return fmt.Errorf("%w: link %s-%s cost=%g", ErrNegativeCost, u, v, w)
		}

		newDist := r.dist[u] + w
		if newDist > r.options.MaxCost {
			continue
		}
		// Strict comparison keeps the first discovered route on ties.
		if best, seen := r.dist[v]; seen && newDist >= best {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		r.push(v, newDist)
	}

	return nil
}

func (r *runner) push(id string, dist float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
}

// path walks the predecessor chain back from target.
func (r *runner) path(source, target string) []string {
	var rev []string
	for cur := target; cur != source; cur = r.prev[cur] {
		rev = append(rev, cur)
	}
	rev = append(rev, source)

	out := make([]string, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}

	return out
}

// nodeItem is a heap entry: a router and the cost it was pushed with.
type nodeItem struct {
	id   string
	dist float64
	seq  uint64
}

// nodePQ is a min-heap ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
