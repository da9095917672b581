// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/routesim/topology"
)

// queueItem pairs a router ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph Graph
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from startID,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartRouterNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasRouter(startID) {
		return nil, fmt.Errorf("%q: %w", startID, ErrStartRouterNotFound)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		res: &Result{
			Depth:  make(map[string]int),
			Parent: make(map[string]string),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

// Reachable returns the IDs of the routers reachable from startID over
// active links, sorted. Use BFS for visit order.
func Reachable(g Graph, startID string) ([]string, error) {
	res, err := BFS(g, startID)
	if err != nil {
		return nil, err
	}
	ids := slices.Clone(res.Order)
	slices.Sort(ids)

	return ids, nil
}

// Connected reports whether every router of snap is reachable from the
// first one. An empty snapshot is connected.
func Connected(snap *topology.Snapshot, opts ...Option) (bool, error) {
	if len(snap.Routers) == 0 {
		return true, nil
	}
	res, err := BFS(snap, snap.Routers[0].ID, opts...)
	if err != nil {
		return false, err
	}

	return len(res.Order) == len(snap.Routers), nil
}

// enqueue marks id seen at depth d and records its parent.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues each unseen neighbor reachable over a usable
// link within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %q: %v", ErrNeighbors, item.id, err)
	}
	for _, nbr := range neighbors {
		if w.res.Reached(nbr) {
			continue
		}
		if !w.opts.IncludeFailed {
			l, err := w.graph.Link(item.id, nbr)
			if err != nil {
				return fmt.Errorf("%w: link %s-%s: %v", ErrNeighbors, item.id, nbr, err)
			}
			if l.Status == topology.LinkFailed {
				continue
			}
		}
		w.enqueue(nbr, next, item.id)
	}

	return nil
}
