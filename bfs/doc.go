// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first reachability over a topology snapshot,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore routers in non-decreasing hop count from a start router.
//   - Links with status LinkFailed are skipped unless WithIncludeFailed is
//     given, matching what the path search can traverse.
//   - Result carries Order, Depth and Parent; PathTo rebuilds a
//     fewest-hops path.
//   - Reachable and Connected are shortcuts for the common questions.
//
// Determinism
//
//	Snapshot neighbors come sorted by ID and are enqueued in that order, so
//	the visit sequence is fully reproducible.
//
// Complexity (V = routers, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(snap, "R1", bfs.WithMaxDepth(2))
//	ok, err := bfs.Connected(snap, bfs.WithIncludeFailed())
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartRouterNotFound  if the start router does not exist.
//   - ErrOptionViolation      for an invalid Option (negative MaxDepth).
//   - ErrNeighbors            if a neighbor or link lookup fails.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err().
package bfs
