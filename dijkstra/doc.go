// SPDX-License-Identifier: MIT

// Package dijkstra provides the constrained shortest-path search over a router
// topology with non-negative link costs.
//
// Overview:
//
//   - ShortestPath computes the least-cost route between two routers in
//     O((V + E) log V) time using a min-heap priority queue.
//   - Links with status LinkFailed are treated as absent.
//   - The link cost is a pluggable CostPolicy. Two policies ship with the
//     package because the reference behavior was ambiguous:
//     LatencyCost (default) charges the plain latency, and
//     CongestionWeightedCost charges latency * (1 + congestion/100).
//   - Results are deterministic: neighbor enumeration is sorted, relaxation is
//     strict and equal heap costs resolve by push order, so equal-cost routes
//     always resolve to the first one discovered.
//
// Outcomes:
//
//   - from == to (existing router): Route{Path: [from], Cost: 0}.
//   - Unknown endpoint or no route: Route{Cost: +Inf} and an error wrapping
//     ErrNoPathFound. Callers treat this as a normal outcome and branch with
//     errors.Is.
//
// Options:
//
//   - WithCostPolicy(p): select the link cost function.
//   - WithMaxCost(c):    report routes costing more than c as unreachable.
//
// Errors (sentinel):
//
//   - ErrNilGraph:      the graph argument is nil.
//   - ErrNoPathFound:   no route (expected, non-fatal).
//   - ErrNegativeCost:  a cost policy produced a negative or NaN cost.
//   - ErrUnknownPolicy: PolicyByName got an unknown name.
//
// Thread safety:
//
//   - ShortestPath only reads g. Pass a *topology.Snapshot when the store may
//     be mutated concurrently; the search then sees one committed state.
//
// Example:
//
//	route, err := dijkstra.ShortestPath(store.Snapshot(), "R1", "R4",
//	    dijkstra.WithCostPolicy(dijkstra.CongestionWeightedCost))
//	if errors.Is(err, dijkstra.ErrNoPathFound) {
//	    // report and carry on
//	}
package dijkstra
