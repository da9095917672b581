// SPDX-License-Identifier: MIT

// Package transit is the routing and transit engine of routesim.
//
// An Engine wraps a topology.Topology and owns a single packet slot:
//
//	e := transit.NewEngine(topo, transit.WithSeed(1))
//	ok, err := e.SimulatePacket("R1", "R4", transit.WithCount(3))
//	for e.Advance() {
//	}
//
// SimulatePacket computes a least-cost path with package dijkstra (failed
// links excluded, cost policy configurable) and starts a transit cycle.
// Advance is the step function of the cycle idle → transmitting → delivered;
// Drive is a ready-made ticker loop around it. Locate derives the segment a
// packet is currently traversing for renderers.
//
// Route results are cached per topology revision with ttlcache, so any
// mutation of the store invalidates them implicitly.
//
// All Engine methods are safe for concurrent use; each holds the engine
// lock for its whole duration.
package transit
