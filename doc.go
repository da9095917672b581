// SPDX-License-Identifier: MIT

// Package routesim is an in-memory packet routing simulator: a router
// topology, least-cost path search over it, and a step-driven engine that
// carries one packet at a time to its destination.
//
// Packages:
//
//	topology/  - routers, links and their attributes; consistent snapshots
//	dijkstra/  - shortest path with pluggable cost policies
//	bfs/       - hop-count reachability and connectivity checks
//	builder/   - seeded random networks and deterministic fixtures
//	transit/   - the routing and transit engine, its log and driver loop
//	config/    - YAML configuration
//	cmd/routesim - command-line front end
//
// Quick ASCII example:
//
//	R1───R2───R3───R4      latency 10 on every link
//
//	e := transit.NewEngine(topo)
//	e.SimulatePacket("R1", "R4")   // path R1 -> R2 -> R3 -> R4, cost 30
//	for e.Advance() {}             // 30 steps of 0.1 later: delivered
package routesim
