// SPDX-License-Identifier: MIT
// Package dijkstra_test provides runnable examples of the path search.
package dijkstra_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bassosimone/runtimex"

	"github.com/katalvlaran/routesim/dijkstra"
	"github.com/katalvlaran/routesim/topology"
)

// ExampleShortestPath routes across a small square where one side is congested.
func ExampleShortestPath() {
	s := topology.NewTopology()
	for _, id := range []string{"A", "B", "C", "D"} {
		runtimex.PanicOnError0(s.AddRouter(id))
	}
	runtimex.PanicOnError0(s.AddLink("A", "B", topology.WithLatency(10), topology.WithCongestion(80)))
	runtimex.PanicOnError0(s.AddLink("B", "D", topology.WithLatency(10)))
	runtimex.PanicOnError0(s.AddLink("A", "C", topology.WithLatency(12)))
	runtimex.PanicOnError0(s.AddLink("C", "D", topology.WithLatency(12)))

	plain := runtimex.PanicOnError1(dijkstra.ShortestPath(s.Snapshot(), "A", "D"))
	fmt.Printf("latency:    %s (%.1f)\n", strings.Join(plain.Path, " -> "), plain.Cost)

	weighted := runtimex.PanicOnError1(dijkstra.ShortestPath(s.Snapshot(), "A", "D",
		dijkstra.WithCostPolicy(dijkstra.CongestionWeightedCost)))
	fmt.Printf("congestion: %s (%.1f)\n", strings.Join(weighted.Path, " -> "), weighted.Cost)
	// Output:
	// latency:    A -> B -> D (20.0)
	// congestion: A -> C -> D (24.0)
}

// ExampleShortestPath_failedLink shows that a failed link behaves like a missing one.
func ExampleShortestPath_failedLink() {
	s := topology.NewTopology()
	for _, id := range []string{"R1", "R2"} {
		runtimex.PanicOnError0(s.AddRouter(id))
	}
	runtimex.PanicOnError0(s.AddLink("R1", "R2"))
	runtimex.PanicOnError0(s.UpdateLink("R1", "R2", topology.WithStatus(topology.LinkFailed)))

	route, err := dijkstra.ShortestPath(s.Snapshot(), "R1", "R2")
	fmt.Println(errors.Is(err, dijkstra.ErrNoPathFound), route.Cost)
	// Output: true +Inf
}
