// SPDX-License-Identifier: MIT
package transit_test

import (
	"fmt"
	"strings"

	"github.com/bassosimone/runtimex"

	"github.com/katalvlaran/routesim/builder"
	"github.com/katalvlaran/routesim/topology"
	"github.com/katalvlaran/routesim/transit"
)

// ExampleEngine sends a packet along a four-router chain and steps it to
// delivery.
func ExampleEngine() {
	topo := runtimex.PanicOnError1(builder.BuildTopology(nil, builder.Path(4)))
	e := transit.NewEngine(topo, transit.WithSeed(7))

	ok := runtimex.PanicOnError1(e.SimulatePacket("R1", "R4"))
	st := e.State()
	fmt.Println(ok, strings.Join(st.Path, " -> "), st.Stats.TotalCost, st.Stats.Hops)

	steps := 1
	for e.Advance() {
		steps++
	}
	fmt.Println(steps, e.Stats().Status)
	// Output:
	// true R1 -> R2 -> R3 -> R4 30 3
	// 30 delivered
}

// ExampleEngine_noPath shows a send across a failed link.
func ExampleEngine_noPath() {
	topo := runtimex.PanicOnError1(builder.BuildTopology(nil, builder.Path(4)))
	runtimex.PanicOnError0(topo.UpdateLink("R2", "R3", topology.WithStatus(topology.LinkFailed)))
	e := transit.NewEngine(topo)

	ok := runtimex.PanicOnError1(e.SimulatePacket("R1", "R4"))
	fmt.Println(ok, e.Stats().Status)
	fmt.Println(e.Tail(10))
	// Output:
	// false idle
	// [No path found from R1 to R4]
}
