// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/routesim/bfs"
	"github.com/katalvlaran/routesim/builder"
	"github.com/katalvlaran/routesim/topology"
)

// square builds A–B–C–D–A with unit latency.
func square(t *testing.T) *topology.Topology {
	t.Helper()
	s := topology.NewTopology()
	for _, id := range []string{"A", "B", "C", "D"} {
		if err := s.AddRouter(id); err != nil {
			t.Fatal(err)
		}
	}
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		if err := s.AddLink(p[0], p[1], topology.WithLatency(1)); err != nil {
			t.Fatal(err)
		}
	}
	return s
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	snap := topology.NewTopology().Snapshot()
	if _, err := bfs.BFS(snap, "missing"); !errors.Is(err, bfs.ErrStartRouterNotFound) {
		t.Errorf("missing start: want ErrStartRouterNotFound, got %v", err)
	}
	snap = square(t).Snapshot()
	if _, err := bfs.BFS(snap, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	res, err := bfs.BFS(square(t).Snapshot(), "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	for id, want := range map[string]int{"A": 0, "B": 1, "D": 1, "C": 2} {
		if got := res.Depth[id]; got != want {
			t.Errorf("Depth[%s] = %d; want %d", id, got, want)
		}
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
}

// TestReachable_Sorted checks that Reachable sorts IDs while BFS keeps visit order.
func TestReachable_Sorted(t *testing.T) {
	snap := square(t).Snapshot()

	res, err := bfs.BFS(snap, "C")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(res.Order, []string{"C", "B", "D", "A"}) {
		t.Errorf("BFS(C).Order = %v; want [C B D A]", res.Order)
	}

	ids, err := bfs.Reachable(snap, "C")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, []string{"A", "B", "C", "D"}) {
		t.Errorf("Reachable(C) = %v; want [A B C D]", ids)
	}
}

// TestBFS_FailedLinks checks that failed links are skipped unless included.
func TestBFS_FailedLinks(t *testing.T) {
	s := square(t)
	for _, p := range [][2]string{{"A", "B"}, {"D", "A"}} {
		if err := s.UpdateLink(p[0], p[1], topology.WithStatus(topology.LinkFailed)); err != nil {
			t.Fatal(err)
		}
	}
	snap := s.Snapshot()

	order, err := bfs.Reachable(snap, "A")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(order, []string{"A"}) {
		t.Errorf("Reachable(A) = %v; want [A]", order)
	}
	if ok, _ := bfs.Connected(snap); ok {
		t.Error("Connected over active links = true; want false")
	}
	if ok, _ := bfs.Connected(snap, bfs.WithIncludeFailed()); !ok {
		t.Error("Connected including failed links = false; want true")
	}
	res, _ := bfs.BFS(snap, "A")
	if _, err := res.PathTo("C"); err == nil {
		t.Error("PathTo(C) succeeded across failed links")
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive and zero depths.
func TestBFS_MaxDepth(t *testing.T) {
	topo, err := builder.BuildTopology(nil, builder.Path(4))
	if err != nil {
		t.Fatal(err)
	}
	snap := topo.Snapshot()
	if res, _ := bfs.BFS(snap, "R1", bfs.WithMaxDepth(1)); !reflect.DeepEqual(res.Order, []string{"R1", "R2"}) {
		t.Errorf("MaxDepth=1: got %v; want [R1 R2]", res.Order)
	}
	if res, _ := bfs.BFS(snap, "R1", bfs.WithMaxDepth(0)); len(res.Order) != 4 {
		t.Errorf("MaxDepth=0: got %v; want all 4 routers", res.Order)
	}
}

// TestBFS_HooksAndCancel checks OnVisit errors and context cancellation.
func TestBFS_HooksAndCancel(t *testing.T) {
	snap := square(t).Snapshot()
	stop := errors.New("stop")
	_, err := bfs.BFS(snap, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "D" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit error: want stop, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(snap, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled ctx: want context.Canceled, got %v", err)
	}
}

// TestConnected_Empty treats an empty store as connected.
func TestConnected_Empty(t *testing.T) {
	if ok, err := bfs.Connected(topology.NewTopology().Snapshot()); !ok || err != nil {
		t.Errorf("Connected(empty) = %v, %v; want true, nil", ok, err)
	}
}
