// SPDX-License-Identifier: MIT
//
// File: engine.go
// Role: Engine construction, SimulatePacket and read-only accessors.
//
// Contract:
//   - At most one packet is in flight. SimulatePacket replaces the slot
//     atomically on success and leaves it untouched on failure.
//   - Every public method takes e.mu for its whole duration, so topology
//     reads, path search and state transitions never interleave across
//     engine calls.
//   - The log is retained in full; Tail exposes display windows.

package transit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"github.com/katalvlaran/routesim/builder"
	"github.com/katalvlaran/routesim/dijkstra"
	"github.com/katalvlaran/routesim/topology"
)

// routeKey identifies a path search against one topology revision.
type routeKey struct {
	revision uint64
	from, to string
}

// Engine computes routes over a topology store and owns the single transit
// slot together with its event log.
type Engine struct {
	mu    sync.Mutex
	cfg   engineConfig
	topo  *topology.Topology
	state State
	logs  []string
	cache *ttlcache.Cache[routeKey, dijkstra.Route]
}

// NewEngine returns an idle engine over t. A nil t gets a fresh empty store.
func NewEngine(t *topology.Topology, opts ...Option) *Engine {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if t == nil {
		t = topology.NewTopology()
	}

	e := &Engine{
		cfg:   cfg,
		topo:  t,
		state: State{Stats: idleStats(cfg.initialTTL)},
	}
	if cfg.cacheTTL > 0 {
		e.cache = ttlcache.New[routeKey, dijkstra.Route](
			ttlcache.WithTTL[routeKey, dijkstra.Route](cfg.cacheTTL),
			ttlcache.WithCapacity[routeKey, dijkstra.Route](cfg.cacheCap),
			ttlcache.WithDisableTouchOnHit[routeKey, dijkstra.Route](),
		)
	}

	return e
}

// SimulatePacket routes a batch of packets from start to end and, on success,
// begins a new transit cycle.
//
// Returns:
//   - true, nil when a path was found and the slot now transmits.
//   - false, nil when no path exists; a "No path found" entry is logged and
//     the previous transit state is kept.
//   - false, ErrInvalidBatch for a count or size below 1.
//   - false, err for cost-policy failures (e.g. dijkstra.ErrNegativeCost).
func (e *Engine) SimulatePacket(start, end string, opts ...SendOption) (bool, error) {
	sc := sendConfig{count: DefaultCount, sizeKB: DefaultSizeKB}
	for _, opt := range opts {
		opt(&sc)
	}
	if sc.count < 1 || sc.sizeKB < 1 {
		return false, fmt.Errorf("count=%d size=%d: %w", sc.count, sc.sizeKB, ErrInvalidBatch)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	route, err := e.route(start, end)
	if errors.Is(err, dijkstra.ErrNoPathFound) {
		e.appendLog(slog.LevelWarn, fmt.Sprintf("No path found from %s to %s", start, end),
			"src", start, "dst", end, "status", StatusUnreachable)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("SimulatePacket(%s, %s): %w", start, end, err)
	}

	id := fmt.Sprintf("PKT_%d", 1000+e.cfg.rng.Intn(9000))
	e.state = State{
		Path:       route.Path,
		Position:   0,
		InProgress: true,
		Stats: Stats{
			PacketID:    id,
			Source:      start,
			Destination: end,
			Hops:        route.Hops(),
			TotalCost:   route.Cost,
			TTL:         e.cfg.initialTTL,
			StartedAt:   e.cfg.clock(),
			Status:      StatusTransmitting,
			Count:       sc.count,
			Size:        sc.sizeKB,
		},
	}
	e.appendLog(slog.LevelInfo,
		fmt.Sprintf("%d packet(s) (%dKB each) %s routed from %s to %s: %s (Cost: %.2fms)",
			sc.count, sc.sizeKB, id, start, end, strings.Join(route.Path, " -> "), route.Cost),
		"packet", id, "hops", route.Hops(), "cost", route.Cost)

	return true, nil
}

// Route computes the current best route without touching the transit slot.
func (e *Engine) Route(start, end string) (dijkstra.Route, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.route(start, end)
}

// route runs the path search on a consistent snapshot, reusing a cached
// result for the same topology revision. The returned path is owned by the
// caller.
func (e *Engine) route(start, end string) (dijkstra.Route, error) {
	snap := e.topo.Snapshot()
	key := routeKey{revision: snap.Revision, from: start, to: end}
	if e.cache != nil {
		if item := e.cache.Get(key); item != nil {
			r := item.Value()
			r.Path = append([]string(nil), r.Path...)
			return r, nil
		}
	}

	r, err := dijkstra.ShortestPath(snap, start, end, dijkstra.WithCostPolicy(e.cfg.policy))
	if err != nil {
		return r, err
	}
	if e.cache != nil {
		e.cache.Set(key, dijkstra.Route{Path: append([]string(nil), r.Path...), Cost: r.Cost}, ttlcache.DefaultTTL)
	}

	return r, nil
}

// GenerateRandomNetwork clears the topology, the transit slot and the log,
// then populates the store with builder.RandomNetwork(n). Without a seed or
// rand option in opts, the engine's own source drives the generator.
func (e *Engine) GenerateRandomNetwork(n int, opts ...builder.Option) error {
	if err := builder.ValidateRouterCount(n); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.topo.Clear()
	e.state = State{Stats: idleStats(e.cfg.initialTTL)}
	e.logs = nil
	if e.cache != nil {
		e.cache.DeleteAll()
	}

	bopts := append([]builder.Option{builder.WithSeed(e.cfg.rng.Int63())}, opts...)
	if err := builder.Apply(e.topo, bopts, builder.RandomNetwork(n)); err != nil {
		return fmt.Errorf("GenerateRandomNetwork(%d): %w", n, err)
	}
	e.cfg.logger.Info("random network generated",
		"routers", e.topo.RouterCount(), "links", e.topo.LinkCount())

	return nil
}

// Topology returns the underlying store for mutation.
func (e *Engine) Topology() *topology.Topology { return e.topo }

// Snapshot returns a consistent copy of the topology.
func (e *Engine) Snapshot() *topology.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.topo.Snapshot()
}

// State returns a deep copy of the transit slot.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.clone()
}

// Stats returns the statistics record of the current or last packet.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Stats
}

// Segment returns the interpolated location of the in-flight packet.
func (e *Engine) Segment() (Segment, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Locate(e.state)
}

// Logs returns a copy of the full event log, oldest first.
func (e *Engine) Logs() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.logs...)
}

// Tail returns a copy of the last n log entries (all of them if n exceeds
// the log length, none if n ≤ 0).
func (e *Engine) Tail(n int) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if n <= 0 {
		return nil
	}
	if n > len(e.logs) {
		n = len(e.logs)
	}

	return append([]string(nil), e.logs[len(e.logs)-n:]...)
}

// appendLog records msg in the event log and mirrors it to the slog logger.
// Caller must hold e.mu.
func (e *Engine) appendLog(level slog.Level, msg string, attrs ...any) {
	e.logs = append(e.logs, msg)
	e.cfg.logger.Log(context.Background(), level, msg, attrs...)
}
