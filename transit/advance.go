// SPDX-License-Identifier: MIT

package transit

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Advance moves the in-flight packet one step along its path and reports
// whether it is still in progress afterwards. It is a no-op returning false
// when nothing is in flight.
//
// Each step adds the configured step to the position and subtracts the same
// amount from ttl (floored at 0). ttl never ends a transit. Once the
// position reaches the last router the packet is delivered: the position
// resets to 0, the end time is stamped and a delivery entry is logged.
func (e *Engine) Advance() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.state
	if !s.InProgress {
		return false
	}

	s.Position += e.cfg.step
	s.Stats.TTL = max(0, s.Stats.TTL-e.cfg.step)
	e.cfg.logger.Debug("advance", "packet", s.Stats.PacketID, "position", s.Position, "ttl", s.Stats.TTL)

	if s.Position+deliveryEpsilon < float64(len(s.Path)-1) {
		return true
	}

	s.InProgress = false
	s.Position = 0
	s.Stats.Status = StatusDelivered
	s.Stats.EndedAt = e.cfg.clock()
	e.appendLog(slog.LevelInfo,
		fmt.Sprintf("Packet %s delivered in %.2fs", s.Stats.PacketID, s.Stats.Elapsed().Seconds()),
		"packet", s.Stats.PacketID)

	return false
}

// Drive calls e.Advance every interval until the packet leaves the
// in-progress state or ctx is done, invoking onStep (if non-nil) with the
// state after each step. It returns ctx.Err() on cancellation and nil once
// the packet is delivered or when nothing is in flight.
func Drive(ctx context.Context, e *Engine, interval time.Duration, onStep func(State)) error {
	if interval <= 0 {
		interval = time.Millisecond
	}
	if !e.State().InProgress {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			more := e.Advance()
			if onStep != nil {
				onStep(e.State())
			}
			if !more {
				return nil
			}
		}
	}
}
