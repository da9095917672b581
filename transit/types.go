// SPDX-License-Identifier: MIT

package transit

import (
	"errors"
	"time"
)

// ErrInvalidBatch indicates a send request with a packet count or size below 1.
var ErrInvalidBatch = errors.New("transit: invalid packet batch")

// Status is the lifecycle state of the packet slot.
type Status string

// Lifecycle states. StatusDelivered is terminal until the next send.
// StatusUnreachable is never held by the slot, since a failed send keeps the
// previous state; it tags no-path events on the structured logger.
const (
	StatusIdle         Status = "idle"
	StatusTransmitting Status = "transmitting"
	StatusDelivered    Status = "delivered"
	StatusUnreachable  Status = "unreachable"
)

// Default engine parameters.
const (
	DefaultStep          = 0.1
	DefaultInitialTTL    = 64.0
	DefaultCount         = 1
	DefaultSizeKB        = 64
	DefaultRouteCacheTTL = time.Minute
	DefaultRouteCacheCap = 1024

	// deliveryEpsilon absorbs float drift when accumulating steps, so that
	// ten additions of 0.1 reach exactly one hop.
	deliveryEpsilon = 1e-9
)

// Stats is the statistics record of the current (or last) packet.
type Stats struct {
	PacketID    string
	Source      string
	Destination string
	Hops        int
	TotalCost   float64
	TTL         float64
	StartedAt   time.Time
	EndedAt     time.Time // zero while transmitting
	Status      Status
	Count       int
	Size        int // KB per packet
}

// idleStats is the record held before the first send and after a reset.
func idleStats(ttl float64) Stats {
	return Stats{Status: StatusIdle, TTL: ttl, Count: DefaultCount, Size: DefaultSizeKB}
}

// Elapsed returns EndedAt-StartedAt, or zero if the packet has not been delivered.
func (s Stats) Elapsed() time.Duration {
	if s.EndedAt.IsZero() {
		return 0
	}

	return s.EndedAt.Sub(s.StartedAt)
}

// State is a read-only copy of the transit slot.
type State struct {
	Path       []string
	Position   float64
	InProgress bool
	Stats      Stats
}

// Segment is the interpolated location of a packet on its path: it is
// Progress (in [0,1)) of the way along the link From→To, the Index-th hop.
type Segment struct {
	From     string
	To       string
	Progress float64
	Index    int
}

// Locate derives the current segment from a state. It reports false when the
// packet is not in progress or the path has no links.
func Locate(s State) (Segment, bool) {
	if !s.InProgress || len(s.Path) < 2 {
		return Segment{}, false
	}
	idx := int(s.Position)
	if idx < 0 {
		idx = 0
	}
	if idx > len(s.Path)-2 {
		idx = len(s.Path) - 2
	}

	return Segment{
		From:     s.Path[idx],
		To:       s.Path[idx+1],
		Progress: s.Position - float64(idx),
		Index:    idx,
	}, true
}

func (s State) clone() State {
	out := s
	out.Path = append([]string(nil), s.Path...)
	return out
}
