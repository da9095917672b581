// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: LinkOption patch constructors shared by AddLink and UpdateLink.
//
// Policy:
//   - Options only record which fields change; validation happens in the
//     mutating method so that invalid input surfaces as ErrInvalidAttribute
//     instead of a panic.
//   - A patch applies atomically: either every field changes or none does.
package topology

import (
	"fmt"
	"math"
)

// LinkOption names one link attribute to set.
type LinkOption func(*LinkPatch)

// LinkPatch is a partial link update. Nil fields are left unchanged.
type LinkPatch struct {
	Latency    *float64
	Bandwidth  *float64
	Congestion *float64
	PacketLoss *float64
	Status     *LinkStatus
}

// WithLatency sets the link latency (must be > 0).
func WithLatency(v float64) LinkOption {
	return func(p *LinkPatch) { p.Latency = &v }
}

// WithBandwidth sets the link bandwidth (must be > 0).
func WithBandwidth(v float64) LinkOption {
	return func(p *LinkPatch) { p.Bandwidth = &v }
}

// WithCongestion sets the congestion percentage (0..100).
func WithCongestion(v float64) LinkOption {
	return func(p *LinkPatch) { p.Congestion = &v }
}

// WithPacketLoss sets the packet-loss percentage (0..100).
func WithPacketLoss(v float64) LinkOption {
	return func(p *LinkPatch) { p.PacketLoss = &v }
}

// WithStatus sets the operational status.
func WithStatus(s LinkStatus) LinkOption {
	return func(p *LinkPatch) { p.Status = &s }
}

// NewLinkPatch folds opts into a LinkPatch.
func NewLinkPatch(opts ...LinkOption) LinkPatch {
	var p LinkPatch
	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// Empty reports whether the patch changes nothing.
func (p LinkPatch) Empty() bool {
	return p.Latency == nil && p.Bandwidth == nil && p.Congestion == nil &&
		p.PacketLoss == nil && p.Status == nil
}

// Validate checks every present field against its domain.
func (p LinkPatch) Validate() error {
	if p.Latency != nil && !positive(*p.Latency) {
		return fmt.Errorf("latency=%g must be > 0: %w", *p.Latency, ErrInvalidAttribute)
	}
	if p.Bandwidth != nil && !positive(*p.Bandwidth) {
		return fmt.Errorf("bandwidth=%g must be > 0: %w", *p.Bandwidth, ErrInvalidAttribute)
	}
	if p.Congestion != nil && !percent(*p.Congestion) {
		return fmt.Errorf("congestion=%g not in [0,100]: %w", *p.Congestion, ErrInvalidAttribute)
	}
	if p.PacketLoss != nil && !percent(*p.PacketLoss) {
		return fmt.Errorf("packet_loss=%g not in [0,100]: %w", *p.PacketLoss, ErrInvalidAttribute)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("status=%q: %w", *p.Status, ErrInvalidAttribute)
	}

	return nil
}

// apply writes the present fields into l. The patch must be validated first.
func (p LinkPatch) apply(l *Link) {
	if p.Latency != nil {
		l.Latency = *p.Latency
	}
	if p.Bandwidth != nil {
		l.Bandwidth = *p.Bandwidth
	}
	if p.Congestion != nil {
		l.Congestion = *p.Congestion
	}
	if p.PacketLoss != nil {
		l.PacketLoss = *p.PacketLoss
	}
	if p.Status != nil {
		l.Status = *p.Status
	}
}

// positive rejects zero, negatives, NaN and +Inf.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func percent(v float64) bool {
	return v >= 0 && v <= MaxPercent
}
