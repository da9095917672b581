// SPDX-License-Identifier: MIT
// Package topology_test verifies the router/link lifecycle contracts of the store.
package topology_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/topology"
)

// newStore returns a store holding the given routers and no links.
func newStore(t *testing.T, ids ...string) *topology.Topology {
	t.Helper()
	s := topology.NewTopology()
	for _, id := range ids {
		require.NoError(t, s.AddRouter(id))
	}

	return s
}

func TestTopology_AddRouterIdempotent(t *testing.T) {
	s := newStore(t, "R1")
	require.NoError(t, s.SetRouterStatus("R1", topology.StatusMaintenance))

	// Re-adding must neither duplicate nor reset the status.
	require.NoError(t, s.AddRouter("R1"))
	assert.Equal(t, 1, s.RouterCount())
	r, err := s.Router("R1")
	require.NoError(t, err)
	assert.Equal(t, topology.StatusMaintenance, r.Status)

	assert.ErrorIs(t, s.AddRouter(""), topology.ErrEmptyRouterID)
}

func TestTopology_RemoveRouterDropsIncidentLinks(t *testing.T) {
	s := newStore(t, "R1", "R2", "R3", "R4")
	require.NoError(t, s.AddLink("R1", "R2"))
	require.NoError(t, s.AddLink("R2", "R3"))
	require.NoError(t, s.AddLink("R3", "R4"))
	require.NoError(t, s.AddLink("R2", "R4"))

	require.NoError(t, s.RemoveRouter("R2"))

	assert.False(t, s.HasRouter("R2"))
	for _, l := range s.Links() {
		assert.True(t, s.HasRouter(l.A), "dangling endpoint %s in %v", l.A, l)
		assert.True(t, s.HasRouter(l.B), "dangling endpoint %s in %v", l.B, l)
	}
	assert.Equal(t, 1, s.LinkCount())

	nbrs, err := s.Neighbors("R4")
	require.NoError(t, err)
	assert.Equal(t, []string{"R3"}, nbrs)

	// Absent router: no-op.
	rev := s.Revision()
	require.NoError(t, s.RemoveRouter("R2"))
	assert.Equal(t, rev, s.Revision())
}

func TestTopology_AddLinkValidation(t *testing.T) {
	s := newStore(t, "R1", "R2")

	err := s.AddLink("R1", "R1")
	assert.ErrorIs(t, err, topology.ErrInvalidTopology)

	err = s.AddLink("R1", "R9")
	assert.ErrorIs(t, err, topology.ErrUnknownRouter)
	assert.False(t, s.HasRouter("R9"), "AddLink must not create routers implicitly")

	err = s.AddLink("R1", "R2", topology.WithLatency(0))
	assert.ErrorIs(t, err, topology.ErrInvalidAttribute)
	assert.Equal(t, 0, s.LinkCount())
}

func TestTopology_AddLinkDefaultsAndReplace(t *testing.T) {
	s := newStore(t, "R1", "R2")
	require.NoError(t, s.AddLink("R2", "R1"))

	l, err := s.Link("R1", "R2")
	require.NoError(t, err)
	assert.Equal(t, topology.Link{
		A: "R1", B: "R2",
		Latency: 10, Bandwidth: 100,
		Status: topology.LinkActive,
	}, l)

	require.NoError(t, s.UpdateLink("R1", "R2",
		topology.WithCongestion(50),
		topology.WithPacketLoss(5),
		topology.WithStatus(topology.LinkFailed)))

	// Re-adding overwrites latency/bandwidth and resets everything else.
	require.NoError(t, s.AddLink("R1", "R2", topology.WithLatency(3), topology.WithBandwidth(1000)))
	l, err = s.Link("R2", "R1")
	require.NoError(t, err)
	assert.Equal(t, 3.0, l.Latency)
	assert.Equal(t, 1000.0, l.Bandwidth)
	assert.Zero(t, l.Congestion)
	assert.Zero(t, l.PacketLoss)
	assert.Equal(t, topology.LinkActive, l.Status)
	assert.Equal(t, 1, s.LinkCount())
}

func TestTopology_UpdateLinkPartial(t *testing.T) {
	s := newStore(t, "R1", "R2")
	require.NoError(t, s.AddLink("R1", "R2", topology.WithLatency(7)))

	require.NoError(t, s.UpdateLink("R2", "R1", topology.WithCongestion(40)))
	l, err := s.Link("R1", "R2")
	require.NoError(t, err)
	assert.Equal(t, 7.0, l.Latency, "untouched field changed")
	assert.Equal(t, 40.0, l.Congestion)

	// Invalid patches apply nothing.
	err = s.UpdateLink("R1", "R2", topology.WithLatency(1), topology.WithCongestion(101))
	assert.ErrorIs(t, err, topology.ErrInvalidAttribute)
	l, _ = s.Link("R1", "R2")
	assert.Equal(t, 7.0, l.Latency)

	err = s.UpdateLink("R1", "R2", topology.WithStatus("melted"))
	assert.ErrorIs(t, err, topology.ErrInvalidAttribute)

	// Absent link: no-op, no error.
	rev := s.Revision()
	require.NoError(t, s.UpdateLink("R1", "R3", topology.WithLatency(1)))
	assert.Equal(t, rev, s.Revision())
}

func TestTopology_RemoveLink(t *testing.T) {
	s := newStore(t, "R1", "R2")
	require.NoError(t, s.AddLink("R1", "R2"))
	require.NoError(t, s.RemoveLink("R2", "R1"))
	assert.False(t, s.HasLink("R1", "R2"))

	_, err := s.Link("R1", "R2")
	assert.True(t, errors.Is(err, topology.ErrLinkNotFound))

	nbrs, err := s.Neighbors("R1")
	require.NoError(t, err)
	assert.Empty(t, nbrs)

	require.NoError(t, s.RemoveLink("R1", "R2"))
}

func TestTopology_NeighborsSortedAndUnknown(t *testing.T) {
	s := newStore(t, "C", "A", "B", "D")
	require.NoError(t, s.AddLink("A", "D"))
	require.NoError(t, s.AddLink("A", "B"))
	require.NoError(t, s.AddLink("C", "A"))

	nbrs, err := s.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, nbrs)
	assert.Equal(t, []string{"A", "B", "C", "D"}, s.RouterIDs())

	_, err = s.Neighbors("Z")
	assert.ErrorIs(t, err, topology.ErrUnknownRouter)
}

func TestTopology_SetRouterStatus(t *testing.T) {
	s := newStore(t, "R1")
	assert.ErrorIs(t, s.SetRouterStatus("R2", topology.StatusDown), topology.ErrUnknownRouter)
	assert.ErrorIs(t, s.SetRouterStatus("R1", ""), topology.ErrInvalidAttribute)
	require.NoError(t, s.SetRouterStatus("R1", topology.StatusDown))

	r, err := s.Router("R1")
	require.NoError(t, err)
	assert.Equal(t, topology.StatusDown, r.Status)
}

func TestTopology_Clear(t *testing.T) {
	s := newStore(t, "R1", "R2")
	require.NoError(t, s.AddLink("R1", "R2"))
	s.Clear()
	assert.Zero(t, s.RouterCount())
	assert.Zero(t, s.LinkCount())
}
