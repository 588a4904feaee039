package service

import (
	"learning_platform_backend/internal/util"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantumNetworkSeedData(t *testing.T) {
	svc := NewQuantumNetworkService()

	nodes, total := svc.ListNodes(1, 20)
	assert.Equal(t, 3, total)
	require.Len(t, nodes, 3)
	assert.Equal(t, "Chattanooga QNet", nodes[0].Name)
	assert.Equal(t, "QUANTUM_HUB", nodes[0].NodeType)
	assert.Equal(t, "Oak Ridge", nodes[1].Name)
	assert.Equal(t, "Atlanta", nodes[2].Name)

	links := svc.ListLinks()
	require.Len(t, links, 3)
	assert.Equal(t, "satellite", links[2].LinkType)
	assert.Equal(t, "inactive", links[2].Status)
}

func TestQuantumNodeCRUD(t *testing.T) {
	svc := NewQuantumNetworkService()

	created := svc.CreateNode(QuantumNodeRequest{Name: "Knoxville", Latitude: 35.96, Longitude: -83.92})
	assert.Equal(t, "QUANTUM_NODE", created.NodeType)
	assert.Equal(t, "active", created.Status)

	got, err := svc.GetNode(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Knoxville", got.Name)

	updated, err := svc.UpdateNode(created.ID, UpdateQuantumNodeRequest{Status: "maintenance"})
	require.NoError(t, err)
	assert.Equal(t, "maintenance", updated.Status)
	assert.Equal(t, "Knoxville", updated.Name)

	require.NoError(t, svc.DeleteNode(created.ID))
	_, err = svc.GetNode(created.ID)
	assert.ErrorIs(t, err, util.ErrQuantumNodeNotFound)
}

func TestQuantumDeleteNodeRemovesLinks(t *testing.T) {
	svc := NewQuantumNetworkService()

	require.NoError(t, svc.DeleteNode(1))

	for _, l := range svc.ListLinks() {
		assert.NotEqual(t, uint(1), l.SourceNodeID)
		assert.NotEqual(t, uint(1), l.TargetNodeID)
	}
}

func TestQuantumNetworkState(t *testing.T) {
	svc := NewQuantumNetworkService()

	state := svc.State()
	assert.Equal(t, "active", state.NodeStatus)
	assert.Equal(t, 3, state.ActiveNodes)
	assert.Equal(t, 2, state.ActiveLinks)
	assert.GreaterOrEqual(t, state.AverageFidelity, 0.95)
	assert.Less(t, state.AverageFidelity, 1.0)
	assert.False(t, state.MeasuredAt.IsZero())
}

func TestQuantumNetworkConcurrentAccess(t *testing.T) {
	svc := NewQuantumNetworkService()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.CreateNode(QuantumNodeRequest{Name: "Node"})
			svc.ListNodes(1, 100)
			svc.State()
			svc.ListLinks()
		}()
	}
	wg.Wait()

	_, total := svc.ListNodes(1, 100)
	assert.Equal(t, 23, total)
}
