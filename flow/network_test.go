package flow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvassign/flow"
)

// TestAddEdge_PairsReverse checks the arena layout and the partner link.
func TestAddEdge_PairsReverse(t *testing.T) {
	g := flow.NewNetwork(3)
	id, err := g.AddEdge(0, 2, 4, 1.5)
	require.NoError(t, err)

	fwd := g.Edge(id)
	rev := g.Edge(fwd.Rev)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, id, rev.Rev, "partners must point at each other")
	assert.Equal(t, 0, fwd.From)
	assert.Equal(t, 2, fwd.To)
	assert.Equal(t, 4, fwd.Cap)
	assert.False(t, fwd.Reverse)

	assert.Equal(t, 2, rev.From)
	assert.Equal(t, 0, rev.To)
	assert.Equal(t, 0, rev.Cap)
	assert.Equal(t, -1.5, rev.Cost)
	assert.True(t, rev.Reverse)

	assert.Equal(t, []int{id}, g.Adjacent(0))
	assert.Equal(t, []int{fwd.Rev}, g.Adjacent(2))
	assert.Empty(t, g.Adjacent(1))
	assert.Equal(t, 0, g.Flow(id))
	assert.Equal(t, 0, g.Flow(fwd.Rev))
}

func TestAddEdge_Errors(t *testing.T) {
	g := flow.NewNetwork(2)

	_, err := g.AddEdge(0, 2, 1, 0)
	require.ErrorIs(t, err, flow.ErrNodeOutOfRange)
	_, err = g.AddEdge(-1, 1, 1, 0)
	require.ErrorIs(t, err, flow.ErrNodeOutOfRange)
	_, err = g.AddEdge(0, 1, -1, 0)
	require.ErrorIs(t, err, flow.ErrBadCapacity)
	_, err = g.AddEdge(0, 1, 1, -0.5)
	require.ErrorIs(t, err, flow.ErrBadCost)
	_, err = g.AddEdge(0, 1, 1, math.NaN())
	require.ErrorIs(t, err, flow.ErrBadCost)
	_, err = g.AddEdge(0, 1, 1, math.Inf(1))
	require.ErrorIs(t, err, flow.ErrBadCost)

	assert.Zero(t, g.EdgeCount(), "failed inserts must not touch the arena")
	assert.Zero(t, flow.NewNetwork(-3).Nodes())
}

// TestAdjacent_ReturnsCopy guards the arena against callers mutating adjacency.
func TestAdjacent_ReturnsCopy(t *testing.T) {
	g := flow.NewNetwork(2)
	id, err := g.AddEdge(0, 1, 1, 0)
	require.NoError(t, err)

	adj := g.Adjacent(0)
	adj[0] = 99
	assert.Equal(t, []int{id}, g.Adjacent(0))
}
