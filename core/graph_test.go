// Package core_test validates graph construction, adjacency queries,
// the wait edge, and the sentinel error contract.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicky970125/airpath/core"
)

func TestNewGraph_Defaults(t *testing.T) {
	g := core.NewGraph()

	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, core.DefaultWaitCost, g.WaitCost())
	require.True(t, math.IsInf(g.MinMoveCost(), 1), "edgeless graph has +Inf min move cost")
}

func TestAddVertex_DenseIDs(t *testing.T) {
	g := core.NewGraph()

	a := g.AddVertex(core.Pos{X: 0, Y: 0})
	b := g.AddVertex(core.Pos{X: 1, Y: 0})

	require.Equal(t, core.VertexID(0), a)
	require.Equal(t, core.VertexID(1), b)
	require.Equal(t, 2, g.VertexCount())

	p, err := g.Position(b)
	require.NoError(t, err)
	assert.Equal(t, core.Pos{X: 1, Y: 0}, p)
}

func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(core.Pos{})
	b := g.AddVertex(core.Pos{X: 1})

	// Unknown endpoints must fail with ErrInvalidVertex.
	err := g.AddEdge(a, 99, 1)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
	err = g.AddEdge(-1, b, 1)
	require.ErrorIs(t, err, core.ErrInvalidVertex)

	// Negative cost must fail with ErrNegativeCost.
	err = g.AddEdge(a, b, -0.5)
	require.ErrorIs(t, err, core.ErrNegativeCost)

	// Zero cost is allowed.
	require.NoError(t, g.AddEdge(a, b, 0))
}

func TestAddEdge_DirectedAdjacency(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(core.Pos{})
	b := g.AddVertex(core.Pos{X: 1})

	require.NoError(t, g.AddEdge(a, b, 2.5))

	out, err := g.Neighbors(a)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, core.Edge{From: a, To: b, Cost: 2.5}, out[0])

	// Directed: b has no outgoing edge, but one incoming.
	out, err = g.Neighbors(b)
	require.NoError(t, err)
	require.Empty(t, out)

	in, err := g.Incoming(b)
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, a, in[0].From)
}

func TestAddEdge_Bidirectional(t *testing.T) {
	g := core.NewGraph(core.WithBidirectionalEdges())
	a := g.AddVertex(core.Pos{})
	b := g.AddVertex(core.Pos{X: 1})

	require.NoError(t, g.AddEdge(a, b, 1))

	outA, err := g.Neighbors(a)
	require.NoError(t, err)
	outB, err := g.Neighbors(b)
	require.NoError(t, err)
	require.Len(t, outA, 1)
	require.Len(t, outB, 1)
	assert.Equal(t, a, outB[0].To)

	// Both directions counted in Edges.
	assert.Len(t, g.Edges(), 2)
}

func TestWaitEdge(t *testing.T) {
	g := core.NewGraph(core.WithWaitCost(0.5))
	a := g.AddVertex(core.Pos{})

	e, err := g.WaitEdge(a)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: a, To: a, Cost: 0.5}, e)

	_, err = g.WaitEdge(7)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
}

func TestWithWaitCost_NegativePanics(t *testing.T) {
	require.PanicsWithValue(t, core.ErrBadWaitCost.Error(), func() {
		core.NewGraph(core.WithWaitCost(-1))
	})
}

func TestMinMoveCost_TracksSmallestEdge(t *testing.T) {
	g := core.NewGraph()
	a := g.AddVertex(core.Pos{})
	b := g.AddVertex(core.Pos{X: 1})
	c := g.AddVertex(core.Pos{X: 2})

	require.NoError(t, g.AddEdge(a, b, 3))
	require.NoError(t, g.AddEdge(b, c, 1.5))

	assert.Equal(t, 1.5, g.MinMoveCost())
}

func TestQueries_InvalidVertex(t *testing.T) {
	g := core.NewGraph()

	_, err := g.Neighbors(0)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
	_, err = g.Incoming(0)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
	_, err = g.Position(0)
	require.ErrorIs(t, err, core.ErrInvalidVertex)
	assert.False(t, g.Contains(0))
}
