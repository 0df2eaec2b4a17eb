package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicky970125/airpath/constraint"
	"github.com/vicky970125/airpath/core"
)

func TestSet_VertexConstraints(t *testing.T) {
	s := constraint.NewSet()
	s.ForbidVertex(3, 5)

	assert.True(t, s.BlocksVertex(3, 5))
	assert.False(t, s.BlocksVertex(3, 4), "same vertex, different timestep")
	assert.False(t, s.BlocksVertex(4, 5), "different vertex, same timestep")
	assert.Equal(t, 1, s.Len())
}

func TestSet_EdgeConstraintsAreDirectional(t *testing.T) {
	s := constraint.NewSet()
	s.ForbidEdge(1, 2, 4)

	assert.True(t, s.BlocksEdge(1, 2, 4))
	assert.False(t, s.BlocksEdge(2, 1, 4), "reverse direction stays open")
	assert.False(t, s.BlocksEdge(1, 2, 3))
}

func TestSet_LatestVertex(t *testing.T) {
	s := constraint.NewSet()
	require.Equal(t, -1, s.LatestVertex(7))

	s.ForbidVertex(7, 2)
	s.ForbidVertex(7, 9)
	s.ForbidVertex(7, 5)

	assert.Equal(t, 9, s.LatestVertex(7))
	assert.Equal(t, -1, s.LatestVertex(8), "edge constraints do not affect latest")
}

func TestSet_LatestVertexUpTo(t *testing.T) {
	s := constraint.NewSet()
	s.ForbidVertex(7, 2)
	s.ForbidVertex(7, 9)
	s.ForbidVertex(7, 5)
	s.ForbidVertex(7, 5) // duplicate must not skew the ordering

	assert.Equal(t, 9, s.LatestVertexUpTo(7, 100), "wide horizon sees everything")
	assert.Equal(t, 9, s.LatestVertexUpTo(7, 9), "horizon bound is inclusive")
	assert.Equal(t, 5, s.LatestVertexUpTo(7, 8), "constraints past the horizon are invisible")
	assert.Equal(t, 2, s.LatestVertexUpTo(7, 4))
	assert.Equal(t, -1, s.LatestVertexUpTo(7, 1), "all constraints lie beyond")
	assert.Equal(t, -1, s.LatestVertexUpTo(8, 100), "unconstrained vertex")

	var nilSet *constraint.Set
	assert.Equal(t, -1, nilSet.LatestVertexUpTo(7, 100))
}

func TestSet_NegativeTimestepIgnored(t *testing.T) {
	s := constraint.NewSet()
	s.ForbidVertex(1, -1)
	s.ForbidEdge(1, 2, -3)

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.LatestVertex(1))
}

func TestSet_Clear(t *testing.T) {
	s := constraint.NewSet()
	s.ForbidVertex(0, 1)
	s.ForbidEdge(0, 1, 1)
	require.Equal(t, 2, s.Len())

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.BlocksVertex(0, 1))
	assert.Equal(t, -1, s.LatestVertex(0))
}

func TestSet_NilIsEmpty(t *testing.T) {
	var s *constraint.Set

	assert.False(t, s.BlocksVertex(core.VertexID(0), 0))
	assert.False(t, s.BlocksEdge(0, 1, 0))
	assert.Equal(t, -1, s.LatestVertex(0))
	assert.Equal(t, 0, s.Len())
}
