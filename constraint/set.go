package constraint

import (
	"sort"

	"github.com/vicky970125/airpath/core"
)

// vertexKey is the composite lookup key for vertex constraints.
// Hashed as a unit by the runtime; no manual hash combining needed.
type vertexKey struct {
	V core.VertexID
	T int
}

// edgeKey is the composite lookup key for edge constraints. The arrival
// timestep T is when the traversal completes.
type edgeKey struct {
	From, To core.VertexID
	T        int
}

// Set is one search invocation's collection of forbidden occupations.
// Not safe for concurrent mutation; freeze it before the search starts.
// The zero value is not usable — call NewSet.
type Set struct {
	vertices map[vertexKey]struct{}
	edges    map[edgeKey]struct{}

	// times[v] holds the constrained timesteps of vertex v in ascending
	// order, feeding the driver's horizon-scoped goal-safety queries.
	times map[core.VertexID][]int
}

// NewSet returns an empty constraint set.
func NewSet() *Set {
	return &Set{
		vertices: make(map[vertexKey]struct{}),
		edges:    make(map[edgeKey]struct{}),
		times:    make(map[core.VertexID][]int),
	}
}

// ForbidVertex blocks occupation of v at timestep t. Negative timesteps
// are ignored: no reachable state has t < 0.
func (s *Set) ForbidVertex(v core.VertexID, t int) {
	key := vertexKey{V: v, T: t}
	if t < 0 {
		return
	}
	if _, ok := s.vertices[key]; ok {
		return // duplicate; times[v] stays deduplicated
	}
	s.vertices[key] = struct{}{}

	ts := s.times[v]
	i := sort.SearchInts(ts, t)
	ts = append(ts, 0)
	copy(ts[i+1:], ts[i:])
	ts[i] = t
	s.times[v] = ts
}

// ForbidEdge blocks the traversal from→to that arrives at timestep t.
// Only that direction is blocked; the scheduler adds the mirror
// constraint itself when resolving a swap conflict.
func (s *Set) ForbidEdge(from, to core.VertexID, t int) {
	if t < 0 {
		return
	}
	s.edges[edgeKey{From: from, To: to, T: t}] = struct{}{}
}

// BlocksVertex reports whether v is forbidden at timestep t.
// Nil-safe; O(~1); no allocation.
func (s *Set) BlocksVertex(v core.VertexID, t int) bool {
	if s == nil {
		return false
	}
	_, ok := s.vertices[vertexKey{V: v, T: t}]

	return ok
}

// BlocksEdge reports whether traversing from→to arriving at timestep t
// is forbidden. Nil-safe; O(~1); no allocation.
func (s *Set) BlocksEdge(from, to core.VertexID, t int) bool {
	if s == nil {
		return false
	}
	_, ok := s.edges[edgeKey{From: from, To: to, T: t}]

	return ok
}

// LatestVertex returns the largest timestep at which v is vertex-
// constrained, or -1 when v is unconstrained. Nil-safe.
func (s *Set) LatestVertex(v core.VertexID) int {
	if s == nil {
		return -1
	}
	if ts := s.times[v]; len(ts) > 0 {
		return ts[len(ts)-1]
	}

	return -1
}

// LatestVertexUpTo returns the largest timestep ≤ horizon at which v is
// vertex-constrained, or -1 when no such constraint exists. The search
// driver uses it to decide whether a goal is safe to stay at: constraints
// beyond the horizon concern timesteps the search can never reach and
// must not block termination. Nil-safe; O(log k) over v's constraints.
func (s *Set) LatestVertexUpTo(v core.VertexID, horizon int) int {
	if s == nil {
		return -1
	}
	ts := s.times[v]
	i := sort.SearchInts(ts, horizon+1)
	if i == 0 {
		return -1
	}

	return ts[i-1]
}

// Len returns the total number of stored constraints. Nil-safe.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.vertices) + len(s.edges)
}

// Clear empties the set for reuse by the next invocation, keeping the
// allocated maps.
func (s *Set) Clear() {
	clear(s.vertices)
	clear(s.edges)
	clear(s.times)
}
