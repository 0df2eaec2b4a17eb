package core

import (
	"fmt"
	"math"
)

// Graph is the immutable, shared spatial graph over which time-expanded
// searches run. Build it once (AddVertex/AddEdge), then treat it as
// read-only: every query method below only reads, so any number of
// concurrent searches may share one instance without locking, provided
// no mutation happens after construction.
//
// Adjacency is bidirectional: each edge is recorded in the outgoing list
// of its source and the incoming list of its target. Incoming lists feed
// the reverse-Dijkstra heuristic tables.
type Graph struct {
	waitCost      float64
	bidirectional bool

	pos []Pos    // pos[v] is the 2-D position of vertex v
	out [][]Edge // out[v] lists edges leaving v
	in  [][]Edge // in[v] lists edges arriving at v

	minMove float64 // smallest move-edge cost seen; +Inf while edgeless
}

// NewGraph creates an empty graph. By default the wait cost is
// DefaultWaitCost and edges are one-way.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		waitCost: DefaultWaitCost,
		minMove:  math.Inf(1),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex appends a vertex at position p and returns its identifier.
// Identifiers are dense and allocated in insertion order.
// Complexity: amortized O(1).
func (g *Graph) AddVertex(p Pos) VertexID {
	g.pos = append(g.pos, p)
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)

	return VertexID(len(g.pos) - 1)
}

// AddEdge records a directed move edge from→to with the given cost.
// Under WithBidirectionalEdges the mirror edge to→from is added too.
// Returns ErrInvalidVertex if either endpoint is unknown, or
// ErrNegativeCost if cost < 0.
// Complexity: amortized O(1).
func (g *Graph) AddEdge(from, to VertexID, cost float64) error {
	if !g.Contains(from) {
		return fmt.Errorf("%w: from=%d", ErrInvalidVertex, from)
	}
	if !g.Contains(to) {
		return fmt.Errorf("%w: to=%d", ErrInvalidVertex, to)
	}
	if cost < 0 {
		return fmt.Errorf("%w: %d→%d cost=%g", ErrNegativeCost, from, to, cost)
	}

	g.insert(Edge{From: from, To: to, Cost: cost})
	if g.bidirectional {
		g.insert(Edge{From: to, To: from, Cost: cost})
	}

	return nil
}

// insert appends a validated edge to both adjacency lists and keeps the
// minimum move cost current.
func (g *Graph) insert(e Edge) {
	g.out[e.From] = append(g.out[e.From], e)
	g.in[e.To] = append(g.in[e.To], e)
	if e.Cost < g.minMove {
		g.minMove = e.Cost
	}
}

// Contains reports whether v is a known vertex identifier.
// Complexity: O(1).
func (g *Graph) Contains(v VertexID) bool {
	return v >= 0 && int(v) < len(g.pos)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.pos) }

// Neighbors returns the outgoing move edges of v. The returned slice is
// owned by the graph and must not be modified.
// Returns ErrInvalidVertex for unknown identifiers.
// Complexity: O(1).
func (g *Graph) Neighbors(v VertexID) ([]Edge, error) {
	if !g.Contains(v) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}

	return g.out[v], nil
}

// Incoming returns the move edges arriving at v. The returned slice is
// owned by the graph and must not be modified.
// Returns ErrInvalidVertex for unknown identifiers.
// Complexity: O(1).
func (g *Graph) Incoming(v VertexID) ([]Edge, error) {
	if !g.Contains(v) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}

	return g.in[v], nil
}

// Position returns the 2-D position of v, or ErrInvalidVertex.
// Complexity: O(1).
func (g *Graph) Position(v VertexID) (Pos, error) {
	if !g.Contains(v) {
		return Pos{}, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}

	return g.pos[v], nil
}

// WaitEdge returns the implicit wait self-loop at v: staying in place
// for one timestep at the configured wait cost.
// Returns ErrInvalidVertex for unknown identifiers.
// Complexity: O(1).
func (g *Graph) WaitEdge(v VertexID) (Edge, error) {
	if !g.Contains(v) {
		return Edge{}, fmt.Errorf("%w: %d", ErrInvalidVertex, v)
	}

	return Edge{From: v, To: v, Cost: g.waitCost}, nil
}

// WaitCost returns the configured cost of waiting one timestep.
func (g *Graph) WaitCost() float64 { return g.waitCost }

// MinMoveCost returns the smallest cost among all move edges, or +Inf
// when the graph has no edges. Geometric heuristics use it (together
// with positions) to derive an admissible scale.
func (g *Graph) MinMoveCost() float64 { return g.minMove }

// Edges returns a copy of every stored move edge, ordered by source
// vertex then insertion order. Intended for conversions and diagnostics,
// not for the search hot path.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	var n int
	for _, es := range g.out {
		n += len(es)
	}
	all := make([]Edge, 0, n)
	for _, es := range g.out {
		all = append(all, es...)
	}

	return all
}
