// Package core defines the spatial graph shared by every search: vertices
// with 2-D positions, directed weighted move edges kept in bidirectional
// adjacency lists, and a configurable wait action.
//
// This file declares VertexID, Pos, Edge, GraphOption, sentinel errors,
// and the default wait cost.
//
// Errors:
//
//	ErrInvalidVertex - identifier outside the graph's known range.
//	ErrNegativeCost  - an edge cost below zero was supplied.
//	ErrBadWaitCost   - a wait cost below zero was supplied.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates an operation referenced a vertex identifier
	// outside the graph's known range. Fatal to the calling search.
	ErrInvalidVertex = errors.New("core: vertex identifier out of range")

	// ErrNegativeCost indicates an attempt to add an edge with negative cost.
	// All costs must be ≥ 0 for shortest-path optimality to hold.
	ErrNegativeCost = errors.New("core: edge cost must be non-negative")

	// ErrBadWaitCost indicates a negative wait cost was configured.
	ErrBadWaitCost = errors.New("core: wait cost must be non-negative")
)

// DefaultWaitCost is the cost of staying in place for one timestep when
// no WithWaitCost option is supplied.
const DefaultWaitCost = 1.0

// VertexID identifies a vertex in a Graph. Valid identifiers are the
// dense range [0, VertexCount()); AddVertex allocates them in order.
type VertexID int

// Pos is a 2-D position attached to each vertex. Geometric heuristic
// providers use it to estimate remaining distance to a goal.
type Pos struct {
	X, Y float64
}

// Edge is a directed move between two vertices with a non-negative
// traversal cost. A wait action is represented as a self-loop edge
// returned by Graph.WaitEdge, never stored in the adjacency lists.
type Edge struct {
	From, To VertexID
	Cost     float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithWaitCost sets the cost of the implicit wait edge at every vertex.
// Must be ≥ 0; negative values panic with ErrBadWaitCost.
func WithWaitCost(c float64) GraphOption {
	return func(g *Graph) {
		if c < 0 {
			panic(ErrBadWaitCost.Error())
		}
		g.waitCost = c
	}
}

// WithBidirectionalEdges makes AddEdge insert the reverse edge as well,
// so every added connection is traversable both ways at equal cost.
func WithBidirectionalEdges() GraphOption {
	return func(g *Graph) { g.bidirectional = true }
}
