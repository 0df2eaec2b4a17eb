// Package core provides the immutable spatial graph underlying every
// time-expanded search in airpath.
//
// Overview:
//
//   - Vertices are dense integer identifiers carrying a 2-D position.
//   - Edges are directed moves with non-negative costs, stored in both
//     outgoing and incoming adjacency lists ("bidirectional adjacency"):
//     outgoing lists feed forward expansion, incoming lists feed the
//     reverse-Dijkstra heuristic tables.
//   - Waiting in place is an implicit self-loop per vertex with a single
//     graph-wide cost (WithWaitCost, default 1), exposed via WaitEdge.
//
// Lifecycle and concurrency:
//
//   - Build the graph once with AddVertex/AddEdge, then stop mutating.
//   - After construction every method is a read; an arbitrary number of
//     concurrent searches may share one Graph with no locking. The graph
//     takes no internal locks — the caller owns the build/serve boundary.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidVertex: an identifier outside [0, VertexCount()).
//   - ErrNegativeCost:  AddEdge with cost < 0.
//   - ErrBadWaitCost:   WithWaitCost with a negative value (panics, as
//     option constructors validate eagerly).
//
// See also: gridworld for building graphs from occupancy grids, and
// heuristic for admissible distance estimates over positions.
package core
