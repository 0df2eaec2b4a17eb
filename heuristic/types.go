// Package heuristic defines the Provider contract and sentinel errors
// for admissible distance estimation in airpath.
package heuristic

import (
	"errors"

	"github.com/vicky970125/airpath/core"
)

// Sentinel errors for heuristic construction.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed to a constructor.
	ErrNilGraph = errors.New("heuristic: graph is nil")

	// ErrGoalNotFound indicates the goal vertex passed to NewDistanceTable
	// does not exist in the graph.
	ErrGoalNotFound = errors.New("heuristic: goal vertex not found in graph")
)

// Provider estimates the remaining cost from a vertex to a goal.
//
// Every Provider in this package is admissible: Estimate never exceeds
// the true cheapest remaining move cost, so the search driver's results
// stay optimal. Providers must be safe for concurrent use once built —
// they are shared by parallel searches — which all implementations here
// satisfy by being read-only after construction.
type Provider interface {
	// Estimate returns a non-negative lower bound on the cost of
	// travelling from v to goal. Unknown vertices estimate 0, which is
	// always admissible; the driver validates identifiers up front.
	Estimate(v, goal core.VertexID) float64
}

// Zero is the degenerate Provider estimating 0 everywhere. With it the
// search driver behaves as plain time-expanded Dijkstra.
type Zero struct{}

// Estimate always returns 0.
func (Zero) Estimate(_, _ core.VertexID) float64 { return 0 }
