// Package heuristic provides admissible remaining-cost estimates for the
// time-expanded A* driver.
//
// Two strategies are offered, matching the usual trade-off:
//
//   - Geometric (Euclidean, Manhattan): distance between 2-D vertex
//     positions multiplied by an automatically derived scale — the
//     largest factor under which no move edge is cheaper than its scaled
//     length. Admissible and consistent for any graph geometry, cheap to
//     build (one O(E) scan), but loose on graphs with detours.
//
//   - DistanceTable: an exact cost-to-goal table from a reverse Dijkstra
//     over incoming edges. Consistent and exact on the spatial graph, so
//     the driver expands the minimum number of states; costs one
//     O((V+E) log V) precomputation per goal. Preferred by schedulers
//     that replan many times against a fixed goal.
//
// Both strategies never affect correctness of the search — only how many
// states it expands. Zero turns the driver into plain time-expanded
// Dijkstra and is mainly useful as a baseline in tests.
//
// All providers are immutable after construction and therefore safe to
// share across concurrent searches.
//
// Errors (sentinel):
//
//	ErrNilGraph     - a nil graph was passed to a constructor.
//	ErrGoalNotFound - NewDistanceTable's goal is not in the graph.
package heuristic
