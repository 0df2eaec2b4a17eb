// Package astar implements the time-expanded A* search driver: the
// low-level routine a multi-agent scheduler invokes once per agent per
// replanning round, with a fresh constraint set each time.
//
// The search runs over (vertex, timestep) states. Waiting in place is
// always a legal action unless a vertex constraint blocks it, which lets
// an agent sit out a temporary conflict instead of detouring. A popped
// goal state only terminates the search when the goal is safe to stay
// at — no vertex constraint exists there at any later timestep up to
// the horizon — because an agent that parks on its goal must never be
// forced to move again.
//
// What this package guarantees:
//
//   - ✔ Optimality: with an admissible heuristic the returned cost is
//     the cheapest achievable under the given constraints.
//   - ✔ Safety: every returned path respects every constraint and every
//     graph edge; a partial path is never returned.
//   - ✔ Determinism: identical inputs produce identical paths, via a
//     total tie-break order on open states.
//   - ✔ Isolation: all mutable state is per-invocation, so concurrent
//     searches may share one graph and one heuristic.
//
// Failure taxonomy:
//
//   - core.ErrInvalidVertex — start or goal outside the graph; fatal.
//   - ErrExhausted — provably no path under the constraints; the caller
//     may relax constraints or report the instance infeasible.
//   - ErrTimedOut — wall-clock or expansion budget ran out first; the
//     caller may retry with a larger budget.
//
// Complexity: O((V·H + E·H) log(V·H)) time over horizon H, the usual
// A* bound on the time-expanded graph; O(V·H) space worst case.
package astar
