// Package airpath is a single-agent shortest-path search core for
// time-expanded ("space-time") graphs — the low-level engine that a
// surface-movement scheduler calls over and over while resolving
// conflicts between taxiing agents.
//
// 🚀 What is airpath?
//
//	A small, focused library that brings together:
//		• core       — immutable spatial graph: vertices with 2-D positions,
//		               directed move edges, a configurable wait action
//		• constraint — per-search sets of forbidden (vertex, timestep) and
//		               (edge, timestep) occupations
//		• heuristic  — admissible estimates: geometric (Euclidean/Manhattan)
//		               or exact reverse-Dijkstra distance tables
//		• astar      — the time-expanded A* driver: deterministic tie-breaks,
//		               lazy decrease-key open list, wait-in-place successors,
//		               goal-safety check, horizon and time budgets
//		• gridworld  — occupancy-grid and YAML scenario construction helpers
//		• metrics    — Prometheus counters/histograms for every invocation
//
// ✨ Why choose airpath?
//
//   - Correctness first — optimal paths under any admissible heuristic,
//     explicit Exhausted/TimedOut outcomes, never a partial path
//   - Deterministic — a fixed tie-break rule makes repeated calls with
//     identical inputs return identical paths
//   - Scheduler-ready — share one graph and one heuristic across many
//     concurrent searches; all mutable state is per-invocation
//
// Quick ASCII example:
//
//	A───B───C        start=A, goal=C, B blocked at t=1
//	                 → path A@0, A@1 (wait), B@2, C@3
//
// Dive into the astar package for the search contract, and gridworld for
// building test instances from maps.
//
//	go get github.com/vicky970125/airpath
package airpath
