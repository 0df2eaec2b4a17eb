// Package constraint holds the per-search set of forbidden occupations
// imposed by a higher-level conflict-resolution scheduler.
//
// A constraint is either a vertex constraint (v, t) — "the agent may not
// occupy v at timestep t" — or an edge constraint (from, to, t) — "the
// agent may not traverse from→to arriving at timestep t". The Set is
// built by the caller before each search invocation and must not change
// while a search is running; between invocations it is rebuilt (or
// Clear-ed and refilled) as new conflicts are discovered.
//
// Blocking lookups are backed by maps keyed on composite value types, so
// every query is O(~1) and allocation-free — safe to call from the
// search's hot expansion loop. The composite key hashes as a single
// unit, which is the Go-native equivalent of a pair hash-combination
// helper. Goal-safety queries (LatestVertex, LatestVertexUpTo) binary-
// search a per-vertex sorted timestep list instead.
//
// A nil *Set is valid and blocks nothing, so callers with no constraints
// can pass nil instead of an empty set.
package constraint
