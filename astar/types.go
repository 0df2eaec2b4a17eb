package astar

import (
	"errors"
	"log/slog"
	"time"

	"github.com/vicky970125/airpath/core"
)

// Sentinel errors returned by Search. core.ErrInvalidVertex completes
// the failure taxonomy: it is returned unchanged when start or goal lie
// outside the graph.
var (
	// ErrExhausted indicates the open list emptied before the goal was
	// reached: no constraint-respecting path exists within the horizon.
	// Recoverable — the caller may relax constraints or give up.
	ErrExhausted = errors.New("astar: search space exhausted under given constraints")

	// ErrTimedOut indicates the wall-clock deadline or expansion cap was
	// hit while the search was still running. Recoverable — retry with a
	// larger budget. Deliberately distinct from ErrExhausted.
	ErrTimedOut = errors.New("astar: search budget exceeded")

	// ErrNilGraph indicates a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates a nil heuristic.Provider was passed to Search.
	ErrNilHeuristic = errors.New("astar: heuristic provider is nil")

	// ErrBadHorizon indicates WithHorizon was given a non-positive value.
	ErrBadHorizon = errors.New("astar: horizon must be positive")

	// ErrBadStartTime indicates WithStartTime was given a negative value.
	ErrBadStartTime = errors.New("astar: start time must be non-negative")
)

// DefaultHorizon bounds the time-expanded state space when the caller
// does not pass WithHorizon. Generous enough for surface graphs where
// paths rarely exceed a few hundred steps.
const DefaultHorizon = 512

// deadlineProbeMask amortizes wall-clock reads: the deadline is checked
// on every expansion whose ordinal has these low bits clear.
const deadlineProbeMask = 1023

// State is one unit of time-expanded search: a vertex occupied at a
// timestep. Two states are equal iff both fields match. Timesteps are
// non-negative and increase by exactly one per action along a path.
type State struct {
	V core.VertexID
	T int
}

// Result is a successful search outcome: the ordered (vertex, timestep)
// sequence from start to goal, its total cost, and per-call statistics.
type Result struct {
	// Path starts at (start, startTime) and ends at (goal, arrival);
	// consecutive states differ by one move edge or one wait.
	Path []State

	// Cost is the summed edge and wait costs along Path.
	Cost float64

	// Stats describes the work this invocation performed.
	Stats Stats
}

// Stats carries per-invocation counters, also mirrored to Prometheus.
type Stats struct {
	// Expanded counts states popped and expanded (stale pops excluded).
	Expanded uint64

	// Generated counts successor states pushed onto the open list.
	Generated uint64

	// Elapsed is the wall-clock duration of the invocation.
	Elapsed time.Duration
}

// Options configures one Search invocation.
//
//   - Horizon: maximum timestep considered; bounds the state space.
//   - TimeLimit: wall-clock budget; 0 disables the deadline.
//   - MaxExpansions: expansion-count cap; 0 disables the cap.
//   - StartTime: timestep of the start state. A scheduler replanning an
//     agent mid-route resumes from the agent's current timestep.
//   - Logger: optional slog target for a per-invocation summary; nil
//     keeps the hot loop silent.
type Options struct {
	Horizon       int
	TimeLimit     time.Duration
	MaxExpansions uint64
	StartTime     int
	Logger        *slog.Logger
}

// Option is a functional option for configuring Search.
type Option func(*Options)

// WithHorizon caps the largest timestep the search may reach.
// Must be positive; non-positive values panic with ErrBadHorizon.
func WithHorizon(n int) Option {
	if n <= 0 {
		panic(ErrBadHorizon.Error())
	}
	return func(o *Options) { o.Horizon = n }
}

// WithTimeLimit sets a wall-clock budget for the invocation. When it
// expires mid-search, Search returns ErrTimedOut. Zero or negative
// disables the deadline.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// WithMaxExpansions caps the number of expanded states, a deterministic
// alternative to WithTimeLimit. Zero disables the cap.
func WithMaxExpansions(n uint64) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithStartTime sets the timestep of the start state (default 0).
// Must be ≥ 0; negative values panic with ErrBadStartTime.
func WithStartTime(t int) Option {
	if t < 0 {
		panic(ErrBadStartTime.Error())
	}
	return func(o *Options) { o.StartTime = t }
}

// WithLogger attaches a structured logger that receives one summary
// record per invocation. Nil (the default) disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// DefaultOptions returns the options Search starts from before applying
// the caller's functional options.
func DefaultOptions() Options {
	return Options{
		Horizon: DefaultHorizon,
	}
}
