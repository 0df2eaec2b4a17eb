package astar

import (
	"fmt"
	"time"

	"github.com/vicky970125/airpath/constraint"
	"github.com/vicky970125/airpath/core"
	"github.com/vicky970125/airpath/heuristic"
	"github.com/vicky970125/airpath/metrics"
)

// Search finds a cheapest constraint-respecting path from start to goal
// on the time-expanded graph over g, using h to order expansion.
//
// Inputs:
//
//   - g:    the shared read-only spatial graph.
//   - h:    an admissible heuristic provider (see package heuristic);
//     admissibility guarantees the returned cost is optimal.
//   - cs:   this invocation's constraint set; nil means unconstrained.
//   - opts: WithHorizon, WithTimeLimit, WithMaxExpansions,
//     WithStartTime, WithLogger.
//
// Outcomes:
//
//   - (Result, nil) with a fully validated path and its total cost.
//   - core.ErrInvalidVertex when start or goal is outside g. Fatal to
//     the call; reported before any expansion.
//   - ErrExhausted when no path exists within the horizon under cs.
//   - ErrTimedOut when the wall-clock or expansion budget ran out first.
//
// A partial path is never returned. Repeating the call with identical
// inputs yields an identical result (deterministic tie-breaks).
func Search(
	g *core.Graph,
	h heuristic.Provider,
	start, goal core.VertexID,
	cs *constraint.Set,
	opts ...Option,
) (Result, error) {
	// 1) Validate collaborators before touching any budget.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if h == nil {
		return Result{}, ErrNilHeuristic
	}
	if !g.Contains(start) {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return Result{}, fmt.Errorf("%w: start=%d", core.ErrInvalidVertex, start)
	}
	if !g.Contains(goal) {
		metrics.SearchesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return Result{}, fmt.Errorf("%w: goal=%d", core.ErrInvalidVertex, goal)
	}

	// 2) Build options from defaults plus caller overrides.
	opt := DefaultOptions()
	for _, o := range opts {
		o(&opt)
	}

	// 3) Assemble the per-invocation runner. Everything mutable lives
	//    here, so concurrent Search calls never share state beyond the
	//    read-only graph and heuristic.
	r := &runner{
		g:       g,
		h:       h,
		cs:      cs,
		goal:    goal,
		opt:     opt,
		open:    newOpenList(g.VertexCount()),
		started: time.Now(),
	}
	if opt.TimeLimit > 0 {
		r.useDeadline = true
		r.deadline = r.started.Add(opt.TimeLimit)
	}

	res, err := r.run(start)
	res.Stats.Elapsed = time.Since(r.started)
	r.observe(res, err)

	return res, err
}

// runner holds the mutable state of a single Search invocation.
type runner struct {
	g    *core.Graph
	h    heuristic.Provider
	cs   *constraint.Set
	goal core.VertexID
	opt  Options

	open        *openList
	stats       Stats
	started     time.Time
	deadline    time.Time
	useDeadline bool
}

// run executes the Idle → Expanding → {GoalFound | Exhausted} loop.
func (r *runner) run(start core.VertexID) (Result, error) {
	// Idle: seed the open list with the start state at g=0. A start
	// already violating its own timestep, or beyond the horizon, makes
	// the instance trivially infeasible.
	startState := State{V: start, T: r.opt.StartTime}
	if startState.T > r.opt.Horizon || r.cs.BlocksVertex(start, startState.T) {
		return Result{Stats: r.stats}, ErrExhausted
	}
	r.open.push(startState, 0, r.h.Estimate(start, r.goal), nil)
	r.stats.Generated++

	// Expanding: repeatedly pop the lowest-f open state.
	for {
		// Budget checks come first so a hopeless search cannot spin.
		if r.opt.MaxExpansions > 0 && r.stats.Expanded >= r.opt.MaxExpansions {
			return Result{Stats: r.stats}, ErrTimedOut
		}
		if r.useDeadline && r.stats.Expanded&deadlineProbeMask == 0 &&
			time.Now().After(r.deadline) {
			return Result{Stats: r.stats}, ErrTimedOut
		}

		cur := r.open.popMin()
		if cur == nil {
			// Exhausted: provably no path under these constraints.
			return Result{Stats: r.stats}, ErrExhausted
		}

		r.open.markClosed(cur.state)
		r.stats.Expanded++

		// GoalFound: reaching the goal counts only when staying there is
		// safe — no vertex constraint on the goal at any later timestep
		// within the horizon. Constraints past the horizon concern
		// timesteps the search can never occupy.
		if cur.state.V == r.goal && r.cs.LatestVertexUpTo(r.goal, r.opt.Horizon) < cur.state.T {
			return Result{
				Path:  reconstruct(cur),
				Cost:  cur.g,
				Stats: r.stats,
			}, nil
		}

		if err := r.expand(cur); err != nil {
			return Result{Stats: r.stats}, err
		}
	}
}

// expand generates the successors of cur at timestep cur.T+1: the wait
// self-loop plus every outgoing move edge, filtered by the constraint
// set and pushed when strictly cheaper than any previously known cost
// for the successor state.
func (r *runner) expand(cur *node) error {
	t := cur.state.T + 1
	if t > r.opt.Horizon {
		return nil // successors would leave the bounded state space
	}

	// Wait in place. Always legal unless the vertex itself is blocked at
	// the future timestep — essential for sitting out moving conflicts.
	if !r.cs.BlocksVertex(cur.state.V, t) {
		r.relax(cur, State{V: cur.state.V, T: t}, cur.g+r.g.WaitCost())
	}

	edges, err := r.g.Neighbors(cur.state.V)
	if err != nil {
		// Unreachable once start/goal validated: expanded vertices come
		// from the graph's own adjacency lists.
		return fmt.Errorf("astar: expanding %d: %w", cur.state.V, err)
	}
	for _, e := range edges {
		if r.cs.BlocksEdge(e.From, e.To, t) || r.cs.BlocksVertex(e.To, t) {
			continue
		}
		r.relax(cur, State{V: e.To, T: t}, cur.g+e.Cost)
	}

	return nil
}

// relax pushes the successor when g improves on its best known cost.
func (r *runner) relax(parent *node, s State, g float64) {
	if !r.open.improvesOn(s, g) {
		return
	}
	r.open.push(s, g, r.h.Estimate(s.V, r.goal), parent)
	r.stats.Generated++
}

// reconstruct walks parent links from the goal node back to the start
// and returns the path in forward order.
func reconstruct(end *node) []State {
	depth := 0
	for n := end; n != nil; n = n.parent {
		depth++
	}
	path := make([]State, depth)
	for n := end; n != nil; n = n.parent {
		depth--
		path[depth] = n.state
	}

	return path
}

// observe mirrors the invocation to Prometheus and, when configured,
// emits one structured summary record.
func (r *runner) observe(res Result, err error) {
	outcome := metrics.OutcomeFound
	switch err {
	case nil:
	case ErrExhausted:
		outcome = metrics.OutcomeExhausted
	case ErrTimedOut:
		outcome = metrics.OutcomeTimedOut
	default:
		outcome = metrics.OutcomeInvalid
	}
	metrics.SearchesTotal.WithLabelValues(outcome).Inc()
	metrics.SearchExpansions.Observe(float64(res.Stats.Expanded))
	metrics.SearchDuration.Observe(res.Stats.Elapsed.Seconds())

	if r.opt.Logger != nil {
		r.opt.Logger.Debug("space-time search finished",
			"outcome", outcome,
			"goal", int(r.goal),
			"cost", res.Cost,
			"expanded", res.Stats.Expanded,
			"generated", res.Stats.Generated,
			"elapsed", res.Stats.Elapsed,
		)
	}
}
