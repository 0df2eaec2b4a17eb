package astar

import "container/heap"

// node is one open-list entry: a state with its g/f costs and the parent
// link used for path reconstruction. Entries are owned by the open list
// for the lifetime of one search and discarded afterwards.
type node struct {
	state  State
	g      float64 // cost from the start state
	h      float64 // heuristic estimate to the goal
	f      float64 // g + h
	parent *node
}

// openList is the Open/Closed List Manager: a lazy decrease-key min-heap
// over nodes plus a best-known-g table keyed by State. When a better g
// for a queued state is found, a fresh entry is pushed and the stale one
// is skipped on pop (popMin reports staleness against the table), so no
// index-addressable heap is needed.
//
// Ordering is total and deterministic: f ascending, then h ascending
// (prefer states closer to the goal), then timestep, then vertex —
// repeated searches over identical inputs pop in identical order.
type openList struct {
	heap  nodeHeap
	bestG map[State]float64
	done  map[State]struct{}
}

// newOpenList sizes the tables for roughly one entry per vertex.
func newOpenList(hint int) *openList {
	return &openList{
		heap:  make(nodeHeap, 0, hint),
		bestG: make(map[State]float64, hint),
		done:  make(map[State]struct{}, hint),
	}
}

// push records g as the best known cost for s and queues the entry. A
// previously closed s is reopened: an admissible heuristic that is not
// consistent may legitimately find a strictly cheaper route to a closed
// state, and skipping it would forfeit optimality. The caller must have
// checked improvesOn first.
func (o *openList) push(s State, g, h float64, parent *node) {
	o.bestG[s] = g
	delete(o.done, s)
	heap.Push(&o.heap, &node{state: s, g: g, h: h, f: g + h, parent: parent})
}

// popMin removes and returns the lowest-ordered entry, or nil when the
// queue is empty (the driver maps that to ErrExhausted). Stale entries —
// superseded by a cheaper push or already closed — are discarded here.
func (o *openList) popMin() *node {
	for o.heap.Len() > 0 {
		n := heap.Pop(&o.heap).(*node)
		if best, ok := o.bestG[n.state]; ok && n.g > best {
			continue // superseded by a cheaper duplicate
		}
		if o.isClosed(n.state) {
			continue // finalized at an equal-or-better cost
		}

		return n
	}

	return nil
}

// improvesOn reports whether cost g is strictly better than the best
// known cost for s (true when s was never seen).
func (o *openList) improvesOn(s State, g float64) bool {
	best, ok := o.bestG[s]

	return !ok || g < best
}

// bestKnown returns the lowest g recorded for s, with ok=false when the
// state was never queued.
func (o *openList) bestKnown(s State) (float64, bool) {
	g, ok := o.bestG[s]

	return g, ok
}

// markClosed finalizes s: its best known cost is now permanent.
func (o *openList) markClosed(s State) { o.done[s] = struct{}{} }

// isClosed reports whether s was permanently closed.
func (o *openList) isClosed(s State) bool {
	_, ok := o.done[s]

	return ok
}

// nodeHeap implements heap.Interface with the deterministic ordering
// described on openList.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	if a.state.T != b.state.T {
		return a.state.T < b.state.T
	}

	return a.state.V < b.state.V
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}
