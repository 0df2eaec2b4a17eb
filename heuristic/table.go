package heuristic

import (
	"container/heap"
	"math"

	"github.com/vicky970125/airpath/core"
)

// DistanceTable is the exact cost-to-goal estimate: a reverse Dijkstra
// from the goal over incoming edges, computed once at construction.
// The resulting bound is exact on the spatial graph (waits and
// constraints can only add cost on top), hence consistent — no state
// ever needs re-expansion after closing.
//
// Build one table per goal vertex; a scheduler typically caches them
// keyed by goal and shares them across all agents heading there.
type DistanceTable struct {
	goal core.VertexID
	dist []float64 // dist[v] = exact move cost v→goal; +Inf if unreachable
}

// NewDistanceTable runs a reverse Dijkstra from goal and returns the
// finished table. Returns ErrNilGraph or ErrGoalNotFound on bad input.
//
// Complexity: O((V + E) log V) time, O(V + E) space — lazy decrease-key,
// duplicates skipped on pop via the visited set.
func NewDistanceTable(g *core.Graph, goal core.VertexID) (*DistanceTable, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Contains(goal) {
		return nil, ErrGoalNotFound
	}

	n := g.VertexCount()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	visited := make([]bool, n)

	pq := make(distPQ, 0, n)
	heap.Init(&pq)

	// Seed with the goal at distance 0 and relax backwards: an incoming
	// edge u→v means u can reach the goal through v at dist[v] + cost.
	dist[goal] = 0
	heap.Push(&pq, distItem{v: goal, d: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(distItem)
		if visited[item.v] {
			continue // stale lazy entry
		}
		visited[item.v] = true

		// Incoming never fails here: item.v originated from the graph.
		in, _ := g.Incoming(item.v)
		for _, e := range in {
			nd := dist[item.v] + e.Cost
			if nd < dist[e.From] {
				dist[e.From] = nd
				heap.Push(&pq, distItem{v: e.From, d: nd})
			}
		}
	}

	return &DistanceTable{goal: goal, dist: dist}, nil
}

// Goal returns the goal vertex this table was built for.
func (t *DistanceTable) Goal() core.VertexID { return t.goal }

// Estimate returns the exact move cost from v to goal, +Inf when the
// goal is unreachable from v. Queries against a different goal than the
// table was built for, or an unknown vertex, return 0 (admissible but
// uninformative) — callers should match tables to goals.
func (t *DistanceTable) Estimate(v, goal core.VertexID) float64 {
	if goal != t.goal || v < 0 || int(v) >= len(t.dist) {
		return 0
	}

	return t.dist[v]
}

// distItem is a (vertex, distance) pair in the reverse-Dijkstra heap.
type distItem struct {
	v core.VertexID
	d float64
}

// distPQ is a min-heap over distItem ordered by distance ascending,
// operated in lazy decrease-key fashion.
type distPQ []distItem

func (pq distPQ) Len() int            { return len(pq) }
func (pq distPQ) Less(i, j int) bool  { return pq[i].d < pq[j].d }
func (pq distPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ) Push(x interface{}) { *pq = append(*pq, x.(distItem)) }
func (pq *distPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
