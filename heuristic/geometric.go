package heuristic

import (
	"math"

	"github.com/vicky970125/airpath/core"
)

// Euclidean estimates remaining cost as straight-line distance between
// 2-D positions, scaled so that no edge is ever cheaper than its scaled
// length. The scale is min over all move edges of cost/length, which
// makes the estimate both admissible and consistent for any geometry:
// along every edge, cost(u,v) ≥ scale·d(u,v) ≥ scale·(d(u,g) − d(v,g)).
//
// Compared to an exact DistanceTable the bound is looser (more states
// expanded) but needs no per-goal precomputation.
type Euclidean struct {
	g     *core.Graph
	scale float64
}

// NewEuclidean builds a Euclidean provider for g.
// Returns ErrNilGraph when g is nil.
// Complexity: O(E) to derive the admissible scale.
func NewEuclidean(g *core.Graph) (*Euclidean, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Euclidean{g: g, scale: admissibleScale(g, euclidean)}, nil
}

// Estimate returns scale·‖pos(v) − pos(goal)‖, or 0 for unknown vertices.
func (e *Euclidean) Estimate(v, goal core.VertexID) float64 {
	pv, err := e.g.Position(v)
	if err != nil {
		return 0
	}
	pg, err := e.g.Position(goal)
	if err != nil {
		return 0
	}

	return e.scale * euclidean(pv, pg)
}

// Manhattan estimates remaining cost as L1 distance between positions,
// scaled the same way as Euclidean but against Manhattan edge lengths.
// On 4-connected grids this bound is tighter than Euclidean while still
// admissible and consistent (L1 satisfies the triangle inequality).
type Manhattan struct {
	g     *core.Graph
	scale float64
}

// NewManhattan builds a Manhattan provider for g.
// Returns ErrNilGraph when g is nil.
// Complexity: O(E).
func NewManhattan(g *core.Graph) (*Manhattan, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Manhattan{g: g, scale: admissibleScale(g, manhattan)}, nil
}

// Estimate returns scale·(|Δx| + |Δy|), or 0 for unknown vertices.
func (m *Manhattan) Estimate(v, goal core.VertexID) float64 {
	pv, err := m.g.Position(v)
	if err != nil {
		return 0
	}
	pg, err := m.g.Position(goal)
	if err != nil {
		return 0
	}

	return m.scale * manhattan(pv, pg)
}

// admissibleScale returns the largest factor s such that every move edge
// satisfies cost ≥ s·dist(from, to) under the given metric. Zero-length
// edges are skipped (any scale satisfies them); a graph whose cheapest
// edges traverse zero distance, or with no edges at all, yields scale 0
// and the heuristic degrades to 0 — still admissible.
func admissibleScale(g *core.Graph, dist func(a, b core.Pos) float64) float64 {
	scale := math.Inf(1)
	for _, e := range g.Edges() {
		pa, _ := g.Position(e.From)
		pb, _ := g.Position(e.To)
		d := dist(pa, pb)
		if d <= 0 {
			continue
		}
		if s := e.Cost / d; s < scale {
			scale = s
		}
	}
	if math.IsInf(scale, 1) {
		return 0
	}

	return scale
}

func euclidean(a, b core.Pos) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func manhattan(a, b core.Pos) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}
