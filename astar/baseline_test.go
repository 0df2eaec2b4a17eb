package astar_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/vicky970125/airpath/astar"
	"github.com/vicky970125/airpath/core"
	"github.com/vicky970125/airpath/gridworld"
	"github.com/vicky970125/airpath/heuristic"
)

// gonumMirror rebuilds g as a gonum weighted directed graph so that an
// independent shortest-path implementation can cross-check our costs.
func gonumMirror(g *core.Graph) *simple.WeightedDirectedGraph {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for v := 0; v < g.VertexCount(); v++ {
		wg.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.From),
			T: simple.Node(e.To),
			W: e.Cost,
		})
	}

	return wg
}

// TestSearch_MatchesDijkstraBaseline checks that, without constraints,
// the time-expanded search degenerates to plain shortest paths: its
// cost must equal gonum's Dijkstra cost for every reachable goal.
func TestSearch_MatchesDijkstraBaseline(t *testing.T) {
	scenario := strings.Join([]string{
		"..........",
		".###.###..",
		".#.....#..",
		".#.###.#..",
		"...#.#....",
		".#.#.#.##.",
		".#.....#..",
		".#####.#.#",
		"..........",
	}, "\n")

	cells := make([][]int, 0, 9)
	for _, row := range strings.Split(scenario, "\n") {
		r := make([]int, len(row))
		for i, c := range row {
			if c == '.' {
				r[i] = 1
			}
		}
		cells = append(cells, r)
	}

	g, idx, err := gridworld.Build(cells, gridworld.DefaultOptions())
	require.NoError(t, err)

	start, ok := idx.At(0, 0)
	require.True(t, ok)

	h, err := heuristic.NewEuclidean(g)
	require.NoError(t, err)

	ref := path.DijkstraFrom(simple.Node(start), gonumMirror(g))

	for goal := core.VertexID(0); int(goal) < g.VertexCount(); goal++ {
		want := ref.WeightTo(int64(goal))
		res, serr := astar.Search(g, h, start, goal, nil)
		if math.IsInf(want, 1) {
			assert.ErrorIs(t, serr, astar.ErrExhausted,
				"goal %d unreachable by Dijkstra but found by search", goal)
			continue
		}
		require.NoError(t, serr, "goal %d", goal)
		assert.InDelta(t, want, res.Cost, 1e-9, "goal %d", goal)
	}
}

// TestSearch_DistanceTableMatchesBaseline repeats the cross-check with
// the exact precomputed heuristic, which must not change any optimum.
func TestSearch_DistanceTableMatchesBaseline(t *testing.T) {
	cells := [][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}
	g, idx, err := gridworld.Build(cells, gridworld.DefaultOptions())
	require.NoError(t, err)

	start, ok := idx.At(0, 0)
	require.True(t, ok)
	goal, ok := idx.At(3, 2)
	require.True(t, ok)

	table, err := heuristic.NewDistanceTable(g, goal)
	require.NoError(t, err)

	want := path.DijkstraFrom(simple.Node(start), gonumMirror(g)).WeightTo(int64(goal))
	res, err := astar.Search(g, table, start, goal, nil)
	require.NoError(t, err)
	assert.InDelta(t, want, res.Cost, 1e-9)
}
