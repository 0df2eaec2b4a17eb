// Package gridworld converts 2-D occupancy grids into airpath core
// graphs, and loads YAML scenario files describing a grid together with
// agents' start/goal cells. It is the "external collaborator" that
// prepares instances before any search runs; the search core itself
// never touches files or grids.
package gridworld

import (
	"math"

	"github.com/vicky970125/airpath/core"
)

// orthogonal and diagonal neighbor offsets, clockwise from north.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{
		{0, -1}, {1, -1}, {1, 0}, {1, 1},
		{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	}
)

// Build converts a rectangular occupancy grid into a core.Graph. Each
// traversable cell (value ≥ opts.FreeThreshold) becomes a vertex whose
// position is its (x, y) coordinate; neighboring traversable cells are
// connected both ways at cost 1 (orthogonal) or √2 (diagonal, Conn8).
//
// Returns the graph plus an Index from cells to vertex identifiers.
// Fails with ErrEmptyGrid or ErrNonRectangular on malformed input.
// Complexity: O(W×H) time and memory.
func Build(cells [][]int, opts Options) (*core.Graph, Index, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, nil, ErrNonRectangular
		}
	}

	g := core.NewGraph(core.WithWaitCost(opts.WaitCost))
	index := make(Index, w*h)

	// First pass: vertices for every free cell, row-major for dense,
	// reproducible identifiers.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cells[y][x] < opts.FreeThreshold {
				continue
			}
			index[Cell{X: x, Y: y}] = g.AddVertex(core.Pos{X: float64(x), Y: float64(y)})
		}
	}

	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	// Second pass: one directed edge per (cell, offset) pair, scanned
	// row-major so adjacency lists come out in a reproducible order.
	// Visiting every cell against every offset emits both directions of
	// each connection exactly once.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			from, ok := index.At(x, y)
			if !ok {
				continue
			}
			for _, d := range offsets {
				to, ok := index.At(x+d[0], y+d[1])
				if !ok {
					continue
				}
				cost := 1.0
				if d[0] != 0 && d[1] != 0 {
					cost = math.Sqrt2
				}
				// Endpoints come from the index; AddEdge cannot fail here.
				_ = g.AddEdge(from, to, cost)
			}
		}
	}

	return g, index, nil
}
