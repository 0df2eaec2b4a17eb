package astar_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vicky970125/airpath/astar"
	"github.com/vicky970125/airpath/constraint"
	"github.com/vicky970125/airpath/gridworld"
	"github.com/vicky970125/airpath/heuristic"
)

// TestSearch_ConcurrentInvocations runs many searches in parallel over
// one shared graph and one shared precomputed heuristic, each with its
// own constraint set. Run with -race: the graph and the table are
// read-only after construction, so no synchronization is required.
func TestSearch_ConcurrentInvocations(t *testing.T) {
	cells := [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 1, 1, 1},
		{1, 0, 1, 0, 1},
		{1, 1, 1, 1, 1},
	}
	g, idx, err := gridworld.Build(cells, gridworld.DefaultOptions())
	require.NoError(t, err)

	start, ok := idx.At(0, 0)
	require.True(t, ok)
	goal, ok := idx.At(4, 4)
	require.True(t, ok)

	table, err := heuristic.NewDistanceTable(g, goal)
	require.NoError(t, err)

	// Reference result against which every goroutine's answer is checked.
	want, err := astar.Search(g, table, start, goal, nil)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			// Half the workers search unconstrained; the other half carry
			// a private constraint set, as a scheduler round would.
			var cs *constraint.Set
			if w%2 == 1 {
				cs = constraint.NewSet()
				mid, _ := idx.At(2, 2)
				cs.ForbidVertex(mid, 2)
			}
			res, serr := astar.Search(g, table, start, goal, cs)
			assert.NoError(t, serr)
			if cs == nil {
				assert.Equal(t, want.Path, res.Path)
				assert.Equal(t, want.Cost, res.Cost)
			} else {
				assert.GreaterOrEqual(t, res.Cost, want.Cost)
			}
		}(w)
	}
	wg.Wait()
}
