package core_test

import (
	"fmt"

	"github.com/vicky970125/airpath/core"
)

// ExampleGraph builds a two-vertex taxiway segment and inspects its
// move and wait edges.
func ExampleGraph() {
	// 1) One mirrored move edge, waiting at half the move cost.
	g := core.NewGraph(core.WithBidirectionalEdges(), core.WithWaitCost(0.5))
	a := g.AddVertex(core.Pos{X: 0, Y: 0})
	b := g.AddVertex(core.Pos{X: 3, Y: 4})
	_ = g.AddEdge(a, b, 5)

	// 2) Query the finished graph.
	out, _ := g.Neighbors(a)
	wait, _ := g.WaitEdge(b)
	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("a→b cost:", out[0].Cost)
	fmt.Println("wait cost:", wait.Cost)

	// Output:
	// vertices: 2
	// a→b cost: 5
	// wait cost: 0.5
}
