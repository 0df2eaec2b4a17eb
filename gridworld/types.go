// Package gridworld defines types, options, and sentinel errors for
// building airpath graphs from occupancy grids and YAML scenarios.
package gridworld

import (
	"errors"

	"github.com/vicky970125/airpath/core"
)

// Sentinel errors for gridworld operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")

	// ErrBlockedCell indicates a scenario references a cell that is an
	// obstacle or outside the grid.
	ErrBlockedCell = errors.New("gridworld: cell is blocked or out of bounds")

	// ErrBadScenario indicates a scenario document failed validation.
	ErrBadScenario = errors.New("gridworld: invalid scenario")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals at √2 move cost.
	Conn8
)

// Cell addresses one grid position; X is the column, Y the row.
type Cell struct {
	X, Y int
}

// Index maps free cells to the vertex identifiers Build allocated for
// them. Obstacle cells have no entry.
type Index map[Cell]core.VertexID

// At returns the vertex for cell (x, y), with ok=false for obstacles
// and out-of-bounds cells.
func (ix Index) At(x, y int) (core.VertexID, bool) {
	v, ok := ix[Cell{X: x, Y: y}]

	return v, ok
}

// Options tunes grid-to-graph conversion.
type Options struct {
	// FreeThreshold is the minimum cell value considered traversable;
	// cells below it are obstacles.
	FreeThreshold int

	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity

	// WaitCost is forwarded to the core graph (cost of staying put for
	// one timestep).
	WaitCost float64
}

// DefaultOptions returns Options with FreeThreshold=1 (values ≥ 1 are
// traversable), Conn4, and the core default wait cost.
func DefaultOptions() Options {
	return Options{
		FreeThreshold: 1,
		Conn:          Conn4,
		WaitCost:      core.DefaultWaitCost,
	}
}
