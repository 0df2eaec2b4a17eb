// Package gridworld builds airpath instances from 2-D occupancy grids.
//
// Overview:
//
//   - Build turns a rectangular integer grid into a core.Graph: cells at
//     or above FreeThreshold become vertices positioned at their (x, y)
//     coordinate, connected to traversable neighbors both ways at unit
//     cost (√2 for diagonals under Conn8). The returned Index maps cells
//     back to vertex identifiers.
//   - LoadScenario reads a YAML document describing a map as text rows
//     ('.' free, '#' obstacle) plus a list of agents with start/goal
//     cells and an optional horizon; Scenario.Build produces the graph.
//
// The search core deliberately owns no file format; this package is the
// collaborator that prepares instances for it, and the one place the
// library performs I/O.
//
// Errors (sentinel):
//
//	ErrEmptyGrid      - grid with no rows or no columns.
//	ErrNonRectangular - rows of differing lengths.
//	ErrBlockedCell    - agent start/goal on an obstacle or out of bounds.
//	ErrBadScenario    - malformed YAML document or unknown cell rune.
package gridworld
