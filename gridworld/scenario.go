package gridworld

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vicky970125/airpath/core"
)

// Scenario is a YAML-loadable problem instance: a map drawn as text rows
// plus the agents a scheduler will plan one by one. '.' marks a free
// cell, '#' an obstacle; any other rune fails validation.
//
// Example document:
//
//	name: crossing
//	horizon: 64
//	grid:
//	  - ".#."
//	  - "..."
//	  - ".#."
//	agents:
//	  - name: AC001
//	    start: [0, 0]
//	    goal:  [2, 2]
type Scenario struct {
	Name    string   `yaml:"name"`
	Horizon int      `yaml:"horizon"`
	Grid    []string `yaml:"grid"`
	Agents  []Agent  `yaml:"agents"`
}

// Agent is one planning subject with start and goal cells as [x, y].
type Agent struct {
	Name  string `yaml:"name"`
	Start [2]int `yaml:"start"`
	Goal  [2]int `yaml:"goal"`
}

// LoadScenario decodes and validates a YAML scenario document.
// Returns ErrBadScenario (wrapped with detail) on malformed documents,
// ErrEmptyGrid/ErrNonRectangular on malformed maps.
func LoadScenario(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadScenario, err)
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// validate checks grid shape, rune alphabet, agent presence, and that
// every start/goal lies on a free cell.
func (sc *Scenario) validate() error {
	if len(sc.Grid) == 0 || len(sc.Grid[0]) == 0 {
		return ErrEmptyGrid
	}
	w := len(sc.Grid[0])
	for y, row := range sc.Grid {
		if len(row) != w {
			return ErrNonRectangular
		}
		for x, r := range row {
			if r != '.' && r != '#' {
				return fmt.Errorf("%w: unknown cell %q at (%d,%d)", ErrBadScenario, r, x, y)
			}
		}
	}
	if len(sc.Agents) == 0 {
		return fmt.Errorf("%w: no agents", ErrBadScenario)
	}
	if sc.Horizon < 0 {
		return fmt.Errorf("%w: negative horizon", ErrBadScenario)
	}
	for _, a := range sc.Agents {
		for _, cell := range [][2]int{a.Start, a.Goal} {
			if !sc.free(cell[0], cell[1]) {
				return fmt.Errorf("%w: agent %q at (%d,%d)", ErrBlockedCell, a.Name, cell[0], cell[1])
			}
		}
	}

	return nil
}

// free reports whether (x, y) is inside the grid and not an obstacle.
func (sc *Scenario) free(x, y int) bool {
	return y >= 0 && y < len(sc.Grid) && x >= 0 && x < len(sc.Grid[y]) &&
		sc.Grid[y][x] == '.'
}

// Build converts the scenario's map into a core graph using opts,
// reusing the same cell semantics as the package-level Build: '.'
// becomes value 1, '#' becomes value 0.
func (sc *Scenario) Build(opts Options) (*core.Graph, Index, error) {
	cells := make([][]int, len(sc.Grid))
	for y, row := range sc.Grid {
		cells[y] = make([]int, len(row))
		for x, r := range row {
			if r == '.' {
				cells[y][x] = 1
			}
		}
	}

	return Build(cells, opts)
}
