package world

import (
	"github.com/zyedidia/generic/mapset"
)

// DefaultViewRadius is the default fog-of-war view radius
// (Manhattan distance from the player).
const DefaultViewRadius = 3

// Discovery is the fog-of-war grid for one floor. Flags only ever flip
// from false to true; nothing resets them.
type Discovery struct {
	seen [][]bool
	rows int
	cols int
}

// NewDiscovery creates an all-undiscovered grid matching the maze size.
func NewDiscovery(m *Maze) *Discovery {
	d := &Discovery{
		rows: m.Rows(),
		cols: m.Cols(),
		seen: make([][]bool, m.Rows()),
	}
	for row := range d.seen {
		d.seen[row] = make([]bool, m.Cols())
	}
	return d
}

// Discovered reports whether the cell at (row, col) has ever been seen.
// Out-of-range positions are undiscovered.
func (d *Discovery) Discovered(row, col int) bool {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return false
	}
	return d.seen[row][col]
}

// Count returns the number of discovered cells.
func (d *Discovery) Count() int {
	n := 0
	for _, rowSeen := range d.seen {
		for _, s := range rowSeen {
			if s {
				n++
			}
		}
	}
	return n
}

// VisibleCells returns the cells of m within Manhattan distance radius
// of (row, col), clipped to the maze bounds.
func VisibleCells(m *Maze, row, col, radius int) []*Cell {
	visible := mapset.New[*Cell]()

	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if manhattan(dr, dc) > radius {
				continue
			}
			if cell := m.GetCell(row+dr, col+dc); cell != nil {
				visible.Put(cell)
			}
		}
	}

	result := make([]*Cell, 0, visible.Size())
	visible.Each(func(cell *Cell) {
		result = append(result, cell)
	})
	return result
}

// RevealAround marks every cell of m within Manhattan distance radius of
// (row, col) as discovered.
func (d *Discovery) RevealAround(m *Maze, row, col, radius int) {
	for _, cell := range VisibleCells(m, row, col, radius) {
		d.seen[cell.Row][cell.Col] = true
	}
}

// manhattan returns |dr| + |dc|.
func manhattan(dr, dc int) int {
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}
