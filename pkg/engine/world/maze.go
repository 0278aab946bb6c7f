package world

import (
	"github.com/gammazero/deque"
)

// Maze is a fixed-size grid of cells forming one floor. The size is set
// at construction and never changes; cell contents are mutated only
// through the symmetric operations below, which always update both sides
// of an interior wall at once.
type Maze struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewMaze creates a maze with every wall standing. Dimensions are
// validated by the dungeon configuration before construction, so
// non-positive values here are a programming error.
func NewMaze(rows, cols int) *Maze {
	if rows <= 0 || cols <= 0 {
		panic("Maze dimensions must be positive")
	}

	m := &Maze{
		rows:  rows,
		cols:  cols,
		cells: make([][]*Cell, rows),
	}

	for row := 0; row < rows; row++ {
		m.cells[row] = make([]*Cell, cols)
		for col := 0; col < cols; col++ {
			m.cells[row][col] = newCell(row, col)
		}
	}

	return m
}

// Rows returns the number of rows in the maze
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the number of columns in the maze
func (m *Maze) Cols() int {
	return m.cols
}

// IsValidPosition checks if a row/col position is within maze bounds
func (m *Maze) IsValidPosition(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (m *Maze) GetCell(row, col int) *Cell {
	if !m.IsValidPosition(row, col) {
		return nil
	}
	return m.cells[row][col]
}

// GetCellRelative returns the cell adjacent to the given cell in the
// specified direction, or nil at the maze boundary.
func (m *Maze) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil || !dir.IsValid() {
		return nil
	}
	rowRel, colRel := dir.Delta()
	return m.GetCell(c.Row+rowRel, c.Col+colRel)
}

// ForEachCell iterates over all cells in the maze, calling the provided
// function for each.
func (m *Maze) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			fn(row, col, m.cells[row][col])
		}
	}
}

// RemoveWall opens the wall between the cell at (row, col) and its
// neighbor in the given direction, updating both sides. Boundary walls
// are never removed. Returns true if a wall was opened.
func (m *Maze) RemoveWall(row, col int, dir Direction) bool {
	cell := m.GetCell(row, col)
	neighbor := m.GetCellRelative(cell, dir)
	if cell == nil || neighbor == nil {
		return false
	}

	cell.walls[dir] = false
	neighbor.walls[dir.Opposite()] = false
	return true
}

// PlaceSecretDoor marks the standing interior wall on the given side as
// a secret door, on both sides. Returns false for boundary walls and for
// sides already opened by generation.
func (m *Maze) PlaceSecretDoor(row, col int, dir Direction) bool {
	cell := m.GetCell(row, col)
	neighbor := m.GetCellRelative(cell, dir)
	if cell == nil || neighbor == nil {
		return false
	}
	if !cell.walls[dir] {
		return false
	}

	cell.secret[dir] = true
	neighbor.secret[dir.Opposite()] = true
	return true
}

// RevealSecretDoor reveals an unrevealed secret door on the given side of
// (row, col): both revealed flags are set and the wall is opened on both
// sides, so the side behaves like an ordinary passage from then on.
// Returns true only when a door was newly revealed.
func (m *Maze) RevealSecretDoor(row, col int, dir Direction) bool {
	cell := m.GetCell(row, col)
	neighbor := m.GetCellRelative(cell, dir)
	if cell == nil || neighbor == nil {
		return false
	}
	if !cell.secret[dir] || cell.revealed[dir] {
		return false
	}

	opp := dir.Opposite()
	cell.revealed[dir] = true
	neighbor.revealed[opp] = true
	cell.walls[dir] = false
	neighbor.walls[opp] = false
	return true
}

// IsOpen reports whether the side of the cell at (row, col) facing dir
// can be walked through. Out-of-range positions are closed.
func (m *Maze) IsOpen(row, col int, dir Direction) bool {
	cell := m.GetCell(row, col)
	if cell == nil {
		return false
	}
	return cell.Open(dir)
}

// OpenEdgeCount counts open interior passages. Each undirected edge is
// counted once by scanning only the north and west side of every cell.
func (m *Maze) OpenEdgeCount() int {
	count := 0
	m.ForEachCell(func(row, col int, cell *Cell) {
		for _, dir := range []Direction{North, West} {
			if m.GetCellRelative(cell, dir) != nil && cell.Open(dir) {
				count++
			}
		}
	})
	return count
}

// ReachableFrom returns the number of cells reachable from (row, col)
// using only open passages. A fully carved maze reaches every cell.
func (m *Maze) ReachableFrom(row, col int) int {
	start := m.GetCell(row, col)
	if start == nil {
		return 0
	}

	visited := make(map[*Cell]bool)
	visited[start] = true

	var queue deque.Deque[*Cell]
	queue.PushBack(start)

	for queue.Len() > 0 {
		current := queue.PopFront()
		for _, dir := range AllDirections() {
			if !current.Open(dir) {
				continue
			}
			next := m.GetCellRelative(current, dir)
			if next != nil && !visited[next] {
				visited[next] = true
				queue.PushBack(next)
			}
		}
	}

	return len(visited)
}
