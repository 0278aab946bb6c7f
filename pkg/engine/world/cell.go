// Package world provides 2D maze-grid primitives: cells with per-side
// wall state, the maze itself, and the fog-of-war discovery grid.
package world

// Cell represents a single cell of a maze floor. Each of its four sides
// carries an independent wall flag plus secret-door flags; the mirrored
// flags on the adjacent cell are kept in sync by the Maze mutators, so
// the per-side state must never be written directly from outside this
// package.
type Cell struct {
	// Grid position
	Row int
	Col int

	// Visited is only meaningful during generation (DFS bookkeeping).
	Visited bool

	// Staircase markers. A cell may carry both at once.
	StairsUp   bool
	StairsDown bool

	walls    [4]bool
	secret   [4]bool
	revealed [4]bool
}

func newCell(row, col int) *Cell {
	c := &Cell{Row: row, Col: col}
	for _, dir := range AllDirections() {
		c.walls[dir] = true
	}
	return c
}

// HasWall reports whether a wall stands on the given side.
func (c *Cell) HasWall(dir Direction) bool {
	return dir.IsValid() && c.walls[dir]
}

// SecretDoor reports whether the given side carries a secret door.
func (c *Cell) SecretDoor(dir Direction) bool {
	return dir.IsValid() && c.secret[dir]
}

// SecretDoorRevealed reports whether a secret door on the given side has
// been found by a search.
func (c *Cell) SecretDoorRevealed(dir Direction) bool {
	return dir.IsValid() && c.revealed[dir]
}

// Open reports whether the given side can be walked through: the wall is
// absent, or a secret door there has been revealed.
func (c *Cell) Open(dir Direction) bool {
	if !dir.IsValid() {
		return false
	}
	return !c.walls[dir] || (c.secret[dir] && c.revealed[dir])
}

// HasStairs reports whether the cell carries any staircase marker.
func (c *Cell) HasStairs() bool {
	return c.StairsUp || c.StairsDown
}

// WallMask packs the standing-wall flags into a 4-bit mask
// (North=1, East=2, South=4, West=8). Used by renderers to pick a glyph.
func (c *Cell) WallMask() int {
	mask := 0
	if c.walls[North] {
		mask |= 1
	}
	if c.walls[East] {
		mask |= 2
	}
	if c.walls[South] {
		mask |= 4
	}
	if c.walls[West] {
		mask |= 8
	}
	return mask
}
