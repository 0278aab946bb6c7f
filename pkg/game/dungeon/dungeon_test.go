package dungeon

import (
	"math/rand"
	"testing"

	"github.com/ShomRinn/LabAdventures/pkg/engine/world"
)

func TestNew_InvalidConfig(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		name               string
		floors, rows, cols int
		chance             float64
	}{
		{"zero floors", 0, 4, 4, 0.1},
		{"zero rows", 2, 0, 4, 0.1},
		{"negative cols", 2, 4, -1, 0.1},
		{"chance below range", 2, 4, 4, -0.5},
		{"chance above range", 2, 4, 4, 1.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := New(c.floors, c.rows, c.cols, c.chance, nil, rng); err == nil {
				t.Errorf("New(%d,%d,%d,%v) succeeded, want error", c.floors, c.rows, c.cols, c.chance)
			}
		})
	}
}

func TestNew_StaircasePairsShareCoordinates(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	d, err := New(4, 6, 6, 0.1, nil, rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 0; i < d.FloorCount()-1; i++ {
		downs := stairCells(d.Floor(i), func(c *world.Cell) bool { return c.StairsDown })
		if len(downs) != 1 {
			t.Fatalf("floor %d has %d down-staircases, want 1", i, len(downs))
		}
		down := downs[0]
		up := d.Floor(i + 1).GetCell(down.Row, down.Col)
		if !up.StairsUp {
			t.Errorf("floor %d down at (%d,%d) has no matching up-staircase below", i, down.Row, down.Col)
		}
	}
}

func TestNew_FloorBoundariesHaveNoDanglingStairs(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	d, err := New(3, 5, 5, 0, nil, rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tops := stairCells(d.Floor(0), func(c *world.Cell) bool { return c.StairsUp })
	if len(tops) != 0 {
		t.Errorf("top floor has %d up-staircases, want 0", len(tops))
	}
	last := d.FloorCount() - 1
	bottoms := stairCells(d.Floor(last), func(c *world.Cell) bool { return c.StairsDown })
	if len(bottoms) != 0 {
		t.Errorf("bottom floor has %d down-staircases, want 0", len(bottoms))
	}
}

func TestNew_SingleFloorHasNoStairs(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	d, err := New(1, 4, 4, 0.1, nil, rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	any := stairCells(d.Floor(0), (*world.Cell).HasStairs)
	if len(any) != 0 {
		t.Errorf("single-floor dungeon has %d staircase cells, want 0", len(any))
	}
}

func TestDescendAscend_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	d, err := New(3, 4, 4, 0, nil, rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if d.Ascend() {
		t.Error("Ascend succeeded on the top floor")
	}
	if !d.Descend() || d.CurrentFloor() != 1 {
		t.Errorf("Descend from floor 0: CurrentFloor() = %d, want 1", d.CurrentFloor())
	}
	if !d.Descend() || d.CurrentFloor() != 2 {
		t.Errorf("Descend from floor 1: CurrentFloor() = %d, want 2", d.CurrentFloor())
	}
	if d.Descend() {
		t.Error("Descend succeeded on the bottom floor")
	}
	if !d.Ascend() || d.CurrentFloor() != 1 {
		t.Errorf("Ascend from floor 2: CurrentFloor() = %d, want 1", d.CurrentFloor())
	}
}

func TestFloor_OutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	d, err := New(2, 3, 3, 0, nil, rng)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Floor(-1) != nil || d.Floor(2) != nil {
		t.Error("Floor() out of range returned a maze")
	}
}

// stairCells collects the cells of m for which pred holds.
func stairCells(m *world.Maze, pred func(*world.Cell) bool) []*world.Cell {
	var cells []*world.Cell
	m.ForEachCell(func(row, col int, cell *world.Cell) {
		if pred(cell) {
			cells = append(cells, cell)
		}
	})
	return cells
}
