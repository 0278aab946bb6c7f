package world

import "testing"

func TestDiscovery_StartsAllUndiscovered(t *testing.T) {
	m := NewMaze(4, 5)
	d := NewDiscovery(m)
	if got := d.Count(); got != 0 {
		t.Errorf("fresh Discovery Count() = %d, want 0", got)
	}
	if d.Discovered(0, 0) {
		t.Error("fresh Discovery reports (0,0) discovered")
	}
}

func TestRevealAround_ManhattanRadius(t *testing.T) {
	m := NewMaze(7, 7)
	d := NewDiscovery(m)
	d.RevealAround(m, 3, 3, 2)

	m.ForEachCell(func(row, col int, cell *Cell) {
		inRange := manhattan(row-3, col-3) <= 2
		if d.Discovered(row, col) != inRange {
			t.Errorf("Discovered(%d,%d) = %v, want %v", row, col, d.Discovered(row, col), inRange)
		}
	})
}

func TestRevealAround_ClipsAtBorders(t *testing.T) {
	m := NewMaze(3, 3)
	d := NewDiscovery(m)
	d.RevealAround(m, 0, 0, 5)

	if got := d.Count(); got != 9 {
		t.Errorf("Count() after oversized reveal = %d, want 9", got)
	}
	if d.Discovered(-1, 0) || d.Discovered(0, 3) {
		t.Error("out-of-range positions report discovered")
	}
}

func TestRevealAround_Monotonic(t *testing.T) {
	m := NewMaze(5, 5)
	d := NewDiscovery(m)
	d.RevealAround(m, 2, 2, 1)
	before := d.Count()

	// Revealing elsewhere never clears earlier discoveries.
	d.RevealAround(m, 4, 4, 0)
	if !d.Discovered(2, 2) || !d.Discovered(1, 2) {
		t.Error("earlier discoveries were lost")
	}
	if d.Count() < before {
		t.Errorf("Count() shrank from %d to %d", before, d.Count())
	}
}

func TestVisibleCells_RadiusZero(t *testing.T) {
	m := NewMaze(3, 3)
	cells := VisibleCells(m, 1, 1, 0)
	if len(cells) != 1 {
		t.Fatalf("VisibleCells radius 0 returned %d cells, want 1", len(cells))
	}
	if cells[0].Row != 1 || cells[0].Col != 1 {
		t.Errorf("VisibleCells radius 0 returned (%d,%d), want (1,1)", cells[0].Row, cells[0].Col)
	}
}
