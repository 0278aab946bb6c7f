package tui

import (
	"math/rand"
	"testing"

	"github.com/ShomRinn/LabAdventures/pkg/game/dungeon"
	"github.com/ShomRinn/LabAdventures/pkg/game/state"
)

func makeSession(t *testing.T) *state.Session {
	t.Helper()
	rng := rand.New(rand.NewSource(21))
	d, err := dungeon.New(2, 5, 5, 0, nil, rng)
	if err != nil {
		t.Fatalf("dungeon.New: %v", err)
	}
	return state.NewSession(d, 2)
}

func TestGlyphFor_PlayerOverridesEverything(t *testing.T) {
	s := makeSession(t)
	cell := s.CurrentCell()
	cell.StairsDown = true
	cell.StairsUp = true
	if got := glyphFor(s, cell); got != PlayerIcon {
		t.Errorf("glyphFor(player cell) = %q, want %q", got, PlayerIcon)
	}
}

func TestGlyphFor_UndiscoveredIsBlank(t *testing.T) {
	s := makeSession(t)
	// (4,4) is Manhattan distance 8 from the start, well outside radius 2.
	cell := s.CurrentMaze().GetCell(4, 4)
	if got := glyphFor(s, cell); got != IconVoid {
		t.Errorf("glyphFor(undiscovered cell) = %q, want blank", got)
	}
}

func TestGlyphFor_StairGlyphs(t *testing.T) {
	s := makeSession(t)
	cell := s.CurrentMaze().GetCell(0, 1) // discovered by the initial reveal

	cell.StairsDown = true
	if got := glyphFor(s, cell); got != IconStairsDown {
		t.Errorf("down-staircase glyph = %q, want %q", got, IconStairsDown)
	}

	cell.StairsDown = false
	cell.StairsUp = true
	if got := glyphFor(s, cell); got != IconStairsUp {
		t.Errorf("up-staircase glyph = %q, want %q", got, IconStairsUp)
	}

	cell.StairsDown = true
	if got := glyphFor(s, cell); got != IconStairsBoth {
		t.Errorf("both-staircase glyph = %q, want %q", got, IconStairsBoth)
	}
}

func TestGlyphFor_TopLeftCornerGlyph(t *testing.T) {
	s := makeSession(t)
	// Step the player off the origin; (0,0) stays discovered. Its north
	// and west walls are boundary walls and always stand.
	s.Player.Row, s.Player.Col = 1, 1
	cell := s.CurrentMaze().GetCell(0, 0)
	cell.StairsDown = false
	cell.StairsUp = false
	if got := glyphFor(s, cell); got != IconCorner {
		t.Errorf("glyphFor(top-left) = %q, want %q", got, IconCorner)
	}
}

func TestGlyphFor_WallMaskTable(t *testing.T) {
	s := makeSession(t)
	s.Player.Row, s.Player.Col = 3, 3
	s.RefreshVisibility()

	cell := s.CurrentMaze().GetCell(2, 3)
	cell.StairsDown = false
	cell.StairsUp = false
	want := string(wallGlyphs[cell.WallMask()])
	if got := glyphFor(s, cell); got != want {
		t.Errorf("glyphFor(discovered wall cell) = %q, want %q", got, want)
	}
}

func TestWallGlyphs_ClosedCellIsCross(t *testing.T) {
	if wallGlyphs[15] != '┼' {
		t.Errorf("fully walled glyph = %q, want ┼", wallGlyphs[15])
	}
	if wallGlyphs[0] != ' ' {
		t.Errorf("fully open glyph = %q, want blank", wallGlyphs[0])
	}
}
