// Package gameplay resolves one player command into one state
// transition: a move, a secret-door search or a floor change.
package gameplay

import (
	log "github.com/sirupsen/logrus"

	engineinput "github.com/ShomRinn/LabAdventures/pkg/engine/input"
	"github.com/ShomRinn/LabAdventures/pkg/engine/world"
	"github.com/ShomRinn/LabAdventures/pkg/game/renderer"
	"github.com/ShomRinn/LabAdventures/pkg/game/state"
)

// ProcessIntent applies one command to the session. Every accepted
// command counts as a turn and refreshes visibility, including moves
// blocked by a wall; quit ends the session without a refresh;
// unrecognized input is consumed with no state change.
func ProcessIntent(s *state.Session, intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionQuit:
		s.Done = true
		return

	case engineinput.ActionMoveNorth:
		Move(s, world.North)
	case engineinput.ActionMoveSouth:
		Move(s, world.South)
	case engineinput.ActionMoveEast:
		Move(s, world.East)
	case engineinput.ActionMoveWest:
		Move(s, world.West)

	case engineinput.ActionSearch:
		Search(s)

	case engineinput.ActionUseStairs:
		UseStairs(s)

	default:
		return
	}

	s.Turns++
	s.RefreshVisibility()
}

// Move steps the player one cell in the given direction if that side of
// the current cell is open. A blocked side or an out-of-range
// destination leaves the position unchanged. Returns whether the player
// moved.
func Move(s *state.Session, dir world.Direction) bool {
	m := s.CurrentMaze()
	cell := s.CurrentCell()
	if cell == nil || !cell.Open(dir) {
		logMessage(s, "DENIED{A wall blocks the way} %s.", dir.String())
		return false
	}

	// Generation guarantees an open side stays in range, but reveals and
	// stair mechanics sit on top of the spanning tree, so never trust it.
	rowRel, colRel := dir.Delta()
	row, col := s.Player.Row+rowRel, s.Player.Col+colRel
	if !m.IsValidPosition(row, col) {
		log.WithFields(log.Fields{
			"row": row,
			"col": col,
		}).Warn("open side led out of range")
		return false
	}

	s.Player.Row, s.Player.Col = row, col
	return true
}

// Search probes all four sides of the player's cell and reveals every
// secret door found, opening the wall on both sides. Returns whether at
// least one door was found; repeated searches are no-ops.
func Search(s *state.Session) bool {
	m := s.CurrentMaze()
	found := 0
	for _, dir := range world.AllDirections() {
		if m.RevealSecretDoor(s.Player.Row, s.Player.Col, dir) {
			found++
		}
	}

	if found == 0 {
		logMessage(s, "GT{You search the walls and find nothing.}")
		return false
	}

	log.WithFields(log.Fields{
		"row":   s.Player.Row,
		"col":   s.Player.Col,
		"doors": found,
	}).Debug("secret doors revealed")

	if found == 1 {
		logMessage(s, "You found a ITEM{hidden passage}!")
	} else {
		logMessage(s, "You found ACTION{%d} hidden passages!", found)
	}
	return true
}

// UseStairs moves the player one floor along a staircase on the current
// cell, keeping (row, col). A cell carrying both staircases descends:
// the down check runs first by design. Returns whether the floor changed.
func UseStairs(s *state.Session) bool {
	cell := s.CurrentCell()

	if cell.StairsDown && s.Dungeon.Descend() {
		logMessage(s, "You descend to floor ACTION{%d}.", s.Dungeon.CurrentFloor()+1)
		return true
	}
	if cell.StairsUp && s.Dungeon.Ascend() {
		logMessage(s, "You climb to floor ACTION{%d}.", s.Dungeon.CurrentFloor()+1)
		return true
	}

	logMessage(s, "GT{There are no stairs you can take here.}")
	return false
}

// logMessage adds a formatted message to the session's message log
func logMessage(s *state.Session, msg string, a ...any) {
	s.AddMessage(renderer.ApplyMarkup(msg, a...))
}
