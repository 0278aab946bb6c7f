// Package state holds the mutable play session: the dungeon, the player
// position, per-floor discovery grids and the message log.
package state

import (
	"github.com/ShomRinn/LabAdventures/pkg/engine/world"
	"github.com/ShomRinn/LabAdventures/pkg/game/dungeon"
)

// Player is the player's position on the current floor.
type Player struct {
	Row int
	Col int
}

// Session aggregates everything a turn mutates. It is passed explicitly
// through turn resolution so the whole game can be driven without a
// live input loop.
type Session struct {
	Dungeon *dungeon.Dungeon
	Player  Player

	// ViewRadius is the Manhattan fog-of-war radius.
	ViewRadius int

	// Turns counts accepted commands.
	Turns int

	// Done is set when the player quits; the loop exits without a
	// final visibility refresh.
	Done bool

	Messages []string

	discovery []*world.Discovery
}

// NewSession starts a session at (0,0) on the top floor with one
// discovery grid per floor, and reveals the starting surroundings so the
// first frame is not fully dark.
func NewSession(d *dungeon.Dungeon, viewRadius int) *Session {
	s := &Session{
		Dungeon:    d,
		ViewRadius: viewRadius,
		Messages:   make([]string, 0),
		discovery:  make([]*world.Discovery, d.FloorCount()),
	}
	for i := range s.discovery {
		s.discovery[i] = world.NewDiscovery(d.Floor(i))
	}
	s.RefreshVisibility()
	return s
}

// CurrentMaze returns the maze of the floor the player is on.
func (s *Session) CurrentMaze() *world.Maze {
	return s.Dungeon.Current()
}

// CurrentCell returns the cell the player stands on.
func (s *Session) CurrentCell() *world.Cell {
	return s.CurrentMaze().GetCell(s.Player.Row, s.Player.Col)
}

// Discovery returns the fog-of-war grid for the given floor, or nil if
// out of range.
func (s *Session) Discovery(floor int) *world.Discovery {
	if floor < 0 || floor >= len(s.discovery) {
		return nil
	}
	return s.discovery[floor]
}

// CurrentDiscovery returns the fog-of-war grid of the current floor.
func (s *Session) CurrentDiscovery() *world.Discovery {
	return s.discovery[s.Dungeon.CurrentFloor()]
}

// RefreshVisibility reveals the current floor around the player.
func (s *Session) RefreshVisibility() {
	s.CurrentDiscovery().RevealAround(s.CurrentMaze(), s.Player.Row, s.Player.Col, s.ViewRadius)
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
