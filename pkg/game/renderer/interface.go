// Package renderer defines the renderer contract and the text markup
// shared by every backend and by gameplay messages.
package renderer

import (
	"github.com/ShomRinn/LabAdventures/pkg/engine/input"
	"github.com/ShomRinn/LabAdventures/pkg/game/state"
)

// Renderer abstracts the output/input surface of the game. The core
// only ever hands it a session snapshot between turns, so any backend
// that can draw a grid of glyphs and read one command fits.
type Renderer interface {
	// Init prepares the renderer (styles, screen state).
	Init()

	// Clear clears the output surface before a frame.
	Clear()

	// RenderFrame draws one complete frame from the session state.
	RenderFrame(s *state.Session)

	// GetInput blocks for one command and returns the mapped intent.
	GetInput() input.Intent

	// ShowMessage displays a standalone message (outside the frame).
	ShowMessage(msg string)
}
