// Package generator carves maze floors and augments them with secret doors.
package generator

import (
	"math/rand"

	"github.com/ShomRinn/LabAdventures/pkg/engine/world"
)

// MazeGenerator is an interface for maze carving algorithms.
type MazeGenerator interface {
	Generate(rows, cols int, rng *rand.Rand) *world.Maze
	Name() string
}

// Available generators
var (
	DFS = &DFSGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator MazeGenerator = DFS
