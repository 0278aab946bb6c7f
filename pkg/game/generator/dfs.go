package generator

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/stack"

	"github.com/ShomRinn/LabAdventures/pkg/engine/world"
)

// DFSGenerator carves a maze with the randomized depth-first backtracker.
// The open-passage graph it produces is always a spanning tree over the
// whole grid: connected, cycle-free, rows*cols-1 open edges.
type DFSGenerator struct{}

// Name returns the generator identifier.
func (g *DFSGenerator) Name() string {
	return "dfs-backtracker"
}

// Generate carves a rows x cols maze starting from (0,0). All randomness
// comes from rng, so a fixed source reproduces the same maze. Never
// fails for rows, cols >= 1; a 1x1 maze keeps all four walls.
func (g *DFSGenerator) Generate(rows, cols int, rng *rand.Rand) *world.Maze {
	m := world.NewMaze(rows, cols)

	start := m.GetCell(0, 0)
	start.Visited = true

	path := stack.New[*world.Cell]()
	path.Push(start)

	for path.Size() > 0 {
		current := path.Peek()

		// Unvisited neighbors, enumerated in the fixed N,E,S,W order so a
		// given RNG sequence always carves the same maze.
		var candidates []world.Direction
		for _, dir := range world.AllDirections() {
			if next := m.GetCellRelative(current, dir); next != nil && !next.Visited {
				candidates = append(candidates, dir)
			}
		}

		if len(candidates) == 0 {
			path.Pop()
			continue
		}

		dir := candidates[rng.Intn(len(candidates))]
		m.RemoveWall(current.Row, current.Col, dir)

		next := m.GetCellRelative(current, dir)
		next.Visited = true
		path.Push(next)
	}

	log.WithFields(log.Fields{
		"generator": g.Name(),
		"rows":      rows,
		"cols":      cols,
		"openEdges": m.OpenEdgeCount(),
	}).Debug("maze carved")

	return m
}
