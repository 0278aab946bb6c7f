package generator

import (
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/ShomRinn/LabAdventures/pkg/engine/world"
)

// DefaultSecretDoorChance is the per-wall probability of a secret door.
const DefaultSecretDoorChance = 0.10

// AddSecretDoors runs a Bernoulli trial with the given chance on every
// interior wall still standing after carving and turns winners into
// secret doors (symmetric, unrevealed). Scanning only the north and west
// side of each cell considers every interior wall exactly once. Returns
// the number of doors placed.
func AddSecretDoors(m *world.Maze, chance float64, rng *rand.Rand) int {
	placed := 0

	m.ForEachCell(func(row, col int, cell *world.Cell) {
		for _, dir := range []world.Direction{world.North, world.West} {
			if m.GetCellRelative(cell, dir) == nil || !cell.HasWall(dir) {
				continue
			}
			if rng.Float64() < chance && m.PlaceSecretDoor(row, col, dir) {
				placed++
			}
		}
	})

	log.WithFields(log.Fields{
		"chance": chance,
		"placed": placed,
	}).Debug("secret doors placed")

	return placed
}
