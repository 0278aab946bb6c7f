// Package dungeon stacks maze floors and links them with staircases.
package dungeon

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"github.com/ShomRinn/LabAdventures/pkg/engine/world"
	"github.com/ShomRinn/LabAdventures/pkg/game/generator"
)

// Dungeon is an ordered stack of maze floors plus the current-floor
// pointer. Floor 0 is the top; descending increases the index.
type Dungeon struct {
	floors  []*world.Maze
	current int
}

// New generates a dungeon: every floor is carved by gen and augmented
// with secret doors, then adjacent floors are linked by a staircase pair
// at a uniformly random shared coordinate. Invalid parameters fail fast
// with a descriptive error.
func New(floors, rows, cols int, secretDoorChance float64, gen generator.MazeGenerator, rng *rand.Rand) (*Dungeon, error) {
	if floors < 1 {
		return nil, fmt.Errorf("dungeon needs at least one floor, got %d", floors)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("floor dimensions must be at least 1x1, got %dx%d", rows, cols)
	}
	if secretDoorChance < 0 || secretDoorChance > 1 {
		return nil, fmt.Errorf("secret door chance must be within [0,1], got %v", secretDoorChance)
	}
	if gen == nil {
		gen = generator.DefaultGenerator
	}

	d := &Dungeon{
		floors: make([]*world.Maze, floors),
	}
	for i := range d.floors {
		d.floors[i] = gen.Generate(rows, cols, rng)
		generator.AddSecretDoors(d.floors[i], secretDoorChance, rng)
	}

	d.linkStaircases(rng)

	return d, nil
}

// linkStaircases places one down/up staircase pair per adjacent floor
// pair at the same coordinate on both floors. The pick ignores maze
// topology, so a staircase may sit behind undiscovered secret doors.
func (d *Dungeon) linkStaircases(rng *rand.Rand) {
	for i := 0; i < len(d.floors)-1; i++ {
		row := rng.Intn(d.floors[i].Rows())
		col := rng.Intn(d.floors[i].Cols())

		d.floors[i].GetCell(row, col).StairsDown = true
		d.floors[i+1].GetCell(row, col).StairsUp = true

		log.WithFields(log.Fields{
			"floor": i,
			"row":   row,
			"col":   col,
		}).Debug("staircase pair placed")
	}
}

// FloorCount returns the number of floors.
func (d *Dungeon) FloorCount() int {
	return len(d.floors)
}

// CurrentFloor returns the index of the floor the player is on.
func (d *Dungeon) CurrentFloor() int {
	return d.current
}

// Floor returns the maze at the given floor index, or nil if out of range.
func (d *Dungeon) Floor(i int) *world.Maze {
	if i < 0 || i >= len(d.floors) {
		return nil
	}
	return d.floors[i]
}

// Current returns the maze of the current floor.
func (d *Dungeon) Current() *world.Maze {
	return d.floors[d.current]
}

// Descend moves the current-floor pointer one floor down. Returns false
// on the bottom floor.
func (d *Dungeon) Descend() bool {
	if d.current >= len(d.floors)-1 {
		return false
	}
	d.current++
	return true
}

// Ascend moves the current-floor pointer one floor up. Returns false on
// the top floor.
func (d *Dungeon) Ascend() bool {
	if d.current <= 0 {
		return false
	}
	d.current--
	return true
}
