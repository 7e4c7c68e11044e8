package generator

import (
	"math/rand"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/spawn"
)

// maxPlacementAttempts bounds how often a slot retries an occupied tile
const maxPlacementAttempts = 20

// fillRegion scatters up to maxSpawns rolls of table over region. The number
// of slots is drawn first; each slot then picks tiles until it finds a free
// one or runs out of attempts. A slot whose table roll yields nothing is
// given up.
func fillRegion(rng *rand.Rand, region []world.Point, maxSpawns int, table *random.Table[spawn.Kind]) spawn.List {
	spawns := spawn.NewList()
	slots := rng.Intn(maxSpawns + 1)
	if len(region) == 0 {
		return spawns
	}

	for i := 0; i < slots; i++ {
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			pos := region[rng.Intn(len(region))]
			if spawns.Has(pos) {
				continue
			}
			if kind, ok := table.Roll(rng); ok {
				spawns.Insert(pos, kind)
			}
			break
		}
	}
	return spawns
}

// fillRoom runs fillRegion over the interior of room
func fillRoom(rng *rand.Rand, room world.Rect, maxSpawns int, table *random.Table[spawn.Kind]) spawn.List {
	return fillRegion(rng, room.Interior(), maxSpawns, table)
}

// tableOrDefault returns table, or the default creature/item table when nil
func tableOrDefault(table *random.Table[spawn.Kind]) *random.Table[spawn.Kind] {
	if table == nil {
		return spawn.DefaultTable()
	}
	return table
}
