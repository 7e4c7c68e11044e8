package spawn

import "darkdelve/pkg/engine/random"

// Default weights for the creature/item table
const (
	MonsterWeight       = 10
	HealingPotionWeight = 4
	TreasureChestWeight = 2
)

// DefaultTable returns the creature/item table used by room and region spawners
func DefaultTable() *random.Table[Kind] {
	return random.NewTable[Kind]().
		Add(Monster, MonsterWeight).
		Add(HealingPotion, HealingPotionWeight).
		Add(TreasureChest, TreasureChestWeight)
}

// TableFromWeights builds a table from kind weights, adding entries in kind
// declaration order so that rolls do not depend on map iteration order.
func TableFromWeights(weights map[Kind]int) *random.Table[Kind] {
	table := random.NewTable[Kind]()
	for _, k := range AllKinds() {
		if w, ok := weights[k]; ok {
			table.Add(k, w)
		}
	}
	return table
}
