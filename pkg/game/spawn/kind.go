// Package spawn defines the kinds of world objects a generated map asks the
// game to instantiate, and the coordinate-keyed list they are collected in.
package spawn

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
)

// Kind identifies something to spawn at a map coordinate
type Kind int

const (
	TreasureChest Kind = iota // Level goal
	Monster                   // Hostile creature
	HealingPotion             // Consumable item
)

// ObjectiveKind is what objective spawners place by default
const ObjectiveKind = TreasureChest

// AllKinds returns every kind in declaration order
func AllKinds() []Kind {
	return []Kind{TreasureChest, Monster, HealingPotion}
}

// String returns the stable identifier used in pipeline files and dumps
func (k Kind) String() string {
	switch k {
	case TreasureChest:
		return "treasure_chest"
	case Monster:
		return "monster"
	case HealingPotion:
		return "healing_potion"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsValid returns true for declared kinds
func (k Kind) IsValid() bool {
	return k >= TreasureChest && k <= HealingPotion
}

// Symbol returns the single-character map symbol for the kind
func (k Kind) Symbol() rune {
	switch k {
	case TreasureChest:
		return '$'
	case Monster:
		return 'M'
	case HealingPotion:
		return '!'
	default:
		return '?'
	}
}

// DisplayName returns the translated, human-readable name.
// Uses gotext.Get with constant keys to satisfy vet.
func (k Kind) DisplayName() string {
	switch k {
	case TreasureChest:
		return gotext.Get("SPAWN_TREASURE_CHEST")
	case Monster:
		return gotext.Get("SPAWN_MONSTER")
	case HealingPotion:
		return gotext.Get("SPAWN_HEALING_POTION")
	default:
		return k.String()
	}
}

// ParseKind parses the identifier returned by String
func ParseKind(s string) (Kind, error) {
	for _, k := range AllKinds() {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
