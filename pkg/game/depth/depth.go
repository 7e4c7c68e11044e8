// Package depth plans a descent through a fixed number of dungeon levels.
// Each level has a theme that picks its map preset, a seed derived from the
// run seed, and a spawn table that grows more hostile the deeper it is.
package depth

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/spawn"
)

// TotalLevels is the fixed number of levels in a run
const TotalLevels = 10

// FinalLevel is the deepest level (1-based)
const FinalLevel = TotalLevels

// ErrInvalidLevel indicates a level outside 1..TotalLevels
var ErrInvalidLevel = errors.New("depth: level out of range")

// Theme is the character of a level
type Theme int

const (
	UpperHalls    Theme = iota // Carved rooms joined by corridors
	FloodedCaves               // Natural caverns
	SunkenVaults               // Partitioned chambers
	CollapsedMine              // Winding tunnels
)

// themeCount is the number of themes (for cycling)
const themeCount = 4

// ThemeFor returns the theme for the given level (1-based). Themes cycle.
func ThemeFor(level int) Theme {
	if level <= 0 {
		return UpperHalls
	}
	return Theme((level - 1) % themeCount)
}

// Preset returns the map preset that builds levels of this theme
func (t Theme) Preset() generator.Preset {
	switch t {
	case FloodedCaves:
		return generator.PresetCellular
	case SunkenVaults:
		return generator.PresetBSP
	case CollapsedMine:
		return generator.PresetWalker
	default:
		return generator.PresetRooms
	}
}

// DisplayName returns the translated theme name
func (t Theme) DisplayName() string {
	switch t {
	case FloodedCaves:
		return gotext.Get("THEME_FLOODED_CAVES")
	case SunkenVaults:
		return gotext.Get("THEME_SUNKEN_VAULTS")
	case CollapsedMine:
		return gotext.Get("THEME_COLLAPSED_MINE")
	default:
		return gotext.Get("THEME_UPPER_HALLS")
	}
}

// IsFinal returns true if level is the deepest level
func IsFinal(level int) bool {
	return level >= FinalLevel
}

// Next returns the level below current, or 0 if current is final or invalid
func Next(current int) int {
	if current <= 0 || current >= FinalLevel {
		return 0
	}
	return current + 1
}

// Seed derives the seed for level from the run seed. Every level gets a
// distinct, reproducible stream.
func Seed(runSeed uint64, level int) uint64 {
	// splitmix64 finaliser
	z := runSeed + uint64(level)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Weights holds per-level spawn weights
type Weights struct {
	Monster       int
	HealingPotion int
	TreasureChest int
}

// WeightsFor returns spawn weights for level. Monsters grow by two per
// level, potions thin out to a floor of one and treasure stays constant.
func WeightsFor(level int) Weights {
	if level < 1 {
		level = 1
	}
	depth := level - 1
	return Weights{
		Monster:       spawn.MonsterWeight + 2*depth,
		HealingPotion: max(1, spawn.HealingPotionWeight-depth/2),
		TreasureChest: spawn.TreasureChestWeight,
	}
}

// Table builds the spawn table for these weights
func (w Weights) Table() *random.Table[spawn.Kind] {
	return spawn.TableFromWeights(map[spawn.Kind]int{
		spawn.Monster:       w.Monster,
		spawn.HealingPotion: w.HealingPotion,
		spawn.TreasureChest: w.TreasureChest,
	})
}

// Level is one planned level
type Level struct {
	Number int
	Theme  Theme
	Seed   uint64
	Final  bool
}

// Plan returns the plan for level within the run seeded by runSeed
func Plan(runSeed uint64, level int) (Level, error) {
	if level < 1 || level > TotalLevels {
		return Level{}, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidLevel, level, TotalLevels)
	}
	return Level{
		Number: level,
		Theme:  ThemeFor(level),
		Seed:   Seed(runSeed, level),
		Final:  IsFinal(level),
	}, nil
}

// Title returns the translated heading for the level, e.g. "Level 3: Sunken vaults"
func (l Level) Title() string {
	return fmt.Sprintf(gotext.Get("LEVEL_TITLE"), l.Number, l.Theme.DisplayName())
}

// Chain assembles the builder chain for the level on a width x height map
func (l Level) Chain(width, height int) (*generator.BuilderChain, error) {
	return l.Theme.Preset().ChainWithTable(width, height, WeightsFor(l.Number).Table())
}

// Generate builds the level at the default map size
func (l Level) Generate() (*generator.Result, error) {
	chain, err := l.Chain(generator.DefaultWidth, generator.DefaultHeight)
	if err != nil {
		return nil, err
	}
	return chain.Build(random.New(l.Seed))
}
