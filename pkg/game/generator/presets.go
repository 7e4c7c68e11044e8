package generator

import (
	"fmt"
	"strings"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/game/spawn"
)

// Default map size for Generate
const (
	DefaultWidth  = 80
	DefaultHeight = 53
)

// Preset names one of the built-in pipelines
type Preset int

const (
	// PresetRooms is rectangular rooms joined by corridors
	PresetRooms Preset = iota
	// PresetCellular is cave-like terrain partitioned into Voronoi regions
	PresetCellular
	// PresetBSP is rooms placed in the leaves of a space partition
	PresetBSP
	// PresetWalker is branching corridors walked out from the centre
	PresetWalker
)

// AllPresets returns every built-in preset in declaration order
func AllPresets() []Preset {
	return []Preset{PresetRooms, PresetCellular, PresetBSP, PresetWalker}
}

func (p Preset) String() string {
	switch p {
	case PresetRooms:
		return "rooms"
	case PresetCellular:
		return "cellular"
	case PresetBSP:
		return "bsp"
	case PresetWalker:
		return "walker"
	default:
		return fmt.Sprintf("preset(%d)", int(p))
	}
}

// ParsePreset looks up a preset by name
func ParsePreset(s string) (Preset, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range AllPresets() {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// Chain assembles the pipeline for p on a width x height map
func (p Preset) Chain(width, height int) (*BuilderChain, error) {
	return p.ChainWithTable(width, height, nil)
}

// ChainWithTable is Chain with table used by every creature/item spawner.
// A nil table selects the default one.
func (p Preset) ChainWithTable(width, height int, table *random.Table[spawn.Kind]) (*BuilderChain, error) {
	chain := NewChain(width, height)
	switch p {
	case PresetRooms:
		return chain.
			StartWith(NewRoomsAndCorridors(10, 4, 12)).
			With(RoomBasedStartingPosition{Room: RoomFirst, Position: PositionCenter}).
			With(RoomBasedSpawner{MaxSpawns: 1, Table: table}).
			With(RoomBasedObjectiveSpawner{Room: RoomLast, Position: PositionRandom, Kind: spawn.ObjectiveKind}), nil
	case PresetCellular:
		return chain.
			StartWith(NewCellularAutomata(10, 0.4, DefaultNeighborsForWall)).
			With(ArbitraryStartingPoint{}).
			With(CullUnreachable{}).
			With(GeneralObjectiveSpawner{Kind: spawn.ObjectiveKind}).
			With(VoronoiRegions{Count: 10, Distance: DistanceManhattan}).
			With(RegionBasedSpawner{MaxSpawns: 3, Table: table}), nil
	case PresetBSP:
		return chain.
			StartWith(NewBSPRooms(defaultMinNodeSize)).
			With(RoomBasedStartingPosition{Room: RoomRandom, Position: PositionCenter}).
			With(CullUnreachable{}).
			With(RoomBasedSpawner{MaxSpawns: 2, Table: table}).
			With(RoomBasedObjectiveSpawner{Room: RoomLast, Position: PositionCenter, Kind: spawn.ObjectiveKind}), nil
	case PresetWalker:
		return chain.
			StartWith(NewLineWalker(0.4, 3, 8, 4)).
			With(ArbitraryStartingPoint{}).
			With(CullUnreachable{}).
			With(GeneralObjectiveSpawner{Kind: spawn.ObjectiveKind}).
			With(VoronoiRegions{Count: 6, Distance: DistanceChebyshev}).
			With(RegionBasedSpawner{MaxSpawns: 2, Table: table}), nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownPreset, p)
}

// Generate builds preset p on a DefaultWidth x DefaultHeight map from seed
func Generate(p Preset, seed uint64) (*Result, error) {
	chain, err := p.Chain(DefaultWidth, DefaultHeight)
	if err != nil {
		return nil, err
	}
	return chain.Build(random.New(seed))
}
