package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/spawn"
)

func TestParsePreset(t *testing.T) {
	for _, p := range AllPresets() {
		got, err := ParsePreset(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := ParsePreset(" Cellular ")
	require.NoError(t, err)
	assert.Equal(t, PresetCellular, got)

	_, err = ParsePreset("maze")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	_, err = Preset(99).Chain(10, 10)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestGenerate_AllPresetsProducePlayableMaps(t *testing.T) {
	for _, p := range AllPresets() {
		t.Run(p.String(), func(t *testing.T) {
			for seed := uint64(0); seed < 5; seed++ {
				res, err := Generate(p, seed)
				require.NoError(t, err, "seed %d", seed)

				assert.Equal(t, DefaultWidth, res.Grid.Width())
				assert.Equal(t, DefaultHeight, res.Grid.Height())

				require.NotNil(t, res.Metadata.StartingPosition, "seed %d", seed)
				start := *res.Metadata.StartingPosition
				assert.True(t, res.Grid.IsFloor(start), "seed %d: start %v", seed, start)

				reachable := ReachableFrom(res.Grid, start)
				assert.Equal(t, res.Grid.CountFloor(), reachable.Size(), "seed %d: every floor tile reachable", seed)

				for pos, kind := range res.Metadata.Spawns {
					assert.True(t, kind.IsValid(), "seed %d: %v", seed, kind)
					assert.True(t, res.Grid.IsFloor(pos), "seed %d: %v at %v is not on floor", seed, kind, pos)
				}
			}
		})
	}
}

func TestGenerate_RoomPresetsPlaceObjectiveLast(t *testing.T) {
	for _, p := range []Preset{PresetRooms, PresetBSP} {
		res, err := Generate(p, 17)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Metadata.Spawns.CountByKind()[spawn.ObjectiveKind], 1, p.String())

		last := res.Metadata.Rooms[len(res.Metadata.Rooms)-1]
		found := false
		for pos, kind := range res.Metadata.Spawns {
			if kind == spawn.ObjectiveKind && last.Contains(pos) {
				found = true
			}
		}
		assert.True(t, found, "%s: objective in last room %v", p, last)
	}
}

func TestGenerate_RoomsPresetStartsInFirstRoom(t *testing.T) {
	res, err := Generate(PresetRooms, 5)
	require.NoError(t, err)
	assert.Equal(t, res.Metadata.Rooms[0].Center(), *res.Metadata.StartingPosition)
	assert.Nil(t, res.Metadata.Regions)
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, p := range AllPresets() {
		a, err := Generate(p, 1234)
		require.NoError(t, err)
		b, err := Generate(p, 1234)
		require.NoError(t, err)

		assert.True(t, a.Grid.Equal(b.Grid), p.String())
		assert.Equal(t, a.Metadata, b.Metadata, p.String())
		require.Len(t, b.History, len(a.History), p.String())
		for i := range a.History {
			assert.Equal(t, a.History[i].Stage, b.History[i].Stage)
			assert.True(t, a.History[i].Grid.Equal(b.History[i].Grid), "%s snapshot %d", p, i)
		}
	}
}

func TestGenerate_EveryStageLeavesASnapshot(t *testing.T) {
	for _, p := range AllPresets() {
		chain, err := p.Chain(DefaultWidth, DefaultHeight)
		require.NoError(t, err)
		res, err := Generate(p, 99)
		require.NoError(t, err)

		counts := make(map[string]int)
		for _, s := range res.History {
			counts[s.Stage]++
		}
		for _, name := range chain.Stages() {
			assert.GreaterOrEqual(t, counts[name], 1, "%s: stage %s", p, name)
		}
	}
}

func TestGenerate_CellularPreset(t *testing.T) {
	res, err := Generate(PresetCellular, 3)
	require.NoError(t, err)

	assert.Nil(t, res.Metadata.Rooms)
	require.Len(t, res.Metadata.Regions, 10)
	require.Len(t, res.Metadata.RegionSeeds, 10)

	total := 0
	for _, region := range res.Metadata.Regions {
		total += len(region)
	}
	assert.Equal(t, res.Grid.CountFloor(), total, "regions partition the floor")

	perStage := make(map[string]int)
	for _, s := range res.History {
		perStage[s.Stage]++
	}
	assert.Equal(t, 11, perStage["cellular_automata"])
	assert.Equal(t, 10, perStage["region_based_spawner"])

	for pos := range res.Metadata.Spawns {
		assert.False(t, res.Grid.IsOnPerimeter(pos.X, pos.Y), "%v", pos)
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	a, err := Generate(PresetCellular, 1)
	require.NoError(t, err)
	b, err := Generate(PresetCellular, 2)
	require.NoError(t, err)
	assert.False(t, a.Grid.Equal(b.Grid))
}

func TestPresetChain_CustomSize(t *testing.T) {
	chain, err := PresetRooms.Chain(40, 30)
	require.NoError(t, err)
	assert.Equal(t, 40, chain.Width())

	res, err := chain.Build(newRand(8))
	require.NoError(t, err)
	assert.Equal(t, 40, res.Grid.Width())
	assert.Equal(t, 30, res.Grid.Height())
	assert.Equal(t, world.Floor, mustAt(t, res.Grid, *res.Metadata.StartingPosition))
}
