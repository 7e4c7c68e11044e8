package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/engine/world"
)

func assertBorderIsWall(t *testing.T, grid *world.Grid) {
	t.Helper()
	grid.ForEachTile(func(p world.Point, tile world.TileType) {
		if grid.IsOnPerimeter(p.X, p.Y) {
			assert.Equal(t, world.Wall, tile, "border tile %v", p)
		}
	})
}

func TestRoomsAndCorridors_RoomsDoNotOverlap(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		res, err := NewChain(80, 53).StartWith(NewRoomsAndCorridors(10, 4, 12)).Build(random.New(seed))
		require.NoError(t, err)

		rooms := res.Metadata.Rooms
		require.NotEmpty(t, rooms, "seed %d", seed)
		assert.LessOrEqual(t, len(rooms), 10)
		for i := range rooms {
			for j := i + 1; j < len(rooms); j++ {
				assert.False(t, rooms[i].Intersect(rooms[j]), "seed %d: %v overlaps %v", seed, rooms[i], rooms[j])
			}
			for _, p := range rooms[i].Interior() {
				assert.True(t, res.Grid.IsFloor(p), "seed %d: interior %v of %v", seed, p, rooms[i])
			}
		}
		assertBorderIsWall(t, res.Grid)
		assert.Len(t, res.History, len(rooms), "one snapshot per accepted room")
	}
}

func TestRoomsAndCorridors_ConnectedThroughCorridors(t *testing.T) {
	res, err := NewChain(80, 53).StartWith(NewRoomsAndCorridors(10, 4, 12)).Build(random.New(42))
	require.NoError(t, err)

	reachable := ReachableFrom(res.Grid, res.Metadata.Rooms[0].Center())
	assert.Equal(t, res.Grid.CountFloor(), reachable.Size())
	for _, room := range res.Metadata.Rooms {
		assert.True(t, reachable.Has(room.Center()), "room %v", room)
	}
}

func TestRoomsAndCorridors_InvalidParameters(t *testing.T) {
	cases := []struct {
		name    string
		builder *RoomsAndCorridors
		w, h    int
		want    error
	}{
		{"zero min size", NewRoomsAndCorridors(5, 0, 4), 40, 40, ErrInvalidParameters},
		{"min above max", NewRoomsAndCorridors(5, 6, 4), 40, 40, ErrInvalidParameters},
		{"negative rooms", NewRoomsAndCorridors(-1, 2, 4), 40, 40, ErrInvalidParameters},
		{"too narrow", NewRoomsAndCorridors(5, 4, 12), 13, 40, ErrGridTooSmall},
		{"too short", NewRoomsAndCorridors(5, 4, 12), 40, 13, ErrGridTooSmall},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewChain(c.w, c.h).StartWith(c.builder).Build(random.New(1))
			assert.ErrorIs(t, err, c.want)
		})
	}

	_, err := NewChain(14, 14).StartWith(NewRoomsAndCorridors(5, 4, 12)).Build(random.New(1))
	assert.NoError(t, err, "the smallest grid that fits max_size")
}

func TestRoomsAndCorridors_ZeroRooms(t *testing.T) {
	res, err := NewChain(20, 20).StartWith(NewRoomsAndCorridors(0, 4, 6)).Build(random.New(1))
	require.NoError(t, err)
	assert.Empty(t, res.Metadata.Rooms)
	assert.Equal(t, 0, res.Grid.CountFloor())
	assert.Len(t, res.History, 1)
}

func TestCarveCorridor(t *testing.T) {
	ctx := newTestContext(t, 6, 5)
	carveCorridor(ctx, world.Pt(1, 1), world.Pt(4, 3), true)
	assert.Equal(t, "######\n#....#\n####.#\n####.#\n######\n", ctx.Grid.String())

	ctx = newTestContext(t, 6, 5)
	carveCorridor(ctx, world.Pt(4, 3), world.Pt(1, 1), false)
	assert.Equal(t, "######\n#....#\n####.#\n####.#\n######\n", ctx.Grid.String())

	ctx = newTestContext(t, 6, 5)
	carveCorridor(ctx, world.Pt(1, 1), world.Pt(4, 3), false)
	assert.Equal(t, "######\n#.####\n#.####\n#....#\n######\n", ctx.Grid.String())
}

func TestCellularAutomata_Extremes(t *testing.T) {
	res, err := NewChain(10, 8).StartWith(NewCellularAutomata(0, 1, DefaultNeighborsForWall)).Build(random.New(1))
	require.NoError(t, err)
	assert.Equal(t, 8*6, res.Grid.CountFloor())
	assertBorderIsWall(t, res.Grid)
	assert.Len(t, res.History, 1)

	res, err = NewChain(10, 8).StartWith(NewCellularAutomata(1, 0, DefaultNeighborsForWall)).Build(random.New(1))
	require.NoError(t, err)
	assert.Equal(t, 0, res.Grid.CountFloor())
	assert.Len(t, res.History, 2)
}

func TestCellularAutomata_UsesPreviousGeneration(t *testing.T) {
	// Interior starts fully open. The centre sees 0 walls and corners see 5,
	// so both close; edge midpoints see 3 and stay open.
	res, err := NewChain(5, 5).StartWith(NewCellularAutomata(1, 1, []int{0, 5, 6, 7, 8})).Build(random.New(1))
	require.NoError(t, err)
	assert.Equal(t, "#####\n##.##\n#.#.#\n##.##\n#####\n", res.Grid.String())
}

func TestCellularAutomata_Deterministic(t *testing.T) {
	build := func(seed uint64) *Result {
		res, err := NewChain(80, 53).StartWith(NewCellularAutomata(10, 0.4, DefaultNeighborsForWall)).Build(random.New(seed))
		require.NoError(t, err)
		return res
	}
	a, b := build(7), build(7)
	assert.True(t, a.Grid.Equal(b.Grid))
	assert.Len(t, a.History, 11)
	assertBorderIsWall(t, a.Grid)

	assert.False(t, a.Grid.Equal(build(8).Grid))
}

func TestCellularAutomata_InvalidParameters(t *testing.T) {
	cases := []struct {
		name    string
		builder *CellularAutomata
		w, h    int
		want    error
	}{
		{"likelihood above one", NewCellularAutomata(1, 1.5, nil), 10, 10, ErrInvalidParameters},
		{"negative likelihood", NewCellularAutomata(1, -0.1, nil), 10, 10, ErrInvalidParameters},
		{"negative iterations", NewCellularAutomata(-1, 0.5, nil), 10, 10, ErrInvalidParameters},
		{"neighbour count out of range", NewCellularAutomata(1, 0.5, []int{9}), 10, 10, ErrInvalidParameters},
		{"no interior", NewCellularAutomata(1, 0.5, nil), 2, 10, ErrGridTooSmall},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewChain(c.w, c.h).StartWith(c.builder).Build(random.New(1))
			assert.ErrorIs(t, err, c.want)
		})
	}
}

func TestLineWalker(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		res, err := NewChain(40, 30).StartWith(NewLineWalker(0.4, 3, 8, 4)).Build(random.New(seed))
		require.NoError(t, err)

		center := world.Pt(20, 15)
		assert.True(t, res.Grid.IsFloor(center), "seed %d", seed)
		assertBorderIsWall(t, res.Grid)
		assert.Nil(t, res.Metadata.Rooms)
		assert.Equal(t, res.Grid.CountFloor(), ReachableFrom(res.Grid, center).Size(), "walks branch off carved floor")
	}
}

func TestLineWalker_InvalidParameters(t *testing.T) {
	for _, b := range []*LineWalker{
		NewLineWalker(0.4, 0, 3, 0),
		NewLineWalker(0.4, 5, 3, 0),
		NewLineWalker(0.4, 1, 3, -1),
		NewLineWalker(-1, 1, 3, 0),
	} {
		_, err := NewChain(20, 20).StartWith(b).Build(random.New(1))
		assert.ErrorIs(t, err, ErrInvalidParameters, "%+v", *b)
	}
	_, err := NewChain(2, 2).StartWith(NewLineWalker(0.4, 1, 3, 0)).Build(random.New(1))
	assert.ErrorIs(t, err, ErrGridTooSmall)
}
