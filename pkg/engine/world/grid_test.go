package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_InvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {3, 0}, {0, 0}, {-1, 5}} {
		g, err := NewGrid(dims[0], dims[1])
		assert.Nil(t, g)
		assert.ErrorIs(t, err, ErrInvalidDimensions, "NewGrid(%d, %d)", dims[0], dims[1])
	}
}

func TestNewGrid_StartsAsWalls(t *testing.T) {
	g, err := NewGrid(5, 4)
	require.NoError(t, err)
	assert.Equal(t, 20, g.Len())
	assert.Equal(t, 0, g.CountFloor())
	g.ForEachTile(func(p Point, tile TileType) {
		assert.Equal(t, Wall, tile, "tile at %v", p)
	})
}

func TestXYToIndex(t *testing.T) {
	g, err := NewGrid(3, 4)
	require.NoError(t, err)

	cases := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{0, 3, 9},
		{2, 0, 2},
		{2, 3, 11},
	}
	for _, c := range cases {
		idx, err := g.XYToIndex(c.x, c.y)
		require.NoError(t, err)
		assert.Equal(t, c.want, idx, "XYToIndex(%d, %d)", c.x, c.y)
	}
}

func TestXYToIndex_OutOfBounds(t *testing.T) {
	g, err := NewGrid(3, 4)
	require.NoError(t, err)

	for _, p := range []Point{{3, 0}, {0, 4}, {13, 23}, {-1, 0}, {0, -1}} {
		_, err := g.XYToIndex(p.X, p.Y)
		assert.True(t, errors.Is(err, ErrOutsideMap), "XYToIndex(%v) err = %v", p, err)
	}
}

func TestIndexToXY(t *testing.T) {
	g, err := NewGrid(3, 4)
	require.NoError(t, err)

	cases := map[int]Point{0: {0, 0}, 2: {2, 0}, 11: {2, 3}}
	for idx, want := range cases {
		got, err := g.IndexToXY(idx)
		require.NoError(t, err)
		assert.Equal(t, want, got, "IndexToXY(%d)", idx)
	}

	for _, idx := range []int{12, 200, -1} {
		_, err := g.IndexToXY(idx)
		assert.ErrorIs(t, err, ErrOutsideMap, "IndexToXY(%d)", idx)
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {3, 4}, {80, 53}, {7, 1}, {1, 9}} {
		g, err := NewGrid(dims[0], dims[1])
		require.NoError(t, err)

		for y := 0; y < g.Height(); y++ {
			for x := 0; x < g.Width(); x++ {
				idx, err := g.XYToIndex(x, y)
				require.NoError(t, err)
				p, err := g.IndexToXY(idx)
				require.NoError(t, err)
				require.Equal(t, Pt(x, y), p)
			}
		}
		for i := 0; i < g.Len(); i++ {
			p, err := g.IndexToXY(i)
			require.NoError(t, err)
			idx, err := g.XYToIndex(p.X, p.Y)
			require.NoError(t, err)
			require.Equal(t, i, idx)
		}
	}
}

func TestSetAndAt(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)

	require.NoError(t, g.Set(Pt(1, 2), Floor))
	tile, err := g.At(Pt(1, 2))
	require.NoError(t, err)
	assert.Equal(t, Floor, tile)
	assert.True(t, g.IsFloor(Pt(1, 2)))
	assert.False(t, g.IsFloor(Pt(2, 1)))
	assert.False(t, g.IsFloor(Pt(9, 9)))

	assert.ErrorIs(t, g.Set(Pt(4, 0), Floor), ErrOutsideMap)
	_, err = g.At(Pt(0, 4))
	assert.ErrorIs(t, err, ErrOutsideMap)
}

func TestPlayablePosition(t *testing.T) {
	g, err := NewGrid(4, 3)
	require.NoError(t, err)

	assert.True(t, g.IsPlayablePosition(1, 1))
	assert.True(t, g.IsPlayablePosition(2, 1))
	assert.False(t, g.IsPlayablePosition(0, 1))
	assert.False(t, g.IsPlayablePosition(3, 1))
	assert.False(t, g.IsPlayablePosition(1, 2))
	assert.True(t, g.IsOnPerimeter(0, 0))
	assert.False(t, g.IsOnPerimeter(5, 5))
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.Set(Pt(1, 1), Floor))

	c := g.Clone()
	assert.True(t, g.Equal(c))

	require.NoError(t, c.Set(Pt(0, 0), Floor))
	assert.False(t, g.Equal(c))
	assert.Equal(t, 1, g.CountFloor())
	assert.Equal(t, 2, c.CountFloor())
}

func TestString(t *testing.T) {
	g, err := NewGrid(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(Pt(1, 0), Floor))
	assert.Equal(t, "#.#\n###\n", g.String())
}

func TestReplaceTiles_LengthMismatchPanics(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)
	assert.Panics(t, func() { g.ReplaceTiles(make([]TileType, 3)) })
}
