package generator

import (
	"fmt"
	"math/rand"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/engine/world"
)

// RoomsAndCorridors places up to MaxRooms non-overlapping rectangular rooms
// and joins each accepted room to the previous one with an L-shaped corridor.
type RoomsAndCorridors struct {
	MaxRooms int
	MinSize  int
	MaxSize  int
}

// NewRoomsAndCorridors creates a rooms-and-corridors builder
func NewRoomsAndCorridors(maxRooms, minSize, maxSize int) *RoomsAndCorridors {
	return &RoomsAndCorridors{MaxRooms: maxRooms, MinSize: minSize, MaxSize: maxSize}
}

// Name returns the name of this builder
func (b *RoomsAndCorridors) Name() string {
	return "rooms_and_corridors"
}

func (b *RoomsAndCorridors) validate(grid *world.Grid) error {
	if b.MaxRooms < 0 || b.MinSize < 1 || b.MinSize > b.MaxSize {
		return fmt.Errorf("%w: max_rooms=%d min_size=%d max_size=%d",
			ErrInvalidParameters, b.MaxRooms, b.MinSize, b.MaxSize)
	}
	// Placement draws x in [0, width-w-1); that range must not be empty.
	if grid.Width()-b.MaxSize-1 < 1 || grid.Height()-b.MaxSize-1 < 1 {
		return fmt.Errorf("%w: rooms up to %d tiles on %dx%d",
			ErrGridTooSmall, b.MaxSize, grid.Width(), grid.Height())
	}
	return nil
}

// Build places rooms and corridors, recording the accepted rooms in order
func (b *RoomsAndCorridors) Build(rng *rand.Rand, ctx *BuildContext) error {
	grid := ctx.Grid
	if err := b.validate(grid); err != nil {
		return err
	}

	rooms := make([]world.Rect, 0, b.MaxRooms)
	for i := 0; i < b.MaxRooms; i++ {
		w := random.Range(rng, b.MinSize, b.MaxSize)
		h := random.Range(rng, b.MinSize, b.MaxSize)
		x := rng.Intn(grid.Width() - w - 1)
		y := rng.Intn(grid.Height() - h - 1)
		room := world.NewRect(x, y, w, h)

		if overlapsAny(room, rooms) {
			continue
		}

		carveRoom(ctx, room)
		if len(rooms) > 0 {
			prev := rooms[len(rooms)-1]
			carveCorridor(ctx, prev.Center(), room.Center(), rng.Intn(2) == 0)
		}
		rooms = append(rooms, room)
		ctx.Metadata.Rooms = rooms
		ctx.TakeSnapshot()
	}

	ctx.Logger().Debug("rooms placed", "attempts", b.MaxRooms, "accepted", len(rooms))
	ctx.Metadata.Rooms = rooms
	return nil
}

func overlapsAny(room world.Rect, rooms []world.Rect) bool {
	for _, other := range rooms {
		if room.Intersect(other) {
			return true
		}
	}
	return false
}
