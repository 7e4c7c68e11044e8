package generator

import (
	"fmt"
	"math/rand"
	"strings"

	"darkdelve/pkg/engine/random"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/spawn"
)

// RoomSelection picks one room out of Metadata.Rooms
type RoomSelection int

const (
	RoomFirst RoomSelection = iota
	RoomLast
	RoomRandom
)

func (m RoomSelection) String() string {
	switch m {
	case RoomFirst:
		return "first"
	case RoomLast:
		return "last"
	case RoomRandom:
		return "random"
	default:
		return fmt.Sprintf("room_selection(%d)", int(m))
	}
}

// ParseRoomSelection parses "first", "last" or "random"
func ParseRoomSelection(s string) (RoomSelection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first":
		return RoomFirst, nil
	case "last":
		return RoomLast, nil
	case "random":
		return RoomRandom, nil
	}
	return 0, fmt.Errorf("%w: room selection %q", ErrInvalidParameters, s)
}

// PositionSelection picks one tile inside a room
type PositionSelection int

const (
	PositionCenter PositionSelection = iota
	PositionRandom
)

func (m PositionSelection) String() string {
	switch m {
	case PositionCenter:
		return "center"
	case PositionRandom:
		return "random"
	default:
		return fmt.Sprintf("position_selection(%d)", int(m))
	}
}

// ParsePositionSelection parses "center" or "random"
func ParsePositionSelection(s string) (PositionSelection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre":
		return PositionCenter, nil
	case "random":
		return PositionRandom, nil
	}
	return 0, fmt.Errorf("%w: position selection %q", ErrInvalidParameters, s)
}

func selectRoom(mode RoomSelection, rooms []world.Rect, rng *rand.Rand) world.Rect {
	switch mode {
	case RoomLast:
		return rooms[len(rooms)-1]
	case RoomRandom:
		return rooms[rng.Intn(len(rooms))]
	default:
		return rooms[0]
	}
}

// selectPosition returns the room centre, or a uniform interior tile. A room
// without interior falls back to its centre.
func selectPosition(mode PositionSelection, room world.Rect, rng *rand.Rand) world.Point {
	if mode != PositionRandom || !room.HasInterior() {
		return room.Center()
	}
	x := random.Range(rng, room.X1+1, room.X2-1)
	y := random.Range(rng, room.Y1+1, room.Y2-1)
	return world.Pt(x, y)
}

// RoomBasedStartingPosition starts the player in a selected room
type RoomBasedStartingPosition struct {
	Room     RoomSelection
	Position PositionSelection
}

// Name returns the name of this modifier
func (RoomBasedStartingPosition) Name() string {
	return "room_based_starting_position"
}

// Modify sets Metadata.StartingPosition
func (s RoomBasedStartingPosition) Modify(rng *rand.Rand, ctx *BuildContext) error {
	rooms, err := ctx.requireRooms()
	if err != nil {
		return err
	}
	room := selectRoom(s.Room, rooms, rng)
	start := selectPosition(s.Position, room, rng)
	ctx.Metadata.StartingPosition = &start
	ctx.Logger().Debug("starting position chosen", "room", room, "pos", start)
	return nil
}

// RoomBasedSpawner populates the interior of every room with up to MaxSpawns
// entries rolled from Table, or from the default table when Table is nil.
type RoomBasedSpawner struct {
	MaxSpawns int
	Table     *random.Table[spawn.Kind]
}

// Name returns the name of this modifier
func (RoomBasedSpawner) Name() string {
	return "room_based_spawner"
}

// Modify fills every room and merges the result in one step
func (s RoomBasedSpawner) Modify(rng *rand.Rand, ctx *BuildContext) error {
	rooms, err := ctx.requireRooms()
	if err != nil {
		return err
	}
	if s.MaxSpawns < 0 {
		return fmt.Errorf("%w: max_spawns=%d", ErrInvalidParameters, s.MaxSpawns)
	}
	table := tableOrDefault(s.Table)

	spawns := spawn.NewList()
	for _, room := range rooms {
		spawns.Extend(fillRoom(rng, room, s.MaxSpawns, table))
	}
	ctx.Metadata.Spawns.Extend(spawns)
	ctx.Logger().Debug("rooms populated", "rooms", len(rooms), "spawns", len(spawns))
	return nil
}

// RoomBasedObjectiveSpawner places the objective in a selected room. The
// tile may already hold a spawn, which is then replaced.
type RoomBasedObjectiveSpawner struct {
	Room     RoomSelection
	Position PositionSelection
	Kind     spawn.Kind
}

// Name returns the name of this modifier
func (RoomBasedObjectiveSpawner) Name() string {
	return "room_based_objective_spawner"
}

// Modify inserts the objective into the spawn list
func (s RoomBasedObjectiveSpawner) Modify(rng *rand.Rand, ctx *BuildContext) error {
	rooms, err := ctx.requireRooms()
	if err != nil {
		return err
	}
	if !s.Kind.IsValid() {
		return fmt.Errorf("%w: %v", spawn.ErrUnknownKind, s.Kind)
	}
	room := selectRoom(s.Room, rooms, rng)
	pos := selectPosition(s.Position, room, rng)
	ctx.Metadata.Spawns.Insert(pos, s.Kind)
	return nil
}
