// Package validate checks that a generated map can actually be played: the
// player starts on floor, every spawn stands on floor the player can walk to,
// and no room is sealed off from the start.
package validate

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/spawn"
)

var (
	// ErrNoStart indicates the map has no starting position
	ErrNoStart = errors.New("validate: no starting position")
	// ErrStartNotFloor indicates the starting position is a wall or off the map
	ErrStartNotFloor = errors.New("validate: starting position is not floor")
	// ErrSpawnNotFloor indicates a spawn placed inside a wall
	ErrSpawnNotFloor = errors.New("validate: spawn is not on floor")
	// ErrSpawnUnreachable indicates a spawn the player cannot walk to
	ErrSpawnUnreachable = errors.New("validate: spawn is unreachable")
	// ErrRoomIsolated indicates a room with floor but no path from the start
	ErrRoomIsolated = errors.New("validate: room is unreachable")
	// ErrNoObjective indicates the objective kind is missing from the spawns
	ErrNoObjective = errors.New("validate: no objective")
)

// Options controls which checks Check performs
type Options struct {
	// RequireObjective reports a problem when no spawn holds Objective.
	// Later spawners may overwrite the objective, so this is opt-in.
	RequireObjective bool
	Objective        spawn.Kind
}

// Problem is a single failed check
type Problem struct {
	Err  error
	Pos  world.Point
	Kind spawn.Kind
	// Room is the index into Metadata.Rooms, or -1
	Room int
}

func (p Problem) Error() string {
	switch {
	case errors.Is(p.Err, ErrNoStart):
		return p.Err.Error()
	case errors.Is(p.Err, ErrNoObjective):
		return fmt.Sprintf("%v: %v", p.Err, p.Kind)
	case errors.Is(p.Err, ErrStartNotFloor):
		return fmt.Sprintf("%v: %v", p.Err, p.Pos)
	case p.Room >= 0:
		return fmt.Sprintf("%v: room %d", p.Err, p.Room)
	}
	return fmt.Sprintf("%v: %v at %v", p.Err, p.Kind, p.Pos)
}

func (p Problem) Unwrap() error {
	return p.Err
}

// Report is the outcome of Check
type Report struct {
	Floor     int
	Reachable int
	Problems  []Problem
}

// OK reports whether every check passed
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Err joins all problems into one error, or returns nil
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Problems))
	for i, p := range r.Problems {
		errs[i] = p
	}
	return errors.Join(errs...)
}

func (r *Report) add(err error, pos world.Point, kind spawn.Kind, room int) {
	r.Problems = append(r.Problems, Problem{Err: err, Pos: pos, Kind: kind, Room: room})
}

// Check inspects a finished map. Without a starting position only ErrNoStart
// is reported since nothing else can be judged.
func Check(res *generator.Result, opts Options) *Report {
	grid := res.Grid
	md := res.Metadata
	report := &Report{Floor: grid.CountFloor()}

	if md.StartingPosition == nil {
		report.add(ErrNoStart, world.Point{}, 0, -1)
		return report
	}
	start := *md.StartingPosition
	if !grid.IsFloor(start) {
		report.add(ErrStartNotFloor, start, 0, -1)
		return report
	}

	reachable := generator.ReachableFrom(grid, start)
	report.Reachable = reachable.Size()

	for _, entry := range md.Spawns.Sorted() {
		switch {
		case !grid.IsFloor(entry.Pos):
			report.add(ErrSpawnNotFloor, entry.Pos, entry.Kind, -1)
		case !reachable.Has(entry.Pos):
			report.add(ErrSpawnUnreachable, entry.Pos, entry.Kind, -1)
		}
	}

	for i, room := range md.Rooms {
		if isolated(grid, room, reachable) {
			report.add(ErrRoomIsolated, room.Center(), 0, i)
		}
	}

	if opts.RequireObjective && md.Spawns.CountByKind()[opts.Objective] == 0 {
		report.add(ErrNoObjective, world.Point{}, opts.Objective, -1)
	}
	return report
}

// isolated reports whether room has floor inside it but none of that floor
// is reachable. Rooms walled over by culling count as connected.
func isolated(grid *world.Grid, room world.Rect, reachable mapset.Set[world.Point]) bool {
	hasFloor := false
	for _, p := range room.Interior() {
		if !grid.IsFloor(p) {
			continue
		}
		if reachable.Has(p) {
			return false
		}
		hasFloor = true
	}
	return hasFloor
}
