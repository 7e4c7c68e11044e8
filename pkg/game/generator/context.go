package generator

import (
	"log/slog"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/spawn"
)

// Metadata is everything the pipeline discovers about a map besides its tiles.
// Nil slices mean "not produced by any stage".
type Metadata struct {
	StartingPosition *world.Point
	Rooms            []world.Rect
	Regions          [][]world.Point
	RegionSeeds      []world.Point
	Spawns           spawn.List
}

// Clone returns a deep copy, preserving nil-ness of every field
func (m Metadata) Clone() Metadata {
	out := Metadata{Spawns: m.Spawns.Clone()}
	if m.StartingPosition != nil {
		p := *m.StartingPosition
		out.StartingPosition = &p
	}
	if m.Rooms != nil {
		out.Rooms = append(make([]world.Rect, 0, len(m.Rooms)), m.Rooms...)
	}
	if m.Regions != nil {
		out.Regions = make([][]world.Point, len(m.Regions))
		for i, r := range m.Regions {
			out.Regions[i] = append(make([]world.Point, 0, len(r)), r...)
		}
	}
	if m.RegionSeeds != nil {
		out.RegionSeeds = append(make([]world.Point, 0, len(m.RegionSeeds)), m.RegionSeeds...)
	}
	return out
}

// Snapshot is a copy of the map state taken during a build
type Snapshot struct {
	Stage    string
	Grid     *world.Grid
	Metadata Metadata
}

// BuildContext is the mutable state one chain run threads through its stages
type BuildContext struct {
	Grid     *world.Grid
	Metadata Metadata

	history       []Snapshot
	recordHistory bool
	snapshots     int
	stage         string
	logger        *slog.Logger
}

func newBuildContext(grid *world.Grid, logger *slog.Logger, recordHistory bool) *BuildContext {
	return &BuildContext{
		Grid:          grid,
		Metadata:      Metadata{Spawns: spawn.NewList()},
		recordHistory: recordHistory,
		logger:        logger,
	}
}

// Logger returns the logger for the stage currently running
func (c *BuildContext) Logger() *slog.Logger {
	return c.logger.With("stage", c.stage)
}

// Stage returns the name of the stage currently running
func (c *BuildContext) Stage() string {
	return c.stage
}

// TakeSnapshot appends a copy of the current grid and metadata to the history
func (c *BuildContext) TakeSnapshot() {
	c.snapshots++
	if !c.recordHistory {
		return
	}
	c.history = append(c.history, Snapshot{
		Stage:    c.stage,
		Grid:     c.Grid.Clone(),
		Metadata: c.Metadata.Clone(),
	})
}

// History returns the snapshots taken so far
func (c *BuildContext) History() []Snapshot {
	return c.history
}

func (c *BuildContext) requireRooms() ([]world.Rect, error) {
	if len(c.Metadata.Rooms) == 0 {
		return nil, ErrNoRooms
	}
	return c.Metadata.Rooms, nil
}

func (c *BuildContext) requireStart() (world.Point, error) {
	if c.Metadata.StartingPosition == nil {
		return world.Point{}, ErrNoStartingPosition
	}
	return *c.Metadata.StartingPosition, nil
}

func (c *BuildContext) requireRegions() ([][]world.Point, error) {
	if c.Metadata.Regions == nil {
		return nil, ErrNoRegions
	}
	return c.Metadata.Regions, nil
}
