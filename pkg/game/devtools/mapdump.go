package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/spawn"
)

const mapDumpFilename = "map.txt"

// DumpInfo describes how a map was produced
type DumpInfo struct {
	Pipeline string
	Seed     uint64
	Stages   []string
}

// WriteMapDump writes a full debug dump of res: metadata, legend, map, rooms,
// regions, spawns and snapshot history. The format is line oriented with
// "key: value" pairs so it diffs cleanly.
func WriteMapDump(w io.Writer, res *generator.Result, info DumpInfo) error {
	bw := bufio.NewWriter(w)
	grid := res.Grid
	md := res.Metadata

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (layout, rooms, regions, spawns) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "pipeline: %s\n", info.Pipeline)
	fmt.Fprintf(bw, "seed: %d\n", info.Seed)
	for i, stage := range info.Stages {
		fmt.Fprintf(bw, "stage_%d: %s\n", i, stage)
	}
	fmt.Fprintf(bw, "width: %d\n", grid.Width())
	fmt.Fprintf(bw, "height: %d\n", grid.Height())
	fmt.Fprintln(bw, "coordinate_system: x,y (0-based, x=horizontal, y=vertical, origin top-left)")
	fmt.Fprintf(bw, "floor_tiles: %d\n", grid.CountFloor())
	if md.StartingPosition != nil {
		fmt.Fprintf(bw, "starting_position: %s\n", md.StartingPosition)
	} else {
		fmt.Fprintln(bw, "starting_position: none")
	}
	fmt.Fprintf(bw, "rooms: %d\n", len(md.Rooms))
	fmt.Fprintf(bw, "regions: %d\n", len(md.Regions))
	fmt.Fprintf(bw, "spawns: %d\n", len(md.Spawns))
	fmt.Fprintf(bw, "snapshots: %d\n", len(res.History))
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (tile symbols) ---")
	fmt.Fprintln(bw, "# = wall  . = floor  @ = starting position  $ = treasure chest  M = monster  ! = healing potion")
	fmt.Fprintln(bw, "")

	// --- Map ---
	fmt.Fprintln(bw, "--- Map ---")
	for _, row := range glyphRows(grid, md, 0) {
		for _, g := range row {
			bw.WriteRune(g.symbol)
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw, "")

	// --- Rooms ---
	fmt.Fprintln(bw, "--- Rooms (x1,y1)-(x2,y2), border inclusive ---")
	if md.Rooms == nil {
		fmt.Fprintln(bw, "  (not generated)")
	}
	for i, room := range md.Rooms {
		fmt.Fprintf(bw, "  index: %d rect: %s center: %s interior_tiles: %d\n", i, room, room.Center(), len(room.Interior()))
	}
	fmt.Fprintln(bw, "")

	// --- Regions ---
	fmt.Fprintln(bw, "--- Regions ---")
	if md.Regions == nil {
		fmt.Fprintln(bw, "  (not generated)")
	}
	for i, region := range md.Regions {
		seed := "?"
		if i < len(md.RegionSeeds) {
			seed = md.RegionSeeds[i].String()
		}
		fmt.Fprintf(bw, "  index: %d seed: %s tiles: %d\n", i, seed, len(region))
	}
	fmt.Fprintln(bw, "")

	// --- Spawns ---
	fmt.Fprintln(bw, "--- Spawns (row by row) ---")
	for _, e := range md.Spawns.Sorted() {
		fmt.Fprintf(bw, "  x: %d y: %d kind: %s\n", e.Pos.X, e.Pos.Y, e.Kind)
	}
	counts := md.Spawns.CountByKind()
	for _, k := range spawn.AllKinds() {
		if n := counts[k]; n > 0 {
			fmt.Fprintf(bw, "  total_%s: %d\n", k, n)
		}
	}
	fmt.Fprintln(bw, "")

	// --- History ---
	fmt.Fprintln(bw, "--- History (snapshot stage and floor count) ---")
	for i, snap := range res.History {
		fmt.Fprintf(bw, "  snapshot: %d stage: %s floor_tiles: %d spawns: %d\n", i, snap.Stage, snap.Grid.CountFloor(), len(snap.Metadata.Spawns))
	}

	return bw.Flush()
}

// DumpMapToFile writes the debug dump to path, or to map.txt in the working
// directory when path is empty. It returns the absolute path written.
func DumpMapToFile(res *generator.Result, info DumpInfo, path string) (string, error) {
	if path == "" {
		path = mapDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, res, info); err != nil {
		return "", err
	}
	return absPath, f.Close()
}
