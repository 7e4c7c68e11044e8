package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darkdelve/locales"
	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/spawn"
)

func TestMain(m *testing.M) {
	if err := locales.Use("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// sampleResult is a 5x4 map with a start, a monster and a chest in one corridor
func sampleResult(t *testing.T) *generator.Result {
	t.Helper()
	grid, err := world.NewGrid(5, 4)
	require.NoError(t, err)
	for _, p := range []world.Point{world.Pt(1, 1), world.Pt(2, 1), world.Pt(3, 1), world.Pt(1, 2)} {
		require.NoError(t, grid.Set(p, world.Floor))
	}
	start := world.Pt(1, 1)
	spawns := spawn.NewList()
	spawns.Insert(world.Pt(2, 1), spawn.Monster)
	spawns.Insert(world.Pt(3, 1), spawn.TreasureChest)

	md := generator.Metadata{
		StartingPosition: &start,
		Rooms:            []world.Rect{world.NewRect(0, 0, 4, 2)},
		Spawns:           spawns,
	}
	empty, err := world.NewGrid(5, 4)
	require.NoError(t, err)
	return &generator.Result{
		Grid:     grid,
		Metadata: md,
		History: []generator.Snapshot{
			{Stage: "init", Grid: empty, Metadata: generator.Metadata{Spawns: spawn.NewList()}},
			{Stage: "spawns", Grid: grid.Clone(), Metadata: md.Clone()},
		},
	}
}

func TestWritePreview_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePreview(&buf, sampleResult(t), PreviewOptions{}))
	assert.Equal(t, "#####\n#@M$#\n#.###\n#####\n", buf.String())
}

func TestWritePreview_Cropped(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePreview(&buf, sampleResult(t), PreviewOptions{MaxWidth: 3}))
	assert.Equal(t, "###\n#@M\n#.#\n###\n(showing 3 of 5 columns)\n", buf.String())
}

func TestWritePreview_Legend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePreview(&buf, sampleResult(t), PreviewOptions{Legend: true}))
	out := buf.String()
	assert.Contains(t, out, "Legend:")
	assert.Contains(t, out, "M Monster")
	assert.Contains(t, out, "$ Treasure chest")
	assert.Contains(t, out, "4 floor tiles, 1 rooms, 0 regions, 2 spawns")
}

func TestWritePreview_ColorMatchesPlainText(t *testing.T) {
	res := sampleResult(t)
	var plain, colored bytes.Buffer
	require.NoError(t, WritePreview(&plain, res, PreviewOptions{Legend: true}))
	require.NoError(t, WritePreview(&colored, res, PreviewOptions{Legend: true, Color: true}))
	assert.Equal(t, plain.String(), color.ClearCode(colored.String()))
}

func TestWriteHistory(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, sampleResult(t), PreviewOptions{}))
	out := buf.String()
	assert.Contains(t, out, "Snapshot 1/2: init\n#####\n#####\n")
	assert.Contains(t, out, "Snapshot 2/2: spawns\n#####\n#@M$#\n")
}

func TestWriteMapDump(t *testing.T) {
	var buf bytes.Buffer
	info := DumpInfo{Pipeline: "sample", Seed: 42, Stages: []string{"init", "spawns"}}
	require.NoError(t, WriteMapDump(&buf, sampleResult(t), info))
	out := buf.String()

	for _, want := range []string{
		"pipeline: sample\n",
		"seed: 42\n",
		"stage_1: spawns\n",
		"width: 5\n",
		"floor_tiles: 4\n",
		"starting_position: 1,1\n",
		"--- Map ---\n#####\n#@M$#\n#.###\n#####\n",
		"index: 0 rect: (0,0)-(4,2) center: 2,1 interior_tiles: 3\n",
		"  x: 2 y: 1 kind: monster\n  x: 3 y: 1 kind: treasure_chest\n",
		"total_treasure_chest: 1\n",
		"snapshot: 1 stage: spawns floor_tiles: 4 spawns: 2\n",
	} {
		assert.Contains(t, out, want)
	}
	regions := out[strings.Index(out, "--- Regions ---"):]
	assert.True(t, strings.HasPrefix(regions, "--- Regions ---\n  (not generated)\n"))
}

func TestDumpMapToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	written, err := DumpMapToFile(sampleResult(t), DumpInfo{Pipeline: "sample"}, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "=== MAP DUMP DEBUG")
}

func TestRenderHTML(t *testing.T) {
	page := RenderHTML(sampleResult(t), DumpInfo{Pipeline: "<rooms>", Seed: 7, Stages: []string{"a", "b"}})
	assert.Contains(t, page, `<span class="start">@</span><span class="monster">M</span><span class="treasure_chest">$</span>`)
	assert.Contains(t, page, "&lt;rooms&gt; (seed 7)")
	assert.Contains(t, page, "a → b")
	assert.Contains(t, page, "Healing potion")

	path := filepath.Join(t.TempDir(), "map.html")
	written, err := SaveScreenshotHTML(sampleResult(t), DumpInfo{}, path)
	require.NoError(t, err)
	assert.FileExists(t, written)
}

func TestPreviewGeneratedMap(t *testing.T) {
	res, err := generator.Generate(generator.PresetRooms, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePreview(&buf, res, PreviewOptions{}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, generator.DefaultHeight)
	for _, line := range lines {
		assert.Len(t, line, generator.DefaultWidth)
	}
	assert.Equal(t, 1, strings.Count(buf.String(), "@"))
}
