package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/leonelquinteros/gotext"

	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/spawn"
)

// PreviewOptions controls WritePreview
type PreviewOptions struct {
	// Color enables ANSI colours
	Color bool
	// MaxWidth crops the map to this many columns; zero shows everything
	MaxWidth int
	// Legend appends the symbol legend and a summary line
	Legend bool
}

// WritePreview draws the final map of res to w
func WritePreview(w io.Writer, res *generator.Result, opts PreviewOptions) error {
	var sb strings.Builder
	writeGlyphs(&sb, res, res.Grid.Width(), opts)

	if opts.Legend {
		sb.WriteString("\n")
		writeLegend(&sb, opts.Color)
		md := res.Metadata
		sb.WriteString(fmt.Sprintf(gotext.Get("PREVIEW_SUMMARY"),
			res.Grid.CountFloor(), len(md.Rooms), len(md.Regions), len(md.Spawns)))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeGlyphs(sb *strings.Builder, res *generator.Result, fullWidth int, opts PreviewOptions) {
	rows := glyphRows(res.Grid, res.Metadata, opts.MaxWidth)
	for _, row := range rows {
		for _, g := range row {
			if opts.Color {
				sb.WriteString(g.style().Sprint(string(g.symbol)))
			} else {
				sb.WriteRune(g.symbol)
			}
		}
		sb.WriteString("\n")
	}
	if len(rows) > 0 && len(rows[0]) < fullWidth {
		sb.WriteString(fmt.Sprintf(gotext.Get("PREVIEW_CROPPED"), len(rows[0]), fullWidth))
		sb.WriteString("\n")
	}
}

type legendEntry struct {
	g     glyph
	label string
}

func writeLegend(sb *strings.Builder, colored bool) {
	entries := []legendEntry{
		{glyph{'@', "start"}, gotext.Get("LEGEND_START")},
		{glyph{'.', "floor"}, gotext.Get("LEGEND_FLOOR")},
		{glyph{'#', "wall"}, gotext.Get("LEGEND_WALL")},
	}
	for _, k := range spawn.AllKinds() {
		entries = append(entries, legendEntry{glyph{k.Symbol(), k.String()}, k.DisplayName()})
	}

	sb.WriteString(gotext.Get("LEGEND_TITLE"))
	sb.WriteString(":")
	for _, e := range entries {
		symbol := string(e.g.symbol)
		if colored {
			symbol = e.g.style().Sprint(symbol)
		}
		sb.WriteString("  " + symbol + " " + e.label)
	}
	sb.WriteString("\n")
}

// WriteHistory draws every snapshot in res.History, oldest first
func WriteHistory(w io.Writer, res *generator.Result, opts PreviewOptions) error {
	var sb strings.Builder
	for i, snap := range res.History {
		sb.WriteString(fmt.Sprintf(gotext.Get("HISTORY_FRAME"), i+1, len(res.History), snap.Stage))
		sb.WriteString("\n")
		frame := &generator.Result{Grid: snap.Grid, Metadata: snap.Metadata}
		writeGlyphs(&sb, frame, snap.Grid.Width(), opts)
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
