// Package devtools renders generated maps for inspection: a coloured terminal
// preview, a plain-text debug dump, snapshot history, and an HTML export.
package devtools

import (
	"github.com/gookit/color"

	"darkdelve/pkg/engine/world"
	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/spawn"
)

// Colour styles per glyph class
var (
	ColorWall     = color.Style{color.FgGray}
	ColorFloor    = color.Style{color.FgWhite}
	ColorStart    = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorMonster  = color.Style{color.FgRed, color.OpBold}
	ColorPotion   = color.Style{color.FgMagenta}
	ColorTreasure = color.Style{color.FgYellow, color.OpBold}
)

// glyph is how a single tile is drawn. class names the CSS class in HTML
// output and selects the terminal colour.
type glyph struct {
	symbol rune
	class  string
}

func (g glyph) style() color.Style {
	switch g.class {
	case "start":
		return ColorStart
	case "floor":
		return ColorFloor
	case spawn.Monster.String():
		return ColorMonster
	case spawn.HealingPotion.String():
		return ColorPotion
	case spawn.TreasureChest.String():
		return ColorTreasure
	default:
		return ColorWall
	}
}

// glyphAt picks the glyph for p: the start marker wins over spawns, which
// win over the tile itself.
func glyphAt(md generator.Metadata, p world.Point, tile world.TileType) glyph {
	if md.StartingPosition != nil && *md.StartingPosition == p {
		return glyph{'@', "start"}
	}
	if kind, ok := md.Spawns[p]; ok {
		return glyph{kind.Symbol(), kind.String()}
	}
	if tile == world.Floor {
		return glyph{'.', "floor"}
	}
	return glyph{'#', "wall"}
}

// glyphRows returns the map as rows of glyphs, cropped to maxWidth columns
// when maxWidth is positive.
func glyphRows(grid *world.Grid, md generator.Metadata, maxWidth int) [][]glyph {
	width := grid.Width()
	if maxWidth > 0 && maxWidth < width {
		width = maxWidth
	}
	rows := make([][]glyph, grid.Height())
	for y := range rows {
		rows[y] = make([]glyph, width)
	}
	grid.ForEachTile(func(p world.Point, tile world.TileType) {
		if p.X < width {
			rows[p.Y][p.X] = glyphAt(md, p, tile)
		}
	})
	return rows
}
