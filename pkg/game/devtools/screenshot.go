package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"darkdelve/pkg/game/generator"
	"darkdelve/pkg/game/spawn"
)

// RenderHTML renders the final map of res as a standalone HTML page
func RenderHTML(res *generator.Result, info DumpInfo) string {
	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Map Preview</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .stages {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .start { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #aaa; }
        .treasure_chest { color: #ffff00; font-weight: bold; }
        .monster { color: #ff4444; font-weight: bold; }
        .healing_potion { color: #bb86fc; }
        .legend {
            margin-top: 20px;
            color: #888;
        }
    </style>
</head>
<body>
`)

	// Header
	page.WriteString(fmt.Sprintf(`    <div class="header">%s (seed %d)</div>`+"\n", html.EscapeString(info.Pipeline), info.Seed))
	page.WriteString(fmt.Sprintf(`    <div class="stages">%s</div>`+"\n", html.EscapeString(strings.Join(info.Stages, " → "))))

	// Map container
	page.WriteString(`    <div class="map-container">` + "\n")
	for _, row := range glyphRows(res.Grid, res.Metadata, 0) {
		page.WriteString(`        <div class="map-row">`)
		for _, g := range row {
			page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, g.class, html.EscapeString(string(g.symbol))))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString(`    </div>` + "\n")

	// Legend
	page.WriteString(`    <div class="legend">`)
	page.WriteString(`<span class="start">@</span> start, <span class="floor">.</span> floor, <span class="wall">#</span> wall`)
	for _, k := range spawn.AllKinds() {
		page.WriteString(fmt.Sprintf(`, <span class="%s">%s</span> %s`, k, html.EscapeString(string(k.Symbol())), html.EscapeString(k.DisplayName())))
	}
	page.WriteString(`</div>` + "\n")

	page.WriteString(`</body>
</html>
`)
	return page.String()
}

// SaveScreenshotHTML writes RenderHTML output to path, or to a timestamped
// file in the working directory when path is empty. It returns the file name.
func SaveScreenshotHTML(res *generator.Result, info DumpInfo, path string) (string, error) {
	if path == "" {
		timestamp := time.Now().Format("20060102-150405")
		path = fmt.Sprintf("map-%s.html", timestamp)
	}
	if err := os.WriteFile(path, []byte(RenderHTML(res, info)), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
