package tui

import (
	"fmt"
	"strings"

	"github.com/1broseidon/zoned/internal/layout"
)

// Preview renders a zone layout as a multi-line ASCII preview, suitable
// for printing outside the interactive TUI.
func Preview(zl *layout.ZoneLayout, width, height int) string {
	return strings.Join(renderZoneCanvas(zl, width, height), "\n")
}

// renderZoneCanvas generates an ASCII art representation of a zone layout.
// Each zone is drawn as a bordered box with its number centered inside;
// the screen itself gets a double-line border.
func renderZoneCanvas(zl *layout.ZoneLayout, width, height int) []string {
	if zl == nil || width < 5 || height < 3 {
		return emptyCanvas(width, height)
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, z := range zl.Zones {
		drawZone(canvas, z, i+1, width, height)
	}

	drawBorder(canvas, width, height)

	lines := make([]string, height)
	for i, row := range canvas {
		lines[i] = string(row)
	}
	return lines
}

// overlayEdge draws one edge on top of a rendered canvas with heavy line
// runes, so the editor can show which edge is selected.
func overlayEdge(lines []string, e layout.Edge, width, height int) []string {
	if len(lines) == 0 || width < 5 || height < 3 {
		return lines
	}

	canvas := make([][]rune, len(lines))
	for i, line := range lines {
		canvas[i] = []rune(line)
	}

	if e.Type == layout.EdgeVertical {
		x := scale(e.Position, width)
		y1 := scale(e.Start, height)
		y2 := scale(e.End(), height)
		for y := y1; y <= y2 && y < height; y++ {
			canvas[y][x] = '┃'
		}
	} else {
		y := scale(e.Position, height)
		x1 := scale(e.Start, width)
		x2 := scale(e.End(), width)
		for x := x1; x <= x2 && x < width; x++ {
			canvas[y][x] = '━'
		}
	}

	out := make([]string, len(canvas))
	for i, row := range canvas {
		out[i] = string(row)
	}
	return out
}

// scale maps a normalized coordinate into the canvas interior, keeping the
// outer border cells for the screen frame.
func scale(p float64, size int) int {
	v := int(p * float64(size-1))
	if v < 0 {
		v = 0
	}
	if v > size-1 {
		v = size - 1
	}
	return v
}

func drawZone(canvas [][]rune, z layout.Zone, num, width, height int) {
	x1 := scale(z.X, width)
	y1 := scale(z.Y, height)
	x2 := scale(z.X+z.W, width)
	y2 := scale(z.Y+z.H, height)

	// Clamp inside the screen frame
	if x1 < 1 {
		x1 = 1
	}
	if y1 < 1 {
		y1 = 1
	}
	if x2 >= width-1 {
		x2 = width - 2
	}
	if y2 >= height-1 {
		y2 = height - 2
	}

	// Need at least 2x2 for a zone
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x <= x2; x++ {
		canvas[y1][x] = '─'
		canvas[y2][x] = '─'
	}
	for y := y1; y <= y2; y++ {
		canvas[y][x1] = '│'
		canvas[y][x2] = '│'
	}

	canvas[y1][x1] = '┌'
	canvas[y1][x2] = '┐'
	canvas[y2][x1] = '└'
	canvas[y2][x2] = '┘'

	// Zone number in the center
	centerY := (y1 + y2) / 2
	centerX := (x1 + x2) / 2
	if centerY > y1 && centerY < y2 && centerX > x1 && centerX < x2 {
		label := fmt.Sprintf("%d", num)
		startX := centerX - len(label)/2
		for i, r := range label {
			if startX+i > x1 && startX+i < x2 {
				canvas[centerY][startX+i] = r
			}
		}
	}
}

func drawBorder(canvas [][]rune, width, height int) {
	for x := 0; x < width; x++ {
		canvas[0][x] = '═'
		canvas[height-1][x] = '═'
	}
	for y := 0; y < height; y++ {
		canvas[y][0] = '║'
		canvas[y][width-1] = '║'
	}
	canvas[0][0] = '╔'
	canvas[0][width-1] = '╗'
	canvas[height-1][0] = '╚'
	canvas[height-1][width-1] = '╝'
}

func emptyCanvas(width, height int) []string {
	if width < 1 || height < 1 {
		return nil
	}
	lines := make([]string, height)
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	for i := range lines {
		lines[i] = string(row)
	}
	return lines
}
