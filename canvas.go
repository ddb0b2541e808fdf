package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// lineShade marks a cell that holds a connector; glyph cells store their
// alpha (0-255) and empty cells -1.
const lineShade = 256

// Canvas is a terminal cell grid that implements Surface. World
// coordinates are scaled so the whole geometry fits the grid.
type Canvas struct {
	geom       Geometry
	width      int
	height     int
	cells      [][]rune
	shades     [][]int
	background colorful.Color
	styles     map[int]lipgloss.Style
}

func NewCanvas(geom Geometry, width, height int, background string) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		bg = colorful.Color{R: 1, G: 1, B: 1}
	}

	c := &Canvas{
		geom:       geom,
		width:      width,
		height:     height,
		cells:      make([][]rune, height),
		shades:     make([][]int, height),
		background: bg,
		styles:     make(map[int]lipgloss.Style),
	}
	for i := range c.cells {
		c.cells[i] = make([]rune, width)
		c.shades[i] = make([]int, width)
		for j := range c.cells[i] {
			c.cells[i][j] = ' '
			c.shades[i][j] = -1
		}
	}
	return c
}

// cellAt maps a glyph baseline to the cell showing the glyph's middle.
func (c *Canvas) cellAt(p Point) (int, int) {
	sx, sy := c.geom.ToScreen(Point{X: p.X, Y: p.Y + fontSize/2})
	x := int(math.Floor(sx * float64(c.width) / c.geom.Width))
	y := int(math.Floor(sy * float64(c.height) / c.geom.Height))
	return x, y
}

func (c *Canvas) isValidPos(x, y int) bool {
	return y >= 0 && y < c.height && x >= 0 && x < c.width
}

// DrawLine rasterizes a connector. Connectors never overwrite glyphs.
func (c *Canvas) DrawLine(cmd DrawCommand) {
	x0, y0 := c.cellAt(cmd.From)
	x1, y1 := c.cellAt(cmd.At)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if c.isValidPos(x0, y0) && c.shades[y0][x0] < 0 {
			c.cells[y0][x0] = '·'
			c.shades[y0][x0] = lineShade
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawGlyph places a glyph; the later of two glyphs on one cell wins.
func (c *Canvas) DrawGlyph(cmd DrawCommand) {
	x, y := c.cellAt(cmd.At)
	if !c.isValidPos(x, y) {
		return
	}
	c.cells[y][x] = cmd.Char
	c.shades[y][x] = int(cmd.Color.A)
}

// Lines returns the grid without styling.
func (c *Canvas) Lines() []string {
	result := make([]string, c.height)
	for i, row := range c.cells {
		result[i] = string(row)
	}
	return result
}

// Render returns the grid with each run of equally shaded cells styled.
func (c *Canvas) Render() []string {
	result := make([]string, c.height)
	for i, row := range c.cells {
		var line strings.Builder
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.shades[i][j] == c.shades[i][start] {
				continue
			}
			run := string(row[start:j])
			if shade := c.shades[i][start]; shade >= 0 {
				run = c.style(shade).Render(run)
			}
			line.WriteString(run)
			start = j
		}
		result[i] = line.String()
	}
	return result
}

func (c *Canvas) style(shade int) lipgloss.Style {
	if s, ok := c.styles[shade]; ok {
		return s
	}
	var hex string
	if shade == lineShade {
		hex = c.blend(connectorColor, 0.5)
	} else {
		hex = c.blend(glyphColor, float64(shade)/255)
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	c.styles[shade] = s
	return s
}

// blend mixes col into the background; terminals have no alpha channel.
func (c *Canvas) blend(col color.NRGBA, alpha float64) string {
	fg := colorful.Color{
		R: float64(col.R) / 255,
		G: float64(col.G) / 255,
		B: float64(col.B) / 255,
	}
	return c.background.BlendRgb(fg, alpha).Clamped().Hex()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
