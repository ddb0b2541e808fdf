package main

import "iter"

// Geometry describes the drawing surface in world coordinates: y grows
// upwards and the origin is the centre of the surface.
type Geometry struct {
	Width      float64
	Height     float64
	AlphaScale int
}

func DefaultGeometry() Geometry {
	return Geometry{Width: defaultWidth, Height: defaultHeight, AlphaScale: defaultScale}
}

func (g Geometry) Left() float64   { return -g.Width / 2 }
func (g Geometry) Right() float64  { return g.Width / 2 }
func (g Geometry) Top() float64    { return g.Height / 2 }
func (g Geometry) Bottom() float64 { return -g.Height / 2 }

// ToScreen converts a world point into surface pixels with y growing
// downwards.
func (g Geometry) ToScreen(p Point) (float64, float64) {
	return p.X - g.Left(), g.Top() - p.Y
}

// Factor maps a pointer x (surface pixels, 0 at the left edge) to [0,1]
// across the inset band. Positions outside the band are clamped.
func (g Geometry) Factor(pointerX float64) float64 {
	band := g.Width - 2*pointerInset
	if band <= 0 {
		return 0
	}
	return clamp01((pointerX - pointerInset) / band)
}

// PointerFor is the inverse of Factor.
func (g Geometry) PointerFor(factor float64) float64 {
	return pointerInset + clamp01(factor)*(g.Width-2*pointerInset)
}

// FlowOrigin is where the first glyph of the text is placed.
func (g Geometry) FlowOrigin() Point {
	return Point{X: g.Left() + originInsetX, Y: g.Top() - originInsetY}
}

// SortedY is the height of an alphabet row in the sorted view.
func (g Geometry) SortedY(row int) float64 {
	return g.Top() - (float64(row)*rowSpacing + headerOffset)
}

// Occurrences walks the flow cursor over glyphs. The cursor wraps only on
// a space at or past the right margin, so long words overflow it.
func (g Geometry) Occurrences(glyphs []Glyph) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		origin := g.FlowOrigin()
		cursor := origin
		wrapAt := g.Right() - rightMargin
		for _, gl := range glyphs {
			if !yield(Occurrence{Glyph: gl, Flow: cursor, SortedY: g.SortedY(gl.Row)}) {
				return
			}
			cursor.X += glyphAdvance
			if cursor.X >= wrapAt && gl.Symbol == ' ' {
				cursor.X = origin.X
				cursor.Y -= lineHeight
			}
		}
	}
}

// Blend interpolates only the vertical coordinate.
func Blend(flow Point, sortedY, factor float64) Point {
	t := clamp01(factor)
	return Point{X: flow.X, Y: flow.Y + (sortedY-flow.Y)*t}
}

// Layout produces the draw commands of one frame. Connectors join every
// pair of consecutive recognized characters, hidden or not; glyphs are
// emitted only when text and their letter are switched on.
func Layout(g Geometry, glyphs []Glyph, counts FrequencyTable, vis *Visibility, factor float64) iter.Seq[DrawCommand] {
	return func(yield func(DrawCommand) bool) {
		var prev Point
		first := true
		for occ := range g.Occurrences(glyphs) {
			pos := Blend(occ.Flow, occ.SortedY, factor)

			if vis.Lines && !first {
				cmd := DrawCommand{Kind: DrawLine, Char: occ.Char, Row: occ.Row, From: prev, At: pos, Color: connectorColor}
				if !yield(cmd) {
					return
				}
			}
			prev = pos
			first = false

			if !vis.Text || !vis.Letter(occ.Row) {
				continue
			}
			col := glyphColor
			if vis.Alpha {
				col.A = counts.Alpha(occ.Row, g.AlphaScale)
			}
			if !yield(DrawCommand{Kind: DrawGlyph, Char: occ.Char, Row: occ.Row, At: pos, Color: col}) {
				return
			}
		}
	}
}

// ResolveText keeps the recognized characters of text in order.
func ResolveText(text string, alphabet *Alphabet) []Glyph {
	var glyphs []Glyph
	for _, c := range text {
		row, ok := alphabet.Lookup(c)
		if !ok {
			continue
		}
		glyphs = append(glyphs, Glyph{Char: c, Symbol: alphabet.Symbol(row), Row: row})
	}
	return glyphs
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
