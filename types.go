package main

import "image/color"

type Point struct {
	X, Y float64
}

// Command is one discrete input event. Letter is only used by
// CmdToggleLetter.
type Command struct {
	Kind   CommandKind
	Letter rune
}

// Glyph is a recognized character of the source text. Char keeps the
// original case for drawing, Symbol is the uppercased form.
type Glyph struct {
	Char   rune
	Symbol rune
	Row    int
}

// Occurrence is a glyph with its flow position and sorted row height.
type Occurrence struct {
	Glyph
	Flow    Point
	SortedY float64
}

// DrawCommand is handed to a Surface. For DrawLine, From and At are the
// segment endpoints; for DrawGlyph, At is the baseline origin of Char.
type DrawCommand struct {
	Kind  DrawKind
	Char  rune
	Row   int
	From  Point
	At    Point
	Color color.NRGBA
}

var (
	glyphColor     = color.NRGBA{R: 87, G: 36, B: 128, A: 255}
	connectorColor = color.NRGBA{R: 181, G: 181, B: 181, A: 255}
)

type model struct {
	session        *Session
	config         *Config
	width          int
	height         int
	pointerX       float64
	background     string
	mode           Mode
	errorMessage   string
	successMessage string
}
