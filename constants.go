package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeHelp
)

type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdToggleLines
	CmdToggleText
	CmdAllOff
	CmdAllOn
	CmdToggleAlpha
	CmdToggleLetter
	CmdSaveSnapshot
	CmdSaveText
)

type DrawKind int

const (
	DrawLine DrawKind = iota
	DrawGlyph
)

const (
	defaultWidth  = 620
	defaultHeight = 620

	originInsetX  = 20.0  // flow cursor starts this far right of the left edge
	originInsetY  = 40.0  // and this far below the top edge
	glyphAdvance  = 9.0   // horizontal step per glyph
	lineHeight    = 30.0  // vertical step on wrap
	rightMargin   = 200.0 // wrap once the cursor is this close to the right edge
	rowSpacing    = 20.0  // distance between sorted rows
	headerOffset  = 40.0  // sorted row 0 sits this far below the top
	pointerInset  = 50.0  // interaction band inset on each side
	defaultScale  = 3     // alpha per occurrence
	pointerStep   = 10.0
	fontSize      = 18.0
	snapshotName  = "lettersort.png"
	visualTXTName = "lettersort.txt"
)
