package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, symbols, text string) *Session {
	t.Helper()
	alphabet, err := NewAlphabet(symbols)
	require.NoError(t, err)
	return NewSession(text, alphabet, DefaultGeometry())
}

func collect(s *Session, factor float64) (glyphs, lines []DrawCommand) {
	for cmd := range s.Frame(factor) {
		switch cmd.Kind {
		case DrawGlyph:
			glyphs = append(glyphs, cmd)
		case DrawLine:
			lines = append(lines, cmd)
		}
	}
	return glyphs, lines
}

func TestLayoutScenarioFlow(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, "AB ", "AB BA")
	glyphs, _ := collect(s, 0)
	require.Len(t, glyphs, 5)

	top := s.Geometry.Top()
	for i, g := range glyphs {
		assert.Equal(t, top-40, g.At.Y, "glyph %d stays on the first flow line", i)
		assert.Equal(t, s.Geometry.Left()+20+float64(i)*9, g.At.X)
	}
}

func TestLayoutScenarioSorted(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, "AB ", "AB BA")
	glyphs, _ := collect(s, 1)
	require.Len(t, glyphs, 5)

	top := s.Geometry.Top()
	rowY := map[rune]float64{'A': top - 40, 'B': top - 60, ' ': top - 80}
	for _, g := range glyphs {
		assert.Equal(t, rowY[g.Char], g.At.Y, "glyph %q", g.Char)
	}

	// X is never interpolated.
	flow, _ := collect(s, 0)
	for i := range glyphs {
		assert.Equal(t, flow[i].At.X, glyphs[i].At.X)
	}
}

func TestLayoutBlend(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, "AB ", "B")
	glyphs, _ := collect(s, 0.5)
	require.Len(t, glyphs, 1)
	assert.Equal(t, s.Geometry.Top()-50, glyphs[0].At.Y)

	below, _ := collect(s, -3)
	above, _ := collect(s, 7)
	flow, _ := collect(s, 0)
	sorted, _ := collect(s, 1)
	assert.Equal(t, flow[0].At, below[0].At)
	assert.Equal(t, sorted[0].At, above[0].At)
}

func TestLayoutSkipsUnrecognized(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, "AB ", "A-x\nB")
	glyphs, lines := collect(s, 0)
	require.Len(t, glyphs, 2)
	assert.Len(t, lines, 1)
	assert.Equal(t, 'B', glyphs[1].Char)
	assert.Equal(t, glyphs[0].At.X+9, glyphs[1].At.X, "unrecognized characters take no slot")
}

func TestLayoutWrapsOnlyAtSpace(t *testing.T) {
	t.Parallel()

	geom := DefaultGeometry()
	origin := geom.FlowOrigin()

	s := newTestSession(t, "AB ", strings.Repeat("A", 44)+" B")
	glyphs, _ := collect(s, 0)
	require.Len(t, glyphs, 46)
	assert.Equal(t, origin.Y, glyphs[44].At.Y, "the space itself stays on the line")
	assert.Equal(t, Point{X: origin.X, Y: origin.Y - 30}, glyphs[45].At)

	long := newTestSession(t, "AB ", strings.Repeat("A", 60)+"B")
	glyphs, _ = collect(long, 0)
	require.Len(t, glyphs, 61)
	last := glyphs[60].At
	assert.Equal(t, origin.Y, last.Y, "a run without spaces overflows the margin")
	assert.Greater(t, last.X, geom.Right()-200)
}

func TestLayoutTextOff(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, "AB ", "AB BA")
	s.Handle(Command{Kind: CmdToggleText})

	glyphs, lines := collect(s, 0)
	assert.Empty(t, glyphs)
	assert.Len(t, lines, 4, "connectors keep following the flow")
	assert.Equal(t, FrequencyTable{2, 2, 1}, s.Counts)
	assert.Equal(t, 3, s.Visibility.EnabledLetters())

	s.Handle(Command{Kind: CmdToggleText})
	glyphs, _ = collect(s, 0)
	assert.Len(t, glyphs, 5)
}

// Connectors join consecutive recognized characters even when a letter
// is switched off.
func TestLayoutConnectorsIgnoreLetterVisibility(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, "AB ", "AB BA")
	s.Handle(Command{Kind: CmdToggleLetter, Letter: 'a'})

	glyphs, lines := collect(s, 0)
	assert.Len(t, glyphs, 3)
	require.Len(t, lines, 4)

	origin := s.Geometry.FlowOrigin()
	assert.Equal(t, origin, lines[0].From)
	assert.Equal(t, Point{X: origin.X + 9, Y: origin.Y}, lines[0].At)
	for i := 1; i < len(lines); i++ {
		assert.Equal(t, lines[i-1].At, lines[i].From)
	}

	s.Handle(Command{Kind: CmdToggleLines})
	_, lines = collect(s, 0)
	assert.Empty(t, lines)
}

func TestLayoutAlpha(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, "AB ", "AB BA")
	glyphs, _ := collect(s, 0)
	assert.Equal(t, uint8(6), glyphs[0].Color.A)
	assert.Equal(t, uint8(3), glyphs[2].Color.A)
	assert.Equal(t, glyphColor.R, glyphs[0].Color.R)

	s.Handle(Command{Kind: CmdToggleAlpha})
	glyphs, _ = collect(s, 0)
	for _, g := range glyphs {
		assert.Equal(t, uint8(255), g.Color.A)
	}
}

func TestLayoutEmptyText(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, DefaultAlphabet, "")
	glyphs, lines := collect(s, 0.3)
	assert.Empty(t, glyphs)
	assert.Empty(t, lines)
}

func TestLayoutIsRestartable(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, DefaultAlphabet, "Habe nun, ach! Juristerei und Medizin")
	seq := s.Frame(0.25)

	var first, second []DrawCommand
	for cmd := range seq {
		first = append(first, cmd)
	}
	for cmd := range seq {
		second = append(second, cmd)
	}
	assert.Equal(t, first, second)

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestGeometryFactor(t *testing.T) {
	t.Parallel()

	geom := DefaultGeometry()
	tests := []struct {
		pointer float64
		want    float64
	}{
		{-100, 0},
		{0, 0},
		{50, 0},
		{310, 0.5},
		{570, 1},
		{620, 1},
		{1000, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, geom.Factor(tt.pointer), "pointer %v", tt.pointer)
	}
	assert.Equal(t, 310.0, geom.PointerFor(0.5))

	narrow := Geometry{Width: 80, Height: 80}
	assert.Zero(t, narrow.Factor(60))
}

func TestSortedY(t *testing.T) {
	t.Parallel()

	geom := DefaultGeometry()
	assert.Equal(t, geom.Top()-40, geom.SortedY(0))
	assert.Equal(t, geom.Top()-(32*20+40), geom.SortedY(32))
}
