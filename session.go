package main

import (
	"errors"
	"fmt"
	"iter"
	"os"
)

var ErrNoSourceText = errors.New("no source text")

// Surface receives the draw commands of one frame.
type Surface interface {
	DrawLine(cmd DrawCommand)
	DrawGlyph(cmd DrawCommand)
}

// Session owns everything derived from the source text plus the toggle
// state. Text, alphabet, glyphs and counts are read-only after creation.
type Session struct {
	Text       string
	Alphabet   *Alphabet
	Glyphs     []Glyph
	Counts     FrequencyTable
	Visibility *Visibility
	Geometry   Geometry
}

func NewSession(text string, alphabet *Alphabet, geom Geometry) *Session {
	return &Session{
		Text:       text,
		Alphabet:   alphabet,
		Glyphs:     ResolveText(text, alphabet),
		Counts:     CountCharacters(text, alphabet),
		Visibility: NewVisibility(alphabet),
		Geometry:   geom,
	}
}

// LoadSession reads the source text named by config and builds a session.
// Any failure here is fatal for the program.
func LoadSession(config *Config) (*Session, error) {
	alphabet, err := NewAlphabet(config.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("alphabet: %w", err)
	}

	var text string
	if config.FromClipboard {
		raw, err := readClipboardText()
		if err != nil {
			return nil, fmt.Errorf("read clipboard: %w", err)
		}
		text = normalizeSourceText(raw)
		if text == "" {
			return nil, fmt.Errorf("clipboard: %w", ErrNoSourceText)
		}
	} else {
		data, err := os.ReadFile(config.TextPath)
		if err != nil {
			return nil, fmt.Errorf("read text: %w", err)
		}
		text = string(data)
	}

	s := NewSession(text, alphabet, config.Geometry())
	s.Visibility.Alpha = config.DrawAlpha
	logger().Info("session started",
		"symbols", alphabet.Len(),
		"recognized", len(s.Glyphs),
		"source", config.TextPath,
		"clipboard", config.FromClipboard)
	return s, nil
}

// Handle applies a toggle command.
func (s *Session) Handle(cmd Command) bool {
	return s.Visibility.Apply(cmd)
}

// Frame lays out the session for one interpolation factor.
func (s *Session) Frame(factor float64) iter.Seq[DrawCommand] {
	return Layout(s.Geometry, s.Glyphs, s.Counts, s.Visibility, factor)
}

// Draw feeds one frame into surface.
func (s *Session) Draw(surface Surface, factor float64) {
	for cmd := range s.Frame(factor) {
		switch cmd.Kind {
		case DrawLine:
			surface.DrawLine(cmd)
		case DrawGlyph:
			surface.DrawGlyph(cmd)
		}
	}
}
