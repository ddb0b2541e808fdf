package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// pngSurface draws a frame with gg onto a white image of the geometry's
// pixel size.
type pngSurface struct {
	dc   *gg.Context
	geom Geometry
}

func newPNGSurface(geom Geometry) (*pngSurface, error) {
	dc := gg.NewContext(int(geom.Width), int(geom.Height))
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	return &pngSurface{dc: dc, geom: geom}, nil
}

func (p *pngSurface) DrawLine(cmd DrawCommand) {
	x1, y1 := p.geom.ToScreen(cmd.From)
	x2, y2 := p.geom.ToScreen(cmd.At)
	p.dc.SetLineWidth(1.0)
	p.dc.SetColor(cmd.Color)
	p.dc.DrawLine(x1, y1, x2, y2)
	p.dc.Stroke()
}

func (p *pngSurface) DrawGlyph(cmd DrawCommand) {
	x, y := p.geom.ToScreen(cmd.At)
	p.dc.SetColor(cmd.Color)
	p.dc.DrawString(string(cmd.Char), x, y)
}

// ExportPNG renders the frame for factor into a PNG file.
func (s *Session) ExportPNG(filename string, factor float64) error {
	surface, err := newPNGSurface(s.Geometry)
	if err != nil {
		return err
	}
	s.Draw(surface, factor)
	if err := surface.dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	logger().Info("snapshot saved", "file", filename, "factor", factor)
	return nil
}

// exportVisualTXT writes the terminal rendition without styling.
func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range m.canvas().Lines() {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return err
		}
	}
	logger().Info("text snapshot saved", "file", filename)
	return nil
}
