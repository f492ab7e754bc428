package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/bradley-health/icongen/internal/render/layout"
)

// ErrInvalidSize is returned for non-positive icon sizes.
var ErrInvalidSize = errors.New("icon size must be positive")

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// RenderConfig describes one icon raster.
type RenderConfig struct {
	Size int

	// IncludeText draws the brand lines when Size >= TextSizeThresholdPx.
	IncludeText         bool
	TextSizeThresholdPx int

	// Fonts is the resolution chain for the brand text; nil means DefaultFonts.
	Fonts []FontSource

	Logger Logger
}

// HasText reports whether a render with this config draws the brand lines.
func (cfg RenderConfig) HasText() bool {
	return cfg.IncludeText && cfg.Size >= cfg.TextSizeThresholdPx
}

// Render draws the heart, ECG trace and optional brand text on a fresh
// Size x Size canvas.
func Render(cfg RenderConfig) (*image.RGBA, error) {
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, cfg.Size)
	}
	g := layout.Compute(cfg.Size)

	canvas := image.NewRGBA(image.Rect(0, 0, cfg.Size, cfg.Size))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	dc := gg.NewContextForRGBA(canvas)
	drawHeart(dc, g)
	drawTrace(dc, g)

	if cfg.HasText() {
		sources := cfg.Fonts
		if sources == nil {
			sources = DefaultFonts()
		}
		face, name := ResolveFace(sources, float64(g.FontPoints), cfg.Logger)
		defer face.Close()
		if cfg.Logger != nil {
			cfg.Logger.Infof("render", "size %d: brand text in %s at %dpt", cfg.Size, name, g.FontPoints)
		}
		drawBrand(canvas, g, face)
	}
	return canvas, nil
}

// Pixel-grid coordinates are shifted by half a pixel so integer positions
// land on pixel centres.
func centre(p image.Point) (float64, float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}

func drawHeart(dc *gg.Context, g layout.Geometry) {
	dc.SetColor(Accent)
	for _, lobe := range []image.Rectangle{g.LeftLobe, g.RightLobe} {
		cx := float64(lobe.Min.X+lobe.Max.X) / 2
		cy := float64(lobe.Min.Y+lobe.Max.Y) / 2
		dc.DrawEllipse(cx, cy, float64(lobe.Dx())/2, float64(lobe.Dy())/2)
		dc.Fill()
	}

	dc.NewSubPath()
	for i, p := range g.Triangle {
		x, y := centre(p)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.Fill()
}

func drawTrace(dc *gg.Context, g layout.Geometry) {
	dc.SetColor(Foreground)
	dc.SetLineWidth(float64(g.StrokeWidth))
	dc.SetLineCapButt()
	for i := 0; i+1 < len(g.Trace); i++ {
		// Small sizes collapse the zig-zag onto the centre.
		if g.Trace[i] == g.Trace[i+1] {
			continue
		}
		x1, y1 := centre(g.Trace[i])
		x2, y2 := centre(g.Trace[i+1])
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
}

// drawBrand centres each brand line horizontally; line i has its top edge at
// TextTop + i*LineSpacing.
func drawBrand(dst *image.RGBA, g layout.Geometry, face font.Face) {
	ascent := face.Metrics().Ascent.Ceil()
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(Foreground),
		Face: face,
	}
	for i, line := range BrandLines {
		textWidth := drawer.MeasureString(line).Ceil()
		xPos := (g.Size - textWidth) / 2
		baseline := g.TextTop + i*g.LineSpacing + ascent
		drawer.Dot = fixed.P(xPos, baseline)
		drawer.DrawString(line)
	}
}
