// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggpaint

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/gogpu/paint"
)

// Rendering errors.
var (
	// ErrNilEditor is returned when the editor is nil.
	ErrNilEditor = errors.New("ggpaint: editor must not be nil")

	// ErrNilContext is returned when the drawing context is nil.
	ErrNilContext = errors.New("ggpaint: dc must not be nil")
)

// Options controls how a session is rasterized.
type Options struct {
	// Background fills the context before drawing. Defaults to the
	// editor's dark canvas gray.
	Background paint.RGBA

	// BaseLineWidth is the pixel width of a normal outline; selected
	// shapes draw at twice this width. Defaults to 1.5.
	BaseLineWidth float64

	// PreviewAlpha is the opacity applied to the in-progress preview
	// shape. Defaults to 0.6.
	PreviewAlpha float64
}

// DefaultOptions returns the standard rasterization options.
func DefaultOptions() Options {
	return Options{
		Background:    paint.RGB(0.1, 0.1, 0.1),
		BaseLineWidth: 1.5,
		PreviewAlpha:  0.6,
	}
}

// Render rasterizes the session into dc with default options.
func Render(ed *paint.Editor, dc *gg.Context) error {
	return RenderWithOptions(ed, dc, DefaultOptions())
}

// RenderWithOptions rasterizes the document shapes in z-order, then the
// gesture preview on top, projecting world coordinates to screen pixels
// through the session camera.
func RenderWithOptions(ed *paint.Editor, dc *gg.Context, opts Options) error {
	if ed == nil {
		return ErrNilEditor
	}
	if dc == nil {
		return ErrNilContext
	}
	if opts.BaseLineWidth <= 0 {
		opts.BaseLineWidth = DefaultOptions().BaseLineWidth
	}
	if opts.PreviewAlpha <= 0 {
		opts.PreviewAlpha = DefaultOptions().PreviewAlpha
	}

	dc.ClearWithColor(toGG(opts.Background))

	cam := ed.Camera()
	for _, s := range ed.Document().Shapes() {
		strokeShape(dc, cam, s, s.Color(), opts)
	}
	if p := ed.Preview(); p != nil {
		strokeShape(dc, cam, p, p.Color().WithAlpha(opts.PreviewAlpha), opts)
	}
	return nil
}

// strokeShape projects one shape and strokes its outline.
func strokeShape(dc *gg.Context, cam *paint.Camera, s paint.Shape, c paint.RGBA, opts Options) {
	verts := s.Vertices()
	if len(verts) < 4 {
		return
	}

	dc.ClearPath()
	for i := 0; i+1 < len(verts); i += 2 {
		x, y := cam.WorldToScreen(paint.Pt(verts[i], verts[i+1]))
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	if s.DrawMode() == paint.DrawLoop {
		dc.ClosePath()
	}

	dc.SetColor(c.Color())
	dc.SetLineWidth(opts.BaseLineWidth * float64(s.Thickness()))
	dc.Stroke()
}

// toGG converts a paint color to a gg color.
func toGG(c paint.RGBA) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
