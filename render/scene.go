// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/paint"
)

// Primitive is one flattened draw call: a vertex run, its color, and how
// to connect it. Vertices are world-space [x0,y0,x1,y1,...] pairs,
// narrowed to float32 for upload.
type Primitive struct {
	// Vertices is the flattened vertex run.
	Vertices []float32

	// Color is the outline color as straight (unpremultiplied) RGBA.
	Color [4]float32

	// Mode tells the backend whether the run closes into a loop.
	Mode paint.DrawMode

	// LineWidth is the outline width class in pixels.
	LineWidth float32

	// Preview marks the ephemeral in-progress shape, letting backends
	// style it differently from document shapes.
	Preview bool
}

// Scene is a frame snapshot: every document shape in z-order, the
// preview shape if a gesture is in progress, and the camera matrices.
type Scene struct {
	// Primitives lists the draw calls in paint order.
	Primitives []Primitive

	// Projection, View and Model are column-major 4x4 matrices for the
	// standard orthographic pipeline. Model is always identity; shapes
	// store world-space vertices directly.
	Projection [16]float32
	View       [16]float32
	Model      [16]float32
}

// Snapshot captures the editor's current frame state.
func Snapshot(ed *paint.Editor) *Scene {
	cam := ed.Camera()
	shapes := ed.Document().Shapes()

	sc := &Scene{
		Primitives: make([]Primitive, 0, len(shapes)+1),
		Projection: cam.ProjectionMatrix(),
		View:       cam.ViewMatrix(),
		Model:      cam.ModelMatrix(),
	}

	for _, s := range shapes {
		sc.Primitives = append(sc.Primitives, flatten(s, false))
	}
	if p := ed.Preview(); p != nil {
		sc.Primitives = append(sc.Primitives, flatten(p, true))
	}
	return sc
}

// flatten converts a shape into upload-ready draw data.
func flatten(s paint.Shape, preview bool) Primitive {
	verts := s.Vertices()
	out := make([]float32, len(verts))
	for i, v := range verts {
		out[i] = float32(v)
	}

	c := s.Color()
	return Primitive{
		Vertices:  out,
		Color:     [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)},
		Mode:      s.DrawMode(),
		LineWidth: float32(s.Thickness()),
		Preview:   preview,
	}
}
