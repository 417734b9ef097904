// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggpaint rasterizes a paint editing session with gogpu/gg.
//
// The editor core is renderer-agnostic; this package is the reference
// backend. It projects world-space shapes through the session camera and
// strokes their outlines into a gg.Context, which can then be displayed,
// saved to PNG, or handed to a GPU surface via gg's own backends.
//
// Example:
//
//	ed := paint.NewEditor(800, 600)
//	// ... feed events ...
//
//	dc := gg.NewContext(800, 600)
//	ggpaint.Render(ed, dc)
//	dc.SavePNG("canvas.png")
package ggpaint
