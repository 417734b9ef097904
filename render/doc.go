// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render snapshots a paint editing session into flat draw data
// for a rendering backend.
//
// The editor core stores shapes as world-space vertex loops; a renderer
// needs per-frame batches of typed vertices plus the camera matrices to
// project them. Snapshot performs that conversion without touching GPU
// APIs itself: the output is plain slices and column-major matrices that
// any backend (gg's software rasterizer, a wgpu pipeline, a recording
// target) can consume.
//
// # Key Principle
//
// The snapshot is a value: taking one never mutates the editor, and the
// editor may continue processing events while a previous snapshot is
// being drawn, as long as both happen on the same goroutine.
package render
