// Package paint provides the document model and interaction core for an
// interactive 2D vector editor.
//
// # Overview
//
// paint is the editor-side companion to gogpu/gg: where gg rasterizes
// vector graphics, paint owns the shapes themselves — creation gestures,
// hit-testing, selection, and the camera that maps pointer input onto a
// pannable, zoomable world. It contains no GPU or windowing code; raw
// pointer and key events go in, transformed geometry comes out.
//
// # Quick Start
//
//	import "github.com/gogpu/paint"
//
//	// An Editor bundles the document, camera, selection and gestures.
//	ed := paint.NewEditor(800, 600)
//
//	// Feed it events from your windowing layer.
//	ed.Input().PointerButton(paint.ButtonLeft, paint.Press, 400, 300)
//	ed.Input().PointerMove(520, 360)
//	ed.Input().PointerButton(paint.ButtonLeft, paint.Release, 520, 360)
//
//	// Hand the finished shapes to a renderer.
//	for _, s := range ed.Document().Shapes() {
//	    upload(s.Vertices(), s.Color(), s.DrawMode())
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Editor, Document, Shape, Camera, InputManager
//   - Geometry: Point, Vec2, Matrix, angle and vertex helpers
//   - Boundaries: render (scene snapshots for GPU upload),
//     integration/ggpaint (rasterization via gogpu/gg)
//
// # Coordinate System
//
// Three spaces are involved:
//   - Screen: window pixels, origin top-left, Y down
//   - NDC: [-1,1]x[-1,1], Y up
//   - World: shape coordinates, camera-independent, Y up
//
// Camera converts between them; shapes live entirely in world space.
//
// # Concurrency
//
// The core is single-threaded by design: one event loop mutates the
// document and reads it back for rendering. No internal locking is
// performed.
package paint

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
