package paint

// Camera converts between screen pixels, normalized device coordinates
// and world space, and derives the orthographic matrices the renderer
// uploads. The visible world region is centered on (X, Y) with a
// half-height of 1/Zoom; width follows the framebuffer aspect ratio.
//
// Window and framebuffer sizes are tracked separately because pointer
// events arrive in window coordinates while the projection is defined
// over framebuffer pixels; on HiDPI displays the two differ.
type Camera struct {
	// X, Y is the world-space focus of the view.
	X, Y float64

	// Zoom is the magnification level, clamped to [MinZoom, MaxZoom].
	Zoom float64

	winW, winH int
	fbW, fbH   int
}

// Camera tuning constants.
const (
	// MinZoom and MaxZoom bound the zoom level.
	MinZoom = 0.1
	MaxZoom = 10.0

	// ZoomStep is the per-scroll-notch zoom factor increment.
	ZoomStep = 0.1

	// DefaultZoom is the zoom level after construction or Reset.
	DefaultZoom = 1.0
)

// NewCamera creates a camera for the given initial window size.
// The framebuffer is assumed to match the window until UpdateViewport
// reports otherwise.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Zoom: DefaultZoom,
		winW: width, winH: height,
		fbW: width, fbH: height,
	}
}

// UpdateViewport records the current window and framebuffer dimensions.
// Call it on every resize event so pointer scaling stays correct.
func (c *Camera) UpdateViewport(winW, winH, fbW, fbH int) {
	c.winW, c.winH = winW, winH
	c.fbW, c.fbH = fbW, fbH
	Logger().Info("camera viewport updated", "fb_width", fbW, "fb_height", fbH)
}

// Viewport returns the current window and framebuffer dimensions.
func (c *Camera) Viewport() (winW, winH, fbW, fbH int) {
	return c.winW, c.winH, c.fbW, c.fbH
}

// ScreenToNDC converts window-pixel coordinates to normalized device
// coordinates. Screen Y grows downward, NDC Y grows upward, so the Y
// axis flips. A zero-sized window falls back to a 1:1 pointer scale.
func (c *Camera) ScreenToNDC(x, y float64) (ndcX, ndcY float64) {
	scaleX, scaleY := 1.0, 1.0
	if c.winW != 0 {
		scaleX = float64(c.fbW) / float64(c.winW)
	}
	if c.winH != 0 {
		scaleY = float64(c.fbH) / float64(c.winH)
	}

	fbX := x * scaleX
	fbY := y * scaleY

	if c.fbW == 0 || c.fbH == 0 {
		return 0, 0
	}
	ndcX = 2*fbX/float64(c.fbW) - 1
	ndcY = 1 - 2*fbY/float64(c.fbH)
	return ndcX, ndcY
}

// aspect returns the framebuffer aspect ratio, falling back to 1.0 for
// a degenerate viewport.
func (c *Camera) aspect() float64 {
	if c.fbH == 0 {
		return 1.0
	}
	return float64(c.fbW) / float64(c.fbH)
}

// ScreenToWorld converts window-pixel coordinates into world space.
// This is the inverse of the orthographic projection produced by
// ProjectionMatrix and ViewMatrix.
func (c *Camera) ScreenToWorld(x, y float64) Point {
	ndcX, ndcY := c.ScreenToNDC(x, y)

	viewH := 2.0 / c.Zoom
	viewW := viewH * c.aspect()

	p := Point{
		X: c.X + ndcX*(viewW/2),
		Y: c.Y + ndcY*(viewH/2),
	}
	Logger().Debug("screen to world",
		"screen_x", x, "screen_y", y, "world_x", p.X, "world_y", p.Y)
	return p
}

// WorldToScreen converts a world-space point into window-pixel
// coordinates. Inverse of ScreenToWorld; used by software rasterization
// at the integration boundary.
func (c *Camera) WorldToScreen(p Point) (x, y float64) {
	viewH := 2.0 / c.Zoom
	viewW := viewH * c.aspect()

	ndcX := 0.0
	ndcY := 0.0
	if viewW != 0 {
		ndcX = (p.X - c.X) / (viewW / 2)
	}
	if viewH != 0 {
		ndcY = (p.Y - c.Y) / (viewH / 2)
	}

	fbX := (ndcX + 1) / 2 * float64(c.fbW)
	fbY := (1 - ndcY) / 2 * float64(c.fbH)

	scaleX, scaleY := 1.0, 1.0
	if c.winW != 0 {
		scaleX = float64(c.fbW) / float64(c.winW)
	}
	if c.winH != 0 {
		scaleY = float64(c.fbH) / float64(c.winH)
	}
	return fbX / scaleX, fbY / scaleY
}

// ZoomAt zooms the camera at a specific screen point, keeping the world
// point under the cursor fixed. delta follows scroll-wheel convention:
// positive zooms in, negative zooms out, zero is a no-op.
func (c *Camera) ZoomAt(x, y, delta float64) {
	before := c.ScreenToWorld(x, y)

	switch {
	case delta > 0:
		c.Zoom *= 1.0 + ZoomStep
	case delta < 0:
		c.Zoom *= 1.0 - ZoomStep
	default:
		return
	}
	if c.Zoom < MinZoom {
		c.Zoom = MinZoom
	}
	if c.Zoom > MaxZoom {
		c.Zoom = MaxZoom
	}

	// Translate so the anchor point stays put under the cursor.
	after := c.ScreenToWorld(x, y)
	c.X += before.X - after.X
	c.Y += before.Y - after.Y

	Logger().Info("zoom level changed", "zoom", c.Zoom)
}

// Pan translates the camera focus by a world-space delta.
func (c *Camera) Pan(delta Vec2) {
	c.X += delta.X
	c.Y += delta.Y
}

// Reset returns the camera to the origin at default zoom.
func (c *Camera) Reset() {
	c.X, c.Y = 0, 0
	c.Zoom = DefaultZoom
	Logger().Info("camera reset")
}

// ProjectionMatrix returns the column-major 4x4 orthographic projection
// for the current zoom and aspect ratio, ready for GPU upload.
func (c *Camera) ProjectionMatrix() [16]float32 {
	viewH := 2.0 / c.Zoom
	viewW := viewH * c.aspect()

	return ortho(-viewW/2, viewW/2, -viewH/2, viewH/2, -1, 1)
}

// ViewMatrix returns the column-major 4x4 view matrix translating the
// world so the camera focus sits at the origin.
func (c *Camera) ViewMatrix() [16]float32 {
	m := identity4()
	m[12] = float32(-c.X)
	m[13] = float32(-c.Y)
	return m
}

// ModelMatrix returns the identity model matrix. Shapes store world-space
// vertices directly, so no per-shape model transform exists.
func (c *Camera) ModelMatrix() [16]float32 {
	return identity4()
}

// identity4 returns a column-major 4x4 identity matrix.
func identity4() [16]float32 {
	var m [16]float32
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// ortho builds a column-major orthographic projection matrix.
func ortho(left, right, bottom, top, near, far float64) [16]float32 {
	var m [16]float32
	m[0] = float32(2 / (right - left))
	m[5] = float32(2 / (top - bottom))
	m[10] = float32(-2 / (far - near))
	m[12] = float32(-(right + left) / (right - left))
	m[13] = float32(-(top + bottom) / (top - bottom))
	m[14] = float32(-(far + near) / (far - near))
	m[15] = 1
	return m
}
