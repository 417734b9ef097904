package paint

import "math"

// Ellipse segment-count bounds: larger shapes tessellate finer, within
// limits that keep small circles smooth and large ones cheap.
const (
	minEllipseSegments = 50
	maxEllipseSegments = 100
)

// Ellipse is a tessellated ellipse or circle defined by its center and
// two radii. A true circle (built with the constrain modifier) is
// rotationally symmetric: rotation is tracked but never changes the
// vertices.
//
// Unlike the polygon-like shapes, scaling an ellipse adjusts the radii
// and regenerates the ring instead of scaling vertex coordinates, so the
// tessellation stays evenly spaced.
type Ellipse struct {
	shapeCore
	position Point
	radiusX  float64
	radiusY  float64
	segments int
	circle   bool
}

// NewEllipse creates an ellipse from its center and a dragged edge
// point. With constrain set the result is a perfect circle with radius
// |edge-center|; otherwise the radii follow the drag extents per axis.
func NewEllipse(center, edge Point, color RGBA, constrain bool) *Ellipse {
	e := &Ellipse{position: center, circle: constrain}

	if constrain {
		e.radiusX = edge.Sub(center).Length()
		e.radiusY = e.radiusX
	} else {
		e.radiusX = math.Abs(edge.X - center.X)
		e.radiusY = math.Abs(edge.Y - center.Y)
	}

	e.segments = segmentCount(math.Max(e.radiusX, e.radiusY))
	e.shapeCore = newShapeCore(e.ring(), color)
	Logger().Info("ellipse created",
		"circle", constrain, "segments", e.segments)
	return e
}

// segmentCount picks the tessellation density for a given radius.
func segmentCount(maxRadius float64) int {
	n := int(math.Round(maxRadius * 100))
	if n < minEllipseSegments {
		return minEllipseSegments
	}
	if n > maxEllipseSegments {
		return maxEllipseSegments
	}
	return n
}

// ring generates the base vertex ring for the current position and radii.
func (e *Ellipse) ring() []float64 {
	return EllipseVertices(e.position, e.radiusX, e.radiusY, e.segments)
}

// Kind returns KindEllipse.
func (e *Ellipse) Kind() Kind { return KindEllipse }

// DrawMode returns DrawLoop.
func (e *Ellipse) DrawMode() DrawMode { return DrawLoop }

// IsCircle reports whether both radii are constrained equal.
func (e *Ellipse) IsCircle() bool { return e.circle }

// RadiusX returns the horizontal radius.
func (e *Ellipse) RadiusX() float64 { return e.radiusX }

// RadiusY returns the vertical radius.
func (e *Ellipse) RadiusY() float64 { return e.radiusY }

// Segments returns the tessellation segment count.
func (e *Ellipse) Segments() int { return e.segments }

// Center returns the ellipse position, not the vertex centroid.
func (e *Ellipse) Center() Point { return e.position }

// ContainsPoint tests circles by distance and ellipses by the normalized
// ellipse equation (dx/rx)^2 + (dy/ry)^2 <= 1.
func (e *Ellipse) ContainsPoint(p Point) bool {
	if e.circle {
		return p.Distance(e.position) <= e.radiusX
	}
	if e.radiusX <= 0 || e.radiusY <= 0 {
		return false
	}
	dx := (p.X - e.position.X) / e.radiusX
	dy := (p.Y - e.position.Y) / e.radiusY
	return dx*dx+dy*dy <= 1
}

// Area returns pi*rx*ry, which reduces to pi*r^2 for circles.
func (e *Ellipse) Area() float64 {
	return math.Pi * e.radiusX * e.radiusY
}

// Perimeter returns 2*pi*r for circles and Ramanujan's second
// approximation for ellipses.
func (e *Ellipse) Perimeter() float64 {
	if e.circle {
		return 2 * math.Pi * e.radiusX
	}
	a, b := e.radiusX, e.radiusY
	if a+b == 0 {
		return 0
	}
	h := (a - b) * (a - b) / ((a + b) * (a + b))
	return math.Pi * (a + b) * (1 + 3*h/(10+math.Sqrt(4-3*h)))
}

// SetRotation stores the angle. True circles are rotationally symmetric
// so their vertices never change; ellipses rotate around their position.
func (e *Ellipse) SetRotation(degrees float64) {
	if e.circle {
		e.rotation = NormalizeDegrees(degrees)
		return
	}
	e.setRotation(degrees, e.position)
}

// Move translates the ellipse, keeping the position field equal to the
// geometric center, and regenerates the ring at the new position.
func (e *Ellipse) Move(delta Vec2) {
	e.position = e.position.Add(delta)
	e.base = e.ring()
	e.applyRotation(e.position)
}

// Scale adjusts the radii by the absolute scale factors and regenerates
// the ring so the tessellation stays round.
func (e *Ellipse) Scale(sx, sy float64) {
	e.ScaleAround(sx, sy, e.position)
}

// ScaleAround adjusts the radii and, for centers other than the
// position, moves the position like any other scaled point.
func (e *Ellipse) ScaleAround(sx, sy float64, center Point) {
	e.radiusX *= math.Abs(sx)
	e.radiusY *= math.Abs(sy)

	if center != e.position {
		e.position = Point{
			X: (e.position.X-center.X)*sx + center.X,
			Y: (e.position.Y-center.Y)*sy + center.Y,
		}
	}

	e.base = e.ring()
	if !e.circle && math.Abs(e.rotation) >= rotationEpsilon {
		e.applyRotation(e.position)
	} else {
		e.verts = make([]float64, len(e.base))
		copy(e.verts, e.base)
	}
}
