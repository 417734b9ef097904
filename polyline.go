package paint

// Polyline is an open vertex strip: a line or multi-segment path with no
// closing edge. Polylines are not hit-testable and never selectable by
// clicking; ContainsPoint always reports false.
type Polyline struct {
	shapeCore
	centroid Point
}

// NewPolyline creates a polyline from a flattened vertex slice.
func NewPolyline(verts []float64, color RGBA) *Polyline {
	return &Polyline{
		shapeCore: newShapeCore(verts, color),
		centroid:  Centroid(verts),
	}
}

// NewLine creates a two-point line segment.
func NewLine(start, end Point, color RGBA) *Polyline {
	return NewPolyline(LineVertices(start, end), color)
}

// Kind returns KindLine.
func (l *Polyline) Kind() Kind { return KindLine }

// DrawMode returns DrawStrip; the outline stays open.
func (l *Polyline) DrawMode() DrawMode { return DrawStrip }

// Center returns the maintained centroid, the midpoint for a two-point
// line. Rotation pivots here.
func (l *Polyline) Center() Point { return l.centroid }

// ContainsPoint always reports false; lines are not selectable.
func (l *Polyline) ContainsPoint(Point) bool { return false }

// Area returns 0; an open strip encloses nothing.
func (l *Polyline) Area() float64 { return 0 }

// Perimeter sums the consecutive segment lengths without a closing edge.
func (l *Polyline) Perimeter() float64 {
	if len(l.verts) < 4 {
		return 0
	}
	total := 0.0
	for i := 0; i+3 < len(l.verts); i += 2 {
		a := Pt(l.verts[i], l.verts[i+1])
		b := Pt(l.verts[i+2], l.verts[i+3])
		total += a.Distance(b)
	}
	return total
}

// SetRotation rotates the polyline around its centroid.
func (l *Polyline) SetRotation(degrees float64) {
	l.setRotation(degrees, l.centroid)
}

// Move translates the polyline and its centroid together.
func (l *Polyline) Move(delta Vec2) {
	l.centroid = l.centroid.Add(delta)
	l.move(delta, l.centroid)
}

// Scale scales the polyline about its centroid.
func (l *Polyline) Scale(sx, sy float64) {
	l.ScaleAround(sx, sy, l.centroid)
}

// ScaleAround scales the polyline about an explicit center.
func (l *Polyline) ScaleAround(sx, sy float64, center Point) {
	scaleVerticesAround(l.base, center, sx, sy)
	l.centroid = Centroid(l.base)
	l.applyRotation(l.centroid)
}
