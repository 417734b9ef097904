package paint

import "math"

// Rect is an axis-constructed rectangle defined by a drag from one
// corner to the opposite one. Rotation may later turn it away from the
// axes; the base vertices stay the authoritative unrotated geometry.
type Rect struct {
	shapeCore
}

// NewRect creates a rectangle from two opposite corners. With constrain
// set, the drag is forced square: both sides take the larger magnitude,
// each keeping the sign of the original drag direction.
func NewRect(start, end Point, color RGBA, constrain bool) *Rect {
	width := end.X - start.X
	height := end.Y - start.Y

	if constrain {
		side := math.Max(math.Abs(width), math.Abs(height))
		width = math.Copysign(side, width)
		height = math.Copysign(side, height)
	}

	verts := []float64{
		start.X, start.Y,
		start.X, start.Y + height,
		start.X + width, start.Y + height,
		start.X + width, start.Y,
	}

	r := &Rect{shapeCore: newShapeCore(verts, color)}
	Logger().Info("rectangle created", "square", constrain)
	return r
}

// Kind returns KindRect.
func (r *Rect) Kind() Kind { return KindRect }

// DrawMode returns DrawLoop; rectangles render as closed outlines.
func (r *Rect) DrawMode() DrawMode { return DrawLoop }

// Center returns the centroid of the base vertices.
func (r *Rect) Center() Point { return Centroid(r.base) }

// ContainsPoint tests the point against the box spanned by vertices 0
// and 2, taking min/max per axis so any corner ordering works. The
// bounds are inclusive.
func (r *Rect) ContainsPoint(p Point) bool {
	if len(r.verts) < 6 {
		return false
	}
	xMin := math.Min(r.verts[0], r.verts[4])
	xMax := math.Max(r.verts[0], r.verts[4])
	yMin := math.Min(r.verts[1], r.verts[5])
	yMax := math.Max(r.verts[1], r.verts[5])

	return xMin <= p.X && p.X <= xMax && yMin <= p.Y && p.Y <= yMax
}

// sides returns the current edge lengths adjacent to vertex 0.
func (r *Rect) sides() (w, h float64) {
	if len(r.verts) < 8 {
		return 0, 0
	}
	v0 := Pt(r.verts[0], r.verts[1])
	v1 := Pt(r.verts[2], r.verts[3])
	v3 := Pt(r.verts[6], r.verts[7])
	return v0.Distance(v3), v0.Distance(v1)
}

// Area returns width*height.
func (r *Rect) Area() float64 {
	w, h := r.sides()
	return w * h
}

// Perimeter returns 2*(width+height).
func (r *Rect) Perimeter() float64 {
	w, h := r.sides()
	return 2 * (w + h)
}

// SetRotation rotates the rectangle around its centroid.
func (r *Rect) SetRotation(degrees float64) {
	r.setRotation(degrees, r.Center())
}

// Move translates the rectangle. The base vertices move first so the
// rotation reapplies around the moved centroid.
func (r *Rect) Move(delta Vec2) {
	translateVertices(r.base, delta)
	r.applyRotation(r.Center())
}

// Scale scales the rectangle about its centroid.
func (r *Rect) Scale(sx, sy float64) {
	r.ScaleAround(sx, sy, r.Center())
}

// ScaleAround scales the rectangle about an explicit center, reapplying
// rotation around the fresh centroid.
func (r *Rect) ScaleAround(sx, sy float64, center Point) {
	scaleVerticesAround(r.base, center, sx, sy)
	r.applyRotation(r.Center())
}
