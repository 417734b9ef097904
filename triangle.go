package paint

import "math"

// barycentricEpsilon guards the containment test against degenerate
// (near-zero-area) triangles.
const barycentricEpsilon = 1e-10

// Triangle is a three-vertex shape with two drag constructions: a right
// triangle with legs along the axes, or an equilateral triangle when the
// constrain modifier is held.
type Triangle struct {
	shapeCore
	equilateral bool
}

// NewTriangle creates a triangle from a drag gesture. Unconstrained, the
// result is a right triangle with its right angle at origin and legs
// reaching the drag extents. Constrained, the result is an equilateral
// triangle centered on origin whose size is twice the drag distance.
func NewTriangle(origin, end Point, color RGBA, constrain bool) *Triangle {
	var verts []float64
	if constrain {
		size := end.Sub(origin).Length() * 2
		height := size * math.Sqrt(3) / 2
		verts = []float64{
			origin.X, origin.Y + height*2/3,
			origin.X - size/2, origin.Y - height/3,
			origin.X + size/2, origin.Y - height/3,
		}
	} else {
		verts = RightTriangleVertices(origin, end.X-origin.X, end.Y-origin.Y)
	}

	t := &Triangle{
		shapeCore:   newShapeCore(verts, color),
		equilateral: constrain,
	}
	Logger().Info("triangle created", "equilateral", constrain)
	return t
}

// TriangleFromPoints creates a triangle from three explicit vertices.
// This is the free-form construction; drag gestures use NewTriangle.
func TriangleFromPoints(p1, p2, p3 Point, color RGBA) *Triangle {
	return &Triangle{
		shapeCore: newShapeCore(TriangleVertices(p1, p2, p3), color),
	}
}

// Kind returns KindTriangle.
func (t *Triangle) Kind() Kind { return KindTriangle }

// DrawMode returns DrawLoop.
func (t *Triangle) DrawMode() DrawMode { return DrawLoop }

// IsEquilateral reports whether the triangle was built constrained.
func (t *Triangle) IsEquilateral() bool { return t.equilateral }

// Center returns the centroid of the base vertices.
func (t *Triangle) Center() Point { return Centroid(t.base) }

// ContainsPoint tests the point with barycentric coordinates: express it
// in the basis of two edge vectors and check 0 <= u, v and u+v <= 1.
// Degenerate triangles always report false.
func (t *Triangle) ContainsPoint(p Point) bool {
	if len(t.verts) < 6 {
		return false
	}
	a := Pt(t.verts[0], t.verts[1])
	b := Pt(t.verts[2], t.verts[3])
	c := Pt(t.verts[4], t.verts[5])

	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)

	dot00 := v0.Dot(v0)
	dot01 := v0.Dot(v1)
	dot02 := v0.Dot(v2)
	dot11 := v1.Dot(v1)
	dot12 := v1.Dot(v2)

	denom := dot00*dot11 - dot01*dot01
	if math.Abs(denom) < barycentricEpsilon {
		return false
	}

	invDenom := 1.0 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return u >= 0 && v >= 0 && u+v <= 1
}

// Area returns the triangle area. Equilateral triangles use the closed
// form sqrt(3)/4 * side^2; otherwise the Shoelace formula applies.
func (t *Triangle) Area() float64 {
	if len(t.verts) < 6 {
		return 0
	}
	a := Pt(t.verts[0], t.verts[1])
	b := Pt(t.verts[2], t.verts[3])
	c := Pt(t.verts[4], t.verts[5])

	if t.equilateral {
		side := a.Distance(b)
		return math.Sqrt(3) / 4 * side * side
	}
	return math.Abs(a.X*(b.Y-c.Y)+b.X*(c.Y-a.Y)+c.X*(a.Y-b.Y)) / 2
}

// Perimeter returns the sum of the three edge lengths.
func (t *Triangle) Perimeter() float64 {
	if len(t.verts) < 6 {
		return 0
	}
	a := Pt(t.verts[0], t.verts[1])
	b := Pt(t.verts[2], t.verts[3])
	c := Pt(t.verts[4], t.verts[5])
	return a.Distance(b) + b.Distance(c) + c.Distance(a)
}

// SetRotation rotates the triangle around its centroid.
func (t *Triangle) SetRotation(degrees float64) {
	t.setRotation(degrees, t.Center())
}

// Move translates the triangle. The base vertices move first so the
// rotation reapplies around the moved centroid.
func (t *Triangle) Move(delta Vec2) {
	translateVertices(t.base, delta)
	t.applyRotation(t.Center())
}

// Scale scales the triangle about its centroid.
func (t *Triangle) Scale(sx, sy float64) {
	t.ScaleAround(sx, sy, t.Center())
}

// ScaleAround scales the triangle about an explicit center, reapplying
// rotation around the fresh centroid.
func (t *Triangle) ScaleAround(sx, sy float64, center Point) {
	scaleVerticesAround(t.base, center, sx, sy)
	t.applyRotation(t.Center())
}
