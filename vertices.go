package paint

import "math"

// Vertex helpers operate on flattened [x0,y0,x1,y1,...] slices, the
// authoritative storage format for shape geometry. The flat layout is
// what renderers consume, so shapes never round-trip through a
// point-struct representation.

// Centroid returns the geometric center (arithmetic mean) of a flattened
// vertex slice. A slice with fewer than two points returns its first
// point, or the origin when empty.
func Centroid(verts []float64) Point {
	if len(verts) == 0 {
		return Point{}
	}
	if len(verts) < 4 {
		p := Point{X: verts[0]}
		if len(verts) > 1 {
			p.Y = verts[1]
		}
		return p
	}
	n := len(verts) / 2
	var sumX, sumY float64
	for i := 0; i+1 < len(verts); i += 2 {
		sumX += verts[i]
		sumY += verts[i+1]
	}
	return Point{X: sumX / float64(n), Y: sumY / float64(n)}
}

// RotateVerticesAround rotates a flattened vertex slice around a center
// point by the given angle in degrees, returning a new slice.
func RotateVerticesAround(verts []float64, center Point, angleDegrees float64) []float64 {
	if len(verts) == 0 {
		return nil
	}
	return RotateAround(center, angleDegrees).TransformVertices(verts)
}

// RotatePointAround rotates a single point around a center by the given
// angle in degrees.
func RotatePointAround(p, center Point, angleDegrees float64) Point {
	return RotateAround(center, angleDegrees).TransformPoint(p)
}

// translateVertices shifts every point of a flattened slice in place.
func translateVertices(verts []float64, delta Vec2) {
	for i := 0; i+1 < len(verts); i += 2 {
		verts[i] += delta.X
		verts[i+1] += delta.Y
	}
}

// scaleVerticesAround scales every point of a flattened slice about a
// center, in place: new = (old-center)*scale + center.
func scaleVerticesAround(verts []float64, center Point, sx, sy float64) {
	for i := 0; i+1 < len(verts); i += 2 {
		verts[i] = (verts[i]-center.X)*sx + center.X
		verts[i+1] = (verts[i+1]-center.Y)*sy + center.Y
	}
}

// VertexBounds returns the axis-aligned bounding box of a flattened
// vertex slice as (min, max) corners. An empty slice yields two origin
// points.
func VertexBounds(verts []float64) (min, max Point) {
	if len(verts) < 2 {
		return Point{}, Point{}
	}
	min = Point{X: verts[0], Y: verts[1]}
	max = min
	for i := 2; i+1 < len(verts); i += 2 {
		min.X = math.Min(min.X, verts[i])
		max.X = math.Max(max.X, verts[i])
		min.Y = math.Min(min.Y, verts[i+1])
		max.Y = math.Max(max.Y, verts[i+1])
	}
	return min, max
}

// RectangleVertices generates the four corners of an axis-aligned
// rectangle from its min/max bounds, ordered bottom-left, top-left,
// top-right, bottom-right (closed loop).
func RectangleVertices(min, max Point) []float64 {
	return []float64{
		min.X, min.Y,
		min.X, max.Y,
		max.X, max.Y,
		max.X, min.Y,
	}
}

// EllipseVertices generates a tessellated ellipse ring around center with
// the given radii. segments must be positive.
func EllipseVertices(center Point, radiusX, radiusY float64, segments int) []float64 {
	if segments <= 0 {
		return nil
	}
	verts := make([]float64, 0, segments*2)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		verts = append(verts,
			center.X+radiusX*math.Cos(angle),
			center.Y+radiusY*math.Sin(angle),
		)
	}
	return verts
}

// CircleVertices generates a tessellated circle ring.
func CircleVertices(center Point, radius float64, segments int) []float64 {
	return EllipseVertices(center, radius, radius, segments)
}

// RegularPolygonVertices generates a regular polygon with the given
// number of sides, starting from the top vertex. rotation is in radians.
// Fewer than 3 sides yields nil.
func RegularPolygonVertices(center Point, radius float64, sides int, rotation float64) []float64 {
	if sides < 3 {
		return nil
	}
	verts := make([]float64, 0, sides*2)
	step := 2 * math.Pi / float64(sides)
	start := rotation - math.Pi/2
	for i := 0; i < sides; i++ {
		angle := start + float64(i)*step
		verts = append(verts,
			center.X+radius*math.Cos(angle),
			center.Y+radius*math.Sin(angle),
		)
	}
	return verts
}

// TriangleVertices generates a triangle from three points.
func TriangleVertices(p1, p2, p3 Point) []float64 {
	return []float64{p1.X, p1.Y, p2.X, p2.Y, p3.X, p3.Y}
}

// RightTriangleVertices generates a right triangle with its right angle
// at the given vertex and legs along the axes.
func RightTriangleVertices(rightAngle Point, base, height float64) []float64 {
	return TriangleVertices(
		rightAngle,
		Pt(rightAngle.X+base, rightAngle.Y),
		Pt(rightAngle.X, rightAngle.Y+height),
	)
}

// IsoscelesTriangleVertices generates an isosceles triangle from the
// center of its base, the base width, and the height to the apex.
func IsoscelesTriangleVertices(baseCenter Point, baseWidth, height float64) []float64 {
	return TriangleVertices(
		Pt(baseCenter.X-baseWidth/2, baseCenter.Y),
		Pt(baseCenter.X+baseWidth/2, baseCenter.Y),
		Pt(baseCenter.X, baseCenter.Y+height),
	)
}

// LineVertices generates a two-point segment strip.
func LineVertices(start, end Point) []float64 {
	return []float64{start.X, start.Y, end.X, end.Y}
}

// DashedLineVertices generates pairs of points forming dashes along the
// segment from start to end. Each consecutive point pair is one dash.
func DashedLineVertices(start, end Point, dashLen, gapLen float64) []float64 {
	if dashLen <= 0 || gapLen < 0 {
		return LineVertices(start, end)
	}
	total := end.Sub(start).Length()
	if total == 0 {
		return nil
	}
	dir := end.Sub(start).Normalize()
	verts := make([]float64, 0, 8)
	for pos := 0.0; pos < total; pos += dashLen + gapLen {
		a := start.Add(dir.Mul(pos))
		stop := math.Min(pos+dashLen, total)
		b := start.Add(dir.Mul(stop))
		verts = append(verts, a.X, a.Y, b.X, b.Y)
	}
	return verts
}
