package paint

// Polygon is an arbitrary closed shape built vertex by vertex through
// the polygon gesture. It maintains its centroid explicitly so Move does
// not have to re-average the vertex slice; the field always equals the
// arithmetic mean of the base vertices.
type Polygon struct {
	shapeCore
	centroid Point
}

// NewPolygon creates a polygon from a flattened vertex slice. A valid
// polygon needs at least three vertices; shorter slices still construct
// (previews pass through here) but never report containment.
func NewPolygon(verts []float64, color RGBA) *Polygon {
	p := &Polygon{
		shapeCore: newShapeCore(verts, color),
		centroid:  Centroid(verts),
	}
	Logger().Info("polygon created", "vertices", len(verts)/2)
	return p
}

// Kind returns KindPolygon.
func (p *Polygon) Kind() Kind { return KindPolygon }

// DrawMode returns DrawLoop.
func (p *Polygon) DrawMode() DrawMode { return DrawLoop }

// Center returns the maintained centroid.
func (p *Polygon) Center() Point { return p.centroid }

// ContainsPoint uses the even-odd rule: cast a ray to the right from the
// test point and toggle containment at every edge crossing. Exactly
// horizontal edges never satisfy the y-interval check and are skipped
// naturally. Polygons with fewer than three vertices report false.
func (p *Polygon) ContainsPoint(pt Point) bool {
	if len(p.verts) < 6 {
		return false
	}

	inside := false
	x, y := pt.X, pt.Y
	p1x, p1y := p.verts[len(p.verts)-2], p.verts[len(p.verts)-1]

	for i := 0; i+1 < len(p.verts); i += 2 {
		p2x, p2y := p.verts[i], p.verts[i+1]

		if y > min2(p1y, p2y) && y <= max2(p1y, p2y) && p1y != p2y {
			xIntersect := (y-p1y)*(p2x-p1x)/(p2y-p1y) + p1x
			if x <= xIntersect {
				inside = !inside
			}
		}

		p1x, p1y = p2x, p2y
	}
	return inside
}

// Area returns the polygon area via the Shoelace formula.
func (p *Polygon) Area() float64 {
	if len(p.verts) < 6 {
		return 0
	}
	n := len(p.verts) / 2
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.verts[2*i]*p.verts[2*j+1] - p.verts[2*j]*p.verts[2*i+1]
	}
	if area < 0 {
		area = -area
	}
	return area / 2
}

// Perimeter sums all edge lengths including the closing edge.
func (p *Polygon) Perimeter() float64 {
	if len(p.verts) < 4 {
		return 0
	}
	n := len(p.verts) / 2
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a := Pt(p.verts[2*i], p.verts[2*i+1])
		b := Pt(p.verts[2*j], p.verts[2*j+1])
		total += a.Distance(b)
	}
	return total
}

// SetRotation rotates the polygon around its centroid.
func (p *Polygon) SetRotation(degrees float64) {
	p.setRotation(degrees, p.centroid)
}

// Move translates the polygon and its centroid together, preserving the
// centroid-equals-mean invariant.
func (p *Polygon) Move(delta Vec2) {
	p.centroid = p.centroid.Add(delta)
	p.move(delta, p.centroid)
}

// Scale scales the polygon about its centroid.
func (p *Polygon) Scale(sx, sy float64) {
	p.ScaleAround(sx, sy, p.centroid)
}

// ScaleAround scales the polygon about an explicit center. Scaling about
// a point other than the centroid moves the centroid; recompute it from
// the scaled base vertices.
func (p *Polygon) ScaleAround(sx, sy float64, center Point) {
	scaleVerticesAround(p.base, center, sx, sy)
	p.centroid = Centroid(p.base)
	p.applyRotation(p.centroid)
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
