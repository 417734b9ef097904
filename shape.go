package paint

import "math"

// Kind identifies the concrete type of a Shape. The set of kinds is
// closed; renderers and tools may switch over it exhaustively.
type Kind int

// Shape kinds.
const (
	KindRect Kind = iota
	KindTriangle
	KindEllipse
	KindPolygon
	KindLine
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rectangle"
	case KindTriangle:
		return "triangle"
	case KindEllipse:
		return "ellipse"
	case KindPolygon:
		return "polygon"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// DrawMode tells the renderer how to connect a shape's vertices.
type DrawMode int

const (
	// DrawLoop connects the vertices as a closed outline.
	DrawLoop DrawMode = iota

	// DrawStrip connects the vertices as an open polyline.
	DrawStrip
)

// Thickness is the outline width class of a shape. It carries selection
// feedback only; the renderer maps it to pixels.
type Thickness int

const (
	// ThicknessNormal is the default outline width.
	ThicknessNormal Thickness = 1

	// ThicknessSelected is the emphasized width of selected shapes.
	ThicknessSelected Thickness = 2
)

// Shape is the interface implemented by all drawable shapes.
//
// Geometry is stored twice: base vertices are the authoritative,
// untransformed coordinates mutated by Move and scaling, while Vertices
// returns the same geometry with the current rotation applied around the
// shape's center. The two views satisfy the invariant
//
//	Vertices == rotate(BaseVertices, Rotation, Center)
//
// at all times.
type Shape interface {
	// Kind identifies the concrete shape type.
	Kind() Kind

	// Vertices returns the current, rotation-applied flattened vertex
	// slice. The returned slice is owned by the shape and must not be
	// mutated; it is valid until the next mutating call.
	Vertices() []float64

	// BaseVertices returns a copy of the untransformed vertex slice.
	BaseVertices() []float64

	// Color returns the outline color.
	Color() RGBA

	// SetColor replaces the outline color.
	SetColor(c RGBA)

	// Thickness returns the outline width class.
	Thickness() Thickness

	// SetThickness replaces the outline width class.
	SetThickness(t Thickness)

	// Rotation returns the rotation angle in degrees, always within
	// [-180, 180].
	Rotation() float64

	// SetRotation sets the rotation angle in degrees. The angle is
	// normalized to [-180, 180] before being stored and applied.
	SetRotation(degrees float64)

	// ContainsPoint reports whether the world-space point lies inside
	// the shape. Degenerate geometry returns false.
	ContainsPoint(p Point) bool

	// Area returns the enclosed area of the shape.
	Area() float64

	// Perimeter returns the outline length of the shape.
	Perimeter() float64

	// Move translates the shape by a world-space delta.
	Move(delta Vec2)

	// Scale scales the shape about its own center.
	Scale(sx, sy float64)

	// ScaleAround scales the shape about an explicit center point.
	ScaleAround(sx, sy float64, center Point)

	// Center returns the shape's rotation and scaling pivot.
	Center() Point

	// Bounds returns the axis-aligned bounding box of the current
	// (rotated) vertices.
	Bounds() (min, max Point)

	// DrawMode tells the renderer whether the outline closes.
	DrawMode() DrawMode
}

// rotationEpsilon is the angle below which rotation application is
// skipped and base vertices are used directly.
const rotationEpsilon = 0.001

// shapeCore holds the state shared by every shape implementation:
// the base/current vertex pair, color, thickness and rotation.
//
// Rotation is always applied around the owning shape's center, which may
// itself depend on shape-specific state (an ellipse's position, a
// polygon's maintained centroid). Core methods therefore take the center
// as a parameter instead of computing it; each shape passes its own.
type shapeCore struct {
	base      []float64
	verts     []float64
	color     RGBA
	thickness Thickness
	rotation  float64
}

func newShapeCore(verts []float64, color RGBA) shapeCore {
	base := make([]float64, len(verts))
	copy(base, verts)
	current := make([]float64, len(verts))
	copy(current, verts)
	return shapeCore{
		base:      base,
		verts:     current,
		color:     color,
		thickness: ThicknessNormal,
	}
}

func (s *shapeCore) Vertices() []float64 { return s.verts }

func (s *shapeCore) BaseVertices() []float64 {
	out := make([]float64, len(s.base))
	copy(out, s.base)
	return out
}

func (s *shapeCore) Color() RGBA              { return s.color }
func (s *shapeCore) SetColor(c RGBA)          { s.color = c }
func (s *shapeCore) Thickness() Thickness     { return s.thickness }
func (s *shapeCore) SetThickness(t Thickness) { s.thickness = t }
func (s *shapeCore) Rotation() float64        { return s.rotation }

// applyRotation recomputes the current vertices from the base vertices
// and the stored rotation around the given center.
func (s *shapeCore) applyRotation(center Point) {
	if math.Abs(s.rotation) < rotationEpsilon {
		s.verts = make([]float64, len(s.base))
		copy(s.verts, s.base)
		return
	}
	s.verts = RotateVerticesAround(s.base, center, s.rotation)
}

// setRotation normalizes and stores the angle, then reapplies it.
func (s *shapeCore) setRotation(degrees float64, center Point) {
	s.rotation = NormalizeDegrees(degrees)
	s.applyRotation(center)
}

// move translates the base vertices and reapplies rotation. center must
// be the post-move rotation center; callers whose center derives from
// the base vertices translate first and recompute instead.
func (s *shapeCore) move(delta Vec2, center Point) {
	translateVertices(s.base, delta)
	s.applyRotation(center)
}

// bounds returns the AABB of the current vertices.
func (s *shapeCore) Bounds() (min, max Point) {
	return VertexBounds(s.verts)
}

// ScaleFromPoint scales a shape relative to a reference point, such as
// the cursor: the geometry scales about its own center and the center
// itself moves away from (or toward) the reference by the same factors.
func ScaleFromPoint(s Shape, sx, sy float64, reference Point) {
	center := s.Center()
	delta := center.Sub(reference)
	newCenter := reference.Add(Vec2{X: delta.X * sx, Y: delta.Y * sy})

	s.ScaleAround(sx, sy, center)
	s.Move(newCenter.Sub(center))
}
