package paint

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// RotateAround creates a rotation around an arbitrary center point
// (angle in degrees, the unit used for shape rotation state).
// Composed as translate-to-origin, rotate, translate-back.
func RotateAround(center Point, angleDegrees float64) Matrix {
	back := Translate(center.X, center.Y)
	rot := Rotate(DegToRad(angleDegrees))
	toOrigin := Translate(-center.X, -center.Y)
	return back.Multiply(rot).Multiply(toOrigin)
}

// ScaleAround creates a scaling transformation about an arbitrary center.
func ScaleAround(center Point, sx, sy float64) Matrix {
	back := Translate(center.X, center.Y)
	scale := Scale(sx, sy)
	toOrigin := Translate(-center.X, -center.Y)
	return back.Multiply(scale).Multiply(toOrigin)
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVertices applies the transformation to a flattened
// [x0,y0,x1,y1,...] vertex slice, returning a new slice.
func (m Matrix) TransformVertices(verts []float64) []float64 {
	if len(verts) == 0 {
		return nil
	}
	out := make([]float64, len(verts))
	for i := 0; i+1 < len(verts); i += 2 {
		p := m.TransformPoint(Point{X: verts[i], Y: verts[i+1]})
		out[i] = p.X
		out[i+1] = p.Y
	}
	return out
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
