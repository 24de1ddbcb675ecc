package pinchzoom

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// A viewport matrix only ever carries a uniform scale and a translation,
// so B and D stay zero and A equals E. Matrix is a value type: every
// operation returns a new matrix and leaves the receiver untouched.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform of content that has not been placed yet.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a pure translation by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a uniform scale by s about the origin.
func Scale(s float64) Matrix {
	return Matrix{A: s, E: s}
}

// Multiply returns m * other: other is applied first, then m.
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

// PostTranslate returns m followed by a translation of (dx, dy).
func (m Matrix) PostTranslate(dx, dy float64) Matrix {
	return Translate(dx, dy).Multiply(m)
}

// PostScale returns m followed by a uniform scale of factor about anchor.
// The anchor is a point in destination (container) coordinates; it maps
// to itself under the appended scale, so whatever content currently sits
// under the anchor stays there.
//
// The scale is built as translate(+anchor) * scale(factor) *
// translate(-anchor). PostScale panics if factor is not a positive finite
// number.
func (m Matrix) PostScale(factor float64, anchor Point) Matrix {
	if !positiveFinite(factor) {
		panic(fmt.Sprintf("pinchzoom: scale factor must be positive and finite, got %v", factor))
	}
	s := Translate(anchor.X, anchor.Y).
		Multiply(Scale(factor)).
		Multiply(Translate(-anchor.X, -anchor.Y))
	return s.Multiply(m)
}

// ScaleFactor returns the uniform scale component of the matrix.
func (m Matrix) ScaleFactor() float64 {
	return m.A
}

// Translation returns the translation components of the matrix.
func (m Matrix) Translation() (x, y float64) {
	return m.C, m.F
}

// TransformPoint maps a content point to container coordinates.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Unmap maps a container point back to content coordinates. It relies on
// the viewport invariant of a positive uniform scale with no skew.
func (m Matrix) Unmap(p Point) Point {
	return Point{X: (p.X - m.C) / m.A, Y: (p.Y - m.F) / m.E}
}

// MapRect maps r through the matrix and returns the axis-aligned
// bounding box of the four transformed corners.
func (m Matrix) MapRect(r Rect) Rect {
	p0 := m.TransformPoint(Pt(r.MinX, r.MinY))
	p1 := m.TransformPoint(Pt(r.MaxX, r.MinY))
	p2 := m.TransformPoint(Pt(r.MinX, r.MaxY))
	p3 := m.TransformPoint(Pt(r.MaxX, r.MaxY))
	return Rect{
		MinX: math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X)),
		MinY: math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y)),
		MaxX: math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X)),
		MaxY: math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y)),
	}
}

// withScale returns m with its scale forced to s while keeping the image
// of anchor fixed. Used to land exactly on a scale bound after a clamped
// update, where s/old*old may be off by an ulp.
func (m Matrix) withScale(s float64, anchor Point) Matrix {
	if m.A == s && m.E == s {
		return m
	}
	// Content point under anchor, then solve s*pre + t = anchor.
	pre := m.Unmap(anchor)
	return Matrix{
		A: s, B: 0, C: anchor.X - s*pre.X,
		D: 0, E: s, F: anchor.Y - s*pre.Y,
	}
}
