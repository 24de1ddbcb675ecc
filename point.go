package pinchzoom

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Size is the extent of a container or of a piece of content.
type Size struct {
	Width, Height float64
}

// Sz is a convenience function to create a Size.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Center returns the midpoint of a rectangle of this size anchored at
// the origin.
func (s Size) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}

// Rect returns the rectangle (0, 0, Width, Height).
func (s Size) Rect() Rect {
	return NewRect(0, 0, s.Width, s.Height)
}

// valid reports whether both dimensions are positive and finite.
func (s Size) valid() bool {
	return positiveFinite(s.Width) && positiveFinite(s.Height)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
