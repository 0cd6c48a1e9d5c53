package shadowbox

import "math"

// Vec2 is a 2D vector. It is used for shadow offsets and rect centers.
type Vec2 struct {
	X, Y float64
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// MaxComponent returns the larger of |X| and |Y|.
func (v Vec2) MaxComponent() float64 {
	return math.Max(math.Abs(v.X), math.Abs(v.Y))
}

// Rect is an axis-aligned rectangle with float64 coordinates.
// (X0, Y0) is the top-left corner and (X1, Y1) the bottom-right.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect creates a rectangle from its corner coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the rectangle width. Negative for inverted rects.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle height. Negative for inverted rects.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// MinEdge returns the shorter of width and height.
func (r Rect) MinEdge() float64 {
	return math.Min(r.Width(), r.Height())
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

// IsEmpty returns true if the rectangle has no positive area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Inflate grows the rectangle by dx horizontally and dy vertically on
// every side. Negative values shrink it; the result may be inverted.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X0: r.X0 - dx, Y0: r.Y0 - dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{X0: r.X0 + v.X, Y0: r.Y0 + v.Y, X1: r.X1 + v.X, Y1: r.Y1 + v.Y}
}

// Contains returns true if the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// RoundedRect couples a rectangle with a uniform corner radius.
type RoundedRect struct {
	Rect   Rect
	Radius float64
}

// RoundRect creates a rounded rectangle with the radius clamped to
// [0, MaxCornerRadius(r)], so the corner arcs can never overlap.
func RoundRect(r Rect, radius float64) RoundedRect {
	return RoundedRect{Rect: r, Radius: ClampRadius(radius, r)}
}

// Bounds returns the bounding rectangle (the rect itself).
func (rr RoundedRect) Bounds() Rect {
	return rr.Rect
}

// MaxCornerRadius returns the largest corner radius the rectangle can
// carry: half its shorter edge. Zero for empty or inverted rects.
func MaxCornerRadius(r Rect) float64 {
	m := 0.5 * r.MinEdge()
	if m < 0 {
		return 0
	}
	return m
}

// ClampRadius bounds a requested corner radius to what the rectangle
// can geometrically carry.
func ClampRadius(radius float64, r Rect) float64 {
	return Clamp(radius, 0, MaxCornerRadius(r))
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
