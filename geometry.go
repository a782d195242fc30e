package shell

import "math"

// Point is a position in display points (DP).
type Point struct {
	X, Y float64
}

// Vec2 is a 2D displacement, used for wheel deltas.
type Vec2 struct {
	X, Y float64
}

// Size is a width and height in display points.
type Size struct {
	Width, Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// ToRect returns the rectangle from the origin to the size's extent.
func (s Size) ToRect() Rect {
	return Rect{X0: 0, Y0: 0, X1: s.Width, Y1: s.Height}
}

// Rect is an axis-aligned rectangle given by its min and max corners,
// in display points.
type Rect struct {
	X0, Y0 float64 // Top-left
	X1, Y1 float64 // Bottom-right
}

// NewRect creates a rectangle from two corner coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the rectangle's height.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// IsEmpty returns true if the rectangle covers no area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}

// Intersect returns the overlap of r and other; empty if they are disjoint.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		X0: math.Max(r.X0, other.X0),
		Y0: math.Max(r.Y0, other.Y0),
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
	}
	if out.IsEmpty() {
		return Rect{}
	}
	return out
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// Expand rounds the rectangle outward to the integer grid: the min corner
// is floored and the max corner is ceiled.
func (r Rect) Expand() Rect {
	return Rect{
		X0: math.Floor(r.X0),
		Y0: math.Floor(r.Y0),
		X1: math.Ceil(r.X1),
		Y1: math.Ceil(r.Y1),
	}
}

// IRect is an axis-aligned rectangle in integer device pixels.
type IRect struct {
	L, T, R, B int
}

// NewIRect creates a pixel rectangle from left, top, right, bottom edges.
func NewIRect(l, t, r, b int) IRect {
	return IRect{L: l, T: t, R: r, B: b}
}

// IsEmpty returns true if the pixel rectangle covers no area.
func (r IRect) IsEmpty() bool {
	return r.R <= r.L || r.B <= r.T
}

// Width returns the pixel rectangle's width.
func (r IRect) Width() int { return r.R - r.L }

// Height returns the pixel rectangle's height.
func (r IRect) Height() int { return r.B - r.T }

// ToIRect truncates the rectangle's corners to integer pixels. Damage rects
// are expanded to the pixel grid before conversion, so no coverage is lost.
func (r Rect) ToIRect() IRect {
	return IRect{L: int(r.X0), T: int(r.Y0), R: int(r.X1), B: int(r.Y1)}
}
