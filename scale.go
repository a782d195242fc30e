package shell

// Scale holds the ratio of device pixels to display points on each axis.
// Physical pixels = DP × scale. Both factors must be positive.
type Scale struct {
	X, Y float64
}

// DefaultScale is the 1:1 pixel-to-point scale.
var DefaultScale = Scale{X: 1, Y: 1}

// NewScale creates a scale with the given per-axis factors.
func NewScale(x, y float64) Scale {
	return Scale{X: x, Y: y}
}

// Valid returns true if both scale factors are positive.
func (s Scale) Valid() bool {
	return s.X > 0 && s.Y > 0
}

// PointToPx converts a point from display points to device pixels.
func (s Scale) PointToPx(p Point) Point {
	return Point{X: p.X * s.X, Y: p.Y * s.Y}
}

// PointToDP converts a point from device pixels to display points.
func (s Scale) PointToDP(p Point) Point {
	return Point{X: p.X / s.X, Y: p.Y / s.Y}
}

// SizeToPx converts a size from display points to device pixels.
func (s Scale) SizeToPx(sz Size) Size {
	return Size{Width: sz.Width * s.X, Height: sz.Height * s.Y}
}

// SizeToDP converts a size from device pixels to display points.
func (s Scale) SizeToDP(sz Size) Size {
	return Size{Width: sz.Width / s.X, Height: sz.Height / s.Y}
}

// RectToPx converts a rectangle from display points to device pixels.
func (s Scale) RectToPx(r Rect) Rect {
	return Rect{X0: r.X0 * s.X, Y0: r.Y0 * s.Y, X1: r.X1 * s.X, Y1: r.Y1 * s.Y}
}

// RectToDP converts a rectangle from device pixels to display points.
func (s Scale) RectToDP(r Rect) Rect {
	return Rect{X0: r.X0 / s.X, Y0: r.Y0 / s.Y, X1: r.X1 / s.X, Y1: r.Y1 / s.Y}
}

// ExpandRect snaps a DP rectangle outward to the device pixel grid and
// returns it in DP again. Invalidated rects pass through this so that
// sub-pixel edges never leave seams.
func (s Scale) ExpandRect(r Rect) Rect {
	return s.RectToDP(s.RectToPx(r).Expand())
}
