package shell

import "image/color"

// PaintCtx is the drawing surface handed to WinHandler.Paint. Coordinates
// are in display points; the context applies the window scale and the
// damage clip. Implementations are not safe for use off the owning thread.
type PaintCtx interface {
	// Save pushes the current clip state.
	Save()

	// Restore pops to the previously saved clip state.
	Restore()

	// ClipRects restricts drawing to the union of the given device-pixel
	// rectangles until the matching Restore.
	ClipRects(rects []IRect)

	// Clear fills the whole clip with a color.
	Clear(c color.RGBA)

	// FillRect fills a rectangle.
	FillRect(r Rect, c color.RGBA)

	// StrokeRect outlines a rectangle with the given line width.
	StrokeRect(r Rect, width float64, c color.RGBA)

	// StrokeLine draws a line segment with the given width.
	StrokeLine(p0, p1 Point, width float64, c color.RGBA)
}
