package kms

import (
	"image/color"
	"math"

	"github.com/go-theft-auto/shell"
)

// Canvas paints into an XRGB8888 scanout buffer on the CPU. It implements
// shell.PaintCtx. Draw calls arrive in display points on the logical
// landscape surface; the canvas applies the window scale and, on a
// portrait panel, rotates every primitive onto panel coordinates. Clip
// rects arrive already in panel pixel space.
type Canvas struct {
	buf    []byte
	stride int // bytes per panel row

	panelW, panelH int // scanout buffer, device pixels
	surfW, surfH   int // logical drawing surface, device pixels

	rotated bool
	scale   shell.Scale

	clip  clipState
	stack []clipState
}

type clipState struct {
	rects []shell.IRect
	set   bool
}

// NewCanvas builds a canvas over the panel dimensions. When rotated is
// set the logical surface is the panel turned on its side.
func NewCanvas(panelW, panelH, stride int, rotated bool, scale shell.Scale) *Canvas {
	c := &Canvas{
		stride:  stride,
		panelW:  panelW,
		panelH:  panelH,
		rotated: rotated,
		scale:   scale,
	}
	if rotated {
		c.surfW, c.surfH = panelH, panelW
	} else {
		c.surfW, c.surfH = panelW, panelH
	}
	return c
}

// SetBuffer points the canvas at the back buffer for this frame.
func (c *Canvas) SetBuffer(buf []byte) {
	c.buf = buf
}

// SurfaceSize returns the logical drawing surface in device pixels.
func (c *Canvas) SurfaceSize() (int, int) {
	return c.surfW, c.surfH
}

func (c *Canvas) Save() {
	saved := clipState{set: c.clip.set}
	saved.rects = append(saved.rects, c.clip.rects...)
	c.stack = append(c.stack, saved)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.clip = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// ClipRects restricts painting to the union of the panel-space rects. An
// empty list clips everything out and the buffer keeps its contents.
func (c *Canvas) ClipRects(rects []shell.IRect) {
	c.clip = clipState{set: true}
	c.clip.rects = append(c.clip.rects, rects...)
}

// clipRects returns the active clip in panel space.
func (c *Canvas) clipRects() []shell.IRect {
	if c.clip.set {
		return c.clip.rects
	}
	return []shell.IRect{shell.NewIRect(0, 0, c.panelW, c.panelH)}
}

// toPanel maps a logical pixel rect onto panel coordinates.
func (c *Canvas) toPanel(r shell.IRect) shell.IRect {
	if c.rotated {
		return transformClipRect(r, c.surfH)
	}
	return r
}

func (c *Canvas) Clear(col color.RGBA) {
	c.fillPanel(shell.NewIRect(0, 0, c.panelW, c.panelH), col)
}

func (c *Canvas) FillRect(r shell.Rect, col color.RGBA) {
	c.fillPanel(c.toPanel(c.scale.RectToPx(r).ToIRect()), col)
}

func (c *Canvas) StrokeRect(r shell.Rect, width float64, col color.RGBA) {
	if width <= 0 {
		width = 1
	}
	c.FillRect(shell.NewRect(r.X0, r.Y0, r.X1, r.Y0+width), col)
	c.FillRect(shell.NewRect(r.X0, r.Y1-width, r.X1, r.Y1), col)
	c.FillRect(shell.NewRect(r.X0, r.Y0, r.X0+width, r.Y1), col)
	c.FillRect(shell.NewRect(r.X1-width, r.Y0, r.X1, r.Y1), col)
}

// StrokeLine steps along the segment and stamps a square of side width at
// each pixel. Crude but fine at panel resolutions.
func (c *Canvas) StrokeLine(p0, p1 shell.Point, width float64, col color.RGBA) {
	if width <= 0 {
		width = 1
	}
	a := c.scale.PointToPx(p0)
	b := c.scale.PointToPx(p1)
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	half := width * c.scale.X / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := a.X + dx*t
		y := a.Y + dy*t
		r := shell.IRect{
			L: int(math.Floor(x - half)),
			T: int(math.Floor(y - half)),
			R: int(math.Ceil(x + half)),
			B: int(math.Ceil(y + half)),
		}
		if r.R == r.L {
			r.R++
		}
		if r.B == r.T {
			r.B++
		}
		c.fillPanel(c.toPanel(r), col)
	}
}

// fillPanel fills a panel-space rect through the clip.
func (c *Canvas) fillPanel(r shell.IRect, col color.RGBA) {
	if c.buf == nil {
		return
	}
	for _, clip := range c.clipRects() {
		seg := intersectIRect(r, clip)
		seg = intersectIRect(seg, shell.NewIRect(0, 0, c.panelW, c.panelH))
		if seg.IsEmpty() {
			continue
		}
		c.fillRaw(seg, col)
	}
}

func (c *Canvas) fillRaw(r shell.IRect, col color.RGBA) {
	if col.A == 0 {
		return
	}
	if col.A == 0xff {
		for y := r.T; y < r.B; y++ {
			row := c.buf[y*c.stride:]
			for x := r.L; x < r.R; x++ {
				o := x * 4
				row[o+0] = col.B
				row[o+1] = col.G
				row[o+2] = col.R
				row[o+3] = 0xff
			}
		}
		return
	}
	// Source-over blend for translucent fills.
	sa := uint32(col.A)
	ia := 255 - sa
	for y := r.T; y < r.B; y++ {
		row := c.buf[y*c.stride:]
		for x := r.L; x < r.R; x++ {
			o := x * 4
			row[o+0] = uint8((uint32(col.B)*sa + uint32(row[o+0])*ia) / 255)
			row[o+1] = uint8((uint32(col.G)*sa + uint32(row[o+1])*ia) / 255)
			row[o+2] = uint8((uint32(col.R)*sa + uint32(row[o+2])*ia) / 255)
			row[o+3] = 0xff
		}
	}
}

func intersectIRect(a, b shell.IRect) shell.IRect {
	out := shell.IRect{
		L: max(a.L, b.L),
		T: max(a.T, b.T),
		R: min(a.R, b.R),
		B: min(a.B, b.B),
	}
	if out.R < out.L {
		out.R = out.L
	}
	if out.B < out.T {
		out.B = out.T
	}
	return out
}
