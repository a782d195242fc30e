package opengl

import (
	"fmt"
	"image/color"
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shell"
)

// vertex is the GPU vertex layout: position in device pixels plus an
// unpremultiplied RGBA color.
type vertex struct {
	Pos   [2]float32
	Color [4]uint8
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    Color = aColor;
}
` + "\x00"

// Fragment shader source
const fragmentShaderSource = `
#version 410 core
in vec4 Color;

out vec4 FragColor;

void main() {
    FragColor = Color;
}
` + "\x00"

// clipState is one entry of the surface's Save/Restore stack.
type clipState struct {
	rects []shell.IRect
	set   bool
}

// Surface is the GL render target the window paints into. It implements
// shell.PaintCtx: handler coordinates arrive in display points, the
// surface applies the window scale and replays each primitive once per
// damage rect under a scissor, which is how the multi-rect clip union is
// realized on GL.
type Surface struct {
	shader  uint32
	vao     uint32
	vbo     uint32
	projLoc int32

	fboID  int32 // framebuffer bound at creation time
	width  int   // device pixels
	height int
	scale  shell.Scale

	clip  clipState
	stack []clipState
}

// NewSurface builds a surface over the currently bound framebuffer: the
// binding and its RGBA8888 format are queried once, and the projection
// uses a bottom-left GL origin flipped to the top-left point space the
// toolkit draws in. Called at startup and again on every resize.
func NewSurface(width, height int, scale shell.Scale) (*Surface, error) {
	s := &Surface{
		width:  width,
		height: height,
		scale:  scale,
	}

	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &s.fboID)

	var err error
	s.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("surface shader: %w", err)
	}

	s.projLoc = gl.GetUniformLocation(s.shader, gl.Str("projection\x00"))

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	stride := int32(unsafe.Sizeof(vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(vertex{}.Color))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	return s, nil
}

// Resize updates the surface dimensions after a framebuffer size change.
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
}

// Size returns the surface size in device pixels.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Begin prepares GL state for a paint pass.
func (s *Surface) Begin() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(s.fboID))
	gl.Viewport(0, 0, int32(s.width), int32(s.height))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(s.shader)
	proj := ortho(0, float32(s.width), float32(s.height), 0, -1, 1)
	gl.UniformMatrix4fv(s.projLoc, 1, false, &proj[0])

	s.clip = clipState{}
	s.stack = s.stack[:0]
}

// Flush submits all buffered GL commands.
func (s *Surface) Flush() {
	gl.Flush()
	gl.Disable(gl.SCISSOR_TEST)
}

// Delete releases the surface's GL resources.
func (s *Surface) Delete() {
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.shader != 0 {
		gl.DeleteProgram(s.shader)
	}
}

// Save pushes the clip state.
func (s *Surface) Save() {
	saved := clipState{set: s.clip.set}
	saved.rects = append(saved.rects, s.clip.rects...)
	s.stack = append(s.stack, saved)
}

// Restore pops the clip state.
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.clip = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// ClipRects restricts drawing to the union of the device-pixel rects. An
// empty list clips everything out: primitives are dropped and the buffer
// keeps its contents.
func (s *Surface) ClipRects(rects []shell.IRect) {
	s.clip = clipState{set: true}
	s.clip.rects = append(s.clip.rects, rects...)
}

// Clear fills the clip with a color.
func (s *Surface) Clear(c color.RGBA) {
	s.fillQuadPx(0, 0, float32(s.width), float32(s.height), c)
}

// FillRect fills a rectangle given in display points.
func (s *Surface) FillRect(r shell.Rect, c color.RGBA) {
	px := s.scale.RectToPx(r)
	s.fillQuadPx(float32(px.X0), float32(px.Y0), float32(px.X1), float32(px.Y1), c)
}

// StrokeRect outlines a rectangle with the given line width, both in
// display points.
func (s *Surface) StrokeRect(r shell.Rect, width float64, c color.RGBA) {
	if width <= 0 {
		width = 1
	}
	s.FillRect(shell.NewRect(r.X0, r.Y0, r.X1, r.Y0+width), c)
	s.FillRect(shell.NewRect(r.X0, r.Y1-width, r.X1, r.Y1), c)
	s.FillRect(shell.NewRect(r.X0, r.Y0, r.X0+width, r.Y1), c)
	s.FillRect(shell.NewRect(r.X1-width, r.Y0, r.X1, r.Y1), c)
}

// StrokeLine draws a line segment as a rotated quad.
func (s *Surface) StrokeLine(p0, p1 shell.Point, width float64, c color.RGBA) {
	if width <= 0 {
		width = 1
	}
	a := s.scale.PointToPx(p0)
	b := s.scale.PointToPx(p1)
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Perpendicular half-width offset, scaled on the X axis.
	hw := width * s.scale.X / 2
	ox := -dy / length * hw
	oy := dx / length * hw
	col := [4]uint8{c.R, c.G, c.B, c.A}
	s.drawTriangles([]vertex{
		{Pos: [2]float32{float32(a.X + ox), float32(a.Y + oy)}, Color: col},
		{Pos: [2]float32{float32(b.X + ox), float32(b.Y + oy)}, Color: col},
		{Pos: [2]float32{float32(b.X - ox), float32(b.Y - oy)}, Color: col},
		{Pos: [2]float32{float32(a.X + ox), float32(a.Y + oy)}, Color: col},
		{Pos: [2]float32{float32(b.X - ox), float32(b.Y - oy)}, Color: col},
		{Pos: [2]float32{float32(a.X - ox), float32(a.Y - oy)}, Color: col},
	})
}

func (s *Surface) fillQuadPx(x0, y0, x1, y1 float32, c color.RGBA) {
	col := [4]uint8{c.R, c.G, c.B, c.A}
	s.drawTriangles([]vertex{
		{Pos: [2]float32{x0, y0}, Color: col},
		{Pos: [2]float32{x1, y0}, Color: col},
		{Pos: [2]float32{x1, y1}, Color: col},
		{Pos: [2]float32{x0, y0}, Color: col},
		{Pos: [2]float32{x1, y1}, Color: col},
		{Pos: [2]float32{x0, y1}, Color: col},
	})
}

// drawTriangles uploads the vertices once and replays the draw under each
// clip rect's scissor.
func (s *Surface) drawTriangles(verts []vertex) {
	if s.clip.set && len(s.clip.rects) == 0 {
		return
	}

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(unsafe.Sizeof(vertex{})), gl.Ptr(verts), gl.STREAM_DRAW)

	if !s.clip.set {
		gl.Disable(gl.SCISSOR_TEST)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)))
	} else {
		gl.Enable(gl.SCISSOR_TEST)
		for _, r := range s.clip.rects {
			if r.IsEmpty() {
				continue
			}
			// GL scissor is bottom-left origin.
			gl.Scissor(int32(r.L), int32(s.height-r.B), int32(r.Width()), int32(r.Height()))
			gl.DrawArrays(gl.TRIANGLES, 0, int32(len(verts)))
		}
		gl.Disable(gl.SCISSOR_TEST)
	}
	gl.BindVertexArray(0)
}

func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &infoLog[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", infoLog)
	}

	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &infoLog[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", infoLog)
	}
	return shader, nil
}

func ortho(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}
