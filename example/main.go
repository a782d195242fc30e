// Example demonstrates the desktop backend: a window with a bouncing
// square animated by a repaint timer, plus idle callbacks pushed in from
// a worker goroutine.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Escape or closing the window quits.
package main

import (
	"fmt"
	"image/color"
	"os"
	"runtime"
	"time"

	"github.com/go-theft-auto/shell"
	"github.com/go-theft-auto/shell/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	app, err := opengl.New()
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	builder := opengl.NewBuilder(app)
	builder.SetHandler(&bouncer{})
	builder.SetTitle("shell example")
	builder.SetSize(shell.Size{Width: windowWidth, Height: windowHeight})

	handle, err := builder.Build()
	if err != nil {
		return fmt.Errorf("build window: %w", err)
	}
	handle.Show()

	// Tick a counter from a worker goroutine through the idle queue to
	// show cross-thread wakeups.
	if idle, ok := handle.GetIdleHandle(); ok {
		go func() {
			for i := 0; ; i++ {
				time.Sleep(time.Second)
				n := i
				idle.AddIdleCallback(func(h any) {
					if b, ok := h.(*bouncer); ok {
						b.ticks = n
					}
				})
			}
		}()
	}

	app.Run(nil)
	return nil
}

const squareSize = 60

// bouncer animates a square across the window, repainting only the
// square's old and new footprint each frame.
type bouncer struct {
	handle *shell.WindowHandle
	size   shell.Size

	pos   shell.Point
	vel   shell.Vec2
	ticks int
}

func (b *bouncer) Connect(handle *shell.WindowHandle) {
	b.handle = handle
	b.vel = shell.Vec2{X: 3, Y: 2}
	b.handle.RequestTimer(time.Now())
}

func (b *bouncer) Scale(scale shell.Scale) {}

func (b *bouncer) Size(size shell.Size) {
	b.size = size
	b.handle.Invalidate()
}

func (b *bouncer) PreparePaint() {
	prev := b.footprint()

	b.pos.X += b.vel.X
	b.pos.Y += b.vel.Y
	if b.pos.X < 0 || b.pos.X+squareSize > b.size.Width {
		b.vel.X = -b.vel.X
		b.pos.X += b.vel.X
	}
	if b.pos.Y < 0 || b.pos.Y+squareSize > b.size.Height {
		b.vel.Y = -b.vel.Y
		b.pos.Y += b.vel.Y
	}

	b.handle.InvalidateRect(prev)
	b.handle.InvalidateRect(b.footprint())
}

func (b *bouncer) footprint() shell.Rect {
	return shell.NewRect(b.pos.X, b.pos.Y, b.pos.X+squareSize, b.pos.Y+squareSize)
}

func (b *bouncer) Paint(ctx shell.PaintCtx, invalid *shell.Region) {
	ctx.Clear(color.RGBA{R: 0x1e, G: 0x1e, B: 0x24, A: 0xff})
	ctx.FillRect(b.footprint(), color.RGBA{R: 0xff, G: 0x8c, B: 0x00, A: 0xff})
	ctx.StrokeRect(b.footprint(), 2, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

func (b *bouncer) KeyDown(event shell.KeyEvent) {
	fmt.Printf("key down: %q (%v)\n", event.Key, event.Code)
}

func (b *bouncer) KeyUp(event shell.KeyEvent) {}

func (b *bouncer) MouseMove(event *shell.MouseEvent) {}

func (b *bouncer) MouseDown(event *shell.MouseEvent) {
	// Teleport the square to the click.
	b.handle.InvalidateRect(b.footprint())
	b.pos = shell.Point{X: event.Pos.X - squareSize/2, Y: event.Pos.Y - squareSize/2}
	b.handle.InvalidateRect(b.footprint())
}

func (b *bouncer) MouseUp(event *shell.MouseEvent) {}

func (b *bouncer) Timer(token shell.TimerToken) {
	b.handle.RequestAnimFrame()
	b.handle.RequestTimer(time.Now().Add(time.Second / 60))
}

func (b *bouncer) Idle(token shell.IdleToken) {}

func (b *bouncer) AsAny() any { return b }
