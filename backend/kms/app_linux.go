//go:build linux

package kms

import (
	"image/color"
	"sync/atomic"
	"time"

	"github.com/go-theft-auto/shell"
)

const defaultCardPath = "/dev/dri/card0"

// App is the direct-rendering application: it owns the DRM device and a
// render loop paced by the panel's vblank. One window per application.
type App struct {
	window   *shell.Window
	quitting atomic.Bool
	rotated  atomic.Bool

	cardPath string
	clip     memClipboard
}

var _ shell.Application = (*App)(nil)

// New creates the application. The DRM device is opened inside Run so
// that a build-then-never-run application touches no hardware.
func New() (*App, error) {
	return &App{cardPath: defaultCardPath}, nil
}

// AddWindow registers the window built by the WindowBuilder.
func (a *App) AddWindow(w *shell.Window) error {
	if a.window != nil {
		return shell.ErrWindowExists
	}
	a.window = w
	return nil
}

// Window returns the registered window.
func (a *App) Window() (*shell.Window, error) {
	if a.window == nil {
		return nil, shell.ErrNoWindow
	}
	return a.window, nil
}

// Quit asks the render loop to exit after the current frame. Quitting is
// monotonic.
func (a *App) Quit() {
	a.quitting.Store(true)
}

// Clipboard returns the in-process clipboard. There is no display server
// to share one with.
func (a *App) Clipboard() shell.Clipboard {
	return &a.clip
}

// Locale returns the locale tag. Locale queries are not wired up, so this
// is a fixed en-US.
func (a *App) Locale() string {
	return "en-US"
}

// clipTransform rotates damage rects onto the panel when it is mounted
// portrait. Called by the window pump during rendering, so the rotation
// flag is known by then.
func (a *App) clipTransform(r shell.IRect, heightPx int) shell.IRect {
	if a.rotated.Load() {
		return transformClipRect(r, heightPx)
	}
	return r
}

// Run enters the render loop and blocks until Quit or the window closes.
// Startup failures are logged; Run never panics on them.
func (a *App) Run(handler shell.AppHandler) {
	if err := a.runInner(); err != nil {
		shell.Logger().Error("render loop failed", "err", err)
	}
}

func (a *App) runInner() error {
	mw := a.window
	if mw == nil {
		return shell.ErrNoWindow
	}

	dev, err := openDevice(a.cardPath)
	if err != nil {
		return err
	}
	defer dev.Close()

	// A taller-than-wide mode means the panel is mounted portrait; the
	// handler keeps drawing landscape and everything is rotated here.
	rotated := dev.height > dev.width
	a.rotated.Store(rotated)

	canvas := NewCanvas(dev.width, dev.height, dev.backBuffer().pitch, rotated, mw.Scale())
	surfW, surfH := canvas.SurfaceSize()
	mw.ScreenSizeChanged(shell.Size{Width: float64(surfW), Height: float64(surfH)})

	// Start from black on both scanout buffers.
	for range dev.buffers {
		canvas.SetBuffer(dev.backBuffer().data)
		canvas.Clear(color.RGBA{A: 0xff})
		if err := dev.flip(); err != nil {
			return err
		}
	}
	mw.Invalidate()

	lastTS := time.Now()
	var elapsed time.Duration
	frames := 0

	for !a.quitting.Load() && !mw.Dropped() {
		frames++
		now := time.Now()
		elapsed += now.Sub(lastTS)
		lastTS = now
		if elapsed > time.Second {
			shell.Logger().Info("fps", "frames", frames)
			frames = 0
			elapsed -= time.Second
		}

		mw.RunTimers(now)
		mw.RunIdle()

		canvas.SetBuffer(dev.backBuffer().data)
		if err := mw.Render(canvas); err != nil {
			shell.Logger().Error("render failed", "err", err)
			continue
		}
		if err := dev.flip(); err != nil {
			return err
		}
	}
	return nil
}
