// Package opengl is the desktop backend: a GLFW window with an OpenGL
// surface, driving the shared window pump. GLFW requires the event loop
// to run on the main OS thread; callers lock it with runtime.LockOSThread
// in an init function before calling Run.
package opengl

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/shell"
)

const (
	defaultWidth  = 800
	defaultHeight = 600

	targetFPS = 60

	// schedulerLag shaves a little off the frame budget so the swap lands
	// before the deadline rather than just after it.
	schedulerLag = time.Millisecond
)

const frameTime = time.Second/targetFPS - schedulerLag

// App is the desktop application: it owns the GLFW window, the GL
// surface and the event loop. One window per application.
type App struct {
	window   *shell.Window
	native   *glfw.Window
	title    string
	quitting atomic.Bool
}

var _ shell.Application = (*App)(nil)

// New creates the application. GLFW itself is initialized inside Run, on
// the pinned thread.
func New() (*App, error) {
	return &App{}, nil
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

// Quit asks the event loop to exit. Quitting is monotonic; there is no
// un-quit.
func (a *App) Quit() {
	a.quitting.Store(true)
	glfw.PostEmptyEvent()
}

// Clipboard returns the system clipboard.
func (a *App) Clipboard() shell.Clipboard {
	return &systemClipboard{app: a}
}

// Locale returns the locale tag. Locale queries are not wired up, so this
// is a fixed en-US.
func (a *App) Locale() string {
	return "en-US"
}

// wake rouses the event loop from WaitEventsTimeout when idle work
// arrives from another goroutine.
func (a *App) wake() {
	glfw.PostEmptyEvent()
}

// Run enters the event loop and blocks until the window closes or Quit is
// called. Startup failures are logged; Run never panics on them.
func (a *App) Run(handler shell.AppHandler) {
	if err := a.runInner(); err != nil {
		shell.Logger().Error("event loop failed", "err", err)
	}
}

func (a *App) runInner() error {
	mw := a.window
	if mw == nil {
		return shell.ErrNoWindow
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	size := mw.Size()
	width := int(size.Width)
	height := int(size.Height)
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}

	title := a.title
	if title == "" {
		title = "shell"
	}
	win, err := createNativeWindow(width, height, title)
	if err != nil {
		return err
	}
	defer win.Destroy()
	a.native = win

	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbW, fbH := win.GetFramebufferSize()
	surface, err := NewSurface(fbW, fbH, mw.Scale())
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}
	defer surface.Delete()

	// GLFW reports button events without a position, so the cursor is
	// tracked here and attached to presses and releases.
	var cursorX, cursorY float64

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		cursorX, cursorY = x, y
		mw.HandleMotionNotify(shell.Point{X: x, Y: y})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b := glfwMouseButton(button)
		if b == shell.MouseButtonNone {
			return
		}
		pos := shell.Point{X: cursorX, Y: cursorY}
		switch action {
		case glfw.Press:
			mw.HandleButtonPress(pos, b, glfwMods(mods))
		case glfw.Release:
			mw.HandleButtonRelease(pos, b, glfwMods(mods))
		}
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			a.quitting.Store(true)
			return
		}
		code := glfwKeyToCode(key)
		switch action {
		case glfw.Press, glfw.Repeat:
			mw.HandleKeyPress(shell.KeyStateDown, code, glfwMods(mods))
		case glfw.Release:
			mw.HandleKeyPress(shell.KeyStateUp, code, glfwMods(mods))
		}
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		surface.Resize(w, h)
		mw.ScreenSizeChanged(shell.Size{Width: float64(w), Height: float64(h)})
	})

	lastRedraw := time.Now()
	for !win.ShouldClose() && !a.quitting.Load() && !mw.Dropped() {
		glfw.PollEvents()

		needsRedraw := mw.RunIdle()
		mw.RunTimers(time.Now())

		elapsed := time.Since(lastRedraw)
		if needsRedraw || elapsed >= frameTime {
			surface.Begin()
			if err := mw.Render(surface); err != nil {
				shell.Logger().Error("render failed", "err", err)
			} else {
				surface.Flush()
				win.SwapBuffers()
			}
			lastRedraw = time.Now()
			continue
		}

		// Sleep until the next frame, the next timer or the next event,
		// whichever comes first.
		wait := frameTime - elapsed
		if deadline, ok := mw.NextTimeout(); ok {
			if until := time.Until(deadline); until < wait {
				wait = until
			}
		}
		if wait > 0 {
			glfw.WaitEventsTimeout(wait.Seconds())
		}
	}

	return nil
}

// createNativeWindow creates the GLFW window, preferring a core profile
// context and falling back to GLES when the driver refuses one.
func createNativeWindow(width, height int, title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err == nil {
		return win, nil
	}

	shell.Logger().Warn("core profile context failed, retrying with GLES", "err", err)
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	win, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	return win, nil
}
